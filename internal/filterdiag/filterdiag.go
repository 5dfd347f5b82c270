package filterdiag

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/cryptk/omnilogic-local/internal/omnierrors"
)

// Parameter is a single named value in a filter diagnostics response.
type Parameter struct {
	Name     string `xml:"name,attr"`
	DataType string `xml:"dataType,attr"`
	Value    string `xml:",chardata"`
}

// Diagnostics is the parsed GetUIFilterDiagnosticInfo response: a flat
// list of named parameters rather than a typed element tree, since the
// controller's diagnostic counters vary by pump model.
type Diagnostics struct {
	XMLName    xml.Name    `xml:"Response"`
	Name       string      `xml:"Name"`
	Parameters []Parameter `xml:"Parameters>Parameter"`
}

// Parse decodes a GetUIFilterDiagnosticInfo response body.
func Parse(document string) (*Diagnostics, error) {
	var d Diagnostics
	if err := xml.Unmarshal([]byte(document), &d); err != nil {
		return nil, omnierrors.NewParsing("failed to parse filter diagnostics document", err)
	}
	return &d, nil
}

// GetParam looks up a parameter by name and parses its value as an
// integer. It returns a Parsing error if the parameter is absent or its
// value is not an integer.
func (d *Diagnostics) GetParam(name string) (int, error) {
	raw, err := d.GetParamString(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, omnierrors.NewParsing(fmt.Sprintf("parameter %q is not an integer", name), err)
	}
	return v, nil
}

// GetParamString looks up a parameter by name and returns its raw
// string value.
func (d *Diagnostics) GetParamString(name string) (string, error) {
	for _, p := range d.Parameters {
		if p.Name == name {
			return p.Value, nil
		}
	}
	return "", omnierrors.NewParsing(fmt.Sprintf("parameter %q not present in filter diagnostics response", name), nil)
}

// FirmwareRevision assembles a dotted version string from the four
// single-byte ASCII-character parameters the controller reports for a
// given firmware component. kind must be "drive" or "display".
func (d *Diagnostics) FirmwareRevision(kind string) (string, error) {
	var prefix string
	switch kind {
	case "drive":
		prefix = "DriveFWRevision"
	case "display":
		prefix = "DisplayFWRevision"
	default:
		return "", omnierrors.NewParsing(fmt.Sprintf("unknown firmware revision kind %q, want \"drive\" or \"display\"", kind), nil)
	}

	var b [4]byte
	for i := range b {
		v, err := d.GetParam(fmt.Sprintf("%sB%d", prefix, i+1))
		if err != nil {
			return "", err
		}
		b[i] = byte(v)
	}
	return fmt.Sprintf("%c%c.%c%c", b[0], b[1], b[2], b[3]), nil
}

// Power combines the controller's big-endian PowerMSB/PowerLSB byte pair
// into the instantaneous pump power draw, in watts.
func (d *Diagnostics) Power() (int, error) {
	msb, err := d.GetParam("PowerMSB")
	if err != nil {
		return 0, err
	}
	lsb, err := d.GetParam("PowerLSB")
	if err != nil {
		return 0, err
	}
	return (msb << 8) | lsb, nil
}

// ErrorStatus is a convenience wrapper over the commonly queried
// "ErrorStatus" parameter.
func (d *Diagnostics) ErrorStatus() (int, error) {
	return d.GetParam("ErrorStatus")
}
