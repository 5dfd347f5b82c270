package omniapi

import (
	"encoding/xml"
	"strconv"

	"github.com/cryptk/omnilogic-local/internal/omnitypes"
)

// param is a single <Parameter> element of an outgoing <Request> body.
//
// Alias lets a parameter carry a second name: the controller's generic
// equipment dispatcher routes on Alias (e.g. "Data", "EquipmentID")
// while Name documents what the value actually means (e.g. "Speed",
// "HeaterID") — both must be transcribed exactly as the controller
// expects, not invented.
type param struct {
	XMLName  xml.Name `xml:"Parameter"`
	Name     string   `xml:"name,attr"`
	DataType string   `xml:"dataType,attr"`
	Unit     string   `xml:"unit,attr,omitempty"`
	Alias    string   `xml:"alias,attr,omitempty"`
	Value    string   `xml:",chardata"`
}

// request is the envelope every command the controller accepts is
// wrapped in.
type request struct {
	XMLName    xml.Name `xml:"Request"`
	Xmlns      string   `xml:"xmlns,attr"`
	Name       string   `xml:"Name"`
	Parameters []param  `xml:"Parameters>Parameter"`
}

func buildRequest(name string, params ...param) string {
	r := request{Xmlns: omnitypes.XMLNamespace, Name: name, Parameters: params}
	out, err := xml.Marshal(r)
	if err != nil {
		// Every field above is a plain string; Marshal only fails on
		// unsupported types, which never occurs here.
		panic(err)
	}
	return xml.Header + string(out)
}

func intParam(name string, v int) param {
	return param{Name: name, DataType: "int", Value: strconv.Itoa(v)}
}

func byteParam(name string, v int) param {
	return param{Name: name, DataType: "byte", Value: strconv.Itoa(v)}
}

func boolParam(name string, v bool) param {
	return param{Name: name, DataType: "bool", Value: strconv.Itoa(btoi(v))}
}

func aliasIntParam(name, alias string, v int) param {
	return param{Name: name, DataType: "int", Alias: alias, Value: strconv.Itoa(v)}
}

func aliasByteParam(name, alias string, v int) param {
	return param{Name: name, DataType: "byte", Alias: alias, Value: strconv.Itoa(v)}
}

func aliasUnitIntParam(name, unit, alias string, v int) param {
	return param{Name: name, DataType: "int", Unit: unit, Alias: alias, Value: strconv.Itoa(v)}
}

func aliasUnitByteParam(name, unit, alias string, v int) param {
	return param{Name: name, DataType: "byte", Unit: unit, Alias: alias, Value: strconv.Itoa(v)}
}

func aliasBoolParam(name, alias string, v bool) param {
	return param{Name: name, DataType: "bool", Alias: alias, Value: strconv.Itoa(btoi(v))}
}

func btoi(v bool) int {
	if v {
		return 1
	}
	return 0
}

// Schedule bounds a one-shot equipment command to a start/end window
// instead of leaving it in effect indefinitely. The zero value (Enabled:
// false) runs the command with no time bound. Its params method builds
// the seven parameters every scheduled-equipment command (SetEquipment,
// SetUISpilloverCmd, SetStandAloneLightShow, RunGroupCmd) carries.
type Schedule struct {
	Enabled    bool
	StartHours int
	StartMins  int
	EndHours   int
	EndMins    int
	DaysActive int
	Recurring  bool
}

func (s Schedule) params() []param {
	return []param{
		boolParam("IsCountDownTimer", s.Enabled),
		intParam("StartTimeHours", s.StartHours),
		intParam("StartTimeMinutes", s.StartMins),
		intParam("EndTimeHours", s.EndHours),
		intParam("EndTimeMinutes", s.EndMins),
		intParam("DaysActive", s.DaysActive),
		boolParam("Recurring", s.Recurring),
	}
}
