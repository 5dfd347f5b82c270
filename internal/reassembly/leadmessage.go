package reassembly

import (
	"encoding/xml"
	"strconv"

	"github.com/cryptk/omnilogic-local/internal/omnierrors"
)

// leadMessage describes an incoming fragmented response before any of
// its blocks have arrived: how many MSP_BLOCKMESSAGE fragments to
// expect and the original total message size.
type leadMessage struct {
	SourceOpID    int
	MsgSize       int
	MsgBlockCount int
	Type          int
}

// xmlParameter is the generic name/value element the controller uses
// for both LeadMessage headers and every request/response body.
type xmlParameter struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type xmlParameterDoc struct {
	XMLName    xml.Name       `xml:"Response"`
	Name       string         `xml:"Name"`
	Parameters []xmlParameter `xml:"Parameters>Parameter"`
}

func parseLeadMessage(payload []byte) (*leadMessage, error) {
	var doc xmlParameterDoc
	if err := xml.Unmarshal(payload, &doc); err != nil {
		return nil, omnierrors.NewParsing("failed to parse LeadMessage document", err)
	}

	lead := &leadMessage{}
	for _, p := range doc.Parameters {
		v, err := strconv.Atoi(p.Value)
		if err != nil {
			continue
		}
		switch p.Name {
		case "SourceOpId":
			lead.SourceOpID = v
		case "MsgSize":
			lead.MsgSize = v
		case "MsgBlockCount":
			lead.MsgBlockCount = v
		case "Type":
			lead.Type = v
		}
	}

	if lead.MsgBlockCount <= 0 {
		return nil, omnierrors.NewParsing("LeadMessage carried no MsgBlockCount", nil)
	}
	return lead, nil
}
