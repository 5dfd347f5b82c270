package telemetry

import (
	"encoding/xml"

	"github.com/cryptk/omnilogic-local/internal/omnierrors"
	"github.com/cryptk/omnilogic-local/internal/omnitypes"
)

// Backyard is the overall controller status.
type Backyard struct {
	SystemID       int    `xml:"systemId"`
	StatusVersion  int    `xml:"statusVersion"`
	AirTemp        int    `xml:"airTemp"`
	State          int    `xml:"state"`
	ConfigChecksum int    `xml:"ConfigChksum"`
	MSPVersion     string `xml:"mspVersion"`
}

// BoW is a body of water's live flow/temperature reading.
type BoW struct {
	SystemID  int `xml:"systemId"`
	WaterTemp int `xml:"waterTemp"`
	Flow      int `xml:"flow"`
}

// Chlorinator is a chlorinator's live status. Status/Alerts/Errors
// decode the raw bitmask fields, applying the synthetic
// CELL_TEMP_HIGH/CELL_COMM_LOSS flag substitutions.
type Chlorinator struct {
	SystemID         int    `xml:"systemId"`
	StatusRaw        uint16 `xml:"status"`
	InstantSaltLevel int    `xml:"instantSaltLevel"`
	AvgSaltLevel     int    `xml:"avgSaltLevel"`
	ChlrAlertRaw     uint16 `xml:"chlrAlert"`
	ChlrErrorRaw     uint16 `xml:"chlrError"`
	SCMode           int    `xml:"scMode"`
	OperatingState   int    `xml:"operatingState"`
	TimedPercent     int    `xml:"Timed-Percent"`
	OperatingMode    int    `xml:"operatingMode"`
	Enable           int    `xml:"enable"`
}

// Status returns the chlorinator's live status bitmask.
func (c Chlorinator) Status() omnitypes.ChlorinatorStatus {
	return omnitypes.ChlorinatorStatus(c.StatusRaw)
}

// Alerts decodes the chlorinator's alert bitmask. When both
// CELL_TEMP_LOW and CELL_TEMP_SCALEBACK are set, they are replaced by
// the single synthetic CELL_TEMP_HIGH flag, matching the controller's
// documented convention that the pair always appears together to mean
// "cell is too hot", not two independent conditions.
func (c Chlorinator) Alerts() omnitypes.ChlorinatorAlert {
	raw := omnitypes.ChlorinatorAlert(c.ChlrAlertRaw)
	if raw.Has(omnitypes.ChlorinatorAlertCellTempLow) && raw.Has(omnitypes.ChlorinatorAlertCellTempScaleback) {
		raw &^= omnitypes.ChlorinatorAlertCellTempLow | omnitypes.ChlorinatorAlertCellTempScaleback
		raw |= omnitypes.ChlorinatorAlertCellTempHigh
	}
	return raw
}

// Errors decodes the chlorinator's error bitmask. When both
// CELL_ERROR_TYPE and CELL_ERROR_AUTH are set, they are replaced by the
// single synthetic CELL_COMM_LOSS flag, matching the controller's
// convention that the pair together means the board lost communication
// with the cell, not two independent sensor faults.
func (c Chlorinator) Errors() omnitypes.ChlorinatorError {
	raw := omnitypes.ChlorinatorError(c.ChlrErrorRaw)
	if raw.Has(omnitypes.ChlorinatorErrorCellErrorType) && raw.Has(omnitypes.ChlorinatorErrorCellErrorAuth) {
		raw &^= omnitypes.ChlorinatorErrorCellErrorType | omnitypes.ChlorinatorErrorCellErrorAuth
		raw |= omnitypes.ChlorinatorErrorCellCommLoss
	}
	return raw
}

// Active reports whether the cell is currently generating chlorine.
func (c Chlorinator) Active() bool {
	return c.Status().Has(omnitypes.ChlorinatorStatusGenerating)
}

// CSAD is a chemistry controller's live status.
type CSAD struct {
	SystemID int `xml:"systemId"`
	Status   int `xml:"status"`
	PH       int `xml:"ph"`
	ORP      int `xml:"orp"`
	Mode     int `xml:"mode"`
}

// ColorLogicLight is a light's live power/show state.
type ColorLogicLight struct {
	SystemID      int `xml:"systemId"`
	State         int `xml:"lightState"`
	Show          int `xml:"currentShow"`
	Speed         int `xml:"speed"`
	Brightness    int `xml:"brightness"`
	SpecialEffect int `xml:"specialEffect"`
}

// PowerState interprets State as a ColorLogicPowerState.
func (l ColorLogicLight) PowerState() omnitypes.ColorLogicPowerState {
	return omnitypes.ColorLogicPowerState(l.State)
}

// ShowName resolves the display name of the currently selected show,
// given the light's fixture type and V2-Active flag from its MSPConfig
// entry (telemetry alone does not carry the fixture model).
func (l ColorLogicLight) ShowName(lightType omnitypes.ColorLogicLightType, v2Active bool) string {
	return omnitypes.ShowName(lightType, v2Active, l.Show)
}

// Filter is a filter pump's live status.
type Filter struct {
	SystemID      int `xml:"systemId"`
	State         int `xml:"filterState"`
	Speed         int `xml:"filterSpeed"`
	ValvePosition int `xml:"valvePosition"`
	WhyOn         int `xml:"whyFilterIsOn"`
	ReportedSpeed int `xml:"reportedFilterSpeed"`
	Power         int `xml:"power"`
	LastSpeed     int `xml:"lastSpeed"`
}

// Group is a named equipment group's live on/off state.
type Group struct {
	SystemID int `xml:"systemId"`
	State    int `xml:"groupState"`
}

// Heater is a physical heater unit's live status.
type Heater struct {
	SystemID    int `xml:"systemId"`
	State       int `xml:"heaterState"`
	Temp        int `xml:"temp"`
	Enabled     int `xml:"enable"`
	Priority    int `xml:"priority"`
	MaintainFor int `xml:"maintainFor"`
}

// Pump is a standalone pump's live status.
type Pump struct {
	SystemID  int `xml:"systemId"`
	State     int `xml:"pumpState"`
	Speed     int `xml:"pumpSpeed"`
	LastSpeed int `xml:"lastSpeed"`
	WhyOn     int `xml:"whyOn"`
}

// Relay is a relay's live status.
type Relay struct {
	SystemID int `xml:"systemId"`
	State    int `xml:"relayState"`
	WhyOn    int `xml:"whyOn"`
}

// ValveActuator is a valve actuator's live status.
type ValveActuator struct {
	SystemID int `xml:"systemId"`
	State    int `xml:"valveActuatorState"`
	WhyOn    int `xml:"whyOn"`
}

// VirtualHeater is the logical heater's live status.
type VirtualHeater struct {
	SystemID       int `xml:"systemId"`
	CurrentSetPoint int `xml:"Current-Set-Point"`
	Enabled        int `xml:"enable"`
	SolarSetPoint  int `xml:"SolarSetPoint"`
	Mode           int `xml:"Mode"`
	SilentMode     int `xml:"SilentMode"`
	WhyOn          int `xml:"whyHeaterIsOn"`
}

// Snapshot is the full live telemetry document returned by
// RequestTelemetryData.
type Snapshot struct {
	XMLName         xml.Name          `xml:"STATUS"`
	Version         string            `xml:"version,attr"`
	Backyard        Backyard          `xml:"Backyard"`
	BoW             []BoW             `xml:"BodyOfWater"`
	Chlorinator     []Chlorinator     `xml:"Chlorinator"`
	ColorLogicLight []ColorLogicLight `xml:"ColorLogic-Light"`
	CSAD            []CSAD            `xml:"CSAD"`
	Filter          []Filter          `xml:"Filter"`
	Group           []Group           `xml:"Group"`
	Heater          []Heater          `xml:"Heater"`
	Pump            []Pump            `xml:"Pump"`
	Relay           []Relay           `xml:"Relay"`
	ValveActuator   []ValveActuator   `xml:"ValveActuator"`
	VirtualHeater   []VirtualHeater   `xml:"VirtualHeater"`
}

// Parse decodes a RequestTelemetryData response body into a Snapshot.
func Parse(document string) (*Snapshot, error) {
	var snap Snapshot
	if err := xml.Unmarshal([]byte(document), &snap); err != nil {
		return nil, omnierrors.NewParsing("failed to parse telemetry document", err)
	}
	if snap.XMLName.Local == "" {
		return nil, omnierrors.NewParsing("telemetry document missing required STATUS root element", nil)
	}
	return &snap, nil
}

// GetBySystemID searches every telemetry slice for a node whose
// SystemID matches id, returning it as the concrete type. The second
// return value is false if nothing matched.
func (s *Snapshot) GetBySystemID(id int) (any, bool) {
	if s.Backyard.SystemID == id {
		return &s.Backyard, true
	}
	for i := range s.BoW {
		if s.BoW[i].SystemID == id {
			return &s.BoW[i], true
		}
	}
	for i := range s.Chlorinator {
		if s.Chlorinator[i].SystemID == id {
			return &s.Chlorinator[i], true
		}
	}
	for i := range s.ColorLogicLight {
		if s.ColorLogicLight[i].SystemID == id {
			return &s.ColorLogicLight[i], true
		}
	}
	for i := range s.CSAD {
		if s.CSAD[i].SystemID == id {
			return &s.CSAD[i], true
		}
	}
	for i := range s.Filter {
		if s.Filter[i].SystemID == id {
			return &s.Filter[i], true
		}
	}
	for i := range s.Group {
		if s.Group[i].SystemID == id {
			return &s.Group[i], true
		}
	}
	for i := range s.Heater {
		if s.Heater[i].SystemID == id {
			return &s.Heater[i], true
		}
	}
	for i := range s.Pump {
		if s.Pump[i].SystemID == id {
			return &s.Pump[i], true
		}
	}
	for i := range s.Relay {
		if s.Relay[i].SystemID == id {
			return &s.Relay[i], true
		}
	}
	for i := range s.ValveActuator {
		if s.ValveActuator[i].SystemID == id {
			return &s.ValveActuator[i], true
		}
	}
	for i := range s.VirtualHeater {
		if s.VirtualHeater[i].SystemID == id {
			return &s.VirtualHeater[i], true
		}
	}
	return nil, false
}
