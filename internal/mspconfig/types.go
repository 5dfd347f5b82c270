package mspconfig

import (
	"encoding/xml"

	"github.com/cryptk/omnilogic-local/internal/omnitypes"
)

// System carries the backyard-wide unit and speed-format preferences.
type System struct {
	VSPSpeedFormat string `xml:"Msp-Vsp-Speed-Format"` // "RPM" or "Percent"
	Units          string `xml:"Units"`                // "Standard" or "Metric"
}

// Sensor is a standalone temperature/flow/ORP/input sensor.
type Sensor struct {
	SystemID int    `xml:"System-Id"`
	Name     string `xml:"Name"`
	Type     omnitypes.SensorType  `xml:"Type"`
	Units    omnitypes.SensorUnits `xml:"Units"`
	BowID    int                   `xml:"-"`
}

// Filter is a filter pump attached to a body of water.
type Filter struct {
	SystemID       int                 `xml:"System-Id"`
	Name           string              `xml:"Name"`
	Type           omnitypes.FilterType `xml:"Filter-Type"`
	MaxPercent     int                 `xml:"Max-Pump-Speed"`
	MinPercent     int                 `xml:"Min-Pump-Speed"`
	MaxRPM         int                 `xml:"Max-Pump-RPM"`
	MinRPM         int                 `xml:"Min-Pump-RPM"`
	PrimingEnabled bool                `xml:"-"`
	PrimingRaw     string              `xml:"Priming-Enabled"`
	LowSpeed       int                 `xml:"Vsp-Low-Pump-Speed"`
	MediumSpeed    int                 `xml:"Vsp-Medium-Pump-Speed"`
	HighSpeed      int                 `xml:"Vsp-High-Pump-Speed"`
	BowID          int                 `xml:"-"`
}

// Pump is a standalone (non-filter) pump: water features, cleaners,
// waterfalls, and similar.
type Pump struct {
	SystemID       int                   `xml:"System-Id"`
	Name           string                `xml:"Name"`
	Type           omnitypes.PumpType     `xml:"Type"`
	Function       omnitypes.PumpFunction `xml:"Function"`
	MaxPercent     int                   `xml:"Max-Pump-Speed"`
	MinPercent     int                   `xml:"Min-Pump-Speed"`
	MaxRPM         int                   `xml:"Max-Pump-RPM"`
	MinRPM         int                   `xml:"Min-Pump-RPM"`
	PrimingRaw     string                `xml:"Priming-Enabled"`
	LowSpeed       int                   `xml:"Vsp-Low-Pump-Speed"`
	MediumSpeed    int                   `xml:"Vsp-Medium-Pump-Speed"`
	HighSpeed      int                   `xml:"Vsp-High-Pump-Speed"`
	BowID          int                   `xml:"-"`
}

// Relay is a generic high/low-voltage relay or valve actuator.
type Relay struct {
	SystemID int                     `xml:"System-Id"`
	Name     string                  `xml:"Name"`
	Type     omnitypes.RelayType     `xml:"Type"`
	Function omnitypes.RelayFunction `xml:"Function"`
	BowID    int                     `xml:"-"`
}

// HeaterEquip is the physical heater unit nested under a VirtualHeater.
type HeaterEquip struct {
	SystemID          int                 `xml:"System-Id"`
	Name              string              `xml:"Name"`
	Type              string              `xml:"Type"` // always "PET_HEATER"
	HeaterType        omnitypes.HeaterType `xml:"Heater-Type"`
	EnabledRaw        string              `xml:"Enabled"`
	MinFilterSpeed    int                 `xml:"Min-Speed-For-Operation"`
	SensorSystemID    int                 `xml:"Sensor-System-Id"`
	SupportsCooling   bool                `xml:"-"`
	SupportsCoolingRaw string             `xml:"SupportsCooling"`
	BowID             int                 `xml:"-"`
}

// VirtualHeater is the logical heater a body of water exposes; it
// fans out to one or more physical HeaterEquip units.
type VirtualHeater struct {
	SystemID       int           `xml:"System-Id"`
	EnabledRaw     string        `xml:"Enabled"`
	SetPoint       int           `xml:"Current-Set-Point"`
	SolarSetPoint  int           `xml:"SolarSetPoint"`
	MaxTemp        int           `xml:"Max-Settable-Water-Temp"`
	MinTemp        int           `xml:"Min-Settable-Water-Temp"`
	HeaterEquipment []HeaterEquip `xml:"Operation>Heater-Equipment"`
	BowID          int           `xml:"-"`
}

// ChlorinatorEquip is the physical chlorinator cell nested under a
// Chlorinator.
type ChlorinatorEquip struct {
	SystemID   int    `xml:"System-Id"`
	Name       string `xml:"Name"`
	EnabledRaw string `xml:"Enabled"`
	BowID      int    `xml:"-"`
}

// Chlorinator is the logical salt/liquid/tablet chlorinator
// configuration for a body of water.
type Chlorinator struct {
	SystemID             int                                `xml:"System-Id"`
	EnabledRaw           string                              `xml:"Enabled"`
	TimedPercent         int                                 `xml:"Timed-Percent"`
	SuperchlorTimeout    int                                 `xml:"SuperChlor-Timeout"`
	DispenserType        omnitypes.ChlorinatorDispenserType `xml:"Dispenser-Type"`
	ChlorinatorEquipment []ChlorinatorEquip                 `xml:"Operation>Chlorinator-Equipment"`
	BowID                int                                 `xml:"-"`
}

// ColorLogicLight is a ColorLogic/Pentair/Zodiac light fixture.
type ColorLogicLight struct {
	SystemID int                           `xml:"System-Id"`
	Name     string                        `xml:"Name"`
	Type     omnitypes.ColorLogicLightType `xml:"Type"`
	V2Active bool                          `xml:"-"`
	V2ActiveRaw string                     `xml:"V2-Active"`
	BowID    int                           `xml:"-"`
}

// Effects returns the show table this light exposes, honoring its
// fixture type and V2-Active flag.
func (l ColorLogicLight) Effects() []omnitypes.ColorLogicShow {
	return omnitypes.ShowsForLightType(l.Type, l.V2Active)
}

// CSAD is a chemistry (acid/CO2) dispensing controller.
type CSAD struct {
	SystemID int                `xml:"System-Id"`
	Name     string             `xml:"Name"`
	Type     omnitypes.CSADType `xml:"Type"`
	BowID    int                `xml:"-"`
}

// Schedule is a recurring or one-shot equipment schedule entry.
type Schedule struct {
	SystemID         int  `xml:"schedule-system-id"`
	BoWID            int  `xml:"bow-system-id"`
	EquipmentID      int  `xml:"equipment-id"`
	EnabledRaw       string `xml:"Enabled"`
	ActionID         int  `xml:"Action-Id"`
	Data             int  `xml:"Data"`
	StartTimeHours   int  `xml:"Start-Time-Hours"`
	StartTimeMinutes int  `xml:"Start-Time-Minutes"`
	EndTimeHours     int  `xml:"End-Time-Hours"`
	EndTimeMinutes   int  `xml:"End-Time-Minutes"`
	DaysActive       int  `xml:"Days-Active"`
	RecurringRaw     string `xml:"Recurring"`
}

// Group is a named collection of equipment that can be commanded
// together via RunGroupCmd.
type Group struct {
	SystemID int    `xml:"System-Id"`
	Name     string `xml:"Name"`
}

// BodyOfWater is a pool or spa and everything plumbed to it.
type BodyOfWater struct {
	SystemID         int                   `xml:"System-Id"`
	Name             string                `xml:"Name"`
	Type             omnitypes.BodyOfWaterType `xml:"Type"`
	Filter           []Filter              `xml:"Filter"`
	Pump             []Pump                `xml:"Pump"`
	Relay            []Relay               `xml:"Relay"`
	Sensor           []Sensor              `xml:"Sensor"`
	ColorLogicLight  []ColorLogicLight     `xml:"ColorLogic-Light"`
	Heater           *VirtualHeater        `xml:"Heater"`
	Chlorinator      *Chlorinator          `xml:"Chlorinator"`
	CSAD             []CSAD                `xml:"CSAD"`
}

// Backyard is the top-level equipment container: everything not scoped
// to a particular body of water, plus the bodies of water themselves.
type Backyard struct {
	Sensor        []Sensor      `xml:"Sensor"`
	Relay         []Relay       `xml:"Relay"`
	Group         []Group       `xml:"Group>Group"`
	Schedule      []Schedule    `xml:"Group>Schedule"`
	BodiesOfWater []BodyOfWater `xml:"Body-of-water"`
}

// Config is the fully parsed configuration tree returned by
// RequestConfiguration.
type Config struct {
	XMLName  xml.Name `xml:"MSPConfig"`
	System   System   `xml:"System"`
	Backyard Backyard `xml:"Backyard"`
}
