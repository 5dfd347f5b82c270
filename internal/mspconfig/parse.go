package mspconfig

import (
	"encoding/xml"
	"strings"

	"github.com/cryptk/omnilogic-local/internal/omnierrors"
)

// Parse decodes a RequestConfiguration response body into a Config,
// normalizing "yes"/"no" fields to bool and propagating each body of
// water's system id down into its nested equipment.
func Parse(document string) (*Config, error) {
	var cfg Config
	if err := xml.Unmarshal([]byte(document), &cfg); err != nil {
		return nil, omnierrors.NewParsing("failed to parse MSPConfig document", err)
	}

	for i := range cfg.Backyard.BodiesOfWater {
		bow := &cfg.Backyard.BodiesOfWater[i]
		normalizeBoW(bow)
		propagateBowID(bow, bow.SystemID)
	}

	return &cfg, nil
}

// yesNo converts the controller's "yes"/"no" string convention to bool.
// Anything else is treated as false rather than rejected, since this
// field is cosmetic relative to the numeric state fields callers
// actually act on.
func yesNo(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "yes")
}

func normalizeBoW(bow *BodyOfWater) {
	for i := range bow.Filter {
		bow.Filter[i].PrimingEnabled = yesNo(bow.Filter[i].PrimingRaw)
	}
	for i := range bow.ColorLogicLight {
		bow.ColorLogicLight[i].V2Active = yesNo(bow.ColorLogicLight[i].V2ActiveRaw)
	}
	if bow.Heater != nil {
		for i := range bow.Heater.HeaterEquipment {
			bow.Heater.HeaterEquipment[i].SupportsCooling = yesNo(bow.Heater.HeaterEquipment[i].SupportsCoolingRaw)
		}
	}
}

// propagateBowID sets bowID on every piece of equipment nested, directly
// or indirectly, under a body of water. This mirrors the reference
// client's recursive propagate_bow_id step, which runs once at
// construction time rather than being recomputed on every access.
func propagateBowID(bow *BodyOfWater, bowID int) {
	for i := range bow.Filter {
		bow.Filter[i].BowID = bowID
	}
	for i := range bow.Pump {
		bow.Pump[i].BowID = bowID
	}
	for i := range bow.Relay {
		bow.Relay[i].BowID = bowID
	}
	for i := range bow.Sensor {
		bow.Sensor[i].BowID = bowID
	}
	for i := range bow.ColorLogicLight {
		bow.ColorLogicLight[i].BowID = bowID
	}
	for i := range bow.CSAD {
		bow.CSAD[i].BowID = bowID
	}
	if bow.Heater != nil {
		bow.Heater.BowID = bowID
		for i := range bow.Heater.HeaterEquipment {
			bow.Heater.HeaterEquipment[i].BowID = bowID
		}
	}
	if bow.Chlorinator != nil {
		bow.Chlorinator.BowID = bowID
		for i := range bow.Chlorinator.ChlorinatorEquipment {
			bow.Chlorinator.ChlorinatorEquipment[i].BowID = bowID
		}
	}
}
