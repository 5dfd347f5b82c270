package mspconfig

// FindBySystemID searches every equipment list in cfg for a node whose
// SystemID matches id, returning it as the concrete equipment type. The
// second return value is false if nothing matched.
func (cfg *Config) FindBySystemID(id int) (any, bool) {
	for bi := range cfg.Backyard.BodiesOfWater {
		bow := &cfg.Backyard.BodiesOfWater[bi]
		if bow.SystemID == id {
			return bow, true
		}
		for i := range bow.Filter {
			if bow.Filter[i].SystemID == id {
				return &bow.Filter[i], true
			}
		}
		for i := range bow.Pump {
			if bow.Pump[i].SystemID == id {
				return &bow.Pump[i], true
			}
		}
		for i := range bow.Relay {
			if bow.Relay[i].SystemID == id {
				return &bow.Relay[i], true
			}
		}
		for i := range bow.Sensor {
			if bow.Sensor[i].SystemID == id {
				return &bow.Sensor[i], true
			}
		}
		for i := range bow.ColorLogicLight {
			if bow.ColorLogicLight[i].SystemID == id {
				return &bow.ColorLogicLight[i], true
			}
		}
		for i := range bow.CSAD {
			if bow.CSAD[i].SystemID == id {
				return &bow.CSAD[i], true
			}
		}
		if bow.Heater != nil {
			if bow.Heater.SystemID == id {
				return bow.Heater, true
			}
			for i := range bow.Heater.HeaterEquipment {
				if bow.Heater.HeaterEquipment[i].SystemID == id {
					return &bow.Heater.HeaterEquipment[i], true
				}
			}
		}
		if bow.Chlorinator != nil {
			if bow.Chlorinator.SystemID == id {
				return bow.Chlorinator, true
			}
			for i := range bow.Chlorinator.ChlorinatorEquipment {
				if bow.Chlorinator.ChlorinatorEquipment[i].SystemID == id {
					return &bow.Chlorinator.ChlorinatorEquipment[i], true
				}
			}
		}
	}

	for i := range cfg.Backyard.Sensor {
		if cfg.Backyard.Sensor[i].SystemID == id {
			return &cfg.Backyard.Sensor[i], true
		}
	}
	for i := range cfg.Backyard.Relay {
		if cfg.Backyard.Relay[i].SystemID == id {
			return &cfg.Backyard.Relay[i], true
		}
	}
	for i := range cfg.Backyard.Group {
		if cfg.Backyard.Group[i].SystemID == id {
			return &cfg.Backyard.Group[i], true
		}
	}

	return nil, false
}
