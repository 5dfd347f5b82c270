package mspconfig

import "testing"

const sampleConfig = `<?xml version="1.0" encoding="UTF-8"?>
<MSPConfig>
  <System>
    <Msp-Vsp-Speed-Format>RPM</Msp-Vsp-Speed-Format>
    <Units>Standard</Units>
  </System>
  <Backyard>
    <Body-of-water>
      <System-Id>7</System-Id>
      <Name>Pool</Name>
      <Type>BOW_POOL</Type>
      <Filter>
        <System-Id>8</System-Id>
        <Name>Filter Pump</Name>
        <Filter-Type>FMT_VARIABLE_SPEED_PUMP</Filter-Type>
        <Min-Pump-Speed>20</Min-Pump-Speed>
        <Max-Pump-Speed>100</Max-Pump-Speed>
        <Priming-Enabled>yes</Priming-Enabled>
      </Filter>
      <Heater>
        <System-Id>9</System-Id>
        <Enabled>yes</Enabled>
        <Current-Set-Point>84</Current-Set-Point>
        <Operation>
          <Heater-Equipment>
            <System-Id>10</System-Id>
            <Name>Gas Heater</Name>
            <Type>PET_HEATER</Type>
            <Heater-Type>HTR_GAS</Heater-Type>
            <Enabled>yes</Enabled>
          </Heater-Equipment>
        </Operation>
      </Heater>
    </Body-of-water>
  </Backyard>
</MSPConfig>`

func TestParseConfigAndPropagateBowID(t *testing.T) {
	cfg, err := Parse(sampleConfig)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.System.VSPSpeedFormat != "RPM" {
		t.Errorf("VSPSpeedFormat = %q", cfg.System.VSPSpeedFormat)
	}
	if len(cfg.Backyard.BodiesOfWater) != 1 {
		t.Fatalf("expected 1 body of water, got %d", len(cfg.Backyard.BodiesOfWater))
	}

	bow := cfg.Backyard.BodiesOfWater[0]
	if bow.SystemID != 7 {
		t.Fatalf("BoW SystemID = %d, want 7", bow.SystemID)
	}
	if len(bow.Filter) != 1 || bow.Filter[0].BowID != 7 {
		t.Fatalf("expected filter's BowID propagated to 7, got %+v", bow.Filter)
	}
	if !bow.Filter[0].PrimingEnabled {
		t.Errorf("expected PrimingEnabled=true from 'yes'")
	}

	if bow.Heater == nil || bow.Heater.BowID != 7 {
		t.Fatalf("expected heater's BowID propagated to 7, got %+v", bow.Heater)
	}
	if len(bow.Heater.HeaterEquipment) != 1 || bow.Heater.HeaterEquipment[0].BowID != 7 {
		t.Fatalf("expected nested heater equipment's BowID propagated to 7, got %+v", bow.Heater.HeaterEquipment)
	}
}

func TestFindBySystemID(t *testing.T) {
	cfg, err := Parse(sampleConfig)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	found, ok := cfg.FindBySystemID(10)
	if !ok {
		t.Fatalf("expected to find system id 10")
	}
	equip, ok := found.(*HeaterEquip)
	if !ok {
		t.Fatalf("expected *HeaterEquip, got %T", found)
	}
	if equip.HeaterType != "HTR_GAS" {
		t.Errorf("HeaterType = %q", equip.HeaterType)
	}

	if _, ok := cfg.FindBySystemID(99999); ok {
		t.Errorf("expected no match for unknown system id")
	}
}
