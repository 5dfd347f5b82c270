package telemetry

import (
	"testing"

	"github.com/cryptk/omnilogic-local/internal/omnitypes"
)

const sampleSnapshot = `<?xml version="1.0" encoding="UTF-8"?>
<STATUS version="1.19">
  <Backyard>
    <systemId>0</systemId>
    <statusVersion>1</statusVersion>
    <airTemp>78</airTemp>
    <state>1</state>
  </Backyard>
  <Chlorinator>
    <systemId>5</systemId>
    <status>52</status>
    <instantSaltLevel>3200</instantSaltLevel>
    <avgSaltLevel>3150</avgSaltLevel>
    <chlrAlert>48</chlrAlert>
    <chlrError>12288</chlrError>
  </Chlorinator>
</STATUS>`

func TestParseSnapshot(t *testing.T) {
	snap, err := Parse(sampleSnapshot)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if snap.Backyard.AirTemp != 78 {
		t.Errorf("AirTemp = %d, want 78", snap.Backyard.AirTemp)
	}
	if len(snap.Chlorinator) != 1 {
		t.Fatalf("expected 1 chlorinator, got %d", len(snap.Chlorinator))
	}
}

func TestChlorinatorAlertsSubstitutesCellTempHigh(t *testing.T) {
	// 48 = 0b110000 = CELL_TEMP_LOW (1<<4) | CELL_TEMP_SCALEBACK (1<<5)
	c := Chlorinator{ChlrAlertRaw: 48}
	alerts := c.Alerts()
	if !alerts.Has(omnitypes.ChlorinatorAlertCellTempHigh) {
		t.Fatalf("expected synthetic CELL_TEMP_HIGH flag, got %b", alerts)
	}
	if alerts.Has(omnitypes.ChlorinatorAlertCellTempLow) || alerts.Has(omnitypes.ChlorinatorAlertCellTempScaleback) {
		t.Fatalf("expected raw CELL_TEMP_LOW/SCALEBACK bits cleared, got %b", alerts)
	}
}

func TestChlorinatorAlertsLeavesUnrelatedBitsAlone(t *testing.T) {
	// Only SALT_LOW set, no substitution should happen.
	c := Chlorinator{ChlrAlertRaw: 1}
	alerts := c.Alerts()
	if !alerts.Has(omnitypes.ChlorinatorAlertSaltLow) {
		t.Fatalf("expected SALT_LOW preserved")
	}
	if alerts.Has(omnitypes.ChlorinatorAlertCellTempHigh) {
		t.Fatalf("did not expect synthetic flag without both source bits")
	}
}

func TestChlorinatorErrorsSubstitutesCellCommLoss(t *testing.T) {
	// 12288 = 0b11000000000000 = CELL_ERROR_TYPE (1<<12) | CELL_ERROR_AUTH (1<<13)
	c := Chlorinator{ChlrErrorRaw: 12288}
	errs := c.Errors()
	if !errs.Has(omnitypes.ChlorinatorErrorCellCommLoss) {
		t.Fatalf("expected synthetic CELL_COMM_LOSS flag, got %b", errs)
	}
	if errs.Has(omnitypes.ChlorinatorErrorCellErrorType) || errs.Has(omnitypes.ChlorinatorErrorCellErrorAuth) {
		t.Fatalf("expected raw CELL_ERROR_TYPE/AUTH bits cleared, got %b", errs)
	}
}

func TestChlorinatorActiveReflectsGeneratingBit(t *testing.T) {
	// 4 = 1<<2 = GENERATING
	c := Chlorinator{StatusRaw: 4}
	if !c.Active() {
		t.Fatalf("expected Active()=true when GENERATING bit is set")
	}
	c2 := Chlorinator{StatusRaw: 0}
	if c2.Active() {
		t.Fatalf("expected Active()=false when GENERATING bit is clear")
	}
}

func TestShowNameDispatchesByLightType(t *testing.T) {
	l := ColorLogicLight{Show: 0}
	if got := l.ShowName(omnitypes.ColorLogicLightTypePentairColor, false); got != "SAM" {
		t.Errorf("Pentair show 0 = %q, want SAM", got)
	}
	if got := l.ShowName(omnitypes.ColorLogicLightTypeUCL, false); got != "Voodoo Lounge" {
		t.Errorf("UCL show 0 = %q, want Voodoo Lounge", got)
	}
}
