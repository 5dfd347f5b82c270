package filterdiag

import "testing"

const sampleDiagnostics = `<?xml version="1.0" encoding="UTF-8"?>
<Response xmlns="http://nextgen.hayward.com/api">
  <Name>GetUIFilterDiagnosticInfo</Name>
  <Parameters>
    <Parameter name="Power" dataType="int">425</Parameter>
    <Parameter name="DriveFWRevisionB1" dataType="int">86</Parameter>
    <Parameter name="DriveFWRevisionB2" dataType="int">50</Parameter>
    <Parameter name="DriveFWRevisionB3" dataType="int">51</Parameter>
    <Parameter name="DriveFWRevisionB4" dataType="int">56</Parameter>
  </Parameters>
</Response>`

func TestParseAndGetParam(t *testing.T) {
	d, err := Parse(sampleDiagnostics)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	power, err := d.GetParam("Power")
	if err != nil {
		t.Fatalf("GetParam(Power): %v", err)
	}
	if power != 425 {
		t.Errorf("Power = %d, want 425", power)
	}
	fw, err := d.FirmwareRevision("drive")
	if err != nil {
		t.Fatalf("FirmwareRevision: %v", err)
	}
	if fw != "V2.38" {
		t.Errorf("FirmwareRevision = %q, want V2.38", fw)
	}
}

func TestGetParamMissing(t *testing.T) {
	d, err := Parse(sampleDiagnostics)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := d.GetParam("NotThere"); err == nil {
		t.Fatalf("expected error for missing parameter")
	}
}
