package omniapi

import (
	"context"

	"github.com/cryptk/omnilogic-local/internal/omnitypes"
	"github.com/cryptk/omnilogic-local/internal/validate"
)

// SetChlorinatorEnable turns salt/liquid chlorination on or off for the
// body of water.
func (c *Client) SetChlorinatorEnable(ctx context.Context, poolID int, enabled bool) error {
	if err := validate.ID(poolID, "poolId"); err != nil {
		return err
	}
	body := buildRequest("SetCHLOREnable",
		intParam("poolId", poolID),
		aliasBoolParam("Enabled", "Data", enabled))
	_, err := c.call(ctx, omnitypes.MessageTypeSetChlorEnabled, body, false)
	return err
}

// ChlorinatorParams bundles a chlorinator's full dosing configuration,
// mirroring the packed Data1..Data7 parameters the controller expects
// in a single SetCHLORParams command.
type ChlorinatorParams struct {
	EquipmentID     int
	CfgState        int
	OperatingMode   omnitypes.ChlorinatorOperatingMode
	BowType         int
	CellType        omnitypes.ChlorinatorCellInt
	TimedPercent    int
	SCTimeoutHours  int
	ORPTimeoutHours int
}

// SetChlorinatorParams reconfigures a chlorinator's dosing mode, cell
// type, timed-percent output, and superchlorinate/ORP timeouts in one
// command.
func (c *Client) SetChlorinatorParams(ctx context.Context, poolID int, p ChlorinatorParams) error {
	if err := validate.ID(poolID, "poolId"); err != nil {
		return err
	}
	if err := validate.ID(p.EquipmentID, "equipmentId"); err != nil {
		return err
	}
	if err := validate.Speed(p.TimedPercent, "timedPercent"); err != nil {
		return err
	}
	body := buildRequest("SetCHLORParams",
		intParam("poolId", poolID),
		aliasIntParam("ChlorID", "EquipmentID", p.EquipmentID),
		aliasByteParam("CfgState", "Data1", p.CfgState),
		aliasByteParam("OpMode", "Data2", int(p.OperatingMode)),
		aliasByteParam("BOWType", "Data3", p.BowType),
		aliasByteParam("CellType", "Data4", int(p.CellType)),
		aliasByteParam("TimedPercent", "Data5", p.TimedPercent),
		aliasUnitByteParam("SCTimeout", "hour", "Data6", p.SCTimeoutHours),
		aliasUnitByteParam("ORPTimout", "hour", "Data7", p.ORPTimeoutHours))
	_, err := c.call(ctx, omnitypes.MessageTypeSetChlorParams, body, false)
	return err
}

// SetChlorinatorSuperchlorinate starts or stops superchlorination.
func (c *Client) SetChlorinatorSuperchlorinate(ctx context.Context, poolID, equipmentID int, enabled bool) error {
	if err := validate.ID(poolID, "poolId"); err != nil {
		return err
	}
	if err := validate.ID(equipmentID, "equipmentId"); err != nil {
		return err
	}
	body := buildRequest("SetUISuperCHLORCmd",
		intParam("poolId", poolID),
		aliasIntParam("ChlorID", "EquipmentID", equipmentID),
		aliasByteParam("IsOn", "Data1", btoi(enabled)))
	_, err := c.call(ctx, omnitypes.MessageTypeSetSuperchlorinate, body, false)
	return err
}
