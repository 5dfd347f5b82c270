package omniapi

import (
	"context"

	"github.com/cryptk/omnilogic-local/internal/omnitypes"
	"github.com/cryptk/omnilogic-local/internal/validate"
)

// SetEquipment turns a relay-driven piece of equipment (pump, valve,
// feature circuit) on or off, optionally bounding the change to a
// scheduled window instead of leaving it in effect indefinitely. For a
// variable-speed pump, isOn instead carries a 0-100 speed percentage
// (0 is off) - the controller's dispatcher draws no distinction
// between "on/off" and "speed" here, so the parameter is an int, not
// a bool.
func (c *Client) SetEquipment(ctx context.Context, poolID, equipmentID, isOn int, sched Schedule) error {
	if err := validate.ID(poolID, "poolId"); err != nil {
		return err
	}
	if err := validate.ID(equipmentID, "equipmentId"); err != nil {
		return err
	}
	params := append([]param{
		intParam("poolId", poolID),
		intParam("equipmentId", equipmentID),
		aliasIntParam("isOn", "Data", isOn),
	}, sched.params()...)
	body := buildRequest("SetUIEquipmentCmd", params...)
	_, err := c.call(ctx, omnitypes.MessageTypeSetEquipment, body, false)
	return err
}

// SetFilterSpeed sets a variable-speed filter pump's duty cycle as a
// percentage of its rated speed.
func (c *Client) SetFilterSpeed(ctx context.Context, poolID, equipmentID, speedPercent int) error {
	if err := validate.ID(poolID, "poolId"); err != nil {
		return err
	}
	if err := validate.ID(equipmentID, "equipmentId"); err != nil {
		return err
	}
	if err := validate.Speed(speedPercent, "speed"); err != nil {
		return err
	}
	body := buildRequest("SetUIFilterSpeedCmd",
		intParam("poolId", poolID),
		aliasIntParam("FilterID", "equipment_id", equipmentID),
		aliasUnitIntParam("Speed", "RPM", "Data", speedPercent))
	_, err := c.call(ctx, omnitypes.MessageTypeSetFilterSpeed, body, false)
	return err
}

// SetHeater sets a heater's target temperature, in degrees Fahrenheit.
func (c *Client) SetHeater(ctx context.Context, poolID, equipmentID, temperatureF int) error {
	if err := validate.ID(poolID, "poolId"); err != nil {
		return err
	}
	if err := validate.ID(equipmentID, "equipmentId"); err != nil {
		return err
	}
	if err := validate.Temperature(temperatureF, "temperature"); err != nil {
		return err
	}
	body := buildRequest("SetUIHeaterCmd",
		intParam("poolId", poolID),
		aliasIntParam("HeaterID", "EquipmentID", equipmentID),
		aliasUnitIntParam("Temp", "F", "Data", temperatureF))
	_, err := c.call(ctx, omnitypes.MessageTypeSetHeaterCommand, body, false)
	return err
}

// SetSolarHeater sets a solar heater's target temperature, in degrees
// Fahrenheit.
func (c *Client) SetSolarHeater(ctx context.Context, poolID, equipmentID, temperatureF int) error {
	if err := validate.ID(poolID, "poolId"); err != nil {
		return err
	}
	if err := validate.ID(equipmentID, "equipmentId"); err != nil {
		return err
	}
	if err := validate.Temperature(temperatureF, "temperature"); err != nil {
		return err
	}
	body := buildRequest("SetUISolarSetPointCmd",
		intParam("poolId", poolID),
		aliasIntParam("HeaterID", "EquipmentID", equipmentID),
		aliasUnitIntParam("Temp", "F", "Data", temperatureF))
	_, err := c.call(ctx, omnitypes.MessageTypeSetSolarSetPointCommand, body, false)
	return err
}

// SetHeaterMode switches a virtual heater between the heat, cool and
// auto modes of omnitypes.HeaterMode.
func (c *Client) SetHeaterMode(ctx context.Context, poolID, equipmentID int, mode omnitypes.HeaterMode) error {
	if err := validate.ID(poolID, "poolId"); err != nil {
		return err
	}
	if err := validate.ID(equipmentID, "equipmentId"); err != nil {
		return err
	}
	body := buildRequest("SetUIHeaterModeCmd",
		intParam("poolId", poolID),
		aliasIntParam("HeaterID", "EquipmentID", equipmentID),
		aliasIntParam("Mode", "Data", int(mode)))
	_, err := c.call(ctx, omnitypes.MessageTypeSetHeaterModeCommand, body, false)
	return err
}

// SetHeaterEnable turns automatic heater control on or off without
// changing its set point.
func (c *Client) SetHeaterEnable(ctx context.Context, poolID, equipmentID int, enabled bool) error {
	if err := validate.ID(poolID, "poolId"); err != nil {
		return err
	}
	if err := validate.ID(equipmentID, "equipmentId"); err != nil {
		return err
	}
	body := buildRequest("SetHeaterEnable",
		intParam("poolId", poolID),
		aliasIntParam("HeaterID", "EquipmentID", equipmentID),
		aliasBoolParam("Enabled", "Data", enabled))
	_, err := c.call(ctx, omnitypes.MessageTypeSetHeaterEnabled, body, false)
	return err
}

// SetSpillover sets a spillover feature's flow rate as a percentage of
// its rated speed, optionally bounded to a scheduled window.
func (c *Client) SetSpillover(ctx context.Context, poolID, speedPercent int, sched Schedule) error {
	if err := validate.ID(poolID, "poolId"); err != nil {
		return err
	}
	if err := validate.Speed(speedPercent, "speed"); err != nil {
		return err
	}
	params := append([]param{
		intParam("poolId", poolID),
		intParam("Speed", speedPercent),
	}, sched.params()...)
	body := buildRequest("SetUISpilloverCmd", params...)
	_, err := c.call(ctx, omnitypes.MessageTypeSetSpillover, body, false)
	return err
}

// SetLightShow selects a ColorLogic light's active show, speed and
// brightness, optionally bounded to a scheduled window.
func (c *Client) SetLightShow(ctx context.Context, poolID, equipmentID, show, speed, brightness int, sched Schedule) error {
	if err := validate.ID(poolID, "poolId"); err != nil {
		return err
	}
	if err := validate.ID(equipmentID, "equipmentId"); err != nil {
		return err
	}
	params := append([]param{
		intParam("poolId", poolID),
		aliasIntParam("LightID", "equipment_id", equipmentID),
		byteParam("Show", show),
		byteParam("Speed", speed),
		byteParam("Brightness", brightness),
		byteParam("Reserved", 0),
	}, sched.params()...)
	body := buildRequest("SetStandAloneLightShow", params...)
	_, err := c.call(ctx, omnitypes.MessageTypeSetStandaloneLightShow, body, false)
	return err
}

// RunGroup turns a named equipment group on or off, optionally bounded
// to a scheduled window.
func (c *Client) RunGroup(ctx context.Context, groupID int, enabled bool, sched Schedule) error {
	if err := validate.ID(groupID, "groupId"); err != nil {
		return err
	}
	params := append([]param{
		intParam("GroupID", groupID),
		intParam("Data", btoi(enabled)),
	}, sched.params()...)
	body := buildRequest("RunGroupCmd", params...)
	_, err := c.call(ctx, omnitypes.MessageTypeRunGroupCmd, body, false)
	return err
}
