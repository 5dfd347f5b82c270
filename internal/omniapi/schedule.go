package omniapi

import (
	"context"

	"github.com/cryptk/omnilogic-local/internal/omnitypes"
	"github.com/cryptk/omnilogic-local/internal/validate"
)

// ScheduleEdit bundles the fields an EditSchedule command can change on
// an existing "aux on a timer" style schedule entry.
type ScheduleEdit struct {
	EquipmentID int
	Data        int
	ActionID    int
	StartHours  int
	StartMins   int
	EndHours    int
	EndMins     int
	DaysActive  int
	Enabled     bool
	Recurring   bool
}

// EditSchedule modifies an existing schedule entry in place.
func (c *Client) EditSchedule(ctx context.Context, e ScheduleEdit) error {
	if err := validate.ID(e.EquipmentID, "equipmentId"); err != nil {
		return err
	}
	body := buildRequest("EditUIScheduleCmd",
		intParam("EquipmentID", e.EquipmentID),
		intParam("Data", e.Data),
		intParam("ActionID", e.ActionID),
		intParam("StartTimeHours", e.StartHours),
		intParam("StartTimeMinutes", e.StartMins),
		intParam("EndTimeHours", e.EndHours),
		intParam("EndTimeMinutes", e.EndMins),
		intParam("DaysActive", e.DaysActive),
		boolParam("IsEnabled", e.Enabled),
		boolParam("Recurring", e.Recurring))
	_, err := c.call(ctx, omnitypes.MessageTypeEditSchedule, body, false)
	return err
}

// CreateSchedule adds a new schedule entry tied to a body of water. It
// returns only an error; the SystemID the controller assigns the new
// entry is not reported back. The request shape
// mirrors EditSchedule's, adding the owning body-of-water id that only
// creation (not editing) needs to specify.
func (c *Client) CreateSchedule(ctx context.Context, bowID int, e ScheduleEdit) error {
	if err := validate.ID(bowID, "bowId"); err != nil {
		return err
	}
	if err := validate.ID(e.EquipmentID, "equipmentId"); err != nil {
		return err
	}
	body := buildRequest("CreateUIScheduleCmd",
		intParam("BowID", bowID),
		intParam("EquipmentID", e.EquipmentID),
		intParam("Data", e.Data),
		intParam("ActionID", e.ActionID),
		intParam("StartTimeHours", e.StartHours),
		intParam("StartTimeMinutes", e.StartMins),
		intParam("EndTimeHours", e.EndHours),
		intParam("EndTimeMinutes", e.EndMins),
		intParam("DaysActive", e.DaysActive),
		boolParam("IsEnabled", e.Enabled),
		boolParam("Recurring", e.Recurring))
	_, err := c.call(ctx, omnitypes.MessageTypeCreateSchedule, body, false)
	return err
}

// DeleteSchedule removes a schedule entry by its SystemID.
func (c *Client) DeleteSchedule(ctx context.Context, scheduleID int) error {
	if err := validate.ID(scheduleID, "scheduleId"); err != nil {
		return err
	}
	body := buildRequest("DeleteUIScheduleCmd", intParam("ScheduleID", scheduleID))
	_, err := c.call(ctx, omnitypes.MessageTypeDeleteSchedule, body, false)
	return err
}
