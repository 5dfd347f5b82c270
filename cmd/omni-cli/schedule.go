package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptk/omnilogic-local/internal/omniapi"
	"github.com/cryptk/omnilogic-local/internal/ui"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Create, edit, and delete equipment schedule entries",
}

var schedEdit omniapi.ScheduleEdit

func addScheduleEditFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&schedEdit.EquipmentID, "equipment-id", 0, "Equipment system ID the schedule controls")
	cmd.Flags().IntVar(&schedEdit.Data, "data", 0, "Equipment-specific command data (on/off, speed, set point)")
	cmd.Flags().IntVar(&schedEdit.ActionID, "action-id", 0, "Action ID code")
	cmd.Flags().IntVar(&schedEdit.StartHours, "start-hours", 0, "Start time, hours (0-23)")
	cmd.Flags().IntVar(&schedEdit.StartMins, "start-minutes", 0, "Start time, minutes (0-59)")
	cmd.Flags().IntVar(&schedEdit.EndHours, "end-hours", 0, "End time, hours (0-23)")
	cmd.Flags().IntVar(&schedEdit.EndMins, "end-minutes", 0, "End time, minutes (0-59)")
	cmd.Flags().IntVar(&schedEdit.DaysActive, "days-active", 0, "Bitmask of days the schedule runs")
	cmd.Flags().BoolVar(&schedEdit.Enabled, "enabled", true, "Enable the schedule entry")
	cmd.Flags().BoolVar(&schedEdit.Recurring, "recurring", true, "Repeat the schedule every week")
	_ = cmd.MarkFlagRequired("equipment-id")
}

var scheduleEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Modify an existing schedule entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		runner := ui.NewCommandRunner(ui.CommandRunnerConfig{
			Title:   "Edit Schedule",
			Command: "omni-cli schedule edit",
			Params:  map[string]string{"Equipment": fmt.Sprint(schedEdit.EquipmentID)},
			Verbose: verbose,
		})
		return runner.Run(context.Background(), func(ctx context.Context, onStep ui.StepCallback) error {
			return client.EditSchedule(ctx, schedEdit)
		})
	},
}

var schedBowID int

var scheduleCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a new schedule entry to a body of water",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		runner := ui.NewCommandRunner(ui.CommandRunnerConfig{
			Title:   "Create Schedule",
			Command: "omni-cli schedule create",
			Params:  map[string]string{"Pool": fmt.Sprint(schedBowID), "Equipment": fmt.Sprint(schedEdit.EquipmentID)},
			Verbose: verbose,
		})
		return runner.Run(context.Background(), func(ctx context.Context, onStep ui.StepCallback) error {
			return client.CreateSchedule(ctx, schedBowID, schedEdit)
		})
	},
}

var scheduleDeleteID int

var scheduleDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove a schedule entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.DeleteScheduleConfirmation(scheduleDeleteID) {
			return nil
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		runner := ui.NewCommandRunner(ui.CommandRunnerConfig{
			Title:   "Delete Schedule",
			Command: "omni-cli schedule delete",
			Params:  map[string]string{"Schedule": fmt.Sprint(scheduleDeleteID)},
			Verbose: verbose,
		})
		return runner.Run(context.Background(), func(ctx context.Context, onStep ui.StepCallback) error {
			return client.DeleteSchedule(ctx, scheduleDeleteID)
		})
	},
}

func init() {
	addScheduleEditFlags(scheduleEditCmd)

	addScheduleEditFlags(scheduleCreateCmd)
	scheduleCreateCmd.Flags().IntVar(&schedBowID, "pool-id", 0, "Body of water system ID to attach the schedule to")
	_ = scheduleCreateCmd.MarkFlagRequired("pool-id")

	scheduleDeleteCmd.Flags().IntVar(&scheduleDeleteID, "schedule-id", 0, "Schedule entry system ID")
	_ = scheduleDeleteCmd.MarkFlagRequired("schedule-id")

	scheduleCmd.AddCommand(scheduleEditCmd, scheduleCreateCmd, scheduleDeleteCmd)
}
