package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cryptk/omnilogic-local/internal/ui"
)

var restoreIdleStateCmd = &cobra.Command{
	Use:   "restore-idle-state",
	Short: "Stop all running equipment and return the controller to idle",
	Long: `Tells the controller to abandon any in-progress equipment transitions
and return to its scheduled idle state. This stops every pump, heater, and
light show that is currently running - it is not scoped to a single body of
water or piece of equipment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.RestoreIdleStateConfirmation() {
			return nil
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		runner := ui.NewCommandRunner(ui.CommandRunnerConfig{
			Title:   "Restore Idle State",
			Command: "omni-cli restore-idle-state",
			Verbose: verbose,
		})
		return runner.Run(context.Background(), func(ctx context.Context, onStep ui.StepCallback) error {
			return client.RestoreIdleState(ctx)
		})
	},
}
