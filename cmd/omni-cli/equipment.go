package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptk/omnilogic-local/internal/omniapi"
	"github.com/cryptk/omnilogic-local/internal/omnitypes"
	"github.com/cryptk/omnilogic-local/internal/ui"
)

var equipmentCmd = &cobra.Command{
	Use:   "equipment",
	Short: "Turn equipment on/off and change set points",
}

// equipmentFlags are shared by most equipment subcommands: the body of
// water and the piece of equipment within it.
var (
	eqPoolID  int
	eqEquipID int
)

func addEquipmentIDFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&eqPoolID, "pool-id", 0, "Body of water system ID")
	cmd.Flags().IntVar(&eqEquipID, "equipment-id", 0, "Equipment system ID")
	_ = cmd.MarkFlagRequired("pool-id")
	_ = cmd.MarkFlagRequired("equipment-id")
}

// runEquipmentCommand wraps a single omniapi call in a CommandRunner so
// every equipment subcommand reports progress and results the same way.
func runEquipmentCommand(title, command string, params map[string]string, op func(ctx context.Context, client *omniapi.Client) error) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	runner := ui.NewCommandRunner(ui.CommandRunnerConfig{
		Title:   title,
		Command: command,
		Params:  params,
		Verbose: verbose,
	})

	return runner.Run(context.Background(), func(ctx context.Context, onStep ui.StepCallback) error {
		return op(ctx, client)
	})
}

var equipmentOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Turn a relay-driven piece of equipment on",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEquipmentCommand("Turn Equipment On", "omni-cli equipment on",
			map[string]string{"Pool": fmt.Sprint(eqPoolID), "Equipment": fmt.Sprint(eqEquipID)},
			func(ctx context.Context, client *omniapi.Client) error {
				return client.SetEquipment(ctx, eqPoolID, eqEquipID, 1, omniapi.Schedule{})
			})
	},
}

var equipmentOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Turn a relay-driven piece of equipment off",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEquipmentCommand("Turn Equipment Off", "omni-cli equipment off",
			map[string]string{"Pool": fmt.Sprint(eqPoolID), "Equipment": fmt.Sprint(eqEquipID)},
			func(ctx context.Context, client *omniapi.Client) error {
				return client.SetEquipment(ctx, eqPoolID, eqEquipID, 0, omniapi.Schedule{})
			})
	},
}

var eqSpeedPercent int

var equipmentSetSpeedCmd = &cobra.Command{
	Use:   "set-speed",
	Short: "Set a variable-speed filter pump's duty cycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEquipmentCommand("Set Filter Speed", "omni-cli equipment set-speed",
			map[string]string{"Pool": fmt.Sprint(eqPoolID), "Equipment": fmt.Sprint(eqEquipID), "Speed": fmt.Sprintf("%d%%", eqSpeedPercent)},
			func(ctx context.Context, client *omniapi.Client) error {
				return client.SetFilterSpeed(ctx, eqPoolID, eqEquipID, eqSpeedPercent)
			})
	},
}

var eqTemperatureF int

var equipmentSetHeaterCmd = &cobra.Command{
	Use:   "set-heater",
	Short: "Set a heater's target temperature",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEquipmentCommand("Set Heater Temperature", "omni-cli equipment set-heater",
			map[string]string{"Pool": fmt.Sprint(eqPoolID), "Equipment": fmt.Sprint(eqEquipID), "Temperature": fmt.Sprintf("%dF", eqTemperatureF)},
			func(ctx context.Context, client *omniapi.Client) error {
				return client.SetHeater(ctx, eqPoolID, eqEquipID, eqTemperatureF)
			})
	},
}

var equipmentSetSolarHeaterCmd = &cobra.Command{
	Use:   "set-solar-heater",
	Short: "Set a solar heater's target temperature",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEquipmentCommand("Set Solar Heater Temperature", "omni-cli equipment set-solar-heater",
			map[string]string{"Pool": fmt.Sprint(eqPoolID), "Equipment": fmt.Sprint(eqEquipID), "Temperature": fmt.Sprintf("%dF", eqTemperatureF)},
			func(ctx context.Context, client *omniapi.Client) error {
				return client.SetSolarHeater(ctx, eqPoolID, eqEquipID, eqTemperatureF)
			})
	},
}

var eqHeaterMode string

var equipmentSetHeaterModeCmd = &cobra.Command{
	Use:   "set-heater-mode",
	Short: "Switch a virtual heater's heating source (heat, cool, auto)",
	RunE: func(cmd *cobra.Command, args []string) error {
		var mode omnitypes.HeaterMode
		switch eqHeaterMode {
		case "heat":
			mode = omnitypes.HeaterModeHeat
		case "cool":
			mode = omnitypes.HeaterModeCool
		case "auto":
			mode = omnitypes.HeaterModeAuto
		default:
			return fmt.Errorf("unknown heater mode %q, want heat, cool, or auto", eqHeaterMode)
		}
		return runEquipmentCommand("Set Heater Mode", "omni-cli equipment set-heater-mode",
			map[string]string{"Pool": fmt.Sprint(eqPoolID), "Equipment": fmt.Sprint(eqEquipID), "Mode": eqHeaterMode},
			func(ctx context.Context, client *omniapi.Client) error {
				return client.SetHeaterMode(ctx, eqPoolID, eqEquipID, mode)
			})
	},
}

var eqHeaterEnabled bool

var equipmentSetHeaterEnableCmd = &cobra.Command{
	Use:   "set-heater-enable",
	Short: "Enable or disable automatic heater control",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEquipmentCommand("Set Heater Enable", "omni-cli equipment set-heater-enable",
			map[string]string{"Pool": fmt.Sprint(eqPoolID), "Equipment": fmt.Sprint(eqEquipID), "Enabled": fmt.Sprint(eqHeaterEnabled)},
			func(ctx context.Context, client *omniapi.Client) error {
				return client.SetHeaterEnable(ctx, eqPoolID, eqEquipID, eqHeaterEnabled)
			})
	},
}

var equipmentSetSpilloverCmd = &cobra.Command{
	Use:   "set-spillover",
	Short: "Set a spillover feature's flow rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEquipmentCommand("Set Spillover Speed", "omni-cli equipment set-spillover",
			map[string]string{"Pool": fmt.Sprint(eqPoolID), "Speed": fmt.Sprintf("%d%%", eqSpeedPercent)},
			func(ctx context.Context, client *omniapi.Client) error {
				return client.SetSpillover(ctx, eqPoolID, eqSpeedPercent, omniapi.Schedule{})
			})
	},
}

var (
	eqLightShow       int
	eqLightSpeed      int
	eqLightBrightness int
)

var equipmentSetLightShowCmd = &cobra.Command{
	Use:   "set-light-show",
	Short: "Select a ColorLogic light's active show, speed, and brightness",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEquipmentCommand("Set Light Show", "omni-cli equipment set-light-show",
			map[string]string{
				"Pool": fmt.Sprint(eqPoolID), "Equipment": fmt.Sprint(eqEquipID),
				"Show": fmt.Sprint(eqLightShow), "Speed": fmt.Sprint(eqLightSpeed), "Brightness": fmt.Sprint(eqLightBrightness),
			},
			func(ctx context.Context, client *omniapi.Client) error {
				return client.SetLightShow(ctx, eqPoolID, eqEquipID, eqLightShow, eqLightSpeed, eqLightBrightness, omniapi.Schedule{})
			})
	},
}

var (
	eqGroupID      int
	eqGroupEnabled bool
)

var equipmentRunGroupCmd = &cobra.Command{
	Use:   "run-group",
	Short: "Turn a named equipment group on or off",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEquipmentCommand("Run Group", "omni-cli equipment run-group",
			map[string]string{"Group": fmt.Sprint(eqGroupID), "Enabled": fmt.Sprint(eqGroupEnabled)},
			func(ctx context.Context, client *omniapi.Client) error {
				return client.RunGroup(ctx, eqGroupID, eqGroupEnabled, omniapi.Schedule{})
			})
	},
}

var chlorEnabled bool

var equipmentSetChlorEnableCmd = &cobra.Command{
	Use:   "set-chlorinator-enable",
	Short: "Turn salt/liquid chlorination on or off for a body of water",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEquipmentCommand("Set Chlorinator Enable", "omni-cli equipment set-chlorinator-enable",
			map[string]string{"Pool": fmt.Sprint(eqPoolID), "Enabled": fmt.Sprint(chlorEnabled)},
			func(ctx context.Context, client *omniapi.Client) error {
				return client.SetChlorinatorEnable(ctx, eqPoolID, chlorEnabled)
			})
	},
}

var (
	chlorOperatingMode int
	chlorBowType       int
	chlorCellType      int
	chlorTimedPercent  int
	chlorSCHours       int
	chlorORPHours      int
)

var equipmentSetChlorParamsCmd = &cobra.Command{
	Use:   "set-chlorinator-params",
	Short: "Reconfigure a chlorinator's dosing mode, cell type, and timeouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := omniapi.ChlorinatorParams{
			EquipmentID:     eqEquipID,
			OperatingMode:   omnitypes.ChlorinatorOperatingMode(chlorOperatingMode),
			BowType:         chlorBowType,
			CellType:        omnitypes.ChlorinatorCellInt(chlorCellType),
			TimedPercent:    chlorTimedPercent,
			SCTimeoutHours:  chlorSCHours,
			ORPTimeoutHours: chlorORPHours,
		}
		return runEquipmentCommand("Set Chlorinator Params", "omni-cli equipment set-chlorinator-params",
			map[string]string{"Pool": fmt.Sprint(eqPoolID), "Equipment": fmt.Sprint(eqEquipID), "TimedPercent": fmt.Sprintf("%d%%", chlorTimedPercent)},
			func(ctx context.Context, client *omniapi.Client) error {
				return client.SetChlorinatorParams(ctx, eqPoolID, params)
			})
	},
}

var chlorSuperEnabled bool

var equipmentSetChlorSuperCmd = &cobra.Command{
	Use:   "set-chlorinator-superchlorinate",
	Short: "Start or stop superchlorination",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEquipmentCommand("Set Superchlorinate", "omni-cli equipment set-chlorinator-superchlorinate",
			map[string]string{"Pool": fmt.Sprint(eqPoolID), "Equipment": fmt.Sprint(eqEquipID), "Enabled": fmt.Sprint(chlorSuperEnabled)},
			func(ctx context.Context, client *omniapi.Client) error {
				return client.SetChlorinatorSuperchlorinate(ctx, eqPoolID, eqEquipID, chlorSuperEnabled)
			})
	},
}

func init() {
	addEquipmentIDFlags(equipmentOnCmd)
	addEquipmentIDFlags(equipmentOffCmd)

	addEquipmentIDFlags(equipmentSetSpeedCmd)
	equipmentSetSpeedCmd.Flags().IntVar(&eqSpeedPercent, "speed", 0, "Duty cycle, as a percentage of rated speed")

	addEquipmentIDFlags(equipmentSetHeaterCmd)
	equipmentSetHeaterCmd.Flags().IntVar(&eqTemperatureF, "temperature", 0, "Target temperature, in degrees Fahrenheit")

	addEquipmentIDFlags(equipmentSetSolarHeaterCmd)
	equipmentSetSolarHeaterCmd.Flags().IntVar(&eqTemperatureF, "temperature", 0, "Target temperature, in degrees Fahrenheit")

	addEquipmentIDFlags(equipmentSetHeaterModeCmd)
	equipmentSetHeaterModeCmd.Flags().StringVar(&eqHeaterMode, "mode", "auto", "Heating source: heat, cool, or auto")

	addEquipmentIDFlags(equipmentSetHeaterEnableCmd)
	equipmentSetHeaterEnableCmd.Flags().BoolVar(&eqHeaterEnabled, "enabled", true, "Enable automatic heater control")

	equipmentSetSpilloverCmd.Flags().IntVar(&eqPoolID, "pool-id", 0, "Body of water system ID")
	equipmentSetSpilloverCmd.Flags().IntVar(&eqSpeedPercent, "speed", 0, "Spillover flow rate, as a percentage of rated speed")
	_ = equipmentSetSpilloverCmd.MarkFlagRequired("pool-id")

	addEquipmentIDFlags(equipmentSetLightShowCmd)
	equipmentSetLightShowCmd.Flags().IntVar(&eqLightShow, "show", 0, "Show number")
	equipmentSetLightShowCmd.Flags().IntVar(&eqLightSpeed, "speed", 4, "Show speed")
	equipmentSetLightShowCmd.Flags().IntVar(&eqLightBrightness, "brightness", 4, "Show brightness")

	equipmentRunGroupCmd.Flags().IntVar(&eqGroupID, "group-id", 0, "Group system ID")
	equipmentRunGroupCmd.Flags().BoolVar(&eqGroupEnabled, "enabled", true, "Turn the group on (true) or off (false)")
	_ = equipmentRunGroupCmd.MarkFlagRequired("group-id")

	equipmentSetChlorEnableCmd.Flags().IntVar(&eqPoolID, "pool-id", 0, "Body of water system ID")
	equipmentSetChlorEnableCmd.Flags().BoolVar(&chlorEnabled, "enabled", true, "Enable chlorination")
	_ = equipmentSetChlorEnableCmd.MarkFlagRequired("pool-id")

	addEquipmentIDFlags(equipmentSetChlorParamsCmd)
	equipmentSetChlorParamsCmd.Flags().IntVar(&chlorOperatingMode, "operating-mode", 1, "0=disabled 1=timed 2=orp-auto 3=orp-timed-rw")
	equipmentSetChlorParamsCmd.Flags().IntVar(&chlorBowType, "bow-type", 0, "Body of water type code")
	equipmentSetChlorParamsCmd.Flags().IntVar(&chlorCellType, "cell-type", 0, "Chlorinator cell type code")
	equipmentSetChlorParamsCmd.Flags().IntVar(&chlorTimedPercent, "timed-percent", 50, "Timed-mode output percentage")
	equipmentSetChlorParamsCmd.Flags().IntVar(&chlorSCHours, "superchlorinate-hours", 0, "Superchlorinate timeout, in hours")
	equipmentSetChlorParamsCmd.Flags().IntVar(&chlorORPHours, "orp-timeout-hours", 0, "ORP timeout, in hours")

	addEquipmentIDFlags(equipmentSetChlorSuperCmd)
	equipmentSetChlorSuperCmd.Flags().BoolVar(&chlorSuperEnabled, "enabled", true, "Start (true) or stop (false) superchlorination")

	equipmentCmd.AddCommand(
		equipmentOnCmd, equipmentOffCmd,
		equipmentSetSpeedCmd, equipmentSetHeaterCmd, equipmentSetSolarHeaterCmd,
		equipmentSetHeaterModeCmd, equipmentSetHeaterEnableCmd,
		equipmentSetSpilloverCmd, equipmentSetLightShowCmd, equipmentRunGroupCmd,
		equipmentSetChlorEnableCmd, equipmentSetChlorParamsCmd, equipmentSetChlorSuperCmd,
	)
}
