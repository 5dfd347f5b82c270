package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Low-level access to raw controller documents",
	Long: `Subcommands that bypass the parsed config/telemetry models and talk
to a controller at a lower level than 'get' does. Useful when tracking down a
parsing gap or a pump/filter problem the higher-level commands don't surface.`,
}

var debugRaw bool

func init() {
	debugCmd.PersistentFlags().BoolVar(&debugRaw, "raw", false, "Print the raw XML document instead of a formatted summary")

	debugCmd.AddCommand(debugGetMSPConfigCmd, debugGetTelemetryCmd, debugGetFilterDiagnosticsCmd)
}

var debugGetMSPConfigCmd = &cobra.Command{
	Use:   "get-mspconfig",
	Short: "Fetch the controller's equipment configuration document",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx := context.Background()

		if debugRaw {
			doc, err := client.GetConfigRaw(ctx)
			if err != nil {
				return err
			}
			fmt.Println(doc)
			return nil
		}

		cfg, err := client.GetConfig(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Units: %s  Speed format: %s\n", cfg.System.Units, cfg.System.VSPSpeedFormat)
		fmt.Printf("Bodies of water: %d\n", len(cfg.Backyard.BodiesOfWater))
		for _, bow := range cfg.Backyard.BodiesOfWater {
			hasHeater := bow.Heater != nil
			fmt.Printf("  [%d] %s (type %s): %d filters, heater=%t, %d relays, %d lights\n",
				bow.SystemID, bow.Name, string(bow.Type),
				len(bow.Filter), hasHeater, len(bow.Relay), len(bow.ColorLogicLight))
		}
		return nil
	},
}

var debugGetTelemetryCmd = &cobra.Command{
	Use:   "get-telemetry",
	Short: "Fetch a live telemetry snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx := context.Background()

		if debugRaw {
			doc, err := client.GetTelemetryRaw(ctx)
			if err != nil {
				return err
			}
			fmt.Println(doc)
			return nil
		}

		snap, err := client.GetTelemetry(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Air temp: %d  State: %d  Status version: %d\n",
			snap.Backyard.AirTemp, snap.Backyard.State, snap.Backyard.StatusVersion)
		fmt.Printf("Bodies of water: %d  Filters: %d  Heaters: %d  Chlorinators: %d  Lights: %d\n",
			len(snap.BoW), len(snap.Filter), len(snap.Heater), len(snap.Chlorinator), len(snap.ColorLogicLight))
		return nil
	},
}

var (
	diagPoolID  int
	diagEquipID int
)

var debugGetFilterDiagnosticsCmd = &cobra.Command{
	Use:   "get-filter-diagnostics",
	Short: "Fetch a filter/pump's diagnostic counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx := context.Background()

		diag, err := client.GetFilterDiagnostics(ctx, diagPoolID, diagEquipID)
		if err != nil {
			return err
		}

		if debugRaw {
			for _, p := range diag.Parameters {
				fmt.Printf("%s (%s) = %s\n", p.Name, p.DataType, p.Value)
			}
			return nil
		}

		drive, err := diag.FirmwareRevision("drive")
		if err != nil {
			return err
		}
		display, err := diag.FirmwareRevision("display")
		if err != nil {
			return err
		}
		power, err := diag.Power()
		if err != nil {
			return err
		}
		errStatus, err := diag.ErrorStatus()
		if err != nil {
			return err
		}

		fmt.Printf("DRIVE FW REV: %s\n", drive)
		fmt.Printf("DISPLAY FW REV: %s\n", display)
		fmt.Printf("POWER: %xW\n", power)
		fmt.Printf("ERROR STATUS: %d\n", errStatus)
		return nil
	},
}

func init() {
	debugGetFilterDiagnosticsCmd.Flags().IntVar(&diagPoolID, "pool-id", 0, "Body of water system ID")
	debugGetFilterDiagnosticsCmd.Flags().IntVar(&diagEquipID, "filter-id", 0, "Filter/pump equipment system ID")
	_ = debugGetFilterDiagnosticsCmd.MarkFlagRequired("pool-id")
	_ = debugGetFilterDiagnosticsCmd.MarkFlagRequired("filter-id")
}
