// Omni-cli is a command-line client for Hayward OmniLogic/OmniHub pool
// automation controllers.
//
// It communicates directly with a controller over UDP (default port
// 10444) and does not require cloud access or the OmniLogic mobile app.
// Every subcommand takes the controller address via --host/--port, or
// via a nickname previously saved in the local controller registry.
//
// Usage:
//
//	omni-cli [command] [flags]
//
// See 'omni-cli --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cryptk/omnilogic-local/internal/logging"
	"github.com/cryptk/omnilogic-local/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "omni-cli",
	Short: "Hayward OmniLogic/OmniHub controller CLI",
	Long: `A command-line client for Hayward OmniLogic/OmniHub pool automation
controllers.

Talks directly to a controller over UDP. Run 'omni-cli get <noun>' to
read live equipment state, or 'omni-cli debug <noun>' for lower-level
access to the raw configuration, telemetry, and diagnostics documents.`,
	Version: version.Version,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&controllerHost, "host", "", "Controller IP address or hostname")
	rootCmd.PersistentFlags().IntVar(&controllerPort, "port", 10444, "Controller UDP port")
	rootCmd.PersistentFlags().StringVar(&controllerNickname, "controller", "", "Saved controller nickname (see 'omni-cli controller')")
	rootCmd.PersistentFlags().Float64Var(&responseTimeout, "timeout", 5.0, "Response timeout in seconds")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Show the raw XML exchange when a command records one (current commands record none)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(equipmentCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(restoreIdleStateCmd)
	rootCmd.AddCommand(controllerCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("omni-cli %s\n", version.Full())
	},
}
