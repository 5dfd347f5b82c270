// Omni-monitor is a live terminal dashboard for a single Hayward
// OmniLogic/OmniHub controller. It polls the controller's telemetry
// endpoint on an interval and redraws the backyard, body-of-water,
// filter, heater, and chlorinator state as it changes.
//
// Usage:
//
//	omni-monitor --host 192.168.1.50 [--port 10444] [--interval 5s]
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/cryptk/omnilogic-local/internal/config"
	"github.com/cryptk/omnilogic-local/internal/logging"
	"github.com/cryptk/omnilogic-local/internal/omniapi"
	"github.com/cryptk/omnilogic-local/internal/version"
)

func main() {
	var (
		host        string
		port        int
		nickname    string
		interval    time.Duration
		timeout     float64
		showVersion bool
	)

	pflag.StringVar(&host, "host", "", "Controller IP address or hostname")
	pflag.IntVar(&port, "port", 10444, "Controller UDP port")
	pflag.StringVar(&nickname, "controller", "", "Saved controller nickname")
	pflag.DurationVar(&interval, "interval", 5*time.Second, "Telemetry poll interval")
	pflag.Float64Var(&timeout, "timeout", 5.0, "Per-request response timeout, in seconds")
	pflag.BoolVar(&showVersion, "version", false, "Print version information and exit")
	pflag.Parse()

	if showVersion {
		fmt.Printf("omni-monitor %s\n", version.Full())
		return
	}

	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if host == "" && nickname != "" {
		registry, err := config.LoadRegistry()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load controller registry: %v\n", err)
			os.Exit(1)
		}
		found := false
		for _, c := range registry.Controllers {
			if c.Nickname == nickname && c.LastHost != "" {
				host, port = c.LastHost, c.LastPort
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "Error: no saved controller named %q with a known host\n", nickname)
			os.Exit(1)
		}
	}

	if host == "" {
		fmt.Fprintln(os.Stderr, "Error: specify --host or --controller")
		os.Exit(1)
	}

	client, err := omniapi.NewClient(host, port, timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model := newModel(client, host, port, interval)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
