package main

import (
	"fmt"

	"github.com/cryptk/omnilogic-local/internal/config"
	"github.com/cryptk/omnilogic-local/internal/omniapi"
)

// Persistent flags shared by every subcommand.
var (
	controllerHost     string
	controllerPort     int
	controllerNickname string
	responseTimeout    float64
	verbose            bool
	outputFormat       string
)

// resolveController returns the host/port to dial, preferring an
// explicit --host over a saved --controller nickname.
func resolveController() (host string, port int, err error) {
	if controllerHost != "" {
		return controllerHost, controllerPort, nil
	}

	if controllerNickname == "" {
		return "", 0, fmt.Errorf("specify --host or --controller (see 'omni-cli controller list')")
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return "", 0, fmt.Errorf("failed to load controller registry: %w", err)
	}

	for id, c := range registry.Controllers {
		if c.Nickname == controllerNickname {
			if c.LastHost == "" {
				return "", 0, fmt.Errorf("controller %q (%s) has no saved host; reconnect with --host once first", controllerNickname, id)
			}
			return c.LastHost, c.LastPort, nil
		}
	}

	return "", 0, fmt.Errorf("no saved controller named %q (see 'omni-cli controller list')", controllerNickname)
}

// newClient resolves the controller address and builds a ready client.
func newClient() (*omniapi.Client, error) {
	host, port, err := resolveController()
	if err != nil {
		return nil, err
	}
	return omniapi.NewClient(host, port, responseTimeout)
}
