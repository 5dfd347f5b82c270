// Package config provides user configuration management for the
// OmniLogic/OmniHub client.
//
// This package manages a YAML-based configuration file that stores
// user-defined metadata for controllers, including nicknames, last
// known host/port, body-of-water and equipment labels, and
// application preferences. The configuration follows OS-specific
// conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/omnilogic-local/config.yaml or $HOME/.config/omnilogic-local/config.yaml
//   - macOS: $HOME/.config/omnilogic-local/config.yaml
//   - Windows: %LOCALAPPDATA%\omnilogic-local\config.yaml
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	controller := registry.EnsureController("backyard-pool")
//	controller.Nickname = "Backyard Pool"
//	registry.SetBowLabel("backyard-pool", 7, "Pool")
//
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure
// atomic writes.
package config
