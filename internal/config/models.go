package config

import "time"

// Registry represents the entire user configuration file.
// This stores user-defined metadata for controllers and application preferences.
type Registry struct {
	Version     int                    `yaml:"version"`
	Controllers map[string]*Controller `yaml:"controllers,omitempty"` // Keyed by the local controller id the user chooses
	Preferences *Preferences           `yaml:"preferences,omitempty"`
}

// Controller represents user-defined metadata for a single OmniLogic/OmniHub
// controller, keyed in the Registry by a local id the user chooses.
type Controller struct {
	Nickname     string    `yaml:"nickname,omitempty"`      // User-friendly name, e.g. "Backyard Pool"
	LastHost     string    `yaml:"last_host,omitempty"`     // Last known host/IP address
	LastPort     int       `yaml:"last_port,omitempty"`     // Last known UDP port (usually 10444)
	LastSeen     time.Time `yaml:"last_seen,omitempty"`     // Last successful connection time
	ConfigSHA    string    `yaml:"config_sha,omitempty"`    // Digest of the last retrieved MSP config, for change detection
	BowLabels    map[int]string `yaml:"bow_labels,omitempty"`    // User labels for body-of-water system ids
	EquipLabels  map[int]string `yaml:"equip_labels,omitempty"`  // User labels for equipment system ids
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	AutoDiscover           bool    `yaml:"auto_discover"`             // Stored only; no command reads it and the client performs no discovery
	DiscoverTimeoutSeconds float64 `yaml:"discover_timeout_seconds"`  // Stored only, in seconds; no command reads it
	ResponseTimeoutSeconds float64 `yaml:"response_timeout_seconds"`  // Default per-call response timeout, in seconds
	DefaultPort            int     `yaml:"default_port"`              // Default controller UDP port
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Controllers: make(map[string]*Controller),
		Preferences: &Preferences{
			AutoDiscover:           true,
			DiscoverTimeoutSeconds: 5,
			ResponseTimeoutSeconds: 5,
			DefaultPort:            10444,
		},
	}
}

// GetController retrieves controller metadata by its registry id.
// Returns nil if the controller doesn't exist in the registry.
func (r *Registry) GetController(id string) *Controller {
	return r.Controllers[id]
}

// EnsureController ensures a controller entry exists in the registry.
// If it doesn't exist, creates a new entry with default values.
// Returns the entry (existing or newly created).
func (r *Registry) EnsureController(id string) *Controller {
	if r.Controllers == nil {
		r.Controllers = make(map[string]*Controller)
	}

	if controller, exists := r.Controllers[id]; exists {
		return controller
	}

	controller := &Controller{
		BowLabels:   make(map[int]string),
		EquipLabels: make(map[int]string),
	}
	r.Controllers[id] = controller
	return controller
}

// UpdateControllerLastSeen updates the last-connected host, port and
// timestamp for a controller.
func (r *Registry) UpdateControllerLastSeen(id, host string, port int) {
	controller := r.EnsureController(id)
	controller.LastSeen = time.Now()
	controller.LastHost = host
	controller.LastPort = port
}

// SetControllerNickname sets a user-friendly nickname for a controller.
func (r *Registry) SetControllerNickname(id, nickname string) {
	controller := r.EnsureController(id)
	controller.Nickname = nickname
}

// SetBowLabel sets a user label for a body-of-water system id.
func (r *Registry) SetBowLabel(id string, bowSystemID int, label string) {
	controller := r.EnsureController(id)
	if controller.BowLabels == nil {
		controller.BowLabels = make(map[int]string)
	}
	controller.BowLabels[bowSystemID] = label
}

// SetEquipLabel sets a user label for an equipment system id.
func (r *Registry) SetEquipLabel(id string, equipSystemID int, label string) {
	controller := r.EnsureController(id)
	if controller.EquipLabels == nil {
		controller.EquipLabels = make(map[int]string)
	}
	controller.EquipLabels[equipSystemID] = label
}
