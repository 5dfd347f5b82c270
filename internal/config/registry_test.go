package config

import (
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !contains(configDir, "omnilogic-local") {
		t.Errorf("GetConfigDir() = %v, should contain 'omnilogic-local'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !contains(configDir, "AppData") && !contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}

	t.Logf("Config path: %s", configPath)
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}

	if reg.Controllers == nil {
		t.Error("NewRegistry().Controllers should not be nil")
	}

	if reg.Preferences == nil {
		t.Error("NewRegistry().Preferences should not be nil")
	}

	if reg.Preferences.AutoDiscover != true {
		t.Error("NewRegistry().Preferences.AutoDiscover should be true by default")
	}

	if reg.Preferences.DefaultPort != 10444 {
		t.Errorf("NewRegistry().Preferences.DefaultPort = %v, want 10444", reg.Preferences.DefaultPort)
	}
}

func TestRegistryEnsureController(t *testing.T) {
	reg := NewRegistry()

	c1 := reg.EnsureController("controller-a")
	if c1 == nil {
		t.Fatal("EnsureController() returned nil")
	}

	c2 := reg.EnsureController("controller-a")
	if c1 != c2 {
		t.Error("EnsureController() should return same instance for same id")
	}

	c3 := reg.EnsureController("controller-b")
	if c1 == c3 {
		t.Error("EnsureController() should create new instance for different id")
	}
}

func TestRegistryUpdateControllerLastSeen(t *testing.T) {
	reg := NewRegistry()

	before := time.Now()
	reg.UpdateControllerLastSeen("controller-a", "192.168.1.100", 10444)
	after := time.Now()

	controller := reg.GetController("controller-a")
	if controller == nil {
		t.Fatal("Controller should exist after UpdateControllerLastSeen()")
	}

	if controller.LastHost != "192.168.1.100" {
		t.Errorf("LastHost = %v, want 192.168.1.100", controller.LastHost)
	}
	if controller.LastPort != 10444 {
		t.Errorf("LastPort = %v, want 10444", controller.LastPort)
	}

	if controller.LastSeen.Before(before) || controller.LastSeen.After(after) {
		t.Errorf("LastSeen = %v, should be between %v and %v", controller.LastSeen, before, after)
	}
}

func TestRegistrySetBowLabel(t *testing.T) {
	reg := NewRegistry()

	reg.SetBowLabel("controller-a", 7, "Pool")

	controller := reg.GetController("controller-a")
	if controller == nil {
		t.Fatal("Controller should exist after SetBowLabel()")
	}

	if controller.BowLabels[7] != "Pool" {
		t.Errorf("BowLabels[7] = %v, want Pool", controller.BowLabels[7])
	}
}

func TestRegistrySetEquipLabel(t *testing.T) {
	reg := NewRegistry()

	reg.SetEquipLabel("controller-a", 8, "Filter Pump")

	controller := reg.GetController("controller-a")
	if controller == nil {
		t.Fatal("Controller should exist after SetEquipLabel()")
	}

	if controller.EquipLabels[8] != "Filter Pump" {
		t.Errorf("EquipLabels[8] = %v, want Filter Pump", controller.EquipLabels[8])
	}
}

func TestRegistrySetControllerNickname(t *testing.T) {
	reg := NewRegistry()

	reg.SetControllerNickname("controller-a", "Backyard Pool")

	controller := reg.GetController("controller-a")
	if controller == nil {
		t.Fatal("Controller should exist after SetControllerNickname()")
	}

	if controller.Nickname != "Backyard Pool" {
		t.Errorf("Nickname = %v, want 'Backyard Pool'", controller.Nickname)
	}
}

func TestRegistryMarshalRoundTrip(t *testing.T) {
	reg := NewRegistry()
	reg.SetControllerNickname("controller-a", "Test Controller")
	reg.SetBowLabel("controller-a", 7, "Pool")
	reg.UpdateControllerLastSeen("controller-a", "192.168.1.100", 10444)

	data, err := yaml.Marshal(reg)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}

	var loaded Registry
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}

	controller := loaded.GetController("controller-a")
	if controller == nil {
		t.Fatal("Controller should exist in round-tripped registry")
	}
	if controller.Nickname != "Test Controller" {
		t.Errorf("Loaded nickname = %v, want 'Test Controller'", controller.Nickname)
	}
	if controller.BowLabels[7] != "Pool" {
		t.Errorf("Loaded BowLabels[7] = %v, want Pool", controller.BowLabels[7])
	}
}

// Helper functions

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && (s[:len(substr)] == substr || contains(s[1:], substr))))
}

// Benchmark tests

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}

func BenchmarkEnsureController(b *testing.B) {
	reg := NewRegistry()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.EnsureController("controller-a")
	}
}

func BenchmarkSetBowLabel(b *testing.B) {
	reg := NewRegistry()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.SetBowLabel("controller-a", 7, "Pool")
	}
}
