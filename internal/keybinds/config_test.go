package keybinds

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybinds.json")

	config := &Config{
		Version: "1.0",
		Number: map[string]string{
			"+": "increment",
			"_": "decrement",
		},
	}

	if err := SaveConfig(config, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Version != "1.0" {
		t.Errorf("Expected version '1.0', got %q", loaded.Version)
	}
	if loaded.Number["+"] != "increment" {
		t.Errorf("Expected '+' -> increment, got %q", loaded.Number["+"])
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybinds.json")

	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestApplyConfigOverridesDefaults(t *testing.T) {
	r := NewDefaultRegistry(false)

	config := &Config{
		Version: "1.0",
		Number: map[string]string{
			"ctrl+n": "noop",
		},
	}

	if err := ApplyConfig(r, config); err != nil {
		t.Fatalf("ApplyConfig failed: %v", err)
	}

	if action, _ := r.Match(ContextNumber, "ctrl+n"); action != ActionNoOp {
		t.Errorf("Expected ctrl+n remapped to noop, got %s", action)
	}

	// Untouched defaults survive
	if action, _ := r.Match(ContextNumber, "down"); action != ActionDecrement {
		t.Errorf("Expected 'down' default to survive, got %s", action)
	}
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	r, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.json"), false)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}

	if action, _ := r.Match(ContextNumber, "up"); action != ActionIncrement {
		t.Error("Expected default registry when config file is missing")
	}
}

func TestLoadOrDefaultAppliesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybinds.json")

	config := &Config{
		Version: "1.0",
		Number:  map[string]string{"+": "increment"},
	}
	if err := SaveConfig(config, path); err != nil {
		t.Fatal(err)
	}

	r, err := LoadOrDefault(path, false)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}

	if action, _ := r.Match(ContextNumber, "+"); action != ActionIncrement {
		t.Error("Expected user binding applied over defaults")
	}
}

func TestLoadOrDefaultRejectsUnknownAction(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybinds.json")

	config := &Config{
		Version: "1.0",
		Number:  map[string]string{"x": "explode"},
	}
	if err := SaveConfig(config, path); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOrDefault(path, false); err == nil {
		t.Error("Expected error for config with unknown action")
	}
}

func TestCreateExampleConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybinds.json")

	if err := CreateExampleConfig(path); err != nil {
		t.Fatalf("CreateExampleConfig failed: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Example config does not load: %v", err)
	}

	// The example must be valid against the validator
	if result := ValidateConfig(config); result.HasErrors() {
		t.Errorf("Example config has validation errors:\n%s", result.String())
	}

	if config.Number["up"] != "increment" {
		t.Errorf("Expected example to map up -> increment, got %q", config.Number["up"])
	}
}
