package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the user's keybinding configuration.
// Each section maps a key (in its terminal representation, e.g. "ctrl+n",
// "shift+tab", "j") to an action name.
type Config struct {
	Version string            `json:"version"`
	Global  map[string]string `json:"global,omitempty"`
	Number  map[string]string `json:"number,omitempty"`
	Input   map[string]string `json:"input,omitempty"`
	Confirm map[string]string `json:"confirm,omitempty"`
}

// LoadConfig loads keybinding configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ContextSections maps config sections to their contexts.
func (c *Config) ContextSections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:  c.Global,
		ContextNumber:  c.Number,
		ContextInput:   c.Input,
		ContextConfirm: c.Confirm,
	}
}

// ApplyConfig applies user configuration to a registry
// User bindings override default bindings key by key
func ApplyConfig(registry *Registry, config *Config) error {
	for context, bindings := range config.ContextSections() {
		for key, actionStr := range bindings {
			registry.Register(context, key, Action(actionStr))
		}
	}

	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns the
// default registry for the given vi-mode setting.
func LoadOrDefault(configPath string, viMode bool) (*Registry, error) {
	// Start with defaults
	registry := NewDefaultRegistry(viMode)

	// Try to load user config
	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
		}

		if result := ValidateConfig(config); result.HasErrors() {
			return nil, fmt.Errorf("invalid keybinds config:\n%s", result.String())
		}

		// Apply user config over defaults
		if err := ApplyConfig(registry, config); err != nil {
			return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
		}
	}
	// If config doesn't exist, that's fine - use defaults

	return registry, nil
}

// GetDefaultConfigPath returns the default path for keybinds.json.
// A keybinds.json in the current directory takes precedence over the
// global one.
func GetDefaultConfigPath() (string, error) {
	if _, err := os.Stat("keybinds.json"); err == nil {
		return "keybinds.json", nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".promptcli", "keybinds.json"), nil
}

// CreateExampleConfig creates an example keybinds.json file showing the
// customizable bindings per context
func CreateExampleConfig(path string) error {
	config := &Config{
		Version: "1.0",
		Global: map[string]string{
			"ctrl+c": "interrupt",
		},
		Number: map[string]string{
			// Arithmetic
			"up":     "increment",
			"down":   "decrement",
			"ctrl+p": "increment",
			"ctrl+n": "decrement",

			// Cursor movement
			"left":   "cursor_left",
			"right":  "cursor_right",
			"ctrl+b": "cursor_left",
			"ctrl+f": "cursor_right",

			// Region focus
			"tab":       "switch_focus",
			"shift+tab": "switch_focus",

			// Sign and confirmation
			"-":     "toggle_sign",
			"enter": "submit",
		},
		Input: map[string]string{
			"enter": "submit",
		},
		Confirm: map[string]string{
			"y":     "answer_yes",
			"n":     "answer_no",
			"enter": "submit",
		},
	}

	return SaveConfig(config, path)
}
