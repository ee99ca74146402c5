package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.promptcli)
	ConfigDir string

	// QuestionnairesDir is the default questionnaire file directory
	QuestionnairesDir string

	// DatabasePath is the SQLite database file for answer history
	DatabasePath string

	// KeybindsFile is the keybinding overrides file
	KeybindsFile string

	// SettingsFile is the settings file
	SettingsFile string
)

// Settings holds the persisted user preferences.
type Settings struct {
	ViMode         bool `json:"viMode"`
	HistoryEnabled bool `json:"historyEnabled"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{HistoryEnabled: true}
}

// Initialize sets up the configuration directories and files
// It creates ~/.promptcli/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	// Set global paths
	ConfigDir = filepath.Join(homeDir, ".promptcli")
	QuestionnairesDir = filepath.Join(ConfigDir, "questionnaires")
	DatabasePath = filepath.Join(ConfigDir, "promptcli.db")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	SettingsFile = filepath.Join(ConfigDir, ".settings.json")

	// Create directories if they don't exist
	dirs := []string{ConfigDir, QuestionnairesDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Create default settings file if it doesn't exist
	if _, err := os.Stat(SettingsFile); os.IsNotExist(err) {
		if err := SaveSettings(SettingsFile, DefaultSettings()); err != nil {
			return fmt.Errorf("failed to create settings file: %w", err)
		}
	}

	return nil
}

// ResolveQuestionnairePath resolves a questionnaire file argument.
// An existing path is used as-is; extension-less names are tried with
// the supported extensions, then looked up in the global questionnaires
// directory.
func ResolveQuestionnairePath(arg string) (string, error) {
	if strings.HasPrefix(arg, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		arg = filepath.Join(homeDir, arg[2:])
	}

	// Supported extensions in priority order (empty string = exact match first)
	extensions := []string{"", ".yaml", ".yml", ".json"}

	for _, ext := range extensions {
		candidate := arg + ext
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	if filepath.IsAbs(arg) {
		return "", fmt.Errorf("questionnaire not found: %s (tried .yaml, .yml, .json extensions)", arg)
	}

	for _, ext := range extensions {
		candidate := filepath.Join(QuestionnairesDir, arg+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("questionnaire not found: %s (searched current directory and %s)", arg, QuestionnairesDir)
}

// GetSettingsFilePath returns the settings file path (local or global)
func GetSettingsFilePath() string {
	if _, err := os.Stat(".settings.json"); err == nil {
		return ".settings.json"
	}
	return SettingsFile
}

// LoadSettings reads settings from the given path, falling back to the
// defaults when the file does not exist.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// SaveSettings writes settings to the given path.
func SaveSettings(path string, settings Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
