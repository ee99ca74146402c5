package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".settings.json")

	saved := Settings{ViMode: true, HistoryEnabled: false}
	if err := SaveSettings(path, saved); err != nil {
		t.Fatalf("SaveSettings returned error: %v", err)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if loaded != saved {
		t.Errorf("Expected %+v, got %+v", saved, loaded)
	}
}

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if !settings.HistoryEnabled {
		t.Error("Expected history enabled by default")
	}
	if settings.ViMode {
		t.Error("Expected vi mode disabled by default")
	}
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".settings.json")
	if err := os.WriteFile(path, []byte(`{"viMode": true}`), FilePermissions); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if !settings.ViMode {
		t.Error("Expected vi mode from file")
	}
	if !settings.HistoryEnabled {
		t.Error("Expected history default to survive a partial file")
	}
}

func TestLoadSettingsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".settings.json")
	if err := os.WriteFile(path, []byte("{not json"), FilePermissions); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	if _, err := LoadSettings(path); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestResolveQuestionnairePathExact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deploy.yaml")
	if err := os.WriteFile(path, []byte("[]"), FilePermissions); err != nil {
		t.Fatalf("Failed to write questionnaire: %v", err)
	}

	resolved, err := ResolveQuestionnairePath(path)
	if err != nil {
		t.Fatalf("ResolveQuestionnairePath failed: %v", err)
	}
	if resolved != path {
		t.Errorf("Expected %s, got %s", path, resolved)
	}
}

func TestResolveQuestionnairePathTriesExtensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deploy.yml")
	if err := os.WriteFile(path, []byte("[]"), FilePermissions); err != nil {
		t.Fatalf("Failed to write questionnaire: %v", err)
	}

	resolved, err := ResolveQuestionnairePath(filepath.Join(dir, "deploy"))
	if err != nil {
		t.Fatalf("ResolveQuestionnairePath failed: %v", err)
	}
	if resolved != path {
		t.Errorf("Expected %s, got %s", path, resolved)
	}
}

func TestResolveQuestionnairePathGlobalLookup(t *testing.T) {
	dir := t.TempDir()
	original := QuestionnairesDir
	QuestionnairesDir = dir
	defer func() { QuestionnairesDir = original }()

	path := filepath.Join(dir, "setup.json")
	if err := os.WriteFile(path, []byte("[]"), FilePermissions); err != nil {
		t.Fatalf("Failed to write questionnaire: %v", err)
	}

	resolved, err := ResolveQuestionnairePath("setup")
	if err != nil {
		t.Fatalf("ResolveQuestionnairePath failed: %v", err)
	}
	if resolved != path {
		t.Errorf("Expected %s, got %s", path, resolved)
	}
}

func TestResolveQuestionnairePathNotFound(t *testing.T) {
	original := QuestionnairesDir
	QuestionnairesDir = t.TempDir()
	defer func() { QuestionnairesDir = original }()

	if _, err := ResolveQuestionnairePath(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing questionnaire")
	}
}
