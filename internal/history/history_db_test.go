package history

import (
	"testing"
)

// createTestManager creates a new Manager with in-memory SQLite database for testing
func createTestManager(t *testing.T) *Manager {
	t.Helper()
	manager, err := NewManager(":memory:")
	if err != nil {
		t.Fatalf("Failed to create test manager: %v", err)
	}
	return manager
}

func TestSaveAndLoadAnswers(t *testing.T) {
	manager := createTestManager(t)
	defer manager.Close()

	if err := manager.SaveAnswer("deploy.yaml", "replicas", 3); err != nil {
		t.Fatalf("SaveAnswer returned error: %v", err)
	}
	if err := manager.SaveAnswer("deploy.yaml", "ratio", 0.5); err != nil {
		t.Fatalf("SaveAnswer returned error: %v", err)
	}
	if err := manager.SaveAnswer("deploy.yaml", "confirm", true); err != nil {
		t.Fatalf("SaveAnswer returned error: %v", err)
	}

	entries, err := manager.Load(0)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	// Most recent first
	if entries[0].Question != "confirm" {
		t.Errorf("Expected newest entry 'confirm' first, got '%s'", entries[0].Question)
	}
	if entries[0].Kind != "bool" || entries[0].Value != "true" {
		t.Errorf("Expected bool/true, got %s/%s", entries[0].Kind, entries[0].Value)
	}
	if entries[1].Kind != "float" || entries[1].Value != "0.5" {
		t.Errorf("Expected float/0.5, got %s/%s", entries[1].Kind, entries[1].Value)
	}
	if entries[2].Kind != "int" || entries[2].Value != "3" {
		t.Errorf("Expected int/3, got %s/%s", entries[2].Kind, entries[2].Value)
	}
}

func TestLoadLimit(t *testing.T) {
	manager := createTestManager(t)
	defer manager.Close()

	for i := 0; i < 5; i++ {
		if err := manager.SaveAnswer("a.yaml", "count", i); err != nil {
			t.Fatalf("SaveAnswer returned error: %v", err)
		}
	}

	entries, err := manager.Load(2)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries with limit, got %d", len(entries))
	}
}

func TestLoadForQuestionnaireMatchesBaseName(t *testing.T) {
	manager := createTestManager(t)
	defer manager.Close()

	if err := manager.SaveAnswer("/home/user/deploy.yaml", "replicas", 3); err != nil {
		t.Fatalf("SaveAnswer returned error: %v", err)
	}
	if err := manager.SaveAnswer("other.yaml", "name", "svc"); err != nil {
		t.Fatalf("SaveAnswer returned error: %v", err)
	}

	entries, err := manager.LoadForQuestionnaire("deploy.yaml")
	if err != nil {
		t.Fatalf("LoadForQuestionnaire returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Question != "replicas" {
		t.Errorf("Expected question 'replicas', got '%s'", entries[0].Question)
	}
}

func TestSkippedAnswerStoredAsNil(t *testing.T) {
	manager := createTestManager(t)
	defer manager.Close()

	if err := manager.SaveAnswer("a.yaml", "optional", nil); err != nil {
		t.Fatalf("SaveAnswer returned error: %v", err)
	}

	entries, err := manager.Load(0)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if entries[0].Kind != "nil" {
		t.Errorf("Expected kind 'nil', got '%s'", entries[0].Kind)
	}
	if entries[0].Value != "" {
		t.Errorf("Expected empty value, got '%s'", entries[0].Value)
	}
}

func TestClearAndCount(t *testing.T) {
	manager := createTestManager(t)
	defer manager.Close()

	if err := manager.SaveAnswer("a.yaml", "x", 1); err != nil {
		t.Fatalf("SaveAnswer returned error: %v", err)
	}

	count, err := manager.GetCount()
	if err != nil {
		t.Fatalf("GetCount returned error: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}

	if err := manager.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	count, _ = manager.GetCount()
	if count != 0 {
		t.Errorf("Expected count 0 after clear, got %d", count)
	}
}

func TestDeleteEntry(t *testing.T) {
	manager := createTestManager(t)
	defer manager.Close()

	if err := manager.SaveAnswer("a.yaml", "x", 1); err != nil {
		t.Fatalf("SaveAnswer returned error: %v", err)
	}
	entries, err := manager.Load(0)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := manager.Delete(entries[0].ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	count, _ := manager.GetCount()
	if count != 0 {
		t.Errorf("Expected count 0 after delete, got %d", count)
	}
}

func TestMigrationsRecorded(t *testing.T) {
	manager := createTestManager(t)
	defer manager.Close()

	var version int
	err := manager.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		t.Fatalf("Failed to query schema version: %v", err)
	}
	if version != 2 {
		t.Errorf("Expected schema version 2, got %d", version)
	}
}
