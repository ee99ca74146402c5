package cli

import (
	"strings"
	"testing"

	"github.com/studiowebux/promptcli/internal/parser"
	"github.com/studiowebux/promptcli/internal/types"
)

func TestFormatResultsJSON(t *testing.T) {
	results := types.Results{"name": "Alice", "age": 30}

	got, err := formatResults(results, []string{"name", "age"}, "json", "")
	if err != nil {
		t.Fatalf("formatResults failed: %v", err)
	}

	// JSON object keys come out sorted
	expected := "{\n  \"age\": 30,\n  \"name\": \"Alice\"\n}\n"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestFormatResultsYAML(t *testing.T) {
	results := types.Results{"name": "Alice", "subscribe": true}

	got, err := formatResults(results, []string{"name", "subscribe"}, "yaml", "")
	if err != nil {
		t.Fatalf("formatResults failed: %v", err)
	}
	if !strings.Contains(got, "name: Alice") || !strings.Contains(got, "subscribe: true") {
		t.Errorf("Expected YAML answers, got %q", got)
	}
}

func TestFormatResultsText(t *testing.T) {
	results := types.Results{"name": "Alice", "age": 30, "token": nil}

	got, err := formatResults(results, []string{"name", "age", "token"}, "text", "")
	if err != nil {
		t.Fatalf("formatResults failed: %v", err)
	}

	expected := "name: Alice\nage: 30\ntoken: (skipped)\n"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestFormatResultsTextFloat(t *testing.T) {
	results := types.Results{"temperature": 20.5}

	got, err := formatResults(results, []string{"temperature"}, "text", "")
	if err != nil {
		t.Fatalf("formatResults failed: %v", err)
	}
	if got != "temperature: 20.5\n" {
		t.Errorf("Expected temperature line, got %q", got)
	}
}

func TestFormatResultsQuery(t *testing.T) {
	results := types.Results{"name": "Alice", "age": 30}

	got, err := formatResults(results, []string{"name", "age"}, "json", "age")
	if err != nil {
		t.Fatalf("formatResults failed: %v", err)
	}
	if got != "30\n" {
		t.Errorf("Expected 30, got %q", got)
	}
}

func TestFormatResultsQueryTextPrintsRaw(t *testing.T) {
	results := types.Results{"name": "Alice", "age": 30}

	got, err := formatResults(results, []string{"name", "age"}, "text", "name")
	if err != nil {
		t.Fatalf("formatResults failed: %v", err)
	}
	if got != "\"Alice\"\n" {
		t.Errorf("Expected queried value, got %q", got)
	}
}

func TestFormatResultsBadQueryKeepsDocument(t *testing.T) {
	results := types.Results{"age": 30}

	got, err := formatResults(results, []string{"age"}, "json", "[broken")
	if err != nil {
		t.Fatalf("formatResults failed: %v", err)
	}
	if !strings.Contains(got, "\"age\": 30") {
		t.Errorf("Expected unfiltered document, got %q", got)
	}
}

func TestDemoQuestionsAreValid(t *testing.T) {
	if err := parser.Validate(DemoQuestions()); err != nil {
		t.Errorf("Expected demo questionnaire to validate, got %v", err)
	}
}
