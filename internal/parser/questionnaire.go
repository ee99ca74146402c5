package parser

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/studiowebux/promptcli/internal/types"
	"gopkg.in/yaml.v3"
)

var validTypes = map[string]bool{
	types.QuestionNumber:  true,
	types.QuestionInput:   true,
	types.QuestionSecret:  true,
	types.QuestionConfirm: true,
}

// ParseFile parses a YAML or JSON questionnaire file
func ParseFile(filePath string) (*types.Questionnaire, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filePath))

	var questions []types.QuestionSpec

	// Try to parse as JSON first if extension is .json
	if ext == ".json" {
		questions, err = parseJSON(data)
	} else {
		// Otherwise parse as YAML (which also handles JSON)
		questions, err = parseYAML(data)
	}
	if err != nil {
		return nil, err
	}

	normalizeDefaults(questions)

	if err := Validate(questions); err != nil {
		return nil, err
	}

	return &types.Questionnaire{Path: filePath, Questions: questions}, nil
}

// parseJSON parses JSON format
func parseJSON(data []byte) ([]types.QuestionSpec, error) {
	// Try to unmarshal as array first
	var questions []types.QuestionSpec
	if err := json.Unmarshal(data, &questions); err == nil {
		return questions, nil
	}

	// Try to unmarshal as single question
	var question types.QuestionSpec
	if err := json.Unmarshal(data, &question); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return []types.QuestionSpec{question}, nil
}

// parseYAML parses YAML format
func parseYAML(data []byte) ([]types.QuestionSpec, error) {
	// Try to unmarshal as array first
	var questions []types.QuestionSpec
	if err := yaml.Unmarshal(data, &questions); err == nil {
		// Validate that we actually got an array
		if len(questions) > 0 || strings.TrimSpace(string(data)) == "[]" {
			return questions, nil
		}
	}

	// Try to unmarshal as single question
	var question types.QuestionSpec
	if err := yaml.Unmarshal(data, &question); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return []types.QuestionSpec{question}, nil
}

// normalizeDefaults reconciles decoder typing with question modes. JSON
// decodes every number as float64, so an integral default on a
// non-float number question is brought back to int.
func normalizeDefaults(questions []types.QuestionSpec) {
	for i := range questions {
		q := &questions[i]
		if q.Type != types.QuestionNumber || q.Float {
			continue
		}
		if f, ok := q.Default.(float64); ok && f == math.Trunc(f) {
			q.Default = int(f)
		}
	}
}

// Validate checks a question list for structural problems: missing or
// duplicate names, missing or unknown types.
func Validate(questions []types.QuestionSpec) error {
	if len(questions) == 0 {
		return fmt.Errorf("questionnaire has no questions")
	}

	seen := make(map[string]bool)
	for i, q := range questions {
		if q.Name == "" {
			return fmt.Errorf("question %d: missing name", i+1)
		}
		if seen[q.Name] {
			return fmt.Errorf("question %d: duplicate name %q", i+1, q.Name)
		}
		seen[q.Name] = true

		if q.Type == "" {
			return fmt.Errorf("question %q: missing type", q.Name)
		}
		if !validTypes[q.Type] {
			return fmt.Errorf("question %q: unknown type %q (valid: number, input, secret, confirm)", q.Name, q.Type)
		}
	}

	return nil
}
