package filter

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"
)

// Apply applies a JMESPath query to a JSON answers document and returns
// the selected slice of it, re-encoded as indented JSON. An empty query
// returns the document unchanged.
func Apply(document string, query string) (string, error) {
	if query == "" {
		return document, nil
	}

	// Parse the JSON
	var data interface{}
	if err := json.Unmarshal([]byte(document), &data); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}

	// Compile the JMESPath expression
	jp, err := jmespath.Compile(query)
	if err != nil {
		return "", fmt.Errorf("invalid JMESPath expression '%s': %w", query, err)
	}

	// Search/apply the expression
	result, err := jp.Search(data)
	if err != nil {
		return "", fmt.Errorf("JMESPath search failed: %w", err)
	}

	// Handle null result
	if result == nil {
		return "null", nil
	}

	// Convert result back to JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	return string(output), nil
}

// IsValidJMESPath checks if an expression is valid JMESPath syntax
func IsValidJMESPath(expression string) bool {
	_, err := jmespath.Compile(expression)
	return err == nil
}
