package types

import (
	"fmt"
	"strconv"
)

// Question types supported by questionnaire files
const (
	QuestionNumber  = "number"
	QuestionInput   = "input"
	QuestionSecret  = "secret"
	QuestionConfirm = "confirm"
)

// QuestionSpec represents one question definition from a questionnaire file
type QuestionSpec struct {
	Type    string `json:"type" yaml:"type"`
	Name    string `json:"name" yaml:"name"`
	Message string `json:"message" yaml:"message"`

	// Default is the pre-filled answer: a number for number questions,
	// a string for input/secret, a bool for confirm
	Default any `json:"default,omitempty" yaml:"default,omitempty"`

	// Number question options
	Float         bool     `json:"float,omitempty" yaml:"float,omitempty"`
	Min           *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max           *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	DecimalSymbol string   `json:"decimal_symbol,omitempty" yaml:"decimal_symbol,omitempty"`

	// Hint text
	Instruction     string `json:"instruction,omitempty" yaml:"instruction,omitempty"`
	LongInstruction string `json:"long_instruction,omitempty" yaml:"long_instruction,omitempty"`

	// Answer enforcement
	Mandatory        *bool  `json:"mandatory,omitempty" yaml:"mandatory,omitempty"`
	MandatoryMessage string `json:"mandatory_message,omitempty" yaml:"mandatory_message,omitempty"`
	InvalidMessage   string `json:"invalid_message,omitempty" yaml:"invalid_message,omitempty"`
}

// IsMandatory reports the mandatory setting; questions are mandatory
// unless the file says otherwise.
func (q *QuestionSpec) IsMandatory() bool {
	if q.Mandatory == nil {
		return true
	}
	return *q.Mandatory
}

// Questionnaire represents a parsed questionnaire file
type Questionnaire struct {
	Path      string
	Questions []QuestionSpec
}

// Results holds the answers collected so far, keyed by question name.
// A nil value records a skipped question. Snapshots of this map are
// handed to default resolvers; the session manager owns the live copy.
type Results map[string]any

// Clone returns a shallow copy of the results map.
func (r Results) Clone() Results {
	clone := make(Results, len(r))
	for name, value := range r {
		clone[name] = value
	}
	return clone
}

// HistoryEntry represents a saved answer
type HistoryEntry struct {
	ID            int64  `json:"id"`
	Timestamp     string `json:"timestamp"`
	Questionnaire string `json:"questionnaire"`
	Question      string `json:"question"`
	Kind          string `json:"kind"`
	Value         string `json:"value"`
}

// FormatValue renders an answer value as display text. Skipped answers
// render empty.
func FormatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// KindOf classifies an answer value for storage and display.
func KindOf(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case int:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case bool:
		return "bool"
	default:
		return "unknown"
	}
}
