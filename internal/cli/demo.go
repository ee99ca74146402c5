package cli

import (
	"github.com/studiowebux/promptcli/internal/types"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

// DemoQuestions returns the built-in showcase questionnaire exercising
// every prompt type.
func DemoQuestions() []types.QuestionSpec {
	return []types.QuestionSpec{
		{
			Type:    types.QuestionInput,
			Name:    "name",
			Message: "What's your name?",
			Default: "friend",
		},
		{
			Type:        types.QuestionNumber,
			Name:        "age",
			Message:     "How old are you?",
			Min:         floatPtr(0),
			Max:         floatPtr(130),
			Instruction: "(whole years)",
		},
		{
			Type:          types.QuestionNumber,
			Name:          "temperature",
			Message:       "Preferred room temperature?",
			Float:         true,
			Default:       20.5,
			Min:           floatPtr(-10),
			Max:           floatPtr(40),
			DecimalSymbol: ". ",
		},
		{
			Type:      types.QuestionSecret,
			Name:      "token",
			Message:   "Paste an API token (optional):",
			Mandatory: boolPtr(false),
		},
		{
			Type:    types.QuestionConfirm,
			Name:    "subscribe",
			Message: "Thanks {{name}}! Subscribe to updates?",
			Default: true,
		},
	}
}
