package prompt

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/promptcli/internal/keybinds"
	"github.com/studiowebux/promptcli/internal/types"
)

// Status represents the lifecycle stage of a prompt
type Status int

const (
	StatusEditing  Status = iota // Accepting keystrokes
	StatusAnswered               // Finalized, view is frozen
)

var (
	// ErrInterrupted is returned when the user aborts the prompt with
	// ctrl+c and the prompt is not configured to skip on interrupt.
	ErrInterrupted = errors.New("prompt interrupted")

	// ErrInvalidConfiguration is returned by prompt constructors when the
	// supplied options cannot produce a working prompt.
	ErrInvalidConfiguration = errors.New("invalid prompt configuration")
)

const (
	defaultInvalidMessage   = "Invalid input"
	defaultMandatoryMessage = "Mandatory prompt"
)

// Options carries the settings shared by every prompt type.
type Options struct {
	// Message is the question shown to the user.
	Message string

	// Qmark is the marker before the message while editing. Defaults to "?".
	Qmark string

	// Amark is the marker before the message once answered. Defaults to "?".
	Amark string

	// Instruction is a short hint rendered after the message.
	Instruction string

	// LongInstruction is rendered on its own line below the input.
	LongInstruction string

	// Optional marks the prompt as skippable. Prompts are mandatory
	// unless set.
	Optional bool

	// MandatoryMessage is shown when a mandatory prompt receives a skip
	// attempt. Defaults to "Mandatory prompt".
	MandatoryMessage string

	// SkipOnInterrupt turns ctrl+c into a skip attempt instead of
	// aborting the run.
	SkipOnInterrupt bool

	// Validate rejects a submitted value. The prompt stays in editing
	// state and shows InvalidMessage until a value passes.
	Validate func(value any) bool

	// InvalidMessage is shown when Validate rejects the submitted value.
	// Defaults to "Invalid input".
	InvalidMessage string

	// Filter rewrites the submitted value before it is returned.
	Filter func(value any) any

	// Transformer rewrites the submitted value for the answered view.
	Transformer func(value any) string

	// ViMode selects vim style navigation keys when no Registry is given.
	ViMode bool

	// Registry supplies the keybindings. The prompt works on a clone, so
	// one registry can be shared across prompts. Nil falls back to the
	// defaults for ViMode.
	Registry *keybinds.Registry

	// Keybindings rebinds individual actions on top of the registry.
	Keybindings map[keybinds.Action][]string

	// Results gives computed defaults access to earlier answers.
	Results types.Results

	// NoWrapLines truncates long lines to the terminal width instead of
	// letting them wrap.
	NoWrapLines bool
}

func (o Options) qmark() string {
	if o.Qmark != "" {
		return o.Qmark
	}
	return "?"
}

func (o Options) amark() string {
	if o.Amark != "" {
		return o.Amark
	}
	return "?"
}

func (o Options) invalidMessage() string {
	if o.InvalidMessage != "" {
		return o.InvalidMessage
	}
	return defaultInvalidMessage
}

func (o Options) mandatoryMessage() string {
	if o.MandatoryMessage != "" {
		return o.MandatoryMessage
	}
	return defaultMandatoryMessage
}

// buildRegistry resolves the effective keybinding registry for a prompt,
// cloning any shared registry before per-prompt overrides are applied.
func (o Options) buildRegistry(context keybinds.Context) *keybinds.Registry {
	registry := o.Registry
	if registry == nil {
		registry = keybinds.NewDefaultRegistry(o.ViMode)
	} else {
		registry = registry.Clone()
	}
	for action, keys := range o.Keybindings {
		registry.BindAction(context, action, keys...)
	}
	return registry
}

// Prompt is implemented by every prompt model in this package.
type Prompt interface {
	tea.Model

	// Result returns the submitted answer once the program has finished.
	// A skipped prompt yields nil with no error.
	Result() (any, error)
}

// Run executes a prompt as its own Bubble Tea program and returns the
// submitted value.
func Run(p Prompt) (any, error) {
	program := tea.NewProgram(p)
	if _, err := program.Run(); err != nil {
		return nil, fmt.Errorf("failed to run prompt: %w", err)
	}
	return p.Result()
}
