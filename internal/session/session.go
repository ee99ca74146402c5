package session

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/studiowebux/promptcli/internal/history"
	"github.com/studiowebux/promptcli/internal/keybinds"
	"github.com/studiowebux/promptcli/internal/parser"
	"github.com/studiowebux/promptcli/internal/prompt"
	"github.com/studiowebux/promptcli/internal/types"
)

// Manager runs a sequence of questions and collects their answers.
// Results access is mutex-guarded; the prompts themselves run one at a
// time on the terminal.
type Manager struct {
	mu      sync.RWMutex
	results types.Results
	order   []string

	registry *keybinds.Registry
	viMode   bool

	historyDB *history.Manager
	source    string

	// runPrompt executes one prompt to completion. Tests swap it out to
	// avoid driving a real terminal program.
	runPrompt func(prompt.Prompt) (any, error)
}

// Options configures a session manager.
type Options struct {
	// Registry supplies keybindings to every prompt. Nil uses the
	// defaults for ViMode.
	Registry *keybinds.Registry

	// ViMode selects vim navigation keys when no Registry is given.
	ViMode bool

	// History records every answer when set.
	History *history.Manager

	// Source names the questionnaire in history rows.
	Source string
}

// NewManager creates a new session manager
func NewManager(opts Options) *Manager {
	return &Manager{
		results:   make(types.Results),
		registry:  opts.Registry,
		viMode:    opts.ViMode,
		historyDB: opts.History,
		source:    opts.Source,
		runPrompt: prompt.Run,
	}
}

// Run asks every question in order. It stops on the first interrupt and
// returns the answers collected so far together with the error.
func (m *Manager) Run(questions []types.QuestionSpec) (types.Results, error) {
	for _, question := range questions {
		if _, err := m.Ask(question); err != nil {
			return m.Results(), fmt.Errorf("question %q: %w", question.Name, err)
		}
	}
	return m.Results(), nil
}

// Ask runs a single question and records its answer. A skipped question
// records a nil answer.
func (m *Manager) Ask(question types.QuestionSpec) (any, error) {
	p, err := m.buildPrompt(question)
	if err != nil {
		return nil, err
	}

	value, err := m.runPrompt(p)
	if err != nil {
		return nil, err
	}

	m.record(question.Name, value)
	return value, nil
}

// Results returns a copy of the answers collected so far.
func (m *Manager) Results() types.Results {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.results.Clone()
}

// Get returns a single recorded answer.
func (m *Manager) Get(name string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.results[name]
	return value, ok
}

// Set records an answer directly, bypassing the prompt. Useful for
// pre-seeding answers from flags.
func (m *Manager) Set(name string, value any) {
	m.record(name, value)
}

// Order returns the question names in the order they were answered.
func (m *Manager) Order() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	order := make([]string, len(m.order))
	copy(order, m.order)
	return order
}

func (m *Manager) record(name string, value any) {
	m.mu.Lock()
	if _, exists := m.results[name]; !exists {
		m.order = append(m.order, name)
	}
	m.results[name] = value
	m.mu.Unlock()

	if m.historyDB != nil {
		if err := m.historyDB.SaveAnswer(m.source, name, value); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record answer: %v\n", err)
		}
	}
}

// buildPrompt maps a question spec onto the matching prompt model. The
// answers collected so far are passed along so computed defaults and
// {{placeholder}} references can read them.
func (m *Manager) buildPrompt(question types.QuestionSpec) (prompt.Prompt, error) {
	results := m.Results()
	resolver := parser.NewResolver(results, parser.LoadSystemEnv())

	optional := !question.IsMandatory()
	shared := prompt.Options{
		Message:          resolver.Resolve(question.Message),
		Instruction:      resolver.Resolve(question.Instruction),
		LongInstruction:  resolver.Resolve(question.LongInstruction),
		Optional:         optional,
		SkipOnInterrupt:  optional,
		MandatoryMessage: question.MandatoryMessage,
		InvalidMessage:   question.InvalidMessage,
		ViMode:           m.viMode,
		Registry:         m.registry,
		Results:          results,
	}

	defaultValue := question.Default
	if text, ok := defaultValue.(string); ok && parser.HasPlaceholders(text) {
		defaultValue = coerceDefault(question, resolver.Resolve(text))
	}

	switch question.Type {
	case types.QuestionNumber:
		return prompt.NewNumber(prompt.NumberOptions{
			Options:       shared,
			Default:       defaultValue,
			FloatAllowed:  question.Float,
			MinAllowed:    question.Min,
			MaxAllowed:    question.Max,
			DecimalSymbol: question.DecimalSymbol,
		})
	case types.QuestionInput:
		return prompt.NewInput(prompt.InputOptions{
			Options: shared,
			Default: defaultValue,
		})
	case types.QuestionSecret:
		return prompt.NewSecret(prompt.InputOptions{
			Options: shared,
			Default: defaultValue,
		})
	case types.QuestionConfirm:
		return prompt.NewConfirm(prompt.ConfirmOptions{
			Options: shared,
			Default: defaultValue,
		})
	default:
		return nil, fmt.Errorf("%w: unknown question type %q", prompt.ErrInvalidConfiguration, question.Type)
	}
}

// coerceDefault converts a resolved placeholder default to the value
// type the question expects. Text that doesn't parse is passed through
// so the prompt constructor reports the mismatch.
func coerceDefault(question types.QuestionSpec, text string) any {
	switch question.Type {
	case types.QuestionNumber:
		if question.Float {
			if f, err := strconv.ParseFloat(text, 64); err == nil {
				return f
			}
		} else if n, err := strconv.Atoi(text); err == nil {
			return n
		}
	case types.QuestionConfirm:
		if b, err := strconv.ParseBool(text); err == nil {
			return b
		}
	}
	return text
}
