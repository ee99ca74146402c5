package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/promptcli/internal/keybinds"
	"github.com/studiowebux/promptcli/internal/types"
)

// InputOptions configures an Input prompt.
type InputOptions struct {
	Options

	// Default pre-fills the field. Accepts a string or a types.Default
	// provider.
	Default any

	// Placeholder is shown while the field is empty.
	Placeholder string
}

// Input prompts for a line of free text. The field itself is a
// bubbles/textinput model; only submit and interrupt go through the
// keybinding registry, every other key is forwarded to the field.
type Input struct {
	opts     InputOptions
	input    textinput.Model
	registry *keybinds.Registry
	secret   bool

	status      Status
	errMsg      string
	width       int
	final       any
	answerText  string
	interrupted bool
	skipped     bool
}

// NewInput builds a text prompt from the given options.
func NewInput(opts InputOptions) (*Input, error) {
	return newInput(opts, false)
}

// NewSecret builds a text prompt that masks its input and its answer.
func NewSecret(opts InputOptions) (*Input, error) {
	return newInput(opts, true)
}

func newInput(opts InputOptions, secret bool) (*Input, error) {
	raw := opts.Default
	if provider, ok := raw.(types.Default); ok {
		raw = provider.Resolve(opts.Results)
	}
	var def string
	switch v := raw.(type) {
	case nil:
	case string:
		def = v
	default:
		return nil, fmt.Errorf("%w: input default must be a string, got %T", ErrInvalidConfiguration, raw)
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = opts.Placeholder
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '*'
	}
	ti.SetValue(def)
	ti.Focus()

	m := &Input{
		opts:     opts,
		input:    ti,
		secret:   secret,
		registry: opts.buildRegistry(keybinds.ContextInput),
	}
	return m, nil
}

func (m *Input) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Input) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.status == StatusAnswered {
			return m, nil
		}
		m.errMsg = ""
		if action, ok := m.registry.Match(keybinds.ContextInput, msg.String()); ok {
			switch action {
			case keybinds.ActionInterrupt:
				return m.handleInterrupt()
			case keybinds.ActionSubmit:
				return m.handleSubmit()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Input) handleInterrupt() (tea.Model, tea.Cmd) {
	if !m.opts.SkipOnInterrupt {
		m.interrupted = true
		return m, tea.Quit
	}
	if !m.opts.Optional {
		m.errMsg = m.opts.mandatoryMessage()
		return m, nil
	}
	m.skipped = true
	m.status = StatusAnswered
	return m, tea.Quit
}

func (m *Input) handleSubmit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	if m.opts.Validate != nil && !m.opts.Validate(value) {
		m.errMsg = m.opts.invalidMessage()
		return m, nil
	}
	m.status = StatusAnswered
	m.answerText = m.formatAnswer(value)

	var final any = value
	if m.opts.Filter != nil {
		final = m.opts.Filter(value)
	}
	m.final = final
	return m, tea.Quit
}

func (m *Input) formatAnswer(value string) string {
	if m.opts.Transformer != nil {
		return m.opts.Transformer(value)
	}
	if m.secret {
		return strings.Repeat("*", len(value))
	}
	return value
}

func (m *Input) View() string {
	if m.status == StatusAnswered {
		answer := styleAnswer.Render(m.answerText)
		if m.skipped {
			answer = styleSkipped.Render("(skipped)")
		}
		return styleQmark.Render(m.opts.amark()) + " " + styleMessage.Render(m.fit(m.opts.Message)) + " " + answer + "\n"
	}

	row := styleQmark.Render(m.opts.qmark()) + " " + styleMessage.Render(m.fit(m.opts.Message))
	if m.opts.Instruction != "" {
		row += " " + styleSubtle.Render(m.opts.Instruction)
	}
	row += " " + m.input.View()

	lines := []string{row}
	if m.opts.LongInstruction != "" {
		lines = append(lines, "")
	}
	if m.errMsg != "" {
		lines = append(lines, styleError.Render("✘ "+m.fit(m.errMsg)))
	}
	if m.opts.LongInstruction != "" {
		lines = append(lines, styleSubtle.Render(m.fit(m.opts.LongInstruction)))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m *Input) fit(s string) string {
	if m.opts.NoWrapLines {
		return fitLine(s, m.width)
	}
	return s
}

// Value returns the current field content.
func (m *Input) Value() string {
	return m.input.Value()
}

// ErrorMessage returns the active validation message, empty when none.
func (m *Input) ErrorMessage() string { return m.errMsg }

// Status reports the lifecycle stage.
func (m *Input) Status() Status { return m.status }

// Result returns the submitted value once the program has finished.
func (m *Input) Result() (any, error) {
	if m.interrupted {
		return nil, ErrInterrupted
	}
	if m.skipped {
		return nil, nil
	}
	if m.status != StatusAnswered {
		return nil, ErrInterrupted
	}
	return m.final, nil
}
