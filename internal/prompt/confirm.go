package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/promptcli/internal/keybinds"
	"github.com/studiowebux/promptcli/internal/types"
)

// ConfirmOptions configures a Confirm prompt.
type ConfirmOptions struct {
	Options

	// Default is the answer chosen by plain enter. Accepts a bool or a
	// types.Default provider. Nil means false.
	Default any
}

// Confirm prompts for a yes/no decision. A y or n answers immediately,
// enter takes the default.
type Confirm struct {
	opts     ConfirmOptions
	def      bool
	registry *keybinds.Registry

	status      Status
	errMsg      string
	width       int
	final       any
	answerText  string
	interrupted bool
	skipped     bool
}

// NewConfirm builds a Confirm prompt from the given options.
func NewConfirm(opts ConfirmOptions) (*Confirm, error) {
	raw := opts.Default
	if provider, ok := raw.(types.Default); ok {
		raw = provider.Resolve(opts.Results)
	}
	var def bool
	switch v := raw.(type) {
	case nil:
	case bool:
		def = v
	default:
		return nil, fmt.Errorf("%w: confirm default must be a bool, got %T", ErrInvalidConfiguration, raw)
	}

	return &Confirm{
		opts:     opts,
		def:      def,
		registry: opts.buildRegistry(keybinds.ContextConfirm),
	}, nil
}

func (m *Confirm) Init() tea.Cmd {
	return nil
}

func (m *Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if m.status == StatusAnswered {
			return m, nil
		}
		m.errMsg = ""
		action, ok := m.registry.Match(keybinds.ContextConfirm, msg.String())
		if !ok {
			return m, nil
		}
		switch action {
		case keybinds.ActionInterrupt:
			return m.handleInterrupt()
		case keybinds.ActionAnswerYes:
			return m.answer(true)
		case keybinds.ActionAnswerNo:
			return m.answer(false)
		case keybinds.ActionSubmit:
			return m.answer(m.def)
		}
	}
	return m, nil
}

func (m *Confirm) handleInterrupt() (tea.Model, tea.Cmd) {
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

func (m *Confirm) answer(value bool) (tea.Model, tea.Cmd) {
	m.status = StatusAnswered
	m.answerText = m.formatAnswer(value)

	var final any = value
	if m.opts.Filter != nil {
		final = m.opts.Filter(value)
	}
	m.final = final
	return m, tea.Quit
}

func (m *Confirm) formatAnswer(value bool) string {
	if m.opts.Transformer != nil {
		return m.opts.Transformer(value)
	}
	if value {
		return "Yes"
	}
	return "No"
}

// instruction returns the hint after the message, marking the default
// answer in upper case.
func (m *Confirm) instruction() string {
	if m.opts.Instruction != "" {
		return m.opts.Instruction
	}
	if m.def {
		return "(Y/n)"
	}
	return "(y/N)"
}

func (m *Confirm) View() string {
	if m.status == StatusAnswered {
		answer := styleAnswer.Render(m.answerText)
		if m.skipped {
			answer = styleSkipped.Render("(skipped)")
		}
		return styleQmark.Render(m.opts.amark()) + " " + styleMessage.Render(m.fit(m.opts.Message)) + " " + answer + "\n"
	}

	row := styleQmark.Render(m.opts.qmark()) + " " + styleMessage.Render(m.fit(m.opts.Message)) +
		" " + styleSubtle.Render(m.instruction())

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

func (m *Confirm) fit(s string) string {
	if m.opts.NoWrapLines {
		return fitLine(s, m.width)
	}
	return s
}

// ErrorMessage returns the active validation message, empty when none.
func (m *Confirm) ErrorMessage() string { return m.errMsg }

// Status reports the lifecycle stage.
func (m *Confirm) Status() Status { return m.status }

// Result returns the submitted value once the program has finished.
func (m *Confirm) Result() (any, error) {
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
