package prompt

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/promptcli/internal/editbuf"
	"github.com/studiowebux/promptcli/internal/keybinds"
	"github.com/studiowebux/promptcli/internal/types"
)

// Shown when a buffer no longer holds something strconv can parse
const numericParseMessage = "Remove any non-integer value"

// Region identifies one of the two editable areas of a Number prompt
type Region int

const (
	RegionWhole      Region = iota // Whole part, always visible
	RegionFractional               // Fractional part, float mode only
)

// NumberOptions configures a Number prompt.
type NumberOptions struct {
	Options

	// Default is the fallback value when a buffer stops parsing. Accepts
	// an int, a float64 (float mode only) or a types.Default provider.
	// Nil means zero.
	Default any

	// FloatAllowed switches the prompt to decimal mode with a second
	// editable region for fractional digits.
	FloatAllowed bool

	// MinAllowed and MaxAllowed clamp the value after every change. In
	// integer mode the bounds are truncated to ints.
	MinAllowed *float64
	MaxAllowed *float64

	// DecimalSymbol separates the whole and fractional regions.
	// Defaults to ". ".
	DecimalSymbol string
}

// Number prompts for numeric input. It keeps one edit buffer for the whole
// part and one for the fractional part; only the whole buffer is shown in
// integer mode. Every text change triggers a read-then-write round trip
// that clamps the value into [min, max] and normalizes the buffer text
// within the same keystroke.
type Number struct {
	opts NumberOptions

	whole *editbuf.Buffer
	frac  *editbuf.Buffer
	focus Region

	registry *keybinds.Registry

	floatMode bool
	decimal   string
	defInt    int
	defFloat  float64
	minInt    *int
	maxInt    *int
	minFloat  *float64
	maxFloat  *float64

	// Records whether the fractional text ended in a zero digit at the
	// last read. Parsing drops trailing zeros, so the write side needs
	// this to restore them.
	endingZero bool

	wholeWidth int
	fracWidth  int

	// Set while the normalization round trip is writing the buffers, so
	// nested change notifications skip the value sync.
	syncing bool
	seeded  bool

	status      Status
	errMsg      string
	width       int
	final       any
	answerText  string
	interrupted bool
	skipped     bool
}

// NewNumber builds a Number prompt from the given options.
func NewNumber(opts NumberOptions) (*Number, error) {
	m := &Number{
		opts:       opts,
		whole:      editbuf.New(),
		frac:       editbuf.New(),
		floatMode:  opts.FloatAllowed,
		decimal:    opts.DecimalSymbol,
		wholeWidth: 1,
		fracWidth:  1,
	}
	if m.decimal == "" {
		m.decimal = ". "
	}

	raw := opts.Default
	if provider, ok := raw.(types.Default); ok {
		raw = provider.Resolve(opts.Results)
	}
	if m.floatMode {
		switch v := raw.(type) {
		case nil:
			m.defFloat = 0
		case int:
			m.defFloat = float64(v)
		case float64:
			m.defFloat = v
		default:
			return nil, fmt.Errorf("%w: number default must be an int or float64, got %T", ErrInvalidConfiguration, raw)
		}
		if opts.MinAllowed != nil {
			v := *opts.MinAllowed
			m.minFloat = &v
		}
		if opts.MaxAllowed != nil {
			v := *opts.MaxAllowed
			m.maxFloat = &v
		}
	} else {
		switch v := raw.(type) {
		case nil:
			m.defInt = 0
		case int:
			m.defInt = v
		default:
			return nil, fmt.Errorf("%w: number default must be an int when floats are not allowed, got %T", ErrInvalidConfiguration, raw)
		}
		if opts.MinAllowed != nil {
			v := int(*opts.MinAllowed)
			m.minInt = &v
		}
		if opts.MaxAllowed != nil {
			v := int(*opts.MaxAllowed)
			m.maxInt = &v
		}
	}

	m.registry = opts.buildRegistry(keybinds.ContextNumber)

	m.whole.OnTextChanged(m.wholeTextChanged)
	m.whole.OnCursorChanged(m.cursorChanged)
	m.frac.OnTextChanged(m.fracTextChanged)
	m.frac.OnCursorChanged(m.cursorChanged)

	return m, nil
}

// Init seeds both buffers with "0" at cursor 0, then runs one
// normalization round trip, so a zero outside [min, max] is clamped
// before the first keystroke. The seed writes themselves are guarded:
// half-seeded buffers do not parse.
func (m *Number) Init() tea.Cmd {
	if m.seeded {
		return nil
	}
	m.seeded = true
	m.syncing = true
	m.whole.SetText("0")
	m.whole.SetCursor(0)
	m.frac.SetText("0")
	m.frac.SetCursor(0)
	m.syncing = false
	m.SetValue(m.Value())
	return nil
}

func (m *Number) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Number) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.status == StatusAnswered {
		return m, nil
	}

	// Any keypress clears a previous validation message, including keys
	// that end up absorbed below.
	m.errMsg = ""

	key := msg.String()
	action, ok := m.registry.Match(keybinds.ContextNumber, key)
	if !ok {
		// Unbound keys are absorbed so stray typing cannot corrupt the
		// numeric state.
		return m, nil
	}

	switch action {
	case keybinds.ActionInterrupt:
		return m.handleInterrupt()
	case keybinds.ActionSubmit:
		return m.handleSubmit()
	case keybinds.ActionIncrement:
		m.step(1)
	case keybinds.ActionDecrement:
		m.step(-1)
	case keybinds.ActionCursorLeft:
		m.moveLeft()
	case keybinds.ActionCursorRight:
		m.moveRight()
	case keybinds.ActionSwitchFocus:
		m.switchFocus()
	case keybinds.ActionInsertDigit:
		m.insertDigit(key)
	case keybinds.ActionToggleSign:
		m.toggleSign()
	}
	return m, nil
}

// step adjusts the focused buffer by delta, treating it as a standalone
// integer. An empty buffer becomes "0" without stepping.
func (m *Number) step(delta int) {
	buf := m.focusedBuffer()
	if buf.Text() == "" {
		buf.SetText("0")
		return
	}
	n, err := strconv.Atoi(buf.Text())
	if err != nil {
		m.setError(numericParseMessage)
		return
	}
	buf.SetText(strconv.Itoa(n + delta))
}

func (m *Number) moveLeft() {
	if m.focus == RegionFractional && m.frac.Cursor() == 0 {
		m.focus = RegionWhole
		return
	}
	buf := m.focusedBuffer()
	buf.SetCursor(buf.Cursor() - 1)
}

func (m *Number) moveRight() {
	if m.floatMode && m.focus == RegionWhole && m.whole.Cursor() == m.whole.Len() {
		m.focus = RegionFractional
		return
	}
	buf := m.focusedBuffer()
	buf.SetCursor(buf.Cursor() + 1)
}

func (m *Number) switchFocus() {
	if !m.floatMode {
		return
	}
	if m.focus == RegionWhole {
		m.focus = RegionFractional
	} else {
		m.focus = RegionWhole
	}
}

func (m *Number) insertDigit(key string) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return
	}
	m.focusedBuffer().Insert(key)
}

// toggleSign flips the leading minus on the whole buffer, regardless of
// which region has focus.
func (m *Number) toggleSign() {
	text := m.whole.Text()
	if strings.HasPrefix(text, "-") {
		m.whole.SetText(strings.TrimPrefix(text, "-"))
	} else {
		m.whole.SetText("-" + text)
	}
}

func (m *Number) handleInterrupt() (tea.Model, tea.Cmd) {
	if !m.opts.SkipOnInterrupt {
		m.interrupted = true
		return m, tea.Quit
	}
	if !m.opts.Optional {
		m.setError(m.opts.mandatoryMessage())
		return m, nil
	}
	m.skipped = true
	m.status = StatusAnswered
	return m, tea.Quit
}

func (m *Number) handleSubmit() (tea.Model, tea.Cmd) {
	value := m.Value()
	if m.opts.Validate != nil && !m.opts.Validate(value) {
		m.setError(m.opts.invalidMessage())
		return m, nil
	}
	m.status = StatusAnswered
	m.answerText = m.formatAnswer(value)
	if m.opts.Filter != nil {
		value = m.opts.Filter(value)
	}
	m.final = value
	return m, tea.Quit
}

// Value reads the combined numeric value. In float mode the trailing-zero
// flag is refreshed before parsing. Text that no longer parses surfaces
// the parse message and falls back to the default.
func (m *Number) Value() any {
	if !m.floatMode {
		n, err := strconv.Atoi(m.whole.Text())
		if err != nil {
			m.setError(numericParseMessage)
			return m.defInt
		}
		return n
	}
	frac := m.frac.Text()
	m.endingZero = len(frac) > 1 && strings.HasSuffix(frac, "0")
	v, err := strconv.ParseFloat(m.whole.Text()+"."+frac, 64)
	if err != nil {
		m.setError(numericParseMessage)
		return m.defFloat
	}
	return v
}

// SetValue writes a numeric value back into the buffers, clamped to the
// configured bounds. In float mode the recorded trailing zero is appended
// to the fractional text.
func (m *Number) SetValue(value any) {
	if !m.floatMode {
		v := toInt(value)
		if m.minInt != nil && v < *m.minInt {
			v = *m.minInt
		}
		if m.maxInt != nil && v > *m.maxInt {
			v = *m.maxInt
		}
		m.whole.SetText(strconv.Itoa(v))
		return
	}
	v := toFloat(value)
	if m.minFloat != nil && v < *m.minFloat {
		v = *m.minFloat
	}
	if m.maxFloat != nil && v > *m.maxFloat {
		v = *m.maxFloat
	}
	text := formatFloatText(v)
	dot := strings.Index(text, ".")
	fracText := text[dot+1:]
	if m.endingZero {
		fracText += "0"
	}
	m.whole.SetText(text[:dot])
	m.frac.SetText(fracText)
}

func (m *Number) wholeTextChanged(buf *editbuf.Buffer) {
	m.wholeWidth = buf.Len() + 1
	m.textChanged(buf)
}

func (m *Number) fracTextChanged(buf *editbuf.Buffer) {
	m.fracWidth = buf.Len() + 1
	m.textChanged(buf)
}

// textChanged runs the read-then-write round trip after an edit, then
// keeps the cursor off a leading minus. While the round trip itself is
// writing, nested notifications only refresh the widths above.
func (m *Number) textChanged(buf *editbuf.Buffer) {
	if text := buf.Text(); text != "" && text != "-" && !m.syncing {
		m.syncing = true
		m.SetValue(m.Value())
		m.syncing = false
	}
	if strings.HasPrefix(buf.Text(), "-") && buf.Cursor() == 0 {
		buf.SetCursor(1)
	}
}

func (m *Number) cursorChanged(buf *editbuf.Buffer) {
	if strings.HasPrefix(buf.Text(), "-") && buf.Cursor() == 0 {
		buf.SetCursor(1)
	}
}

func (m *Number) focusedBuffer() *editbuf.Buffer {
	if m.focus == RegionFractional {
		return m.frac
	}
	return m.whole
}

func (m *Number) setError(message string) {
	m.errMsg = message
}

func (m *Number) formatAnswer(value any) string {
	if m.opts.Transformer != nil {
		return m.opts.Transformer(value)
	}
	if m.floatMode {
		return formatFloatText(toFloat(value))
	}
	return strconv.Itoa(toInt(value))
}

func (m *Number) View() string {
	if m.status == StatusAnswered {
		return m.viewAnswered()
	}

	row := styleQmark.Render(m.opts.qmark()) + " " + styleMessage.Render(m.fit(m.opts.Message))
	if m.opts.Instruction != "" {
		row += " " + styleSubtle.Render(m.opts.Instruction)
	}
	row += " " + m.renderRegion(m.whole, m.wholeWidth, m.focus == RegionWhole)
	if m.floatMode {
		row += m.decimal + m.renderRegion(m.frac, m.fracWidth, m.focus == RegionFractional)
	}

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

func (m *Number) viewAnswered() string {
	answer := styleAnswer.Render(m.answerText)
	if m.skipped {
		answer = styleSkipped.Render("(skipped)")
	}
	return styleQmark.Render(m.opts.amark()) + " " + styleMessage.Render(m.fit(m.opts.Message)) + " " + answer + "\n"
}

// renderRegion draws one editable region at its reserved width, with the
// cursor block when the region has focus
func (m *Number) renderRegion(buf *editbuf.Buffer, width int, focused bool) string {
	if focused {
		return addCursorAt(buf.Text(), buf.Cursor())
	}
	return padRegion(buf.Text(), width)
}

func (m *Number) fit(s string) string {
	if m.opts.NoWrapLines {
		return fitLine(s, m.width)
	}
	return s
}

// Result returns the submitted value once the program has finished.
func (m *Number) Result() (any, error) {
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

// Widths returns the preferred display width of each region, text length
// plus one trailing cursor column.
func (m *Number) Widths() (whole, fractional int) {
	return m.wholeWidth, m.fracWidth
}

// WholeText returns the text of the whole-number region.
func (m *Number) WholeText() string { return m.whole.Text() }

// FractionalText returns the text of the fractional region.
func (m *Number) FractionalText() string { return m.frac.Text() }

// WholeCursor returns the cursor offset inside the whole-number region.
func (m *Number) WholeCursor() int { return m.whole.Cursor() }

// FractionalCursor returns the cursor offset inside the fractional region.
func (m *Number) FractionalCursor() int { return m.frac.Cursor() }

// Focus reports which region currently owns the cursor.
func (m *Number) Focus() Region { return m.focus }

// ErrorMessage returns the active validation message, empty when none.
func (m *Number) ErrorMessage() string { return m.errMsg }

// Status reports the lifecycle stage.
func (m *Number) Status() Status { return m.status }

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

// formatFloatText formats v in plain decimal notation with at least one
// fractional digit, so the result always splits on a dot.
func formatFloatText(v float64) string {
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}
