// Package editbuf provides a minimal editable text region with a cursor
// and synchronous change notifications.
package editbuf

// Buffer holds a single line of editable text and a cursor offset.
// The cursor is always within [0, len(text)]; one extra column past the
// end of the text is a valid cursor position.
//
// A Buffer is owned by exactly one widget and is not safe for concurrent
// use. Change handlers run synchronously on the mutating call and may
// themselves mutate the buffer; a mutation that does not change the
// stored value fires no notification, which is what lets re-entrant
// fix-ups terminate.
type Buffer struct {
	text   string
	cursor int

	onTextChanged   []func(*Buffer)
	onCursorChanged []func(*Buffer)
}

// New returns an empty buffer with the cursor at offset 0.
func New() *Buffer {
	return &Buffer{}
}

// Text returns the current text content.
func (b *Buffer) Text() string {
	return b.text
}

// Cursor returns the current cursor offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the length of the current text.
func (b *Buffer) Len() int {
	return len(b.text)
}

// OnTextChanged registers a handler invoked synchronously after the text
// changes. Handlers run in registration order.
func (b *Buffer) OnTextChanged(fn func(*Buffer)) {
	b.onTextChanged = append(b.onTextChanged, fn)
}

// OnCursorChanged registers a handler invoked synchronously after the
// cursor moves. Handlers run in registration order.
func (b *Buffer) OnCursorChanged(fn func(*Buffer)) {
	b.onCursorChanged = append(b.onCursorChanged, fn)
}

// SetText replaces the buffer content. The cursor keeps its offset when
// still valid and is otherwise clamped to the end of the new text.
func (b *Buffer) SetText(text string) {
	cursor := b.cursor
	if cursor > len(text) {
		cursor = len(text)
	}
	b.apply(text, cursor)
}

// SetCursor moves the cursor, clamping into [0, len(text)].
func (b *Buffer) SetCursor(pos int) {
	b.apply(b.text, clamp(pos, 0, len(b.text)))
}

// Insert splices s into the text at the cursor and advances the cursor
// past the inserted segment.
func (b *Buffer) Insert(s string) {
	if s == "" {
		return
	}
	text := b.text[:b.cursor] + s + b.text[b.cursor:]
	b.apply(text, b.cursor+len(s))
}

// apply commits both fields before notifying, so handlers observe a
// consistent buffer. Each notification fires only if its value changed.
func (b *Buffer) apply(text string, cursor int) {
	textChanged := text != b.text
	cursorChanged := cursor != b.cursor

	b.text = text
	b.cursor = cursor

	if textChanged {
		for _, fn := range b.onTextChanged {
			fn(b)
		}
	}
	if cursorChanged {
		for _, fn := range b.onCursorChanged {
			fn(b)
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
