package editbuf

import "testing"

func TestNewBuffer(t *testing.T) {
	b := New()

	if b.Text() != "" {
		t.Errorf("Expected empty text, got %q", b.Text())
	}
	if b.Cursor() != 0 {
		t.Errorf("Expected cursor 0, got %d", b.Cursor())
	}
}

func TestSetText(t *testing.T) {
	b := New()
	b.SetText("123")

	if b.Text() != "123" {
		t.Errorf("Expected text '123', got %q", b.Text())
	}
	if b.Cursor() != 0 {
		t.Errorf("Expected cursor to stay at 0, got %d", b.Cursor())
	}
}

func TestSetTextClampsCursor(t *testing.T) {
	b := New()
	b.SetText("12345")
	b.SetCursor(5)

	// Shrinking the text pulls the cursor back to the new end
	b.SetText("12")
	if b.Cursor() != 2 {
		t.Errorf("Expected cursor clamped to 2, got %d", b.Cursor())
	}
}

func TestSetCursorClamps(t *testing.T) {
	b := New()
	b.SetText("abc")

	b.SetCursor(-5)
	if b.Cursor() != 0 {
		t.Errorf("Expected cursor clamped to 0, got %d", b.Cursor())
	}

	b.SetCursor(99)
	if b.Cursor() != 3 {
		t.Errorf("Expected cursor clamped to 3, got %d", b.Cursor())
	}

	// One past the last character is a legal resting position
	b.SetCursor(3)
	if b.Cursor() != 3 {
		t.Errorf("Expected cursor at 3, got %d", b.Cursor())
	}
}

func TestInsertAtCursor(t *testing.T) {
	b := New()
	b.SetText("13")
	b.SetCursor(1)

	b.Insert("2")

	if b.Text() != "123" {
		t.Errorf("Expected text '123', got %q", b.Text())
	}
	if b.Cursor() != 2 {
		t.Errorf("Expected cursor 2, got %d", b.Cursor())
	}
}

func TestInsertAtEnd(t *testing.T) {
	b := New()
	b.SetText("12")
	b.SetCursor(2)

	b.Insert("3")

	if b.Text() != "123" {
		t.Errorf("Expected text '123', got %q", b.Text())
	}
	if b.Cursor() != 3 {
		t.Errorf("Expected cursor 3, got %d", b.Cursor())
	}
}

func TestInsertEmptyIsNoop(t *testing.T) {
	b := New()
	b.SetText("12")

	calls := 0
	b.OnTextChanged(func(*Buffer) { calls++ })

	b.Insert("")
	if calls != 0 {
		t.Errorf("Expected no notifications, got %d", calls)
	}
}

func TestTextChangeNotification(t *testing.T) {
	b := New()

	calls := 0
	var seen string
	b.OnTextChanged(func(buf *Buffer) {
		calls++
		seen = buf.Text()
	})

	b.SetText("42")
	if calls != 1 {
		t.Errorf("Expected 1 notification, got %d", calls)
	}
	if seen != "42" {
		t.Errorf("Expected handler to see '42', got %q", seen)
	}

	// Setting the same text again must not notify
	b.SetText("42")
	if calls != 1 {
		t.Errorf("Expected no notification on unchanged text, got %d calls", calls)
	}
}

func TestCursorChangeNotification(t *testing.T) {
	b := New()
	b.SetText("abc")

	calls := 0
	b.OnCursorChanged(func(*Buffer) { calls++ })

	b.SetCursor(2)
	if calls != 1 {
		t.Errorf("Expected 1 notification, got %d", calls)
	}

	b.SetCursor(2)
	if calls != 1 {
		t.Errorf("Expected no notification on unchanged cursor, got %d calls", calls)
	}

	// Clamped to the same position: still no change
	b.SetCursor(99)
	b.SetCursor(98)
	if calls != 2 {
		t.Errorf("Expected 2 notifications total, got %d", calls)
	}
}

func TestInsertNotifiesTextThenCursor(t *testing.T) {
	b := New()
	b.SetText("ac")
	b.SetCursor(1)

	var order []string
	b.OnTextChanged(func(*Buffer) { order = append(order, "text") })
	b.OnCursorChanged(func(*Buffer) { order = append(order, "cursor") })

	b.Insert("b")

	if len(order) != 2 || order[0] != "text" || order[1] != "cursor" {
		t.Errorf("Expected [text cursor], got %v", order)
	}
}

func TestHandlerSeesCommittedState(t *testing.T) {
	b := New()
	b.SetText("1")
	b.SetCursor(1)

	b.OnTextChanged(func(buf *Buffer) {
		if buf.Cursor() != 2 {
			t.Errorf("Expected handler to see cursor 2, got %d", buf.Cursor())
		}
	})

	b.Insert("2")
}

func TestReentrantCursorFixTerminates(t *testing.T) {
	b := New()

	// Mirrors the sign fix-up: a cursor resting at 0 on text starting
	// with '-' is pushed to 1 from inside the handlers themselves.
	fix := func(buf *Buffer) {
		if len(buf.Text()) > 0 && buf.Text()[0] == '-' && buf.Cursor() == 0 {
			buf.SetCursor(1)
		}
	}
	b.OnTextChanged(fix)
	b.OnCursorChanged(fix)

	b.SetText("-5")

	if b.Cursor() != 1 {
		t.Errorf("Expected cursor fixed to 1, got %d", b.Cursor())
	}
}

func TestReentrantTextRewriteTerminates(t *testing.T) {
	b := New()

	// A normalizing handler that rewrites the text converges once the
	// rewrite is idempotent.
	b.OnTextChanged(func(buf *Buffer) {
		if buf.Text() == "007" {
			buf.SetText("7")
		}
	})

	b.SetText("007")

	if b.Text() != "7" {
		t.Errorf("Expected normalized text '7', got %q", b.Text())
	}
}

func TestMultipleHandlersRunInOrder(t *testing.T) {
	b := New()

	var order []int
	b.OnTextChanged(func(*Buffer) { order = append(order, 1) })
	b.OnTextChanged(func(*Buffer) { order = append(order, 2) })

	b.SetText("x")

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Expected handlers in order [1 2], got %v", order)
	}
}
