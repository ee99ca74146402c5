package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/studiowebux/promptcli/internal/types"
)

func newTestConfirm(t *testing.T, opts ConfirmOptions) *Confirm {
	t.Helper()
	m, err := NewConfirm(opts)
	if err != nil {
		t.Fatalf("NewConfirm returned error: %v", err)
	}
	m.Init()
	return m
}

func TestConfirmAnswerKeys(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{"y", true},
		{"Y", true},
		{"n", false},
		{"N", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newTestConfirm(t, ConfirmOptions{})
			press(m, tt.key)
			value, err := m.Result()
			if err != nil {
				t.Fatalf("Result returned error: %v", err)
			}
			if value != tt.expected {
				t.Errorf("Expected %v for key '%s', got %v", tt.expected, tt.key, value)
			}
		})
	}
}

func TestConfirmEnterTakesDefault(t *testing.T) {
	m := newTestConfirm(t, ConfirmOptions{Default: true})
	press(m, "enter")
	value, _ := m.Result()
	if value != true {
		t.Errorf("Expected default true, got %v", value)
	}

	m = newTestConfirm(t, ConfirmOptions{})
	press(m, "enter")
	value, _ = m.Result()
	if value != false {
		t.Errorf("Expected default false, got %v", value)
	}
}

func TestConfirmOtherKeysAbsorbed(t *testing.T) {
	m := newTestConfirm(t, ConfirmOptions{})

	press(m, "x", "5", "esc")
	if m.Status() != StatusEditing {
		t.Errorf("Expected prompt still editing, got %v", m.Status())
	}
}

func TestConfirmInstructionMarksDefault(t *testing.T) {
	m := newTestConfirm(t, ConfirmOptions{Default: true})
	if !strings.Contains(m.View(), "(Y/n)") {
		t.Errorf("Expected '(Y/n)' hint, got %q", m.View())
	}

	m = newTestConfirm(t, ConfirmOptions{})
	if !strings.Contains(m.View(), "(y/N)") {
		t.Errorf("Expected '(y/N)' hint, got %q", m.View())
	}
}

func TestConfirmAnsweredView(t *testing.T) {
	m := newTestConfirm(t, ConfirmOptions{Options: Options{Message: "Proceed"}})

	press(m, "y")
	if !strings.Contains(m.View(), "Yes") {
		t.Errorf("Expected answered view to contain 'Yes', got %q", m.View())
	}
}

func TestConfirmTransformer(t *testing.T) {
	m := newTestConfirm(t, ConfirmOptions{
		Options: Options{
			Transformer: func(v any) string {
				if v.(bool) {
					return "confirmed"
				}
				return "declined"
			},
		},
	})

	press(m, "n")
	if !strings.Contains(m.View(), "declined") {
		t.Errorf("Expected transformed answer, got %q", m.View())
	}
}

func TestConfirmComputedDefault(t *testing.T) {
	m := newTestConfirm(t, ConfirmOptions{
		Default: types.DefaultFrom(func(r types.Results) any { return r["force"] }),
		Options: Options{Results: types.Results{"force": true}},
	})

	press(m, "enter")
	value, _ := m.Result()
	if value != true {
		t.Errorf("Expected computed default true, got %v", value)
	}
}

func TestConfirmInterruptAborts(t *testing.T) {
	m := newTestConfirm(t, ConfirmOptions{})

	press(m, "ctrl+c")
	_, err := m.Result()
	if !errors.Is(err, ErrInterrupted) {
		t.Errorf("Expected ErrInterrupted, got %v", err)
	}
}

func TestConfirmMandatoryBlocksSkip(t *testing.T) {
	m := newTestConfirm(t, ConfirmOptions{
		Options: Options{SkipOnInterrupt: true, MandatoryMessage: "Required"},
	})

	press(m, "ctrl+c")
	if m.Status() != StatusEditing {
		t.Fatalf("Expected prompt still editing, got %v", m.Status())
	}
	if m.ErrorMessage() != "Required" {
		t.Errorf("Expected custom mandatory message, got '%s'", m.ErrorMessage())
	}
}

func TestConfirmDefaultTypeMismatch(t *testing.T) {
	_, err := NewConfirm(ConfirmOptions{Default: "yes"})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
}
