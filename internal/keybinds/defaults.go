package keybinds

import "strconv"

// NewDefaultRegistry creates a registry with all default keybindings.
// viMode selects vi-style navigation keys (hjkl) for the numeric prompt
// instead of the emacs-style control keys; the flag is resolved once
// here, at construction.
func NewDefaultRegistry(viMode bool) *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNumberBindings(r, viMode)
	registerInputBindings(r)
	registerConfirmBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in every prompt
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionInterrupt)
}

// registerNumberBindings sets up keybindings for the numeric prompt
func registerNumberBindings(r *Registry, viMode bool) {
	if viMode {
		r.RegisterMultiple(ContextNumber, []string{"down", "j"}, ActionDecrement)
		r.RegisterMultiple(ContextNumber, []string{"up", "k"}, ActionIncrement)
		r.RegisterMultiple(ContextNumber, []string{"left", "h"}, ActionCursorLeft)
		r.RegisterMultiple(ContextNumber, []string{"right", "l"}, ActionCursorRight)
	} else {
		r.RegisterMultiple(ContextNumber, []string{"down", "ctrl+n"}, ActionDecrement)
		r.RegisterMultiple(ContextNumber, []string{"up", "ctrl+p"}, ActionIncrement)
		r.RegisterMultiple(ContextNumber, []string{"left", "ctrl+b"}, ActionCursorLeft)
		r.RegisterMultiple(ContextNumber, []string{"right", "ctrl+f"}, ActionCursorRight)
	}

	r.RegisterMultiple(ContextNumber, []string{"tab", "shift+tab"}, ActionSwitchFocus)

	for i := 0; i <= 9; i++ {
		r.Register(ContextNumber, strconv.Itoa(i), ActionInsertDigit)
	}

	r.Register(ContextNumber, "-", ActionToggleSign)
	r.Register(ContextNumber, "enter", ActionSubmit)
}

// registerInputBindings sets up keybindings for the text prompt.
// Editing keys are owned by the underlying textinput widget; only the
// prompt-level actions go through the registry.
func registerInputBindings(r *Registry) {
	r.Register(ContextInput, "enter", ActionSubmit)
}

// registerConfirmBindings sets up confirmation prompt bindings
func registerConfirmBindings(r *Registry) {
	r.RegisterMultiple(ContextConfirm, []string{"y", "Y"}, ActionAnswerYes)
	r.RegisterMultiple(ContextConfirm, []string{"n", "N"}, ActionAnswerNo)
	r.Register(ContextConfirm, "enter", ActionSubmit)
}
