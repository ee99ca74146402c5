package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define which prompt type a binding applies to
	ContextGlobal  Context = "global"  // Available in every prompt
	ContextNumber  Context = "number"  // Numeric prompt
	ContextInput   Context = "input"   // Text / secret prompt
	ContextConfirm Context = "confirm" // Yes/no prompt
)

const (
	// Global actions
	ActionInterrupt Action = "interrupt" // Interrupt or skip the prompt (ctrl+c)
	ActionSubmit    Action = "submit"    // Confirm the current answer

	// Numeric prompt actions
	ActionIncrement   Action = "increment"    // Increment focused part by 1
	ActionDecrement   Action = "decrement"    // Decrement focused part by 1
	ActionCursorLeft  Action = "cursor_left"  // Move cursor left, crossing regions at the boundary
	ActionCursorRight Action = "cursor_right" // Move cursor right, crossing regions at the boundary
	ActionSwitchFocus Action = "switch_focus" // Toggle between whole and fractional part
	ActionInsertDigit Action = "insert_digit" // Insert the pressed digit at the cursor
	ActionToggleSign  Action = "toggle_sign"  // Prepend/remove leading '-' on the whole part

	// Confirm prompt actions
	ActionAnswerYes Action = "answer_yes" // Answer true immediately
	ActionAnswerNo  Action = "answer_no"  // Answer false immediately

	// Other actions
	ActionNoOp Action = "noop" // No operation (explicitly swallow a key)
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	infos := map[Action]ActionInfo{
		ActionInterrupt:   {ActionInterrupt, "Interrupt or skip the prompt", "Global"},
		ActionSubmit:      {ActionSubmit, "Confirm the answer", "Global"},
		ActionIncrement:   {ActionIncrement, "Increment by 1", "Number"},
		ActionDecrement:   {ActionDecrement, "Decrement by 1", "Number"},
		ActionCursorLeft:  {ActionCursorLeft, "Move cursor left", "Number"},
		ActionCursorRight: {ActionCursorRight, "Move cursor right", "Number"},
		ActionSwitchFocus: {ActionSwitchFocus, "Switch whole/fractional focus", "Number"},
		ActionInsertDigit: {ActionInsertDigit, "Insert digit", "Number"},
		ActionToggleSign:  {ActionToggleSign, "Toggle negative sign", "Number"},
		ActionAnswerYes:   {ActionAnswerYes, "Answer yes", "Confirm"},
		ActionAnswerNo:    {ActionAnswerNo, "Answer no", "Confirm"},
		ActionNoOp:        {ActionNoOp, "Ignore key", "Other"},
	}

	if info, ok := infos[action]; ok {
		return info
	}

	return ActionInfo{action, string(action), "Unknown"}
}

// KnownActions returns the set of all recognized actions, used to validate
// user configuration files.
func KnownActions() map[Action]bool {
	return map[Action]bool{
		ActionInterrupt:   true,
		ActionSubmit:      true,
		ActionIncrement:   true,
		ActionDecrement:   true,
		ActionCursorLeft:  true,
		ActionCursorRight: true,
		ActionSwitchFocus: true,
		ActionInsertDigit: true,
		ActionToggleSign:  true,
		ActionAnswerYes:   true,
		ActionAnswerNo:    true,
		ActionNoOp:        true,
	}
}
