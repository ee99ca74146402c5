/*
Package prompt implements the interactive question prompts.

# Architecture

Every prompt is a Bubble Tea model following the Model-Update-View pattern:
  - prompt.go: Shared options, lifecycle status and the Run helper
  - number.go: Numeric input with separate whole and fractional regions
  - input.go: Free text and secret input built on bubbles/textinput
  - confirm.go: Yes/no confirmation
  - render.go: Shared styles and rendering helpers

# Lifecycle

A prompt starts in StatusEditing and moves to StatusAnswered exactly once,
when the user submits a value that passes the configured validator. After
that the view freezes into a single answered line. Ctrl+c either aborts the
run (the default) or, for prompts marked Optional with SkipOnInterrupt,
resolves the prompt to a nil answer.

# Keybindings

Key dispatch goes through a keybinds.Registry. Each prompt type owns a
context (number, input, confirm) and looks up incoming keys there, falling
back to the global context. Unbound keys are absorbed so stray typing
cannot corrupt numeric state. Per-prompt overrides are applied on a clone
of the registry, so a shared registry is never mutated.

# Number prompt

The number prompt keeps two edit buffers, one for the whole part and one
for the fractional part. The fractional region only renders in float mode.
After every text change the prompt re-reads its numeric value and writes it
back, which clamps to the configured bounds and normalizes the buffer text
in the same keystroke. A trailing zero in the fractional buffer survives
the round trip through a dedicated flag, since parsing "0.50" and
reformatting would otherwise drop it.
*/
package prompt
