/*
Package keybinds provides customizable keyboard binding management for
the interactive prompts.

# Overview

The keybinds package implements a context-aware keyboard binding system
that allows users to remap the keys of every prompt type through a
configuration file.

# Key Concepts

Contexts:
  - Global: bindings available in every prompt (interrupt)
  - Number: the numeric prompt (arithmetic, cursor, focus, digits, sign)
  - Input: the text and secret prompts
  - Confirm: the yes/no prompt

Keys shadow from specific → global. If a key is bound in a prompt
context, it overrides the global binding.

Action System:
  - Actions are constants (ActionIncrement, ActionSwitchFocus, etc.)
  - Keys map to actions within contexts
  - The same key can mean different things in different contexts

Vi mode:
  - NewDefaultRegistry(viMode) resolves the navigation key set once at
    construction: hjkl in vi mode, ctrl+n/p/b/f otherwise. Arrow keys
    are always bound.

# Components

Registry (registry.go):
  - Central storage for keybindings
  - Context-aware key matching with global fallback
  - BindAction replaces an action's whole key set (per-prompt overrides)

Validator (validator.go):
  - Validates keybinding configurations
  - Rejects unknown action names
  - Warns when reserved keys (enter, ctrl+c) are rebound

Defaults (defaults.go):
  - Default keybinding configuration for all contexts
  - Used when no custom config exists

# Configuration File Format

Keybindings are stored in JSON format, each section mapping a key to an
action name:

	{
	  "global": {
	    "ctrl+c": "interrupt"
	  },
	  "number": {
	    "up": "increment",
	    "down": "decrement",
	    "tab": "switch_focus"
	  },
	  "confirm": {
	    "y": "answer_yes",
	    "n": "answer_no"
	  }
	}

# Reserved Keys

Certain keys are reserved for core functionality:
  - ctrl+c: interrupt/skip
  - enter: submit the answer

Rebinding reserved keys generates warnings.

# Example Usage

	// Defaults plus user overrides
	registry, err := LoadOrDefault(path, viMode)
	if err != nil {
		return err
	}

	// Match keys during dispatch
	if action, ok := registry.Match(ContextNumber, msg.String()); ok {
		// Handle action
	}

Keys not matched by any binding are swallowed by the prompts; there is
no default text-insertion fallthrough.

# Thread Safety

The Registry is safe for concurrent reads. Writes (Register,
RegisterMultiple, BindAction) should be done during initialization.
*/
package keybinds
