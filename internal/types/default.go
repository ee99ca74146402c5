package types

// Default is a tagged default-value provider: either a literal value or
// a function computed from the answers collected so far. The zero value
// is "no default configured".
type Default struct {
	literal  any
	computed func(Results) any
	set      bool
}

// DefaultValue returns a provider holding a literal default.
func DefaultValue(v any) Default {
	return Default{literal: v, set: true}
}

// DefaultFrom returns a provider computed from prior results. The
// function runs exactly once, when the prompt is constructed.
func DefaultFrom(fn func(Results) any) Default {
	return Default{computed: fn, set: true}
}

// IsSet reports whether any default was configured.
func (d Default) IsSet() bool {
	return d.set
}

// Resolve produces the default value against the given results
// snapshot. An unset provider resolves to nil.
func (d Default) Resolve(results Results) any {
	if !d.set {
		return nil
	}
	if d.computed != nil {
		return d.computed(results)
	}
	return d.literal
}
