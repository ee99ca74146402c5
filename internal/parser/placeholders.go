package parser

import (
	"os"
	"regexp"
	"strings"

	"github.com/studiowebux/promptcli/internal/types"
)

// Placeholder pattern: {{name}}
var placeholderPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Resolver substitutes answer placeholders in questionnaire strings.
// Answers are looked up by question name; {{env.VAR_NAME}} reads the
// environment instead.
type Resolver struct {
	answers    types.Results
	envVars    map[string]string
	unresolved []string
}

// NewResolver creates a resolver over the answers collected so far.
// envVars can be nil if environment lookups are not wanted.
func NewResolver(answers types.Results, envVars map[string]string) *Resolver {
	if answers == nil {
		answers = make(types.Results)
	}
	if envVars == nil {
		envVars = make(map[string]string)
	}

	return &Resolver{
		answers:    answers,
		envVars:    envVars,
		unresolved: []string{},
	}
}

// Resolve substitutes {{name}} placeholders. Placeholders that match
// nothing are left as-is and tracked.
func (r *Resolver) Resolve(input string) string {
	return placeholderPattern.ReplaceAllStringFunc(input, func(match string) string {
		// Extract placeholder name (remove {{ and }})
		name := strings.TrimSpace(match[2 : len(match)-2])

		// Check for env.VAR_NAME syntax
		if strings.HasPrefix(name, "env.") {
			envKey := name[4:] // Remove "env." prefix
			if value, ok := r.envVars[envKey]; ok {
				return value
			}
			r.unresolved = append(r.unresolved, name)
			return match
		}

		if value, ok := r.answers[name]; ok {
			return types.FormatValue(value)
		}

		r.unresolved = append(r.unresolved, name)
		return match
	})
}

// Unresolved returns the placeholder names that couldn't be resolved
func (r *Resolver) Unresolved() []string {
	// Return unique values
	seen := make(map[string]bool)
	unique := []string{}
	for _, name := range r.unresolved {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}
	return unique
}

// ExtractPlaceholders extracts all unique placeholder names from a string
// Returns names without the {{ }} brackets
func ExtractPlaceholders(input string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(input, -1)
	seen := make(map[string]bool)
	var names []string
	for _, match := range matches {
		if len(match) > 1 {
			name := strings.TrimSpace(match[1])
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// HasPlaceholders reports whether a string contains any placeholder.
func HasPlaceholders(input string) bool {
	return placeholderPattern.MatchString(input)
}

// LoadSystemEnv loads all system environment variables
func LoadSystemEnv() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) == 2 {
			envVars[parts[0]] = parts[1]
		}
	}
	return envVars
}
