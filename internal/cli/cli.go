package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/studiowebux/promptcli/internal/config"
	"github.com/studiowebux/promptcli/internal/filter"
	"github.com/studiowebux/promptcli/internal/history"
	"github.com/studiowebux/promptcli/internal/keybinds"
	"github.com/studiowebux/promptcli/internal/parser"
	"github.com/studiowebux/promptcli/internal/session"
	"github.com/studiowebux/promptcli/internal/types"
	"gopkg.in/yaml.v3"
)

// RunOptions contains options for running a questionnaire in CLI mode
type RunOptions struct {
	FilePath     string
	Questions    []types.QuestionSpec // used instead of FilePath when set
	Source       string               // history label when Questions is set
	OutputFormat string               // json, yaml, text
	Query        string               // JMESPath query over the answers document
	SavePath     string
	Copy         bool
	ViMode       bool
	NoHistory    bool
}

// Run executes a questionnaire and emits the answers document
func Run(opts RunOptions) error {
	settings, err := config.LoadSettings(config.GetSettingsFilePath())
	if err != nil {
		return err
	}
	viMode := opts.ViMode || settings.ViMode

	keybindsPath, err := keybinds.GetDefaultConfigPath()
	if err != nil {
		return err
	}
	registry, err := keybinds.LoadOrDefault(keybindsPath, viMode)
	if err != nil {
		return err
	}

	questions := opts.Questions
	source := opts.Source
	if len(questions) == 0 {
		filePath, err := config.ResolveQuestionnairePath(opts.FilePath)
		if err != nil {
			return err
		}
		questionnaire, err := parser.ParseFile(filePath)
		if err != nil {
			return fmt.Errorf("failed to parse questionnaire: %w", err)
		}
		questions = questionnaire.Questions
		source = filePath
	}

	// Open the history store unless disabled; a broken store downgrades
	// to a warning rather than blocking the run
	var hist *history.Manager
	if settings.HistoryEnabled && !opts.NoHistory {
		hist, err = history.NewManager(config.DatabasePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
			hist = nil
		} else {
			defer hist.Close()
		}
	}

	mgr := session.NewManager(session.Options{
		Registry: registry,
		ViMode:   viMode,
		History:  hist,
		Source:   source,
	})

	results, err := mgr.Run(questions)
	if err != nil {
		return err
	}

	// Determine output format
	outputFormat := opts.OutputFormat
	if outputFormat == "" {
		stat, _ := os.Stdout.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			// Output is being piped, emit the JSON document
			outputFormat = "json"
		} else {
			outputFormat = "text"
		}
	}

	output, err := formatResults(results, mgr.Order(), outputFormat, opts.Query)
	if err != nil {
		return fmt.Errorf("failed to format answers: %w", err)
	}

	if opts.Copy {
		if err := clipboard.WriteAll(output); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to copy to clipboard: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "Answers copied to clipboard")
		}
	}

	if opts.SavePath != "" {
		if err := os.WriteFile(opts.SavePath, []byte(output), config.FilePermissions); err != nil {
			return fmt.Errorf("failed to save answers: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Answers saved to %s\n", opts.SavePath)
	} else {
		fmt.Print(output)
	}

	return nil
}

// formatResults renders the answers document in the requested format,
// after applying an optional JMESPath query. A query that fails leaves
// the document unfiltered with a warning.
func formatResults(results types.Results, order []string, format string, query string) (string, error) {
	document, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}
	doc := string(document)

	queried := false
	if query != "" {
		selected, err := filter.Apply(doc, query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: query error: %v\n", err)
		} else {
			doc = selected
			queried = true
		}
	}

	switch format {
	case "json":
		return doc + "\n", nil

	case "yaml":
		var data any
		if err := json.Unmarshal([]byte(doc), &data); err != nil {
			return "", err
		}
		out, err := yaml.Marshal(data)
		if err != nil {
			return "", err
		}
		return string(out), nil

	case "text":
		fallthrough
	default:
		// A queried document has no stable per-answer shape, print it raw
		if queried {
			return doc + "\n", nil
		}

		var sb strings.Builder
		for _, name := range order {
			value, ok := results[name]
			if !ok {
				continue
			}
			if value == nil {
				sb.WriteString(fmt.Sprintf("%s: (skipped)\n", name))
				continue
			}
			sb.WriteString(fmt.Sprintf("%s: %s\n", name, types.FormatValue(value)))
		}
		return sb.String(), nil
	}
}
