package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/studiowebux/promptcli/internal/cli"
	"github.com/studiowebux/promptcli/internal/config"
	"github.com/studiowebux/promptcli/internal/history"
	"github.com/studiowebux/promptcli/internal/keybinds"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "promptcli <questionnaire>",
	Short: "Interactive questionnaire prompts for the terminal",
	Long: `promptcli runs questionnaire files as interactive terminal prompts.

A questionnaire is a YAML or JSON list of questions (number, input,
secret, confirm). Answers are collected into a document you can query,
save, or copy. File extension is optional - 'deploy' resolves to
'deploy.yaml' automatically, and bare names are also looked up in
~/.promptcli/questionnaires/.

Examples:
  promptcli deploy                     # Run ./deploy.yaml (or global copy)
  promptcli deploy -o yaml             # Emit the answers as YAML
  promptcli deploy --query 'host'      # Select a single answer
  promptcli deploy -s answers.json     # Save the answers document
  promptcli demo                       # Built-in showcase questionnaire
  promptcli --help                     # Show help`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Initialize configuration
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		return cli.Run(cli.RunOptions{
			FilePath:     args[0],
			OutputFormat: flagOutput,
			Query:        flagQuery,
			SavePath:     flagSave,
			Copy:         flagCopy,
			ViMode:       flagVi,
			NoHistory:    flagNoHistory,
		})
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in showcase questionnaire",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		return cli.Run(cli.RunOptions{
			Questions:    cli.DemoQuestions(),
			Source:       "demo",
			OutputFormat: flagOutput,
			Query:        flagQuery,
			SavePath:     flagSave,
			Copy:         flagCopy,
			ViMode:       flagVi,
			NoHistory:    flagNoHistory,
		})
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Manage keybinding configuration",
}

var keybindsInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example keybinds.json",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		} else {
			if err := config.Initialize(); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			path = config.KeybindsFile
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("keybinds file already exists: %s", path)
		}

		if err := keybinds.CreateExampleConfig(path); err != nil {
			return fmt.Errorf("failed to write keybinds config: %w", err)
		}
		fmt.Printf("Example keybinds written to %s\n", path)
		return nil
	},
}

var keybindsValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a keybinds.json for problems",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		} else {
			if err := config.Initialize(); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			resolved, err := keybinds.GetDefaultConfigPath()
			if err != nil {
				return err
			}
			path = resolved
		}

		cfg, err := keybinds.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}

		result := keybinds.ValidateConfig(cfg)
		if result.HasErrors() || result.HasWarnings() {
			fmt.Print(result.String())
			if result.HasErrors() {
				return fmt.Errorf("keybinds config is invalid")
			}
			return nil
		}

		fmt.Printf("%s is valid\n", path)
		return nil
	},
}

var keybindsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the effective keybindings per context",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		path, err := keybinds.GetDefaultConfigPath()
		if err != nil {
			return err
		}
		registry, err := keybinds.LoadOrDefault(path, flagVi)
		if err != nil {
			return err
		}

		contexts := []keybinds.Context{
			keybinds.ContextGlobal,
			keybinds.ContextNumber,
			keybinds.ContextInput,
			keybinds.ContextConfirm,
		}
		for _, ctx := range contexts {
			fmt.Printf("[%s]\n", ctx)

			bindings := registry.ListBindings(ctx)
			sort.Slice(bindings, func(i, j int) bool { return bindings[i].Key < bindings[j].Key })
			for _, binding := range bindings {
				// ListBindings repeats the global rows in every context
				if binding.Context != ctx {
					continue
				}
				info := keybinds.GetActionInfo(binding.Action)
				fmt.Printf("  %-10s %s\n", binding.Key, info.Description)
			}
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent answers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openHistory()
		if err != nil {
			return err
		}
		defer mgr.Close()

		entries, err := mgr.Load(flagHistoryLimit)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No history entries")
			return nil
		}

		for _, entry := range entries {
			value := entry.Value
			if entry.Kind == "nil" {
				value = "(skipped)"
			}
			fmt.Printf("%s  %s  %s = %s\n", entry.Timestamp, entry.Questionnaire, entry.Question, value)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openHistory()
		if err != nil {
			return err
		}
		defer mgr.Close()

		count, err := mgr.GetCount()
		if err != nil {
			return fmt.Errorf("failed to count history: %w", err)
		}
		if err := mgr.Clear(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}

		fmt.Printf("History cleared (%d entries removed)\n", count)
		return nil
	},
}

// Flags for root and demo commands
var (
	flagOutput    string
	flagQuery     string
	flagSave      string
	flagCopy      bool
	flagVi        bool
	flagNoHistory bool
)

// Flags for history
var (
	flagHistoryLimit int
)

func init() {
	// Root command flags
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output format (json/yaml/text)")
	rootCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "JMESPath query over the answers document")
	rootCmd.Flags().StringVarP(&flagSave, "save", "s", "", "Save answers to file")
	rootCmd.Flags().BoolVarP(&flagCopy, "copy", "c", false, "Copy answers to clipboard")
	rootCmd.Flags().BoolVar(&flagVi, "vi", false, "Use vi-style navigation keys")
	rootCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Skip history recording for this run")

	// Demo command flags (same as root)
	demoCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output format (json/yaml/text)")
	demoCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "JMESPath query over the answers document")
	demoCmd.Flags().StringVarP(&flagSave, "save", "s", "", "Save answers to file")
	demoCmd.Flags().BoolVarP(&flagCopy, "copy", "c", false, "Copy answers to clipboard")
	demoCmd.Flags().BoolVar(&flagVi, "vi", false, "Use vi-style navigation keys")
	demoCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Skip history recording for this run")

	// Keybinds list flags
	keybindsListCmd.Flags().BoolVar(&flagVi, "vi", false, "Show the vi-style default bindings")

	// History flags
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Maximum entries to list (0 = all)")

	// Add subcommands
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(keybindsCmd)
	rootCmd.AddCommand(historyCmd)
	keybindsCmd.AddCommand(keybindsInitCmd)
	keybindsCmd.AddCommand(keybindsValidateCmd)
	keybindsCmd.AddCommand(keybindsListCmd)
	historyCmd.AddCommand(historyClearCmd)
}

// openHistory initializes config and opens the history store
func openHistory() (*history.Manager, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	mgr, err := history.NewManager(config.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return mgr, nil
}
