package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/autodoc-ai/autodoc/ai/provider"
	"github.com/autodoc-ai/autodoc/ai/tracker"
	"github.com/autodoc-ai/autodoc/am"
	"github.com/autodoc-ai/autodoc/pipeline"
)

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run <file> [file...]",
	Short: "Generate comments, docs, and tests for source files",
	Long: `Process one or more source files.

For each file, autodoc writes three outputs next to the original:
  comment_<file>       the source with generated documentation comments
  docs/doc_<stem>.md   a markdown technical document
  test/test_<file>     a generated unit test skeleton

An unsupported file extension fails that file with no partial output.
Generation failures inside a file degrade per declaration and never abort
the file.

Examples:
  autodoc run calc.py
  autodoc run --provider openrouter src/app.ts
  autodoc run --no-tracking Sources/Greeter.swift`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

var (
	providerFlag string
	noTracking   bool
)

func init() {
	RunCmd.Flags().StringVar(&providerFlag, "provider", "auto", "AI provider: auto, local, openrouter")
	RunCmd.Flags().BoolVar(&noTracking, "no-tracking", false, "Disable usage tracking in the local database")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	prov, err := provider.ParseProvider(providerFlag)
	if err != nil {
		return err
	}
	client, err := provider.New(cfg, prov)
	if err != nil {
		return err
	}

	runID := uuid.New().String()

	var trk *tracker.UsageTracker
	if !noTracking {
		db, err := tracker.Open(cfg.Database.Path)
		if err != nil {
			pterm.Warning.Printf("Usage tracking unavailable: %v\n", err)
		} else {
			defer db.Close()
			if err := tracker.EnsureSchema(db); err != nil {
				pterm.Warning.Printf("Usage tracking unavailable: %v\n", err)
			} else {
				verbosity, _ := cmd.Flags().GetCount("verbose")
				trk = tracker.NewUsageTracker(db, verbosity)
			}
		}
	}

	pterm.Info.Printf("Using %s (%s)\n", client.Name(), client.ModelName())

	failed := 0
	for _, filePath := range args {
		fileClient := client
		if trk != nil {
			fileClient = provider.WithTracking(client, trk, runID, "generation", "file", filePath)
		}

		spinner, _ := pterm.DefaultSpinner.Start("Processing " + filePath)

		p := pipeline.New(cfg, fileClient, runID)
		res, err := p.Run(cmd.Context(), filePath)
		if err != nil {
			spinner.Fail(fmt.Sprintf("%s: %v", filePath, err))
			failed++
			continue
		}
		spinner.Success(filePath)
		printResult(res)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

func printResult(res *pipeline.Result) {
	pterm.Printf("  %d comments inserted (%d skipped)\n", res.CommentsInserted, res.CommentsSkipped)
	pterm.Printf("  %s\n", res.CommentPath)
	if res.DocPath != "" {
		pterm.Printf("  %s\n", res.DocPath)
	} else {
		pterm.Warning.Println("  documentation skipped")
	}
	if res.TestPath != "" {
		pterm.Printf("  %s (%d tests, %d skipped)\n", res.TestPath, res.TestsWritten, res.TestsSkipped)
	} else {
		pterm.Warning.Println("  tests skipped")
	}
}
