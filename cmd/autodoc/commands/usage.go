package commands

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/autodoc-ai/autodoc/ai/tracker"
	"github.com/autodoc-ai/autodoc/am"
)

// UsageCmd represents the usage command
var UsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show AI model usage statistics",
	Long: `Show aggregated AI model usage from the local tracking database.

Examples:
  autodoc usage                # Usage for the last 7 days
  autodoc usage --since 24h    # Usage for the last day
  autodoc usage --breakdown    # Per-model breakdown`,
	RunE: runUsage,
}

var (
	usageSince     time.Duration
	usageBreakdown bool
)

func init() {
	UsageCmd.Flags().DurationVar(&usageSince, "since", 7*24*time.Hour, "Window to aggregate over (e.g. 24h, 168h)")
	UsageCmd.Flags().BoolVar(&usageBreakdown, "breakdown", false, "Show per-model breakdown")
}

func runUsage(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := tracker.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open usage database: %w", err)
	}
	defer db.Close()

	if err := tracker.EnsureSchema(db); err != nil {
		return fmt.Errorf("failed to prepare usage database: %w", err)
	}

	verbosity, _ := cmd.Flags().GetCount("verbose")
	trk := tracker.NewUsageTracker(db, verbosity)
	since := time.Now().Add(-usageSince)

	stats, err := trk.GetUsageStats(since)
	if err != nil {
		return fmt.Errorf("failed to read usage stats: %w", err)
	}

	pterm.Printf("AI model usage since %s:\n", since.Format(time.RFC3339))
	pterm.Printf("  Requests:   %d (%d successful, %.1f%% success rate)\n",
		stats.TotalRequests, stats.SuccessfulRequests, stats.SuccessRate*100)
	pterm.Printf("  Tokens:     %d\n", stats.TotalTokens)
	pterm.Printf("  Models:     %d\n", stats.UniqueModels)

	if !usageBreakdown {
		return nil
	}

	breakdown, err := trk.GetModelBreakdown(since)
	if err != nil {
		return fmt.Errorf("failed to read model breakdown: %w", err)
	}

	rows := pterm.TableData{{"Model", "Provider", "Requests", "Tokens"}}
	for _, b := range breakdown {
		rows = append(rows, []string{
			b.ModelName,
			b.ModelProvider,
			fmt.Sprintf("%d", b.RequestCount),
			fmt.Sprintf("%d", b.TotalTokens),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
