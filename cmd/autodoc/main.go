package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/autodoc-ai/autodoc/cmd/autodoc/commands"
	"github.com/autodoc-ai/autodoc/logger"
)

var rootCmd = &cobra.Command{
	Use:   "autodoc",
	Short: "autodoc - Generate docs, comments, and tests for source files",
	Long: `autodoc - Automated documentation and test generation.

autodoc parses a source file, discovers its classes and functions, and uses
a chat model to produce an annotated copy of the file, a markdown technical
document, and a unit test skeleton.

Supported languages: python (.py), javascript (.js), typescript (.ts),
swift (.swift).

Available commands:
  run     - Process one or more source files
  am      - Manage autodoc configuration ("I am")
  usage   - Show AI model usage statistics
  version - Show version information

Examples:
  autodoc run calc.py               # Annotate, document, and test calc.py
  autodoc run --provider local a.ts # Force the local Ollama provider
  autodoc am show                   # Show current configuration
  autodoc usage --since 24h         # Model usage for the last day`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON instead of console output")

	rootCmd.AddCommand(commands.RunCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.UsageCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
