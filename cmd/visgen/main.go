package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumenworks/visgen/cmd/visgen/commands"
	"github.com/lumenworks/visgen/errors"
	"github.com/lumenworks/visgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "visgen",
	Short: "visgen - Symbol visibility configuration for native library distributions",
	Long: `visgen - Symbol visibility configuration for native library distributions.

visgen maintains the export headers of a multi-module native library:
which symbols a shared build exports, which it imports, and which stay
hidden, across Windows and ELF platforms, for both internal builds and
consumers of the installed headers.

Available commands:
  generate - Render export headers from the distribution manifest
  check    - Verify committed headers match the manifest
  expand   - Show token expansions under a build configuration
  probe    - Run scenario files against the visibility table
  matrix   - Print the full visibility decision table
  watch    - Regenerate headers when manifest or profile change
  init     - Write a starter manifest and build profile
  version  - Show visgen version information

Examples:
  visgen generate              # Write headers into the include dir
  visgen check                 # CI gate: fail if headers drifted
  visgen expand threads        # Show THREADS_* expansions
  visgen matrix                # Print the decision table`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON instead of console output")
	rootCmd.PersistentFlags().StringP("manifest", "m", "", "Path to visgen.yaml (default: nearest manifest upward from the working directory)")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.ExpandCmd)
	rootCmd.AddCommand(commands.ProbeCmd)
	rootCmd.AddCommand(commands.MatrixCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.InitCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hints := errors.FlattenHints(err); hints != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hints)
		}
		os.Exit(1)
	}
}
