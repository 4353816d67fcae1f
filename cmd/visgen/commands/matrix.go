package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lumenworks/visgen/vis"
)

// MatrixCmd prints the full visibility decision table.
var MatrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the full visibility decision table",
	Long: `Print every build mode × platform × role combination and the export
attributes it resolves to, plus the deprecation annotation per compiler
family. The table is namespace-independent: each module prefixes the
token names, the attribute text is the same everywhere.

Example:
  visgen matrix`,
	RunE: runMatrix,
}

func runMatrix(cmd *cobra.Command, args []string) error {
	pterm.Println(pterm.LightCyan("Export bindings by build mode, platform and role:"))
	fmt.Printf("  %-8s %-10s %-10s %-40s %s\n", "BUILD", "PLATFORM", "ROLE", "EXPORT", "NO_EXPORT")
	for _, row := range vis.Table() {
		fmt.Printf("  %-8s %-10s %-10s %-40s %s\n",
			row.Config.Build,
			row.Config.Platform,
			row.Config.Role,
			renderValue(row.Bindings.Export),
			renderValue(row.Bindings.NoExport))
	}

	fmt.Println()
	pterm.Println(pterm.LightCyan("Deprecation annotation by compiler family:"))
	fmt.Printf("  %-10s %s\n", "COMPILER", "DEPRECATED")
	for _, row := range vis.DeprecationTable() {
		fmt.Printf("  %-10s %s\n", compilerName(row.Compiler), renderValue(row.Annotation))
	}
	return nil
}
