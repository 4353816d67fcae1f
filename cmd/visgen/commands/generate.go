package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenworks/visgen/header"
)

// GenerateCmd renders the distribution's export headers.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render export headers from the distribution manifest",
	Long: `Render one export header per module of the distribution.

Each header defines the module's visibility tokens (EXPORT, NO_EXPORT,
DEPRECATED and their composites) for every build configuration: static
or shared linkage, Windows or ELF platforms, internal builds or
installed-header consumers. Headers are written under the manifest's
include directory and only touched when their content changes, so
mtime-based build systems stay quiet.

Examples:
  visgen generate                   # Headers for the nearest manifest
  visgen generate -m dist/visgen.yaml`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	d, manifestPath, err := loadDistribution(cmd)
	if err != nil {
		return err
	}
	if err := checkRequires(d); err != nil {
		return err
	}
	root, err := distRoot(manifestPath)
	if err != nil {
		return err
	}

	results, err := header.Generate(root, d)
	if err != nil {
		return err
	}

	wrote := 0
	for _, res := range results {
		switch res.Status {
		case header.StatusWritten:
			fmt.Printf("✓ Generated %s\n", res.Path)
			wrote++
		case header.StatusUnchanged:
			fmt.Printf("  %s up to date\n", res.Path)
		}
	}
	if wrote == 0 {
		fmt.Println("All headers up to date")
	}
	return nil
}
