package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenworks/visgen/header"
)

// CheckCmd verifies committed headers against the manifest.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify committed headers match the manifest",
	Long: `Verify that the export headers on disk are exactly what the manifest
would generate. Exits non-zero when any header is missing or stale,
which makes this the CI gate against hand-edited or forgotten headers.

Examples:
  visgen check        # Pass/fail for the nearest manifest
  visgen check -vv    # With debug logging`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	results, checkErr := header.Check(root, d)
	if results == nil && checkErr != nil {
		return checkErr
	}

	for _, res := range results {
		switch res.Status {
		case header.StatusUnchanged:
			fmt.Printf("✓ %s up to date\n", res.Path)
		case header.StatusDrifted:
			fmt.Printf("✗ %s is out of date\n", res.Path)
		case header.StatusMissing:
			fmt.Printf("✗ %s is missing\n", res.Path)
		}
	}
	return checkErr
}
