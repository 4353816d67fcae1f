package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lumenworks/visgen/probe"
)

// ProbeCmd runs scenario files against the visibility table.
var ProbeCmd = &cobra.Command{
	Use:   "probe <scenario.toml...>",
	Short: "Run scenario files against the visibility table",
	Long: `Run probe scenarios: TOML files pairing a build configuration with
the token expansions and declaration rewrites it must produce.

Scenarios are the executable form of a distribution's compile-time
guarantees. Keep them next to the manifest and run them in CI alongside
'visgen check'.

Examples:
  visgen probe probes/static_collapse.toml
  visgen probe probes/*.toml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProbe,
}

func runProbe(cmd *cobra.Command, args []string) error {
	d, _, err := loadDistribution(cmd)
	if err != nil {
		return err
	}
	if err := checkRequires(d); err != nil {
		return err
	}

	scenarios, err := probe.LoadAll(args)
	if err != nil {
		return err
	}

	report, err := probe.RunAll(d, scenarios)
	if err != nil {
		return err
	}

	for _, o := range report.Outcomes {
		if o.Passed {
			pterm.Printf("  %s %s %s %s\n",
				pterm.LightGreen("✓"),
				pterm.Gray(o.Scenario),
				pterm.Yellow(string(o.Kind)),
				pterm.White(o.Subject))
			continue
		}
		pterm.Printf("  %s %s %s %s\n",
			pterm.Red("✗"),
			pterm.Gray(o.Scenario),
			pterm.Yellow(string(o.Kind)),
			pterm.White(o.Subject))
		pterm.Printf("      want: %s\n", pterm.LightGreen(renderValue(o.Want)))
		pterm.Printf("      got:  %s\n", pterm.Red(renderValue(o.Got)))
	}

	if err := report.Err(); err != nil {
		pterm.Error.Printf("%d of %d checks failed\n", report.Failed(), len(report.Outcomes))
		return err
	}
	pterm.Success.Printf("%d checks passed across %d scenarios\n", report.Passed(), len(scenarios))
	return nil
}
