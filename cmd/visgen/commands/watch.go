package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lumenworks/visgen/dist"
	"github.com/lumenworks/visgen/errors"
	"github.com/lumenworks/visgen/header"
	"github.com/lumenworks/visgen/logger"
	"github.com/lumenworks/visgen/profile"
	"github.com/lumenworks/visgen/watch"
)

// WatchCmd regenerates headers whenever the manifest or profile change.
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate headers when manifest or profile change",
	Long: `Watch the distribution manifest and build profile, regenerating the
export headers whenever either changes on disk.

Rapid editor saves are debounced into a single regeneration pass, and
passes are rate limited in case something rewrites the watched files in
a loop. Runs in the foreground until interrupted.

Example:
  visgen watch`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	var paths []string
	if manifestPath != "" {
		paths = append(paths, manifestPath)
	}
	if _, err := profile.Load(); err == nil {
		if profilePath := profile.GetViper().ConfigFileUsed(); profilePath != "" {
			paths = append(paths, profilePath)
		}
	}
	if len(paths) == 0 {
		return errors.WithHint(
			errors.New("nothing to watch: no visgen.yaml or visgen.build.toml found"),
			"run 'visgen init' to create them")
	}

	// Converge once up front so the tree starts clean.
	results, err := header.Generate(root, d)
	if err != nil {
		return err
	}
	for _, res := range results {
		if res.Status == header.StatusWritten {
			fmt.Printf("✓ Generated %s\n", res.Path)
		}
	}

	pass := func(runID string) error {
		current := d
		if manifestPath != "" {
			reloaded, err := dist.LoadFromFile(manifestPath)
			if err != nil {
				return err
			}
			if err := checkRequires(reloaded); err != nil {
				return err
			}
			current = reloaded
		}
		results, err := header.Generate(root, current)
		if err != nil {
			return err
		}
		for _, res := range results {
			if res.Status == header.StatusWritten {
				pterm.Printf("  %s %s %s\n",
					pterm.LightGreen("✓ Regenerated:"),
					pterm.White(res.Path),
					pterm.Gray("run "+runID[:8]))
			}
		}
		return nil
	}

	engine, err := watch.NewEngine(paths, pass, logger.Named("watch"))
	if err != nil {
		return err
	}
	engine.Start()

	fmt.Printf("Watching %d file(s); Ctrl+C to stop\n", len(paths))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	fmt.Printf("\nReceived %s, shutting down\n", sig)
	return engine.Stop()
}
