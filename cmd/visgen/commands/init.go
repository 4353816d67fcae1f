package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lumenworks/visgen/dist"
	"github.com/lumenworks/visgen/errors"
	"github.com/lumenworks/visgen/profile"
)

var initForce bool

// InitCmd writes a starter manifest and build profile.
var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter manifest and build profile",
	Long: `Write a visgen.yaml manifest and a visgen.build.toml profile into the
working directory.

The manifest starts as the built-in lumen distribution (core, cms,
threads); edit it to describe your own modules. The profile defaults to
a shared build targeting the host platform and compiler.

Examples:
  visgen init
  visgen init --force    # Overwrite existing files`,
	RunE: runInit,
}

func init() {
	InitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing manifest and profile")
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "getting working directory")
	}

	manifestPath := filepath.Join(cwd, dist.ManifestName)
	profilePath := filepath.Join(cwd, profile.ProfileName)

	if !initForce {
		for _, path := range []string{manifestPath, profilePath} {
			if _, err := os.Stat(path); err == nil {
				return errors.WithHint(
					errors.Newf("%s already exists", filepath.Base(path)),
					"pass --force to overwrite")
			}
		}
	}

	d := dist.Default()
	if err := d.Save(manifestPath); err != nil {
		return err
	}
	fmt.Printf("✓ Created %s\n", dist.ManifestName)

	p := &profile.Profile{
		Build:    "shared",
		Platform: profile.HostPlatform(),
		Compiler: profile.HostCompiler(),
	}
	if err := profile.Save(p, profilePath); err != nil {
		return err
	}
	fmt.Printf("✓ Created %s\n", profile.ProfileName)

	fmt.Println("Run 'visgen generate' to create the export headers.")
	return nil
}
