package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lumenworks/visgen/dist"
	"github.com/lumenworks/visgen/errors"
	"github.com/lumenworks/visgen/version"
)

// loadDistribution resolves the manifest for a command: the --manifest
// flag when given, otherwise the nearest visgen.yaml upward from the
// working directory, otherwise the built-in lumen distribution. The
// returned path is empty for the built-in fallback.
func loadDistribution(cmd *cobra.Command) (*dist.Distribution, string, error) {
	if path, _ := cmd.Flags().GetString("manifest"); path != "" {
		d, err := dist.LoadFromFile(path)
		if err != nil {
			return nil, "", err
		}
		return d, path, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Wrap(err, "getting working directory")
	}
	return dist.Load(cwd)
}

// distRoot is the directory headers live under: the manifest's
// directory, or the working directory when running on the built-in
// distribution.
func distRoot(manifestPath string) (string, error) {
	if manifestPath == "" {
		return os.Getwd()
	}
	return filepath.Dir(manifestPath), nil
}

// checkRequires enforces the manifest's tool version constraint before
// acting on it.
func checkRequires(d *dist.Distribution) error {
	return d.CheckRequires(version.Get().Version)
}

// renderValue makes empty expansions visible in terminal output.
func renderValue(v string) string {
	if v == "" {
		return "(empty)"
	}
	return v
}
