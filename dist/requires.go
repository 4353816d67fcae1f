package dist

import (
	"github.com/Masterminds/semver/v3"

	"github.com/lumenworks/visgen/errors"
	"github.com/lumenworks/visgen/logger"
)

// CheckRequires verifies that the running tool version satisfies the
// manifest's requires constraint. Dev builds skip the check, so a
// working tree is never blocked by a pinned manifest.
func (d *Distribution) CheckRequires(toolVersion string) error {
	if d.Requires == "" {
		return nil
	}
	if toolVersion == "" || toolVersion == "dev" {
		logger.Debugw("skipping manifest requires check for dev build",
			"requires", d.Requires)
		return nil
	}

	ver, err := semver.NewVersion(toolVersion)
	if err != nil {
		return errors.Wrapf(err, "invalid tool version %q", toolVersion)
	}
	constraint, err := semver.NewConstraint(d.Requires)
	if err != nil {
		return errors.Wrapf(err, "invalid requires constraint %q", d.Requires)
	}

	if !constraint.Check(ver) {
		return errors.Wrapf(errors.ErrIncompatibleVersion,
			"manifest requires visgen %s, running %s", d.Requires, toolVersion)
	}
	return nil
}
