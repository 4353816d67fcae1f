package dist

import (
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/lumenworks/visgen/errors"
	"github.com/lumenworks/visgen/vis"
)

// Validate checks that the distribution is internally consistent. It is
// called after ApplyDefaults, so derivable fields are already filled;
// anything still invalid came from the manifest itself.
func (d *Distribution) Validate() error {
	if d.Name == "" {
		return errors.New("name cannot be empty")
	}

	if !vis.IsCIdentifier(d.StaticDefine) {
		return errors.Wrapf(errors.ErrInvalidPrefix, "static_define %q is not a valid macro name", d.StaticDefine)
	}

	if d.Requires != "" {
		if _, err := semver.NewConstraint(d.Requires); err != nil {
			return errors.Wrapf(err, "requires %q is not a valid version constraint", d.Requires)
		}
	}

	if len(d.Modules) == 0 {
		return errors.New("modules cannot be empty")
	}

	names := make(map[string]int, len(d.Modules))
	prefixes := make(map[string]int, len(d.Modules))
	headers := make(map[string]int, len(d.Modules))

	for i := range d.Modules {
		m := &d.Modules[i]

		if m.Name == "" {
			return errors.Newf("modules[%d].name cannot be empty", i)
		}
		if prev, dup := names[m.Name]; dup {
			return errors.Newf("duplicate module name %q (modules[%d] and modules[%d])", m.Name, prev, i)
		}
		names[m.Name] = i

		if !vis.IsCIdentifier(m.Prefix) {
			err := errors.NewInvalidPrefixError(m.Prefix)
			if suggestion := vis.MangleIdentifier(m.Name); suggestion != "" {
				err = errors.WithHintf(err, "try prefix: %s", suggestion)
			}
			return errors.Wrapf(err, "module %q", m.Name)
		}
		if prev, dup := prefixes[m.Prefix]; dup {
			return errors.Newf("modules %q and %q share prefix %q; token namespaces must be disjoint",
				d.Modules[prev].Name, m.Name, m.Prefix)
		}
		prefixes[m.Prefix] = i

		if filepath.IsAbs(m.Header) {
			return errors.Newf("modules[%d].header must be relative to include_dir, got %q", i, m.Header)
		}
		for _, part := range strings.Split(filepath.ToSlash(m.Header), "/") {
			if part == ".." {
				return errors.Newf("modules[%d].header cannot escape include_dir, got %q", i, m.Header)
			}
		}
		if prev, dup := headers[m.Header]; dup {
			return errors.Newf("modules %q and %q share header path %q",
				d.Modules[prev].Name, m.Name, m.Header)
		}
		headers[m.Header] = i
	}

	return nil
}
