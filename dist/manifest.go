package dist

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lumenworks/visgen/errors"
	"github.com/lumenworks/visgen/logger"
)

// FindManifest walks up from startDir looking for a visgen.yaml. It
// returns ErrManifestNotFound when the search reaches the filesystem
// root without a hit.
func FindManifest(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", startDir)
	}

	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.Wrapf(errors.ErrManifestNotFound, "searched upward from %s", startDir)
}

// Load locates and loads the distribution manifest by upward search from
// dir. When no manifest exists it falls back to the built-in
// distribution; the returned path is empty in that case. Errors are
// reserved for manifests that exist but cannot be used.
func Load(dir string) (*Distribution, string, error) {
	path, err := FindManifest(dir)
	if err != nil {
		if errors.IsManifestNotFound(err) {
			logger.Debugw("no manifest found, using built-in distribution",
				"search_root", dir,
				"distribution", "lumen")
			return Default(), "", nil
		}
		return nil, "", err
	}

	d, err := LoadFromFile(path)
	if err != nil {
		return nil, "", err
	}
	return d, path, nil
}

// LoadFromFile loads and validates a manifest from a specific path.
func LoadFromFile(path string) (*Distribution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrManifestNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "reading manifest %s", path)
	}

	var d Distribution
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrapf(err, "parsing manifest %s", path)
	}

	d.ApplyDefaults()
	if err := d.Validate(); err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}

	logger.Debugw("loaded distribution manifest",
		"path", path,
		"distribution", d.Name,
		"modules", len(d.Modules))
	return &d, nil
}

// Save writes the distribution as a manifest file. Used by init; header
// generation never rewrites the manifest.
func (d *Distribution) Save(path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return errors.Wrap(err, "marshaling manifest")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing manifest %s", path)
	}
	return nil
}
