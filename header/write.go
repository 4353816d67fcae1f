package header

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/lumenworks/visgen/dist"
	"github.com/lumenworks/visgen/errors"
	"github.com/lumenworks/visgen/logger"
)

// Status of one header after a generate or check pass.
type Status string

const (
	StatusWritten   Status = "written"
	StatusUnchanged Status = "unchanged"
	StatusDrifted   Status = "drifted"
	StatusMissing   Status = "missing"
)

// Result describes one module's header after a generate or check pass.
// Path is relative to the distribution root.
type Result struct {
	Module string
	Path   string
	Status Status
}

// Generate renders every header of the distribution under root, writing
// only the files whose content changed. Leaving unchanged files alone
// keeps mtime-keyed build systems from rebuilding the world.
func Generate(root string, d *dist.Distribution) ([]Result, error) {
	results := make([]Result, 0, len(d.Modules))
	for i := range d.Modules {
		m := &d.Modules[i]
		rel := d.HeaderPath(m)
		path := filepath.Join(root, rel)
		content := Render(d, m)

		existing, err := os.ReadFile(path)
		if err == nil && bytes.Equal(existing, content) {
			results = append(results, Result{Module: m.Name, Path: rel, Status: StatusUnchanged})
			continue
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrapf(err, "creating %s", filepath.Dir(path))
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return nil, errors.Wrapf(err, "writing %s", rel)
		}

		logger.Debugw("wrote header",
			"module", m.Name,
			"file", rel,
			"bytes", len(content))
		results = append(results, Result{Module: m.Name, Path: rel, Status: StatusWritten})
	}
	return results, nil
}
