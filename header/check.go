package header

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/lumenworks/visgen/dist"
	"github.com/lumenworks/visgen/errors"
)

// Check re-renders every header in memory and compares against the files
// under root. A missing file counts as drift. When any header differs the
// returned error wraps ErrHeadersOutOfDate; the per-file results are
// still returned so callers can report them.
func Check(root string, d *dist.Distribution) ([]Result, error) {
	results := make([]Result, 0, len(d.Modules))
	drifted := 0

	for i := range d.Modules {
		m := &d.Modules[i]
		rel := d.HeaderPath(m)
		content := Render(d, m)

		existing, err := os.ReadFile(filepath.Join(root, rel))
		var status Status
		switch {
		case os.IsNotExist(err):
			status = StatusMissing
			drifted++
		case err != nil:
			return nil, errors.Wrapf(err, "reading %s", rel)
		case bytes.Equal(existing, content):
			status = StatusUnchanged
		default:
			status = StatusDrifted
			drifted++
		}
		results = append(results, Result{Module: m.Name, Path: rel, Status: status})
	}

	if drifted > 0 {
		err := errors.Wrapf(errors.ErrHeadersOutOfDate, "%d of %d headers", drifted, len(d.Modules))
		return results, errors.WithHint(err, "run 'visgen generate' to refresh headers")
	}
	return results, nil
}
