package profile

import (
	"strings"

	"github.com/lumenworks/visgen/errors"
	"github.com/lumenworks/visgen/vis"
)

// Validate rejects profile values that would silently change linkage. A
// typo in build would flip every module to the shared rows without
// warning, so build is strict. Platform, compiler and roles stay
// fail-open and are normalized at resolution time instead.
func (p *Profile) Validate() error {
	switch strings.ToLower(strings.TrimSpace(p.Build)) {
	case "", string(vis.BuildStatic), string(vis.BuildShared):
	default:
		return errors.Newf("build must be %q or %q, got %q (omit for shared)",
			vis.BuildStatic, vis.BuildShared, p.Build)
	}
	return nil
}
