// Package profile loads the ambient build profile: the compile-time
// facts (build mode, platform, compiler, per-module roles) that expand
// and probe commands resolve the decision table under.
package profile

import "github.com/lumenworks/visgen/vis"

// ProfileName is the profile filename looked up by upward search.
const ProfileName = "visgen.build.toml"

// Profile holds the ambient facts of one build environment. Values stay
// raw strings and are normalized at resolution time, mirroring the
// fail-open behavior of the emitted headers.
type Profile struct {
	// Build selects static or shared linkage. Empty means shared,
	// matching the opt-in static define.
	Build string `mapstructure:"build" toml:"build"`

	// Platform is the platform family; defaults from the host OS.
	Platform string `mapstructure:"platform" toml:"platform"`

	// Compiler family, used only to pick the deprecation annotation.
	Compiler string `mapstructure:"compiler" toml:"compiler"`

	// Roles maps module name to compilation role. Absent modules are
	// consumers; internal builds are opt-in, like the per-module define.
	Roles map[string]string `mapstructure:"roles" toml:"roles,omitempty"`
}

// Config resolves the profile into the ambient configuration of one
// module's translation unit.
func (p *Profile) Config(module string) vis.Config {
	return vis.Normalize(p.Build, p.Platform, p.Roles[module], p.Compiler)
}

// Role returns the raw configured role for a module, "" when unset.
func (p *Profile) Role(module string) string {
	return p.Roles[module]
}
