// Package dist models a library distribution: a named set of modules
// whose generated headers share one visibility decision table, differing
// only in token namespace. The distribution is described by a manifest
// (visgen.yaml); a built-in distribution covers the common layout so the
// tool works with no manifest at all.
package dist

import (
	"path/filepath"

	"github.com/lumenworks/visgen/errors"
	"github.com/lumenworks/visgen/vis"
)

// ManifestName is the manifest filename looked up by upward search.
const ManifestName = "visgen.yaml"

// Distribution describes one library distribution.
type Distribution struct {
	// Name of the distribution, e.g. "lumen".
	Name string `yaml:"name"`

	// StaticDefine selects the static decision rows for every module of
	// the distribution. Defaults to <NAME>_STATIC_DEFINE.
	StaticDefine string `yaml:"static_define,omitempty"`

	// IncludeDir is where generated headers are placed, relative to the
	// manifest (or working directory for the built-in distribution).
	IncludeDir string `yaml:"include_dir,omitempty"`

	// Requires constrains the visgen version allowed to regenerate this
	// distribution, e.g. ">= 1.2". Empty means any.
	Requires string `yaml:"requires,omitempty"`

	Modules []Module `yaml:"modules"`
}

// Module is one library of the distribution.
type Module struct {
	// Name of the module, e.g. "core".
	Name string `yaml:"name"`

	// Prefix is the token namespace, e.g. "CORE". Defaults to the
	// mangled upper-case module name.
	Prefix string `yaml:"prefix,omitempty"`

	// Header is the generated header filename inside the include dir.
	// Defaults to <name>_export.h.
	Header string `yaml:"header,omitempty"`
}

// Default returns the built-in lumen distribution: core, cms and threads
// with their conventional prefixes. This is what init writes and what
// commands fall back to when no manifest exists.
func Default() *Distribution {
	d := &Distribution{
		Name: "lumen",
		Modules: []Module{
			{Name: "core"},
			{Name: "cms"},
			{Name: "threads"},
		},
	}
	d.ApplyDefaults()
	return d
}

// ApplyDefaults fills the derivable fields left empty in a manifest:
// include dir, static define, per-module prefixes and header filenames.
func (d *Distribution) ApplyDefaults() {
	if d.IncludeDir == "" {
		d.IncludeDir = "include"
	}
	if d.StaticDefine == "" {
		d.StaticDefine = vis.StaticDefine(vis.MangleIdentifier(d.Name))
	}
	for i := range d.Modules {
		m := &d.Modules[i]
		if m.Prefix == "" {
			m.Prefix = vis.MangleIdentifier(m.Name)
		}
		if m.Header == "" {
			m.Header = m.Name + "_export.h"
		}
	}
}

// Module returns the named module.
func (d *Distribution) Module(name string) (*Module, error) {
	for i := range d.Modules {
		if d.Modules[i].Name == name {
			return &d.Modules[i], nil
		}
	}
	return nil, errors.NewUnknownModuleError(name)
}

// ModuleNames lists module names in manifest order.
func (d *Distribution) ModuleNames() []string {
	names := make([]string, len(d.Modules))
	for i, m := range d.Modules {
		names[i] = m.Name
	}
	return names
}

// HeaderPath is the path of a module's generated header relative to the
// manifest directory.
func (d *Distribution) HeaderPath(m *Module) string {
	return filepath.Join(d.IncludeDir, m.Header)
}

// Tokens returns the module's token namespace.
func (m *Module) Tokens() vis.TokenSet {
	return vis.Tokens(m.Prefix)
}

// InternalBuildDefine is the define marking this module's own build.
func (m *Module) InternalBuildDefine() string {
	return vis.InternalBuildDefine(m.Prefix)
}

// IncludeGuard is the guard macro of this module's generated header.
func (m *Module) IncludeGuard() string {
	return vis.IncludeGuard(m.Prefix)
}
