package vis

import "strings"

// Bindings holds the resolved attribute text for every token of a module
// namespace. An empty string is the no-op binding: the token expands to
// nothing and the declaration compiles as if unannotated.
type Bindings struct {
	Export             string
	NoExport           string
	Deprecated         string
	DeprecatedExport   string
	DeprecatedNoExport string
}

// Resolve evaluates the visibility decision table for one ambient
// configuration. It is total: every input, including unrecognized values
// left unnormalized, resolves to a valid (possibly empty) binding.
//
// The table, first matching rule wins:
//
//  1. static build: export and no-export collapse to the empty binding,
//     regardless of platform and role.
//  2. shared build, windows: export is dllexport when building the module
//     itself, dllimport in consumer code.
//  3. shared build, unix-like (or anything unrecognized): export forces
//     default visibility when building the module, and is empty in
//     consumer code.
//  4. shared build, both platforms: no-export is the hidden-visibility
//     attribute, role notwithstanding.
//
// Deprecation is orthogonal: the annotation is chosen by compiler family
// alone and an unrecognized family omits it. The two composites are
// derived, never configured: export (or no-export) text followed by the
// deprecation text.
//
// Resolve does not take a module prefix. Namespaces differ only in token
// names, never in behavior; prefixes enter in Tokens and Expansion.
func Resolve(cfg Config) Bindings {
	var b Bindings

	if cfg.Build != BuildStatic {
		switch cfg.Platform {
		case PlatformWindows:
			if cfg.Role == RoleInternal {
				b.Export = AttrDLLExport
			} else {
				b.Export = AttrDLLImport
			}
		default:
			if cfg.Role == RoleInternal {
				b.Export = AttrVisibilityDefault
			}
		}
		b.NoExport = AttrVisibilityHidden
	}

	switch cfg.Compiler {
	case CompilerGNU:
		b.Deprecated = AttrDeprecatedGNU
	case CompilerMSVC:
		b.Deprecated = AttrDeprecatedMSVC
	}

	b.DeprecatedExport = JoinAttrs(b.Export, b.Deprecated)
	b.DeprecatedNoExport = JoinAttrs(b.NoExport, b.Deprecated)

	return b
}

// JoinAttrs concatenates attribute fragments with single spaces, skipping
// empty fragments so no stray whitespace leaks into expansions.
func JoinAttrs(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}
