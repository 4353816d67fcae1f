// Package vis defines the symbol-visibility decision procedure shared by
// every module of a Lumen library distribution.
//
// The decision procedure maps an ambient build configuration (build mode,
// platform family, compilation role, compiler family) to the attribute
// text behind each visibility token of a module's namespace: export,
// no-export, deprecated, and the two derived composites. It is a pure
// function with no failure path: unrecognized inputs degrade to the
// safest (empty) binding rather than blocking a build.
//
// The same table is evaluated in two places that must never drift: here,
// for expansion probing and scenario checks, and in the consumer's C
// preprocessor via the headers emitted by the header package. Both are
// driven by the constants in this package.
package vis

import "strings"

// BuildMode selects static or shared linkage for the whole distribution.
type BuildMode string

// Platform is the platform family, which decides the native visibility
// mechanism: import/export declspec attributes vs. ELF visibility.
type Platform string

// Role distinguishes a translation unit compiling the module itself from
// client code that merely includes the module's header.
type Role string

// Compiler is the compiler family, used only to pick the deprecation
// annotation form.
type Compiler string

const (
	// BuildStatic links every module into the final artifact; there is no
	// dynamic-loading boundary, so export and import distinctions vanish.
	BuildStatic BuildMode = "static"
	// BuildShared builds each module as an independently loadable library.
	BuildShared BuildMode = "shared"

	PlatformWindows Platform = "windows"
	PlatformUnix    Platform = "unix"

	// RoleInternal marks the build of the module that defines the symbols.
	RoleInternal Role = "internal"
	// RoleConsumer marks client code referencing symbols defined elsewhere.
	RoleConsumer Role = "consumer"

	CompilerGNU  Compiler = "gnu"
	CompilerMSVC Compiler = "msvc"
	// CompilerNone is any unrecognized compiler: deprecation annotations
	// are omitted so the build still succeeds.
	CompilerNone Compiler = ""
)

// Config gathers the ambient facts consumed by Resolve. All four are
// supplied externally; none are computed here.
type Config struct {
	Build    BuildMode
	Platform Platform
	Role     Role
	Compiler Compiler
}

// BuildModes lists the build modes in canonical order.
func BuildModes() []BuildMode {
	return []BuildMode{BuildStatic, BuildShared}
}

// Platforms lists the platform families in canonical order.
func Platforms() []Platform {
	return []Platform{PlatformWindows, PlatformUnix}
}

// Roles lists the compilation roles in canonical order.
func Roles() []Role {
	return []Role{RoleInternal, RoleConsumer}
}

// Compilers lists the recognized compiler families in canonical order.
// CompilerNone is deliberately included: the fallthrough row is part of
// the table, not an error.
func Compilers() []Compiler {
	return []Compiler{CompilerGNU, CompilerMSVC, CompilerNone}
}

// NormalizeBuildMode maps external spellings onto a BuildMode. An empty
// value means shared: static linkage is opt-in, mirroring the behavior
// of the static define in the emitted headers.
func NormalizeBuildMode(s string) BuildMode {
	if strings.EqualFold(strings.TrimSpace(s), string(BuildStatic)) {
		return BuildStatic
	}
	return BuildShared
}

// NormalizePlatform maps external spellings onto a platform family.
// Anything not recognizably Windows behaves unix-like: an unanticipated
// platform loses ABI hygiene, never the build.
func NormalizePlatform(s string) Platform {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows", "windows-like", "win32", "win64", "win", "mingw":
		return PlatformWindows
	default:
		return PlatformUnix
	}
}

// NormalizeRole maps external spellings onto a compilation role. The
// internal-build signal is opt-in, exactly like the per-module define in
// the emitted headers; anything else is a consumer.
func NormalizeRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "internal", "internal-build", "build":
		return RoleInternal
	default:
		return RoleConsumer
	}
}

// NormalizeCompiler maps external spellings onto a compiler family.
// Unrecognized compilers fall back to CompilerNone, which omits the
// deprecation annotation.
func NormalizeCompiler(s string) Compiler {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gnu", "gcc", "g++", "clang", "clang++":
		return CompilerGNU
	case "msvc", "cl", "msc":
		return CompilerMSVC
	default:
		return CompilerNone
	}
}

// Normalize returns cfg with every field passed through its normalizer,
// so a Config built from raw strings is safe to hand to Resolve.
func Normalize(build, platform, role, compiler string) Config {
	return Config{
		Build:    NormalizeBuildMode(build),
		Platform: NormalizePlatform(platform),
		Role:     NormalizeRole(role),
		Compiler: NormalizeCompiler(compiler),
	}
}
