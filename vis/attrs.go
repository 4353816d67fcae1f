package vis

// Attribute text constants, the native visibility vocabulary the decision
// table selects from. These strings appear verbatim in emitted headers and
// in resolved expansions. The space in the GNU deprecation form is part of
// the canonical spelling.
const (
	// AttrDLLExport marks a symbol for dynamic export from a Windows DLL.
	AttrDLLExport = "__declspec(dllexport)"

	// AttrDLLImport marks a symbol as imported from a Windows DLL.
	AttrDLLImport = "__declspec(dllimport)"

	// AttrVisibilityDefault forces default (publicly visible) symbol
	// visibility under the ELF visibility model.
	AttrVisibilityDefault = `__attribute__((visibility("default")))`

	// AttrVisibilityHidden excludes a symbol from the public ABI under
	// the ELF visibility model.
	AttrVisibilityHidden = `__attribute__((visibility("hidden")))`

	// AttrDeprecatedGNU is the GNU-family deprecation annotation.
	AttrDeprecatedGNU = "__attribute__ ((__deprecated__))"

	// AttrDeprecatedMSVC is the MSVC deprecation annotation.
	AttrDeprecatedMSVC = "__declspec(deprecated)"
)

// Preprocessor signals recognized by the emitted headers. The Go-side
// profile speaks the normalized vocabulary in vis.go; these are the spellings
// the consumer's toolchain provides.
const (
	// DefineWindows is the platform-identification signal.
	DefineWindows = "_WIN32"

	// DefineGNUC identifies the GNU compiler family.
	DefineGNUC = "__GNUC__"

	// DefineMSC identifies the MSVC compiler family.
	DefineMSC = "_MSC_VER"
)
