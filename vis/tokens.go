package vis

import "strings"

// Suffixes of the five tokens a module namespace owns. A namespace is the
// module prefix joined to each suffix with an underscore, so prefix CORE
// yields CORE_EXPORT, CORE_NO_EXPORT and so on.
const (
	SuffixExport             = "EXPORT"
	SuffixNoExport           = "NO_EXPORT"
	SuffixDeprecated         = "DEPRECATED"
	SuffixDeprecatedExport   = "DEPRECATED_EXPORT"
	SuffixDeprecatedNoExport = "DEPRECATED_NO_EXPORT"
)

// TokenSet holds the concrete token names of one module namespace.
type TokenSet struct {
	Prefix string

	Export             string
	NoExport           string
	Deprecated         string
	DeprecatedExport   string
	DeprecatedNoExport string
}

// Tokens derives the token names for a module prefix. The prefix is used
// as given; validate with IsCIdentifier before rendering anything that
// reaches a compiler.
func Tokens(prefix string) TokenSet {
	return TokenSet{
		Prefix:             prefix,
		Export:             prefix + "_" + SuffixExport,
		NoExport:           prefix + "_" + SuffixNoExport,
		Deprecated:         prefix + "_" + SuffixDeprecated,
		DeprecatedExport:   prefix + "_" + SuffixDeprecatedExport,
		DeprecatedNoExport: prefix + "_" + SuffixDeprecatedNoExport,
	}
}

// Names returns the five token names in declaration order: export,
// no-export, deprecated, then the two composites.
func (t TokenSet) Names() []string {
	return []string{
		t.Export,
		t.NoExport,
		t.Deprecated,
		t.DeprecatedExport,
		t.DeprecatedNoExport,
	}
}

// Bind pairs each token name with its resolved text, in Names order.
func (t TokenSet) Bind(b Bindings) map[string]string {
	return map[string]string{
		t.Export:             b.Export,
		t.NoExport:           b.NoExport,
		t.Deprecated:         b.Deprecated,
		t.DeprecatedExport:   b.DeprecatedExport,
		t.DeprecatedNoExport: b.DeprecatedNoExport,
	}
}

// InternalBuildDefine is the per-module define that marks translation
// units compiled as part of the module itself rather than consumer code.
func InternalBuildDefine(prefix string) string {
	return prefix + "_INTERNAL_LIBRARY_BUILD"
}

// StaticDefine is the distribution-wide define that selects the static
// decision rows. One define covers every module of a distribution; a
// consumer linking statically sets it once.
func StaticDefine(distPrefix string) string {
	return distPrefix + "_STATIC_DEFINE"
}

// IncludeGuard is the guard macro of a module's generated header.
func IncludeGuard(prefix string) string {
	return prefix + "_" + SuffixExport + "_H"
}

// IsCIdentifier reports whether s is usable as a preprocessor macro
// prefix: nonempty, uppercase letters, digits and underscores only, not
// starting with a digit.
func IsCIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// MangleIdentifier coerces an arbitrary module name into a valid macro
// prefix: letters are uppercased, runs of anything else collapse to a
// single underscore, and a leading digit gains an underscore. Returns ""
// when nothing usable remains.
func MangleIdentifier(name string) string {
	var sb strings.Builder
	lastUnderscore := true // swallow leading separators
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r - ('a' - 'A'))
			lastUnderscore = false
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r)
			lastUnderscore = false
		case r >= '0' && r <= '9':
			if sb.Len() == 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				sb.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	out := strings.TrimRight(sb.String(), "_")
	if out == "_" {
		return ""
	}
	return out
}
