package vis

import "github.com/lumenworks/visgen/errors"

// Predefine error conditions. The emitted headers guard only the
// deprecation family with #ifndef, so those are the only tokens a
// consumer may define ahead of inclusion.
var (
	ErrUnknownToken   = errors.New("token not in namespace")
	ErrNotOverridable = errors.New("token has no override channel")
	ErrAlreadyDefined = errors.New("token already defined")
)

// Expansion models the macro state of one translation unit with respect
// to one module namespace. Every binding is write-once: the first
// definition of a token holds for the life of the unit, and Apply (the
// analogue of including the generated header) never overwrites.
type Expansion struct {
	tokens  TokenSet
	cfg     Config
	defs    map[string]string
	applied bool
}

// NewExpansion starts an empty translation unit for one namespace under
// one ambient configuration.
func NewExpansion(t TokenSet, cfg Config) *Expansion {
	return &Expansion{
		tokens: t,
		cfg:    cfg,
		defs:   make(map[string]string, 5),
	}
}

// Tokens returns the namespace this expansion is scoped to.
func (e *Expansion) Tokens() TokenSet { return e.tokens }

// Config returns the ambient configuration the expansion resolves under.
func (e *Expansion) Config() Config { return e.cfg }

// Overridable reports whether a consumer may predefine token before the
// header is applied. Only the deprecation family carries an #ifndef
// guard; the export pair is bound unconditionally.
func (e *Expansion) Overridable(token string) bool {
	switch token {
	case e.tokens.Deprecated, e.tokens.DeprecatedExport, e.tokens.DeprecatedNoExport:
		return true
	}
	return false
}

// Predefine installs a consumer-supplied binding ahead of Apply, the way
// a -D flag or a #define before the include does. It fails for tokens
// outside the namespace, for the unguarded export pair, and for tokens
// already bound.
func (e *Expansion) Predefine(token, value string) error {
	if !e.inNamespace(token) {
		return errors.Wrapf(ErrUnknownToken, "token %q, namespace %s", token, e.tokens.Prefix)
	}
	if !e.Overridable(token) {
		return errors.Wrapf(ErrNotOverridable, "token %q", token)
	}
	if _, ok := e.defs[token]; ok {
		return errors.Wrapf(ErrAlreadyDefined, "token %q", token)
	}
	e.defs[token] = value
	return nil
}

// Apply binds every token of the namespace from the resolved decision
// table, skipping tokens that already hold a value. A second Apply is a
// no-op, mirroring the include guard of the generated header.
//
// The composites are concatenated from the expansion's current values
// rather than taken from the table, so a predefined deprecation marker
// flows into them.
func (e *Expansion) Apply() {
	if e.applied {
		return
	}
	e.applied = true

	b := Resolve(e.cfg)
	e.defineOnce(e.tokens.Export, b.Export)
	e.defineOnce(e.tokens.NoExport, b.NoExport)
	e.defineOnce(e.tokens.Deprecated, b.Deprecated)
	e.defineOnce(e.tokens.DeprecatedExport,
		JoinAttrs(e.defs[e.tokens.Export], e.defs[e.tokens.Deprecated]))
	e.defineOnce(e.tokens.DeprecatedNoExport,
		JoinAttrs(e.defs[e.tokens.NoExport], e.defs[e.tokens.Deprecated]))
}

// Applied reports whether the header has been applied to this unit.
func (e *Expansion) Applied() bool { return e.applied }

// Lookup returns a token's bound text and whether it is bound at all.
func (e *Expansion) Lookup(token string) (string, bool) {
	v, ok := e.defs[token]
	return v, ok
}

// Value returns a token's bound text, or "" when the token is unbound.
// Unbound lookups are not an error: an unannotated declaration is valid.
func (e *Expansion) Value(token string) string {
	return e.defs[token]
}

// Defined reports whether a token holds a binding.
func (e *Expansion) Defined(token string) bool {
	_, ok := e.defs[token]
	return ok
}

// RewriteDecl expands this unit's bindings inside a declaration.
func (e *Expansion) RewriteDecl(decl string) string {
	return RewriteDecl(decl, e.Lookup)
}

func (e *Expansion) inNamespace(token string) bool {
	for _, name := range e.tokens.Names() {
		if token == name {
			return true
		}
	}
	return false
}

func (e *Expansion) defineOnce(token, value string) {
	if _, ok := e.defs[token]; !ok {
		e.defs[token] = value
	}
}

// RewriteDecl substitutes bound tokens inside a C declaration. Tokens
// are matched as whole identifiers only. A token bound to the empty
// string is removed together with one following space, so a static-mode
// `CORE_EXPORT void f(void);` rewrites to exactly `void f(void);`,
// identical to the declaration with the annotation stripped.
func RewriteDecl(decl string, lookup func(string) (string, bool)) string {
	var sb []byte
	for i := 0; i < len(decl); {
		c := decl[i]
		if !isIdentStart(c) {
			sb = append(sb, c)
			i++
			continue
		}
		j := i + 1
		for j < len(decl) && isIdentCont(decl[j]) {
			j++
		}
		word := decl[i:j]
		text, ok := lookup(word)
		switch {
		case !ok:
			sb = append(sb, word...)
		case text == "":
			if j < len(decl) && decl[j] == ' ' {
				j++
			}
		default:
			sb = append(sb, text...)
		}
		i = j
	}
	return string(sb)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
