package vis

import (
	"testing"

	"github.com/lumenworks/visgen/errors"
)

func TestApplyBindsEveryToken(t *testing.T) {
	tok := Tokens("CORE")
	e := NewExpansion(tok, Config{Build: BuildShared, Platform: PlatformWindows, Role: RoleInternal, Compiler: CompilerGNU})
	e.Apply()

	for _, name := range tok.Names() {
		if !e.Defined(name) {
			t.Errorf("token %q unbound after Apply", name)
		}
	}
	if got := e.Value(tok.Export); got != AttrDLLExport {
		t.Errorf("CORE_EXPORT = %q, want %q", got, AttrDLLExport)
	}
	if got := e.Value(tok.NoExport); got != AttrVisibilityHidden {
		t.Errorf("CORE_NO_EXPORT = %q, want %q", got, AttrVisibilityHidden)
	}
	if got := e.Value(tok.DeprecatedExport); got != AttrDLLExport+" "+AttrDeprecatedGNU {
		t.Errorf("CORE_DEPRECATED_EXPORT = %q", got)
	}
}

func TestApplyTwiceIsGuardedNoOp(t *testing.T) {
	tok := Tokens("CMS")
	e := NewExpansion(tok, Config{Build: BuildShared, Platform: PlatformUnix, Role: RoleInternal, Compiler: CompilerGNU})
	e.Apply()

	first := make(map[string]string, 5)
	for _, name := range tok.Names() {
		first[name] = e.Value(name)
	}

	e.Apply()
	for _, name := range tok.Names() {
		if got := e.Value(name); got != first[name] {
			t.Errorf("token %q changed on re-apply: %q → %q", name, first[name], got)
		}
	}
	if !e.Applied() {
		t.Error("Applied() = false after Apply")
	}
}

func TestPredefinedDeprecationFlowsIntoComposites(t *testing.T) {
	tok := Tokens("CMS")
	e := NewExpansion(tok, Config{Build: BuildShared, Platform: PlatformUnix, Role: RoleInternal, Compiler: CompilerGNU})
	if err := e.Predefine(tok.Deprecated, "CMS_LEGACY_WARNING"); err != nil {
		t.Fatalf("Predefine: %v", err)
	}
	e.Apply()

	if got := e.Value(tok.Deprecated); got != "CMS_LEGACY_WARNING" {
		t.Errorf("predefined CMS_DEPRECATED overwritten: %q", got)
	}
	want := AttrVisibilityDefault + " CMS_LEGACY_WARNING"
	if got := e.Value(tok.DeprecatedExport); got != want {
		t.Errorf("CMS_DEPRECATED_EXPORT = %q, want %q", got, want)
	}
}

func TestPredefinedCompositeWins(t *testing.T) {
	tok := Tokens("CORE")
	e := NewExpansion(tok, Config{Build: BuildShared, Platform: PlatformUnix, Role: RoleInternal, Compiler: CompilerGNU})
	if err := e.Predefine(tok.DeprecatedExport, "CORE_CUSTOM"); err != nil {
		t.Fatalf("Predefine: %v", err)
	}
	e.Apply()

	if got := e.Value(tok.DeprecatedExport); got != "CORE_CUSTOM" {
		t.Errorf("predefined composite overwritten: %q", got)
	}
	// the sibling composite still resolves from the table
	want := AttrVisibilityHidden + " " + AttrDeprecatedGNU
	if got := e.Value(tok.DeprecatedNoExport); got != want {
		t.Errorf("CORE_DEPRECATED_NO_EXPORT = %q, want %q", got, want)
	}
}

func TestPredefineRejectsExportPair(t *testing.T) {
	tok := Tokens("CORE")
	e := NewExpansion(tok, Config{Build: BuildShared})
	for _, token := range []string{tok.Export, tok.NoExport} {
		err := e.Predefine(token, "x")
		if !errors.Is(err, ErrNotOverridable) {
			t.Errorf("Predefine(%q): err = %v, want ErrNotOverridable", token, err)
		}
	}
}

func TestPredefineRejectsUnknownToken(t *testing.T) {
	tok := Tokens("CORE")
	e := NewExpansion(tok, Config{Build: BuildShared})
	err := e.Predefine("CMS_DEPRECATED", "x")
	if !errors.Is(err, ErrUnknownToken) {
		t.Errorf("err = %v, want ErrUnknownToken", err)
	}
}

func TestPredefineRejectsRedefinition(t *testing.T) {
	tok := Tokens("CORE")
	e := NewExpansion(tok, Config{Build: BuildShared})
	if err := e.Predefine(tok.Deprecated, "ONE"); err != nil {
		t.Fatalf("first Predefine: %v", err)
	}
	err := e.Predefine(tok.Deprecated, "TWO")
	if !errors.Is(err, ErrAlreadyDefined) {
		t.Errorf("err = %v, want ErrAlreadyDefined", err)
	}
	if got := e.Value(tok.Deprecated); got != "ONE" {
		t.Errorf("first binding lost: %q", got)
	}
}

func TestPredefineAfterApplyRejected(t *testing.T) {
	tok := Tokens("CORE")
	e := NewExpansion(tok, Config{Build: BuildShared, Compiler: CompilerGNU})
	e.Apply()
	err := e.Predefine(tok.Deprecated, "LATE")
	if !errors.Is(err, ErrAlreadyDefined) {
		t.Errorf("err = %v, want ErrAlreadyDefined", err)
	}
}

func TestOverridable(t *testing.T) {
	tok := Tokens("THREADS")
	e := NewExpansion(tok, Config{})
	tests := []struct {
		token string
		want  bool
	}{
		{tok.Export, false},
		{tok.NoExport, false},
		{tok.Deprecated, true},
		{tok.DeprecatedExport, true},
		{tok.DeprecatedNoExport, true},
		{"CORE_DEPRECATED", false},
	}
	for _, tt := range tests {
		if got := e.Overridable(tt.token); got != tt.want {
			t.Errorf("Overridable(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestRewriteDeclStaticMatchesStrippedDeclaration(t *testing.T) {
	tok := Tokens("CORE")
	e := NewExpansion(tok, Config{Build: BuildStatic, Platform: PlatformUnix, Role: RoleConsumer})
	e.Apply()

	annotated := "CORE_EXPORT size_t core_decoder_size(const core_decoder* dec);"
	stripped := "size_t core_decoder_size(const core_decoder* dec);"
	if got := e.RewriteDecl(annotated); got != stripped {
		t.Errorf("static rewrite = %q, want %q", got, stripped)
	}
}

func TestRewriteDeclThreadsAcrossRoles(t *testing.T) {
	tok := Tokens("THREADS")
	decl := "THREADS_EXPORT void threads_runner_destroy(void* runner);"

	internal := NewExpansion(tok, Config{Build: BuildShared, Platform: PlatformWindows, Role: RoleInternal})
	internal.Apply()
	if got := internal.RewriteDecl(decl); got != AttrDLLExport+" void threads_runner_destroy(void* runner);" {
		t.Errorf("internal build rewrite = %q", got)
	}

	consumer := NewExpansion(tok, Config{Build: BuildShared, Platform: PlatformWindows, Role: RoleConsumer})
	consumer.Apply()
	if got := consumer.RewriteDecl(decl); got != AttrDLLImport+" void threads_runner_destroy(void* runner);" {
		t.Errorf("consumer rewrite = %q", got)
	}
}

func TestRewriteDeclMatchesWholeIdentifiersOnly(t *testing.T) {
	tok := Tokens("CORE")
	e := NewExpansion(tok, Config{Build: BuildStatic})
	e.Apply()

	tests := []struct {
		name string
		decl string
		want string
	}{
		{"longer identifier untouched", "MY_CORE_EXPORT void f(void);", "MY_CORE_EXPORT void f(void);"},
		{"suffix extension untouched", "CORE_EXPORTED void f(void);", "CORE_EXPORTED void f(void);"},
		{"token at end of line", "void f(void) CORE_NO_EXPORT;", "void f(void) ;"},
		{"mid-declaration", "void CORE_EXPORT f(void);", "void f(void);"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.RewriteDecl(tt.decl); got != tt.want {
				t.Errorf("RewriteDecl(%q) = %q, want %q", tt.decl, got, tt.want)
			}
		})
	}
}

func TestRewriteDeclBeforeApplyLeavesTokens(t *testing.T) {
	tok := Tokens("CORE")
	e := NewExpansion(tok, Config{Build: BuildShared, Platform: PlatformWindows, Role: RoleInternal})

	decl := "CORE_EXPORT void f(void);"
	if got := e.RewriteDecl(decl); got != decl {
		t.Errorf("unbound rewrite = %q, want input unchanged", got)
	}
}

func TestReplicationAcrossPrefixes(t *testing.T) {
	configs := []Config{
		{Build: BuildStatic, Platform: PlatformUnix, Role: RoleConsumer, Compiler: CompilerGNU},
		{Build: BuildShared, Platform: PlatformWindows, Role: RoleInternal, Compiler: CompilerMSVC},
		{Build: BuildShared, Platform: PlatformUnix, Role: RoleConsumer},
	}
	prefixes := []string{"CORE", "CMS", "THREADS"}

	for _, cfg := range configs {
		values := make([]map[string]string, len(prefixes))
		for i, p := range prefixes {
			tok := Tokens(p)
			e := NewExpansion(tok, cfg)
			e.Apply()
			values[i] = map[string]string{
				SuffixExport:             e.Value(tok.Export),
				SuffixNoExport:           e.Value(tok.NoExport),
				SuffixDeprecated:         e.Value(tok.Deprecated),
				SuffixDeprecatedExport:   e.Value(tok.DeprecatedExport),
				SuffixDeprecatedNoExport: e.Value(tok.DeprecatedNoExport),
			}
		}
		for suffix := range values[0] {
			for i := 1; i < len(values); i++ {
				if values[i][suffix] != values[0][suffix] {
					t.Errorf("%+v: %s binding differs between %s (%q) and %s (%q)",
						cfg, suffix, prefixes[0], values[0][suffix], prefixes[i], values[i][suffix])
				}
			}
		}
	}
}
