package vis

import (
	"strings"
	"testing"
)

func TestResolveStaticCollapsesExportTokens(t *testing.T) {
	for _, p := range Platforms() {
		for _, r := range Roles() {
			b := Resolve(Config{Build: BuildStatic, Platform: p, Role: r})
			if b.Export != "" {
				t.Errorf("static %s/%s: Export = %q, want empty", p, r, b.Export)
			}
			if b.NoExport != "" {
				t.Errorf("static %s/%s: NoExport = %q, want empty", p, r, b.NoExport)
			}
		}
	}
}

func TestResolveSharedExport(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		role     Role
		want     string
	}{
		{"windows internal build exports", PlatformWindows, RoleInternal, AttrDLLExport},
		{"windows consumer imports", PlatformWindows, RoleConsumer, AttrDLLImport},
		{"unix internal build forces default visibility", PlatformUnix, RoleInternal, AttrVisibilityDefault},
		{"unix consumer inherits compiler default", PlatformUnix, RoleConsumer, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Resolve(Config{Build: BuildShared, Platform: tt.platform, Role: tt.role})
			if b.Export != tt.want {
				t.Errorf("Export = %q, want %q", b.Export, tt.want)
			}
		})
	}
}

func TestResolveSharedNoExportAlwaysHidden(t *testing.T) {
	for _, p := range Platforms() {
		for _, r := range Roles() {
			b := Resolve(Config{Build: BuildShared, Platform: p, Role: r})
			if b.NoExport != AttrVisibilityHidden {
				t.Errorf("shared %s/%s: NoExport = %q, want %q", p, r, b.NoExport, AttrVisibilityHidden)
			}
		}
	}
}

func TestResolveDeprecationByCompilerFamily(t *testing.T) {
	tests := []struct {
		compiler Compiler
		want     string
	}{
		{CompilerGNU, AttrDeprecatedGNU},
		{CompilerMSVC, AttrDeprecatedMSVC},
		{CompilerNone, ""},
	}
	for _, tt := range tests {
		for _, mode := range BuildModes() {
			b := Resolve(Config{Build: mode, Platform: PlatformUnix, Role: RoleInternal, Compiler: tt.compiler})
			if b.Deprecated != tt.want {
				t.Errorf("compiler %q under %s: Deprecated = %q, want %q",
					tt.compiler, mode, b.Deprecated, tt.want)
			}
		}
	}
}

func TestResolveCompositeConcatenationOrder(t *testing.T) {
	for _, mode := range BuildModes() {
		for _, p := range Platforms() {
			for _, r := range Roles() {
				for _, c := range Compilers() {
					cfg := Config{Build: mode, Platform: p, Role: r, Compiler: c}
					b := Resolve(cfg)
					if want := JoinAttrs(b.Export, b.Deprecated); b.DeprecatedExport != want {
						t.Errorf("%+v: DeprecatedExport = %q, want %q", cfg, b.DeprecatedExport, want)
					}
					if want := JoinAttrs(b.NoExport, b.Deprecated); b.DeprecatedNoExport != want {
						t.Errorf("%+v: DeprecatedNoExport = %q, want %q", cfg, b.DeprecatedNoExport, want)
					}
					if b.Export != "" && !strings.HasPrefix(b.DeprecatedExport, b.Export) {
						t.Errorf("%+v: export text must lead the composite, got %q", cfg, b.DeprecatedExport)
					}
				}
			}
		}
	}
}

func TestResolveFailsOpenOnUnrecognizedInputs(t *testing.T) {
	b := Resolve(Config{Build: "banana", Platform: "plan9", Role: "spectator", Compiler: "tcc"})
	if b.Export != "" {
		t.Errorf("unrecognized platform and role: Export = %q, want empty", b.Export)
	}
	if b.NoExport != AttrVisibilityHidden {
		t.Errorf("unrecognized build mode must behave shared: NoExport = %q, want %q",
			b.NoExport, AttrVisibilityHidden)
	}
	if b.Deprecated != "" {
		t.Errorf("unrecognized compiler: Deprecated = %q, want empty", b.Deprecated)
	}
}

func TestJoinAttrs(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"both empty", []string{"", ""}, ""},
		{"left only", []string{AttrDLLExport, ""}, AttrDLLExport},
		{"right only", []string{"", AttrDeprecatedGNU}, AttrDeprecatedGNU},
		{"both", []string{AttrDLLExport, AttrDeprecatedGNU}, AttrDLLExport + " " + AttrDeprecatedGNU},
		{"none", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinAttrs(tt.parts...); got != tt.want {
				t.Errorf("JoinAttrs(%q) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}
