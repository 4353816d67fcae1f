package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lumenworks/visgen/profile"
	"github.com/lumenworks/visgen/vis"
)

var (
	expandBuild    string
	expandPlatform string
	expandCompiler string
	expandInternal string
	expandDecl     string
)

// ExpandCmd shows what each visibility token expands to.
var ExpandCmd = &cobra.Command{
	Use:   "expand [module...]",
	Short: "Show token expansions under a build configuration",
	Long: `Show what each visibility token of a module expands to under the
effective build configuration.

The configuration comes from the nearest visgen.build.toml (plus
VISGEN_* environment variables), with any flags given here layered on
top. Unknown platforms and compilers fall through to the safest
expansion rather than failing, matching what a compiler would see.

Examples:
  visgen expand                          # All modules, effective profile
  visgen expand threads                  # One module
  visgen expand --internal core core     # As seen while building core
  visgen expand --build static core      # Static linkage collapses exports
  visgen expand --decl 'CORE_EXPORT int core_init(void);' core`,
	RunE: runExpand,
}

func init() {
	ExpandCmd.Flags().StringVar(&expandBuild, "build", "", "Override build mode: static or shared")
	ExpandCmd.Flags().StringVar(&expandPlatform, "platform", "", "Override target platform: windows or unix")
	ExpandCmd.Flags().StringVar(&expandCompiler, "compiler", "", "Override compiler family: gnu or msvc")
	ExpandCmd.Flags().StringVar(&expandInternal, "internal", "", "Treat the named module as the one being built")
	ExpandCmd.Flags().StringVar(&expandDecl, "decl", "", "Rewrite a declaration instead of listing tokens")
}

func runExpand(cmd *cobra.Command, args []string) error {
	d, _, err := loadDistribution(cmd)
	if err != nil {
		return err
	}
	if err := checkRequires(d); err != nil {
		return err
	}

	loaded, err := profile.Load()
	if err != nil {
		return err
	}

	// Layer flag overrides onto a copy so the cached profile stays
	// untouched.
	prof := *loaded
	roles := make(map[string]string, len(loaded.Roles)+1)
	for module, role := range loaded.Roles {
		roles[module] = role
	}
	prof.Roles = roles

	if expandBuild != "" {
		prof.Build = expandBuild
	}
	if expandPlatform != "" {
		prof.Platform = expandPlatform
	}
	if expandCompiler != "" {
		prof.Compiler = expandCompiler
	}
	if expandInternal != "" {
		if _, err := d.Module(expandInternal); err != nil {
			return err
		}
		prof.Roles[expandInternal] = "internal"
	}
	if err := prof.Validate(); err != nil {
		return err
	}

	modules := args
	if len(modules) == 0 {
		modules = d.ModuleNames()
	}

	for i, name := range modules {
		m, err := d.Module(name)
		if err != nil {
			return err
		}

		cfg := prof.Config(m.Name)
		e := vis.NewExpansion(m.Tokens(), cfg)
		e.Apply()

		if expandDecl != "" {
			fmt.Println(e.RewriteDecl(expandDecl))
			continue
		}

		if i > 0 {
			fmt.Println()
		}
		pterm.Printf("%s %s  %s\n",
			pterm.LightCyan("Module:"),
			pterm.White(m.Name),
			pterm.Gray(fmt.Sprintf("(build=%s platform=%s role=%s compiler=%s)",
				cfg.Build, cfg.Platform, cfg.Role, compilerName(cfg.Compiler))))
		for _, token := range m.Tokens().Names() {
			value, _ := e.Lookup(token)
			if value == "" {
				pterm.Printf("  %s = %s\n", pterm.Yellow(token), pterm.Gray("(empty)"))
			} else {
				pterm.Printf("  %s = %s\n", pterm.Yellow(token), pterm.LightGreen(value))
			}
		}
	}
	return nil
}

// compilerName names the unrecognized compiler family in output.
func compilerName(c vis.Compiler) string {
	if c == vis.CompilerNone {
		return "(other)"
	}
	return string(c)
}
