// Package header emits and verifies the C export headers that carry the
// visibility decision table into consumers' builds.
package header

import (
	"fmt"
	"strings"

	"github.com/lumenworks/visgen/dist"
	"github.com/lumenworks/visgen/vis"
)

// Render produces the canonical export header for one module. The output
// is byte-deterministic: the same manifest always renders the same bytes,
// so drift checks can compare files directly.
//
// Every branch value is read off the decision table rather than spelled
// inline, so the emitted conditional tree cannot drift from vis.Resolve.
func Render(d *dist.Distribution, m *dist.Module) []byte {
	tok := m.Tokens()

	winInternal := vis.Resolve(vis.Config{Build: vis.BuildShared, Platform: vis.PlatformWindows, Role: vis.RoleInternal})
	winConsumer := vis.Resolve(vis.Config{Build: vis.BuildShared, Platform: vis.PlatformWindows, Role: vis.RoleConsumer})
	unixInternal := vis.Resolve(vis.Config{Build: vis.BuildShared, Platform: vis.PlatformUnix, Role: vis.RoleInternal})
	unixConsumer := vis.Resolve(vis.Config{Build: vis.BuildShared, Platform: vis.PlatformUnix, Role: vis.RoleConsumer})
	gnu := vis.Resolve(vis.Config{Build: vis.BuildShared, Compiler: vis.CompilerGNU})
	msvc := vis.Resolve(vis.Config{Build: vis.BuildShared, Compiler: vis.CompilerMSVC})

	var sb strings.Builder

	sb.WriteString("/* Code generated by visgen. DO NOT EDIT.\n")
	sb.WriteString(" * Regenerate with: visgen generate\n")
	fmt.Fprintf(&sb, " * Distribution: %s, module: %s\n", d.Name, m.Name)
	sb.WriteString(" */\n\n")

	guard := m.IncludeGuard()
	fmt.Fprintf(&sb, "#ifndef %s\n", guard)
	fmt.Fprintf(&sb, "#define %s\n\n", guard)

	sb.WriteString("/* Static library build - no special export/import needed */\n")
	fmt.Fprintf(&sb, "#ifdef %s\n", d.StaticDefine)
	writeDefine(&sb, 1, tok.Export, "")
	writeDefine(&sb, 1, tok.NoExport, "")
	sb.WriteString("#else\n")
	fmt.Fprintf(&sb, "#  ifdef %s\n", vis.DefineWindows)
	fmt.Fprintf(&sb, "#    ifdef %s\n", m.InternalBuildDefine())
	writeDefine(&sb, 3, tok.Export, winInternal.Export)
	sb.WriteString("#    else\n")
	writeDefine(&sb, 3, tok.Export, winConsumer.Export)
	sb.WriteString("#    endif\n")
	sb.WriteString("#  else\n")
	fmt.Fprintf(&sb, "#    ifdef %s\n", m.InternalBuildDefine())
	writeDefine(&sb, 3, tok.Export, unixInternal.Export)
	sb.WriteString("#    else\n")
	writeDefine(&sb, 3, tok.Export, unixConsumer.Export)
	sb.WriteString("#    endif\n")
	sb.WriteString("#  endif\n")
	writeDefine(&sb, 1, tok.NoExport, unixConsumer.NoExport)
	sb.WriteString("#endif\n\n")

	fmt.Fprintf(&sb, "#ifndef %s\n", tok.Deprecated)
	fmt.Fprintf(&sb, "#  ifdef %s\n", vis.DefineGNUC)
	writeDefine(&sb, 2, tok.Deprecated, gnu.Deprecated)
	fmt.Fprintf(&sb, "#  elif defined(%s)\n", vis.DefineMSC)
	writeDefine(&sb, 2, tok.Deprecated, msvc.Deprecated)
	sb.WriteString("#  else\n")
	writeDefine(&sb, 2, tok.Deprecated, "")
	sb.WriteString("#  endif\n")
	sb.WriteString("#endif\n\n")

	fmt.Fprintf(&sb, "#ifndef %s\n", tok.DeprecatedExport)
	writeDefine(&sb, 1, tok.DeprecatedExport, tok.Export+" "+tok.Deprecated)
	sb.WriteString("#endif\n\n")

	fmt.Fprintf(&sb, "#ifndef %s\n", tok.DeprecatedNoExport)
	writeDefine(&sb, 1, tok.DeprecatedNoExport, tok.NoExport+" "+tok.Deprecated)
	sb.WriteString("#endif\n\n")

	fmt.Fprintf(&sb, "#endif /* %s */\n", guard)

	return []byte(sb.String())
}

// writeDefine emits a #define at the given conditional depth, two spaces
// per step after the #. Tokens bound to nothing get no trailing space.
func writeDefine(sb *strings.Builder, depth int, name, value string) {
	sb.WriteString("#")
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString("define ")
	sb.WriteString(name)
	if value != "" {
		sb.WriteString(" ")
		sb.WriteString(value)
	}
	sb.WriteString("\n")
}
