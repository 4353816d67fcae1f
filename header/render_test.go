package header_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/lumenworks/visgen/dist"
	"github.com/lumenworks/visgen/header"
)

func TestRender_MatchesGoldenHeaders(t *testing.T) {
	ar, err := txtar.ParseFile("testdata/lumen.txtar")
	require.NoError(t, err)

	golden := make(map[string][]byte, len(ar.Files))
	for _, f := range ar.Files {
		golden[f.Name] = f.Data
	}

	d := dist.Default()
	require.Len(t, ar.Files, len(d.Modules), "archive should cover exactly the distribution's headers")

	for i := range d.Modules {
		m := &d.Modules[i]
		rel := d.HeaderPath(m)
		want, ok := golden[rel]
		require.True(t, ok, "missing golden file %s", rel)
		assert.Equal(t, string(want), string(header.Render(d, m)), "header for module %s", m.Name)
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	d := dist.Default()
	m, err := d.Module("core")
	require.NoError(t, err)

	first := header.Render(d, m)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, header.Render(d, m))
	}
}

func TestRender_ModulesDifferOnlyInNamespace(t *testing.T) {
	d := dist.Default()
	core, err := d.Module("core")
	require.NoError(t, err)
	cms, err := d.Module("cms")
	require.NoError(t, err)

	coreHeader := string(header.Render(d, core))
	cmsHeader := string(header.Render(d, cms))

	assert.NotContains(t, cmsHeader, "CORE_", "cms header must not leak another namespace")
	assert.Equal(t,
		strings.ReplaceAll(coreHeader, "CORE", "CMS"),
		strings.ReplaceAll(cmsHeader, "module: cms", "module: core"),
		"headers should be textual namespace substitutions of each other")
}

func TestRender_UsesManifestStaticDefine(t *testing.T) {
	d := &dist.Distribution{
		Name:         "acme",
		StaticDefine: "ACME_BUILD_STATIC",
		Modules:      []dist.Module{{Name: "img"}},
	}
	d.ApplyDefaults()
	require.NoError(t, d.Validate())

	h := string(header.Render(d, &d.Modules[0]))
	assert.Contains(t, h, "#ifdef ACME_BUILD_STATIC\n")
	assert.Contains(t, h, "#ifndef IMG_EXPORT_H\n")
	assert.Contains(t, h, "#ifdef IMG_INTERNAL_LIBRARY_BUILD\n")
}

func TestRender_GuardsEveryOverridableToken(t *testing.T) {
	d := dist.Default()
	m, err := d.Module("threads")
	require.NoError(t, err)
	h := string(header.Render(d, m))

	tok := m.Tokens()
	for _, name := range []string{tok.Deprecated, tok.DeprecatedExport, tok.DeprecatedNoExport} {
		assert.Contains(t, h, "#ifndef "+name+"\n", "token %s must be consumer-overridable", name)
	}

	// the export pair is bound unconditionally inside the static/shared tree
	assert.NotContains(t, h, "#ifndef "+tok.Export+"\n")
	assert.NotContains(t, h, "#ifndef "+tok.NoExport+"\n")
}

func TestRender_CompositesReferenceTokensNotValues(t *testing.T) {
	d := dist.Default()
	m, err := d.Module("core")
	require.NoError(t, err)
	h := string(header.Render(d, m))

	assert.Contains(t, h, "#  define CORE_DEPRECATED_EXPORT CORE_EXPORT CORE_DEPRECATED\n")
	assert.Contains(t, h, "#  define CORE_DEPRECATED_NO_EXPORT CORE_NO_EXPORT CORE_DEPRECATED\n")
}
