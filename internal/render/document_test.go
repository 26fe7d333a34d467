package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docfxmd/internal/docfx"
	"git.home.luguber.info/inful/docfxmd/internal/identifier"
)

func TestDocument_MinimalRecord_HeadingAndTypeLineOnly(t *testing.T) {
	item := docfx.Item{UID: "System.Object", Name: "Object", Type: "Class"}

	out := string(DefaultOptions().Document(item))

	require.Equal(t, "---\nid: System.Object\ntitle: \"Object\"\n---\n\n# Object\n\n**Type**: Class\n\n", out)
	require.NotContains(t, out, "## Inheritance")
	require.NotContains(t, out, "## Summary")
	require.NotContains(t, out, "## Syntax")
	require.NotContains(t, out, "## Parameters")
	require.NotContains(t, out, "## Returns")
}

func TestDocument_Parameters_RenderedAsListEntries(t *testing.T) {
	item := docfx.Item{
		UID:  "Demo.Count",
		Name: "Count",
		Type: "Method",
		Syntax: docfx.Syntax{
			Parameters: []docfx.Parameter{{ID: "x", Type: "int", Description: "count"}},
		},
	}

	out := string(DefaultOptions().Document(item))
	require.Contains(t, out, "## Parameters\n\n- **x** (int): count\n")
}

func TestDocument_TitleWithQuotes_EscapedAndQuoted(t *testing.T) {
	item := docfx.Item{UID: `Demo."Quoted"`, Name: `Say "Hello"`, Type: "Method"}

	out := string(DefaultOptions().Document(item))
	require.Contains(t, out, `title: "Say \"Hello\""`)
}

func TestDocument_MissingName_FallsBackToUID(t *testing.T) {
	item := docfx.Item{UID: "System.ValueType", Type: "Class"}

	out := string(DefaultOptions().Document(item))
	require.Contains(t, out, "# System.ValueType\n")
	require.Contains(t, out, `title: "System.ValueType"`)
}

func TestDocument_MissingUIDAndName_UsesPlaceholder(t *testing.T) {
	item := docfx.Item{Type: "Class"}

	out := string(DefaultOptions().Document(item))
	require.Contains(t, out, "id: "+identifier.Placeholder+"\n")
	require.Contains(t, out, "# "+identifier.Placeholder+"\n")
}

func TestDocument_Inheritance_ArrowJoinedInInputOrder(t *testing.T) {
	item := docfx.Item{
		UID:         "Demo.Leaf",
		Name:        "Leaf",
		Type:        "Class",
		Inheritance: []string{"System.Object", "Demo.Base", "Demo.Leaf"},
	}

	out := string(DefaultOptions().Document(item))
	require.Contains(t, out, "## Inheritance\nSystem.Object → Demo.Base → Demo.Leaf\n")
}

func TestDocument_Syntax_FencedWithConfiguredLanguage(t *testing.T) {
	opts := DefaultOptions()
	opts.FenceLanguage = "fsharp"
	item := docfx.Item{
		UID:    "Demo.M",
		Name:   "M",
		Type:   "Method",
		Syntax: docfx.Syntax{Content: "let m () = ()"},
	}

	out := string(opts.Document(item))
	require.Contains(t, out, "## Syntax\n```fsharp\nlet m () = ()\n```\n")
}

func TestDocument_Returns_RenderedAsOwnSection(t *testing.T) {
	item := docfx.Item{UID: "Demo.M", Name: "M", Type: "Method", Returns: "the count"}

	out := string(DefaultOptions().Document(item))
	require.True(t, strings.HasSuffix(out, "## Returns\n\nthe count\n"))
}

func TestDocument_Deterministic_SameBytesOnRerender(t *testing.T) {
	item := docfx.Item{
		UID:     "Demo.M(System.Int32)",
		Name:    "M(Int32)",
		Type:    "Method",
		Summary: "Does a thing.",
	}

	opts := DefaultOptions()
	require.Equal(t, opts.Document(item), opts.Document(item))
}

func TestFilename_SanitizedWithExtension(t *testing.T) {
	item := docfx.Item{UID: "Demo.List<T>.Add(T)"}
	require.Equal(t, "Demo.ListT.AddT.md", DefaultOptions().Filename(item, ".md"))
}

func TestFilename_LongUID_TruncatedWithFingerprint(t *testing.T) {
	uid := strings.Repeat("N", 150)
	name := DefaultOptions().Filename(docfx.Item{UID: uid}, ".md")
	require.Len(t, name, 80+1+8+3)
	require.True(t, strings.HasSuffix(name, ".md"))
}
