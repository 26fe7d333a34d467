// Package render projects one DocFX item into a Docusaurus-compatible
// Markdown document: YAML front matter with id/title, a heading, a type line,
// and optional sections. Sections with no underlying data are omitted
// entirely; an empty heading is never emitted.
package render

import (
	"strings"

	"git.home.luguber.info/inful/docfxmd/internal/docfx"
	"git.home.luguber.info/inful/docfxmd/internal/identifier"
)

// Options controls per-document rendering details.
type Options struct {
	// FenceLanguage tags the syntax code fence (DocFX input here is C#).
	FenceLanguage string
	// Policy bounds the derived document id and filename.
	Policy identifier.Policy
}

// DefaultOptions returns the stock rendering options.
func DefaultOptions() Options {
	return Options{
		FenceLanguage: "csharp",
		Policy:        identifier.DefaultPolicy(),
	}
}

// Filename returns the output file name (sanitized uid plus extension).
func (o Options) Filename(item docfx.Item, ext string) string {
	return o.Policy.SanitizeFilename(item.UID) + ext
}

// Document renders one item. The output is a deterministic function of the
// item and options; re-rendering the same record yields identical bytes.
func (o Options) Document(item docfx.Item) []byte {
	uid := identifier.Fallback(item.UID)
	name := item.Name
	if strings.TrimSpace(name) == "" {
		name = uid
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("id: " + o.Policy.SanitizeID(item.UID) + "\n")
	b.WriteString("title: " + quoteYAMLString(name) + "\n")
	b.WriteString("---\n\n")

	b.WriteString("# " + name + "\n\n")
	b.WriteString("**Type**: " + item.Type + "\n\n")

	if len(item.Inheritance) > 0 {
		b.WriteString("## Inheritance\n")
		b.WriteString(strings.Join(item.Inheritance, " → "))
		b.WriteString("\n\n")
	}

	if item.Summary != "" {
		b.WriteString("## Summary\n" + item.Summary + "\n\n")
	}

	if item.Syntax.Content != "" {
		b.WriteString("## Syntax\n```" + o.FenceLanguage + "\n" + item.Syntax.Content + "\n```\n\n")
	}

	if len(item.Syntax.Parameters) > 0 {
		b.WriteString("## Parameters\n\n")
		for _, p := range item.Syntax.Parameters {
			b.WriteString("- **" + p.ID + "** (" + p.Type + "): " + p.Description + "\n")
		}
		b.WriteString("\n")
	}

	if item.Returns != "" {
		b.WriteString("## Returns\n\n" + item.Returns + "\n")
	}

	return []byte(b.String())
}

// quoteYAMLString double-quotes a front-matter value, escaping embedded
// double quotes so the title always survives as one YAML scalar.
func quoteYAMLString(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
}
