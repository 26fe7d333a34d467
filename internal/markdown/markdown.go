// Package markdown provides structural checks over generated Markdown bodies.
// It parses with Goldmark and asserts shape only; it never judges content.
package markdown

import (
	"errors"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ErrNoHeading indicates a body without a single heading, which means the
// generator produced a document missing even its title line.
var ErrNoHeading = errors.New("markdown body has no heading")

// ParseBody parses a Markdown body (front matter already removed) into a
// Goldmark AST.
func ParseBody(body []byte) gmast.Node {
	md := goldmark.New()
	return md.Parser().Parse(text.NewReader(body))
}

// VerifyBody checks structural well-formedness of a generated body: it must
// parse and contain at least one heading.
func VerifyBody(body []byte) error {
	root := ParseBody(body)

	found := false
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if entering {
			if _, ok := n.(*gmast.Heading); ok {
				found = true
				return gmast.WalkStop, nil
			}
		}
		return gmast.WalkContinue, nil
	})

	if !found {
		return ErrNoHeading
	}
	return nil
}
