package docfx

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNoItems indicates a file that parsed as YAML but does not carry the
// expected top-level items list.
var ErrNoItems = errors.New("page has no items list")

// knownScalarTags are the tags the YAML resolver handles on its own. Every
// other scalar tag (DocFX emits custom ones such as !!value) is coerced to a
// plain string so the payload survives as literal text.
var knownScalarTags = map[string]struct{}{
	"!!str":       {},
	"!!int":       {},
	"!!bool":      {},
	"!!float":     {},
	"!!null":      {},
	"!!timestamp": {},
	"!!binary":    {},
	"!!merge":     {},
}

// Parse decodes one DocFX YAML page. Custom type tags never fail the parse;
// their payload decodes as plain scalar text.
func Parse(data []byte) (*Page, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, ErrNoItems
	}

	normalizeTags(&root)

	var page Page
	if err := root.Decode(&page); err != nil {
		return nil, fmt.Errorf("unexpected page shape: %w", err)
	}
	if page.Items == nil {
		return nil, ErrNoItems
	}
	return &page, nil
}

// normalizeTags rewrites unknown tags in place so the decoder treats tagged
// scalars as strings and tagged collections as plain maps/sequences.
func normalizeTags(n *yaml.Node) {
	switch n.Kind {
	case yaml.ScalarNode:
		if _, ok := knownScalarTags[n.Tag]; !ok {
			n.Tag = "!!str"
		}
	case yaml.MappingNode:
		if n.Tag != "!!map" {
			n.Tag = "!!map"
		}
	case yaml.SequenceNode:
		if n.Tag != "!!seq" {
			n.Tag = "!!seq"
		}
	}
	for _, c := range n.Content {
		normalizeTags(c)
	}
}
