// Package frontmatter reads the `---`-delimited YAML metadata block this tool
// prefixes to every generated document. The generator always emits LF
// newlines, so the reader only handles that shape.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates a document that opens a front-matter
// block but never closes it.
var ErrMissingClosingDelimiter = errors.New("front matter missing closing delimiter")

var delimiter = []byte("---\n")

// Split separates the raw front-matter bytes from the Markdown body.
//
// If the document does not start with a front-matter delimiter, had is false
// and body is the full input.
func Split(content []byte) (fm, body []byte, had bool, err error) {
	if !bytes.HasPrefix(content, delimiter) {
		return nil, content, false, nil
	}

	rest := content[len(delimiter):]
	if bytes.HasPrefix(rest, delimiter) {
		return []byte{}, rest[len(delimiter):], true, nil
	}

	closeSeq := []byte("\n---\n")
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+1], rest[idx+len(closeSeq):], true, nil
}

// Parse decodes front-matter bytes into a string-keyed map.
func Parse(fm []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(fm) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(fm, &fields); err != nil {
		return nil, fmt.Errorf("invalid front matter: %w", err)
	}
	return fields, nil
}

// StringField returns the named front-matter field rendered as a string,
// with ok=false when the key is absent.
func StringField(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return "", false
	}
	return fmt.Sprint(v), true
}
