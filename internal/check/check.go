// Package check validates previously generated documents: front matter shape,
// identifier safety, and Markdown well-formedness. It reports issues instead
// of failing fast, mirroring the converter's best-effort policy.
package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docfxmd/internal/frontmatter"
	"git.home.luguber.info/inful/docfxmd/internal/identifier"
	"git.home.luguber.info/inful/docfxmd/internal/markdown"
)

// Issue is one defect found in one generated document.
type Issue struct {
	File   string
	Reason string
}

func (i Issue) String() string {
	return i.File + ": " + i.Reason
}

// Directory inspects every document with the given extension in dir
// (non-recursive) and returns the issues found. An unreadable directory is
// the only hard error.
func Directory(dir, ext string) ([]Issue, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read document directory %s: %w", dir, err)
	}

	var issues []Issue
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		issues = append(issues, file(dir, entry.Name())...)
	}
	return issues, nil
}

func file(dir, name string) []Issue {
	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return []Issue{{File: name, Reason: "unreadable: " + err.Error()}}
	}

	fm, body, had, err := frontmatter.Split(content)
	if err != nil {
		return []Issue{{File: name, Reason: err.Error()}}
	}
	if !had {
		return []Issue{{File: name, Reason: "no front matter block"}}
	}

	var issues []Issue

	fields, err := frontmatter.Parse(fm)
	if err != nil {
		issues = append(issues, Issue{File: name, Reason: err.Error()})
	} else {
		if id, ok := frontmatter.StringField(fields, "id"); !ok {
			issues = append(issues, Issue{File: name, Reason: "front matter missing id"})
		} else if identifier.ContainsForbidden(id) {
			issues = append(issues, Issue{File: name, Reason: "id contains forbidden characters: " + id})
		}
		if _, ok := frontmatter.StringField(fields, "title"); !ok {
			issues = append(issues, Issue{File: name, Reason: "front matter missing title"})
		}
	}

	if err := markdown.VerifyBody(body); err != nil {
		issues = append(issues, Issue{File: name, Reason: err.Error()})
	}

	return issues
}
