// Package docfx models the DocFX managed-reference YAML pages this tool
// consumes: one page per file, each carrying a list of documented symbols
// under a top-level "items" key.
package docfx

// Page is one DocFX YAML file.
type Page struct {
	Items []Item `yaml:"items"`
}

// Item is one documented code symbol.
type Item struct {
	UID         string   `yaml:"uid"`
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Summary     string   `yaml:"summary"`
	Syntax      Syntax   `yaml:"syntax"`
	Returns     string   `yaml:"returns"`
	Inheritance []string `yaml:"inheritance"`
}

// Syntax carries the declaration snippet and parameter descriptors.
type Syntax struct {
	Content    string      `yaml:"content"`
	Parameters []Parameter `yaml:"parameters"`
}

// Parameter describes one parameter of a documented member.
type Parameter struct {
	ID          string `yaml:"id"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}
