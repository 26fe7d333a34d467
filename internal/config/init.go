package config

import (
	"fmt"
	"os"
)

const exampleConfig = `# docfxmd configuration
input:
  directory: docfx/api    # DocFX YAML pages, scanned non-recursively
  extension: .yml

output:
  directory: docs/api     # one Markdown document per documented symbol
  extension: .md
  fence_language: csharp  # language tag on the Syntax code fence
  verify: false           # parse generated bodies before writing

sanitize:
  max_length: 100         # identifiers longer than this are truncated
  truncate_at: 80         # ...to this many characters plus an 8-hex fingerprint

watch:
  debounce: 2s            # quiet period before a watch-mode re-run
`

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
