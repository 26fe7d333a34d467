package integration

import (
	"context"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docfxmd/internal/config"
	"git.home.luguber.info/inful/docfxmd/internal/convert"
)

var updateGolden = flag.Bool("update-golden", false, "Update golden files")

// copyFS mirrors os.CopyFS (Go 1.23+), which is unavailable on the Go 1.21
// toolchain this module builds with.
func copyFS(dir string, fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o777)
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o666)
	})
}

func runFixtureConversion(t *testing.T) (outputDir string) {
	t.Helper()

	cfg := config.Default()
	cfg.Input.Directory = filepath.Join("testdata", "pages")
	cfg.Output.Directory = t.TempDir()

	res, err := convert.New(cfg).Run(context.Background())
	require.NoError(t, err)
	require.Zero(t, res.FilesSkipped)
	require.Zero(t, res.RecordsSkipped)

	return cfg.Output.Directory
}

// TestGolden_APIPage converts the fixture DocFX page and compares every
// generated document byte-for-byte against the golden directory.
func TestGolden_APIPage(t *testing.T) {
	outputDir := runFixtureConversion(t)
	goldenDir := filepath.Join("testdata", "golden")

	if *updateGolden {
		require.NoError(t, os.RemoveAll(goldenDir))
		require.NoError(t, copyFS(goldenDir, os.DirFS(outputDir)))
		return
	}

	goldenEntries, err := os.ReadDir(goldenDir)
	require.NoError(t, err)

	outEntries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	require.Len(t, outEntries, len(goldenEntries))

	for _, g := range goldenEntries {
		want, err := os.ReadFile(filepath.Join(goldenDir, g.Name()))
		require.NoError(t, err)

		got, err := os.ReadFile(filepath.Join(outputDir, g.Name()))
		require.NoError(t, err, "expected generated document %s", g.Name())
		require.Equal(t, string(want), string(got), "document %s drifted from golden", g.Name())
	}
}

// TestGolden_Rerun_ByteIdentical converts the fixture twice into separate
// directories and requires identical output, file for file.
func TestGolden_Rerun_ByteIdentical(t *testing.T) {
	first := runFixtureConversion(t)
	second := runFixtureConversion(t)

	entries, err := os.ReadDir(first)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		a, err := os.ReadFile(filepath.Join(first, e.Name()))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(second, e.Name()))
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}
