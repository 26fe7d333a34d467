// Package convert drives one conversion pass: every DocFX YAML page in the
// input directory becomes one Markdown document per documented symbol in the
// output directory. Processing is strictly sequential and best-effort: a file
// that fails to parse or a record that fails to write is logged and skipped,
// never fatal to the pass.
package convert

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docfxmd/internal/config"
	"git.home.luguber.info/inful/docfxmd/internal/docfx"
	cerrors "git.home.luguber.info/inful/docfxmd/internal/errors"
	"git.home.luguber.info/inful/docfxmd/internal/frontmatter"
	"git.home.luguber.info/inful/docfxmd/internal/logfields"
	"git.home.luguber.info/inful/docfxmd/internal/markdown"
	"git.home.luguber.info/inful/docfxmd/internal/render"
)

// Converter runs conversion passes for one configuration.
type Converter struct {
	cfg  *config.Config
	opts render.Options
	log  *slog.Logger
}

// Result summarizes one conversion pass.
type Result struct {
	FilesSeen      int
	FilesConverted int
	FilesSkipped   int
	RecordsWritten int
	RecordsSkipped int
}

// New creates a converter. Each pass it runs gets its own run ID for log
// correlation.
func New(cfg *config.Config) *Converter {
	return &Converter{
		cfg: cfg,
		opts: render.Options{
			FenceLanguage: cfg.Output.FenceLanguage,
			Policy:        cfg.Policy(),
		},
		log: slog.Default(),
	}
}

// Run executes one full conversion pass.
//
// Only environment-level failures (unreadable input directory, unusable
// output directory) return an error; per-file and per-record failures are
// logged and counted in the Result.
func (c *Converter) Run(ctx context.Context) (*Result, error) {
	log := c.log.With(logfields.RunID(uuid.NewString()))

	if err := os.MkdirAll(c.cfg.Output.Directory, 0o755); err != nil {
		return nil, cerrors.OutputDirError(c.cfg.Output.Directory, err)
	}

	entries, err := os.ReadDir(c.cfg.Input.Directory)
	if err != nil {
		return nil, cerrors.InputDirError(c.cfg.Input.Directory, err)
	}

	log.Info("Starting conversion",
		logfields.Directory(c.cfg.Input.Directory),
		slog.String("output", c.cfg.Output.Directory))

	res := &Result{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), c.cfg.Input.Extension) {
			continue
		}
		res.FilesSeen++
		c.convertFile(log, entry.Name(), res)
	}

	log.Info("Conversion completed",
		slog.Int("files_seen", res.FilesSeen),
		slog.Int("files_skipped", res.FilesSkipped),
		slog.Int("records_written", res.RecordsWritten),
		slog.Int("records_skipped", res.RecordsSkipped))
	return res, nil
}

// convertFile parses one page and writes a document per item.
func (c *Converter) convertFile(log *slog.Logger, name string, res *Result) {
	path := filepath.Join(c.cfg.Input.Directory, name)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("Skipping unreadable page", logfields.File(name), logfields.Error(err))
		res.FilesSkipped++
		return
	}

	page, err := docfx.Parse(data)
	if err != nil {
		log.Warn("Skipping page", logfields.File(name), logfields.Error(cerrors.ParseFailed(name, err)))
		res.FilesSkipped++
		return
	}

	res.FilesConverted++
	for _, item := range page.Items {
		c.writeRecord(log, item, res)
	}
}

// writeRecord renders one item and writes its document.
func (c *Converter) writeRecord(log *slog.Logger, item docfx.Item, res *Result) {
	doc := c.opts.Document(item)
	outName := c.opts.Filename(item, c.cfg.Output.Extension)
	outPath := filepath.Join(c.cfg.Output.Directory, outName)

	if c.cfg.Output.Verify {
		if err := c.verifyDocument(doc); err != nil {
			log.Warn("Skipping malformed document", logfields.UID(item.UID), logfields.Error(err))
			res.RecordsSkipped++
			return
		}
	}

	log.Info("Writing document",
		logfields.UID(item.UID),
		logfields.DocID(c.opts.Policy.SanitizeID(item.UID)),
		logfields.Path(outPath))

	if err := os.WriteFile(outPath, doc, 0o644); err != nil {
		log.Warn("Skipping record", logfields.UID(item.UID), logfields.Error(cerrors.WriteFailed(outPath, err)))
		res.RecordsSkipped++
		return
	}
	res.RecordsWritten++
}

// verifyDocument checks that a rendered document still has the expected
// shape: front matter present plus a body Goldmark accepts with a heading.
func (c *Converter) verifyDocument(doc []byte) error {
	_, body, had, err := frontmatter.Split(doc)
	if err != nil {
		return err
	}
	if !had {
		return frontmatter.ErrMissingClosingDelimiter
	}
	return markdown.VerifyBody(body)
}
