package convert

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docfxmd/internal/config"
	"git.home.luguber.info/inful/docfxmd/internal/logfields"
)

// Watcher re-runs full conversion passes when the input directory changes.
// Each pass is the same strictly sequential pass Run performs; watching only
// decides when the next one starts.
type Watcher struct {
	cfg      *config.Config
	conv     *Converter
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher creates a watcher over the configured input directory.
func NewWatcher(cfg *config.Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &Watcher{
		cfg:      cfg,
		conv:     New(cfg),
		watcher:  fsw,
		debounce: cfg.DebounceDuration(),
	}, nil
}

// Run performs an initial pass, then blocks re-running the conversion after
// each quiet period following input changes, until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.watcher.Add(w.cfg.Input.Directory); err != nil {
		return fmt.Errorf("failed to watch input directory %s: %w", w.cfg.Input.Directory, err)
	}

	slog.Info("Watching input directory", logfields.Directory(w.cfg.Input.Directory))

	if _, err := w.conv.Run(ctx); err != nil {
		return err
	}

	// Timer idles until the first relevant event arms it.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Input change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error", logfields.Error(err))

		case <-timer.C:
			if _, err := w.conv.Run(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				slog.Error("Conversion pass failed", logfields.Error(err))
			}
		}
	}
}

// relevant filters events down to create/write/rename/remove of page files.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !strings.HasSuffix(filepath.Base(event.Name), w.cfg.Input.Extension) {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0
}
