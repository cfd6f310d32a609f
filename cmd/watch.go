package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/dunossauro/dunoslide"
	"github.com/fsnotify/fsnotify"
	"github.com/k1LoW/errors"
)

// watcher validates a document every time it is written. The parent
// directory is watched because many editors replace the file on save.
type watcher struct {
	engine *dunoslide.Engine
	path   string
	w      *fsnotify.Watcher
	out    io.Writer
	logger *slog.Logger
}

func newWatcher(e *dunoslide.Engine, path string, out io.Writer, logger *slog.Logger) (_ *watcher, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}
	return &watcher{engine: e, path: abs, w: w, out: out, logger: logger}, nil
}

func (w *watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			w.check()
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.logger.Error("failed to watch document", slog.String("error", err.Error()))
		}
	}
}

func (w *watcher) check() {
	p, err := w.engine.Load(w.path)
	if err != nil {
		w.logger.Debug("failed to reload document", slog.String("path", w.path), slog.String("error", err.Error()))
		_, _ = fmt.Fprintf(w.out, "%s %v\n", red("✗"), err)
		return
	}
	w.logger.Debug("reloaded document", slog.String("path", w.path))
	_, _ = fmt.Fprintf(w.out, "%s reloaded: %s (%d slides)\n", green("✓"), w.path, len(p.Slides))
}

func (w *watcher) Close() error {
	return w.w.Close()
}
