package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/persist/query"
	"github.com/syssam/persist/schema"
	"github.com/syssam/persist/schema/load"
)

// debounce is the quiet period after a file event before re-rendering.
const debounce = 200 * time.Millisecond

type renderer struct {
	gen  query.Generator
	drop bool
	out  io.Writer
	log  *slog.Logger
}

// render returns the statements of the entities, in declaration order.
// Entities are rendered concurrently.
func (r *renderer) render(ctx context.Context, entities []*schema.EntityData) ([]string, error) {
	stmts := make([][]string, len(entities))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, e := range entities {
		g.Go(func() error {
			var out []string
			if r.drop {
				s, err := r.gen.Drop(e)
				if err != nil {
					return fmt.Errorf("%s: %w", e.Label(), err)
				}
				out = append(out, s)
			}
			s, err := r.gen.Create(e)
			if err != nil {
				return fmt.Errorf("%s: %w", e.Label(), err)
			}
			stmts[i] = append(out, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var flat []string
	for _, s := range stmts {
		flat = append(flat, s...)
	}
	return flat, nil
}

// renderFiles loads every file and writes the statements to r.out, one per
// line, terminated by a semicolon.
func (r *renderer) renderFiles(ctx context.Context, paths []string) error {
	var entities []*schema.EntityData
	for _, p := range paths {
		es, err := load.YAMLFile(p)
		if err != nil {
			return err
		}
		r.log.Debug("loaded entities", slog.String("file", p), slog.Int("count", len(es)))
		entities = append(entities, es...)
	}
	stmts, err := r.render(ctx, entities)
	if err != nil {
		return err
	}
	for _, s := range stmts {
		if _, err := fmt.Fprintf(r.out, "%s;\n", s); err != nil {
			return err
		}
	}
	return nil
}

// watch renders the files, then again after each change until ctx is done.
// Render failures while watching are logged, not returned.
func (r *renderer) watch(ctx context.Context, paths []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	files := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		files[abs] = true
		// Editors replace files on save, so the directory is watched.
		if dir := filepath.Dir(abs); !dirs[dir] {
			if err := w.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			dirs[dir] = true
		}
	}
	if err := r.renderFiles(ctx, paths); err != nil {
		r.log.Error("render failed", slog.Any("error", err))
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !files[abs] || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			r.log.Debug("file changed", slog.String("file", ev.Name), slog.String("op", ev.Op.String()))
			timer.Reset(debounce)
		case <-timer.C:
			if err := r.renderFiles(ctx, paths); err != nil {
				r.log.Error("render failed", slog.Any("error", err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.log.Warn("watch error", slog.Any("error", err))
		}
	}
}
