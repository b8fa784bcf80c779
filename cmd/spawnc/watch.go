package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
)

// ── watch ─────────────────────────────────────────────────────────────────────

func cmdWatch(args []string, e *env) int {
	flags, c := newFlagSet("watch", e)
	if err := flags.Parse(args); err != nil {
		return 2
	}
	dir := "."
	switch flags.NArg() {
	case 0:
	case 1:
		dir = flags.Arg(0)
	default:
		fmt.Fprintf(e.stderr, "usage: %s watch [DIR]\n", appName)
		return 2
	}
	s, err := e.session(c)
	if err != nil {
		fmt.Fprintf(e.stderr, "%s: %v\n", appName, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := s.watch(ctx, dir); err != nil {
		fmt.Fprintf(e.stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

// watch expands every input file under dir once, then again whenever it is
// written, until ctx is done.
func (s *session) watch(ctx context.Context, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	inputs, err := s.walk(dir, w)
	if err != nil {
		return err
	}
	for _, path := range inputs {
		s.expandFile(path, s.cfg.OutputPath(path))
	}
	s.logger.Info("watching", slog.String("dir", dir), slog.Int("files", len(inputs)))

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			s.handle(w, ev)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watch error", slog.Any("err", err))
		}
	}
}

func (s *session) handle(w *fsnotify.Watcher, ev fsnotify.Event) {
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			if _, err := s.walk(ev.Name, w); err != nil {
				s.logger.Warn("watch", slog.String("dir", ev.Name), slog.Any("err", err))
			}
			return
		}
	}
	if !s.isInput(ev.Name) || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}
	s.logger.Debug("changed", slog.String("file", ev.Name), slog.String("op", ev.Op.String()))
	s.expandFile(ev.Name, s.cfg.OutputPath(ev.Name))
}

// walk adds dir and its subdirectories to w and returns the input files
// found. Hidden directories are skipped.
func (s *session) walk(dir string, w *fsnotify.Watcher) ([]string, error) {
	var inputs []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return w.Add(path)
		}
		if s.isInput(path) {
			inputs = append(inputs, path)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("watch: %w", err)
	}
	return inputs, err
}

func (s *session) isInput(path string) bool {
	return strings.HasSuffix(path, s.cfg.Output.Suffix)
}
