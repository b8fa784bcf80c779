package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/metaphox/spawnc/expand"
)

// ── expand ────────────────────────────────────────────────────────────────────

func cmdExpand(args []string, e *env) int {
	fs, c := newFlagSet("expand", e)
	out := fs.String("o", "", "write the expansion to `FILE` instead of stdout")
	annotate := fs.Bool("annotate", false, "append /* @line:col */ source positions to generated statements")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintf(e.stderr, "usage: %s expand [-o FILE] [-annotate] FILE...\n", appName)
		return 2
	}
	if *out != "" && len(files) > 1 {
		fmt.Fprintf(e.stderr, "%s: -o needs exactly one input file\n", appName)
		return 2
	}

	var opts []expand.Option
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "annotate" {
			opts = append(opts, expand.WithAnnotate(*annotate))
		}
	})
	s, err := e.session(c, opts...)
	if err != nil {
		fmt.Fprintf(e.stderr, "%s: %v\n", appName, err)
		return 1
	}

	status := 0
	for _, path := range files {
		dest := *out
		if dest == "" && len(files) > 1 {
			dest = s.cfg.OutputPath(path)
		}
		if !s.expandFile(path, dest) {
			status = 1
		}
	}
	return status
}

// expandFile expands path and writes the result to dest, or to stdout when
// dest is empty. Nothing is written when an invocation fails.
func (s *session) expandFile(path, dest string) bool {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(s.stderr, "%s: %v\n", appName, err)
		return false
	}
	res, err := s.x.File(path, string(src))
	if res != nil {
		s.warn(path, string(src), res.Warnings)
	}
	if err != nil {
		s.report(path, string(src), err)
		return false
	}
	if dest == "" {
		fmt.Fprint(s.stdout, res.Code)
		return true
	}
	if err := os.WriteFile(dest, []byte(res.Code), 0o644); err != nil {
		fmt.Fprintf(s.stderr, "%s: %v\n", appName, err)
		return false
	}
	s.logger.Info("wrote", slog.String("file", dest), slog.Int("mapped_lines", len(res.Map)))
	return true
}

// ── check ─────────────────────────────────────────────────────────────────────

func cmdCheck(args []string, e *env) int {
	fs, c := newFlagSet("check", e)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintf(e.stderr, "usage: %s check FILE...\n", appName)
		return 2
	}
	s, err := e.session(c)
	if err != nil {
		fmt.Fprintf(e.stderr, "%s: %v\n", appName, err)
		return 1
	}

	status := 0
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(e.stderr, "%s: %v\n", appName, err)
			status = 1
			continue
		}
		res, err := s.x.File(path, string(src))
		if res != nil {
			s.warn(path, string(src), res.Warnings)
		}
		if err != nil {
			s.report(path, string(src), err)
			status = 1
		}
	}
	return status
}
