// Command spawnc expands spawn!, v!, c!, e! and t! invocations in host
// source files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/metaphox/spawnc/config"
	"github.com/metaphox/spawnc/diag"
	"github.com/metaphox/spawnc/expand"
)

const appName = "spawnc"

func main() {
	e := &env{
		stdout: os.Stdout,
		stderr: os.Stderr,
		color:  term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "",
	}
	os.Exit(run(os.Args[1:], e))
}

func run(args []string, e *env) int {
	if len(args) < 1 {
		usage(e.stderr)
		return 2
	}
	switch cmd, rest := args[0], args[1:]; cmd {
	case "expand":
		return cmdExpand(rest, e)
	case "check":
		return cmdCheck(rest, e)
	case "ast":
		return cmdAST(rest, e)
	case "repl":
		return cmdRepl(rest, e)
	case "watch":
		return cmdWatch(rest, e)
	case "-h", "--help", "help":
		usage(e.stdout)
		return 0
	default:
		fmt.Fprintf(e.stderr, "%s: unknown command %q\n", appName, cmd)
		usage(e.stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `Usage:
  %s expand [-o FILE] [-annotate] FILE...   Expand macro invocations.
  %s check FILE...                          Report errors and warnings without writing.
  %s ast FILE...                            Dump the parsed invocations as YAML.
  %s repl                                   Expand snippets interactively.
  %s watch [DIR]                            Re-expand input files when they change.

Every command accepts -config FILE and -v.
`, appName, appName, appName, appName, appName)
}

// env is the process environment a command runs in.
type env struct {
	stdout, stderr io.Writer
	color          bool
}

// common holds the flags every command accepts.
type common struct {
	config  string
	verbose bool
}

func newFlagSet(name string, e *env) (*flag.FlagSet, *common) {
	fs := flag.NewFlagSet(appName+" "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	c := &common{}
	fs.StringVar(&c.config, "config", "", "configuration file (default: "+config.FileName+" in the current directory or a parent)")
	fs.BoolVar(&c.verbose, "v", false, "log debug output")
	return fs, c
}

// session is the loaded configuration of one command run.
type session struct {
	*env
	cfg    *config.Config
	x      *expand.Expander
	logger *slog.Logger
}

func (e *env) session(c *common, opts ...expand.Option) (*session, error) {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(e.stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Discover(c.config, ".")
	if err != nil {
		return nil, err
	}
	opts = append([]expand.Option{expand.WithConfig(cfg), expand.WithLogger(logger)}, opts...)
	return &session{env: e, cfg: cfg, x: expand.New(opts...), logger: logger}, nil
}

// report prints the diagnostics in err. Errors that carry no position are
// printed as they are.
func (e *env) report(name, src string, err error) {
	var errs expand.Errors
	if errors.As(err, &errs) {
		for _, d := range errs {
			fmt.Fprint(e.stderr, diag.Render(d, name, src, e.color))
		}
		return
	}
	if d, ok := diag.As(err); ok {
		fmt.Fprint(e.stderr, diag.Render(d, name, src, e.color))
		return
	}
	fmt.Fprintf(e.stderr, "%s: %v\n", appName, err)
}

func (e *env) warn(name, src string, ws []*diag.Error) {
	expand.SortWarnings(ws)
	for _, w := range ws {
		fmt.Fprint(e.stderr, diag.Render(w, name, src, e.color))
	}
}
