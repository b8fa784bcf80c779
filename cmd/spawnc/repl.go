package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"unicode"

	"github.com/peterh/liner"

	"github.com/metaphox/spawnc/expand"
	"github.com/metaphox/spawnc/lexer"
	"github.com/metaphox/spawnc/value"
)

const (
	historyFile = ".spawnc_history"
	promptMain  = "spawn> "
	promptCont  = "  ...> "
	replName    = "<repl>"
)

const replHelp = `Enter host code containing macro invocations, e.g. v!(10px) or
spawn!{commands; (Button)}. Input without an invocation is expanded as the
body of a spawn!. Input continues while a delimiter is open.

  :help   show this text
  :quit   leave
`

// ── repl ──────────────────────────────────────────────────────────────────────

func cmdRepl(args []string, e *env) int {
	fs, c := newFlagSet("repl", e)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	s, err := e.session(c)
	if err != nil {
		fmt.Fprintf(e.stderr, "%s: %v\n", appName, err)
		return 1
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetWordCompleter(completeWord)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	fmt.Fprintf(e.stdout, "%s repl. Type :help for help.\n", appName)
	for {
		src, ok := readUntilClosed(ln)
		if !ok {
			fmt.Fprintln(e.stdout)
			return 0
		}
		switch strings.TrimSpace(src) {
		case "":
			continue
		case ":quit", ":q":
			return 0
		case ":help":
			fmt.Fprint(e.stdout, replHelp)
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		s.eval(src)
	}
}

// eval expands src and prints the result.
func (s *session) eval(src string) {
	invs, err := s.x.FindSource(src)
	if err != nil {
		s.report(replName, src, err)
		return
	}
	var res *expand.Result
	if len(invs) == 0 {
		res, err = s.x.Spawn(src)
	} else {
		res, err = s.x.File(replName, src)
	}
	if res != nil {
		s.warn(replName, src, res.Warnings)
	}
	if err != nil {
		s.report(replName, src, err)
		return
	}
	fmt.Fprintln(s.stdout, strings.TrimSuffix(res.Code, "\n"))
}

// readUntilClosed reads lines until every delimiter is closed. It returns
// false at end of input.
func readUntilClosed(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, _, err := lexer.Scan(src); expand.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

// completeWord completes colour names and colour functions. pos counts
// runes.
func completeWord(line string, pos int) (head string, completions []string, tail string) {
	rs := []rune(line)
	if pos > len(rs) {
		pos = len(rs)
	}
	start := pos
	for start > 0 && (rs[start-1] == '_' || unicode.IsLetter(rs[start-1]) || unicode.IsDigit(rs[start-1])) {
		start--
	}
	word := strings.ToLower(string(rs[start:pos]))
	if word == "" {
		return string(rs[:pos]), nil, string(rs[pos:])
	}
	for _, k := range value.Keywords() {
		if strings.HasPrefix(k, word) {
			completions = append(completions, k)
		}
	}
	return string(rs[:start]), completions, string(rs[pos:])
}
