package diag

import (
	"fmt"
	"strings"
)

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiBold   = "\x1b[1m"
	ansiReset  = "\x1b[0m"
)

// Render formats d as a caret snippet against the source it was reported on:
//
//	error[grammar] in menu.spawn.rs at 3:12: parented is not allowed as a child
//
//	   2 |   (Node).[
//	   3 |     root > (Text::new("x"));
//	     |     ^
//	   4 |   ];
//
// At most one line of context is shown before and after. Line and column are
// clamped to the source so a stale position never breaks rendering. ANSI
// colour is only used when color is true.
func Render(d *Error, name, src string, color bool) string {
	label := "error"
	tint := ansiRed
	if d.Severity == SeverityWarning {
		label = "warning"
		tint = ansiYellow
	}

	var b strings.Builder
	header := fmt.Sprintf("%s[%s]", label, d.Kind)
	if color {
		header = ansiBold + tint + header + ansiReset
	}
	b.WriteString(header)
	if name != "" {
		fmt.Fprintf(&b, " in %s", name)
	}
	if !d.Pos.IsValid() {
		fmt.Fprintf(&b, ": %s\n", d.Msg)
		writeHints(&b, d.Hints)
		return b.String()
	}

	lines := strings.Split(src, "\n")
	line, col := d.Pos.Line, d.Pos.Col
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}
	fmt.Fprintf(&b, " at %d:%d: %s\n\n", line, col, d.Msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	caret := "^"
	if color {
		caret = tint + caret + ansiReset
	}
	fmt.Fprintf(&b, "     | %s%s\n", strings.Repeat(" ", col-1), caret)
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	writeHints(&b, d.Hints)
	return b.String()
}

func writeHints(b *strings.Builder, hints []string) {
	if len(hints) == 0 {
		return
	}
	fmt.Fprintf(b, "help: did you mean %s?\n", strings.Join(quoteAll(hints), ", "))
}

func quoteAll(xs []string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = "'" + x + "'"
	}
	return out
}
