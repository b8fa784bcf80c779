package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/metaphox/spawnc/ast"
)

const indentUnit = "    "

// Mapping ties one generated line to the DSL source position it came from.
type Mapping struct {
	GenLine int     // 1-based line in the generated code
	Pos     ast.Pos // position in the DSL source
}

func (m Mapping) String() string { return fmt.Sprintf("%d -> %s", m.GenLine, m.Pos) }

// writer accumulates indented output one statement per line and records a
// source mapping for every statement that has a position.
type writer struct {
	b        strings.Builder
	depth    int
	line     int
	annotate bool
	maps     []Mapping
}

func newWriter(annotate bool) *writer {
	return &writer{line: 1, annotate: annotate}
}

// emit writes s on its own line. Embedded newlines (multi-line opaque host
// text) are written untouched.
func (w *writer) emit(pos ast.Pos, s string) {
	w.b.WriteString(strings.Repeat(indentUnit, w.depth))
	w.b.WriteString(s)
	if pos.IsValid() {
		w.maps = append(w.maps, Mapping{GenLine: w.line, Pos: pos})
		if w.annotate {
			fmt.Fprintf(&w.b, " /* @%d:%d */", pos.Line, pos.Col)
		}
	}
	w.b.WriteByte('\n')
	w.line += 1 + strings.Count(s, "\n")
}

// open emits s and indents the following lines.
func (w *writer) open(pos ast.Pos, s string) {
	w.emit(pos, s)
	w.depth++
}

// close unindents and emits s.
func (w *writer) close(s string) {
	w.dedent()
	w.emit(ast.Pos{}, s)
}

func (w *writer) dedent() {
	if w.depth > 0 {
		w.depth--
	}
}

func (w *writer) String() string { return w.b.String() }

// formatFloat prints v in its shortest exact decimal form, always with a '.'
// so the host reads it as a float literal.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
