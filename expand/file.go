package expand

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/metaphox/spawnc/ast"
	"github.com/metaphox/spawnc/diag"
	"github.com/metaphox/spawnc/lexer"
)

// Invocation is one `NAME ! GROUP` macro call found in a host file.
type Invocation struct {
	Kind Kind
	Name ast.Token // macro name
	Args ast.Tree  // delimited argument group
}

func (inv Invocation) Pos() ast.Pos { return inv.Name.Pos() }

// Start and End are the byte offsets of the whole call.
func (inv Invocation) Start() int { return inv.Name.Offset }
func (inv Invocation) End() int   { return inv.Args.End() }

// Parse parses the invocation's argument.
func (inv Invocation) Parse() (ast.Node, error) {
	return Parse(inv.Kind, inv.Args.Children, inv.Args.Close)
}

// Errors is the list of failed invocations in a file, in source order.
type Errors []*diag.Error

func (es Errors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

func (es Errors) Unwrap() []error {
	errs := make([]error, len(es))
	for i, e := range es {
		errs[i] = e
	}
	return errs
}

// Find returns the outermost invocations in trees, in source order.
// Invocations nested in another invocation's argument are not listed; they
// are expanded as part of it.
func (x *Expander) Find(trees []ast.Tree) []Invocation {
	var out []Invocation
	for i := 0; i < len(trees); i++ {
		if inv, ok := x.invocationAt(trees, i); ok {
			out = append(out, inv)
			i += 2
			continue
		}
		if trees[i].IsGroup() {
			out = append(out, x.Find(trees[i].Children)...)
		}
	}
	return out
}

func (x *Expander) invocationAt(trees []ast.Tree, i int) (Invocation, bool) {
	if i+2 >= len(trees) || !trees[i].Is(ast.IDENT) || !trees[i+1].Is(ast.BANG) || !trees[i+2].IsGroup() {
		return Invocation{}, false
	}
	kind, ok := x.names[trees[i].Token.Literal]
	if !ok {
		return Invocation{}, false
	}
	return Invocation{Kind: kind, Name: trees[i].Token, Args: trees[i+2]}, true
}

// FindSource scans src and returns its outermost invocations.
func (x *Expander) FindSource(src string) ([]Invocation, error) {
	trees, _, err := lexer.Scan(src)
	if err != nil {
		return nil, err
	}
	return x.Find(trees), nil
}

type edit struct {
	start, end int
	text       string
	res        *Result
}

// File expands every invocation in a host file and splices the results into
// the surrounding text, which is otherwise copied unchanged.
//
// A failing invocation is left as written and reported in the returned
// [Errors]; the others are still expanded. The result is nil only when the
// file itself cannot be scanned.
func (x *Expander) File(name, src string) (*Result, error) {
	trees, _, err := lexer.Scan(src)
	if err != nil {
		return nil, err
	}
	source := &ast.Source{Name: name, Text: src}

	var (
		edits []edit
		errs  Errors
	)
	for _, inv := range x.Find(trees) {
		res, err := x.invoke(inv.Kind, source, inv.Args.Children, inv.Args.Close, 0)
		if err != nil {
			errs = append(errs, asDiag(err, inv.Pos()))
			continue
		}
		x.log(slog.LevelDebug, "expanded",
			slog.String("file", name),
			slog.String("macro", inv.Kind.String()),
			slog.Int("line", inv.Pos().Line))
		edits = append(edits, edit{start: inv.Start(), end: inv.End(), text: spliced(inv.Kind, res.Code), res: res})
	}

	out := &Result{}
	var b strings.Builder
	line, last := 1, 0
	for _, e := range edits {
		gap := src[last:e.start]
		b.WriteString(gap)
		line += strings.Count(gap, "\n")
		for _, m := range e.res.Map {
			m.GenLine += line - 1
			out.Map = append(out.Map, m)
		}
		out.Warnings = append(out.Warnings, e.res.Warnings...)
		b.WriteString(e.text)
		line += strings.Count(e.text, "\n")
		last = e.end
	}
	b.WriteString(src[last:])
	out.Code = b.String()

	x.log(slog.LevelInfo, "expanded file",
		slog.String("file", name),
		slog.Int("invocations", len(edits)+len(errs)),
		slog.Int("errors", len(errs)),
		slog.Int("warnings", len(out.Warnings)))
	if len(errs) > 0 {
		return out, errs
	}
	return out, nil
}

// splice renders trees as host text with every invocation in them expanded.
func (x *Expander) splice(src *ast.Source, trees []ast.Tree, depth int) (string, []*diag.Error, error) {
	invs := x.Find(trees)
	if len(invs) == 0 || !inSource(src, trees) {
		return src.Slice(trees), nil, nil
	}
	var (
		b     strings.Builder
		warns []*diag.Error
	)
	last := trees[0].Token.Offset
	for _, inv := range invs {
		res, err := x.invoke(inv.Kind, src, inv.Args.Children, inv.Args.Close, depth)
		if err != nil {
			return "", nil, err
		}
		warns = append(warns, res.Warnings...)
		b.WriteString(src.Text[last:inv.Start()])
		b.WriteString(spliced(inv.Kind, res.Code))
		last = inv.End()
	}
	b.WriteString(src.Text[last:trees[len(trees)-1].End()])
	return b.String(), warns, nil
}

// inSource reports whether trees were scanned from src, so that byte offsets
// index src.Text.
func inSource(src *ast.Source, trees []ast.Tree) bool {
	if src == nil || len(trees) == 0 {
		return false
	}
	first := trees[0].Token
	end := trees[len(trees)-1].End()
	return first.Pos().IsValid() && first.Offset >= 0 && end <= len(src.Text) &&
		strings.HasPrefix(src.Text[first.Offset:], first.Literal)
}

// spliced adapts generated code for the call site: a spawn block stands in
// for the call, so the trailing ';' is left to the host text.
func spliced(kind Kind, code string) string {
	code = strings.TrimSuffix(code, "\n")
	if kind == KindSpawn {
		code = strings.TrimSuffix(code, ";")
	}
	return code
}

func asDiag(err error, pos ast.Pos) *diag.Error {
	if d, ok := diag.As(err); ok {
		return d
	}
	return diag.Errorf(diag.Grammar, pos, "%s", err.Error())
}

// SortWarnings orders diagnostics by position.
func SortWarnings(ws []*diag.Error) {
	sort.SliceStable(ws, func(i, j int) bool {
		a, b := ws[i].Pos, ws[j].Pos
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Col < b.Col
	})
}

// File expands a host file with the defaults.
func File(name, src string) (*Result, error) { return std.File(name, src) }
