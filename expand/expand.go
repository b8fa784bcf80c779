// Package expand is the host-facing entry point: it runs the lexer, the
// parsers and the generator for one macro invocation, and it rewrites whole
// host files by replacing every invocation with its expansion.
//
// Invocations may nest. A v! inside a component expression of a spawn! is
// expanded first and its code is spliced into the enclosing expression
// before that expression is emitted.
package expand

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/metaphox/spawnc/ast"
	"github.com/metaphox/spawnc/codegen"
	"github.com/metaphox/spawnc/config"
	"github.com/metaphox/spawnc/cursor"
	"github.com/metaphox/spawnc/diag"
	"github.com/metaphox/spawnc/lexer"
	"github.com/metaphox/spawnc/parser"
	"github.com/metaphox/spawnc/value"
)

// Result is the generated code of one invocation or one file.
type Result = codegen.Output

// Kind identifies a macro.
type Kind int

const (
	KindSpawn Kind = iota
	KindValue
	KindColor
	KindEdges
	KindTurns
)

var kindNames = [...]string{"spawn", "value", "color", "edges", "turns"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// maxDepth bounds macro nesting inside a single invocation.
const maxDepth = 64

// Option configures an [Expander].
type Option func(*Expander)

// WithConfig sets the target paths, macro names and output options.
func WithConfig(cfg *config.Config) Option {
	return func(x *Expander) { x.cfg = cfg }
}

// WithAnnotate overrides the configured annotate setting.
func WithAnnotate(on bool) Option {
	return func(x *Expander) { x.annotate = &on }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(x *Expander) { x.logger = l }
}

// Expander expands invocations with a fixed configuration. It holds no
// per-invocation state and is safe for concurrent use.
type Expander struct {
	cfg      *config.Config
	annotate *bool
	logger   *slog.Logger
	names    map[string]Kind
}

// New returns an expander. Without [WithConfig] the defaults apply.
func New(opts ...Option) *Expander {
	x := &Expander{}
	for _, o := range opts {
		o(x)
	}
	if x.cfg == nil {
		x.cfg = config.Default()
	}
	if x.logger == nil {
		x.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := x.cfg.Macros
	x.names = map[string]Kind{
		m.Spawn: KindSpawn,
		m.Value: KindValue,
		m.Color: KindColor,
		m.Edges: KindEdges,
		m.Turns: KindTurns,
	}
	return x
}

var std = New()

// Spawn expands the argument of a spawn! invocation with the defaults.
func Spawn(src string) (*Result, error) { return std.Spawn(src) }

// V expands the argument of a v! invocation with the defaults.
func V(src string) (*Result, error) { return std.V(src) }

// C expands the argument of a c! invocation with the defaults.
func C(src string) (*Result, error) { return std.C(src) }

// E expands the argument of an e! invocation with the defaults.
func E(src string) (*Result, error) { return std.E(src) }

// T expands the argument of a t! invocation with the defaults.
func T(src string) (*Result, error) { return std.T(src) }

// IsIncomplete reports whether err is caused only by input ending too early.
// More input may turn it into a valid invocation.
func IsIncomplete(err error) bool { return diag.IsKind(err, diag.Incomplete) }

func (x *Expander) Spawn(src string) (*Result, error) { return x.Expand(KindSpawn, src) }
func (x *Expander) V(src string) (*Result, error)     { return x.Expand(KindValue, src) }
func (x *Expander) C(src string) (*Result, error)     { return x.Expand(KindColor, src) }
func (x *Expander) E(src string) (*Result, error)     { return x.Expand(KindEdges, src) }
func (x *Expander) T(src string) (*Result, error)     { return x.Expand(KindTurns, src) }

// Expand scans src as the argument of a kind invocation and expands it.
func (x *Expander) Expand(kind Kind, src string) (*Result, error) {
	trees, eof, err := lexer.Scan(src)
	if err != nil {
		return nil, err
	}
	return x.invoke(kind, &ast.Source{Text: src}, trees, eof, 0)
}

// Kind reports the macro configured under name.
func (x *Expander) Kind(name string) (Kind, bool) {
	k, ok := x.names[name]
	return k, ok
}

func (x *Expander) log(level slog.Level, msg string, attrs ...slog.Attr) {
	x.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// invoke parses and generates one invocation whose argument is trees.
func (x *Expander) invoke(kind Kind, src *ast.Source, trees []ast.Tree, end ast.Token, depth int) (*Result, error) {
	if depth > maxDepth {
		return nil, diag.Errorf(diag.Restriction, end.Pos(), "macro nesting deeper than %d", maxDepth)
	}
	var nested []*diag.Error
	annotate := x.cfg.Output.Annotate
	if x.annotate != nil {
		annotate = *x.annotate
	}
	g := codegen.New(codegen.Options{
		Target:   x.cfg.CodegenTarget(),
		Annotate: annotate,
		Source:   src,
		Logger:   x.logger,
		Opaque: func(ts []ast.Tree) (string, error) {
			text, warns, err := x.splice(src, ts, depth+1)
			nested = append(nested, warns...)
			return text, err
		},
	})

	node, err := Parse(kind, trees, end)
	var out *Result
	if err == nil {
		out, err = generate(g, node)
	}
	if err != nil {
		x.log(slog.LevelDebug, "expansion failed", slog.String("macro", kind.String()), slog.Any("err", err))
		return nil, err
	}
	out.Warnings = append(nested, out.Warnings...)
	return out, nil
}

// Parse parses the argument of a kind invocation. The result is a *ast.Spawn,
// ast.Dimension, ast.Color, ast.Edges or ast.Turns.
func Parse(kind Kind, trees []ast.Tree, end ast.Token) (ast.Node, error) {
	c := cursor.New(trees, end)
	switch kind {
	case KindSpawn:
		return parser.FromTrees(trees, end).ParseSpawn()
	case KindValue:
		return value.ParseDimension(c)
	case KindColor:
		return value.ParseColor(c)
	case KindEdges:
		return value.ParseEdges(c)
	case KindTurns:
		return value.ParseTurns(c)
	}
	return nil, fmt.Errorf("expand: unknown macro kind %s", kind)
}

func generate(g *codegen.Generator, node ast.Node) (*Result, error) {
	switch n := node.(type) {
	case *ast.Spawn:
		return g.Spawn(n)
	case ast.Dimension:
		return g.Dimension(n)
	case ast.Color:
		return g.Color(n)
	case ast.Edges:
		return g.Edges(n)
	case ast.Turns:
		return g.Turns(n)
	}
	return nil, fmt.Errorf("expand: unexpected node %T", node)
}
