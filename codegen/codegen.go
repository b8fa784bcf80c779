// Package codegen turns spawn and value-literal ASTs into host source text.
//
// Generation is a single ordered walk: output order is source order, both
// across siblings and along extension chains. Every statement that comes
// from DSL source is recorded in a line-level source map so diagnostics from
// the host compiler can be traced back to the DSL.
//
// Host expressions are emitted through [Options.Opaque]. The default copies
// their original source text; package expand installs a hook that expands
// nested macro invocations first.
package codegen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/metaphox/spawnc/ast"
	"github.com/metaphox/spawnc/diag"
)

// Target names the host API paths the generated code refers to.
type Target struct {
	Val    string // dimension enum
	Rect   string // four-edge record
	Radius string // four-corner record
	Color  string // colour module, glob-imported
}

// DefaultTarget returns the Bevy UI paths.
func DefaultTarget() Target {
	return Target{
		Val:    "bevy::ui::Val",
		Rect:   "bevy::ui::UiRect",
		Radius: "bevy::ui::BorderRadius",
		Color:  "bevy::color",
	}
}

// OpaqueFunc renders a host expression, pattern or block.
type OpaqueFunc func(trees []ast.Tree) (string, error)

// Options configures a [Generator]. The zero value is usable.
type Options struct {
	Target   Target
	Annotate bool        // append /* @line:col */ to mapped statements
	Source   *ast.Source // text the trees were scanned from
	Opaque   OpaqueFunc  // defaults to copying text from Source
	Logger   *slog.Logger
}

// Output is the result of one generation.
type Output struct {
	Code     string
	Map      []Mapping
	Warnings []*diag.Error
}

// Generator emits host code. It is not safe for concurrent use; each call
// to a generating method starts from a clean state.
type Generator struct {
	opts     Options
	w        *writer
	scopes   *Scopes
	warnings []*diag.Error
}

// New returns a generator with defaults filled in for empty options.
func New(opts Options) *Generator {
	def := DefaultTarget()
	if opts.Target.Val == "" {
		opts.Target.Val = def.Val
	}
	if opts.Target.Rect == "" {
		opts.Target.Rect = def.Rect
	}
	if opts.Target.Radius == "" {
		opts.Target.Radius = def.Radius
	}
	if opts.Target.Color == "" {
		opts.Target.Color = def.Color
	}
	if opts.Opaque == nil {
		src := opts.Source
		opts.Opaque = func(trees []ast.Tree) (string, error) { return src.Slice(trees), nil }
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{opts: opts}
}

func (g *Generator) reset() {
	g.w = newWriter(g.opts.Annotate)
	g.scopes = NewScopes()
	g.warnings = nil
}

func (g *Generator) output() *Output {
	return &Output{Code: g.w.String(), Map: g.w.maps, Warnings: g.warnings}
}

func (g *Generator) log(level slog.Level, msg string, attrs ...slog.Attr) {
	g.opts.Logger.LogAttrs(context.Background(), level, msg, attrs...)
}

func (g *Generator) warn(w *diag.Error) {
	g.warnings = append(g.warnings, w)
	g.log(slog.LevelDebug, "warning", slog.String("kind", w.Kind.String()), slog.String("msg", w.Error()))
}

func (g *Generator) opaque(e ast.Expr) (string, error) { return g.opts.Opaque(e.Trees) }

func (g *Generator) opaqueList(es []ast.Expr) (string, error) {
	parts := make([]string, 0, len(es))
	for _, e := range es {
		s, err := g.opaque(e)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), nil
}

func (g *Generator) block(t ast.Tree) (string, error) { return g.opts.Opaque([]ast.Tree{t}) }

// ── Spawn ─────────────────────────────────────────────────────────────────────

// Spawn generates the statement block for one spawn! invocation.
func (g *Generator) Spawn(s *ast.Spawn) (*Output, error) {
	g.reset()
	g.w.open(ast.Pos{}, "{")
	switch s.Spawner.Kind {
	case ast.SpawnerIdent:
		g.w.emit(s.Spawner.Pos(), "let spawner = &mut "+s.Spawner.Name+";")
	case ast.SpawnerExpr:
		expr, err := g.opaque(s.Spawner.Expr)
		if err != nil {
			return nil, err
		}
		g.w.emit(s.Spawner.Pos(), "let mut spawner = ("+expr+");")
		g.w.emit(ast.Pos{}, "let spawner = &mut spawner;")
	}
	for _, it := range s.Items {
		if err := g.topLevel(it); err != nil {
			return nil, err
		}
	}
	g.w.close("};")
	g.log(slog.LevelDebug, "generated spawn",
		slog.Int("items", len(s.Items)),
		slog.Int("lines", g.w.line-1),
		slog.Int("warnings", len(g.warnings)))
	return g.output(), nil
}

func (g *Generator) topLevel(it ast.TopLevel) error {
	switch n := it.(type) {
	case *ast.Entity:
		return g.entity(n, "")
	case *ast.Parented:
		return g.entity(n.Entity, g.reference(n.Parent))
	case *ast.Inserted:
		return g.inserted(n)
	case *ast.CodeBlock:
		return g.codeBlock(n)
	case ast.Flow[ast.TopLevel]:
		return genFlow(g, n, g.topLevel)
	}
	return fmt.Errorf("codegen: unexpected top-level item %T", it)
}

// child generates a children-group item. Bare entities are parented to the
// group's implicit parent binding.
func (g *Generator) child(it ast.Child) error {
	switch n := it.(type) {
	case *ast.Entity:
		return g.entity(n, "parent")
	case *ast.Inserted:
		return g.inserted(n)
	case *ast.CodeBlock:
		return g.codeBlock(n)
	case ast.Flow[ast.Child]:
		return genFlow(g, n, g.child)
	}
	return fmt.Errorf("codegen: unexpected child item %T", it)
}

// reference resolves a parent or insertion base and warns when it names an
// entity bound in a scope that is no longer visible. The name may equally be
// a host binding, so the reference is emitted unchanged either way.
func (g *Generator) reference(id ast.Ident) string {
	b, _ := g.scopes.Resolve(id.Name)
	if b == Hidden {
		where := "another children group"
		if g.scopes.hiddenIn(id.Name) == ScopeFlow {
			where = "a flow body"
		}
		w := diag.Warnf(diag.Scope, id.Pos(), "%s may refer to an entity bound in %s, which is not visible here", id.Name, where)
		w.Hints = []string{"a host binding named " + id.Name + " is used as is"}
		g.warn(w)
	}
	return id.Name
}

// entity emits
//
//	let NAME = {
//	    let mut entity = spawner.spawn((C...));
//	    let this = entity.id();
//	    entity.set_parent(PARENT);
//	    ...extensions, children...
//	    this
//	};
func (g *Generator) entity(e *ast.Entity, parent string) error {
	comps, err := g.opaqueList(e.Def.Components)
	if err != nil {
		return err
	}
	head := "{"
	if e.Name != nil {
		head = "let " + e.Name.Name + " = {"
	}
	g.w.open(e.Pos(), head)
	g.w.emit(e.Def.Pos(), "let mut entity = spawner.spawn(("+comps+"));")
	g.w.emit(ast.Pos{}, "let this = entity.id();")
	if parent != "" {
		g.w.emit(ast.Pos{}, "entity.set_parent("+parent+");")
	}
	if err := g.definition(e.Def); err != nil {
		return err
	}
	g.w.emit(ast.Pos{}, "this")
	g.w.close("};")
	if e.Name != nil {
		g.scopes.Declare(e.Name.Name, e.Name.Pos())
	}
	return nil
}

func (g *Generator) inserted(n *ast.Inserted) error {
	base := g.reference(n.Base)
	comps, err := g.opaqueList(n.Def.Components)
	if err != nil {
		return err
	}
	g.w.open(ast.Pos{}, "{")
	g.w.emit(n.Pos(), "let mut entity = spawner.entity("+base+");")
	g.w.emit(n.Def.Pos(), "let mut entity = entity.insert(("+comps+"));")
	g.w.emit(ast.Pos{}, "let this = entity.id();")
	if err := g.definition(n.Def); err != nil {
		return err
	}
	g.w.close("};")
	return nil
}

func (g *Generator) codeBlock(n *ast.CodeBlock) error {
	text, err := g.block(n.Block)
	if err != nil {
		return err
	}
	g.w.emit(n.Pos(), text)
	return nil
}

// definition emits the extensions, then the children groups, in order.
func (g *Generator) definition(def *ast.Definition) error {
	for _, ext := range def.Extensions {
		if err := g.extension(ext); err != nil {
			return err
		}
	}
	for _, ch := range def.Children {
		if err := g.children(ch); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) extension(ext ast.Extension) error {
	switch n := ext.(type) {
	case *ast.Observe:
		h, err := g.opaque(n.Handler)
		if err != nil {
			return err
		}
		g.w.emit(n.Pos(), "entity.observe("+h+");")

	case *ast.MethodCall:
		args, err := g.opaqueList(n.Args)
		if err != nil {
			return err
		}
		g.w.emit(n.Pos(), "entity."+n.Name.Name+"("+args+");")

	case *ast.BlockExtension:
		text, err := g.block(n.Block)
		if err != nil {
			return err
		}
		g.w.open(n.Pos(), "{")
		g.w.emit(ast.Pos{}, "let mut entity = entity.reborrow();")
		g.w.emit(n.Block.Pos(), text)
		g.w.close("}")

	case *ast.Unfinished:
		echo := "."
		if n.Name != nil {
			echo = ". " + n.Name.Name
		}
		g.w.emit(n.Pos(), echo)
		g.warn(diag.Warnf(diag.Incomplete, n.Pos(), "unfinished extension '%s'", n.String()))

	default:
		return fmt.Errorf("codegen: unexpected extension %T", ext)
	}
	return nil
}

// children emits one group in its own scope, with `parent` bound to the
// owning entity.
func (g *Generator) children(ch *ast.Children) error {
	g.w.open(ch.Pos(), "{")
	g.w.emit(ast.Pos{}, "let parent = this;")
	g.scopes.Push(ScopeChildren)
	g.scopes.Declare("parent", ch.Pos())
	for _, it := range ch.Items {
		if err := g.child(it); err != nil {
			return err
		}
	}
	g.scopes.Pop()
	g.w.close("};")
	return nil
}
