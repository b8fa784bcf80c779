// Package ast defines the Abstract Syntax Tree (AST) node types for the spawn DSL.
//
// The hierarchy is:
//
//	Node (interface)
//	  TopLevel (interface) : items directly inside spawn! { spawner ... }
//	    Entity, Parented, Inserted, CodeBlock, If/IfLet/For/While/WhileLet
//	  Child (interface)    : items inside a children group .[ ... ]
//	    Entity, Inserted, CodeBlock, If/IfLet/For/While/WhileLet
//	  Extension (interface)
//	    Observe, MethodCall, BlockExtension, Unfinished
//
// Host expressions (components, arguments, conditions, patterns) are opaque:
// an [Expr] keeps the token trees it was parsed from so the generator can
// reproduce the original text and position exactly.
//
// Positional information is available on every node through Pos().
package ast

import (
	"fmt"
	"strings"
)

// ── Interfaces ────────────────────────────────────────────────────────────────

// Node is the root interface for every element in the spawn AST.
type Node interface {
	// Pos returns the position of the first token of the node.
	Pos() Pos
	// String returns a compact, human-readable representation of the node.
	// It is intended for debugging and test output, not code generation.
	String() string
}

// TopLevel is an item that may appear directly in the spawn body.
type TopLevel interface {
	Node
	topLevelNode()
}

// Child is an item that may appear inside a children group.
type Child interface {
	Node
	childNode()
}

// Extension is a post-construction action chained onto a definition.
type Extension interface {
	Node
	extensionNode()
}

// Flow is a control-flow construct whose body items are of type T
// (Child or TopLevel). A flow is itself valid in both item positions.
type Flow[T Node] interface {
	TopLevel
	Child
	flowNode()
}

// ── Support types ─────────────────────────────────────────────────────────────

// Expr is an opaque host expression, pattern or argument.
type Expr struct {
	Trees []Tree
}

func (e Expr) Pos() Pos {
	if len(e.Trees) == 0 {
		return Pos{}
	}
	return e.Trees[0].Pos()
}
func (e Expr) String() string { return JoinTrees(e.Trees) }

// Ident is a DSL-level name: an entity name, a parent or an insertion base.
type Ident struct {
	Token Token
	Name  string
}

func (i Ident) Pos() Pos       { return i.Token.Pos() }
func (i Ident) String() string { return i.Name }

// NewIdent wraps an identifier token.
func NewIdent(tok Token) Ident { return Ident{Token: tok, Name: tok.Literal} }

// SpawnerKind tells how the construction context was supplied.
type SpawnerKind int

const (
	// SpawnerIdent is an existing binding: spawn! { commands ... }
	SpawnerIdent SpawnerKind = iota
	// SpawnerExpr is an inline expression: spawn! { [commands.reborrow()] ... }
	SpawnerExpr
)

// Spawner is the construction context every entity is spawned from.
type Spawner struct {
	Token Token // the identifier, or the '[' token
	Kind  SpawnerKind
	Name  string // set for SpawnerIdent
	Expr  Expr   // set for SpawnerExpr
}

func (s Spawner) Pos() Pos { return s.Token.Pos() }
func (s Spawner) String() string {
	if s.Kind == SpawnerExpr {
		return "[" + s.Expr.String() + "]"
	}
	return s.Name
}

// ── Root ──────────────────────────────────────────────────────────────────────

// Spawn is the root node produced by the parser for one spawn! invocation.
type Spawn struct {
	Spawner Spawner
	Items   []TopLevel
}

func (s *Spawn) Pos() Pos { return s.Spawner.Pos() }
func (s *Spawn) String() string {
	var b strings.Builder
	b.WriteString(s.Spawner.String())
	for _, it := range s.Items {
		b.WriteString("\n")
		b.WriteString(it.String())
		b.WriteString(";")
	}
	return b.String()
}

// ── Entities ──────────────────────────────────────────────────────────────────

// Definition is the component tuple plus its extensions and children groups.
//
//	(Button, Node::default()).observe(on_click).[ (Text::new("hi")) ]
//
// Extensions always precede children groups.
type Definition struct {
	Token      Token // the '(' token
	Components []Expr
	Extensions []Extension
	Children   []*Children
}

func (d *Definition) Pos() Pos { return d.Token.Pos() }
func (d *Definition) String() string {
	parts := make([]string, 0, len(d.Components))
	for _, c := range d.Components {
		parts = append(parts, c.String())
	}
	out := "(" + strings.Join(parts, ", ") + ")"
	for _, e := range d.Extensions {
		out += e.String()
	}
	for _, c := range d.Children {
		out += c.String()
	}
	return out
}

// Entity constructs a new object. Name is nil for anonymous entities.
//
//	button (Button).[ (Text::new("ok")) ]
type Entity struct {
	Name *Ident
	Def  *Definition
}

func (e *Entity) childNode()    {}
func (e *Entity) topLevelNode() {}
func (e *Entity) Pos() Pos {
	if e.Name != nil {
		return e.Name.Pos()
	}
	return e.Def.Pos()
}
func (e *Entity) String() string {
	if e.Name != nil {
		return e.Name.Name + " " + e.Def.String()
	}
	return e.Def.String()
}

// Parented is a top-level entity with an explicit parent.
//
//	container > title (Text::new("Menu"))
type Parented struct {
	Parent Ident
	Entity *Entity
}

func (p *Parented) topLevelNode()  {}
func (p *Parented) Pos() Pos       { return p.Parent.Pos() }
func (p *Parented) String() string { return p.Parent.Name + " > " + p.Entity.String() }

// Inserted adds components to an object bound earlier.
//
//	button + (BackgroundColor(c!(red)))
type Inserted struct {
	Base Ident
	Def  *Definition
}

func (i *Inserted) childNode()     {}
func (i *Inserted) topLevelNode()  {}
func (i *Inserted) Pos() Pos       { return i.Base.Pos() }
func (i *Inserted) String() string { return i.Base.Name + " + " + i.Def.String() }

// CodeBlock is a brace-delimited block of host statements in item position.
type CodeBlock struct {
	Block Tree // the '{' group
}

func (c *CodeBlock) childNode()     {}
func (c *CodeBlock) topLevelNode()  {}
func (c *CodeBlock) Pos() Pos       { return c.Block.Pos() }
func (c *CodeBlock) String() string { return "{ ... }" }

// Children is one children group: .[ child; child; ... ]
type Children struct {
	Token Token // the '[' token
	Items []Child
}

func (c *Children) Pos() Pos { return c.Token.Pos() }
func (c *Children) String() string {
	parts := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		parts = append(parts, it.String())
	}
	return ".[" + strings.Join(parts, "; ") + "]"
}

// ── Extensions ────────────────────────────────────────────────────────────────

// Observe registers an event handler: .(handler)
type Observe struct {
	Dot     Token
	Handler Expr
}

func (o *Observe) extensionNode() {}
func (o *Observe) Pos() Pos       { return o.Dot.Pos() }
func (o *Observe) String() string { return ".(" + o.Handler.String() + ")" }

// MethodCall forwards a named call to the object handle: .name(args...)
type MethodCall struct {
	Dot  Token
	Name Ident
	Args []Expr
}

func (m *MethodCall) extensionNode() {}
func (m *MethodCall) Pos() Pos       { return m.Dot.Pos() }
func (m *MethodCall) String() string {
	parts := make([]string, 0, len(m.Args))
	for _, a := range m.Args {
		parts = append(parts, a.String())
	}
	return fmt.Sprintf(".%s(%s)", m.Name.Name, strings.Join(parts, ", "))
}

// BlockExtension runs host statements with `this` and `entity` in scope: .{ ... }
type BlockExtension struct {
	Dot   Token
	Block Tree // the '{' group
}

func (b *BlockExtension) extensionNode() {}
func (b *BlockExtension) Pos() Pos       { return b.Dot.Pos() }
func (b *BlockExtension) String() string { return ".{ ... }" }

// Unfinished is a dangling '.' with an optional partial name. It only exists
// so editors keep offering completions while the user is typing; generating
// it produces invalid host code on purpose.
type Unfinished struct {
	Dot  Token
	Name *Ident
}

func (u *Unfinished) extensionNode() {}
func (u *Unfinished) Pos() Pos       { return u.Dot.Pos() }
func (u *Unfinished) String() string {
	if u.Name != nil {
		return "." + u.Name.Name
	}
	return "."
}

// ── Control flow ──────────────────────────────────────────────────────────────

// ControlKind distinguishes the entries of a flow body.
type ControlKind int

const (
	ControlItem ControlKind = iota
	ControlBreak
	ControlContinue
)

// Control is one entry of a flow body: break, continue, or an item of type T.
type Control[T Node] struct {
	Kind  ControlKind
	Token Token // the first token of the entry
	Item  T     // set when Kind == ControlItem
}

func (c Control[T]) String() string {
	switch c.Kind {
	case ControlBreak:
		return "break"
	case ControlContinue:
		return "continue"
	}
	return c.Item.String()
}

func bodyString[T Node](body []Control[T]) string {
	parts := make([]string, 0, len(body))
	for _, c := range body {
		parts = append(parts, c.String())
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// If is a conditional flow, optionally chained with else.
//
//	if show_title { (Text::new("Title")) } else if compact { ... }
type If[T Node] struct {
	Token Token // the 'if' token
	Cond  Expr
	Body  []Control[T]
	Else  Flow[T] // nil when there is no else clause
}

func (f *If[T]) flowNode()     {}
func (f *If[T]) childNode()    {}
func (f *If[T]) topLevelNode() {}
func (f *If[T]) Pos() Pos      { return f.Token.Pos() }
func (f *If[T]) String() string {
	return "if " + f.Cond.String() + " " + bodyString(f.Body) + elseString[T](f.Else)
}

// IfLet is a pattern-matching conditional flow.
//
//	if let Some(icon) = icon { (ImageNode::new(icon)) }
type IfLet[T Node] struct {
	Token   Token // the 'if' token
	Pattern Expr
	Value   Expr
	Body    []Control[T]
	Else    Flow[T]
}

func (f *IfLet[T]) flowNode()     {}
func (f *IfLet[T]) childNode()    {}
func (f *IfLet[T]) topLevelNode() {}
func (f *IfLet[T]) Pos() Pos      { return f.Token.Pos() }
func (f *IfLet[T]) String() string {
	return "if let " + f.Pattern.String() + " = " + f.Value.String() + " " + bodyString(f.Body) + elseString[T](f.Else)
}

// For is an iterator loop.
//
//	for label in labels { (Text::new(label)) }
type For[T Node] struct {
	Token   Token // the 'for' token
	Pattern Expr
	Iter    Expr
	Body    []Control[T]
}

func (f *For[T]) flowNode()     {}
func (f *For[T]) childNode()    {}
func (f *For[T]) topLevelNode() {}
func (f *For[T]) Pos() Pos      { return f.Token.Pos() }
func (f *For[T]) String() string {
	return "for " + f.Pattern.String() + " in " + f.Iter.String() + " " + bodyString(f.Body)
}

// While is a conditional loop.
type While[T Node] struct {
	Token Token // the 'while' token
	Cond  Expr
	Body  []Control[T]
}

func (f *While[T]) flowNode()      {}
func (f *While[T]) childNode()     {}
func (f *While[T]) topLevelNode()  {}
func (f *While[T]) Pos() Pos       { return f.Token.Pos() }
func (f *While[T]) String() string { return "while " + f.Cond.String() + " " + bodyString(f.Body) }

// WhileLet is a pattern-matching loop.
type WhileLet[T Node] struct {
	Token   Token // the 'while' token
	Pattern Expr
	Value   Expr
	Body    []Control[T]
}

func (f *WhileLet[T]) flowNode()     {}
func (f *WhileLet[T]) childNode()    {}
func (f *WhileLet[T]) topLevelNode() {}
func (f *WhileLet[T]) Pos() Pos      { return f.Token.Pos() }
func (f *WhileLet[T]) String() string {
	return "while let " + f.Pattern.String() + " = " + f.Value.String() + " " + bodyString(f.Body)
}

func elseString[T Node](f Flow[T]) string {
	if f == nil {
		return ""
	}
	return " else " + f.String()
}
