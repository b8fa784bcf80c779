// Package parser implements the spawn DSL recursive-descent parser.
//
// The parser reads token trees (see [lexer.Trees]) and builds an [ast.Spawn].
// Every decision is made with at most two trees of lookahead; there is no
// backtracking and no trial parsing.
//
// Usage:
//
//	p, err := parser.New(source)
//	if err != nil { ... }
//	spawn, err := p.ParseSpawn()
//
// Error handling: parsing stops at the first problem. The returned error is
// a *diag.Error carrying the offending token's position and one of the fixed
// messages below. The only tolerated malformation is a dangling '.' in
// extension position, which parses to [ast.Unfinished] so editors can keep
// completing.
package parser

import (
	"github.com/metaphox/spawnc/ast"
	"github.com/metaphox/spawnc/cursor"
	"github.com/metaphox/spawnc/diag"
	"github.com/metaphox/spawnc/lexer"
)

// Diagnostic messages. They are part of the tool's contract and must not be
// reworded.
const (
	MsgSpawner         = "expected identifier or '[' expression for spawner"
	MsgDefinition      = "expected '(' for definition"
	MsgTopLevelIdent   = "expected '>' for parented, '+' for inserted, or '(' for entity"
	MsgChildIdent      = "expected '+' for inserted, or '(' for entity"
	MsgParentedChild   = "parented is not allowed as a child"
	MsgExtensionsAfter = "extensions cannot be chained after a children group"
	MsgTopLevel        = "expected parented, inserted, flow statement or code block"
	MsgChild           = "expected entity, inserted, flow statement or code block"
	MsgFlow            = "expected flow statement"
	MsgFlowBody        = "expected '{' for flow body"
	MsgExpression      = "expected expression"
	MsgPattern         = "expected pattern"
	MsgIn              = "expected 'in' after pattern"
	MsgLetAssign       = "expected '=' after pattern"
)

// Parser holds the cursor over one spawn! invocation body.
// Create one with [New] or [FromTrees] and call [Parser.ParseSpawn].
type Parser struct {
	c *cursor.Cursor
}

// New scans source and returns a parser over its token trees.
func New(source string) (*Parser, error) {
	trees, eof, err := lexer.Scan(source)
	if err != nil {
		return nil, err
	}
	return FromTrees(trees, eof), nil
}

// FromTrees returns a parser over already-built token trees. end positions
// "unexpected end of input" errors.
func FromTrees(trees []ast.Tree, end ast.Token) *Parser {
	return &Parser{c: cursor.New(trees, end)}
}

// ParseSpawn parses `spawner (top_level | ';')*`.
func (p *Parser) ParseSpawn() (*ast.Spawn, error) {
	spawner, err := p.parseSpawner(p.c)
	if err != nil {
		return nil, err
	}
	spawn := &ast.Spawn{Spawner: spawner}
	for !p.c.IsEmpty() {
		if p.c.Skip(ast.SEMICOLON) > 0 {
			continue
		}
		item, err := p.parseTopLevel(p.c)
		if err != nil {
			return nil, err
		}
		spawn.Items = append(spawn.Items, item)
	}
	return spawn, nil
}

// ParseString is a convenience wrapper: New followed by ParseSpawn.
func ParseString(source string) (*ast.Spawn, error) {
	p, err := New(source)
	if err != nil {
		return nil, err
	}
	return p.ParseSpawn()
}

// ── Spawner ───────────────────────────────────────────────────────────────────

func (p *Parser) parseSpawner(c *cursor.Cursor) (ast.Spawner, error) {
	switch {
	case c.Is(0, ast.IDENT):
		tok := c.Next().Token
		return ast.Spawner{Token: tok, Kind: ast.SpawnerIdent, Name: tok.Literal}, nil
	case c.Is(0, ast.LBRACKET):
		group := c.Next()
		if len(group.Children) == 0 {
			return ast.Spawner{}, diag.New(diag.Grammar, group.Close.Pos(), MsgExpression)
		}
		return ast.Spawner{Token: group.Token, Kind: ast.SpawnerExpr, Expr: ast.Expr{Trees: group.Children}}, nil
	}
	return ast.Spawner{}, c.Error(diag.Grammar, MsgSpawner)
}

// ── Items ─────────────────────────────────────────────────────────────────────

// parseTopLevel dispatches on one or two trees of lookahead:
//
//	'('               entity
//	'{'               code block
//	if / for / while  flow
//	IDENT '('         named entity
//	IDENT '>'         parented
//	IDENT '+'         inserted
func (p *Parser) parseTopLevel(c *cursor.Cursor) (ast.TopLevel, error) {
	switch {
	case c.Is(0, ast.LPAREN):
		return p.parseEntity(c)
	case c.Is(0, ast.LBRACE):
		return &ast.CodeBlock{Block: c.Next()}, nil
	case isFlowStart(c):
		return parseFlow(c, p.parseTopLevel)
	case c.Is(0, ast.IDENT):
		switch {
		case c.Is(1, ast.LPAREN):
			return p.parseEntity(c)
		case c.Is(1, ast.GT):
			return p.parseParented(c)
		case c.Is(1, ast.PLUS):
			return p.parseInserted(c)
		}
		c.Next()
		return nil, c.Error(diag.Grammar, MsgTopLevelIdent)
	}
	return nil, c.Error(diag.Grammar, MsgTopLevel)
}

// parseChild is parseTopLevel without parented: children are always
// attached to the entity that owns the group.
func (p *Parser) parseChild(c *cursor.Cursor) (ast.Child, error) {
	switch {
	case c.Is(0, ast.LPAREN):
		return p.parseEntity(c)
	case c.Is(0, ast.LBRACE):
		return &ast.CodeBlock{Block: c.Next()}, nil
	case isFlowStart(c):
		return parseFlow(c, p.parseChild)
	case c.Is(0, ast.IDENT):
		switch {
		case c.Is(1, ast.LPAREN):
			return p.parseEntity(c)
		case c.Is(1, ast.PLUS):
			return p.parseInserted(c)
		}
		c.Next()
		if c.Is(0, ast.GT) {
			return nil, c.Error(diag.Restriction, MsgParentedChild)
		}
		return nil, c.Error(diag.Grammar, MsgChildIdent)
	}
	return nil, c.Error(diag.Grammar, MsgChild)
}

func isFlowStart(c *cursor.Cursor) bool {
	return c.Is(0, ast.IF) || c.Is(0, ast.FOR) || c.Is(0, ast.WHILE)
}

// parseEntity parses `name? definition`.
func (p *Parser) parseEntity(c *cursor.Cursor) (*ast.Entity, error) {
	e := &ast.Entity{}
	if c.Is(0, ast.IDENT) {
		name := ast.NewIdent(c.Next().Token)
		e.Name = &name
	}
	def, err := p.parseDefinition(c)
	if err != nil {
		return nil, err
	}
	e.Def = def
	return e, nil
}

// parseParented parses `name '>' entity`.
func (p *Parser) parseParented(c *cursor.Cursor) (*ast.Parented, error) {
	parent := ast.NewIdent(c.Next().Token)
	c.Next() // '>'
	e, err := p.parseEntity(c)
	if err != nil {
		return nil, err
	}
	return &ast.Parented{Parent: parent, Entity: e}, nil
}

// parseInserted parses `name '+' definition`.
func (p *Parser) parseInserted(c *cursor.Cursor) (*ast.Inserted, error) {
	base := ast.NewIdent(c.Next().Token)
	c.Next() // '+'
	def, err := p.parseDefinition(c)
	if err != nil {
		return nil, err
	}
	return &ast.Inserted{Base: base, Def: def}, nil
}

// ── Definitions ───────────────────────────────────────────────────────────────

// parseDefinition parses `'(' components ')' ('.' extension)* ('.' children)*`.
//
// A '.' followed by '[' ends the extension list. Once a children group has
// been read, any '.' not followed by '[' is a restriction error.
func (p *Parser) parseDefinition(c *cursor.Cursor) (*ast.Definition, error) {
	_, group, err := c.Group(ast.LPAREN, MsgDefinition)
	if err != nil {
		return nil, err
	}
	def := &ast.Definition{Token: group.Token, Components: exprs(group.Children)}

	for c.Is(0, ast.DOT) && !c.Is(1, ast.LBRACKET) {
		ext, err := p.parseExtension(c)
		if err != nil {
			return nil, err
		}
		def.Extensions = append(def.Extensions, ext)
	}

	for c.Is(0, ast.DOT) {
		c.Next()
		if !c.Is(0, ast.LBRACKET) {
			return nil, c.Error(diag.Restriction, MsgExtensionsAfter)
		}
		children, err := p.parseChildren(c)
		if err != nil {
			return nil, err
		}
		def.Children = append(def.Children, children)
	}
	return def, nil
}

// parseExtension parses one extension, the leading '.' included.
//
//	.(handler)        observe
//	.name(args...)    method call
//	.{ ... }          code block
//	.name / .         unfinished
func (p *Parser) parseExtension(c *cursor.Cursor) (ast.Extension, error) {
	dot := c.Next().Token
	switch {
	case c.Is(0, ast.IDENT) && c.Is(1, ast.LPAREN):
		name := ast.NewIdent(c.Next().Token)
		args := c.Next()
		return &ast.MethodCall{Dot: dot, Name: name, Args: exprs(args.Children)}, nil
	case c.Is(0, ast.IDENT):
		name := ast.NewIdent(c.Next().Token)
		return &ast.Unfinished{Dot: dot, Name: &name}, nil
	case c.Is(0, ast.LPAREN):
		group := c.Next()
		if len(group.Children) == 0 {
			return nil, diag.New(diag.Grammar, group.Close.Pos(), MsgExpression)
		}
		return &ast.Observe{Dot: dot, Handler: ast.Expr{Trees: group.Children}}, nil
	case c.Is(0, ast.LBRACE):
		return &ast.BlockExtension{Dot: dot, Block: c.Next()}, nil
	}
	return &ast.Unfinished{Dot: dot}, nil
}

// parseChildren parses `'[' (child | ';')* ']'`; the '.' is already consumed.
func (p *Parser) parseChildren(c *cursor.Cursor) (*ast.Children, error) {
	inner, group, err := c.Group(ast.LBRACKET, MsgExtensionsAfter)
	if err != nil {
		return nil, err
	}
	children := &ast.Children{Token: group.Token}
	for !inner.IsEmpty() {
		if inner.Skip(ast.SEMICOLON) > 0 {
			continue
		}
		child, err := p.parseChild(inner)
		if err != nil {
			return nil, err
		}
		children.Items = append(children.Items, child)
	}
	return children, nil
}

// exprs splits a comma-separated opaque list into expressions.
func exprs(trees []ast.Tree) []ast.Expr {
	segs := cursor.Split(trees, ast.COMMA)
	out := make([]ast.Expr, 0, len(segs))
	for _, s := range segs {
		out = append(out, ast.Expr{Trees: s})
	}
	return out
}
