package parser

import (
	"github.com/metaphox/spawnc/ast"
	"github.com/metaphox/spawnc/cursor"
	"github.com/metaphox/spawnc/diag"
)

// parseFlow parses a control-flow construct whose body items are parsed by
// item. The same code serves both item positions: top level and children.
//
// Dispatch:
//
//	'if' 'let'     if_let
//	'if'           if
//	'for'          for
//	'while' 'let'  while_let
//	'while'        while
//
// Host expressions in headers are opaque. A condition, scrutinee or iterator
// runs up to the first top-level '{' group; an if-let/while-let pattern runs
// up to the top-level '='; a for pattern runs up to 'in'.
func parseFlow[T ast.Node](c *cursor.Cursor, item func(*cursor.Cursor) (T, error)) (ast.Flow[T], error) {
	switch {
	case c.Is(0, ast.IF) && c.Is(1, ast.LET):
		tok := c.Next().Token
		c.Next()
		pattern, value, err := parseLetHeader(c)
		if err != nil {
			return nil, err
		}
		body, err := parseBody(c, item)
		if err != nil {
			return nil, err
		}
		els, err := parseElse(c, item)
		if err != nil {
			return nil, err
		}
		return &ast.IfLet[T]{Token: tok, Pattern: pattern, Value: value, Body: body, Else: els}, nil

	case c.Is(0, ast.IF):
		tok := c.Next().Token
		cond, err := parseHeadExpr(c)
		if err != nil {
			return nil, err
		}
		body, err := parseBody(c, item)
		if err != nil {
			return nil, err
		}
		els, err := parseElse(c, item)
		if err != nil {
			return nil, err
		}
		return &ast.If[T]{Token: tok, Cond: cond, Body: body, Else: els}, nil

	case c.Is(0, ast.FOR):
		tok := c.Next().Token
		pattern := c.Until(func(t ast.Tree) bool { return t.Is(ast.IN) })
		if len(pattern) == 0 {
			return nil, c.Error(diag.Grammar, MsgPattern)
		}
		if _, err := c.Expect(ast.IN, MsgIn); err != nil {
			return nil, err
		}
		iter, err := parseHeadExpr(c)
		if err != nil {
			return nil, err
		}
		body, err := parseBody(c, item)
		if err != nil {
			return nil, err
		}
		return &ast.For[T]{Token: tok, Pattern: ast.Expr{Trees: pattern}, Iter: iter, Body: body}, nil

	case c.Is(0, ast.WHILE) && c.Is(1, ast.LET):
		tok := c.Next().Token
		c.Next()
		pattern, value, err := parseLetHeader(c)
		if err != nil {
			return nil, err
		}
		body, err := parseBody(c, item)
		if err != nil {
			return nil, err
		}
		return &ast.WhileLet[T]{Token: tok, Pattern: pattern, Value: value, Body: body}, nil

	case c.Is(0, ast.WHILE):
		tok := c.Next().Token
		cond, err := parseHeadExpr(c)
		if err != nil {
			return nil, err
		}
		body, err := parseBody(c, item)
		if err != nil {
			return nil, err
		}
		return &ast.While[T]{Token: tok, Cond: cond, Body: body}, nil
	}
	return nil, c.Error(diag.Grammar, MsgFlow)
}

// parseElse parses an optional `'else' flow`. The chained flow may be any
// flow; only if/if-let can chain further, since the others take no else.
func parseElse[T ast.Node](c *cursor.Cursor, item func(*cursor.Cursor) (T, error)) (ast.Flow[T], error) {
	if !c.Is(0, ast.ELSE) {
		return nil, nil
	}
	c.Next()
	return parseFlow(c, item)
}

// parseBody parses `'{' control* '}'` where control is break, continue, an
// item or a stray ';'.
func parseBody[T ast.Node](c *cursor.Cursor, item func(*cursor.Cursor) (T, error)) ([]ast.Control[T], error) {
	inner, _, err := c.Group(ast.LBRACE, MsgFlowBody)
	if err != nil {
		return nil, err
	}
	var body []ast.Control[T]
	for !inner.IsEmpty() {
		if inner.Skip(ast.SEMICOLON) > 0 {
			continue
		}
		tok := inner.Peek().Token
		switch {
		case inner.Is(0, ast.BREAK):
			inner.Next()
			body = append(body, ast.Control[T]{Kind: ast.ControlBreak, Token: tok})
		case inner.Is(0, ast.CONTINUE):
			inner.Next()
			body = append(body, ast.Control[T]{Kind: ast.ControlContinue, Token: tok})
		default:
			it, err := item(inner)
			if err != nil {
				return nil, err
			}
			body = append(body, ast.Control[T]{Kind: ast.ControlItem, Token: tok, Item: it})
		}
	}
	return body, nil
}

// parseLetHeader parses `PATTERN '=' EXPR` after 'if let' / 'while let'.
func parseLetHeader(c *cursor.Cursor) (pattern, value ast.Expr, err error) {
	trees := c.Until(func(t ast.Tree) bool { return t.Is(ast.ASSIGN) })
	if len(trees) == 0 {
		return ast.Expr{}, ast.Expr{}, c.Error(diag.Grammar, MsgPattern)
	}
	if _, err := c.Expect(ast.ASSIGN, MsgLetAssign); err != nil {
		return ast.Expr{}, ast.Expr{}, err
	}
	value, err = parseHeadExpr(c)
	if err != nil {
		return ast.Expr{}, ast.Expr{}, err
	}
	return ast.Expr{Trees: trees}, value, nil
}

// parseHeadExpr reads an opaque header expression up to the body group.
func parseHeadExpr(c *cursor.Cursor) (ast.Expr, error) {
	trees := c.Until(func(t ast.Tree) bool { return t.Is(ast.LBRACE) })
	if len(trees) == 0 {
		return ast.Expr{}, c.Error(diag.Grammar, MsgExpression)
	}
	return ast.Expr{Trees: trees}, nil
}
