// Package cursor provides the grammar primitives shared by the spawn and
// value-literal parsers: bounded lookahead over token trees, expectation
// helpers and delimited-group extraction.
//
// A [Cursor] never backtracks on its own. Parsers decide with [Cursor.Peek],
// [Cursor.PeekN] and [Cursor.Is] and then consume with [Cursor.Next],
// [Cursor.Expect] or [Cursor.Group]. [Cursor.Fork] gives a throwaway copy for
// the rare speculative scan.
package cursor

import (
	"fmt"

	"github.com/metaphox/spawnc/ast"
	"github.com/metaphox/spawnc/diag"
)

// Cursor is a position-tracked view over a slice of token trees.
type Cursor struct {
	trees []ast.Tree
	pos   int
	end   ast.Token
}

// New creates a cursor over trees. end is reported as the position of
// "unexpected end of input" errors: the closing delimiter of the enclosing
// group, or the EOF token.
func New(trees []ast.Tree, end ast.Token) *Cursor {
	return &Cursor{trees: trees, end: end}
}

// Peek returns the current tree without consuming it. At the end of input it
// returns a leaf holding an EOF token positioned at the end marker.
func (c *Cursor) Peek() ast.Tree { return c.PeekN(0) }

// PeekN returns the tree n positions ahead of the current one.
func (c *Cursor) PeekN(n int) ast.Tree {
	if i := c.pos + n; i < len(c.trees) {
		return c.trees[i]
	}
	eof := c.end
	eof.Type = ast.EOF
	eof.Literal = ""
	return ast.Tree{Token: eof}
}

// Is reports whether the tree n positions ahead has type tt.
func (c *Cursor) Is(n int, tt ast.TokenType) bool { return c.PeekN(n).Is(tt) }

// IsIdent reports whether the tree n positions ahead is the identifier name.
func (c *Cursor) IsIdent(n int, name string) bool {
	t := c.PeekN(n)
	return t.Is(ast.IDENT) && t.Token.Literal == name
}

// IsEmpty reports whether every tree has been consumed.
func (c *Cursor) IsEmpty() bool { return c.pos >= len(c.trees) }

// Pos returns the position of the current tree, or of the end marker.
func (c *Cursor) Pos() ast.Pos { return c.Peek().Pos() }

// End returns the end marker token.
func (c *Cursor) End() ast.Token { return c.end }

// Next consumes and returns the current tree.
func (c *Cursor) Next() ast.Tree {
	t := c.Peek()
	if c.pos < len(c.trees) {
		c.pos++
	}
	return t
}

// Skip consumes every consecutive tree of type tt and reports how many.
func (c *Cursor) Skip(tt ast.TokenType) int {
	n := 0
	for c.Is(0, tt) {
		c.pos++
		n++
	}
	return n
}

// Expect consumes the current tree if it has type tt; otherwise it returns a
// grammar error with msg at the current position.
func (c *Cursor) Expect(tt ast.TokenType, msg string) (ast.Tree, error) {
	if !c.Is(0, tt) {
		return ast.Tree{}, c.Error(diag.Grammar, msg)
	}
	return c.Next(), nil
}

// Group consumes a delimited group opened by open ('(', '[' or '{') and
// returns a cursor scoped exactly to its interior, plus the group itself.
func (c *Cursor) Group(open ast.TokenType, msg string) (*Cursor, ast.Tree, error) {
	t, err := c.Expect(open, msg)
	if err != nil {
		return nil, ast.Tree{}, err
	}
	return New(t.Children, t.Close), t, nil
}

// Until consumes trees up to (not including) the first one for which stop
// returns true, and returns them. Groups count as one tree, so stop only
// ever sees top-level trees.
func (c *Cursor) Until(stop func(ast.Tree) bool) []ast.Tree {
	start := c.pos
	for c.pos < len(c.trees) && !stop(c.trees[c.pos]) {
		c.pos++
	}
	return c.trees[start:c.pos]
}

// Rest consumes and returns every remaining tree.
func (c *Cursor) Rest() []ast.Tree {
	rest := c.trees[c.pos:]
	c.pos = len(c.trees)
	return rest
}

// Fork returns an independent copy of the cursor at the same position.
func (c *Cursor) Fork() *Cursor {
	cp := *c
	return &cp
}

// Error returns a diagnostic with a fixed message at the current position.
func (c *Cursor) Error(kind diag.Kind, msg string) *diag.Error {
	return diag.New(kind, c.Pos(), msg)
}

// Errorf returns a diagnostic of the given kind at the current position.
func (c *Cursor) Errorf(kind diag.Kind, format string, args ...any) *diag.Error {
	return diag.Errorf(kind, c.Pos(), format, args...)
}

// ExpectEnd returns a grammar error when input remains.
func (c *Cursor) ExpectEnd() error {
	if c.IsEmpty() {
		return nil
	}
	return c.Errorf(diag.Grammar, "unexpected %s", describe(c.Peek()))
}

func describe(t ast.Tree) string {
	switch t.Token.Type {
	case ast.IDENT, ast.INT, ast.FLOAT, ast.STRING, ast.CHAR, ast.LIFETIME, ast.PUNCT:
		return fmt.Sprintf("'%s'", t.Token.Literal)
	}
	return t.Token.Type.String()
}
