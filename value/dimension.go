// Package value implements the four value-literal micro-parsers:
//
//	v!  dimension  auto | @ | 10px | 50% | 2.5vw | {gap * 2.0}px
//	c!  colour     #rgb | #rrggbbaa | hsl(210, 0.5, 0.4) | firebrick | !#000
//	e!  edges      1-4 dimensions or '_' (top right bottom left)
//	t!  turns      1-4 dimensions or '_' (corners, clockwise from top-left)
//
// Parsers work on a [cursor.Cursor] over the macro argument and return the
// flat value AST from package ast. Malformed literals are reported as
// diag.Literal errors at the offending literal.
package value

import (
	"strconv"
	"strings"

	"github.com/metaphox/spawnc/ast"
	"github.com/metaphox/spawnc/cursor"
	"github.com/metaphox/spawnc/diag"
	"github.com/metaphox/spawnc/lexer"
)

// Diagnostic messages.
const (
	MsgInvalidValue = "invalid value"
	MsgNumber       = "expected float or int"
	MsgUnit         = "invalid unit, expected px, vw, vh, vmin, vmax or %"
	MsgSlots        = "expected 1-4 value or '_'"
)

var units = map[string]ast.Unit{
	"px":   ast.UnitPx,
	"vw":   ast.UnitVw,
	"vh":   ast.UnitVh,
	"vmin": ast.UnitVMin,
	"vmax": ast.UnitVMax,
}

// ParseDimension parses a complete v! argument.
func ParseDimension(c *cursor.Cursor) (ast.Dimension, error) {
	d, err := parseDimension(c)
	if err != nil {
		return ast.Dimension{}, err
	}
	return d, c.ExpectEnd()
}

// parseDimension parses one dimension literal and leaves the cursor after it.
func parseDimension(c *cursor.Cursor) (ast.Dimension, error) {
	first := c.Peek()
	switch {
	case first.Is(ast.IDENT):
		c.Next()
		if first.Token.Literal == "auto" {
			return ast.Dimension{Token: first.Token, Unit: ast.UnitAuto}, nil
		}
		return ast.Dimension{}, diag.New(diag.Literal, first.Pos(), MsgInvalidValue)

	case first.Is(ast.AT):
		c.Next()
		return ast.Dimension{Token: first.Token, Unit: ast.UnitAuto}, nil

	case first.Is(ast.LBRACE):
		return parseComputed(c)
	}

	neg := false
	if first.Is(ast.PUNCT) && first.Token.Literal == "-" {
		neg = true
		c.Next()
	}
	num := c.Peek()
	if !num.Is(ast.INT) && !num.Is(ast.FLOAT) {
		return ast.Dimension{}, c.Error(diag.Literal, MsgNumber)
	}
	c.Next()

	v, suffix, err := ParseNumber(num.Token)
	if err != nil {
		return ast.Dimension{}, err
	}
	if neg {
		v = -v
	}
	d := ast.Dimension{Token: first.Token, Value: v}

	if suffix == "" && c.Is(0, ast.PERCENT) {
		c.Next()
		d.Unit = ast.UnitPercent
		return d, nil
	}
	u, ok := units[suffix]
	if !ok {
		return ast.Dimension{}, diag.New(diag.Literal, num.Pos(), MsgUnit)
	}
	d.Unit = u
	return d, nil
}

// parseComputed parses `'{' EXPR '}' UNIT`. A unit identifier must touch the
// closing brace; '%' may be spaced.
func parseComputed(c *cursor.Cursor) (ast.Dimension, error) {
	group := c.Next()
	if len(group.Children) == 0 {
		return ast.Dimension{}, diag.New(diag.Literal, group.Close.Pos(), MsgNumber)
	}
	expr := &ast.Expr{Trees: group.Children}
	d := ast.Dimension{Token: group.Token, Computed: expr}

	if c.Is(0, ast.PERCENT) {
		c.Next()
		d.Unit = ast.UnitPercent
		return d, nil
	}
	unit := c.Peek()
	u, ok := units[unit.Token.Literal]
	if !unit.Is(ast.IDENT) || !ok || unit.Token.Offset != group.End() {
		return ast.Dimension{}, c.Error(diag.Literal, MsgUnit)
	}
	c.Next()
	d.Unit = u
	return d, nil
}

// ParseNumber converts an INT or FLOAT token to a float64 and returns the
// literal's suffix (unit, type suffix or "").
func ParseNumber(tok ast.Token) (float64, string, error) {
	num, frac, exp, suffix := lexer.SplitNumber(tok.Literal)
	var (
		v   float64
		err error
	)
	switch {
	case frac || exp:
		v, err = strconv.ParseFloat(strings.ReplaceAll(num, "_", ""), 64)
	case len(num) > 1 && num[0] == '0' && strings.ContainsAny(num[1:2], "xob"):
		var i int64
		i, err = strconv.ParseInt(num, 0, 64)
		v = float64(i)
	default:
		v, err = strconv.ParseFloat(strings.ReplaceAll(num, "_", ""), 64)
	}
	if err != nil {
		return 0, "", diag.New(diag.Literal, tok.Pos(), MsgNumber)
	}
	return v, suffix, nil
}

// ParseSlot parses a dimension or the '_' default marker.
func ParseSlot(c *cursor.Cursor) (ast.Slot, error) {
	if c.Is(0, ast.UNDERSCORE) {
		c.Next()
		return ast.Slot{Omit: true}, nil
	}
	d, err := parseDimension(c)
	if err != nil {
		return ast.Slot{}, err
	}
	return ast.Slot{Value: d}, nil
}
