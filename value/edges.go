package value

import (
	"github.com/metaphox/spawnc/ast"
	"github.com/metaphox/spawnc/cursor"
	"github.com/metaphox/spawnc/diag"
)

// parseSlots reads one to four whitespace-separated slots.
func parseSlots(c *cursor.Cursor) ([]ast.Slot, error) {
	var slots []ast.Slot
	for !c.IsEmpty() && len(slots) < 4 {
		s, err := ParseSlot(c)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	if !c.IsEmpty() || len(slots) == 0 {
		return nil, c.Error(diag.Literal, MsgSlots)
	}
	return slots, nil
}

// ParseEdges parses a complete e! argument and expands it CSS-style:
//
//	a        top=right=bottom=left=a
//	a b      top=bottom=a  right=left=b
//	a b c    top=a  right=left=b  bottom=c
//	a b c d  top right bottom left
func ParseEdges(c *cursor.Cursor) (ast.Edges, error) {
	tok := c.Peek().Token
	s, err := parseSlots(c)
	if err != nil {
		return ast.Edges{}, err
	}
	e := ast.Edges{Token: tok}
	switch len(s) {
	case 1:
		e.Top, e.Right, e.Bottom, e.Left = s[0], s[0], s[0], s[0]
	case 2:
		e.Top, e.Right, e.Bottom, e.Left = s[0], s[1], s[0], s[1]
	case 3:
		e.Top, e.Right, e.Bottom, e.Left = s[0], s[1], s[2], s[1]
	case 4:
		e.Top, e.Right, e.Bottom, e.Left = s[0], s[1], s[2], s[3]
	}
	return e, nil
}

// ParseTurns parses a complete t! argument into the four corners, clockwise
// from top-left:
//
//	a        every corner
//	a b      top_left=top_right=a  bottom_right=bottom_left=b
//	a b c    top_left=a  top_right=bottom_right=b  bottom_left=c
//	a b c d  positional
func ParseTurns(c *cursor.Cursor) (ast.Turns, error) {
	tok := c.Peek().Token
	s, err := parseSlots(c)
	if err != nil {
		return ast.Turns{}, err
	}
	t := ast.Turns{Token: tok}
	switch len(s) {
	case 1:
		t.TopLeft, t.TopRight, t.BottomRight, t.BottomLeft = s[0], s[0], s[0], s[0]
	case 2:
		t.TopLeft, t.TopRight, t.BottomRight, t.BottomLeft = s[0], s[0], s[1], s[1]
	case 3:
		t.TopLeft, t.TopRight, t.BottomRight, t.BottomLeft = s[0], s[1], s[1], s[2]
	case 4:
		t.TopLeft, t.TopRight, t.BottomRight, t.BottomLeft = s[0], s[1], s[2], s[3]
	}
	return t, nil
}
