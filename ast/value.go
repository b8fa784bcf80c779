package ast

import "fmt"

// ── Dimension values (v!) ─────────────────────────────────────────────────────

// Unit is the unit tag of a dimension value.
type Unit int

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercent
	UnitVw
	UnitVh
	UnitVMin
	UnitVMax
)

var unitNames = [...]string{"auto", "px", "%", "vw", "vh", "vmin", "vmax"}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Dimension is a parsed v! literal.
//
//	auto  @  10px  12.5%  50vw  {gap * 2.0}px
//
// Computed is set for the {EXPR}UNIT form; Value is then unused.
type Dimension struct {
	Token    Token // first token of the literal
	Unit     Unit
	Value    float64
	Computed *Expr
}

func (d Dimension) Pos() Pos { return d.Token.Pos() }
func (d Dimension) String() string {
	if d.Unit == UnitAuto {
		return "auto"
	}
	if d.Computed != nil {
		return "{" + d.Computed.String() + "}" + d.Unit.String()
	}
	return fmt.Sprintf("%g%s", d.Value, d.Unit)
}

// Slot is one position of an edges or turns literal: a dimension, or the
// '_' marker meaning "use the default value".
type Slot struct {
	Omit  bool
	Value Dimension
}

func (s Slot) String() string {
	if s.Omit {
		return "_"
	}
	return s.Value.String()
}

// Edges is a parsed e! literal expanded to its four sides.
type Edges struct {
	Token                    Token
	Top, Right, Bottom, Left Slot
}

func (e Edges) Pos() Pos { return e.Token.Pos() }
func (e Edges) String() string {
	return fmt.Sprintf("top=%s right=%s bottom=%s left=%s", e.Top, e.Right, e.Bottom, e.Left)
}

// Turns is a parsed t! literal expanded to its four corners.
type Turns struct {
	Token                                      Token
	TopLeft, TopRight, BottomRight, BottomLeft Slot
}

func (t Turns) Pos() Pos { return t.Token.Pos() }
func (t Turns) String() string {
	return fmt.Sprintf("top_left=%s top_right=%s bottom_right=%s bottom_left=%s",
		t.TopLeft, t.TopRight, t.BottomRight, t.BottomLeft)
}

// ── Colours (c!) ──────────────────────────────────────────────────────────────

// ColorSpace is the colour space of a colour literal.
type ColorSpace int

const (
	Srgba ColorSpace = iota
	LinearRgba
	Hsla
	Hsva
	Hwba
	Laba
	Lcha
	Oklaba
	Oklcha
	Xyza
)

// colorSpaceTypes holds the host type name of every colour space.
var colorSpaceTypes = [...]string{
	"Srgba", "LinearRgba", "Hsla", "Hsva", "Hwba", "Laba", "Lcha", "Oklaba", "Oklcha", "Xyza",
}

// TypeName returns the host type constructed for the colour space.
func (c ColorSpace) TypeName() string {
	if int(c) < len(colorSpaceTypes) {
		return colorSpaceTypes[c]
	}
	return fmt.Sprintf("ColorSpace(%d)", int(c))
}

func (c ColorSpace) String() string { return c.TypeName() }

// ColorKind tells which notation a colour literal used.
type ColorKind int

const (
	ColorHex ColorKind = iota
	ColorFunc
	ColorNamed
	// ColorUnknown is an identifier outside the colour vocabulary (or no
	// identifier at all). It generates a placeholder that keeps editor
	// completion working and fails host compilation.
	ColorUnknown
)

// Color is a parsed c! literal.
type Color struct {
	Token      Token // first token of the colour itself (after any '!')
	Kind       ColorKind
	Bare       bool // leading '!': emit the colour-space value without the Color wrapper
	Space      ColorSpace
	Components [4]float64
	Name       string // CSS name for ColorNamed, the identifier for ColorUnknown
}

func (c Color) Pos() Pos { return c.Token.Pos() }
func (c Color) String() string {
	prefix := ""
	if c.Bare {
		prefix = "!"
	}
	switch c.Kind {
	case ColorNamed, ColorUnknown:
		return prefix + c.Name
	}
	v := c.Components
	return fmt.Sprintf("%s%s(%g, %g, %g, %g)", prefix, c.Space, v[0], v[1], v[2], v[3])
}
