package value

import (
	"strconv"
	"strings"

	"github.com/metaphox/spawnc/ast"
	"github.com/metaphox/spawnc/cursor"
	"github.com/metaphox/spawnc/diag"
)

// Diagnostic messages.
const (
	MsgHex         = "invalid hex color"
	MsgHexMissing  = "expected hex color"
	MsgParenthesis = "expected parenthesis"
	MsgComponents  = "expected 3 or 4 components"
)

// NamedColor is one entry of the CSS named colour table.
type NamedColor struct {
	Name string
	Hex  string // "#rrggbb", or the keyword itself for transparent
	RGBA [4]float64
}

var colorFuncs = map[string]ast.ColorSpace{
	"srgb":   ast.Srgba,
	"linear": ast.LinearRgba,
	"hsl":    ast.Hsla,
	"hsv":    ast.Hsva,
	"hwb":    ast.Hwba,
	"lab":    ast.Laba,
	"lch":    ast.Lcha,
	"oklab":  ast.Oklaba,
	"oklch":  ast.Oklcha,
	"xyz":    ast.Xyza,
}

// FuncNames lists the functional notations in their canonical order.
var FuncNames = []string{"srgb", "linear", "hsl", "hsv", "hwb", "lab", "lch", "oklab", "oklch", "xyz"}

var cssByName = func() map[string]NamedColor {
	m := make(map[string]NamedColor, len(cssColors))
	for _, c := range cssColors {
		m[c.Name] = c
	}
	return m
}()

// LookupNamed returns the table entry for a CSS colour keyword.
func LookupNamed(name string) (NamedColor, bool) {
	c, ok := cssByName[name]
	return c, ok
}

// NamedColors returns the CSS table in declaration order.
func NamedColors() []NamedColor {
	out := make([]NamedColor, len(cssColors))
	copy(out, cssColors)
	return out
}

// Keywords returns every identifier the colour grammar accepts: the CSS
// names followed by the functional notations.
func Keywords() []string {
	out := make([]string, 0, len(cssColors)+len(FuncNames))
	for _, c := range cssColors {
		out = append(out, c.Name)
	}
	return append(out, FuncNames...)
}

// ParseColor parses a complete c! argument:
//
//	'!'? ( '#' HEX | FUNC '(' n, n, n [, n] ')' | NAME )
//
// An identifier outside the vocabulary (or no colour at all) is not an
// error: it yields a ColorUnknown literal, see [UnknownWarning].
func ParseColor(c *cursor.Cursor) (ast.Color, error) {
	col := ast.Color{}
	if c.Is(0, ast.BANG) {
		c.Next()
		col.Bare = true
	}
	col.Token = c.Peek().Token

	switch {
	case c.Is(0, ast.HASH):
		c.Next()
		if err := parseHex(c, &col); err != nil {
			return ast.Color{}, err
		}

	case c.Is(0, ast.IDENT):
		name := c.Next().Token
		if space, ok := colorFuncs[name.Literal]; ok {
			if err := parseFunc(c, name, space, &col); err != nil {
				return ast.Color{}, err
			}
			break
		}
		if named, ok := cssByName[name.Literal]; ok {
			col.Kind = ast.ColorNamed
			col.Space = ast.Srgba
			col.Name = named.Name
			col.Components = named.RGBA
			break
		}
		col.Kind = ast.ColorUnknown
		col.Name = name.Literal

	default:
		col.Kind = ast.ColorUnknown
	}
	return col, c.ExpectEnd()
}

func parseHex(c *cursor.Cursor, col *ast.Color) error {
	tok := c.Peek()
	if !tok.Is(ast.IDENT) && !tok.Is(ast.INT) && !tok.Is(ast.FLOAT) {
		return c.Error(diag.Literal, MsgHexMissing)
	}
	c.Next()
	rgba, ok := decodeHex(tok.Token.Literal)
	if !ok {
		return diag.New(diag.Literal, tok.Pos(), MsgHex)
	}
	col.Kind = ast.ColorHex
	col.Space = ast.Srgba
	col.Components = rgba
	return nil
}

// decodeHex decodes 3, 4, 6 or 8 hex digits. Short forms double each nibble
// (d*17), so #abc and #aabbcc decode identically.
func decodeHex(hex string) ([4]float64, bool) {
	var bytes []uint64
	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			d, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return [4]float64{}, false
			}
			bytes = append(bytes, d*17)
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			b, err := strconv.ParseUint(hex[i:i+2], 16, 8)
			if err != nil {
				return [4]float64{}, false
			}
			bytes = append(bytes, b)
		}
	default:
		return [4]float64{}, false
	}
	out := [4]float64{0, 0, 0, 1}
	for i, b := range bytes {
		out[i] = float64(b) / 255
	}
	return out, true
}

func parseFunc(c *cursor.Cursor, name ast.Token, space ast.ColorSpace, col *ast.Color) error {
	if !c.Is(0, ast.LPAREN) {
		return c.Error(diag.Literal, MsgParenthesis)
	}
	group := c.Next()
	args := cursor.Split(group.Children, ast.COMMA)
	if len(args) != 3 && len(args) != 4 {
		return diag.New(diag.Literal, name.Pos(), MsgComponents)
	}
	vals := [4]float64{0, 0, 0, 1}
	for i, arg := range args {
		v, err := parseComponent(arg, group.Close)
		if err != nil {
			return err
		}
		vals[i] = v
	}
	col.Kind = ast.ColorFunc
	col.Space = space
	col.Components = vals
	return nil
}

// parseComponent parses `'-'? NUMBER` with no suffix other than f32/f64.
func parseComponent(arg []ast.Tree, end ast.Token) (float64, error) {
	c := cursor.New(arg, end)
	neg := false
	if c.Is(0, ast.PUNCT) && c.Peek().Token.Literal == "-" {
		neg = true
		c.Next()
	}
	num := c.Peek()
	if !num.Is(ast.INT) && !num.Is(ast.FLOAT) {
		return 0, c.Error(diag.Literal, MsgNumber)
	}
	c.Next()
	v, suffix, err := ParseNumber(num.Token)
	if err != nil {
		return 0, err
	}
	if suffix != "" && suffix != "f32" && suffix != "f64" {
		return 0, diag.New(diag.Literal, num.Pos(), MsgNumber)
	}
	if !c.IsEmpty() {
		return 0, c.Error(diag.Literal, MsgNumber)
	}
	if neg {
		v = -v
	}
	return v, nil
}

// UnknownWarning describes a ColorUnknown literal, with "did you mean"
// suggestions drawn from the colour vocabulary.
func UnknownWarning(col ast.Color) *diag.Error {
	if col.Name == "" {
		return diag.Warnf(diag.Unknown, col.Pos(), "expected a color")
	}
	w := diag.Warnf(diag.Unknown, col.Pos(), "unknown color '%s'", col.Name)
	w.Hints = diag.Suggest(strings.ToLower(col.Name), Keywords(), 3)
	return w
}
