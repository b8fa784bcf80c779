package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/metaphox/spawnc/ast"
	"github.com/metaphox/spawnc/value"
)

var unitVariants = map[ast.Unit]string{
	ast.UnitPx:      "Px",
	ast.UnitPercent: "Percent",
	ast.UnitVw:      "Vw",
	ast.UnitVh:      "Vh",
	ast.UnitVMin:    "VMin",
	ast.UnitVMax:    "VMax",
}

// Value-literal output is a single expression on one line, mapped to the
// literal's position.

func (g *Generator) expression(pos ast.Pos, code string) *Output {
	g.w.emit(pos, code)
	out := g.output()
	out.Code = strings.TrimSuffix(out.Code, "\n")
	return out
}

// Dimension generates a v! expression.
func (g *Generator) Dimension(d ast.Dimension) (*Output, error) {
	g.reset()
	code, err := g.dimension(d)
	if err != nil {
		return nil, err
	}
	return g.expression(d.Pos(), code), nil
}

// Color generates a c! expression.
func (g *Generator) Color(c ast.Color) (*Output, error) {
	g.reset()
	if c.Kind == ast.ColorUnknown {
		g.warn(value.UnknownWarning(c))
	}
	return g.expression(c.Pos(), g.color(c)), nil
}

// Edges generates an e! expression.
func (g *Generator) Edges(e ast.Edges) (*Output, error) {
	g.reset()
	slots, err := g.fields([]field{{"top", e.Top}, {"right", e.Right}, {"bottom", e.Bottom}, {"left", e.Left}})
	if err != nil {
		return nil, err
	}
	return g.expression(e.Pos(), g.opts.Target.Rect+" { "+slots+" }"), nil
}

// Turns generates a t! expression.
func (g *Generator) Turns(t ast.Turns) (*Output, error) {
	g.reset()
	slots, err := g.fields([]field{
		{"top_left", t.TopLeft}, {"top_right", t.TopRight},
		{"bottom_right", t.BottomRight}, {"bottom_left", t.BottomLeft},
	})
	if err != nil {
		return nil, err
	}
	return g.expression(t.Pos(), g.opts.Target.Radius+" { "+slots+" }"), nil
}

func (g *Generator) dimension(d ast.Dimension) (string, error) {
	val := g.opts.Target.Val
	if d.Unit == ast.UnitAuto {
		return val + "::Auto", nil
	}
	variant, ok := unitVariants[d.Unit]
	if !ok {
		return "", fmt.Errorf("codegen: unexpected unit %s", d.Unit)
	}
	if d.Computed != nil {
		expr, err := g.opaque(*d.Computed)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s::%s((%s) as f32)", val, variant, expr), nil
	}
	return fmt.Sprintf("%s::%s(%s)", val, variant, formatFloat(d.Value)), nil
}

func (g *Generator) slot(s ast.Slot) (string, error) {
	if s.Omit {
		return g.opts.Target.Val + "::default()", nil
	}
	return g.dimension(s.Value)
}

type field struct {
	name string
	slot ast.Slot
}

// fields renders record fields as "name: value, ...".
func (g *Generator) fields(fs []field) (string, error) {
	parts := make([]string, 0, len(fs))
	for _, f := range fs {
		v, err := g.slot(f.slot)
		if err != nil {
			return "", err
		}
		parts = append(parts, f.name+": "+v)
	}
	return strings.Join(parts, ", "), nil
}

func (g *Generator) color(c ast.Color) string {
	use := "use " + g.opts.Target.Color + "::*;"
	if c.Kind == ast.ColorUnknown {
		return "{ " + use + " " + predefinedColor(c.Name) + " }"
	}
	v := c.Components
	typ := c.Space.TypeName()
	ctor := fmt.Sprintf("%s::new(%s, %s, %s, %s)", typ,
		formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2]), formatFloat(v[3]))
	if c.Kind == ast.ColorNamed {
		if nc, ok := value.LookupNamed(c.Name); ok {
			ctor = "{ " + colorDoc(nc) + " " + ctor + " }"
		}
	}
	if c.Bare {
		return "{ " + use + " " + ctor + " }"
	}
	return "{ " + use + " Color::" + typ + "(" + ctor + ") }"
}

// colorDoc renders a documented marker item so editors show the hex code
// and components of a named colour on hover.
func colorDoc(nc value.NamedColor) string {
	doc := fmt.Sprintf("**Hex** `%s`\\\n**R**   `%s`\\\n**G**   `%s`\\\n**B**   `%s`\\\n**A**   `%s`",
		nc.Hex, formatFloat(nc.RGBA[0]), formatFloat(nc.RGBA[1]), formatFloat(nc.RGBA[2]), formatFloat(nc.RGBA[3]))
	return "#[doc = " + strconv.Quote(doc) + "] struct ColorCode;"
}

// predefinedColor renders the placeholder for an unknown colour: an enum
// listing the whole vocabulary followed by a path into it. The path does
// not resolve to a colour, so host compilation fails at this spot while
// editors can still complete the name.
func predefinedColor(name string) string {
	var b strings.Builder
	b.WriteString("#[allow(non_camel_case_types)] enum PredefinedColor { ")
	for _, nc := range value.NamedColors() {
		b.WriteString(nc.Name)
		b.WriteString(", ")
	}
	for i, fn := range value.FuncNames {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fn + "(f32, f32, f32, f32)")
	}
	b.WriteString(" } PredefinedColor::")
	b.WriteString(name)
	return b.String()
}
