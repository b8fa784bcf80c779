package codegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaphox/spawnc/ast"
	"github.com/metaphox/spawnc/codegen"
	"github.com/metaphox/spawnc/cursor"
	"github.com/metaphox/spawnc/diag"
	"github.com/metaphox/spawnc/lexer"
	"github.com/metaphox/spawnc/value"
)

func valueCursor(t *testing.T, src string) *cursor.Cursor {
	t.Helper()
	trees, eof, err := lexer.Scan(src)
	require.NoError(t, err)
	return cursor.New(trees, eof)
}

func genDimension(t *testing.T, src string) string {
	t.Helper()
	d, err := value.ParseDimension(valueCursor(t, src))
	require.NoError(t, err)
	out, err := codegen.New(codegen.Options{Source: &ast.Source{Text: src}}).Dimension(d)
	require.NoError(t, err)
	return out.Code
}

func genColor(t *testing.T, src string) *codegen.Output {
	t.Helper()
	c, err := value.ParseColor(valueCursor(t, src))
	require.NoError(t, err)
	out, err := codegen.New(codegen.Options{}).Color(c)
	require.NoError(t, err)
	return out
}

func TestDimension(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"10px", "bevy::ui::Val::Px(10.0)"},
		{"10%", "bevy::ui::Val::Percent(10.0)"},
		{"2.5vw", "bevy::ui::Val::Vw(2.5)"},
		{"50vh", "bevy::ui::Val::Vh(50.0)"},
		{"1vmin", "bevy::ui::Val::VMin(1.0)"},
		{"1vmax", "bevy::ui::Val::VMax(1.0)"},
		{"-0.5px", "bevy::ui::Val::Px(-0.5)"},
		{"auto", "bevy::ui::Val::Auto"},
		{"{gap * 2.0}px", "bevy::ui::Val::Px((gap * 2.0) as f32)"},
		{"{ratio}%", "bevy::ui::Val::Percent((ratio) as f32)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, genDimension(t, tt.src))
		})
	}
}

func TestDimension_AutoAliases(t *testing.T) {
	assert.Equal(t, genDimension(t, "auto"), genDimension(t, "@"))
}

func TestDimension_SourceMap(t *testing.T) {
	d, err := value.ParseDimension(valueCursor(t, "  10px"))
	require.NoError(t, err)
	out, err := codegen.New(codegen.Options{}).Dimension(d)
	require.NoError(t, err)
	require.Len(t, out.Map, 1)
	assert.Equal(t, 1, out.Map[0].GenLine)
	assert.Equal(t, 3, out.Map[0].Pos.Col)
}

func TestEdges(t *testing.T) {
	e, err := value.ParseEdges(valueCursor(t, "10px 20px"))
	require.NoError(t, err)
	out, err := codegen.New(codegen.Options{}).Edges(e)
	require.NoError(t, err)
	assert.Equal(t, "bevy::ui::UiRect { "+
		"top: bevy::ui::Val::Px(10.0), right: bevy::ui::Val::Px(20.0), "+
		"bottom: bevy::ui::Val::Px(10.0), left: bevy::ui::Val::Px(20.0) }", out.Code)

	e, err = value.ParseEdges(valueCursor(t, "_ 5%"))
	require.NoError(t, err)
	out, err = codegen.New(codegen.Options{}).Edges(e)
	require.NoError(t, err)
	assert.Equal(t, "bevy::ui::UiRect { "+
		"top: bevy::ui::Val::default(), right: bevy::ui::Val::Percent(5.0), "+
		"bottom: bevy::ui::Val::default(), left: bevy::ui::Val::Percent(5.0) }", out.Code)
}

func TestTurns(t *testing.T) {
	tr, err := value.ParseTurns(valueCursor(t, "1px 2px 3px"))
	require.NoError(t, err)
	out, err := codegen.New(codegen.Options{}).Turns(tr)
	require.NoError(t, err)
	assert.Equal(t, "bevy::ui::BorderRadius { "+
		"top_left: bevy::ui::Val::Px(1.0), top_right: bevy::ui::Val::Px(2.0), "+
		"bottom_right: bevy::ui::Val::Px(2.0), bottom_left: bevy::ui::Val::Px(3.0) }", out.Code)
}

func TestTarget_Override(t *testing.T) {
	e, err := value.ParseEdges(valueCursor(t, "1px"))
	require.NoError(t, err)
	out, err := codegen.New(codegen.Options{Target: codegen.Target{Val: "Val"}}).Edges(e)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Code, "bevy::ui::UiRect { top: Val::Px(1.0),"), out.Code)
}

func TestColor(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"#fff", "{ use bevy::color::*; Color::Srgba(Srgba::new(1.0, 1.0, 1.0, 1.0)) }"},
		{"!#000", "{ use bevy::color::*; Srgba::new(0.0, 0.0, 0.0, 1.0) }"},
		{"hsl(210, 0.5, 0.4)", "{ use bevy::color::*; Color::Hsla(Hsla::new(210.0, 0.5, 0.4, 1.0)) }"},
		{"!oklch(0.7, 0.1, 200, 0.5)", "{ use bevy::color::*; Oklcha::new(0.7, 0.1, 200.0, 0.5) }"},
		{"linear(1, 0, 0)", "{ use bevy::color::*; Color::LinearRgba(LinearRgba::new(1.0, 0.0, 0.0, 1.0)) }"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			out := genColor(t, tt.src)
			assert.Equal(t, tt.want, out.Code)
			assert.Empty(t, out.Warnings)
		})
	}
}

func TestColor_Named(t *testing.T) {
	redDoc := "#[doc = \"**Hex** `#ff0000`\\\\\\n**R**   `1.0`\\\\\\n**G**   `0.0`\\\\\\n" +
		"**B**   `0.0`\\\\\\n**A**   `1.0`\"] struct ColorCode;"

	out := genColor(t, "red")
	assert.Equal(t, "{ use bevy::color::*; Color::Srgba({ "+redDoc+" Srgba::new(1.0, 0.0, 0.0, 1.0) }) }", out.Code)
	assert.Empty(t, out.Warnings)

	bare := genColor(t, "!red")
	assert.Equal(t, "{ use bevy::color::*; { "+redDoc+" Srgba::new(1.0, 0.0, 0.0, 1.0) } }", bare.Code)

	clear := genColor(t, "transparent")
	assert.Contains(t, clear.Code, "**Hex** `transparent`")
	assert.Contains(t, clear.Code, "Srgba::new(0.0, 0.0, 0.0, 0.0) }")
}

func TestColor_Unknown(t *testing.T) {
	out := genColor(t, "redd")
	assert.True(t, strings.HasPrefix(out.Code,
		"{ use bevy::color::*; #[allow(non_camel_case_types)] enum PredefinedColor { black, silver, "), out.Code)
	assert.Contains(t, out.Code, "transparent, srgb(f32, f32, f32, f32), linear(f32, f32, f32, f32),")
	assert.True(t, strings.HasSuffix(out.Code, "xyz(f32, f32, f32, f32) } PredefinedColor::redd }"), out.Code)

	require.Len(t, out.Warnings, 1)
	assert.Equal(t, diag.Unknown, out.Warnings[0].Kind)
	assert.Contains(t, out.Warnings[0].Hints, "red")

	empty := genColor(t, "")
	assert.True(t, strings.HasSuffix(empty.Code, "PredefinedColor:: }"), empty.Code)
}
