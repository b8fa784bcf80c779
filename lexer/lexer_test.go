// Package lexer_test contains integration-style tests for the host lexer.
//
// Tests are organised by category:
//   - TestLexer_Keywords        the keywords the grammars inspect
//   - TestLexer_Punctuation     dedicated and generic punctuation, multi-char
//   - TestLexer_Literals_Number integers, floats, unit and hex suffixes
//   - TestLexer_Literals_String every host string form
//   - TestLexer_Identifiers     plain, raw and ident-vs-keyword boundary
//   - TestLexer_Comments        line and block comments are skipped
//   - TestLexer_NestedComments  block comments nest
//   - TestLexer_Illegal         unscannable input and recovery
//   - TestLexer_Position        line, column and offset tracking
//   - TestLexer_Program         end-to-end spawn! invocation
//   - TestTrees_*               delimiter folding and its errors
package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaphox/spawnc/ast"
	"github.com/metaphox/spawnc/diag"
	"github.com/metaphox/spawnc/lexer"
)

// tokenCase is a single (type, literal) expectation used in table-driven tests.
type tokenCase struct {
	expectedType    ast.TokenType
	expectedLiteral string
}

// runCases calls NextToken for each case in want and fails the test on mismatch.
func runCases(t *testing.T, input string, want []tokenCase) {
	t.Helper()
	l := lexer.New(input)
	for i, tc := range want {
		tok := l.NextToken()
		assert.Equal(t, tc.expectedType, tok.Type, "case %d: type (literal %q)", i, tok.Literal)
		assert.Equal(t, tc.expectedLiteral, tok.Literal, "case %d: literal", i)
	}
}

// ── Keywords ──────────────────────────────────────────────────────────────────

// TestLexer_Keywords verifies that every inspected keyword is recognised and
// that other host keywords stay IDENT.
func TestLexer_Keywords(t *testing.T) {
	input := `if else for in while let break continue _ match move mut`

	want := []tokenCase{
		{ast.IF, "if"},
		{ast.ELSE, "else"},
		{ast.FOR, "for"},
		{ast.IN, "in"},
		{ast.WHILE, "while"},
		{ast.LET, "let"},
		{ast.BREAK, "break"},
		{ast.CONTINUE, "continue"},
		{ast.UNDERSCORE, "_"},
		{ast.IDENT, "match"},
		{ast.IDENT, "move"},
		{ast.IDENT, "mut"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// TestLexer_KeywordBoundary verifies that identifiers starting with a keyword
// prefix are not split.
func TestLexer_KeywordBoundary(t *testing.T) {
	input := `iffy format _x letter inner`
	want := []tokenCase{
		{ast.IDENT, "iffy"},
		{ast.IDENT, "format"},
		{ast.IDENT, "_x"},
		{ast.IDENT, "letter"},
		{ast.IDENT, "inner"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// ── Punctuation ───────────────────────────────────────────────────────────────

// TestLexer_Punctuation verifies dedicated punctuation types and that
// multi-character operators are scanned as one PUNCT token.
func TestLexer_Punctuation(t *testing.T) {
	input := `. , ; > + = # @ ! % :: -> => == != <= >= && || .. ..= ... : - * / & | < ?`

	want := []tokenCase{
		{ast.DOT, "."},
		{ast.COMMA, ","},
		{ast.SEMICOLON, ";"},
		{ast.GT, ">"},
		{ast.PLUS, "+"},
		{ast.ASSIGN, "="},
		{ast.HASH, "#"},
		{ast.AT, "@"},
		{ast.BANG, "!"},
		{ast.PERCENT, "%"},
		{ast.PUNCT, "::"},
		{ast.PUNCT, "->"},
		{ast.PUNCT, "=>"},
		{ast.PUNCT, "=="},
		{ast.PUNCT, "!="},
		{ast.PUNCT, "<="},
		{ast.PUNCT, ">="},
		{ast.PUNCT, "&&"},
		{ast.PUNCT, "||"},
		{ast.PUNCT, ".."},
		{ast.PUNCT, "..="},
		{ast.PUNCT, "..."},
		{ast.PUNCT, ":"},
		{ast.PUNCT, "-"},
		{ast.PUNCT, "*"},
		{ast.PUNCT, "/"},
		{ast.PUNCT, "&"},
		{ast.PUNCT, "|"},
		{ast.PUNCT, "<"},
		{ast.PUNCT, "?"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// TestLexer_ClosingAngles verifies that '>>' is two GT tokens so nested
// generic argument lists close one level at a time.
func TestLexer_ClosingAngles(t *testing.T) {
	input := `Vec<Vec<u8>>`
	want := []tokenCase{
		{ast.IDENT, "Vec"},
		{ast.PUNCT, "<"},
		{ast.IDENT, "Vec"},
		{ast.PUNCT, "<"},
		{ast.IDENT, "u8"},
		{ast.GT, ">"},
		{ast.GT, ">"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// TestLexer_DelimitersAndDots verifies the tokens that open an extension and
// a children group.
func TestLexer_DelimitersAndDots(t *testing.T) {
	input := `(Node).observe(f).[{}]`
	want := []tokenCase{
		{ast.LPAREN, "("},
		{ast.IDENT, "Node"},
		{ast.RPAREN, ")"},
		{ast.DOT, "."},
		{ast.IDENT, "observe"},
		{ast.LPAREN, "("},
		{ast.IDENT, "f"},
		{ast.RPAREN, ")"},
		{ast.DOT, "."},
		{ast.LBRACKET, "["},
		{ast.LBRACE, "{"},
		{ast.RBRACE, "}"},
		{ast.RBRACKET, "]"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// ── Literals ──────────────────────────────────────────────────────────────────

// TestLexer_Literals_Number verifies that numeric suffixes stay attached to
// the literal and that INT/FLOAT classification ignores the suffix.
func TestLexer_Literals_Number(t *testing.T) {
	input := `10 10px 2.5vw 1e3 0xff 62a7ff 1_000 1..5`
	want := []tokenCase{
		{ast.INT, "10"},
		{ast.INT, "10px"},
		{ast.FLOAT, "2.5vw"},
		{ast.FLOAT, "1e3"},
		{ast.INT, "0xff"},
		{ast.INT, "62a7ff"},
		{ast.INT, "1_000"},
		{ast.INT, "1"},
		{ast.PUNCT, ".."},
		{ast.INT, "5"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// TestSplitNumber verifies the numeric part / suffix split.
func TestSplitNumber(t *testing.T) {
	cases := []struct {
		lit    string
		num    string
		frac   bool
		exp    bool
		suffix string
	}{
		{"10", "10", false, false, ""},
		{"10px", "10", false, false, "px"},
		{"2.5vw", "2.5", true, false, "vw"},
		{"1e3", "1e3", false, true, ""},
		{"1.5e-2vmin", "1.5e-2", true, true, "vmin"},
		{"0xffu8", "0xff", false, false, "u8"},
		{"62a7ff", "62", false, false, "a7ff"},
		{"1_000", "1_000", false, false, ""},
		{"3em", "3", false, false, "em"},
	}
	for _, c := range cases {
		num, frac, exp, suffix := lexer.SplitNumber(c.lit)
		assert.Equal(t, c.num, num, c.lit)
		assert.Equal(t, c.frac, frac, c.lit)
		assert.Equal(t, c.exp, exp, c.lit)
		assert.Equal(t, c.suffix, suffix, c.lit)
	}
}

// TestLexer_Literals_String verifies that every string form is one STRING
// token whose literal is the raw source text, quotes included.
func TestLexer_Literals_String(t *testing.T) {
	input := `"hi" "a\"b" b"raw" r"c:\x" r#"q"uote"#`
	want := []tokenCase{
		{ast.STRING, `"hi"`},
		{ast.STRING, `"a\"b"`},
		{ast.STRING, `b"raw"`},
		{ast.STRING, `r"c:\x"`},
		{ast.STRING, `r#"q"uote"#`},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// TestLexer_Literals_CharAndLifetime verifies the char/lifetime boundary.
func TestLexer_Literals_CharAndLifetime(t *testing.T) {
	input := `'a' '\n' 'outer b'x'`
	want := []tokenCase{
		{ast.CHAR, `'a'`},
		{ast.CHAR, `'\n'`},
		{ast.LIFETIME, `'outer`},
		{ast.CHAR, `b'x'`},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// ── Identifiers ───────────────────────────────────────────────────────────────

// TestLexer_Identifiers verifies plain, raw and unicode identifiers.
func TestLexer_Identifiers(t *testing.T) {
	input := `commands r#type Node2D größe`
	want := []tokenCase{
		{ast.IDENT, "commands"},
		{ast.IDENT, "r#type"},
		{ast.IDENT, "Node2D"},
		{ast.IDENT, "größe"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// ── Comments ──────────────────────────────────────────────────────────────────

// TestLexer_Comments verifies that line and block comments produce no tokens.
func TestLexer_Comments(t *testing.T) {
	input := "a // line\nb /* block\n spanning */ c"
	want := []tokenCase{
		{ast.IDENT, "a"},
		{ast.IDENT, "b"},
		{ast.IDENT, "c"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// TestLexer_NestedComments verifies that block comments nest: the comment
// ends at the matching close, not the first one.
func TestLexer_NestedComments(t *testing.T) {
	input := "/* outer /* inner */ still ( a comment */ x /**/ y /* a */ ( /* b */ )"
	want := []tokenCase{
		{ast.IDENT, "x"},
		{ast.IDENT, "y"},
		{ast.LPAREN, "("},
		{ast.RPAREN, ")"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)

	toks := lexer.Tokenize(input)
	assert.Equal(t, 43, toks[0].Col, "x column")
	_, _, err := lexer.Scan(input)
	assert.NoError(t, err)
}

// ── Illegal input ─────────────────────────────────────────────────────────────

// TestLexer_Illegal verifies that an unscannable rune becomes ILLEGAL and
// scanning resumes right after it with correct positions.
func TestLexer_Illegal(t *testing.T) {
	l := lexer.New(`a \ b`)

	a := l.NextToken()
	require.Equal(t, ast.IDENT, a.Type)
	require.Equal(t, "a", a.Literal)

	bad := l.NextToken()
	assert.Equal(t, ast.ILLEGAL, bad.Type)
	assert.Equal(t, `\`, bad.Literal)
	assert.Equal(t, 3, bad.Col)

	b := l.NextToken()
	assert.Equal(t, ast.IDENT, b.Type)
	assert.Equal(t, "b", b.Literal)
	assert.Equal(t, 5, b.Col)
	assert.Equal(t, 4, b.Offset)

	assert.Equal(t, ast.EOF, l.NextToken().Type)
	// EOF is sticky.
	assert.Equal(t, ast.EOF, l.NextToken().Type)
}

// ── Position tracking ─────────────────────────────────────────────────────────

// TestLexer_Position verifies that tokens carry correct line, column and
// byte offset.
func TestLexer_Position(t *testing.T) {
	input := "spawn! {\n  (Node)\n}"
	l := lexer.New(input)

	type posCase struct {
		lit    string
		line   int
		col    int
		offset int
	}
	cases := []posCase{
		{"spawn", 1, 1, 0},
		{"!", 1, 6, 5},
		{"{", 1, 8, 7},
		{"(", 2, 3, 11},
		{"Node", 2, 4, 12},
		{")", 2, 8, 16},
		{"}", 3, 1, 18},
	}

	for i, c := range cases {
		tok := l.NextToken()
		assert.Equal(t, c.lit, tok.Literal, "case %d: literal", i)
		assert.Equal(t, c.line, tok.Line, "case %d (%q): line", i, c.lit)
		assert.Equal(t, c.col, tok.Col, "case %d (%q): col", i, c.lit)
		assert.Equal(t, c.offset, tok.Offset, "case %d (%q): offset", i, c.lit)
	}
}

// TestLexer_PositionUnicode verifies that columns count runes, not bytes.
func TestLexer_PositionUnicode(t *testing.T) {
	l := lexer.New(`"é" x`)
	l.NextToken()
	x := l.NextToken()
	assert.Equal(t, 5, x.Col)
	assert.Equal(t, 5, x.Offset)
}

// ── End-to-end program snippet ────────────────────────────────────────────────

// TestLexer_Program tokenises a spawn! body and verifies the complete token
// stream.
func TestLexer_Program(t *testing.T) {
	input := `commands;
root (Node { width: v!(100%), ..default() }).[
    button (Button, BackgroundColor(c!(#62a7ff)));
]`

	want := []tokenCase{
		{ast.IDENT, "commands"},
		{ast.SEMICOLON, ";"},

		{ast.IDENT, "root"},
		{ast.LPAREN, "("},
		{ast.IDENT, "Node"},
		{ast.LBRACE, "{"},
		{ast.IDENT, "width"},
		{ast.PUNCT, ":"},
		{ast.IDENT, "v"},
		{ast.BANG, "!"},
		{ast.LPAREN, "("},
		{ast.INT, "100"},
		{ast.PERCENT, "%"},
		{ast.RPAREN, ")"},
		{ast.COMMA, ","},
		{ast.PUNCT, ".."},
		{ast.IDENT, "default"},
		{ast.LPAREN, "("},
		{ast.RPAREN, ")"},
		{ast.RBRACE, "}"},
		{ast.RPAREN, ")"},
		{ast.DOT, "."},
		{ast.LBRACKET, "["},

		{ast.IDENT, "button"},
		{ast.LPAREN, "("},
		{ast.IDENT, "Button"},
		{ast.COMMA, ","},
		{ast.IDENT, "BackgroundColor"},
		{ast.LPAREN, "("},
		{ast.IDENT, "c"},
		{ast.BANG, "!"},
		{ast.LPAREN, "("},
		{ast.HASH, "#"},
		{ast.INT, "62a7ff"},
		{ast.RPAREN, ")"},
		{ast.RPAREN, ")"},
		{ast.RPAREN, ")"},
		{ast.SEMICOLON, ";"},
		{ast.RBRACKET, "]"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// ── Token trees ───────────────────────────────────────────────────────────────

// TestTrees_Nesting verifies that delimiters fold into groups.
func TestTrees_Nesting(t *testing.T) {
	trees, eof, err := lexer.Scan(`a (b [c] {d}) e`)
	require.NoError(t, err)
	assert.Equal(t, ast.EOF, eof.Type)
	assert.Equal(t, 15, eof.Offset)
	require.Len(t, trees, 3)

	group := trees[1]
	require.True(t, group.IsGroup(), group.String())
	require.True(t, group.Is(ast.LPAREN), group.String())
	assert.Equal(t, ")", group.Close.Literal)
	require.Len(t, group.Children, 3)

	bracket := group.Children[1]
	assert.True(t, bracket.Is(ast.LBRACKET), bracket.String())
	require.Len(t, bracket.Children, 1)
	assert.Equal(t, "c", bracket.Children[0].Token.Literal)
	assert.Equal(t, 13, group.End())
}

// TestTrees_SourceSlice verifies that the exact original text of a tree
// range is recoverable, comments included.
func TestTrees_SourceSlice(t *testing.T) {
	src := `x (a,  /* c */ b) y`
	trees, _, err := lexer.Scan(src)
	require.NoError(t, err)
	s := &ast.Source{Text: src}
	assert.Equal(t, `(a,  /* c */ b) y`, s.Slice(trees[1:]))
	assert.Equal(t, `(a , b)`, ast.JoinTrees(trees[1:2]))
}

// TestTrees_Errors verifies every delimiter error and its kind.
func TestTrees_Errors(t *testing.T) {
	cases := []struct {
		input string
		kind  diag.Kind
		msg   string
		col   int
	}{
		{`a )`, diag.Grammar, "unexpected closing delimiter ')'", 3},
		{`(]`, diag.Grammar, "mismatched closing delimiter: expected ')', found ']'", 2},
		{`( [`, diag.Incomplete, "unclosed delimiter '['", 3},
		{`{ (a) `, diag.Incomplete, "unclosed delimiter '{'", 1},
		{`x "abc`, diag.Incomplete, "unterminated string literal", 3},
		{`a \ b`, diag.Lexical, `unexpected character '\'`, 3},
		{"x /* a /* b */ c", diag.Incomplete, "unterminated block comment", 3},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			_, _, err := lexer.Scan(c.input)
			d, ok := diag.As(err)
			require.True(t, ok, "expected a diagnostic, got %v", err)
			assert.Equal(t, c.kind, d.Kind)
			assert.Equal(t, c.msg, d.Msg)
			assert.Equal(t, c.col, d.Pos.Col)
		})
	}
}
