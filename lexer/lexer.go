// Package lexer implements the host-language lexer (tokeniser) used by every
// spawnc grammar.
//
// The lexer converts host source text into a flat stream of [ast.Token]
// values. Call [New] to create a lexer and then call [Lexer.NextToken]
// repeatedly until you receive a token with Type == [ast.EOF]. [Trees] folds
// that stream into delimited token trees, which is what the parsers consume.
//
// Design notes:
//   - Scanning is rule-based: an ordered participle rule set is tried at every
//     position and the first matching rule wins.
//   - Whitespace and comments are scanned as tokens and dropped silently.
//     Block comments nest as in Rust; an unterminated one yields a single
//     ILLEGAL "/*" token at its start.
//   - Line and column numbers are tracked for every token (1-based, columns
//     counted in runes). Byte offsets are kept so the exact original text of
//     any token range can be recovered.
//   - Identifiers are classified as keywords via [ast.LookupIdent] and
//     punctuation via [ast.LookupPunct]; this keeps the rule set small.
//   - Unscannable input produces one ILLEGAL token for the offending rune and
//     scanning resumes right after it.
package lexer

import (
	"unicode/utf8"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/metaphox/spawnc/ast"
)

// hostLexer is the ordered rule set. Order matters: strings before
// identifiers (b"..", r".."), chars before lifetimes, multi-character
// punctuation before single characters.
var hostLexer = plexer.MustStateful(plexer.Rules{
	"Root": {
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "BlockOpen", Pattern: `/\*`, Action: plexer.Push("Block")},
		{Name: "String", Pattern: `b?r##"(?s:.*?)"##|b?r#"(?s:.*?)"#|b?r"[^"]*"|b?"(?:[^"\\]|\\(?s:.))*"`},
		{Name: "Char", Pattern: `b?'(?:[^'\\\n]|\\(?:[nrt\\0'"]|x[0-9a-fA-F]{2}|u\{[0-9a-fA-F]{1,6}\}))'`},
		{Name: "Lifetime", Pattern: `'[\p{L}_][\p{L}\p{N}_]*`},
		{Name: "Number", Pattern: `[0-9][0-9_]*(?:\.[0-9][0-9_]*)?(?:[eE][+-]?[0-9][0-9_]*)?[\p{L}\p{N}_]*`},
		{Name: "Ident", Pattern: `r#[\p{L}_][\p{L}\p{N}_]*|[\p{L}_][\p{L}\p{N}_]*`},
		{Name: "Punct", Pattern: `::|->|=>|==|!=|<=|>=|&&|\|\||\.\.=|\.\.\.|\.\.|<<=|>>=|\+=|-=|\*=|/=|%=|\^=|&=|\|=|[-+*/%^!&|=<>@.,;:#$?~]`},
		{Name: "Delim", Pattern: `[{}()\[\]]`},
	},
	// Block comments nest.
	"Block": {
		{Name: "BlockOpen", Pattern: `/\*`, Action: plexer.Push("Block")},
		{Name: "BlockClose", Pattern: `\*/`, Action: plexer.Pop()},
		{Name: "BlockText", Pattern: `[^*/]+|[*/]`},
	},
})

var symbols = hostLexer.Symbols()

// Lexer holds all state required to tokenise a single source string.
// Create one with [New]; never copy a Lexer after first use.
type Lexer struct {
	input string
	lex   plexer.Lexer // current participle run over input[base:]
	base  int          // byte offset of the current run within input

	off  int // byte offset of the next unscanned character
	line int // 1-based line at off
	col  int // 1-based rune column at off

	comment ast.Token // outermost open block comment
	depth   int       // block comment nesting

	done bool
}

// New creates a [Lexer] that tokenises the given input string.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, col: 1}
	l.restart(0)
	return l
}

// NextToken returns the next token from the input.
//
// Whitespace and comments are skipped before each token. When the input is
// exhausted, NextToken returns a token with Type == [ast.EOF] on every
// subsequent call.
func (l *Lexer) NextToken() ast.Token {
	for {
		if l.done {
			return l.makeToken(ast.EOF, "")
		}
		tok, err := l.lex.Next()
		if err != nil {
			return l.illegal()
		}
		if tok.EOF() {
			l.advanceTo(len(l.input))
			l.done = true
			if l.depth > 0 {
				l.depth = 0
				return l.comment
			}
			continue
		}
		start := l.base + tok.Pos.Offset
		switch tok.Type {
		case symbols["BlockOpen"]:
			if l.depth == 0 {
				l.advanceTo(start)
				l.comment = l.makeToken(ast.ILLEGAL, tok.Value)
			}
			l.depth++
		case symbols["BlockClose"]:
			l.depth--
		}
		switch tok.Type {
		case symbols["Whitespace"], symbols["Comment"],
			symbols["BlockOpen"], symbols["BlockClose"], symbols["BlockText"]:
			l.advanceTo(start + len(tok.Value))
			continue
		}
		l.advanceTo(start)
		out := l.makeToken(classify(tok.Type, tok.Value), tok.Value)
		l.advanceTo(out.End())
		return out
	}
}

// Tokenize scans the whole input and returns every token including the
// trailing EOF.
func Tokenize(input string) []ast.Token {
	l := New(input)
	var toks []ast.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == ast.EOF {
			return toks
		}
	}
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// restart begins a fresh participle run at byte offset from.
func (l *Lexer) restart(from int) {
	l.base = from
	lex, err := hostLexer.LexString("", l.input[from:])
	if err != nil {
		l.done = true
		return
	}
	l.lex = lex
}

// illegal emits the rune the rule set could not match and resumes after it.
func (l *Lexer) illegal() ast.Token {
	if l.off >= len(l.input) {
		l.done = true
		return l.makeToken(ast.EOF, "")
	}
	_, size := utf8.DecodeRuneInString(l.input[l.off:])
	tok := l.makeToken(ast.ILLEGAL, l.input[l.off:l.off+size])
	l.advanceTo(l.off + size)
	l.restart(l.off)
	return tok
}

// advanceTo moves the position forward to byte offset to, updating line and
// column. Offsets behind the current position are ignored.
func (l *Lexer) advanceTo(to int) {
	for l.off < to && l.off < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.off:])
		l.off += size
		if r == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
}

// makeToken constructs a token at the current source position.
func (l *Lexer) makeToken(tt ast.TokenType, literal string) ast.Token {
	return ast.Token{Type: tt, Literal: literal, Line: l.line, Col: l.col, Offset: l.off}
}

// classify maps a participle token to its ast type.
func classify(t plexer.TokenType, value string) ast.TokenType {
	switch t {
	case symbols["String"]:
		return ast.STRING
	case symbols["Char"]:
		return ast.CHAR
	case symbols["Lifetime"]:
		return ast.LIFETIME
	case symbols["Number"]:
		if _, frac, exp, _ := SplitNumber(value); frac || exp {
			return ast.FLOAT
		}
		return ast.INT
	case symbols["Ident"]:
		return ast.LookupIdent(value)
	case symbols["Punct"], symbols["Delim"]:
		return ast.LookupPunct(value)
	}
	return ast.ILLEGAL
}
