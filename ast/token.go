// Package ast defines the token types, token trees and syntax trees used by
// the spawnc lexer, parser and code generator.
//
// Tokens are the smallest meaningful units of host source text. Every token
// carries its type, the exact literal text it was scanned from, and its
// source position (line + column + byte offset). Position is 1-based for
// lines and columns: the first character of a file is Line 1, Col 1.
package ast

import "fmt"

// TokenType identifies the category of a scanned token.
// The zero value (0) is reserved and not a valid token.
type TokenType int

const (
	// ── Special ────────────────────────────────────────────────────────────────

	// ILLEGAL represents a character or sequence the lexer could not recognise,
	// such as an unterminated string literal or a stray byte.
	ILLEGAL TokenType = iota
	// EOF marks the end of the input stream.
	EOF

	// ── Literals ───────────────────────────────────────────────────────────────

	// IDENT is an identifier: [a-zA-Z_][a-zA-Z0-9_]* or a raw identifier r#name.
	// Host keywords the DSL does not care about (move, mut, match, ...) stay IDENT.
	IDENT
	// INT is an integer literal with an optional suffix, e.g. 10, 10px, 0xff, 62a7ff.
	INT
	// FLOAT is a floating-point literal with an optional suffix, e.g. 1.5, 2.5vw, 1e3.
	FLOAT
	// STRING is a string literal in any host form: "..", b"..", r"..", r#".."#.
	STRING
	// CHAR is a character literal: 'a', '\n'.
	CHAR
	// LIFETIME is a lifetime or loop label: 'w, 'outer.
	LIFETIME

	// ── Keywords ───────────────────────────────────────────────────────────────

	// IF begins a conditional flow: if cond { ... }
	IF
	// ELSE chains another flow onto an if: else if ... / else for ...
	ELSE
	// FOR begins an iterator loop: for pat in iter { ... }
	FOR
	// IN separates the pattern from the iterator in a for loop.
	IN
	// WHILE begins a conditional loop: while cond { ... }
	WHILE
	// LET turns if/while into their pattern-matching forms: if let Some(x) = y
	LET
	// BREAK exits the nearest enclosing loop.
	BREAK
	// CONTINUE skips to the next iteration of the nearest enclosing loop.
	CONTINUE

	// ── Punctuation the grammars inspect ───────────────────────────────────────

	// UNDERSCORE is the lone '_' (explicit default in edge/turn literals).
	UNDERSCORE
	// DOT starts an extension or a children group: .observe(..)  .[..]
	DOT
	// COMMA separates components and arguments.
	COMMA
	// SEMICOLON separates top-level items and children.
	SEMICOLON
	// GT declares an explicit parent: parent > (..)
	GT
	// PLUS inserts components into an existing object: base + (..)
	PLUS
	// ASSIGN separates the pattern from the scrutinee in if let / while let.
	ASSIGN
	// HASH introduces a hex colour: #fff
	HASH
	// AT is the shorthand for auto in dimension literals.
	AT
	// BANG suppresses the named-colour wrapper (!#fff) and marks macro calls (v!).
	BANG
	// PERCENT is the percent unit: 10%
	PERCENT
	// PUNCT is any other punctuation, single or multi-character: :: -> | && ..=
	PUNCT

	// ── Delimiters ──────────────────────────────────────────────────────────────

	// LBRACE is the left curly brace: {
	LBRACE
	// RBRACE is the right curly brace: }
	RBRACE
	// LPAREN is the left parenthesis: (
	LPAREN
	// RPAREN is the right parenthesis: )
	RPAREN
	// LBRACKET is the left square bracket: [
	LBRACKET
	// RBRACKET is the right square bracket: ]
	RBRACKET
)

var tokenNames = map[TokenType]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	IDENT:      "IDENT",
	INT:        "INT",
	FLOAT:      "FLOAT",
	STRING:     "STRING",
	CHAR:       "CHAR",
	LIFETIME:   "LIFETIME",
	IF:         "'if'",
	ELSE:       "'else'",
	FOR:        "'for'",
	IN:         "'in'",
	WHILE:      "'while'",
	LET:        "'let'",
	BREAK:      "'break'",
	CONTINUE:   "'continue'",
	UNDERSCORE: "'_'",
	DOT:        "'.'",
	COMMA:      "','",
	SEMICOLON:  "';'",
	GT:         "'>'",
	PLUS:       "'+'",
	ASSIGN:     "'='",
	HASH:       "'#'",
	AT:         "'@'",
	BANG:       "'!'",
	PERCENT:    "'%'",
	PUNCT:      "PUNCT",
	LBRACE:     "'{'",
	RBRACE:     "'}'",
	LPAREN:     "'('",
	RPAREN:     "')'",
	LBRACKET:   "'['",
	RBRACKET:   "']'",
}

// String returns the display name of the token type, quoted for punctuation
// and keywords so it can be dropped straight into an error message.
func (tt TokenType) String() string {
	if s, ok := tokenNames[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// keywords maps the literal text of every keyword the DSL grammar inspects to
// its TokenType. The lexer consults this map when it finishes scanning an
// identifier.
var keywords = map[string]TokenType{
	"if":       IF,
	"else":     ELSE,
	"for":      FOR,
	"in":       IN,
	"while":    WHILE,
	"let":      LET,
	"break":    BREAK,
	"continue": CONTINUE,
	"_":        UNDERSCORE,
}

// LookupIdent checks whether ident is a reserved keyword and returns the
// corresponding TokenType. If ident is not a keyword, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

// punctuation maps single-character punctuation to its dedicated type.
// Everything else scanned as punctuation becomes PUNCT.
var punctuation = map[string]TokenType{
	".": DOT,
	",": COMMA,
	";": SEMICOLON,
	">": GT,
	"+": PLUS,
	"=": ASSIGN,
	"#": HASH,
	"@": AT,
	"!": BANG,
	"%": PERCENT,
	"{": LBRACE,
	"}": RBRACE,
	"(": LPAREN,
	")": RPAREN,
	"[": LBRACKET,
	"]": RBRACKET,
}

// LookupPunct returns the TokenType of a punctuation or delimiter literal.
func LookupPunct(p string) TokenType {
	if tt, ok := punctuation[p]; ok {
		return tt
	}
	return PUNCT
}

// Pos is a source position. Offset is the 0-based byte offset; Line and Col
// are 1-based. The zero Pos means "no position".
type Pos struct {
	Offset int
	Line   int
	Col    int
}

// IsValid reports whether the position refers to real source text.
func (p Pos) IsValid() bool { return p.Line > 0 }

// String renders the position as line:col.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a single lexical unit produced by the lexer.
//
// Fields:
//   - Type    the category of this token (see TokenType constants)
//   - Literal the exact source text that was scanned
//   - Line    1-based source line number
//   - Col     1-based column of the first character of this token
//   - Offset  0-based byte offset of the first character
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Col     int
	Offset  int
}

// Pos returns the position of the token's first character.
func (t Token) Pos() Pos {
	return Pos{Offset: t.Offset, Line: t.Line, Col: t.Col}
}

// End returns the byte offset just past the token's last character.
func (t Token) End() int {
	return t.Offset + len(t.Literal)
}

// String returns the token's literal text.
func (t Token) String() string {
	return t.Literal
}
