package lexer

import (
	"github.com/metaphox/spawnc/ast"
	"github.com/metaphox/spawnc/diag"
)

var closerOf = map[ast.TokenType]ast.TokenType{
	ast.LPAREN:   ast.RPAREN,
	ast.LBRACKET: ast.RBRACKET,
	ast.LBRACE:   ast.RBRACE,
}

var closerLit = map[ast.TokenType]string{
	ast.RPAREN:   ")",
	ast.RBRACKET: "]",
	ast.RBRACE:   "}",
}

// Trees folds a token stream (as returned by [Tokenize]) into token trees.
// The trailing EOF token is not part of the result.
//
// Errors are positioned diagnostics: a stray or mismatched closing delimiter
// is a grammar error, an unclosed delimiter is an incomplete-input error
// reported at the opening delimiter, and an ILLEGAL token is a lexical error.
func Trees(tokens []ast.Token) ([]ast.Tree, error) {
	type frame struct {
		open  ast.Token
		trees []ast.Tree
	}
	stack := []frame{{}}

	for _, tok := range tokens {
		switch tok.Type {
		case ast.EOF:
			if len(stack) > 1 {
				open := stack[len(stack)-1].open
				return nil, diag.Errorf(diag.Incomplete, open.Pos(), "unclosed delimiter '%s'", open.Literal)
			}
			return stack[0].trees, nil

		case ast.ILLEGAL:
			if tok.Literal == `"` {
				return nil, diag.Errorf(diag.Incomplete, tok.Pos(), "unterminated string literal")
			}
			if tok.Literal == "/*" {
				return nil, diag.New(diag.Incomplete, tok.Pos(), "unterminated block comment")
			}
			return nil, diag.Errorf(diag.Lexical, tok.Pos(), "unexpected character '%s'", tok.Literal)

		case ast.LPAREN, ast.LBRACKET, ast.LBRACE:
			stack = append(stack, frame{open: tok})

		case ast.RPAREN, ast.RBRACKET, ast.RBRACE:
			if len(stack) == 1 {
				return nil, diag.Errorf(diag.Grammar, tok.Pos(), "unexpected closing delimiter '%s'", tok.Literal)
			}
			top := stack[len(stack)-1]
			if want := closerOf[top.open.Type]; want != tok.Type {
				return nil, diag.Errorf(diag.Grammar, tok.Pos(),
					"mismatched closing delimiter: expected '%s', found '%s'", closerLit[want], tok.Literal)
			}
			stack = stack[:len(stack)-1]
			parent := &stack[len(stack)-1]
			parent.trees = append(parent.trees, ast.Tree{Token: top.open, Close: tok, Children: top.trees})

		default:
			top := &stack[len(stack)-1]
			top.trees = append(top.trees, ast.Tree{Token: tok})
		}
	}
	// A stream without EOF is treated as if it ended here.
	if len(stack) > 1 {
		open := stack[len(stack)-1].open
		return nil, diag.Errorf(diag.Incomplete, open.Pos(), "unclosed delimiter '%s'", open.Literal)
	}
	return stack[0].trees, nil
}

// Scan tokenises src and folds it into token trees. It also returns the EOF
// token, whose position marks the end of the input.
func Scan(src string) ([]ast.Tree, ast.Token, error) {
	toks := Tokenize(src)
	trees, err := Trees(toks)
	return trees, toks[len(toks)-1], err
}
