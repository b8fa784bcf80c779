package cursor

import "github.com/metaphox/spawnc/ast"

// Split splits an opaque expression list on top-level sep tokens. A trailing
// separator does not produce an empty segment.
//
// Separators are never split on inside nested groups, inside a turbofish
// generic argument list (Vec::<A, B>::new()) or inside closure parameters
// (|a, b| a + b, move |a, b| ...).
func Split(trees []ast.Tree, sep ast.TokenType) [][]ast.Tree {
	var (
		out     [][]ast.Tree
		start   int
		angles  int  // open turbofish '<' levels
		closure bool // inside |params|
	)
	for i, t := range trees {
		switch {
		case closure:
			if isPunct(t, "|") {
				closure = false
			}
		case isPunct(t, "<") && (angles > 0 || (i > 0 && isPunct(trees[i-1], "::"))):
			angles++
		case t.Is(ast.GT) && angles > 0:
			angles--
		case isPunct(t, "|") && angles == 0 && closureStart(trees[start:i]):
			closure = true
		case t.Is(sep) && angles == 0:
			out = append(out, trees[start:i])
			start = i + 1
		}
	}
	if start < len(trees) {
		out = append(out, trees[start:])
	}
	return out
}

// closureStart reports whether a '|' following seg opens closure parameters.
func closureStart(seg []ast.Tree) bool {
	switch len(seg) {
	case 0:
		return true
	case 1:
		return seg[0].Is(ast.IDENT) && seg[0].Token.Literal == "move"
	}
	return false
}

func isPunct(t ast.Tree, lit string) bool {
	return t.Is(ast.PUNCT) && t.Token.Literal == lit
}
