package codegen

import (
	"fmt"

	"github.com/metaphox/spawnc/ast"
)

// genFlow emits a flow statement. Every statement-level flow carries
// #[allow(irrefutable_let_patterns)] so an always-matching pattern compiles
// cleanly.
func genFlow[T ast.Node](g *Generator, f ast.Flow[T], item func(T) error) error {
	g.w.emit(ast.Pos{}, "#[allow(irrefutable_let_patterns)]")
	return genChain(g, f, item, "")
}

// genChain emits one link of an if/else chain. lead is "} else " when the
// link continues a previous conditional on the same line.
func genChain[T ast.Node](g *Generator, f ast.Flow[T], item func(T) error, lead string) error {
	var (
		header string
		body   []ast.Control[T]
		els    ast.Flow[T]
		err    error
	)
	switch n := f.(type) {
	case *ast.If[T]:
		var cond string
		if cond, err = g.opaque(n.Cond); err != nil {
			return err
		}
		header, body, els = "if "+cond, n.Body, n.Else

	case *ast.IfLet[T]:
		var pat, val string
		if pat, err = g.opaque(n.Pattern); err != nil {
			return err
		}
		if val, err = g.opaque(n.Value); err != nil {
			return err
		}
		header, body, els = "if let "+pat+" = "+val, n.Body, n.Else

	case *ast.For[T]:
		var pat, iter string
		if pat, err = g.opaque(n.Pattern); err != nil {
			return err
		}
		if iter, err = g.opaque(n.Iter); err != nil {
			return err
		}
		header, body = "for "+pat+" in "+iter, n.Body

	case *ast.While[T]:
		var cond string
		if cond, err = g.opaque(n.Cond); err != nil {
			return err
		}
		header, body = "while "+cond, n.Body

	case *ast.WhileLet[T]:
		var pat, val string
		if pat, err = g.opaque(n.Pattern); err != nil {
			return err
		}
		if val, err = g.opaque(n.Value); err != nil {
			return err
		}
		header, body = "while let "+pat+" = "+val, n.Body

	default:
		return fmt.Errorf("codegen: unexpected flow %T", f)
	}

	g.w.open(f.Pos(), lead+header+" {")
	if err := genBody(g, body, item); err != nil {
		return err
	}

	switch els.(type) {
	case nil:
		g.w.close("}")
	case *ast.If[T], *ast.IfLet[T]:
		g.w.dedent()
		return genChain(g, els, item, "} else ")
	default:
		// else for / else while: the terminal flow goes in its own block.
		g.w.dedent()
		g.w.open(ast.Pos{}, "} else {")
		if err := genFlow(g, els, item); err != nil {
			return err
		}
		g.w.close("}")
	}
	return nil
}

// genBody emits a flow body in its own scope.
func genBody[T ast.Node](g *Generator, body []ast.Control[T], item func(T) error) error {
	g.scopes.Push(ScopeFlow)
	for _, c := range body {
		switch c.Kind {
		case ast.ControlBreak:
			g.w.emit(c.Token.Pos(), "break;")
		case ast.ControlContinue:
			g.w.emit(c.Token.Pos(), "continue;")
		default:
			if err := item(c.Item); err != nil {
				return err
			}
		}
	}
	g.scopes.Pop()
	return nil
}
