package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/metaphox/spawnc/ast"
)

// ── ast ───────────────────────────────────────────────────────────────────────

func cmdAST(args []string, e *env) int {
	fs, c := newFlagSet("ast", e)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintf(e.stderr, "usage: %s ast FILE...\n", appName)
		return 2
	}
	s, err := e.session(c)
	if err != nil {
		fmt.Fprintf(e.stderr, "%s: %v\n", appName, err)
		return 1
	}

	doc := seq()
	status := 0
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(e.stderr, "%s: %v\n", appName, err)
			status = 1
			continue
		}
		invs, err := s.x.FindSource(string(src))
		if err != nil {
			s.report(path, string(src), err)
			status = 1
			continue
		}
		d := &dumper{src: &ast.Source{Name: path, Text: string(src)}}
		for _, inv := range invs {
			node, err := inv.Parse()
			if err != nil {
				s.report(path, string(src), err)
				status = 1
				continue
			}
			m := mapping(
				"file", str(path),
				"macro", str(inv.Name.Literal),
				"at", str(inv.Pos().String()),
			)
			d.node(m, node)
			doc.Content = append(doc.Content, m)
		}
	}

	enc := yaml.NewEncoder(e.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		fmt.Fprintf(e.stderr, "%s: %v\n", appName, err)
		return 1
	}
	if err := enc.Close(); err != nil {
		fmt.Fprintf(e.stderr, "%s: %v\n", appName, err)
		return 1
	}
	return status
}

// ── YAML tree ─────────────────────────────────────────────────────────────────

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func seq(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Content: items}
}

// mapping builds a mapping node from alternating keys and values.
func mapping(kv ...any) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(kv); i += 2 {
		set(m, kv[i].(string), kv[i+1].(*yaml.Node))
	}
	return m
}

func set(m *yaml.Node, key string, v *yaml.Node) {
	m.Content = append(m.Content, str(key), v)
}

// dumper renders AST nodes with the original text of their host
// expressions.
type dumper struct {
	src *ast.Source
}

func (d *dumper) expr(e ast.Expr) *yaml.Node { return str(d.src.Slice(e.Trees)) }

func (d *dumper) exprs(es []ast.Expr) *yaml.Node {
	s := seq()
	for _, e := range es {
		s.Content = append(s.Content, d.expr(e))
	}
	return s
}

// node adds the fields of n to m.
func (d *dumper) node(m *yaml.Node, n ast.Node) {
	switch n := n.(type) {
	case *ast.Spawn:
		spawner := n.Spawner.Name
		if n.Spawner.Kind == ast.SpawnerExpr {
			spawner = "[" + d.src.Slice(n.Spawner.Expr.Trees) + "]"
		}
		set(m, "spawner", str(spawner))
		items := seq()
		for _, it := range n.Items {
			items.Content = append(items.Content, d.topLevel(it))
		}
		set(m, "items", items)
	case ast.Dimension, ast.Color, ast.Edges, ast.Turns:
		set(m, "value", str(n.String()))
	}
}

func (d *dumper) topLevel(it ast.TopLevel) *yaml.Node {
	switch n := it.(type) {
	case *ast.Entity:
		return d.entity(n)
	case *ast.Parented:
		return mapping("parented", str(n.Parent.Name), "at", str(n.Pos().String()), "entity", d.entity(n.Entity))
	case *ast.Inserted:
		return d.inserted(n)
	case *ast.CodeBlock:
		return d.codeBlock(n)
	case ast.Flow[ast.TopLevel]:
		return dumpFlow(d, n, d.topLevel)
	}
	return str(it.String())
}

func (d *dumper) child(it ast.Child) *yaml.Node {
	switch n := it.(type) {
	case *ast.Entity:
		return d.entity(n)
	case *ast.Inserted:
		return d.inserted(n)
	case *ast.CodeBlock:
		return d.codeBlock(n)
	case ast.Flow[ast.Child]:
		return dumpFlow(d, n, d.child)
	}
	return str(it.String())
}

func (d *dumper) entity(e *ast.Entity) *yaml.Node {
	name := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "~"}
	if e.Name != nil {
		name = str(e.Name.Name)
	}
	m := mapping("entity", name, "at", str(e.Pos().String()))
	d.definition(m, e.Def)
	return m
}

func (d *dumper) inserted(n *ast.Inserted) *yaml.Node {
	m := mapping("inserted", str(n.Base.Name), "at", str(n.Pos().String()))
	d.definition(m, n.Def)
	return m
}

func (d *dumper) codeBlock(n *ast.CodeBlock) *yaml.Node {
	return mapping("block", str(d.src.Slice([]ast.Tree{n.Block})), "at", str(n.Pos().String()))
}

func (d *dumper) definition(m *yaml.Node, def *ast.Definition) {
	set(m, "components", d.exprs(def.Components))
	if len(def.Extensions) > 0 {
		exts := seq()
		for _, ext := range def.Extensions {
			exts.Content = append(exts.Content, d.extension(ext))
		}
		set(m, "extensions", exts)
	}
	if len(def.Children) > 0 {
		groups := seq()
		for _, ch := range def.Children {
			items := seq()
			for _, it := range ch.Items {
				items.Content = append(items.Content, d.child(it))
			}
			groups.Content = append(groups.Content, items)
		}
		set(m, "children", groups)
	}
}

func (d *dumper) extension(ext ast.Extension) *yaml.Node {
	switch n := ext.(type) {
	case *ast.Observe:
		return mapping("observe", d.expr(n.Handler))
	case *ast.MethodCall:
		return mapping("method", str(n.Name.Name), "args", d.exprs(n.Args))
	case *ast.BlockExtension:
		return mapping("block", str(d.src.Slice([]ast.Tree{n.Block})))
	case *ast.Unfinished:
		return mapping("unfinished", str(n.String()))
	}
	return str(ext.String())
}

func dumpFlow[T ast.Node](d *dumper, f ast.Flow[T], item func(T) *yaml.Node) *yaml.Node {
	var (
		m    *yaml.Node
		body []ast.Control[T]
		els  ast.Flow[T]
	)
	switch n := f.(type) {
	case *ast.If[T]:
		m, body, els = mapping("if", d.expr(n.Cond)), n.Body, n.Else
	case *ast.IfLet[T]:
		m, body, els = mapping("if let", d.expr(n.Pattern), "value", d.expr(n.Value)), n.Body, n.Else
	case *ast.For[T]:
		m, body = mapping("for", d.expr(n.Pattern), "in", d.expr(n.Iter)), n.Body
	case *ast.While[T]:
		m, body = mapping("while", d.expr(n.Cond)), n.Body
	case *ast.WhileLet[T]:
		m, body = mapping("while let", d.expr(n.Pattern), "value", d.expr(n.Value)), n.Body
	default:
		return str(f.String())
	}
	set(m, "at", str(f.Pos().String()))

	items := seq()
	for _, c := range body {
		switch c.Kind {
		case ast.ControlBreak:
			items.Content = append(items.Content, str("break"))
		case ast.ControlContinue:
			items.Content = append(items.Content, str("continue"))
		default:
			items.Content = append(items.Content, item(c.Item))
		}
	}
	set(m, "body", items)
	if els != nil {
		set(m, "else", dumpFlow(d, els, item))
	}
	return m
}
