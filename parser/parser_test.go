// Package parser_test contains tests for the spawn DSL recursive-descent
// parser.
//
// Each test parses a spawn! body, inspects the returned AST via type
// assertions, and fails with a descriptive message on mismatch.
//
// Test categories:
//   - Spawner:     identifier and '[' expression forms
//   - Items:       entity, named entity, parented, inserted, code block
//   - Definitions: components, every extension kind, children groups
//   - Flow:        if, if let, else chains, for, while, while let, break/continue
//   - Errors:      every fixed message and its position
//   - Programs:    end-to-end invocations
package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaphox/spawnc/ast"
	"github.com/metaphox/spawnc/diag"
	"github.com/metaphox/spawnc/parser"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

// parse runs the full parser on input and fails the test on error or if the
// number of top-level items doesn't match want.
func parse(t *testing.T, input string, wantItems int) *ast.Spawn {
	t.Helper()
	spawn, err := parser.ParseString(input)
	require.NoError(t, err)
	require.Len(t, spawn.Items, wantItems)
	return spawn
}

// firstItem is a convenience wrapper that returns the first item after
// calling parse with wantItems=1.
func firstItem(t *testing.T, input string) ast.TopLevel {
	t.Helper()
	return parse(t, input, 1).Items[0]
}

// expectError parses input and checks the diagnostic's kind, message and
// 1-based column. A zero col skips the column check.
func expectError(t *testing.T, input string, kind diag.Kind, msg string, col int) {
	t.Helper()
	_, err := parser.ParseString(input)
	require.Error(t, err, "expected %q", msg)
	d, ok := diag.As(err)
	require.True(t, ok, "expected *diag.Error, got %T: %v", err, err)
	assert.Equal(t, kind, d.Kind, "kind")
	assert.Equal(t, msg, d.Msg, "message")
	if col != 0 {
		assert.Equal(t, col, d.Pos.Col, "column")
	}
}

// requireEntity checks that node is an *ast.Entity and returns it.
func requireEntity(t *testing.T, node ast.Node) *ast.Entity {
	t.Helper()
	e, ok := node.(*ast.Entity)
	require.True(t, ok, "expected *ast.Entity, got %T", node)
	return e
}

// componentStrings renders a definition's components.
func componentStrings(def *ast.Definition) []string {
	out := make([]string, 0, len(def.Components))
	for _, c := range def.Components {
		out = append(out, c.String())
	}
	return out
}

// ── Spawner ───────────────────────────────────────────────────────────────────

func TestParser_SpawnerIdent(t *testing.T) {
	spawn := parse(t, `commands`, 0)
	assert.Equal(t, ast.SpawnerIdent, spawn.Spawner.Kind)
	assert.Equal(t, "commands", spawn.Spawner.Name)
}

func TestParser_SpawnerExpr(t *testing.T) {
	spawn := parse(t, `[world.commands()] (Node)`, 1)
	require.Equal(t, ast.SpawnerExpr, spawn.Spawner.Kind)
	assert.Equal(t, "world . commands ()", spawn.Spawner.Expr.String())
}

func TestParser_SpawnerErrors(t *testing.T) {
	expectError(t, `(Node)`, diag.Grammar, parser.MsgSpawner, 1)
	expectError(t, ``, diag.Grammar, parser.MsgSpawner, 1)
	expectError(t, `[] (Node)`, diag.Grammar, parser.MsgExpression, 2)
}

// ── Items ─────────────────────────────────────────────────────────────────────

func TestParser_Entity(t *testing.T) {
	e := requireEntity(t, firstItem(t, `commands (Button, Node { width: v!(10px), ..default() }, Foo::<A, B>::new(),)`))
	assert.Nil(t, e.Name)
	assert.Equal(t, []string{
		"Button",
		"Node {width : v ! (10px) , .. default ()}",
		"Foo :: < A , B > :: new ()",
	}, componentStrings(e.Def))
}

func TestParser_EmptyDefinition(t *testing.T) {
	e := requireEntity(t, firstItem(t, `commands ()`))
	assert.Empty(t, e.Def.Components)
}

func TestParser_NamedEntity(t *testing.T) {
	e := requireEntity(t, firstItem(t, `commands button (Button)`))
	require.NotNil(t, e.Name)
	assert.Equal(t, "button", e.Name.Name)
	assert.Equal(t, 10, e.Name.Pos().Col)
}

func TestParser_Parented(t *testing.T) {
	item := firstItem(t, `commands root > title (Text::new("Menu"))`)
	p, ok := item.(*ast.Parented)
	require.True(t, ok, "expected *ast.Parented, got %T", item)
	assert.Equal(t, "root", p.Parent.Name)
	require.NotNil(t, p.Entity.Name)
	assert.Equal(t, "title", p.Entity.Name.Name)
	assert.Equal(t, []string{`Text :: new ("Menu")`}, componentStrings(p.Entity.Def))
}

func TestParser_Inserted(t *testing.T) {
	item := firstItem(t, `commands button + (Pressed, BackgroundColor(c!(red)))`)
	ins, ok := item.(*ast.Inserted)
	require.True(t, ok, "expected *ast.Inserted, got %T", item)
	assert.Equal(t, "button", ins.Base.Name)
	assert.Len(t, ins.Def.Components, 2)
}

func TestParser_CodeBlock(t *testing.T) {
	item := firstItem(t, `commands { let x = 1; }`)
	cb, ok := item.(*ast.CodeBlock)
	require.True(t, ok, "expected *ast.CodeBlock, got %T", item)
	assert.True(t, cb.Block.Is(ast.LBRACE))
	assert.Len(t, cb.Block.Children, 5)
}

func TestParser_Separators(t *testing.T) {
	parse(t, `commands;; (A);(B) (C);`, 3)
}

// ── Definitions ───────────────────────────────────────────────────────────────

func TestParser_Extensions(t *testing.T) {
	e := requireEntity(t, firstItem(t, `commands (Node).(on_click).style(a, |x, y| x + y).{ entity.despawn(); }.partial`))
	exts := e.Def.Extensions
	require.Len(t, exts, 4)

	obs, ok := exts[0].(*ast.Observe)
	require.True(t, ok, "extension 0: got %T", exts[0])
	assert.Equal(t, "on_click", obs.Handler.String())

	call, ok := exts[1].(*ast.MethodCall)
	require.True(t, ok, "extension 1: got %T", exts[1])
	assert.Equal(t, "style", call.Name.Name)
	assert.Len(t, call.Args, 2)

	assert.IsType(t, &ast.BlockExtension{}, exts[2])

	un, ok := exts[3].(*ast.Unfinished)
	require.True(t, ok, "extension 3: got %T", exts[3])
	require.NotNil(t, un.Name)
	assert.Equal(t, "partial", un.Name.Name)
}

func TestParser_DanglingDot(t *testing.T) {
	spawn := parse(t, `commands (Node).; (Text)`, 2)
	e := requireEntity(t, spawn.Items[0])
	un, ok := e.Def.Extensions[0].(*ast.Unfinished)
	require.True(t, ok, "got %T", e.Def.Extensions[0])
	assert.Nil(t, un.Name)
}

func TestParser_Children(t *testing.T) {
	e := requireEntity(t, firstItem(t, `commands (Node).observe(f).[ (Text); label (Label); base + (X); { code(); } ].[ (More) ]`))
	assert.Len(t, e.Def.Extensions, 1)
	require.Len(t, e.Def.Children, 2)

	first := e.Def.Children[0].Items
	require.Len(t, first, 4)
	requireEntity(t, first[0])
	named := requireEntity(t, first[1])
	require.NotNil(t, named.Name)
	assert.Equal(t, "label", named.Name.Name)
	assert.IsType(t, &ast.Inserted{}, first[2])
	assert.IsType(t, &ast.CodeBlock{}, first[3])

	assert.Len(t, e.Def.Children[1].Items, 1)
}

// ── Restrictions ──────────────────────────────────────────────────────────────

func TestParser_ParentedNotAllowedAsChild(t *testing.T) {
	expectError(t, `commands (Node).[ a > (Text) ]`, diag.Restriction, parser.MsgParentedChild, 21)

	// The same construct is fine at top level.
	parse(t, `commands a > (Text)`, 1)
}

func TestParser_ExtensionAfterChildren(t *testing.T) {
	expectError(t, `commands (X).[ (Y) ].observe(f)`, diag.Restriction, parser.MsgExtensionsAfter, 22)
	expectError(t, `commands (X).[ (Y) ].(f)`, diag.Restriction, parser.MsgExtensionsAfter, 22)

	// Extensions first is fine.
	e := requireEntity(t, firstItem(t, `commands (X).observe(f).[ (Y) ]`))
	assert.Len(t, e.Def.Extensions, 1)
	assert.Len(t, e.Def.Children, 1)
}

// ── Grammar errors ────────────────────────────────────────────────────────────

func TestParser_ItemErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  diag.Kind
		msg   string
		col   int
	}{
		{"top-level ident", `commands foo bar`, diag.Grammar, parser.MsgTopLevelIdent, 14},
		{"child ident", `commands (X).[ foo bar ]`, diag.Grammar, parser.MsgChildIdent, 20},
		{"top-level token", `commands 42`, diag.Grammar, parser.MsgTopLevel, 10},
		{"child token", `commands (X).[ 42 ]`, diag.Grammar, parser.MsgChild, 16},
		{"parented definition", `commands a > b c`, diag.Grammar, parser.MsgDefinition, 16},
		{"inserted definition", `commands a + b`, diag.Grammar, parser.MsgDefinition, 14},
		{"else block", `commands if a { } else { }`, diag.Grammar, parser.MsgFlow, 24},
		{"empty condition", `commands if { }`, diag.Grammar, parser.MsgExpression, 13},
		{"for without in", `commands for x { }`, diag.Grammar, parser.MsgIn, 0},
		{"if let without =", `commands if let Some(x) { }`, diag.Grammar, parser.MsgLetAssign, 0},
		{"flow body", `commands while x`, diag.Grammar, parser.MsgFlowBody, 0},
		{"dangling else chain", `commands if a { } else for x in y { } else if b { }`, diag.Grammar, parser.MsgTopLevel, 39},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expectError(t, tc.input, tc.kind, tc.msg, tc.col)
		})
	}
}

func TestParser_Incomplete(t *testing.T) {
	_, err := parser.ParseString(`commands (Node).[ (Text)`)
	assert.True(t, diag.IsKind(err, diag.Incomplete), "got %v", err)
}

// ── Flow ──────────────────────────────────────────────────────────────────────

func TestParser_IfElseChain(t *testing.T) {
	item := firstItem(t, `commands if show { (A) } else if let Some(x) = y { (B); break } else for i in 0..3 { continue }`)

	ifNode, ok := item.(*ast.If[ast.TopLevel])
	require.True(t, ok, "expected *ast.If, got %T", item)
	assert.Equal(t, "show", ifNode.Cond.String())
	assert.Len(t, ifNode.Body, 1)

	ifLet, ok := ifNode.Else.(*ast.IfLet[ast.TopLevel])
	require.True(t, ok, "expected else *ast.IfLet, got %T", ifNode.Else)
	assert.Equal(t, "Some (x)", ifLet.Pattern.String())
	assert.Equal(t, "y", ifLet.Value.String())
	require.Len(t, ifLet.Body, 2)
	assert.Equal(t, ast.ControlItem, ifLet.Body[0].Kind)
	assert.Equal(t, ast.ControlBreak, ifLet.Body[1].Kind)

	forNode, ok := ifLet.Else.(*ast.For[ast.TopLevel])
	require.True(t, ok, "expected else *ast.For, got %T", ifLet.Else)
	assert.Equal(t, "i", forNode.Pattern.String())
	assert.Equal(t, "0 .. 3", forNode.Iter.String())
	require.Len(t, forNode.Body, 1)
	assert.Equal(t, ast.ControlContinue, forNode.Body[0].Kind)
}

func TestParser_ElseChainString(t *testing.T) {
	item := firstItem(t, `commands if a { break } else if let Some(x) = y { continue } else if b { break }`)
	assert.Equal(t, "if a { break } else if let Some (x) = y { continue } else if b { break }", item.String())
}

func TestParser_WhileLoops(t *testing.T) {
	spawn := parse(t, `commands while n < 3 { (A) } while let Some(x) = it.next() { x + (B) }`, 2)

	w, ok := spawn.Items[0].(*ast.While[ast.TopLevel])
	require.True(t, ok, "expected *ast.While, got %T", spawn.Items[0])
	assert.Equal(t, "n < 3", w.Cond.String())

	wl, ok := spawn.Items[1].(*ast.WhileLet[ast.TopLevel])
	require.True(t, ok, "expected *ast.WhileLet, got %T", spawn.Items[1])
	assert.Equal(t, "it . next ()", wl.Value.String())
	require.NotEmpty(t, wl.Body)
	assert.IsType(t, &ast.Inserted{}, wl.Body[0].Item)
}

func TestParser_FlowInChildren(t *testing.T) {
	e := requireEntity(t, firstItem(t, `commands (List).[ for label in labels.iter() { (Text::new(label)) } ]`))
	child := e.Def.Children[0].Items[0]
	f, ok := child.(*ast.For[ast.Child])
	require.True(t, ok, "expected *ast.For[ast.Child], got %T", child)
	assert.Equal(t, "labels . iter ()", f.Iter.String())
	requireEntity(t, f.Body[0].Item)
}

// Parented stays forbidden inside flows nested in a children group.
func TestParser_FlowInChildrenKeepsRestriction(t *testing.T) {
	_, err := parser.ParseString(`commands (List).[ if x { a > (B) } ]`)
	d, ok := diag.As(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, parser.MsgParentedChild, d.Msg)
}

// ── End-to-end programs ───────────────────────────────────────────────────────

// TestParser_Program parses the canonical mixed invocation: a bare entity, an
// entity with one children group and a parented entity.
func TestParser_Program(t *testing.T) {
	spawn := parse(t, `commands; (Button); (Button).[ (Text) ]; my>  (Node)`, 3)
	assert.Equal(t, "commands", spawn.Spawner.Name)

	bare := requireEntity(t, spawn.Items[0])
	assert.Nil(t, bare.Name)
	assert.Empty(t, bare.Def.Extensions)
	assert.Empty(t, bare.Def.Children)

	withChildren := requireEntity(t, spawn.Items[1])
	require.Len(t, withChildren.Def.Children, 1)
	require.Len(t, withChildren.Def.Children[0].Items, 1)
	requireEntity(t, withChildren.Def.Children[0].Items[0])

	p, ok := spawn.Items[2].(*ast.Parented)
	require.True(t, ok, "item 2: expected *ast.Parented, got %T", spawn.Items[2])
	assert.Equal(t, "my", p.Parent.Name)
	assert.Nil(t, p.Entity.Name)
}

func TestParser_Menu(t *testing.T) {
	input := `commands;
root (Node { flex_direction: FlexDirection::Column, ..default() }).[
    title (Text::new("Menu"), TextColor(c!(white)));
    for (i, label) in ["Play", "Quit"].iter().enumerate() {
        (Button).observe(move |_: Trigger<Pointer<Click>>| println!("{i}")).[
            (Text::new(*label))
        ];
    }
];
root + (BackgroundColor(c!(#222)));
{ info!("spawned"); }`

	spawn := parse(t, input, 3)
	root := requireEntity(t, spawn.Items[0])
	items := root.Def.Children[0].Items
	require.Len(t, items, 2)

	loop, ok := items[1].(*ast.For[ast.Child])
	require.True(t, ok, "expected for loop, got %T", items[1])
	assert.Equal(t, "(i , label)", loop.Pattern.String())

	btn := requireEntity(t, loop.Body[0].Item)
	call, ok := btn.Def.Extensions[0].(*ast.MethodCall)
	require.True(t, ok)
	assert.Len(t, call.Args, 1, "closure argument split")
}
