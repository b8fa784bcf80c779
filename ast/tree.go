package ast

import "strings"

// Tree is a token tree: either a single leaf token or a delimited group.
//
// For a group, Token is the opening delimiter ('(', '[' or '{'), Close is
// the matching closing delimiter and Children holds the interior trees.
// For a leaf, Close is the zero Token and Children is nil.
type Tree struct {
	Token    Token
	Close    Token
	Children []Tree
}

// IsGroup reports whether the tree is a delimited group.
func (t Tree) IsGroup() bool {
	switch t.Token.Type {
	case LPAREN, LBRACKET, LBRACE:
		return true
	}
	return false
}

// Is reports whether the tree's leading token has the given type. For a
// group this is the type of its opening delimiter.
func (t Tree) Is(tt TokenType) bool { return t.Token.Type == tt }

// Pos returns the position of the tree's first character.
func (t Tree) Pos() Pos { return t.Token.Pos() }

// End returns the byte offset just past the tree's last character.
func (t Tree) End() int {
	if t.IsGroup() {
		return t.Close.End()
	}
	return t.Token.End()
}

// String renders the tree from its literals, one space between tokens.
// It does not reproduce the original spacing; use [Source.Slice] for that.
func (t Tree) String() string {
	if !t.IsGroup() {
		return t.Token.Literal
	}
	return t.Token.Literal + JoinTrees(t.Children) + t.Close.Literal
}

// JoinTrees renders a tree slice from token literals separated by spaces.
func JoinTrees(trees []Tree) string {
	parts := make([]string, 0, len(trees))
	for _, t := range trees {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " ")
}

// Source is a named host source text. It recovers the exact original text
// (whitespace and comments included) spanned by a slice of trees.
type Source struct {
	Name string
	Text string
}

// Slice returns the original text spanned by trees. Trees that do not point
// into this source (synthesized, or from another text) are rendered with
// [JoinTrees] instead.
func (s *Source) Slice(trees []Tree) string {
	if len(trees) == 0 {
		return ""
	}
	start, end := trees[0].Token.Offset, trees[len(trees)-1].End()
	if s == nil || start < 0 || end > len(s.Text) || start > end || !trees[0].Token.Pos().IsValid() {
		return JoinTrees(trees)
	}
	if s.Text[start:start+len(trees[0].Token.Literal)] != trees[0].Token.Literal {
		return JoinTrees(trees)
	}
	return s.Text[start:end]
}
