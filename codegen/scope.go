package codegen

import "github.com/metaphox/spawnc/ast"

// Binding classifies how a DSL name reference resolves.
type Binding int

const (
	// External: not bound by this invocation; assumed to exist in host code.
	External Binding = iota
	// DSL: bound by an earlier named entity in a visible scope.
	DSL
	// Hidden: bound by this invocation, but only in a scope that has
	// already been closed (a sibling children group or flow body).
	Hidden
)

var bindingNames = [...]string{"external", "dsl", "hidden"}

func (b Binding) String() string { return bindingNames[b] }

// ScopeKind tells what opened a scope.
type ScopeKind int

const (
	ScopeRoot ScopeKind = iota
	ScopeChildren
	ScopeFlow
)

type scope struct {
	kind  ScopeKind
	names map[string]ast.Pos
}

// closedName remembers where a no-longer-visible name was bound.
type closedName struct {
	pos  ast.Pos
	kind ScopeKind
}

// Scopes is the block-structured symbol table of one spawn invocation.
// Names are visible in the scope that declares them and every scope nested
// inside it, from the point of declaration on.
type Scopes struct {
	stack  []*scope
	closed map[string]closedName
}

// NewScopes returns a table holding only the root scope.
func NewScopes() *Scopes {
	s := &Scopes{closed: make(map[string]closedName)}
	s.Push(ScopeRoot)
	return s
}

// Push opens a nested scope.
func (s *Scopes) Push(kind ScopeKind) {
	s.stack = append(s.stack, &scope{kind: kind, names: make(map[string]ast.Pos)})
}

// Pop closes the innermost scope. Its names become Hidden unless an
// enclosing scope binds them too.
func (s *Scopes) Pop() {
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	for name, pos := range top.names {
		s.closed[name] = closedName{pos: pos, kind: top.kind}
	}
}

// Depth reports the number of open scopes, the root included.
func (s *Scopes) Depth() int { return len(s.stack) }

// Declare binds name in the innermost scope.
func (s *Scopes) Declare(name string, pos ast.Pos) {
	s.stack[len(s.stack)-1].names[name] = pos
}

// Resolve looks name up from the innermost scope outwards. For DSL and
// Hidden results pos is where the name was bound.
func (s *Scopes) Resolve(name string) (b Binding, pos ast.Pos) {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if p, ok := s.stack[i].names[name]; ok {
			return DSL, p
		}
	}
	if c, ok := s.closed[name]; ok {
		return Hidden, c.pos
	}
	return External, ast.Pos{}
}

// hiddenIn reports the kind of the closed scope that bound name.
func (s *Scopes) hiddenIn(name string) ScopeKind { return s.closed[name].kind }
