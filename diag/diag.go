// Package diag holds the structured diagnostics reported by every stage of
// spawnc: lexing, token-tree building, parsing, literal decoding and code
// generation.
//
// A diagnostic always carries a source position and a fixed, human-readable
// message. Errors abort the macro invocation they belong to; warnings are
// collected next to the generated code.
package diag

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/metaphox/spawnc/ast"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// Lexical: the scanner met text it cannot tokenise.
	Lexical Kind = iota
	// Grammar: the token stream does not match the production at this point.
	Grammar
	// Restriction: parseable, but forbidden by an extra-grammar rule
	// (parenting inside a children group, extension after a children group).
	Restriction
	// Literal: malformed value literal (hex length, unit, argument count...).
	Literal
	// Incomplete: the input ended before a delimiter was closed.
	Incomplete
	// Unknown: identifier outside a closed vocabulary. Soft: code is still
	// generated and fails later in the host compiler.
	Unknown
	// Scope: a DSL name is referenced where it is not visible.
	Scope
)

var kindNames = [...]string{"lexical", "grammar", "restriction", "literal", "incomplete", "unknown", "scope"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Severity tells whether a diagnostic aborts generation.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Error is a positioned diagnostic. It implements the error interface so
// hard failures travel through ordinary error returns.
type Error struct {
	Kind     Kind
	Severity Severity
	Pos      ast.Pos
	Msg      string
	Hints    []string // e.g. "did you mean" candidates
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
	}
	return e.Msg
}

// New builds an error-severity diagnostic with a fixed message.
func New(kind Kind, pos ast.Pos, msg string) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: msg}
}

// Errorf builds an error-severity diagnostic.
func Errorf(kind Kind, pos ast.Pos, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Warnf builds a warning-severity diagnostic.
func Warnf(kind Kind, pos ast.Pos, format string, args ...any) *Error {
	return &Error{Kind: kind, Severity: SeverityWarning, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// As extracts a *Error from err's chain.
func As(err error) (*Error, bool) {
	var d *Error
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// IsKind reports whether err carries a diagnostic of the given kind.
func IsKind(err error, kind Kind) bool {
	d, ok := As(err)
	return ok && d.Kind == kind
}

// Suggest returns up to max candidates close to target: fuzzy subsequence
// matches ranked by edit distance first, then plain near-misses (distance <= 2)
// that are not subsequence matches.
func Suggest(target string, candidates []string, max int) []string {
	if target == "" || max <= 0 {
		return nil
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	sort.Sort(ranks)

	seen := make(map[string]bool)
	var out []string
	for _, r := range ranks {
		if len(out) == max {
			return out
		}
		seen[r.Target] = true
		out = append(out, r.Target)
	}

	type near struct {
		name string
		dist int
	}
	var close []near
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		if d := fuzzy.LevenshteinDistance(target, c); d <= 2 {
			close = append(close, near{c, d})
		}
	}
	sort.SliceStable(close, func(i, j int) bool { return close[i].dist < close[j].dist })
	for _, n := range close {
		if len(out) == max {
			break
		}
		out = append(out, n.name)
	}
	return out
}
