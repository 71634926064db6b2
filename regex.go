// Package waverex implements a small regular-expression engine with a
// custom, non-standard surface syntax, compiled to a directed node
// graph and matched by recursive backtracking anchored at offset 0.
//
// There is no "search anywhere", no capture groups, and no Unicode
// classes — a Regex only ever asks "does a prefix of this subject match,
// and how much of it".
//
// Basic usage:
//
//	re, err := waverex.Compile(`[0-9]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := re.Match("0123456789 and more")
//	fmt.Println(m.OK, m.View) // true 0123456789
package waverex

import (
	"github.com/coregx/waverex/internal/graph"
	"github.com/coregx/waverex/internal/parse"
)

// Regex is a compiled pattern: its source text, the arena owning every
// node of its graph, and the head node matching begins at.
//
// A Regex is immutable after Compile returns — every node's members
// cache is precomputed before Compile hands it back — so it is safe to
// call Match concurrently from multiple goroutines without locking.
//
// Example:
//
//	re := waverex.MustCompile(`'abc'`)
//	if re.Match("abcxyz").OK {
//	    println("matched!")
//	}
type Regex struct {
	source string
	arena  *graph.Arena
	head   *graph.Node
	cfg    Config
}

// Match is the result of testing a subject against a Regex: whether a
// prefix matched, the matched prefix itself, and the unconsumed
// remainder. View and Next always partition the subject: View + Next ==
// subject. When OK is false, View is empty and Next is the whole
// subject.
type Match struct {
	OK   bool
	View string
	Next string
}

// Compile compiles source with DefaultConfig.
//
// Example:
//
//	re, err := waverex.Compile(`{'ab'n}+`)
func Compile(source string) (*Regex, error) {
	return CompileWithConfig(source, DefaultConfig())
}

// MustCompile compiles source and panics if it is malformed. Useful for
// patterns known to be valid at compile time, e.g. package-level
// variables.
//
// Example:
//
//	var digits = waverex.MustCompile(`[0-9]+`)
func MustCompile(source string) *Regex {
	re, err := Compile(source)
	if err != nil {
		panic("waverex: Compile(`" + source + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles source with an explicit Config.
//
// Example:
//
//	cfg := waverex.DefaultConfig()
//	cfg.MaxDepth = 500
//	re, err := waverex.CompileWithConfig(`^*~'done'`, cfg)
func CompileWithConfig(source string, cfg Config) (*Regex, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	arena := graph.NewArena(len(source))
	head, err := parse.New(arena, source).Parse()
	if err != nil {
		return nil, err
	}

	arena.Precompute()

	return &Regex{source: source, arena: arena, head: head, cfg: cfg}, nil
}

// String returns the source text the Regex was compiled from.
func (re *Regex) String() string {
	return re.source
}

// Match tests subject against re, anchored at offset 0. A pattern that
// compiled from empty source, or whose head is otherwise nil, never
// matches.
//
// Example:
//
//	re := waverex.MustCompile(`'abc'`)
//	m := re.Match("abcxyz")
//	fmt.Println(m.View, m.Next) // abc xyz
func (re *Regex) Match(subject string) Match {
	if re.head == nil {
		return Match{OK: false, View: "", Next: subject}
	}

	budget := re.cfg.MaxDepth
	offset, ok := re.head.Submit(subject, 0, &budget)
	if !ok {
		return Match{OK: false, View: "", Next: subject}
	}
	return Match{OK: true, View: subject[:offset], Next: subject[offset:]}
}
