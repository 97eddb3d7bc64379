package grammar

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/llparse/ll1kit"
)

// Production is an ordered sequence of symbols forming one
// right-hand side of a rule. A production of length 1 containing only
// ll1kit.Epsilon denotes the empty production.
type Production []string

func (p Production) String() string {
	if len(p) == 0 {
		return ll1kit.Epsilon
	}
	return strings.Join(p, " ")
}

// IsEpsilon reports whether p is the sole-epsilon production.
func (p Production) IsEpsilon() bool {
	return len(p) == 1 && p[0] == ll1kit.Epsilon
}

// Rule is a dense-indexed (lhs, rhs) pair: a bijection between
// (lhs, rhs) pairs and dense integers 0..N-1, preserving insertion
// order.
type Rule struct {
	Index int
	LHS   string
	RHS   Production
}

func (r Rule) String() string {
	return fmt.Sprintf("%d: %s -> %s", r.Index, r.LHS, r.RHS)
}

// GrammarTable holds an axiom, a mapping from non-terminal to its set
// of right-hand sides, the derived terminal/non-terminal sets, and a
// dense rule index.
//
// GrammarTable is built once via InsertRule calls and then treated as
// immutable by package analysis and package lltable.
type GrammarTable struct {
	Axiom        string
	rules        map[string][]Production
	nonTerminals *linkedhashset.Set // insertion order, for deterministic iteration
	terminals    *linkedhashset.Set
	ruleIndex    []Rule
	indexOf      map[string]int // "lhs\x00rhs" -> index
	pendingAxiom string         // set by grammar.WithAxiom, applied after parsing
}

// New creates an empty GrammarTable.
func New() *GrammarTable {
	return &GrammarTable{
		rules:        make(map[string][]Production),
		nonTerminals: linkedhashset.New(),
		terminals:    linkedhashset.New(),
		indexOf:      make(map[string]int),
	}
}

// InsertRule adds a production for lhs. The first lhs ever inserted
// becomes the axiom, unless reassigned explicitly via SetAxiom. rhs
// must be a non-empty slice of symbols, or the single symbol
// ll1kit.Epsilon to denote an empty production.
func (g *GrammarTable) InsertRule(lhs string, rhs []string) *Rule {
	if g.Axiom == "" {
		g.Axiom = lhs
	}
	if !g.nonTerminals.Contains(lhs) {
		g.nonTerminals.Add(lhs)
	}
	prod := Production(append([]string(nil), rhs...))
	g.rules[lhs] = append(g.rules[lhs], prod)
	key := ruleKey(lhs, prod)
	idx := len(g.ruleIndex)
	g.indexOf[key] = idx
	r := Rule{Index: idx, LHS: lhs, RHS: prod}
	g.ruleIndex = append(g.ruleIndex, r)
	g.recomputeTerminals()
	return &g.ruleIndex[len(g.ruleIndex)-1]
}

// recomputeTerminals derives the terminal set: every RHS symbol that
// is not Epsilon and not (yet, or ever) a non-terminal.
func (g *GrammarTable) recomputeTerminals() {
	g.terminals = linkedhashset.New()
	for _, lhs := range g.nonTerminals.Values() {
		for _, prod := range g.rules[lhs.(string)] {
			for _, sym := range prod {
				if sym == ll1kit.Epsilon || g.nonTerminals.Contains(sym) {
					continue
				}
				if !g.terminals.Contains(sym) {
					g.terminals.Add(sym)
				}
			}
		}
	}
}

// Clone returns an independent deep copy of g, used by the
// pure-functional augmentation variant so that callers retain their
// original, un-augmented table.
func (g *GrammarTable) Clone() *GrammarTable {
	clone := New()
	clone.Axiom = g.Axiom
	for _, r := range g.ruleIndex {
		clone.InsertRule(r.LHS, r.RHS)
	}
	clone.Axiom = g.Axiom // InsertRule may have already set it identically
	return clone
}

// SetAxiom overrides the axiom (normally the first-inserted LHS). The
// named non-terminal must already have at least one rule.
func (g *GrammarTable) SetAxiom(name string) error {
	if !g.nonTerminals.Contains(name) {
		return fmt.Errorf("grammar: cannot set axiom to undeclared non-terminal %q", name)
	}
	g.Axiom = name
	return nil
}

// NonTerminals returns the non-terminal symbols in first-declared order.
func (g *GrammarTable) NonTerminals() []string {
	return toStrings(g.nonTerminals.Values())
}

// Terminals returns the terminal symbols in first-encountered order.
func (g *GrammarTable) Terminals() []string {
	return toStrings(g.terminals.Values())
}

// IsNonTerminal reports whether sym is a non-terminal.
func (g *GrammarTable) IsNonTerminal(sym string) bool {
	return g.nonTerminals.Contains(sym)
}

// IsTerminal reports whether sym is a terminal.
func (g *GrammarTable) IsTerminal(sym string) bool {
	return g.terminals.Contains(sym)
}

// Productions returns the right-hand sides of nonTerminal, in
// insertion order.
func (g *GrammarTable) Productions(nonTerminal string) []Production {
	return g.rules[nonTerminal]
}

// Rules returns every rule in the grammar, dense-indexed in insertion
// order.
func (g *GrammarTable) Rules() []Rule {
	return g.ruleIndex
}

// RuleAt returns the rule with the given dense index.
func (g *GrammarTable) RuleAt(index int) Rule {
	return g.ruleIndex[index]
}

// IndexOf returns the dense rule index for (lhs, rhs), and whether it
// was found.
func (g *GrammarTable) IndexOf(lhs string, rhs Production) (int, bool) {
	idx, ok := g.indexOf[ruleKey(lhs, rhs)]
	return idx, ok
}

func ruleKey(lhs string, rhs Production) string {
	return lhs + "\x00" + strings.Join(rhs, "\x00")
}

func toStrings(vals []interface{}) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.(string)
	}
	return out
}
