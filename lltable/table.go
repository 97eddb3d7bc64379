package lltable

import (
	"github.com/llparse/ll1kit"
	"github.com/llparse/ll1kit/analysis"
	"github.com/llparse/ll1kit/grammar"
	"github.com/llparse/ll1kit/lltable/sparse"
)

// Table is the LL(1) predictive parsing table M[A, a] = rule index.
type Table struct {
	m *sparse.Table
	g *grammar.GrammarTable
}

// Build constructs the LL(1) predictive table for a's grammar. It
// returns a *ll1kit.NotLL1 error on the first conflicting cell
// encountered: conflicts abort construction rather than being
// resolved by priority.
func Build(a *analysis.Analysis) (*Table, error) {
	g := a.Grammar()
	t := &Table{m: sparse.NewTable(sparse.DefaultNullValue), g: g}

	for _, rule := range g.Rules() {
		firstAlpha := a.FirstOfString(rule.RHS)
		hasEpsilon := false
		for _, sym := range firstAlpha {
			if sym == ll1kit.Epsilon {
				hasEpsilon = true
				continue
			}
			if err := t.set(rule.LHS, sym, rule.Index); err != nil {
				return nil, err
			}
		}
		if hasEpsilon {
			for _, b := range a.Follow(rule.LHS) {
				if err := t.set(rule.LHS, b, rule.Index); err != nil {
					return nil, err
				}
			}
		}
	}
	return t, nil
}

func (t *Table) set(nonTerminal, terminal string, ruleIndex int) error {
	if t.m.Has(nonTerminal, terminal) {
		existing := int(t.m.Value(nonTerminal, terminal))
		if existing != ruleIndex {
			return &ll1kit.NotLL1{
				NonTerminal: nonTerminal,
				Terminal:    terminal,
				Rules:       []int{existing, ruleIndex},
			}
		}
		return nil
	}
	t.m.Set(nonTerminal, terminal, int32(ruleIndex))
	return nil
}

// Lookup returns the rule index predicted for (nonTerminal,
// terminal), and whether the cell is defined.
func (t *Table) Lookup(nonTerminal, terminal string) (int, bool) {
	if !t.m.Has(nonTerminal, terminal) {
		return 0, false
	}
	return int(t.m.Value(nonTerminal, terminal)), true
}

// Grammar returns the grammar this table was built from.
func (t *Table) Grammar() *grammar.GrammarTable {
	return t.g
}
