package analysis

import (
	"github.com/llparse/ll1kit"
	"github.com/llparse/ll1kit/grammar"
)

// symbolSet is a small string set, used throughout for FIRST/FOLLOW
// results.
type symbolSet map[string]bool

func newSymbolSet(syms ...string) symbolSet {
	s := make(symbolSet, len(syms))
	for _, sym := range syms {
		s[sym] = true
	}
	return s
}

// union destructively adds every member of other into s, reporting
// whether s grew (used to detect fixed-point convergence).
func (s symbolSet) union(other symbolSet) (grew bool) {
	for sym := range other {
		if !s[sym] {
			s[sym] = true
			grew = true
		}
	}
	return grew
}

func (s symbolSet) slice() []string {
	out := make([]string, 0, len(s))
	for sym := range s {
		out = append(out, sym)
	}
	return out
}

// Analysis holds the computed FIRST/FOLLOW sets for a GrammarTable.
// Once built it is treated as immutable.
type Analysis struct {
	g      *grammar.GrammarTable
	first  map[string]symbolSet // symbol -> FIRST(symbol), non-terminals only
	follow map[string]symbolSet // non-terminal -> FOLLOW(non-terminal)
}

// Analyze computes FIRST and FOLLOW for every non-terminal of g by
// fixed-point iteration.
func Analyze(g *grammar.GrammarTable) *Analysis {
	a := &Analysis{g: g, first: make(map[string]symbolSet), follow: make(map[string]symbolSet)}
	for _, nt := range g.NonTerminals() {
		a.first[nt] = newSymbolSet()
	}
	a.computeFirst()
	for _, nt := range g.NonTerminals() {
		a.follow[nt] = newSymbolSet()
	}
	if g.Axiom != "" {
		a.follow[g.Axiom] = newSymbolSet(ll1kit.EndOfInput)
	}
	a.computeFollow()
	return a
}

func (a *Analysis) computeFirst() {
	for {
		grew := false
		for _, nt := range a.g.NonTerminals() {
			for _, prod := range a.g.Productions(nt) {
				s := a.firstOfSeq(prod)
				if a.first[nt].union(s) {
					grew = true
				}
			}
		}
		if !grew {
			return
		}
	}
}

// firstOfSeq computes FIRST(alpha) for a symbol sequence: FIRST of the
// empty sequence is {#}; otherwise FIRST(X1) minus epsilon, plus
// FIRST(X2...Xn) if epsilon in FIRST(X1), and so on.
func (a *Analysis) firstOfSeq(seq []string) symbolSet {
	if len(seq) == 0 {
		return newSymbolSet(ll1kit.Epsilon)
	}
	result := newSymbolSet()
	for i, sym := range seq {
		firstSym := a.firstOfSymbol(sym)
		nullable := firstSym[ll1kit.Epsilon]
		for s := range firstSym {
			if s != ll1kit.Epsilon {
				result[s] = true
			}
		}
		if !nullable {
			return result
		}
		if i == len(seq)-1 {
			result[ll1kit.Epsilon] = true
		}
	}
	return result
}

func (a *Analysis) firstOfSymbol(sym string) symbolSet {
	if sym == ll1kit.Epsilon {
		return newSymbolSet(ll1kit.Epsilon)
	}
	if a.g.IsNonTerminal(sym) {
		return a.first[sym]
	}
	return newSymbolSet(sym) // terminal
}

func (a *Analysis) computeFollow() {
	for {
		grew := false
		for _, lhs := range a.g.NonTerminals() {
			for _, prod := range a.g.Productions(lhs) {
				for i, sym := range prod {
					if !a.g.IsNonTerminal(sym) {
						continue
					}
					beta := prod[i+1:]
					firstBeta := a.firstOfSeq(beta)
					addition := newSymbolSet()
					for s := range firstBeta {
						if s != ll1kit.Epsilon {
							addition[s] = true
						}
					}
					if firstBeta[ll1kit.Epsilon] {
						for s := range a.follow[lhs] {
							addition[s] = true
						}
					}
					if a.follow[sym].union(addition) {
						grew = true
					}
				}
			}
		}
		if !grew {
			return
		}
	}
}

// First returns FIRST(symbol) for a single terminal, non-terminal or
// ll1kit.Epsilon.
func (a *Analysis) First(symbol string) []string {
	return a.firstOfSymbol(symbol).slice()
}

// FirstOfString returns FIRST(alpha) for a symbol sequence.
func (a *Analysis) FirstOfString(seq []string) []string {
	return a.firstOfSeq(seq).slice()
}

// Follow returns FOLLOW(nonTerminal).
func (a *Analysis) Follow(nonTerminal string) []string {
	return a.follow[nonTerminal].slice()
}

// Nullable reports whether symbol (terminal, non-terminal, or
// ll1kit.Epsilon) can derive the empty string: # is in FIRST(symbol)
// iff symbol can derive the empty string.
func (a *Analysis) Nullable(symbol string) bool {
	return a.firstOfSymbol(symbol)[ll1kit.Epsilon]
}

// Grammar returns the GrammarTable this Analysis was built from.
func (a *Analysis) Grammar() *grammar.GrammarTable {
	return a.g
}
