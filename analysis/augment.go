package analysis

import "github.com/llparse/ll1kit/grammar"

// Augment returns a new GrammarTable equal to g plus a fresh rule
// S' -> S, where S was g's axiom and S' becomes the new axiom. g
// itself is left untouched.
func Augment(g *grammar.GrammarTable) *grammar.GrammarTable {
	clone := g.Clone()
	AugmentInPlace(clone)
	return clone
}

// AugmentInPlace mutates g directly, adding S' -> S and reassigning
// the axiom to S'. Returns the fresh axiom's name.
func AugmentInPlace(g *grammar.GrammarTable) string {
	fresh := freshAxiomName(g, g.Axiom)
	oldAxiom := g.Axiom
	g.InsertRule(fresh, []string{oldAxiom})
	// SetAxiom cannot fail here: InsertRule just declared fresh as a
	// non-terminal.
	_ = g.SetAxiom(fresh)
	return fresh
}

// freshAxiomName returns base+"_P" with trailing underscores appended
// until the result collides with no existing terminal or
// non-terminal.
func freshAxiomName(g *grammar.GrammarTable, base string) string {
	candidate := base + "_P"
	for g.IsNonTerminal(candidate) || g.IsTerminal(candidate) {
		candidate += "_"
	}
	return candidate
}
