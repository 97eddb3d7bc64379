package grammar

import (
	"strings"
	"testing"
)

func TestInsertRuleSetsAxiomFromFirstLHS(t *testing.T) {
	g := New()
	g.InsertRule("E", []string{"T"})
	g.InsertRule("T", []string{"id"})
	if g.Axiom != "E" {
		t.Fatalf("want axiom E, got %s", g.Axiom)
	}
}

func TestRecomputeTerminalsExcludesNonTerminals(t *testing.T) {
	g := New()
	g.InsertRule("E", []string{"E", "+", "T"})
	g.InsertRule("E", []string{"T"})
	g.InsertRule("T", []string{"id"})

	terms := g.Terminals()
	want := map[string]bool{"+": true, "id": true}
	if len(terms) != len(want) {
		t.Fatalf("want %d terminals, got %v", len(want), terms)
	}
	for _, s := range terms {
		if !want[s] {
			t.Errorf("unexpected terminal %q", s)
		}
	}
	if g.IsNonTerminal("E") != true || g.IsTerminal("E") != false {
		t.Errorf("E should be a non-terminal only")
	}
}

func TestRuleIndexIsDenseAndOrdered(t *testing.T) {
	g := New()
	r0 := g.InsertRule("S", []string{"a"})
	r1 := g.InsertRule("S", []string{"b"})
	if r0.Index != 0 || r1.Index != 1 {
		t.Fatalf("want indices 0,1, got %d,%d", r0.Index, r1.Index)
	}
	if len(g.Rules()) != 2 {
		t.Fatalf("want 2 rules, got %d", len(g.Rules()))
	}
	if g.RuleAt(1).LHS != "S" {
		t.Fatalf("RuleAt(1) mismatch: %v", g.RuleAt(1))
	}
	if idx, ok := g.IndexOf("S", Production{"a"}); !ok || idx != 0 {
		t.Fatalf("IndexOf(S, [a]) want (0, true), got (%d, %v)", idx, ok)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := New()
	g.InsertRule("S", []string{"a"})
	clone := g.Clone()
	clone.InsertRule("S", []string{"b"})
	if len(g.Productions("S")) != 1 {
		t.Fatalf("mutating the clone should not affect the original")
	}
	if len(clone.Productions("S")) != 2 {
		t.Fatalf("clone should have both productions")
	}
}

func TestSetAxiomRejectsUndeclaredNonTerminal(t *testing.T) {
	g := New()
	g.InsertRule("S", []string{"a"})
	if err := g.SetAxiom("X"); err == nil {
		t.Fatal("want error setting axiom to an undeclared non-terminal")
	}
}

func TestProductionIsEpsilon(t *testing.T) {
	p := Production{"#"}
	if !p.IsEpsilon() {
		t.Fatal("want IsEpsilon true for the sole-epsilon production")
	}
	if (Production{"a"}).IsEpsilon() {
		t.Fatal("want IsEpsilon false for a non-epsilon production")
	}
}

func TestParseReaderBasic(t *testing.T) {
	src := `
// a tiny expression grammar
E -> T E_
E_ -> + T E_ | #
T -> id
`
	g, err := ParseReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Axiom != "E" {
		t.Fatalf("want axiom E, got %s", g.Axiom)
	}
	if len(g.Productions("E_")) != 2 {
		t.Fatalf("want 2 productions for E_, got %d", len(g.Productions("E_")))
	}
	if !g.Productions("E_")[1].IsEpsilon() {
		t.Fatalf("want second E_ production to be epsilon")
	}
}

func TestParseReaderWithAxiomOption(t *testing.T) {
	src := "E -> T\nT -> id\n"
	g, err := ParseReader(strings.NewReader(src), WithAxiom("T"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Axiom != "T" {
		t.Fatalf("want axiom overridden to T, got %s", g.Axiom)
	}
}

func TestParseReaderMalformedLines(t *testing.T) {
	cases := []string{"E T", "-> a", "E ->"}
	for _, src := range cases {
		if _, err := ParseReader(strings.NewReader(src)); err == nil {
			t.Errorf("source %q: expected error, got none", src)
		}
	}
}
