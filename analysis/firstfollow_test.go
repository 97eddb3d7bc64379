package analysis

import (
	"sort"
	"strings"
	"testing"

	"github.com/llparse/ll1kit"
	"github.com/llparse/ll1kit/grammar"
)

func mustParse(t *testing.T, src string) *grammar.GrammarTable {
	t.Helper()
	g, err := grammar.ParseReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func sortedStrings(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}

func assertSet(t *testing.T, label string, got []string, want ...string) {
	t.Helper()
	g := sortedStrings(got)
	w := sortedStrings(want)
	if len(g) != len(w) {
		t.Fatalf("%s: want %v, got %v", label, w, g)
	}
	for i := range g {
		if g[i] != w[i] {
			t.Fatalf("%s: want %v, got %v", label, w, g)
		}
	}
}

// classic expression grammar, left-factored for LL(1):
//
//	E  -> T E_
//	E_ -> + T E_ | #
//	T  -> F T_
//	T_ -> * F T_ | #
//	F  -> ( E ) | id
const exprGrammar = `
E -> T E_
E_ -> + T E_ | #
T -> F T_
T_ -> * F T_ | #
F -> ( E ) | id
`

func TestFirstSetsExpressionGrammar(t *testing.T) {
	g := mustParse(t, exprGrammar)
	a := Analyze(g)

	assertSet(t, "FIRST(F)", a.First("F"), "(", "id")
	assertSet(t, "FIRST(T)", a.First("T"), "(", "id")
	assertSet(t, "FIRST(E)", a.First("E"), "(", "id")
	assertSet(t, "FIRST(T_)", a.First("T_"), "*", ll1kit.Epsilon)
	assertSet(t, "FIRST(E_)", a.First("E_"), "+", ll1kit.Epsilon)
}

func TestFollowSetsExpressionGrammar(t *testing.T) {
	g := mustParse(t, exprGrammar)
	a := Analyze(g)

	assertSet(t, "FOLLOW(E)", a.Follow("E"), ll1kit.EndOfInput, ")")
	assertSet(t, "FOLLOW(E_)", a.Follow("E_"), ll1kit.EndOfInput, ")")
	assertSet(t, "FOLLOW(T)", a.Follow("T"), "+", ll1kit.EndOfInput, ")")
	assertSet(t, "FOLLOW(T_)", a.Follow("T_"), "+", ll1kit.EndOfInput, ")")
	assertSet(t, "FOLLOW(F)", a.Follow("F"), "+", "*", ll1kit.EndOfInput, ")")
}

func TestNullable(t *testing.T) {
	g := mustParse(t, exprGrammar)
	a := Analyze(g)
	if !a.Nullable("E_") {
		t.Error("E_ should be nullable (has an epsilon production)")
	}
	if a.Nullable("E") {
		t.Error("E should not be nullable")
	}
	if !a.Nullable(ll1kit.Epsilon) {
		t.Error("epsilon itself should be nullable")
	}
}

// Grammar with epsilon woven into the middle of a production, to
// exercise FIRST(alpha) with a nullable prefix symbol.
const epsilonInMiddleGrammar = `
S -> A B c
A -> a | #
B -> b | #
`

func TestFirstOfStringWithNullablePrefix(t *testing.T) {
	g := mustParse(t, epsilonInMiddleGrammar)
	a := Analyze(g)

	// FIRST(A B c): A nullable contributes FIRST(B c); B nullable
	// contributes FIRST(c). So overall {a, b, c}.
	assertSet(t, "FIRST(A B c)", a.FirstOfString([]string{"A", "B", "c"}), "a", "b", "c")
}

func TestFollowPropagatesThroughNullableTail(t *testing.T) {
	g := mustParse(t, epsilonInMiddleGrammar)
	a := Analyze(g)
	// FOLLOW(B) must include FIRST(c) = {c}.
	assertSet(t, "FOLLOW(B)", a.Follow("B"), "c")
	// FOLLOW(A) must include FIRST(B c) minus epsilon = {b, c} (B is
	// nullable, so c leaks through).
	assertSet(t, "FOLLOW(A)", a.Follow("A"), "b", "c")
}

func TestLeftRecursiveGrammarTerminates(t *testing.T) {
	// Left recursion doesn't affect FIRST/FOLLOW fixed-point iteration
	// (unlike a naive recursive-descent FIRST function, which would
	// recurse forever on this grammar).
	g := mustParse(t, "E -> E + T | T\nT -> id\n")
	a := Analyze(g)
	assertSet(t, "FIRST(E)", a.First("E"), "id")
	assertSet(t, "FOLLOW(E)", a.Follow("E"), "+", ll1kit.EndOfInput)
}
