/*
Package automaton implements components B and C of ll1kit: Thompson
construction of an NFA from a set of named regex ASTs (package
regex), subset construction of a DFA from that NFA, and DFA
minimization by partition refinement.

States are addressed by dense integer identifiers held in an arena,
avoiding the ownership cycles a pointer-graph representation of a
cyclic automaton would otherwise require.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package automaton

import "github.com/llparse/ll1kit/regex"

// NFA is an epsilon-NFA over a rune alphabet: (Q, q0, Δ, F, tag). Q is
// the implicit range [0, NumStates).
type NFA struct {
	NumStates int
	Start     int
	trans     map[int]map[rune][]int // Δ on Σ
	eps       map[int][]int          // Δ on ε
	accept    map[int]string         // F -> tag (rule name)
}

func newNFA() *NFA {
	return &NFA{
		trans:  make(map[int]map[rune][]int),
		eps:    make(map[int][]int),
		accept: make(map[int]string),
	}
}

func (n *NFA) newState() int {
	id := n.NumStates
	n.NumStates++
	return id
}

func (n *NFA) addTrans(from int, r rune, to int) {
	m, ok := n.trans[from]
	if !ok {
		m = make(map[rune][]int)
		n.trans[from] = m
	}
	m[r] = append(m[r], to)
}

func (n *NFA) addEps(from, to int) {
	n.eps[from] = append(n.eps[from], to)
}

// Trans returns the states reachable from state on rune r.
func (n *NFA) Trans(state int, r rune) []int {
	return n.trans[state][r]
}

// Eps returns the states reachable from state via an epsilon edge.
func (n *NFA) Eps(state int) []int {
	return n.eps[state]
}

// Alphabet returns every rune appearing on some non-epsilon
// transition anywhere in the NFA.
func (n *NFA) Alphabet() []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, m := range n.trans {
		for r := range m {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	return out
}

// IsAccepting reports whether state is a member of F, and if so its
// tag (the rule name whose sub-NFA contributed it).
func (n *NFA) IsAccepting(state int) (tag string, ok bool) {
	tag, ok = n.accept[state]
	return
}

// fragment is a single-entry, single-exit piece of an NFA under
// construction (the classic Thompson-construction invariant).
type fragment struct {
	start, accept int
}

// Build runs Thompson construction over rules (in source order) and
// merges each rule's sub-NFA into one, via a fresh initial state with
// epsilon transitions to every rule's own initial state. Each rule's
// accepting state is tagged with the rule's name.
func Build(rules []regex.Rule) *NFA {
	n := newNFA()
	root := n.newState()
	n.Start = root
	for _, rule := range rules {
		f := n.build(rule.Expr)
		n.addEps(root, f.start)
		n.accept[f.accept] = rule.Name
	}
	return n
}

func (n *NFA) build(node regex.Node) fragment {
	switch x := node.(type) {
	case regex.Literal:
		return n.buildLiteral(x)
	case regex.Concat:
		return n.buildConcat(x)
	case regex.Alt:
		return n.buildAlt(x)
	case regex.Star:
		return n.buildStar(x)
	case regex.Plus:
		return n.buildPlus(x)
	case regex.Optional:
		return n.buildOptional(x)
	default:
		panic("automaton: unknown regex AST node")
	}
}

func (n *NFA) buildLiteral(x regex.Literal) fragment {
	s := n.newState()
	e := n.newState()
	n.addTrans(s, x.Char, e)
	return fragment{start: s, accept: e}
}

func (n *NFA) buildConcat(x regex.Concat) fragment {
	l := n.build(x.L)
	r := n.build(x.R)
	n.addEps(l.accept, r.start)
	return fragment{start: l.start, accept: r.accept}
}

func (n *NFA) buildAlt(x regex.Alt) fragment {
	l := n.build(x.L)
	r := n.build(x.R)
	s := n.newState()
	e := n.newState()
	n.addEps(s, l.start)
	n.addEps(s, r.start)
	n.addEps(l.accept, e)
	n.addEps(r.accept, e)
	return fragment{start: s, accept: e}
}

func (n *NFA) buildStar(x regex.Star) fragment {
	inner := n.build(x.X)
	s := n.newState()
	e := n.newState()
	n.addEps(s, inner.start)
	n.addEps(s, e)
	n.addEps(inner.accept, inner.start)
	n.addEps(inner.accept, e)
	return fragment{start: s, accept: e}
}

func (n *NFA) buildPlus(x regex.Plus) fragment {
	inner := n.build(x.X)
	s := n.newState()
	e := n.newState()
	n.addEps(s, inner.start)
	n.addEps(inner.accept, inner.start)
	n.addEps(inner.accept, e)
	return fragment{start: s, accept: e}
}

func (n *NFA) buildOptional(x regex.Optional) fragment {
	inner := n.build(x.X)
	s := n.newState()
	e := n.newState()
	n.addEps(s, inner.start)
	n.addEps(s, e)
	n.addEps(inner.accept, e)
	return fragment{start: s, accept: e}
}
