package automaton

import (
	"sort"
	"strconv"
	"strings"

	"github.com/llparse/ll1kit/automaton/iteratable"
)

// DFA is a (possibly partial) deterministic finite automaton:
// (Q', q0', δ, F', tag'). Q' is the implicit range [0, NumStates).
type DFA struct {
	NumStates int
	Start     int
	trans     map[int]map[rune]int
	accept    map[int]string
}

func newDFA() *DFA {
	return &DFA{trans: make(map[int]map[rune]int), accept: make(map[int]string)}
}

// Trans returns the state δ(state, r) reaches, and whether that
// transition is defined.
func (d *DFA) Trans(state int, r rune) (int, bool) {
	to, ok := d.trans[state][r]
	return to, ok
}

// Tag returns the rule name tagging an accepting state, and whether
// state is accepting at all.
func (d *DFA) Tag(state int) (string, bool) {
	tag, ok := d.accept[state]
	return tag, ok
}

func (d *DFA) setTrans(from int, r rune, to int) {
	m, ok := d.trans[from]
	if !ok {
		m = make(map[rune]int)
		d.trans[from] = m
	}
	m[r] = to
}

// epsClosure computes ε-closure({states...}) as a state-id set,
// following the worklist idiom used elsewhere in this module for
// growing a reachable-set fixed point: seed the set, then repeatedly
// union in anything newly reachable until the set stops growing.
func epsClosure(n *NFA, seed []int) *iteratable.Set {
	s := iteratable.NewSet(seed...)
	s.IterateOnce()
	for s.Next() {
		for _, to := range n.Eps(s.Item()) {
			s.Add(to)
		}
	}
	return s
}

// signature returns a canonical, order-independent key for a set of
// NFA state ids, used to deduplicate DFA states during subset
// construction.
func signature(s *iteratable.Set) string {
	vals := s.Values()
	sort.Ints(vals)
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// dominantTag picks the accepting NFA tag with the minimum state id
// among the states in s. Because Build constructs each rule's states
// in source order (earlier rules first), the lowest-numbered
// accepting state in a subset is also the earliest-declared rule,
// which is exactly the "earliest rule wins a length tie" priority a
// lexer needs.
func dominantTag(n *NFA, s *iteratable.Set) (string, bool) {
	best := -1
	tag := ""
	for _, st := range s.Values() {
		if t, ok := n.IsAccepting(st); ok {
			if best == -1 || st < best {
				best = st
				tag = t
			}
		}
	}
	return tag, best != -1
}

// Subset performs subset construction: DFA states are ε-closures of
// NFA state sets.
func Subset(n *NFA) *DFA {
	d := newDFA()
	alphabet := n.Alphabet()

	ids := make(map[string]int)
	var sets []*iteratable.Set

	startSet := epsClosure(n, []int{n.Start})
	startSig := signature(startSet)
	d.Start = d.newState()
	ids[startSig] = d.Start
	sets = append(sets, startSet)
	if tag, ok := dominantTag(n, startSet); ok {
		d.accept[d.Start] = tag
	}

	for i := 0; i < len(sets); i++ {
		fromSet := sets[i]
		fromID := ids[signature(fromSet)]
		for _, a := range alphabet {
			var moved []int
			for _, q := range fromSet.Values() {
				moved = append(moved, n.Trans(q, a)...)
			}
			if len(moved) == 0 {
				continue
			}
			closure := epsClosure(n, moved)
			if closure.Empty() {
				continue
			}
			sig := signature(closure)
			toID, seen := ids[sig]
			if !seen {
				toID = d.newState()
				ids[sig] = toID
				sets = append(sets, closure)
				if tag, ok := dominantTag(n, closure); ok {
					d.accept[toID] = tag
				}
			}
			d.setTrans(fromID, a, toID)
		}
	}
	return d
}

func (d *DFA) newState() int {
	id := d.NumStates
	d.NumStates++
	return id
}
