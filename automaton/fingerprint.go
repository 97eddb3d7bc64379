package automaton

import (
	"sort"

	"github.com/cnf/structhash"
)

// canonical is a hash-friendly, deterministic projection of a DFA:
// sorted transition triples and sorted (state, tag) pairs. Two DFAs
// that are isomorphic up to state renumbering produce the same
// canonical form, provided both were built by Minimize (which assigns
// block ids in a signature-sorted order -- see initialPartition and
// refine).
type canonical struct {
	NumStates int
	Start     int
	Trans     []canonicalTrans
	Accept    []canonicalAccept
}

type canonicalTrans struct {
	From int
	Sym  rune
	To   int
}

type canonicalAccept struct {
	State int
	Tag   string
}

func (d *DFA) canonicalForm() canonical {
	var c canonical
	c.NumStates = d.NumStates
	c.Start = d.Start
	for from, m := range d.trans {
		for sym, to := range m {
			c.Trans = append(c.Trans, canonicalTrans{From: from, Sym: sym, To: to})
		}
	}
	sort.Slice(c.Trans, func(i, j int) bool {
		if c.Trans[i].From != c.Trans[j].From {
			return c.Trans[i].From < c.Trans[j].From
		}
		return c.Trans[i].Sym < c.Trans[j].Sym
	})
	for state, tag := range d.accept {
		c.Accept = append(c.Accept, canonicalAccept{State: state, Tag: tag})
	}
	sort.Slice(c.Accept, func(i, j int) bool { return c.Accept[i].State < c.Accept[j].State })
	return c
}

// Fingerprint returns a stable content hash of the DFA's canonical
// form, used by tests asserting that minimizing an already-minimal
// DFA is idempotent, and by the CLI's debug trace, which logs a short
// identifier for the compiled automaton without printing the whole
// transition table.
func (d *DFA) Fingerprint() string {
	hash, err := structhash.Hash(d.canonicalForm(), 1)
	if err != nil {
		// canonical is a plain, hashable struct of ints/strings/runes;
		// structhash.Hash only fails on unsupported field kinds.
		panic("automaton: fingerprint failed: " + err.Error())
	}
	return hash
}
