/*
Package sparse implements a simple type for sparse predictive-parsing
tables, keyed by (non-terminal, terminal) string pairs. Every entry is
a single int32 rule index.

This implementation uses the COO algorithm (a.k.a. triplet-encoding),
adapted from the integer-indexed matrix used for LR GOTO/ACTION tables
in package lr/sparse, restricted to a single value per cell since an
LL(1) table cell holds exactly one rule index, never a shift/reduce
pair.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package sparse

// DefaultNullValue is the default empty-value for table cells.
const DefaultNullValue int32 = -1

// Table is a sparse matrix of rule indices, addressed by
// (non-terminal, terminal) symbol pairs.
type Table struct {
	values  []triplet
	nullval int32
}

type triplet struct {
	row, col string
	value    int32
}

// NewTable creates an empty predictive-parsing table. nullValue marks
// an absent cell (use DefaultNullValue unless a rule index of -1 is
// meaningful to the caller).
func NewTable(nullValue int32) *Table {
	return &Table{values: []triplet{}, nullval: nullValue}
}

// NullValue returns this table's null value.
func (t *Table) NullValue() int32 {
	return t.nullval
}

// ValueCount returns the number of populated cells.
func (t *Table) ValueCount() int {
	return len(t.values)
}

// Value returns the rule index stored at (nonterminal, terminal), or
// NullValue if the cell is unset.
func (t *Table) Value(nonterminal, terminal string) int32 {
	for _, tr := range t.values {
		if tr.row == nonterminal && tr.col == terminal {
			return tr.value
		}
	}
	return t.nullval
}

// Has reports whether a cell is populated.
func (t *Table) Has(nonterminal, terminal string) bool {
	return t.Value(nonterminal, terminal) != t.nullval
}

// Set stores value at (nonterminal, terminal), overwriting any prior
// value. Callers that must detect LL(1) conflicts should check Has
// first; Set alone never reports a conflict.
func (t *Table) Set(nonterminal, terminal string, value int32) {
	for i, tr := range t.values {
		if tr.row == nonterminal && tr.col == terminal {
			t.values[i].value = value
			return
		}
	}
	t.values = append(t.values, triplet{row: nonterminal, col: terminal, value: value})
}

// Each calls fn once per populated cell, in insertion order.
func (t *Table) Each(fn func(nonterminal, terminal string, value int32)) {
	for _, tr := range t.values {
		fn(tr.row, tr.col, tr.value)
	}
}
