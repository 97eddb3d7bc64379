/*
Package lltable implements component G of ll1kit: construction of the
LL(1) predictive parsing table from a package analysis Analysis, and
the stack-based driver that consumes a package lexer token stream
against that table to accept or reject an input.

The table itself is backed by package lltable/sparse, a COO-encoded
sparse matrix keyed by (non-terminal, terminal) adapted from the
teacher's GOTO/ACTION table representation for LR parsing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lltable
