/*
Package grammar implements component E of ll1kit: parsing a grammar
source file into a GrammarTable, the immutable entity consumed by
package analysis and package lltable.

Source format

One rule per line: "LHS -> RHS1 | RHS2 | ... | RHSk", symbols
whitespace-separated, epsilon written as "#". The first LHS
encountered becomes the axiom, unless ParseReader is given an
explicit WithAxiom option.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package grammar
