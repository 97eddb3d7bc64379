/*
Package analysis implements component F of ll1kit: FIRST and FOLLOW
set computation and grammar augmentation, consumed by package lltable
to build the LL(1) predictive table.

FIRST and FOLLOW are computed by explicit fixed-point iteration over
the whole grammar (an outer loop re-evaluates every rule until no set
grows), rather than single-symbol recursion, so that left-recursive or
mutually-recursive grammars cannot cause unbounded recursion.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package analysis
