/*
Package regex scans and parses a named regular-expression alphabet
(component A of ll1kit) into abstract syntax trees ready for Thompson
construction by package automaton.

Source format

A regex source file contains one or more named rules, one per line:

    name : expression

Rule order defines priority (earlier wins) for later DFA tie-breaking
in package automaton. The expression sublanguage, in decreasing
precedence: unary postfix *, +, ?; explicit binary . for concatenation
(no implicit juxtaposition); binary | for alternation; parentheses for
grouping. Every other character is a literal. A backslash escapes the
following character, so that the operator characters themselves (and
backslash) can appear as literals: \. \| \* \+ \? \( \) \\.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package regex
