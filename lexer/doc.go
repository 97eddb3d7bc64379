/*
Package lexer implements component D of ll1kit: it drives a minimized
DFA (package automaton) over an input character stream and emits
longest-match tokens tagged by the regex rule name that matched,
discarding configured whitespace/comment-class tags before they reach
the parser.

Two constructors share the same contract: NewFromString for an
in-memory string, NewFromReader for a text file. Both produce the same
lazily-pulled token sequence terminated by a synthetic end-of-input
token.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lexer
