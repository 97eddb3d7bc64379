/*
Package ll1kit is an LL(1) parsing toolbox.

ll1kit compiles a user-supplied regex alphabet and a user-supplied
context-free grammar into a working LL(1) parser, and decides whether
an input text is accepted. Package structure is as follows:

■ regex: tokenizes and parses a regular-expression alphabet into ASTs.

■ automaton: Thompson-constructs an NFA from a set of regex ASTs, then
subset-constructs and minimizes it into a DFA.

■ lexer: drives a minimized DFA over an input stream, emitting
longest-match tokens.

■ grammar: parses a grammar file into a GrammarTable.

■ analysis: computes FIRST/FOLLOW sets and grammar augmentation.

■ lltable: builds the LL(1) predictive table and drives a stack-based
parse.

The base package contains data types used throughout all the other
packages: TokType, Token, Span and SymbolKind, plus the Epsilon and
EndOfInput sentinel symbols. Grammar symbols themselves are plain
strings.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package ll1kit
