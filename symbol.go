package ll1kit

import "fmt"

// Epsilon is the sentinel symbol denoting the empty production. It is
// never a member of a GrammarTable's terminal or non-terminal sets
// (see grammar.GrammarTable, invariant 1).
const Epsilon = "#"

// EndOfInput is the synthetic lookahead symbol consumed once the
// input is exhausted, and the sole entry of FOLLOW(axiom) when
// nothing else forces a wider FOLLOW set.
const EndOfInput = "$"

// TokType is a category type for a Token, naming the regex rule that
// produced it (or EndOfInput for the synthetic final token). We do
// not define any constants here; rule names come from the user's
// regex alphabet.
type TokType string

// Token is produced by a lexer.Tokenizer and consumed by an
// lltable.Driver. It reflects a terminal symbol recognized in the
// input stream.
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span captures a length of input consumed by a token: a start
// position and the position just behind the end.
type Span [2]int

// From returns the start value of a span.
func (s Span) From() int { return s[0] }

// To returns the position just behind the end of a span.
func (s Span) To() int { return s[1] }

// Len returns the length of the span.
func (s Span) Len() int { return s[1] - s[0] }

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Symbol classification ----------------------------------------------

// SymbolKind classifies a grammar symbol as terminal, non-terminal or
// the epsilon marker.
type SymbolKind int

const (
	// TerminalSymbol is any symbol appearing in some RHS that is not
	// a non-terminal and not Epsilon.
	TerminalSymbol SymbolKind = iota
	// NonTerminalSymbol is any symbol appearing on some rule LHS.
	NonTerminalSymbol
	// EpsilonSymbol is the distinguished Epsilon marker.
	EpsilonSymbol
)

func (k SymbolKind) String() string {
	switch k {
	case TerminalSymbol:
		return "terminal"
	case NonTerminalSymbol:
		return "non-terminal"
	case EpsilonSymbol:
		return "epsilon"
	default:
		return "unknown"
	}
}
