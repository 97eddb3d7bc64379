package lexer

import (
	"io"

	"github.com/llparse/ll1kit"
	"github.com/llparse/ll1kit/automaton"
)

// Lexer drives a minimized DFA over an input rune stream with
// longest-match, earliest-rule-tie-break semantics. It exclusively
// owns its position cursor and holds a non-owning view of the input
// buffer and the (shared, immutable) DFA.
type Lexer struct {
	dfa     *automaton.DFA
	input   []rune
	pos     int
	discard map[string]bool
	eofSent bool
}

// NewFromString creates a Lexer over an in-memory string. discard
// names the set of rule tags (e.g. "WS") whose tokens are consumed
// internally and never handed to the caller.
func NewFromString(dfa *automaton.DFA, input string, discard map[string]bool) *Lexer {
	return &Lexer{dfa: dfa, input: []rune(input), discard: discard}
}

// NewFromReader creates a Lexer over the full contents of r, read
// eagerly: no streaming discipline is required beyond not
// materializing the token list.
func NewFromReader(dfa *automaton.DFA, r io.Reader, discard map[string]bool) (*Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ll1kit.CannotOpenInput{Path: "<input>", Err: err}
	}
	return NewFromString(dfa, string(data), discard), nil
}

// Next returns the next non-discarded token, or the synthetic
// end-of-input token once the buffer is exhausted. It returns a
// *ll1kit.LexicalError if no rule matches at the current position; the
// chosen behavior on a dead end is to abort rather than skip or retry.
func (l *Lexer) Next() (ll1kit.Token, error) {
	for {
		tok, err := l.next1()
		if err != nil {
			return nil, err
		}
		if l.discard[string(tok.TokType())] {
			continue
		}
		return tok, nil
	}
}

func (l *Lexer) next1() (ll1kit.Token, error) {
	if l.pos >= len(l.input) {
		l.eofSent = true
		return EndOfInputToken(l.pos), nil
	}

	p0 := l.pos
	state := l.dfa.Start
	lastGoodPos := -1
	var lastGoodTag string
	pos := p0

	if tag, ok := l.dfa.Tag(state); ok {
		lastGoodPos, lastGoodTag = pos, tag
	}
	for pos < len(l.input) {
		to, ok := l.dfa.Trans(state, l.input[pos])
		if !ok {
			break
		}
		state = to
		pos++
		if tag, ok := l.dfa.Tag(state); ok {
			lastGoodPos = pos
			lastGoodTag = tag
		}
	}

	if lastGoodPos == -1 || lastGoodPos == p0 {
		// A zero-length match (the start state itself accepting, and
		// no longer match found) would never advance pos; treat it as
		// a lexical error rather than loop forever.
		return nil, &ll1kit.LexicalError{Pos: p0}
	}

	lexeme := string(l.input[p0:lastGoodPos])
	l.pos = lastGoodPos
	return token{
		tokType: ll1kit.TokType(lastGoodTag),
		lexeme:  lexeme,
		span:    ll1kit.Span{p0, lastGoodPos},
	}, nil
}
