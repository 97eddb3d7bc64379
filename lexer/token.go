package lexer

import "github.com/llparse/ll1kit"

// token is the default, concrete implementation of ll1kit.Token.
type token struct {
	tokType ll1kit.TokType
	lexeme  string
	span    ll1kit.Span
}

func (t token) TokType() ll1kit.TokType { return t.tokType }
func (t token) Lexeme() string          { return t.lexeme }
func (t token) Span() ll1kit.Span       { return t.span }

// EndOfInputToken builds the synthetic token that terminates every
// token stream, positioned at pos.
func EndOfInputToken(pos int) ll1kit.Token {
	return token{tokType: ll1kit.TokType(ll1kit.EndOfInput), lexeme: "", span: ll1kit.Span{pos, pos}}
}

// Tokenizer is the scanner interface consumed by package lltable: a
// single NextToken-like method returning an error directly rather than
// routing it through a separately-installed error handler, since a
// LexicalError here is always fatal to the invocation.
type Tokenizer interface {
	Next() (ll1kit.Token, error)
}
