package lltable

import (
	"fmt"
	"io"
	"strings"

	"github.com/llparse/ll1kit"
	"github.com/llparse/ll1kit/lexer"
)

// Result is the outcome of driving a Table against a token stream:
// whether the input was accepted, and -- on acceptance -- the ordered
// sequence of rule indices applied (the leftmost derivation).
type Result struct {
	Accepted   bool
	Derivation []int
}

// Driver is a stack-based LL(1) parser driver. It exclusively owns
// its stack and derivation log, and holds a non-owning reference to
// the token source.
type Driver struct {
	table   *Table
	tok     lexer.Tokenizer
	verbose io.Writer // nil disables step tracing
}

// New creates a Driver for table, pulling tokens from tok.
func New(table *Table, tok lexer.Tokenizer) *Driver {
	return &Driver{table: table, tok: tok}
}

// SetVerbose installs w as the destination for one human-readable
// trace line per driver step (stack contents, lookahead, action);
// pass nil to disable tracing.
func (d *Driver) SetVerbose(w io.Writer) {
	d.verbose = w
}

// Parse drives the table against the token stream to completion,
// returning a *ll1kit.ParseError on rejection or a
// *ll1kit.LexicalError if the underlying tokenizer cannot produce a
// next token. A token matches a grammar terminal by its rule tag
// (TokType), or by its lexeme when the tag is not a terminal of the
// grammar but the lexeme is.
func (d *Driver) Parse() (Result, error) {
	g := d.table.Grammar()
	stack := []string{ll1kit.EndOfInput, g.Axiom}
	var derivation []int

	cur, err := d.tok.Next()
	if err != nil {
		return Result{}, err
	}

	for {
		top := stack[len(stack)-1]
		la := string(cur.TokType())
		if la != ll1kit.EndOfInput && !g.IsTerminal(la) && g.IsTerminal(cur.Lexeme()) {
			// the grammar spells this terminal literally ("(", "id")
			// rather than by the lexer rule name: match on the lexeme
			la = cur.Lexeme()
		}

		if top == ll1kit.EndOfInput {
			if la == ll1kit.EndOfInput {
				d.trace(stack, cur, "accept")
				return Result{Accepted: true, Derivation: derivation}, nil
			}
			d.trace(stack, cur, "reject: unexpected input after end of derivation")
			return Result{}, &ll1kit.ParseError{StackTop: top, Lookahead: la, Pos: cur.Span().From()}
		}

		if g.IsTerminal(top) {
			if top == la {
				d.trace(stack, cur, "match "+top)
				stack = stack[:len(stack)-1]
				cur, err = d.tok.Next()
				if err != nil {
					return Result{}, err
				}
				continue
			}
			d.trace(stack, cur, "reject: terminal mismatch")
			return Result{}, &ll1kit.ParseError{StackTop: top, Lookahead: la, Pos: cur.Span().From()}
		}

		idx, ok := d.table.Lookup(top, la)
		if !ok {
			d.trace(stack, cur, "reject: no rule for M["+top+", "+la+"]")
			return Result{}, &ll1kit.ParseError{StackTop: top, Lookahead: la, Pos: cur.Span().From()}
		}
		rule := g.RuleAt(idx)
		d.trace(stack, cur, fmt.Sprintf("expand %s (rule %d)", rule, idx))
		stack = stack[:len(stack)-1]
		derivation = append(derivation, idx)
		if !rule.RHS.IsEpsilon() {
			for i := len(rule.RHS) - 1; i >= 0; i-- {
				stack = append(stack, rule.RHS[i])
			}
		}
	}
}

func (d *Driver) trace(stack []string, la ll1kit.Token, action string) {
	if d.verbose == nil {
		return
	}
	fmt.Fprintf(d.verbose, "stack=[%s]  lookahead=%s %q  %s\n",
		strings.Join(stack, " "), la.TokType(), la.Lexeme(), action)
}
