package regex

import (
	"fmt"

	"github.com/llparse/ll1kit"
)

// operator characters recognized by the expression sublanguage.
const operators = ".|*+?()\\"

// parser is a small recursive-descent parser over a rune stream,
// mirroring the one-operator-per-production shape used across the
// pack (cf. dtromb-parser/lexl: alternation.go, star.go, plus.go,
// sequence.go, charlit.go -- each a dedicated parse step here instead
// of a dedicated file, since the whole sublanguage is small enough to
// read as one function per precedence level).
type parser struct {
	src  []rune
	pos  int
	name string
}

// ParseExpr parses a single regex expression (the right-hand side of
// a "name : expr" rule) into an AST.
func ParseExpr(name, expr string) (Node, error) {
	p := &parser{src: []rune(expr), name: name}
	if p.atEnd() {
		return nil, p.err("empty expression")
	}
	n, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, p.err(fmt.Sprintf("unexpected %q", p.peek()))
	}
	return n, nil
}

func (p *parser) err(msg string) error {
	return &ll1kit.MalformedRegex{RuleName: p.name, Message: msg, Pos: p.pos}
}

func (p *parser) atEnd() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.atEnd() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) advance() rune {
	r := p.src[p.pos]
	p.pos++
	return r
}

// parseAlt := concat ('|' concat)*
func (p *parser) parseAlt() (Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for !p.atEnd() && p.peek() == '|' {
		p.advance()
		if p.atEnd() || p.peek() == '|' || p.peek() == ')' {
			return nil, p.err("empty alternative")
		}
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = Alt{L: left, R: right}
	}
	return left, nil
}

// parseConcat := postfix ('.' postfix)*
func (p *parser) parseConcat() (Node, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	for !p.atEnd() && p.peek() == '.' {
		p.advance()
		right, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		left = Concat{L: left, R: right}
	}
	return left, nil
}

// parsePostfix := atom ('*' | '+' | '?')*
func (p *parser) parsePostfix() (Node, error) {
	n, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for !p.atEnd() {
		switch p.peek() {
		case '*':
			p.advance()
			n = Star{X: n}
		case '+':
			p.advance()
			n = Plus{X: n}
		case '?':
			p.advance()
			n = Optional{X: n}
		default:
			return n, nil
		}
	}
	return n, nil
}

// parseAtom := '(' alt ')' | literal
func (p *parser) parseAtom() (Node, error) {
	if p.atEnd() {
		return nil, p.err("unexpected end of expression")
	}
	if p.peek() == '(' {
		p.advance()
		n, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		if p.atEnd() || p.peek() != ')' {
			return nil, p.err("unbalanced parentheses")
		}
		p.advance()
		return n, nil
	}
	if p.peek() == '\\' {
		p.advance()
		if p.atEnd() {
			return nil, p.err("dangling escape")
		}
		return Literal{Char: p.advance()}, nil
	}
	c := p.peek()
	if isOperator(c) {
		return nil, p.err(fmt.Sprintf("stray operator %q", c))
	}
	p.advance()
	return Literal{Char: c}, nil
}

func isOperator(r rune) bool {
	for _, o := range operators {
		if r == o {
			return true
		}
	}
	return false
}
