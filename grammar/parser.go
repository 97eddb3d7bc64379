package grammar

import (
	"bufio"
	"io"
	"strings"

	"github.com/llparse/ll1kit"
)

// Option configures ParseReader.
type Option func(*GrammarTable)

// WithAxiom overrides the default first-LHS axiom rule: the file
// format itself carries no axiom declaration syntax, so this is the
// only way to pick a different one without reordering the source.
func WithAxiom(name string) Option {
	return func(g *GrammarTable) {
		// deferred: applied after parsing, once name is guaranteed to
		// be a declared non-terminal; see ParseReader.
		g.pendingAxiom = name
	}
}

// ParseReader parses a grammar source: one rule per line,
// "LHS -> RHS1 | RHS2 | ... | RHSk", whitespace-separated symbols, "#"
// for epsilon.
func ParseReader(r io.Reader, opts ...Option) (*GrammarTable, error) {
	g := New()
	for _, opt := range opts {
		opt(g)
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if err := parseLine(g, line, lineNo); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ll1kit.CannotOpenInput{Path: "<grammar source>", Err: err}
	}

	if g.pendingAxiom != "" {
		if err := g.SetAxiom(g.pendingAxiom); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func parseLine(g *GrammarTable, line string, lineNo int) error {
	arrow := strings.Index(line, "->")
	if arrow < 0 {
		return &ll1kit.MalformedGrammar{Line: lineNo, Message: `missing "->"`}
	}
	lhs := strings.TrimSpace(line[:arrow])
	if lhs == "" {
		return &ll1kit.MalformedGrammar{Line: lineNo, Message: "empty left-hand side"}
	}
	rest := line[arrow+2:]
	for _, alt := range strings.Split(rest, "|") {
		fields := strings.Fields(alt)
		if len(fields) == 0 {
			return &ll1kit.MalformedGrammar{Line: lineNo, Message: "empty right-hand side"}
		}
		g.InsertRule(lhs, fields)
	}
	return nil
}
