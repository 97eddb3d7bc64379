package regex

import (
	"testing"
)

func TestParseExprLiteralConcat(t *testing.T) {
	n, err := ParseExpr("ab", "a.b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cc, ok := n.(Concat)
	if !ok {
		t.Fatalf("want Concat, got %T", n)
	}
	if cc.L.(Literal).Char != 'a' || cc.R.(Literal).Char != 'b' {
		t.Fatalf("unexpected concat operands: %s", n)
	}
}

func TestParseExprAltPrecedence(t *testing.T) {
	// a.b|c should parse as (a.b)|c, alternation binds loosest.
	n, err := ParseExpr("r", "a.b|c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	alt, ok := n.(Alt)
	if !ok {
		t.Fatalf("want Alt at top level, got %T", n)
	}
	if _, ok := alt.L.(Concat); !ok {
		t.Fatalf("want Concat on left of Alt, got %T", alt.L)
	}
	if alt.R.(Literal).Char != 'c' {
		t.Fatalf("unexpected right operand: %s", alt.R)
	}
}

func TestParseExprPostfixOperators(t *testing.T) {
	cases := []struct {
		expr string
		want func(Node) bool
	}{
		{"a*", func(n Node) bool { _, ok := n.(Star); return ok }},
		{"a+", func(n Node) bool { _, ok := n.(Plus); return ok }},
		{"a?", func(n Node) bool { _, ok := n.(Optional); return ok }},
	}
	for _, c := range cases {
		n, err := ParseExpr("r", c.expr)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.expr, err)
		}
		if !c.want(n) {
			t.Errorf("%s: unexpected node type %T", c.expr, n)
		}
	}
}

func TestParseExprGrouping(t *testing.T) {
	n, err := ParseExpr("r", "(a|b).c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cc, ok := n.(Concat)
	if !ok {
		t.Fatalf("want Concat, got %T", n)
	}
	if _, ok := cc.L.(Alt); !ok {
		t.Fatalf("want Alt as left operand of Concat, got %T", cc.L)
	}
}

func TestParseExprEscape(t *testing.T) {
	n, err := ParseExpr("r", `\.`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lit, ok := n.(Literal)
	if !ok || lit.Char != '.' {
		t.Fatalf("want escaped literal '.', got %v", n)
	}
}

func TestParseExprErrors(t *testing.T) {
	cases := []string{"", "a|", "(a", "a)", `a\`, "*"}
	for _, expr := range cases {
		if _, err := ParseExpr("r", expr); err == nil {
			t.Errorf("expr %q: expected error, got none", expr)
		}
	}
}
