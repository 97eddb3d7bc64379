package regex

import (
	"bufio"
	"io"
	"strings"

	"github.com/llparse/ll1kit"
)

// ParseRules reads a regex source: line-oriented, each non-blank,
// non-comment line of the form "NAME : EXPR". Returns the rules in
// source order (Rule.Order is populated), which doubles as DFA
// tie-break priority (earlier wins).
func ParseRules(r io.Reader) ([]Rule, error) {
	var rules []Rule
	scanner := bufio.NewScanner(r)
	lineNo := 0
	order := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		name, expr, err := splitRule(line, lineNo)
		if err != nil {
			return nil, err
		}
		ast, err := ParseExpr(name, expr)
		if err != nil {
			return nil, err
		}
		rules = append(rules, Rule{Name: name, Expr: ast, Order: order})
		order++
	}
	if err := scanner.Err(); err != nil {
		return nil, &ll1kit.CannotOpenInput{Path: "<regex source>", Err: err}
	}
	return rules, nil
}

func splitRule(line string, lineNo int) (name, expr string, err error) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", &ll1kit.MalformedRegex{Message: "missing ':' separating rule name from expression", Pos: lineNo}
	}
	name = strings.TrimSpace(line[:idx])
	expr = strings.TrimSpace(line[idx+1:])
	if name == "" {
		return "", "", &ll1kit.MalformedRegex{Message: "empty rule name", Pos: lineNo}
	}
	if expr == "" {
		return "", "", &ll1kit.MalformedRegex{RuleName: name, Message: "empty expression", Pos: lineNo}
	}
	return name, expr, nil
}
