/*
Command ll1kit compiles a regex alphabet and a context-free grammar
into an LL(1) parser and reports whether an input is accepted.

Usage

	ll1kit <grammar_file> <regex_file> <input_file_or_string> [-v|-V]

If the third argument names an existing readable file, its contents
are treated as the input; otherwise the argument itself is treated as
the literal input string. With -v/-V, one human-readable line per
parser step is written to stdout before the final acceptance line.

Exit codes: 0 on success (acceptance result printed to stdout),
nonzero on invalid arguments, malformed regex, malformed grammar,
non-LL(1) grammar, or lexical error.
*/
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"

	"github.com/llparse/ll1kit"
	"github.com/llparse/ll1kit/analysis"
	"github.com/llparse/ll1kit/automaton"
	"github.com/llparse/ll1kit/grammar"
	"github.com/llparse/ll1kit/lexer"
	"github.com/llparse/ll1kit/lltable"
	"github.com/llparse/ll1kit/regex"
)

// discardTags names regex rule tags whose tokens never reach the
// parser; this CLI's convention is to name the whitespace rule "WS".
var discardTags = map[string]bool{"WS": true}

func main() {
	gtrace.SyntaxTracer = tracing.Select("ll1kit")

	if len(os.Args) == 2 && os.Args[1] == "repl" {
		runRepl()
		return
	}

	args, verbose, err := parseArgs(os.Args[1:])
	if err != nil {
		fail(err, 2)
	}

	grammarSrc, err := os.Open(args.grammarFile)
	if err != nil {
		fail(&ll1kit.CannotOpenInput{Path: args.grammarFile, Err: err}, 2)
	}
	defer grammarSrc.Close()

	regexSrc, err := os.Open(args.regexFile)
	if err != nil {
		fail(&ll1kit.CannotOpenInput{Path: args.regexFile, Err: err}, 2)
	}
	defer regexSrc.Close()

	accepted, err := run(grammarSrc, regexSrc, args.input, verbose)
	if err != nil {
		fail(err, exitCodeFor(err))
	}

	fmt.Printf("Accepted string? %t\n", accepted)
}

type cliArgs struct {
	grammarFile, regexFile, input string
}

func parseArgs(args []string) (cliArgs, bool, error) {
	verbose := false
	var positional []string
	for _, a := range args {
		switch a {
		case "-v", "-V":
			verbose = true
		default:
			positional = append(positional, a)
		}
	}
	if len(positional) != 3 {
		return cliArgs{}, false, &ll1kit.InvalidCommandLineArgs{
			Message: "expected <grammar_file> <regex_file> <input_file_or_string> [-v|-V]",
		}
	}
	return cliArgs{grammarFile: positional[0], regexFile: positional[1], input: positional[2]}, verbose, nil
}

// run wires the whole pipeline together and returns the acceptance
// result.
func run(grammarSrc, regexSrc *os.File, inputArg string, verbose bool) (bool, error) {
	g, err := grammar.ParseReader(grammarSrc)
	if err != nil {
		return false, err
	}

	rules, err := regex.ParseRules(regexSrc)
	if err != nil {
		return false, err
	}

	nfa := automaton.Build(rules)
	dfa := automaton.Minimize(automaton.Subset(nfa))
	tracer().Debugf("compiled DFA fingerprint=%s states=%d", dfa.Fingerprint(), dfa.NumStates)

	a := analysis.Analyze(g)
	if verbose {
		printSets(a, g)
	}

	table, err := lltable.Build(a)
	if err != nil {
		return false, err
	}

	lx, err := inputTokenizer(dfa, inputArg)
	if err != nil {
		return false, err
	}

	driver := lltable.New(table, lx)
	if verbose {
		driver.SetVerbose(os.Stdout)
	}
	result, err := driver.Parse()
	if err != nil {
		var parseErr *ll1kit.ParseError
		if errors.As(err, &parseErr) {
			return false, nil
		}
		return false, err
	}
	_ = result
	return true, nil
}

func inputTokenizer(dfa *automaton.DFA, inputArg string) (*lexer.Lexer, error) {
	if f, err := os.Open(inputArg); err == nil {
		defer f.Close()
		return lexer.NewFromReader(dfa, f, discardTags)
	}
	return lexer.NewFromString(dfa, inputArg, discardTags), nil
}

func printSets(a *analysis.Analysis, g *grammar.GrammarTable) {
	for _, nt := range g.NonTerminals() {
		pterm.Info.Printf("FIRST(%s)  = %s\n", nt, strings.Join(a.First(nt), " "))
	}
	for _, nt := range g.NonTerminals() {
		pterm.Info.Printf("FOLLOW(%s) = %s\n", nt, strings.Join(a.Follow(nt), " "))
	}
}

func exitCodeFor(err error) int {
	switch {
	case isType[*ll1kit.InvalidCommandLineArgs](err), isType[*ll1kit.CannotOpenInput](err):
		return 2
	case isType[*ll1kit.MalformedRegex](err):
		return 3
	case isType[*ll1kit.MalformedGrammar](err):
		return 4
	case isType[*ll1kit.NotLL1](err):
		return 5
	case isType[*ll1kit.LexicalError](err):
		return 6
	default:
		return 1
	}
}

func isType[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

func fail(err error, code int) {
	pterm.Error.Println(err.Error())
	os.Exit(code)
}

// tracer traces with key 'll1kit.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("ll1kit.cmd")
}
