package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/llparse/ll1kit/analysis"
	"github.com/llparse/ll1kit/automaton"
	"github.com/llparse/ll1kit/grammar"
	"github.com/llparse/ll1kit/lexer"
	"github.com/llparse/ll1kit/lltable"
	"github.com/llparse/ll1kit/regex"
)

// runRepl is a small interactive sandbox for trying candidate strings
// against a grammar/regex pair without re-invoking the binary for each
// one.
func runRepl() {
	pterm.Info.Println("ll1kit repl -- enter paths to a grammar file and a regex file")

	grammarPath := prompt("grammar file> ")
	regexPath := prompt("regex file> ")

	gf, err := os.Open(grammarPath)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	defer gf.Close()
	rf, err := os.Open(regexPath)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	defer rf.Close()

	g, err := grammar.ParseReader(gf)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(4)
	}
	rules, err := regex.ParseRules(rf)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	dfa := automaton.Minimize(automaton.Subset(automaton.Build(rules)))
	a := analysis.Analyze(g)
	table, err := lltable.Build(a)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(5)
	}

	rl, err := readline.New("ll1kit> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	defer rl.Close()

	pterm.Info.Println("type an input string, or <ctrl>D to quit")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lx := lexer.NewFromString(dfa, line, discardTags)
		driver := lltable.New(table, lx)
		result, err := driver.Parse()
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if result.Accepted {
			pterm.Success.Printfln("accepted, derivation=%v", result.Derivation)
		} else {
			pterm.Warning.Println("rejected")
		}
	}
}

func prompt(label string) string {
	fmt.Print(label)
	var line string
	_, err := fmt.Fscanln(os.Stdin, &line)
	if err != nil && err != io.EOF {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	return line
}
