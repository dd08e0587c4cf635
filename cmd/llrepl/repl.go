package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/lltab/ll"
	"github.com/npillmayer/lltab/ll/display"
)

// We provide a simple epsilon-heavy grammar as a default for experiments.
//
//  S ➞ A a
//  A ➞ B D
//  B ➞ b  |  ε
//  D ➞ d  |  ε
//
var demoRules = [][]string{
	{"S", "A", "a"},
	{"A", "B", "D"},
	{"B", "b"},
	{"B"},
	{"D", "d"},
	{"D"},
}

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	tracing.Select("lltab.ll").SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to LLREPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("llrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	intp.rules = append(intp.rules, demoRules...)
	pterm.Info.Println("Demo grammar preloaded; type 'help' for commands, quit with <ctrl>D")
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// Intp is our interpreter object
type Intp struct {
	repl  *readline.Instance
	rules [][]string      // rules entered so far, as symbol names
	ga    *ll.LL1Analysis // analysis of the current rules; nil after changes
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		args := strings.Fields(line)
		quit, err := intp.Execute(args[0], args[1:])
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute runs a single REPL command.
func (intp *Intp) Execute(cmd string, args []string) (bool, error) {
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		intp.help()
	case "rule":
		if len(args) == 0 {
			return false, fmt.Errorf("usage: rule LHS [symbol ...]")
		}
		intp.rules = append(intp.rules, args)
		intp.ga = nil // grammar changed, re-analyse on next query
	case "reset":
		intp.rules = nil
		intp.ga = nil
	case "dump":
		for i, r := range intp.rules {
			rhs := strings.Join(r[1:], " ")
			fmt.Printf("%d: [%s] ::= [%s]\n", i, r[0], rhs)
		}
	case "first", "follow":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: %s N", cmd)
		}
		return false, intp.printSet(cmd, args[0])
	case "table":
		ga, err := intp.analysis()
		if err != nil {
			return false, err
		}
		display.FirstFollow(ga.Table())
	case "html":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: html <filename>")
		}
		return false, intp.exportHTML(args[0])
	default:
		return false, fmt.Errorf("unknown command: %s", cmd)
	}
	return false, nil
}

func (intp *Intp) help() {
	fmt.Println(`Commands:
  rule LHS [symbol ...]   add a grammar rule (no RHS symbols: epsilon-rule)
  first N | follow N      print FIRST(N) / FOLLOW(N)
  table                   print all FIRST- and FOLLOW-sets
  html <filename>         export the table in HTML format
  dump                    list the rules entered so far
  reset                   discard all rules
  quit                    leave llrepl

Symbol names starting with an upper-case letter are non-terminals,
all others are terminals. The LHS of the first rule is the start symbol.`)
}

// analysis (re-)builds the grammar from the entered rules and analyses it.
// The analysis is cached until the rules change.
func (intp *Intp) analysis() (*ll.LL1Analysis, error) {
	if intp.ga != nil {
		return intp.ga, nil
	}
	if len(intp.rules) == 0 {
		return nil, fmt.Errorf("no rules entered yet")
	}
	b := ll.NewGrammarBuilder("REPL")
	for _, r := range intp.rules {
		b.Rule(r[0], r[1:]...)
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	ga, err := ll.Analysis(g)
	if err != nil {
		return nil, err
	}
	intp.ga = ga
	return ga, nil
}

func (intp *Intp) printSet(which string, name string) error {
	ga, err := intp.analysis()
	if err != nil {
		return err
	}
	N := ga.Grammar().SymbolByName(name)
	if N == nil || N.Class() != ll.NonTerm {
		return fmt.Errorf("'%s' is not a non-terminal of the current grammar", name)
	}
	if which == "first" {
		fmt.Printf("FIRST(%s) = %v\n", name, ga.First(N))
	} else {
		fmt.Printf("FOLLOW(%s) = %v\n", name, ga.Follow(N))
	}
	return nil
}

func (intp *Intp) exportHTML(filename string) error {
	ga, err := intp.analysis()
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("file open error: %v", err)
	}
	defer f.Close()
	display.FirstFollowAsHTML(ga.Table(), f)
	pterm.Info.Println("table written to " + filename)
	return nil
}
