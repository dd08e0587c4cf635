package ll

import (
	"fmt"
	"strings"
	"text/scanner"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/lltab"
)

// --- Symbols ---------------------------------------------------------------

// SymbolClass is a category for grammar symbols. Every symbol of a grammar
// belongs to exactly one class, and the class of a symbol never changes.
type SymbolClass int8

// Symbol classes. Terminals appear literally in parsed input, non-terminals
// are defined by one or more derivation rules. Eps is the class of the empty
// derivation, EOF the class of the end-of-input marker.
const (
	Terminal SymbolClass = iota + 1
	NonTerm
	Eps
	EOF
)

func (c SymbolClass) String() string {
	switch c {
	case Terminal:
		return "terminal"
	case NonTerm:
		return "non-terminal"
	case Eps:
		return "ε"
	case EOF:
		return "#eof"
	}
	return "<illegal symbol class>"
}

// Reserved symbol names and token values. Token value 0 belongs to ε, the
// #eof marker carries text/scanner's EOF value.
const (
	EpsilonName = "ε"
	EOFName     = "#eof"

	EpsilonType lltab.TokType = 0
	EOFType     lltab.TokType = lltab.TokType(scanner.EOF)
)

// ClassifyName derives a symbol class from the syntactic form of a symbol
// name. It implements the usual textbook convention: names starting with an
// upper-case letter denote non-terminals, everything else denotes a terminal.
// The reserved names for epsilon ("ε", "eps" or the empty string) and for
// the end-of-input marker ("#eof") are recognized first.
//
// ClassifyName is a pure function: equal names always yield equal classes.
func ClassifyName(name string) SymbolClass {
	switch name {
	case "", EpsilonName, "eps":
		return Eps
	case EOFName:
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(name)
	if unicode.IsUpper(r) {
		return NonTerm
	}
	return Terminal
}

// Symbol is an atomic grammar symbol: a terminal, a non-terminal, the ε
// pseudo-symbol or the #eof marker. Symbols are interned per grammar, i.e.
// within one grammar equal names refer to the identical Symbol instance.
type Symbol struct {
	Name  string       // visual representation
	Value lltab.TokType // token value; only meaningful for terminals and #eof
	class SymbolClass
}

// Class returns the symbol's class. It is total and consistent: the class is
// fixed when the symbol enters the grammar and never changes afterwards.
func (A *Symbol) Class() SymbolClass {
	return A.class
}

// IsTerminal returns true for terminals and for the #eof marker.
func (A *Symbol) IsTerminal() bool {
	return A.class == Terminal || A.class == EOF
}

// IsEps returns true for the ε pseudo-symbol.
func (A *Symbol) IsEps() bool {
	return A.class == Eps
}

// IsEOF returns true for the end-of-input marker.
func (A *Symbol) IsEOF() bool {
	return A.class == EOF
}

// TokenType returns the token value of a symbol.
func (A *Symbol) TokenType() lltab.TokType {
	return A.Value
}

func (A *Symbol) String() string {
	return A.Name
}

// --- Rules -----------------------------------------------------------------

// Rule is a single derivation rule of a grammar: one alternative right-hand
// side for a non-terminal. Clients usually get hold of rules via
// Grammar.Rule(n) or Grammar.DerivationsFor(N).
type Rule struct {
	Serial int     // order of appearance within the grammar
	LHS    *Symbol // left-hand side: a non-terminal
	rhs    []*Symbol
}

func newRule(serial int, lhs *Symbol, rhs []*Symbol) *Rule {
	r := &Rule{
		Serial: serial,
		LHS:    lhs,
	}
	r.rhs = make([]*Symbol, len(rhs))
	copy(r.rhs, rhs)
	return r
}

// RHS returns the right-hand side of a rule as a copy. An epsilon-rule has
// an empty RHS.
func (r *Rule) RHS() []*Symbol {
	dup := make([]*Symbol, len(r.rhs))
	copy(dup, r.rhs)
	return dup
}

// Len returns the length of the right-hand side of a rule.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEps returns true for epsilon-rules, i.e. rules with an empty RHS.
func (r *Rule) IsEps() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d: [%s] ::= [", r.Serial, r.LHS.Name)
	for i, sym := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sym.Name)
	}
	b.WriteString("]")
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is an immutable set of derivation rules, together with the symbols
// the rules are made of. Create a Grammar with a GrammarBuilder.
//
// A grammar is shared, read-only input for every analysis pass over it:
// no operation defined on it, nor any analysis, will ever mutate it. This
// matters because FIRST/FOLLOW computation re-visits the same rules many
// times; results must not depend on the order in which they do.
type Grammar struct {
	Name    string // a grammar has a name, for documentation purposes
	rules   []*Rule
	symbols map[string]*Symbol
	nonterm []*Symbol // non-terminals in order of first appearance
	term    []*Symbol // terminals in order of first appearance
	start   *Symbol
	epsilon *Symbol
	eof     *Symbol
}

// Size returns the number of rules in the grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns the rule with the given serial number, or nil.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// Start returns the start symbol of the grammar, i.e. the LHS of its
// first rule.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// Epsilon returns the ε pseudo-symbol of the grammar. It may appear in
// FIRST-sets, but never in FOLLOW-sets.
func (g *Grammar) Epsilon() *Symbol {
	return g.epsilon
}

// EOF returns the end-of-input marker of the grammar. FOLLOW of the start
// symbol always contains it.
func (g *Grammar) EOF() *Symbol {
	return g.eof
}

// SymbolByName gets the symbol with a given name, or nil.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.symbols[name]
}

// DerivationsFor returns all rules with LHS = A, in the order the rules
// were entered. For symbols which are not non-terminals of this grammar the
// returned slice is empty.
func (g *Grammar) DerivationsFor(A *Symbol) []*Rule {
	var rules []*Rule
	for _, r := range g.rules {
		if r.LHS == A {
			rules = append(rules, r)
		}
	}
	return rules
}

// EachNonTerminal iterates over all non-terminal symbols of the grammar, in
// order of first appearance. Return values of the mapper function are
// collected and returned.
func (g *Grammar) EachNonTerminal(mapper func(name string, N *Symbol) interface{}) []interface{} {
	var r = make([]interface{}, 0, len(g.nonterm))
	for _, A := range g.nonterm {
		r = append(r, mapper(A.Name, A))
	}
	return r
}

// EachTerminal iterates over all terminal symbols of the grammar, including
// the #eof marker if present in any rule.
func (g *Grammar) EachTerminal(mapper func(name string, T *Symbol) interface{}) []interface{} {
	var r = make([]interface{}, 0, len(g.term))
	for _, a := range g.term {
		r = append(r, mapper(a.Name, a))
	}
	return r
}

// EachSymbol iterates over all symbols of the grammar, non-terminals first.
func (g *Grammar) EachSymbol(mapper func(A *Symbol) interface{}) []interface{} {
	var r = make([]interface{}, 0, len(g.nonterm)+len(g.term))
	for _, A := range g.nonterm {
		r = append(r, mapper(A))
	}
	for _, a := range g.term {
		r = append(r, mapper(a))
	}
	return r
}

// Dump is a debugging helper: prints all rules of the grammar to the trace.
func (g *Grammar) Dump() {
	tracer().Debugf("grammar %s:", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%v", r)
	}
}

// checkRules verifies that every non-terminal occurring in any RHS has at
// least one derivation rule. The first offending symbol is reported.
func (g *Grammar) checkRules() error {
	defined := map[*Symbol]bool{}
	for _, r := range g.rules {
		defined[r.LHS] = true
	}
	for _, r := range g.rules {
		for _, sym := range r.rhs {
			if sym.Class() == NonTerm && !defined[sym] {
				return &UndefinedSymbolError{Symbol: sym, Rule: r}
			}
		}
	}
	return nil
}

// --- Errors ----------------------------------------------------------------

// UndefinedSymbolError flags a non-terminal which occurs in the RHS of a
// rule, but has no derivation rule of its own. Grammars containing such
// symbols cannot be analysed: an analysis would have to invent FIRST/FOLLOW
// sets for the symbol.
type UndefinedSymbolError struct {
	Symbol *Symbol // the undefined non-terminal
	Rule   *Rule   // a rule referencing it
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("non-terminal '%s' has no derivation rule (used in rule %d)",
		e.Symbol.Name, e.Rule.Serial)
}
