package ll

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/lltab"
)

// --- Grammar builder -------------------------------------------------------

// GrammarBuilder is an object to attach rules to a grammar under
// construction. Rules are entered one by one; the builder interns symbols,
// i.e. re-uses symbol objects for equal names.
//
//    b := ll.NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a", 'a').End() // S -> A a
//    b.LHS("A").Epsilon()                // A ->
//    g, err := b.Grammar()
//
// The LHS of the first rule becomes the start symbol of the grammar.
type GrammarBuilder struct {
	g       *Grammar
	autoTok lltab.TokType // next token value for auto-assigned terminals
	lastErr error
}

// NewGrammarBuilder gets a new grammar builder, given the name of the
// grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	g := &Grammar{
		Name:    gname,
		symbols: map[string]*Symbol{},
	}
	g.epsilon = &Symbol{Name: EpsilonName, Value: EpsilonType, class: Eps}
	g.eof = &Symbol{Name: EOFName, Value: EOFType, class: EOF}
	g.symbols[EpsilonName] = g.epsilon
	g.symbols[EOFName] = g.eof
	gb := &GrammarBuilder{g: g, autoTok: 1000}
	return gb
}

func (gb *GrammarBuilder) newRuleBuilder(lhsname string) *RuleBuilder {
	return &RuleBuilder{
		gb:  gb,
		lhs: gb.nonterm(lhsname),
	}
}

func (gb *GrammarBuilder) appendRule(lhs *Symbol, rhs []*Symbol) *Rule {
	r := newRule(len(gb.g.rules), lhs, rhs)
	gb.g.rules = append(gb.g.rules, r)
	return r
}

// nonterm interns a non-terminal symbol.
func (gb *GrammarBuilder) nonterm(name string) *Symbol {
	if sym, ok := gb.g.symbols[name]; ok {
		if sym.class != NonTerm {
			gb.error(fmt.Errorf("symbol '%s' already known as %s", name, sym.class))
		}
		return sym
	}
	sym := &Symbol{Name: name, class: NonTerm}
	gb.g.symbols[name] = sym
	gb.g.nonterm = append(gb.g.nonterm, sym)
	return sym
}

// terminal interns a terminal symbol with a token value.
func (gb *GrammarBuilder) terminal(name string, tokval lltab.TokType) *Symbol {
	if sym, ok := gb.g.symbols[name]; ok {
		if sym.class != Terminal {
			gb.error(fmt.Errorf("symbol '%s' already known as %s", name, sym.class))
		} else if sym.Value != tokval {
			gb.error(fmt.Errorf("terminal '%s' re-declared with token value %d (has %d)",
				name, tokval, sym.Value))
		}
		return sym
	}
	if tokval == EpsilonType {
		gb.error(fmt.Errorf("token value 0 is reserved for ε (terminal '%s')", name))
	}
	sym := &Symbol{Name: name, Value: tokval, class: Terminal}
	gb.g.symbols[name] = sym
	gb.g.term = append(gb.g.term, sym)
	return sym
}

// eofTerminal enters #eof into the terminals of the grammar, once.
func (gb *GrammarBuilder) eofTerminal() *Symbol {
	for _, a := range gb.g.term {
		if a == gb.g.eof {
			return a
		}
	}
	gb.g.term = append(gb.g.term, gb.g.eof)
	return gb.g.eof
}

func (gb *GrammarBuilder) error(err error) {
	tracer().Errorf("grammar builder: %v", err)
	if gb.lastErr == nil { // keep the first one for Grammar()
		gb.lastErr = err
	}
}

// LHS starts a new rule given the left-hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	return gb.newRuleBuilder(name)
}

// Rule is a shortcut notation for entering a complete rule in one call.
// The class of every RHS name is derived with ClassifyName; token values
// for terminals are taken from the name's single rune, or auto-assigned
// for longer names. An empty RHS (or a sole "ε") yields an epsilon-rule.
//
//    b.Rule("S", "A", "a")
//    b.Rule("A")           // A -> ε
//
// Returns the builder for chaining.
func (gb *GrammarBuilder) Rule(lhsname string, rhsnames ...string) *GrammarBuilder {
	rb := gb.LHS(lhsname)
	if len(rhsnames) == 0 {
		rb.Epsilon()
		return gb
	}
	for _, name := range rhsnames {
		switch ClassifyName(name) {
		case NonTerm:
			rb.N(name)
		case Terminal:
			rb.T(name, gb.tokvalFor(name))
		case EOF:
			rb.rhs = append(rb.rhs, gb.eofTerminal())
		case Eps:
			if len(rhsnames) > 1 {
				gb.error(fmt.Errorf("ε cannot be mixed with other symbols in rule for '%s'",
					lhsname))
			}
			rb.Epsilon()
			return gb
		}
	}
	rb.End()
	return gb
}

// tokvalFor selects a token value for an auto-classified terminal: the rune
// itself for single-rune names, a fresh synthetic value otherwise.
func (gb *GrammarBuilder) tokvalFor(name string) lltab.TokType {
	if sym, ok := gb.g.symbols[name]; ok && sym.class == Terminal {
		return sym.Value
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return lltab.TokType(r)
	}
	v := gb.autoTok
	gb.autoTok++
	return v
}

// Grammar returns the grammar, which is "frozen" and immutable from now on,
// or an error, if any of the rules entered so far was inconsistent or
// references an undefined non-terminal.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.lastErr != nil {
		return nil, gb.lastErr
	}
	if len(gb.g.rules) == 0 {
		return nil, fmt.Errorf("grammar '%s' has no rules", gb.g.Name)
	}
	g := gb.g
	g.start = g.rules[0].LHS
	if err := g.checkRules(); err != nil {
		return nil, err
	}
	return g, nil
}

// --- Rule builder ----------------------------------------------------------

// RuleBuilder is a builder type for a single grammar rule. Obtain one from
// GrammarBuilder.LHS(...), then append RHS symbols with N(...) and T(...),
// and close the rule with End(), EOF() or Epsilon().
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs *Symbol
	rhs []*Symbol
}

// N appends a non-terminal to the rule's RHS.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.gb.nonterm(name))
	return rb
}

// T appends a terminal to the rule's RHS, given its name and token value.
// Token value 0 is reserved for ε and therefore illegal.
func (rb *RuleBuilder) T(name string, tokval lltab.TokType) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.gb.terminal(name, tokval))
	return rb
}

// EOF appends the end-of-input marker to the RHS and closes the rule.
func (rb *RuleBuilder) EOF() *Rule {
	rb.rhs = append(rb.rhs, rb.gb.eofTerminal())
	return rb.End()
}

// Epsilon closes the rule as an epsilon-rule, i.e. with an empty RHS.
func (rb *RuleBuilder) Epsilon() *Rule {
	r := rb.gb.appendRule(rb.lhs, nil)
	tracer().Debugf("appending epsilon-rule:  %v", r)
	return r
}

// End closes the rule and hands it to the grammar builder.
func (rb *RuleBuilder) End() *Rule {
	if len(rb.rhs) == 0 {
		return rb.Epsilon()
	}
	r := rb.gb.appendRule(rb.lhs, rb.rhs)
	tracer().Debugf("appending rule:  %v", r)
	return r
}
