/*
Package ll implements prerequisites for LL(1) parsing.
It computes FIRST- and FOLLOW-sets for context-free grammars, the
static analysis every construction of LL(1) parse tables starts from.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals
carry a token value of type lltab.TokType. Grammars may contain
epsilon-productions. Alternatives are always separate rules; there is
no '|'-operator within a single right-hand side.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a", 'a').EOF() // S  ->  A a #eof
    b.LHS("A").N("B").N("D").End()      // A  ->  B D
    b.LHS("B").T("b", 'b').End()        // B  ->  b
    b.LHS("B").Epsilon()                // B  ->
    b.LHS("D").T("d", 'd').End()        // D  ->  d
    b.LHS("D").Epsilon()                // D  ->

This results in the following trivial grammar:

    g.Dump()

    0: [S] ::= [A a #eof]
    1: [A] ::= [B D]
    2: [B] ::= [b]
    3: [B] ::= []
    4: [D] ::= [d]
    5: [D] ::= []

The start symbol is the LHS of the first rule entered.

For quick experiments there is a shortcut notation, where the class of
each symbol is derived from its name (see ClassifyName): names starting
with an upper-case letter denote non-terminals, everything else denotes
a terminal. Token values for terminals are assigned automatically.

    b.Rule("S", "A", "a")
    b.Rule("A")            // A -> ε

Static Grammar Analysis

After the grammar is complete, it is subjected to an LL1Analysis object,
which computes FIRST and FOLLOW sets for all non-terminals and determines
all epsilon-derivable non-terminals.

    ga, err := ll.Analysis(g)
    ga.Grammar().EachNonTerminal(
        func(name string, N *Symbol) interface{} {
            fmt.Printf("FIRST(%s) = %v\n", name, ga.First(N))
            return nil
        })

FIRST-sets may contain the epsilon symbol; FOLLOW-sets never do.
FOLLOW of the start symbol always contains the end-of-input marker #eof.

Analysis is a pure function of the grammar: the grammar is never mutated
and repeated analysis of the same grammar yields identical set membership.
Left-recursive grammars are not rejected, but their FIRST/FOLLOW sets may
be incomplete; analysis is guaranteed to terminate on them nevertheless.

The sole aggregate result is a FirstFollowTable, covering every
non-terminal of the grammar:

    t, err := ll.BuildFirstFollow(g)

Downstream consumers (LL(1) action-table construction, conflict
detection, pretty-printing) read the table; none of them is part of
this package.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lltab.ll'.
func tracer() tracing.Trace {
	return tracing.Select("lltab.ll")
}
