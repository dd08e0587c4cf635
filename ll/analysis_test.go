package ll

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// expectSet checks a symbol set for exact membership, with member symbols
// given by name ("ε" and "#eof" are resolvable like any other symbol).
func expectSet(t *testing.T, what string, set *SymbolSet, g *Grammar, names ...string) {
	t.Helper()
	if set == nil {
		t.Errorf("Expected %s to be a set, is nil", what)
		return
	}
	if set.Size() != len(names) {
		t.Errorf("Expected %s to have %d members, is %v", what, len(names), set)
		return
	}
	for _, name := range names {
		if !set.Contains(g.SymbolByName(name)) {
			t.Errorf("Expected %s to contain %s, is %v", what, name, set)
		}
	}
}

func analyze(t *testing.T, build func(b *GrammarBuilder)) *LL1Analysis {
	t.Helper()
	b := NewGrammarBuilder("G")
	build(b)
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	return ga
}

// --- the Tests -------------------------------------------------------------

// S -> a A,  A -> b | ε
func TestFirstFollow1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	ga := analyze(t, func(b *GrammarBuilder) {
		b.LHS("S").T("a", 'a').N("A").End()
		b.LHS("A").T("b", 'b').End()
		b.LHS("A").Epsilon()
	})
	g := ga.Grammar()
	S, A := g.SymbolByName("S"), g.SymbolByName("A")
	expectSet(t, "FIRST(S)", ga.First(S), g, "a")
	expectSet(t, "FIRST(A)", ga.First(A), g, "b", "ε")
	expectSet(t, "FOLLOW(S)", ga.Follow(S), g, "#eof")
	expectSet(t, "FOLLOW(A)", ga.Follow(A), g, "#eof")
	if ga.DerivesEpsilon(S) {
		t.Errorf("Expected S to not derive ε, does")
	}
	if !ga.DerivesEpsilon(A) {
		t.Errorf("Expected A to derive ε, doesn't")
	}
}

// S -> A B,  A -> a | ε,  B -> b
// FIRST(B) has no ε, so FOLLOW(S) must not leak into FOLLOW(A).
func TestFirstFollow2(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	ga := analyze(t, func(b *GrammarBuilder) {
		b.LHS("S").N("A").N("B").End()
		b.LHS("A").T("a", 'a').End()
		b.LHS("A").Epsilon()
		b.LHS("B").T("b", 'b').End()
	})
	g := ga.Grammar()
	expectSet(t, "FIRST(A)", ga.First(g.SymbolByName("A")), g, "a", "ε")
	expectSet(t, "FOLLOW(A)", ga.Follow(g.SymbolByName("A")), g, "b")
}

// S -> A B,  A -> a | ε,  B -> b | ε
// Now FIRST(B) contains ε and FOLLOW(S) = {#eof} is merged into FOLLOW(A).
func TestFirstFollow3(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	ga := analyze(t, func(b *GrammarBuilder) {
		b.LHS("S").N("A").N("B").End()
		b.LHS("A").T("a", 'a').End()
		b.LHS("A").Epsilon()
		b.LHS("B").T("b", 'b').End()
		b.LHS("B").Epsilon()
	})
	g := ga.Grammar()
	expectSet(t, "FOLLOW(A)", ga.Follow(g.SymbolByName("A")), g, "b", "#eof")
	expectSet(t, "FIRST(S)", ga.First(g.SymbolByName("S")), g, "a", "b", "ε")
}

// The classic LL(1) expression grammar, entered in shortcut notation.
//
//    E  -> T E'
//    E' -> + T E'  |  ε
//    T  -> F T'
//    T' -> * F T'  |  ε
//    F  -> ( E )   |  id
func TestFirstFollowExpressionGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	ga := analyze(t, func(b *GrammarBuilder) {
		b.Rule("E", "T", "E'")
		b.Rule("E'", "+", "T", "E'")
		b.Rule("E'")
		b.Rule("T", "F", "T'")
		b.Rule("T'", "*", "F", "T'")
		b.Rule("T'")
		b.Rule("F", "(", "E", ")")
		b.Rule("F", "id")
	})
	g := ga.Grammar()
	first := map[string][]string{
		"E":  {"(", "id"},
		"E'": {"+", "ε"},
		"T":  {"(", "id"},
		"T'": {"*", "ε"},
		"F":  {"(", "id"},
	}
	follow := map[string][]string{
		"E":  {")", "#eof"},
		"E'": {")", "#eof"},
		"T":  {"+", ")", "#eof"},
		"T'": {"+", ")", "#eof"},
		"F":  {"*", "+", ")", "#eof"},
	}
	g.EachNonTerminal(func(name string, N *Symbol) interface{} {
		expectSet(t, "FIRST("+name+")", ga.First(N), g, first[name]...)
		expectSet(t, "FOLLOW("+name+")", ga.Follow(N), g, follow[name]...)
		return nil
	})
}

// FIRST-sets contain terminals (and possibly ε) only, FOLLOW-sets never
// contain ε, and FOLLOW of the start symbol always contains #eof.
func TestSetProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	ga := analyze(t, func(b *GrammarBuilder) {
		b.LHS("S").N("A").T("a", 'a').EOF()
		b.LHS("A").N("B").N("D").End()
		b.LHS("B").T("b", 'b').End()
		b.LHS("B").Epsilon()
		b.LHS("D").T("d", 'd').End()
		b.LHS("D").Epsilon()
	})
	g := ga.Grammar()
	g.EachNonTerminal(func(name string, N *Symbol) interface{} {
		for _, sym := range ga.First(N).Symbols() {
			if sym.Class() == NonTerm {
				t.Errorf("FIRST(%s) contains non-terminal %v", name, sym)
			}
		}
		if ga.Follow(N).ContainsEps() {
			t.Errorf("FOLLOW(%s) contains ε", name)
		}
		return nil
	})
	if !ga.Follow(g.Start()).Contains(g.EOF()) {
		t.Errorf("Expected FOLLOW(%s) to contain #eof, doesn't", g.Start())
	}
}

// Two analysis passes over the same grammar must agree on set membership.
func TestIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	build := func(b *GrammarBuilder) {
		b.Rule("E", "T", "E'")
		b.Rule("E'", "+", "T", "E'")
		b.Rule("E'")
		b.Rule("T", "id")
	}
	ga1 := analyze(t, build)
	g := ga1.Grammar()
	t1 := ga1.Table()
	t2, err := BuildFirstFollow(g)
	if err != nil {
		t.Fatal(err)
	}
	g.EachNonTerminal(func(name string, N *Symbol) interface{} {
		f1, f2 := t1.First(N).TokenTypes(), t2.First(N).TokenTypes()
		if len(f1) != len(f2) {
			t.Fatalf("FIRST(%s) differs between passes: %v vs %v", name, t1.First(N), t2.First(N))
		}
		for i := range f1 {
			if f1[i] != f2[i] {
				t.Errorf("FIRST(%s) differs between passes: %v vs %v", name, t1.First(N), t2.First(N))
			}
		}
		w1, w2 := t1.Follow(N).TokenTypes(), t2.Follow(N).TokenTypes()
		if len(w1) != len(w2) {
			t.Fatalf("FOLLOW(%s) differs between passes: %v vs %v", name, t1.Follow(N), t2.Follow(N))
		}
		for i := range w1 {
			if w1[i] != w2[i] {
				t.Errorf("FOLLOW(%s) differs between passes: %v vs %v", name, t1.Follow(N), t2.Follow(N))
			}
		}
		return nil
	})
}

// A -> x B,  B -> y A: mutually right-recursive without a base case. The
// re-entrancy guard has to terminate the FOLLOW closure.
func TestMutualRecursionTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	ga := analyze(t, func(b *GrammarBuilder) {
		b.LHS("A").T("x", 'x').N("B").End()
		b.LHS("B").T("y", 'y').N("A").End()
	})
	g := ga.Grammar()
	expectSet(t, "FOLLOW(A)", ga.Follow(g.SymbolByName("A")), g, "#eof")
	expectSet(t, "FOLLOW(B)", ga.Follow(g.SymbolByName("B")), g, "#eof")
}

// A -> A a | b: left recursion must not loop; correctness of the sets on
// left-recursive grammars is not promised, termination is.
func TestLeftRecursionTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	ga := analyze(t, func(b *GrammarBuilder) {
		b.LHS("A").N("A").T("a", 'a').End()
		b.LHS("A").T("b", 'b').End()
	})
	g := ga.Grammar()
	A := g.SymbolByName("A")
	if !ga.First(A).Contains(g.SymbolByName("b")) {
		t.Errorf("Expected FIRST(A) to contain b, is %v", ga.First(A))
	}
}

// Only the first occurrence of a non-terminal within one RHS seeds FOLLOW
// contributions (documented limitation of the occurrence index).
func TestFollowUsesFirstOccurrence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	ga := analyze(t, func(b *GrammarBuilder) {
		b.LHS("S").N("A").T("a", 'a').N("A").T("b", 'b').End()
		b.LHS("A").T("c", 'c').End()
	})
	g := ga.Grammar()
	expectSet(t, "FOLLOW(A)", ga.Follow(g.SymbolByName("A")), g, "a")
}

func TestAnalysisRejectsBrokenGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	if _, err := Analysis(nil); err == nil {
		t.Errorf("Expected analysis of nil grammar to fail, didn't")
	}
	// bypass the builder's own validation to exercise the lazy check
	b := NewGrammarBuilder("broken")
	b.LHS("S").N("A").End()
	g := b.g
	g.start = g.rules[0].LHS
	_, err := Analysis(g)
	if err == nil {
		t.Fatalf("Expected analysis to fail on undefined non-terminal, didn't")
	}
	if _, ok := err.(*UndefinedSymbolError); !ok {
		t.Errorf("Expected an UndefinedSymbolError, got %v", err)
	}
}
