package ll

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func symtestGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a", 'a').T("b", 'b').End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSymSet1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	g := symtestGrammar(t)
	set := newSymbolSet()
	if !set.Empty() {
		t.Errorf("Expected fresh set to be empty, isn't")
	}
	set.add(g.SymbolByName("b"))
	set.add(g.SymbolByName("a"))
	set.add(g.SymbolByName("a")) // duplicates collapse
	if set.Size() != 2 {
		t.Errorf("Expected set of size 2, is %d", set.Size())
	}
	if !set.Contains(g.SymbolByName("a")) {
		t.Errorf("Expected set to contain a, doesn't")
	}
	if set.Contains(nil) {
		t.Errorf("No set should contain nil")
	}
	if set.String() != "{ a, b }" { // sorted by token value
		t.Errorf("Expected set to print as { a, b }, is %s", set)
	}
}

func TestSymSet2(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	g := symtestGrammar(t)
	s1 := newSymbolSet()
	s1.add(g.SymbolByName("a"))
	s1.add(g.Epsilon())
	s2 := newSymbolSet()
	s2.add(g.SymbolByName("b"))
	s2.union(s1)
	if s2.Size() != 3 || !s2.ContainsEps() {
		t.Errorf("Expected union to have 3 members including ε, is %v", s2)
	}
	s3 := newSymbolSet()
	s3.unionWithoutEps(s1)
	if s3.ContainsEps() || s3.Size() != 1 {
		t.Errorf("Expected ε-stripped union to be { a }, is %v", s3)
	}
	s2.remove(g.Epsilon())
	if s2.ContainsEps() {
		t.Errorf("Expected ε to be removed from set, isn't: %v", s2)
	}
	toks := s3.TokenTypes()
	if len(toks) != 1 || toks[0] != 'a' {
		t.Errorf("Expected token values ['a'], got %v", toks)
	}
}
