package ll

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/npillmayer/lltab"
)

// --- Symbol sets -----------------------------------------------------------

// We need this for symbol sets. It sorts symbols by token value, with the name
// as a tie breaker (non-terminals share value 0).
func symbolComparator(x1, x2 interface{}) int {
	s1 := x1.(*Symbol)
	s2 := x2.(*Symbol)
	if c := utils.IntComparator(int(s1.Value), int(s2.Value)); c != 0 {
		return c
	}
	return utils.StringComparator(s1.Name, s2.Name)
}

// SymbolSet is a set of grammar symbols, with deterministic (sorted)
// iteration order. FIRST- and FOLLOW-sets are SymbolSets.
//
// Sets returned from an analysis are read-only: only membership and
// iteration are exposed. Membership is contractual, order of iteration is
// merely a convenience for reproducible output.
type SymbolSet struct {
	syms *treeset.Set
}

func newSymbolSet() *SymbolSet {
	return &SymbolSet{syms: treeset.NewWith(symbolComparator)}
}

func (s *SymbolSet) add(A *Symbol) {
	s.syms.Add(A)
}

func (s *SymbolSet) remove(A *Symbol) {
	s.syms.Remove(A)
}

// union merges other into s. All set operations are destructive on s;
// other is left alone.
func (s *SymbolSet) union(other *SymbolSet) {
	for _, x := range other.syms.Values() {
		s.syms.Add(x)
	}
}

// unionWithoutEps merges all non-ε members of other into s.
func (s *SymbolSet) unionWithoutEps(other *SymbolSet) {
	for _, x := range other.syms.Values() {
		if !x.(*Symbol).IsEps() {
			s.syms.Add(x)
		}
	}
}

// Contains checks set membership for a symbol.
func (s *SymbolSet) Contains(A *Symbol) bool {
	if A == nil {
		return false
	}
	return s.syms.Contains(A)
}

// ContainsEps checks whether the set contains the ε pseudo-symbol.
func (s *SymbolSet) ContainsEps() bool {
	it := s.syms.Iterator()
	for it.Next() {
		if it.Value().(*Symbol).IsEps() {
			return true
		}
	}
	return false
}

// Size returns the number of symbols in the set.
func (s *SymbolSet) Size() int {
	return s.syms.Size()
}

// Empty checks if the set is empty.
func (s *SymbolSet) Empty() bool {
	return s.syms.Empty()
}

// Symbols returns the members of the set, sorted by token value.
func (s *SymbolSet) Symbols() []*Symbol {
	vals := s.syms.Values()
	symbols := make([]*Symbol, len(vals))
	for i, x := range vals {
		symbols[i] = x.(*Symbol)
	}
	return symbols
}

// TokenTypes returns the token values of all members of the set. This is
// the representation downstream parser-table construction operates on.
func (s *SymbolSet) TokenTypes() []lltab.TokType {
	vals := s.syms.Values()
	toks := make([]lltab.TokType, len(vals))
	for i, x := range vals {
		toks[i] = x.(*Symbol).Value
	}
	return toks
}

func (s *SymbolSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	it := s.syms.Iterator()
	first := true
	for it.Next() {
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(it.Value().(*Symbol).Name)
	}
	b.WriteString(" }")
	return b.String()
}
