package ll

import (
	"errors"

	"github.com/emirpasic/gods/lists/arraylist"
)

// === Occurrence Index ======================================================

// occurrence records one RHS occurrence of a non-terminal: the rule it
// occurs in and the suffix following its first occurrence within that rule
// (possibly empty, when the non-terminal is rightmost).
//
// Later occurrences within the same RHS are not recorded separately; the
// first occurrence's suffix stands in for all of them.
type occurrence struct {
	producer *Symbol // LHS of the rule below
	rule     *Rule
	suffix   []*Symbol
}

// occurrencesIndex collects, for every non-terminal of a grammar, all of
// its RHS occurrences. Non-terminals never occurring in any RHS (e.g. the
// start symbol) have no entry.
func occurrencesIndex(g *Grammar) map[*Symbol]*arraylist.List {
	index := map[*Symbol]*arraylist.List{}
	for _, r := range g.rules {
		seen := map[*Symbol]bool{}
		for i, sym := range r.rhs {
			if sym.Class() != NonTerm || seen[sym] {
				continue
			}
			seen[sym] = true
			occs := index[sym]
			if occs == nil {
				occs = arraylist.New()
				index[sym] = occs
			}
			occs.Add(occurrence{producer: r.LHS, rule: r, suffix: r.rhs[i+1:]})
		}
	}
	return index
}

// === Grammar Analysis ======================================================

// LL1Analysis is an analyzer type for a grammar: it computes FIRST- and
// FOLLOW-sets for every non-terminal. Clients create one with Analysis(g).
type LL1Analysis struct {
	g      *Grammar
	occ    map[*Symbol]*arraylist.List
	first  map[*Symbol]*SymbolSet
	follow map[*Symbol]*SymbolSet
}

// Analysis analyses a grammar and computes FIRST- and FOLLOW-sets for all
// of its non-terminals. The grammar is validated first: a non-terminal
// occurring in an RHS without a derivation rule of its own makes the whole
// analysis fail (no partial results are handed out).
//
// The grammar is shared, read-only input; it is never mutated. Repeated
// analysis of the same grammar yields identical set membership.
func Analysis(g *Grammar) (*LL1Analysis, error) {
	if g == nil {
		return nil, errors.New("no grammar given")
	}
	if err := g.checkRules(); err != nil {
		return nil, err
	}
	ga := &LL1Analysis{
		g:      g,
		occ:    occurrencesIndex(g),
		first:  map[*Symbol]*SymbolSet{},
		follow: map[*Symbol]*SymbolSet{},
	}
	ga.analyse()
	return ga, nil
}

// Grammar returns the grammar this analysis is for.
func (ga *LL1Analysis) Grammar() *Grammar {
	return ga.g
}

// analyse fills the FIRST- and FOLLOW-memos for every non-terminal, in
// order of appearance. The order is fixed, so results are reproducible even
// for grammars where re-entrancy guards cut recursion short.
func (ga *LL1Analysis) analyse() {
	for _, A := range ga.g.nonterm {
		ga.firstOf(A, map[*Symbol]*SymbolSet{})
	}
	for _, A := range ga.g.nonterm {
		ga.followOf(A, map[*Symbol]*SymbolSet{})
	}
}

// First returns FIRST(N): the set of terminals which may begin a string
// derived from N, plus ε if N may derive the empty string.
// For symbols which are not non-terminals of the grammar, First returns nil.
func (ga *LL1Analysis) First(N *Symbol) *SymbolSet {
	return ga.first[N]
}

// Follow returns FOLLOW(N): the set of terminals which may immediately
// follow N in some derivation from the start symbol. FOLLOW of the start
// symbol contains #eof; no FOLLOW-set ever contains ε.
// For symbols which are not non-terminals of the grammar, Follow returns nil.
func (ga *LL1Analysis) Follow(N *Symbol) *SymbolSet {
	return ga.follow[N]
}

// DerivesEpsilon checks whether non-terminal N may derive the empty string.
func (ga *LL1Analysis) DerivesEpsilon(N *Symbol) bool {
	if f, ok := ga.first[N]; ok {
		return f.ContainsEps()
	}
	return false
}

// --- FIRST -----------------------------------------------------------------

// firstOf computes FIRST(A) as the union of FIRST over all of A's
// derivations. Completed sets are memoized in ga.first.
//
// busy holds the partial sets of non-terminals currently being computed
// further up the call chain. Recursing into one of these (left recursion,
// e.g. A -> A a) returns the partial set instead of looping; sets of
// genuinely left-recursive grammars may therefore be incomplete, but the
// computation always terminates.
func (ga *LL1Analysis) firstOf(A *Symbol, busy map[*Symbol]*SymbolSet) *SymbolSet {
	if f, ok := ga.first[A]; ok {
		return f
	}
	if partial, ok := busy[A]; ok {
		tracer().Debugf("FIRST(%s) re-entered, cutting recursion", A)
		return partial
	}
	f := newSymbolSet()
	busy[A] = f
	for _, r := range ga.g.DerivationsFor(A) {
		f.union(ga.firstOfSeq(r.rhs, busy))
	}
	delete(busy, A)
	ga.first[A] = f
	tracer().Debugf("FIRST(%s) = %v", A, f)
	return f
}

// firstOfSeq computes FIRST for a sequence of symbols, scanning from the
// left:
//
// - a terminal is added to the result and blocks every later position
// - for a non-terminal all non-ε members of its FIRST-set are merged in;
//   if that set contains ε the non-terminal may vanish and scanning
//   proceeds with the next position
// - if the end of the sequence is reached with every symbol able to vanish
//   (in particular: if the sequence is empty), ε joins the result.
func (ga *LL1Analysis) firstOfSeq(seq []*Symbol, busy map[*Symbol]*SymbolSet) *SymbolSet {
	f := newSymbolSet()
	for _, sym := range seq {
		switch sym.Class() {
		case Terminal, EOF:
			f.add(sym)
			return f
		case Eps:
			f.add(ga.g.epsilon)
			return f
		case NonTerm:
			sub := ga.firstOf(sym, busy)
			f.unionWithoutEps(sub)
			if !sub.ContainsEps() {
				return f
			}
		}
	}
	f.add(ga.g.epsilon)
	return f
}

// --- FOLLOW ----------------------------------------------------------------

// followOf computes FOLLOW(A), walking all RHS occurrences of A:
// the FIRST-set of the suffix behind A contributes its non-ε members, and
// whenever that suffix may vanish (or is empty), whatever follows the
// producing non-terminal may follow A as well. FOLLOW of the start symbol
// is seeded with #eof.
//
// Memoization and the busy-guard mirror firstOf: a cycle of mutually
// right-recursive non-terminals (A -> x B, B -> y A) terminates by merging
// the partial set of the outer computation instead of recursing further.
func (ga *LL1Analysis) followOf(A *Symbol, busy map[*Symbol]*SymbolSet) *SymbolSet {
	if f, ok := ga.follow[A]; ok {
		return f
	}
	if partial, ok := busy[A]; ok {
		tracer().Debugf("FOLLOW(%s) re-entered, cutting recursion", A)
		return partial
	}
	f := newSymbolSet()
	busy[A] = f
	if A == ga.g.start {
		f.add(ga.g.eof)
	}
	if occs, ok := ga.occ[A]; ok {
		it := occs.Iterator()
		for it.Next() {
			o := it.Value().(occurrence)
			if len(o.suffix) > 0 {
				fs := ga.firstOfSeq(o.suffix, map[*Symbol]*SymbolSet{})
				f.unionWithoutEps(fs)
				if fs.ContainsEps() { // suffix may vanish entirely
					f.union(ga.followOf(o.producer, busy))
				}
			} else if o.producer != A { // guard: rule ending in A itself
				f.union(ga.followOf(o.producer, busy))
			}
		}
	}
	f.remove(ga.g.epsilon) // ε is never a valid FOLLOW member
	delete(busy, A)
	ga.follow[A] = f
	tracer().Debugf("FOLLOW(%s) = %v", A, f)
	return f
}

// === Table Builder =========================================================

// FirstFollowTable aggregates the FIRST- and FOLLOW-sets for every
// non-terminal of a grammar. It is the sole output artifact of the analysis,
// and immutable once returned.
type FirstFollowTable struct {
	g      *Grammar
	first  map[*Symbol]*SymbolSet
	follow map[*Symbol]*SymbolSet
}

// BuildFirstFollow analyses a grammar and assembles the FIRST- and
// FOLLOW-sets of all its non-terminals into one table. It either returns a
// complete table or fails with an error identifying the offending
// non-terminal; partial tables are never returned.
//
// This is a convenience wrapper: clients needing FIRST/FOLLOW piecemeal, or
// epsilon-derivability, use Analysis(g) directly.
func BuildFirstFollow(g *Grammar) (*FirstFollowTable, error) {
	ga, err := Analysis(g)
	if err != nil {
		return nil, err
	}
	return ga.Table(), nil
}

// Table assembles the analysis results into a FirstFollowTable.
func (ga *LL1Analysis) Table() *FirstFollowTable {
	t := &FirstFollowTable{
		g:      ga.g,
		first:  make(map[*Symbol]*SymbolSet, len(ga.first)),
		follow: make(map[*Symbol]*SymbolSet, len(ga.follow)),
	}
	for N, f := range ga.first {
		t.first[N] = f
	}
	for N, f := range ga.follow {
		t.follow[N] = f
	}
	return t
}

// Grammar returns the grammar this table was built for.
func (t *FirstFollowTable) Grammar() *Grammar {
	return t.g
}

// First returns FIRST(N), or nil if N is not a non-terminal of the grammar.
func (t *FirstFollowTable) First(N *Symbol) *SymbolSet {
	return t.first[N]
}

// Follow returns FOLLOW(N), or nil if N is not a non-terminal of the grammar.
func (t *FirstFollowTable) Follow(N *Symbol) *SymbolSet {
	return t.follow[N]
}
