package lltab

// --- A general purpose type for token categories ---------------------------

// TokType is a category type for a terminal token. We do not define any
// constants here, as it is up to applications to define them. Terminals of a
// grammar carry a TokType value, which downstream table-construction stages
// use as column indices.
//
// Token value 0 is reserved for epsilon, the empty derivation. The end-of-input
// marker conventionally carries the EOF value of text/scanner (i.e. -1).
type TokType int

// TokTypeStringer is a type to be provided by applications to be able
// to print out token categories.
type TokTypeStringer func(TokType) string
