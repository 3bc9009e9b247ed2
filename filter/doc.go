// Package filter implements a generic boolean algebra over leaf filters.
//
// A filter is an immutable tree built from three node kinds:
//
//   - Leaf: a domain-supplied predicate term of type F
//   - Inverted: logical NOT of a single child
//   - Combination: AND (All) or OR (Any) over an ordered list of children
//
// The empty All combination is TRUE and the empty Any combination is FALSE.
//
// # Construction
//
//	a := filter.NewLeaf(filtertest.Char('A'))
//	b := filter.NewLeaf(filtertest.Char('B'))
//
//	// 'A' AND NOT 'B'
//	f := filter.All(a, filter.Not(b))
//
// # Normalization
//
// Collapse rewrites a tree into a simpler one with the same meaning. It
// applies identity, domination, flattening of nested combinations with the
// same operator, absorption, deduplication and double negation:
//
//	f.Collapse()
//
// Collapse is not a satisfiability solver. It applies a fixed set of cheap
// rules and makes no minimality guarantee beyond them.
//
// Equal is strict and order sensitive. IsEquivalentTo compares the collapsed
// forms of two trees and ignores the order and multiplicity of combination
// children.
//
// # Evaluation
//
// GetPredicate compiles a tree into a closure that can be reused for many
// items:
//
//	match := filter.GetPredicate[string](f)
//	match("AC") // true
//
// # Partial filters
//
// GetPartial drops the leaves a caller cannot evaluate while guaranteeing that
// the result never rejects an item the original would accept. It is useful
// for pushing the evaluable part of a filter down to a cheaper pre-filter.
//
// # Concurrency
//
// Nodes are never mutated after construction, so every operation may run
// concurrently on a shared tree. Memoized values (IsTrue, IsFalse, Hash and
// the collapsed form) are published atomically without locks.
package filter
