package filter

import "errors"

// ErrUnhandledNode is reported when a value satisfies Node without being one
// of the node kinds defined by this package.
var ErrUnhandledNode = errors.New("filter: unhandled node kind")

// Filter is the contract every leaf filter satisfies.
//
// IsTrue and IsFalse are conservative: returning true means the filter
// accepts (or rejects) every item, returning false means unknown.
type Filter interface {
	IsTrue() bool
	IsFalse() bool
	// Equal reports structural equality with another filter, which may be of
	// a different concrete type.
	Equal(other Filter) bool
	// Hash must agree with Equal.
	Hash() uint64
}

// Matcher is a filter that can be evaluated against items of type T.
type Matcher[T any] interface {
	Filter
	IsMatch(item T) bool
}

// Ordered is implemented by filters with a natural ordering.
type Ordered[F any] interface {
	Filter
	Compare(other F) int
}

// Operator defines how the children of a combination are combined.
type Operator int

const (
	// OpAll requires every child to match. With no children it is TRUE.
	OpAll Operator = iota
	// OpAny requires at least one child to match. With no children it is FALSE.
	OpAny
)

func (op Operator) String() string {
	switch op {
	case OpAll:
		return "All"
	case OpAny:
		return "Any"
	default:
		return "?"
	}
}

// Opposite returns the dual operator.
func (op Operator) Opposite() Operator {
	if op == OpAll {
		return OpAny
	}
	return OpAll
}

func (op Operator) delimiter() string {
	if op == OpAll {
		return " AND "
	}
	return " OR "
}

// Kind identifies the variant of a node.
type Kind int

const (
	_ Kind = iota
	KindLeaf
	KindInverted
	KindCombination
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindInverted:
		return "Inverted"
	case KindCombination:
		return "Combination"
	default:
		return "?"
	}
}
