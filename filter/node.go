package filter

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// AnyNode is the part of a node that does not depend on its leaf type. It
// lets nodes built over different leaf types be compared with each other.
type AnyNode interface {
	Kind() Kind
	IsTrue() bool
	IsFalse() bool
	Equal(other AnyNode) bool
	Hash() uint64
	String() string

	collapseAny() AnyNode
}

type leafView interface {
	AnyNode
	leafFilter() Filter
}

type invertedView interface {
	AnyNode
	operandView() AnyNode
}

type combinationView interface {
	AnyNode
	Operator() Operator
	Len() int
	childView(i int) AnyNode
}

// Node is a filter tree over leaf filters of type F. The only
// implementations are *Leaf[F], *Inverted[F] and *Combination[F].
type Node[F Filter] interface {
	AnyNode

	// Collapse returns a simplified node with the same meaning.
	Collapse() Node[F]
	// Sort returns the node with the children of every combination ordered
	// by c.
	Sort(c *Comparer[F]) Node[F]
	// Any reports whether pred holds for at least one leaf filter.
	Any(pred func(F) bool) bool
	// All reports whether pred holds for every leaf filter.
	All(pred func(F) bool) bool
	// IsEquivalentTo reports whether both nodes collapse to the same tree,
	// ignoring the order and multiplicity of combination children.
	IsEquivalentTo(other AnyNode) bool
}

// NewLeaf wraps f in a leaf node.
func NewLeaf[F Filter](f F) Node[F] {
	return &Leaf[F]{filter: f}
}

// Not returns the negation of n.
func Not[F Filter](n Node[F]) Node[F] {
	return &Inverted[F]{child: n}
}

// Invert is an alias of Not.
func Invert[F Filter](n Node[F]) Node[F] {
	return Not(n)
}

// NewCombination combines nodes with op. The children keep their order.
func NewCombination[F Filter](op Operator, nodes ...Node[F]) Node[F] {
	return &Combination[F]{op: op, nodes: slices.Clone(nodes)}
}

// All returns the conjunction of nodes.
func All[F Filter](nodes ...Node[F]) Node[F] {
	return NewCombination(OpAll, nodes...)
}

// Any returns the disjunction of nodes.
func Any[F Filter](nodes ...Node[F]) Node[F] {
	return NewCombination(OpAny, nodes...)
}

// AllOf returns the conjunction of the given leaf filters.
func AllOf[F Filter](filters ...F) Node[F] {
	return NewCombination(OpAll, leaves(filters)...)
}

// AnyOf returns the disjunction of the given leaf filters.
func AnyOf[F Filter](filters ...F) Node[F] {
	return NewCombination(OpAny, leaves(filters)...)
}

// Combine is like NewCombination, except that a single node is returned
// unchanged instead of being wrapped.
func Combine[F Filter](op Operator, nodes ...Node[F]) Node[F] {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return NewCombination(op, nodes...)
}

func leaves[F Filter](filters []F) []Node[F] {
	nodes := make([]Node[F], len(filters))
	for i, f := range filters {
		nodes[i] = NewLeaf(f)
	}
	return nodes
}

// True returns the empty All combination. The same instance is returned for
// every call with the same F.
func True[F Filter]() Node[F] {
	return singleton[F]("true", func() *Combination[F] {
		return &Combination[F]{op: OpAll, collapsed: true}
	})
}

// False returns the empty Any combination. The same instance is returned for
// every call with the same F.
func False[F Filter]() Node[F] {
	return singleton[F]("false", func() *Combination[F] {
		return &Combination[F]{op: OpAny, collapsed: true}
	})
}

func identity[F Filter](op Operator) Node[F] {
	if op == OpAll {
		return True[F]()
	}
	return False[F]()
}

type singletonKey struct {
	typ  reflect.Type
	name string
}

var singletons sync.Map // map[singletonKey]any

func singleton[F Filter, T any](name string, create func() T) T {
	key := singletonKey{typ: reflect.TypeFor[F](), name: name}
	if v, ok := singletons.Load(key); ok {
		return v.(T)
	}
	v, _ := singletons.LoadOrStore(key, create())
	return v.(T)
}

func unhandled(n any) error {
	return fmt.Errorf("%w: %T", ErrUnhandledNode, n)
}
