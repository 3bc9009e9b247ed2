package filter

import (
	"slices"
	"strings"
)

const hashPrime = 397

// Combination joins an ordered list of children with an Operator.
type Combination[F Filter] struct {
	op        Operator
	nodes     []Node[F]
	collapsed bool
	sortedBy  *Comparer[F]
	m         memo[F]
}

func (c *Combination[F]) Operator() Operator {
	return c.op
}

// Nodes returns a copy of the children.
func (c *Combination[F]) Nodes() []Node[F] {
	return slices.Clone(c.nodes)
}

// Len returns the number of children.
func (c *Combination[F]) Len() int {
	return len(c.nodes)
}

// Node returns the i-th child.
func (c *Combination[F]) Node(i int) Node[F] {
	return c.nodes[i]
}

func (*Combination[F]) Kind() Kind {
	return KindCombination
}

func (c *Combination[F]) IsTrue() bool {
	return c.m.truth.isTrue(func() bool {
		if c.op == OpAll {
			return allNodes(c.nodes, Node[F].IsTrue)
		}
		return anyNode(c.nodes, Node[F].IsTrue)
	})
}

func (c *Combination[F]) IsFalse() bool {
	return c.m.truth.isFalse(func() bool {
		if c.op == OpAll {
			return anyNode(c.nodes, Node[F].IsFalse)
		}
		return allNodes(c.nodes, Node[F].IsFalse)
	})
}

func (c *Combination[F]) Hash() uint64 {
	return c.m.hash.load(func() uint64 {
		var h uint64
		for _, n := range c.nodes {
			h = h*hashPrime ^ n.Hash()
		}
		return h*hashPrime ^ uint64(c.op)
	})
}

// Equal reports whether other is a combination with the same operator and
// pairwise equal children in the same order.
func (c *Combination[F]) Equal(other AnyNode) bool {
	if o, ok := other.(*Combination[F]); ok {
		if o == c {
			return true
		}
		return c.op == o.op && slices.EqualFunc(c.nodes, o.nodes, func(a, b Node[F]) bool {
			return a.Equal(b)
		})
	}

	o, ok := other.(combinationView)
	if !ok || o.Operator() != c.op || o.Len() != len(c.nodes) {
		return false
	}
	for i, n := range c.nodes {
		if !n.Equal(o.childView(i)) {
			return false
		}
	}
	return true
}

func (c *Combination[F]) String() string {
	if len(c.nodes) == 0 {
		if c.op == OpAll {
			return "TRUE"
		}
		return "FALSE"
	}

	var b strings.Builder
	for i, n := range c.nodes {
		if i > 0 {
			b.WriteString(c.op.delimiter())
		}
		b.WriteString("(")
		b.WriteString(n.String())
		b.WriteString(")")
	}
	return b.String()
}

func (c *Combination[F]) Collapse() Node[F] {
	if c.collapsed {
		return c
	}
	return c.m.collapsed.load(c.collapse)
}

// Sort orders the children by cmp after sorting each of them. Empty
// combinations and combinations already sorted by cmp are returned as is.
func (c *Combination[F]) Sort(cmp *Comparer[F]) Node[F] {
	if (c.sortedBy != nil && c.sortedBy == cmp) || len(c.nodes) == 0 {
		return c
	}

	sorted := make([]Node[F], len(c.nodes))
	for i, n := range c.nodes {
		sorted[i] = n.Sort(cmp)
	}
	slices.SortStableFunc(sorted, cmp.Compare)

	return &Combination[F]{
		op:        c.op,
		nodes:     sorted,
		collapsed: c.collapsed,
		sortedBy:  cmp,
	}
}

func (c *Combination[F]) Any(pred func(F) bool) bool {
	for _, n := range c.nodes {
		if n.Any(pred) {
			return true
		}
	}
	return false
}

func (c *Combination[F]) All(pred func(F) bool) bool {
	for _, n := range c.nodes {
		if !n.All(pred) {
			return false
		}
	}
	return true
}

func (c *Combination[F]) IsEquivalentTo(other AnyNode) bool {
	return equivalent(c.Collapse(), other.collapseAny())
}

func (c *Combination[F]) childView(i int) AnyNode {
	return c.nodes[i]
}

func (c *Combination[F]) collapseAny() AnyNode {
	return c.Collapse()
}

func allNodes[F Filter](nodes []Node[F], f func(Node[F]) bool) bool {
	for _, n := range nodes {
		if !f(n) {
			return false
		}
	}
	return true
}

func anyNode[F Filter](nodes []Node[F], f func(Node[F]) bool) bool {
	for _, n := range nodes {
		if f(n) {
			return true
		}
	}
	return false
}
