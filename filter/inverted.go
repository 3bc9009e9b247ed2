package filter

// Inverted is the logical negation of its operand.
type Inverted[F Filter] struct {
	child     Node[F]
	collapsed bool
	sortedBy  *Comparer[F]
	m         memo[F]
}

// Operand returns the negated node.
func (i *Inverted[F]) Operand() Node[F] {
	return i.child
}

func (*Inverted[F]) Kind() Kind {
	return KindInverted
}

func (i *Inverted[F]) IsTrue() bool {
	return i.m.truth.isTrue(i.child.IsFalse)
}

func (i *Inverted[F]) IsFalse() bool {
	return i.m.truth.isFalse(i.child.IsTrue)
}

func (i *Inverted[F]) Hash() uint64 {
	return i.m.hash.load(func() uint64 {
		return i.child.Hash()*hashPrime ^ ^uint64(0)
	})
}

func (i *Inverted[F]) Equal(other AnyNode) bool {
	if o, ok := other.(*Inverted[F]); ok && o == i {
		return true
	}
	o, ok := other.(invertedView)
	return ok && i.child.Equal(o.operandView())
}

func (i *Inverted[F]) String() string {
	return "NOT (" + i.child.String() + ")"
}

func (i *Inverted[F]) Collapse() Node[F] {
	if i.collapsed {
		return i
	}
	return i.m.collapsed.load(i.collapse)
}

func (i *Inverted[F]) Sort(c *Comparer[F]) Node[F] {
	if i.sortedBy != nil && i.sortedBy == c {
		return i
	}
	return &Inverted[F]{
		child:     i.child.Sort(c),
		collapsed: i.collapsed,
		sortedBy:  c,
	}
}

func (i *Inverted[F]) Any(pred func(F) bool) bool {
	return i.child.Any(pred)
}

func (i *Inverted[F]) All(pred func(F) bool) bool {
	return i.child.All(pred)
}

func (i *Inverted[F]) IsEquivalentTo(other AnyNode) bool {
	return equivalent(i.Collapse(), other.collapseAny())
}

func (i *Inverted[F]) operandView() AnyNode {
	return i.child
}

func (i *Inverted[F]) collapseAny() AnyNode {
	return i.Collapse()
}
