package filter

// Aggregate folds n bottom-up. Combination children are folded in order and
// handed to combine; an inverted operand is folded and handed to invert;
// leaves are handed to transform.
func Aggregate[F Filter, R any](
	n Node[F],
	combine func(results []R, op Operator) R,
	invert func(R) R,
	transform func(F) R,
) R {
	switch n := n.(type) {
	case *Leaf[F]:
		return transform(n.filter)
	case *Inverted[F]:
		return invert(Aggregate(n.child, combine, invert, transform))
	case *Combination[F]:
		results := make([]R, len(n.nodes))
		for i, child := range n.nodes {
			results[i] = Aggregate(child, combine, invert, transform)
		}
		return combine(results, n.op)
	}
	panic(unhandled(n))
}

// Match calls the callback matching the kind of n, without recursing.
func Match[F Filter, R any](
	n Node[F],
	onCombination func(*Combination[F]) R,
	onInverted func(*Inverted[F]) R,
	onLeaf func(*Leaf[F]) R,
) R {
	switch n := n.(type) {
	case *Combination[F]:
		return onCombination(n)
	case *Inverted[F]:
		return onInverted(n)
	case *Leaf[F]:
		return onLeaf(n)
	}
	panic(unhandled(n))
}

// Map replaces every leaf filter with f applied to it. The shape of the
// tree is unchanged.
func Map[F, G Filter](n Node[F], f func(F) G) Node[G] {
	return Bind(n, func(filter F) Node[G] {
		return NewLeaf(f(filter))
	})
}

// Bind replaces every leaf with the subtree f returns for its filter.
// Combinations and inversions around the leaves are rebuilt as they are.
func Bind[F, G Filter](n Node[F], f func(F) Node[G]) Node[G] {
	return Aggregate(n, NewCombinationOf[G], Not[G], f)
}

// Where replaces the leaves whose filter does not satisfy pred with TRUE.
func Where[F Filter](n Node[F], pred func(F) bool) Node[F] {
	return Bind(n, func(filter F) Node[F] {
		if pred(filter) {
			return NewLeaf(filter)
		}
		return True[F]()
	})
}

// NewCombinationOf is NewCombination with the children passed as a slice,
// which makes it usable as the combine step of Aggregate.
func NewCombinationOf[F Filter](nodes []Node[F], op Operator) Node[F] {
	return NewCombination(op, nodes...)
}
