package filter

// Relax rewrites every leaf with relax, except below an odd number of
// inversions where restrict is used instead. The result of every level is
// collapsed.
//
// If relax never narrows a leaf and restrict never widens one, everything
// that matches n also matches the result.
func Relax[F Filter](n Node[F], relax, restrict func(F) Node[F]) Node[F] {
	return Match(n,
		func(c *Combination[F]) Node[F] {
			nodes := make([]Node[F], len(c.nodes))
			for i, child := range c.nodes {
				nodes[i] = Relax(child, relax, restrict)
			}
			return Combine(c.op, nodes...).Collapse()
		},
		func(i *Inverted[F]) Node[F] {
			return Not(Restrict(i.child, relax, restrict)).Collapse()
		},
		func(l *Leaf[F]) Node[F] {
			return relax(l.filter).Collapse()
		},
	)
}

// Restrict is the dual of Relax: leaves are rewritten with restrict, and with
// relax below an odd number of inversions.
func Restrict[F Filter](n Node[F], relax, restrict func(F) Node[F]) Node[F] {
	return Relax(n, restrict, relax)
}

// GetPartial keeps the leaves whose filter satisfies pred and drops the rest
// in the direction that widens the filter. Everything that matches n also
// matches the result.
func GetPartial[F Filter](n Node[F], pred func(F) bool) Node[F] {
	relax, restrict := partial(pred)
	return Relax(n, relax, restrict)
}

func partial[F Filter](pred func(F) bool) (relax, restrict func(F) Node[F]) {
	keep := func(or Node[F]) func(F) Node[F] {
		return func(f F) Node[F] {
			if pred(f) {
				return NewLeaf(f)
			}
			return or
		}
	}
	return keep(True[F]()), keep(False[F]())
}
