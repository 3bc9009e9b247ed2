package filter

import "slices"

// Comparer is a total order over nodes. Leaves sort before inverted nodes,
// which sort before combinations.
//
// Comparers are compared by identity: Sort only short-circuits for the very
// comparer a tree was last sorted with.
type Comparer[F Filter] struct {
	leaf func(a, b F) int
}

// NewComparer returns a comparer that orders leaves with cmp.
func NewComparer[F Filter](cmp func(a, b F) int) *Comparer[F] {
	return &Comparer[F]{leaf: cmp}
}

// NaturalOrder returns the comparer that orders leaves by their own Compare
// method. The same instance is returned for every call with the same F.
func NaturalOrder[F Ordered[F]]() *Comparer[F] {
	return singleton[F]("natural", func() *Comparer[F] {
		return NewComparer(func(a, b F) int { return a.Compare(b) })
	})
}

// SortNatural sorts n with NaturalOrder.
func SortNatural[F Ordered[F]](n Node[F]) Node[F] {
	return n.Sort(NaturalOrder[F]())
}

// Compare returns a negative number when x sorts before y, a positive number
// when it sorts after, and zero otherwise.
func (c *Comparer[F]) Compare(x, y Node[F]) int {
	for {
		if sameNode(x, y) {
			return 0
		}

		switch xn := x.(type) {
		case *Leaf[F]:
			if yn, ok := y.(*Leaf[F]); ok {
				return c.leaf(xn.filter, yn.filter)
			}
			return -1
		case *Inverted[F]:
			switch yn := y.(type) {
			case *Leaf[F]:
				return 1
			case *Inverted[F]:
				x, y = xn.child, yn.child
				continue
			case *Combination[F]:
				return -1
			default:
				panic(unhandled(y))
			}
		case *Combination[F]:
			if yn, ok := y.(*Combination[F]); ok {
				if xn.op != yn.op {
					return int(xn.op) - int(yn.op)
				}
				return slices.CompareFunc(xn.nodes, yn.nodes, c.Compare)
			}
			return 1
		}

		panic(unhandled(x))
	}
}

// sameNode reports whether x and y are the same instance.
func sameNode[F Filter](x, y Node[F]) bool {
	switch xn := x.(type) {
	case *Leaf[F]:
		yn, ok := y.(*Leaf[F])
		return ok && xn == yn
	case *Inverted[F]:
		yn, ok := y.(*Inverted[F])
		return ok && xn == yn
	case *Combination[F]:
		yn, ok := y.(*Combination[F])
		return ok && xn == yn
	}
	return false
}
