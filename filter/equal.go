package filter

// Equivalent reports whether a and b mean the same thing once collapsed,
// ignoring the order and multiplicity of combination children.
func Equivalent(a, b AnyNode) bool {
	return equivalent(a.collapseAny(), b.collapseAny())
}

// equivalent compares two collapsed nodes. Combinations compare as sets of
// equivalent children.
func equivalent(a, b AnyNode) bool {
	if a.Kind() != b.Kind() {
		return false
	}

	switch an := a.(type) {
	case leafView:
		return a.Equal(b)
	case invertedView:
		bn, ok := b.(invertedView)
		return ok && equivalent(an.operandView(), bn.operandView())
	case combinationView:
		bn, ok := b.(combinationView)
		if !ok || an.Operator() != bn.Operator() {
			return false
		}
		return coveredBy(an, bn) && coveredBy(bn, an)
	}
	return false
}

// coveredBy reports whether every child of a is equivalent to some child of b.
func coveredBy(a, b combinationView) bool {
outer:
	for i := range a.Len() {
		x := a.childView(i)
		for j := range b.Len() {
			if equivalent(x, b.childView(j)) {
				continue outer
			}
		}
		return false
	}
	return true
}
