package filter

import "fmt"

// Leaf is a terminal node holding a single leaf filter.
type Leaf[F Filter] struct {
	filter F
	m      memo[F]
}

// Filter returns the wrapped leaf filter.
func (l *Leaf[F]) Filter() F {
	return l.filter
}

func (*Leaf[F]) Kind() Kind {
	return KindLeaf
}

func (l *Leaf[F]) IsTrue() bool {
	return l.m.truth.isTrue(l.filter.IsTrue)
}

func (l *Leaf[F]) IsFalse() bool {
	return l.m.truth.isFalse(l.filter.IsFalse)
}

func (l *Leaf[F]) Hash() uint64 {
	return l.m.hash.load(l.filter.Hash)
}

func (l *Leaf[F]) Equal(other AnyNode) bool {
	if o, ok := other.(*Leaf[F]); ok && o == l {
		return true
	}
	o, ok := other.(leafView)
	return ok && l.filter.Equal(o.leafFilter())
}

func (l *Leaf[F]) String() string {
	return fmt.Sprint(l.filter)
}

// Collapse replaces trivially true or false leaves with TRUE or FALSE.
func (l *Leaf[F]) Collapse() Node[F] {
	if l.IsTrue() {
		return True[F]()
	}
	if l.IsFalse() {
		return False[F]()
	}
	return l
}

func (l *Leaf[F]) Sort(*Comparer[F]) Node[F] {
	return l
}

func (l *Leaf[F]) Any(pred func(F) bool) bool {
	return pred(l.filter)
}

func (l *Leaf[F]) All(pred func(F) bool) bool {
	return pred(l.filter)
}

func (l *Leaf[F]) IsEquivalentTo(other AnyNode) bool {
	return equivalent(l.Collapse(), other.collapseAny())
}

func (l *Leaf[F]) leafFilter() Filter {
	return l.filter
}

func (l *Leaf[F]) collapseAny() AnyNode {
	return l.Collapse()
}
