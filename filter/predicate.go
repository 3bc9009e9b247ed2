package filter

// Predicate compiles n into a single function of an item. itemTest returns
// the test for one leaf filter. The returned function does not allocate when
// called, so compile once and reuse it for many items.
func Predicate[F Filter, T any](n Node[F], itemTest func(F) func(T) bool) func(T) bool {
	return Aggregate(n, combinePredicates[T], invertPredicate[T], itemTest)
}

// GetPredicate compiles n using the IsMatch method of its leaf filters.
func GetPredicate[T any, F Matcher[T]](n Node[F]) func(T) bool {
	return Predicate(n, func(f F) func(T) bool {
		return f.IsMatch
	})
}

// IsMatch reports whether item satisfies n. It compiles n on every call;
// use GetPredicate when matching more than one item.
func IsMatch[T any, F Matcher[T]](n Node[F], item T) bool {
	return GetPredicate[T](n)(item)
}

func combinePredicates[T any](preds []func(T) bool, op Operator) func(T) bool {
	if op == OpAll {
		return func(item T) bool {
			for _, p := range preds {
				if !p(item) {
					return false
				}
			}
			return true
		}
	}
	return func(item T) bool {
		for _, p := range preds {
			if p(item) {
				return true
			}
		}
		return false
	}
}

func invertPredicate[T any](p func(T) bool) func(T) bool {
	return func(item T) bool {
		return !p(item)
	}
}
