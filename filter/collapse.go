package filter

func (i *Inverted[F]) collapse() Node[F] {
	child := i.child.Collapse()

	if c, ok := child.(*Combination[F]); ok {
		switch {
		case c.IsTrue():
			return False[F]()
		case c.IsFalse():
			return True[F]()
		}
	}

	// NOT (NOT x) is x.
	if inner, ok := child.(*Inverted[F]); ok {
		return inner.child
	}

	return &Inverted[F]{child: child, collapsed: true}
}

func (c *Combination[F]) collapse() Node[F] {
	dominant, neutral := False[F](), True[F]()
	if c.op == OpAny {
		dominant, neutral = neutral, dominant
	}

	children := make([]Node[F], 0, len(c.nodes))
	for _, n := range c.nodes {
		n = n.Collapse()
		switch {
		case c.op == OpAll && n.IsFalse(), c.op == OpAny && n.IsTrue():
			return dominant
		case c.op == OpAll && n.IsTrue(), c.op == OpAny && n.IsFalse():
			continue
		}
		children = c.flatten(children, n)
	}

	children = uniqueNodes(c.absorb(children))

	switch len(children) {
	case 0:
		return neutral
	case 1:
		return children[0]
	}
	return &Combination[F]{op: c.op, nodes: children, collapsed: true}
}

// flatten appends n to dst, splicing in its children when n uses the same
// operator as c.
func (c *Combination[F]) flatten(dst []Node[F], n Node[F]) []Node[F] {
	if inner, ok := n.(*Combination[F]); ok && inner.op == c.op {
		return append(dst, inner.nodes...)
	}
	return append(dst, n)
}

// absorb drops every opposite-operator child that has one of the plain
// siblings among its own children: X AND (X OR Y) is X.
func (c *Combination[F]) absorb(children []Node[F]) []Node[F] {
	var plain []Node[F]
	opposite := 0
	for _, n := range children {
		if c.isOpposite(n) {
			opposite++
			continue
		}
		plain = append(plain, n)
	}
	if opposite == 0 || len(plain) == 0 {
		return children
	}

	kept := children[:0:0]
	for _, n := range children {
		if c.isOpposite(n) && containsAny(n.(*Combination[F]).nodes, plain) {
			continue
		}
		kept = append(kept, n)
	}
	return kept
}

func (c *Combination[F]) isOpposite(n Node[F]) bool {
	inner, ok := n.(*Combination[F])
	return ok && inner.op != c.op
}

func containsAny[F Filter](set, candidates []Node[F]) bool {
	for _, candidate := range candidates {
		for _, n := range set {
			if n.Hash() == candidate.Hash() && n.Equal(candidate) {
				return true
			}
		}
	}
	return false
}

// uniqueNodes removes strictly equal duplicates, keeping the first
// occurrence of each.
func uniqueNodes[F Filter](nodes []Node[F]) []Node[F] {
	if len(nodes) < 2 {
		return nodes
	}

	seen := make(map[uint64][]Node[F], len(nodes))
	unique := make([]Node[F], 0, len(nodes))
outer:
	for _, n := range nodes {
		h := n.Hash()
		for _, prev := range seen[h] {
			if prev.Equal(n) {
				continue outer
			}
		}
		seen[h] = append(seen[h], n)
		unique = append(unique, n)
	}
	return unique
}
