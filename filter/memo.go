package filter

import "sync/atomic"

// Memo cells publish a value computed from an immutable node. Racing
// goroutines may each compute the value, but they all observe the same one.

const (
	trueKnown uint32 = 1 << iota
	trueValue
	falseKnown
	falseValue
)

type truthCell struct {
	bits atomic.Uint32
}

func (c *truthCell) load(known, value uint32, compute func() bool) bool {
	bits := c.bits.Load()
	if bits&known != 0 {
		return bits&value != 0
	}

	v := compute()
	set := known
	if v {
		set |= value
	}
	for {
		old := c.bits.Load()
		if c.bits.CompareAndSwap(old, old|set) {
			return v
		}
	}
}

func (c *truthCell) isTrue(compute func() bool) bool {
	return c.load(trueKnown, trueValue, compute)
}

func (c *truthCell) isFalse(compute func() bool) bool {
	return c.load(falseKnown, falseValue, compute)
}

type hashCell struct {
	done  atomic.Bool
	value atomic.Uint64
}

func (c *hashCell) load(compute func() uint64) uint64 {
	if c.done.Load() {
		return c.value.Load()
	}
	v := compute()
	c.value.Store(v)
	c.done.Store(true)
	return v
}

// lazy keeps the first published value, so callers racing on the same node
// get the same instance back.
type lazy[T any] struct {
	p atomic.Pointer[T]
}

func (c *lazy[T]) load(compute func() T) T {
	if p := c.p.Load(); p != nil {
		return *p
	}
	v := compute()
	c.p.CompareAndSwap(nil, &v)
	return *c.p.Load()
}

type memo[F Filter] struct {
	truth     truthCell
	hash      hashCell
	collapsed lazy[Node[F]]
}
