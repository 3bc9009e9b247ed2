package filtertest

import (
	"math/rand/v2"

	"github.com/gnolang/combfilter/filter"
)

// Chars is the alphabet used by Generator.
const Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const maxDepth = 6

// Generator builds random Char trees and random strings to match them
// against. The same seed always yields the same sequence.
type Generator struct {
	rnd *rand.Rand
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Filter returns a random tree with a combination at the root. Inversions
// are never nested directly in each other, so collapsing is not trivial.
func (g *Generator) Filter() filter.Node[Char] {
	return g.combination(0)
}

func (g *Generator) node(depth int, underNot bool) filter.Node[Char] {
	if depth >= maxDepth {
		return filter.NewLeaf(g.Char())
	}
	for {
		switch k := g.rnd.IntN(7); {
		case k == 0:
			return g.combination(depth)
		case k == 1 && underNot:
			continue
		case k == 1:
			return filter.Not(g.node(depth+1, true))
		default:
			return filter.NewLeaf(g.Char())
		}
	}
}

func (g *Generator) combination(depth int) filter.Node[Char] {
	children := make([]filter.Node[Char], 3)
	for i := range children {
		children[i] = g.node(depth+1, false)
	}
	op := filter.OpAll
	if g.rnd.IntN(2) == 1 {
		op = filter.OpAny
	}
	return filter.NewCombination(op, children...)
}

// Char returns a random character from Chars.
func (g *Generator) Char() Char {
	return Char(Chars[g.rnd.IntN(len(Chars))])
}

// Word returns a random string of up to len(Chars)-1 characters.
func (g *Generator) Word() string {
	b := make([]byte, g.rnd.IntN(len(Chars)))
	for i := range b {
		b[i] = Chars[g.rnd.IntN(len(Chars))]
	}
	return string(b)
}

// Words returns n random strings with duplicates removed.
func (g *Generator) Words(n int) []string {
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for range n {
		s := g.Word()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
