package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnolang/combfilter/filter"
	"github.com/gnolang/combfilter/filter/filtertest"
	"github.com/gnolang/combfilter/numrange"
)

func ranges(n filter.Node[numrange.Range], values []int) []int {
	match := filter.GetPredicate[int](n)
	var out []int
	for _, v := range values {
		if match(v) {
			out = append(out, v)
		}
	}
	return out
}

func TestGetPartialPrefiltersRanges(t *testing.T) {
	t.Parallel()
	// -5..10 except 2..6
	f := filter.All(
		filter.NewLeaf(numrange.Between(-5, 10)),
		filter.Not(filter.NewLeaf(numrange.Between(2, 6))),
	)

	partial := filter.GetPartial(f, func(r numrange.Range) bool { return r.Lower >= 0 })
	assert.Equal(t, "NOT (2..6)", partial.String())

	prefiltered := ranges(partial, []int{1, 3, 5, 7, 12})
	assert.Equal(t, []int{1, 7, 12}, prefiltered)

	combined := append(prefiltered, -7, -4, 11)
	assert.Equal(t, []int{1, 7, -4}, ranges(f, combined))
}

func TestGetPartialNeverNarrows(t *testing.T) {
	t.Parallel()
	gen := filtertest.NewGenerator(99)

	for i := range 300 {
		words := gen.Words(200)
		f := gen.Filter()

		excluded := map[filtertest.Char]bool{}
		for range i % 10 {
			excluded[gen.Char()] = true
		}
		partial := filter.GetPartial(f, func(c filtertest.Char) bool { return !excluded[c] })

		original := filter.GetPredicate[string](f)
		relaxed := filter.GetPredicate[string](partial)
		for _, w := range words {
			if original(w) {
				assert.True(t, relaxed(w), "%q matches %s but not its partial %s", w, f, partial)
			}
		}
	}
}

func TestGetPartialKeepsEverythingWhenAllLeavesPass(t *testing.T) {
	t.Parallel()
	f := filter.Any(leaf('A'), filter.Not(filter.All(chars("BC")...)))

	partial := filter.GetPartial(f, func(filtertest.Char) bool { return true })
	assert.True(t, f.Collapse().Equal(partial), "got %s", partial)
}

func TestRelaxSwapsUnderInversion(t *testing.T) {
	t.Parallel()
	tag := func(to rune) func(filtertest.Char) filter.Node[filtertest.Char] {
		return func(filtertest.Char) filter.Node[filtertest.Char] {
			return leaf(to)
		}
	}
	f := filter.All(leaf('A'), filter.Not(filter.Any(leaf('B'), filter.Not(leaf('C')))))

	relaxed := filter.Relax(f, tag('x'), tag('y'))
	assert.Equal(t, "('x') AND (NOT (('y') OR (NOT ('x'))))", relaxed.String())

	restricted := filter.Restrict(f, tag('x'), tag('y'))
	assert.Equal(t, "('y') AND (NOT (('x') OR (NOT ('y'))))", restricted.String())
}

func TestRelaxCollapsesEveryLevel(t *testing.T) {
	t.Parallel()
	drop := func(filtertest.Char) filter.Node[filtertest.Char] { return filter.True[filtertest.Char]() }
	keep := func(c filtertest.Char) filter.Node[filtertest.Char] { return filter.NewLeaf(c) }

	f := filter.All(leaf('A'), filter.Any(leaf('B'), leaf('B')))
	assert.Same(t, filter.True[filtertest.Char](), filter.Relax(f, drop, keep))

	relaxed := filter.Relax(f, keep, drop)
	assert.True(t, filter.All(chars("AB")...).Equal(relaxed), "got %s", relaxed)
	assert.Same(t, relaxed, relaxed.Collapse())
}

func TestRestrictNeverWidens(t *testing.T) {
	t.Parallel()
	gen := filtertest.NewGenerator(5)
	relax := func(filtertest.Char) filter.Node[filtertest.Char] { return filter.True[filtertest.Char]() }
	restrict := func(filtertest.Char) filter.Node[filtertest.Char] { return filter.False[filtertest.Char]() }

	for range 100 {
		words := gen.Words(100)
		f := gen.Filter()
		restricted := filter.Restrict(f, relax, restrict)

		original := filter.GetPredicate[string](f)
		narrowed := filter.GetPredicate[string](restricted)
		for _, w := range words {
			if narrowed(w) {
				assert.True(t, original(w), "%q matches %s but not %s", w, restricted, f)
			}
		}
	}
}
