package filter_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/combfilter/filter"
	"github.com/gnolang/combfilter/filter/filtertest"
)

var errLeaf = errors.New("leaf failed")

func TestMapAsyncMatchesMap(t *testing.T) {
	t.Parallel()
	gen := filtertest.NewGenerator(21)

	for range 50 {
		f := gen.Filter()
		got, err := filter.MapAsync(t.Context(), f, func(_ context.Context, c filtertest.Char) (filtertest.Char, error) {
			return lower(c), nil
		})
		require.NoError(t, err)

		expected := filter.Map(f, lower)
		assert.True(t, expected.Equal(got), "expected %s, got %s", expected, got)
	}
}

func TestBindAsyncMatchesBind(t *testing.T) {
	t.Parallel()
	gen := filtertest.NewGenerator(22)
	expand := func(c filtertest.Char) filter.Node[filtertest.Char] {
		return filter.AnyOf(c, lower(c))
	}

	for range 50 {
		f := gen.Filter()
		got, err := filter.BindAsync(t.Context(), f, func(_ context.Context, c filtertest.Char) (filter.Node[filtertest.Char], error) {
			return expand(c), nil
		})
		require.NoError(t, err)

		expected := filter.Bind(f, expand)
		assert.True(t, expected.Equal(got), "expected %s, got %s", expected, got)
	}
}

func TestMapAsyncRunsSiblingsConcurrently(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	var arrived sync.WaitGroup
	arrived.Add(3)
	release := make(chan struct{})
	go func() {
		arrived.Wait()
		close(release)
	}()

	f := filter.All(chars("ABC")...)
	got, err := filter.MapAsync(ctx, f, func(ctx context.Context, c filtertest.Char) (filtertest.Char, error) {
		arrived.Done()
		select {
		case <-release:
			return lower(c), nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	})
	require.NoError(t, err)
	assert.Equal(t, "('a') AND ('b') AND ('c')", got.String())
}

func TestMapAsyncStopsOnFirstError(t *testing.T) {
	t.Parallel()
	f := filter.All(leaf('A'), filter.Not(filter.Any(chars("BC")...)))

	got, err := filter.MapAsync(t.Context(), f, func(ctx context.Context, c filtertest.Char) (filtertest.Char, error) {
		if c == 'A' {
			return 0, errLeaf
		}
		<-ctx.Done()
		return 0, ctx.Err()
	})
	require.ErrorIs(t, err, errLeaf)
	assert.Nil(t, got)
}

func TestAsyncReportsUnhandledNodes(t *testing.T) {
	t.Parallel()
	n := filter.Node[filtertest.Char](foreign{leaf('A')})

	_, err := filter.MatchAsync(t.Context(), n,
		func(context.Context, *filter.Combination[filtertest.Char]) (int, error) { return 0, nil },
		func(context.Context, *filter.Inverted[filtertest.Char]) (int, error) { return 0, nil },
		func(context.Context, *filter.Leaf[filtertest.Char]) (int, error) { return 0, nil },
	)
	require.ErrorIs(t, err, filter.ErrUnhandledNode)

	_, err = filter.MapAsync(t.Context(), filter.Any(leaf('B'), n), func(_ context.Context, c filtertest.Char) (filtertest.Char, error) {
		return c, nil
	})
	assert.ErrorIs(t, err, filter.ErrUnhandledNode)
}

func TestRelaxAsyncMatchesRelax(t *testing.T) {
	t.Parallel()
	gen := filtertest.NewGenerator(23)

	for range 50 {
		f := gen.Filter()
		excluded := gen.Char()
		pred := func(c filtertest.Char) bool { return c != excluded }

		got, err := filter.GetPartialAsync(t.Context(), f, func(_ context.Context, c filtertest.Char) (bool, error) {
			return pred(c), nil
		})
		require.NoError(t, err)
		expected := filter.GetPartial(f, pred)
		assert.True(t, expected.Equal(got), "expected %s, got %s", expected, got)

		relax := func(_ context.Context, c filtertest.Char) (filter.Node[filtertest.Char], error) {
			return filter.AnyOf(c, excluded), nil
		}
		restrict := func(_ context.Context, c filtertest.Char) (filter.Node[filtertest.Char], error) {
			return filter.AllOf(c, excluded), nil
		}
		relaxed, err := filter.RelaxAsync(t.Context(), f, relax, restrict)
		require.NoError(t, err)
		restricted, err := filter.RestrictAsync(t.Context(), f, relax, restrict)
		require.NoError(t, err)

		syncRelax := func(c filtertest.Char) filter.Node[filtertest.Char] { return filter.AnyOf(c, excluded) }
		syncRestrict := func(c filtertest.Char) filter.Node[filtertest.Char] { return filter.AllOf(c, excluded) }
		assert.True(t, filter.Relax(f, syncRelax, syncRestrict).Equal(relaxed))
		assert.True(t, filter.Restrict(f, syncRelax, syncRestrict).Equal(restricted))
	}
}

func TestGetPartialAsyncPropagatesErrors(t *testing.T) {
	t.Parallel()
	f := filter.Any(leaf('A'), filter.Not(leaf('B')))

	got, err := filter.GetPartialAsync(t.Context(), f, func(_ context.Context, c filtertest.Char) (bool, error) {
		if c == 'B' {
			return false, errLeaf
		}
		return true, nil
	})
	require.ErrorIs(t, err, errLeaf)
	assert.Nil(t, got)
}
