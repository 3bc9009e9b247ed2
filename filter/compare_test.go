package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gnolang/combfilter/filter"
	"github.com/gnolang/combfilter/filter/filtertest"
)

type mockLeafComparer struct {
	mock.Mock
}

func (m *mockLeafComparer) Compare(a, b filtertest.Char) int {
	return m.Called(a, b).Int(0)
}

func TestComparerCategoryOrder(t *testing.T) {
	t.Parallel()
	natural := filter.NaturalOrder[filtertest.Char]()

	tests := []struct {
		name        string
		less, great filter.Node[filtertest.Char]
	}{
		{"leaf before inverted", leaf('A'), filter.Not(leaf('B'))},
		{"leaf before combination", leaf('Z'), filter.All(chars("BC")...)},
		{"inverted before combination", filter.Not(leaf('Z')), filter.All(chars("BC")...)},
		{"all before any", filter.All(chars("BC")...), filter.Any(chars("BC")...)},
		{"inverted compares operands", filter.Not(leaf('A')), filter.Not(leaf('B'))},
		{"nested inversions unwrap", filter.Not(filter.Not(leaf('A'))), filter.Not(filter.Not(leaf('B')))},
		{"children compare in order", filter.All(chars("AB")...), filter.All(chars("AC")...)},
		{"prefix sorts first", filter.Any(chars("AB")...), filter.Any(chars("ABC")...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, -1, natural.Compare(tt.less, tt.great))
			assert.Equal(t, 1, natural.Compare(tt.great, tt.less))
			assert.Zero(t, natural.Compare(tt.less, tt.less))
		})
	}
}

func TestComparerUsesLeafComparison(t *testing.T) {
	t.Parallel()
	m := new(mockLeafComparer)
	m.On("Compare", filtertest.Char('A'), filtertest.Char('B')).Return(1337)
	m.On("Compare", filtertest.Char('B'), filtertest.Char('A')).Return(1338)

	c := filter.NewComparer(m.Compare)

	assert.Equal(t, 1337, c.Compare(leaf('A'), leaf('B')))
	assert.Equal(t, 1338, c.Compare(leaf('B'), leaf('A')))
	m.AssertExpectations(t)
}

func TestComparerSkipsIdenticalNodes(t *testing.T) {
	t.Parallel()
	m := new(mockLeafComparer)
	c := filter.NewComparer(m.Compare)

	n := filter.All(chars("ABC")...)
	assert.Zero(t, c.Compare(n, n))
	m.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
}

func TestNaturalOrderIsShared(t *testing.T) {
	t.Parallel()
	assert.Same(t, filter.NaturalOrder[filtertest.Char](), filter.NaturalOrder[filtertest.Char]())
}

func TestSort(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    filter.Node[filtertest.Char]
		expected filter.Node[filtertest.Char]
	}{
		{
			name:     "leaves in natural order",
			input:    filter.All(chars("ABA")...),
			expected: filter.All(chars("AAB")...),
		},
		{
			name:     "inverted combination",
			input:    filter.Not(filter.All(chars("BA")...)),
			expected: filter.Not(filter.All(chars("AB")...)),
		},
		{
			name: "categories and nested children",
			input: filter.All(
				filter.All(chars("GH")...),
				filter.Not(filter.All(chars("DC")...)),
				leaf('F'),
				filter.All(chars("ED")...),
				leaf('A'),
			),
			expected: filter.All(
				leaf('A'),
				leaf('F'),
				filter.Not(filter.All(chars("CD")...)),
				filter.All(chars("DE")...),
				filter.All(chars("GH")...),
			),
		},
		{
			name: "all before any",
			input: filter.All(
				filter.Any(chars("AB")...),
				filter.All(chars("CD")...),
			),
			expected: filter.All(
				filter.All(chars("CD")...),
				filter.Any(chars("AB")...),
			),
		},
		{
			name:     "three leaves",
			input:    filter.All(chars("BCA")...),
			expected: filter.All(chars("ABC")...),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := filter.SortNatural(tt.input)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestSortIsIdempotent(t *testing.T) {
	t.Parallel()
	natural := filter.NaturalOrder[filtertest.Char]()
	f := filter.Any(filter.Not(filter.All(chars("DC")...)), leaf('B'), leaf('A'))

	sorted := f.Sort(natural)
	assert.Same(t, sorted, sorted.Sort(natural))

	// a different comparer instance, even with the same ordering, sorts again
	other := filter.NewComparer(filtertest.Char.Compare)
	resorted := sorted.Sort(other)
	assert.NotSame(t, sorted, resorted)
	assert.True(t, sorted.Equal(resorted))
}

func TestSortKeepsLeavesAndEmptyCombinations(t *testing.T) {
	t.Parallel()
	natural := filter.NaturalOrder[filtertest.Char]()

	l := leaf('A')
	assert.Same(t, l, l.Sort(natural))

	tru := filter.True[filtertest.Char]()
	assert.Same(t, tru, tru.Sort(natural))
}

func TestSortPreservesCollapsedState(t *testing.T) {
	t.Parallel()
	collapsed := filter.Any(chars("CBA")...).Collapse()
	sorted := filter.SortNatural(collapsed)

	assert.Same(t, sorted, sorted.Collapse())
	assert.Equal(t, "('A') OR ('B') OR ('C')", sorted.String())
}
