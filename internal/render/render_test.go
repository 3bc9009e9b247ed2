package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnolang/combfilter/filter"
	"github.com/gnolang/combfilter/numrange"
)

func init() {
	SetColor(false)
}

func TestFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		report   Report
		expected string
	}{
		{
			name: "named",
			report: Report{
				Name: "gap",
				Path: "gap.yaml",
				Sections: []Section{
					{Label: "original", Body: "(1..5) AND (1..5)"},
					{Label: "tree", Body: "ALL\n  1..5\n  1..5\n"},
				},
			},
			expected: "gap --> gap.yaml\noriginal:\n  (1..5) AND (1..5)\ntree:\n  ALL\n    1..5\n    1..5\n",
		},
		{
			name:     "unnamed without sections",
			report:   Report{Path: "a.yaml"},
			expected: "a.yaml\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Format(tt.report))
		})
	}
}

func TestTree(t *testing.T) {
	t.Parallel()
	leaf := func(lo, hi int) filter.Node[numrange.Range] {
		return filter.NewLeaf(numrange.Between(lo, hi))
	}
	n := filter.Any(
		filter.All(leaf(-5, 10), filter.Not(leaf(2, 6))),
		filter.False[numrange.Range](),
		leaf(20, 30),
	)

	expected := "ANY\n" +
		"  ALL\n" +
		"    -5..10\n" +
		"    NOT\n" +
		"      2..6\n" +
		"  FALSE\n" +
		"  20..30\n"
	assert.Equal(t, expected, Tree(n))
}

func TestErrorAndVerdict(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "error: a.yaml: boom\n", Error("a.yaml", errors.New("boom")))
	assert.Equal(t, "match 3", Verdict("3", true))
	assert.Equal(t, "reject 4", Verdict("4", false))
}
