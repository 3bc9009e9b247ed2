// Package filtertest provides leaf filters and tree generators for testing
// code built on package filter.
package filtertest

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/gnolang/combfilter/filter"
)

// Char matches strings containing the character.
type Char rune

var (
	_ filter.Matcher[string] = Char(0)
	_ filter.Ordered[Char]   = Char(0)
)

func (Char) IsTrue() bool  { return false }
func (Char) IsFalse() bool { return false }

func (c Char) Equal(other filter.Filter) bool {
	o, ok := other.(Char)
	return ok && o == c
}

func (c Char) Hash() uint64 {
	return uint64(c)
}

func (c Char) IsMatch(s string) bool {
	return strings.ContainsRune(s, rune(c))
}

func (c Char) Compare(other Char) int {
	return cmp.Compare(c, other)
}

func (c Char) String() string {
	return fmt.Sprintf("'%c'", rune(c))
}

// Leaves wraps each character of s in a leaf node.
func Leaves(s string) []filter.Node[Char] {
	nodes := make([]filter.Node[Char], 0, len(s))
	for _, r := range s {
		nodes = append(nodes, filter.NewLeaf(Char(r)))
	}
	return nodes
}
