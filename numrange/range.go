// Package numrange provides an inclusive integer range leaf filter and a
// compiler from range filters to SQL WHERE clauses.
package numrange

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gnolang/combfilter/filter"
)

// ErrInvalidRange is returned when a range literal cannot be parsed.
var ErrInvalidRange = errors.New("invalid range")

// Range matches integers in [Lower, Upper].
type Range struct {
	Lower int
	Upper int
}

var (
	_ filter.Matcher[int]    = Range{}
	_ filter.Ordered[Range] = Range{}
)

// Full matches every int.
var Full = Range{Lower: math.MinInt, Upper: math.MaxInt}

// Between returns the range [lo, hi].
func Between(lo, hi int) Range {
	return Range{Lower: lo, Upper: hi}
}

// IsTrue reports whether r covers every int.
func (r Range) IsTrue() bool {
	return r == Full
}

// IsFalse reports whether r is empty.
func (r Range) IsFalse() bool {
	return r.Lower > r.Upper
}

func (r Range) Equal(other filter.Filter) bool {
	o, ok := other.(Range)
	return ok && o == r
}

func (r Range) Hash() uint64 {
	return uint64(r.Lower)*397 ^ uint64(r.Upper)
}

func (r Range) IsMatch(v int) bool {
	return r.Lower <= v && v <= r.Upper
}

// Compare orders ranges by lower bound, then by upper bound.
func (r Range) Compare(other Range) int {
	if c := cmp.Compare(r.Lower, other.Lower); c != 0 {
		return c
	}
	return cmp.Compare(r.Upper, other.Upper)
}

// String formats r the way Parse reads it. Unbounded sides are left empty.
func (r Range) String() string {
	var lo, hi string
	if r.Lower != math.MinInt {
		lo = strconv.Itoa(r.Lower)
	}
	if r.Upper != math.MaxInt {
		hi = strconv.Itoa(r.Upper)
	}
	return lo + ".." + hi
}

// Within reports whether r lies inside [lo, hi].
func (r Range) Within(lo, hi int) bool {
	return lo <= r.Lower && r.Upper <= hi
}

// Parse parses a range written as "lo..hi". Either bound may be omitted to
// leave that side open.
func Parse(s string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "..")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q: missing \"..\"", ErrInvalidRange, s)
	}

	r := Full
	var err error
	if lo = strings.TrimSpace(lo); lo != "" {
		if r.Lower, err = strconv.Atoi(lo); err != nil {
			return Range{}, fmt.Errorf("%w: %q: lower bound: %w", ErrInvalidRange, s, err)
		}
	}
	if hi = strings.TrimSpace(hi); hi != "" {
		if r.Upper, err = strconv.Atoi(hi); err != nil {
			return Range{}, fmt.Errorf("%w: %q: upper bound: %w", ErrInvalidRange, s, err)
		}
	}
	return r, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Range {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}
