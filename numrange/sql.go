package numrange

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gnolang/combfilter/filter"
)

// ErrInvalidColumn is returned by Where for column names that are not plain
// SQL identifiers.
var ErrInvalidColumn = errors.New("invalid column name")

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Clause is a parameterized SQL boolean expression.
type Clause struct {
	SQL  string
	Args []any
}

// Where compiles n into a WHERE clause over an integer column. Every leaf
// becomes "column BETWEEN ? AND ?" with its bounds as arguments. Empty
// combinations become 1=1 and 1=0.
func Where(n filter.Node[Range], column string) (Clause, error) {
	if !identRe.MatchString(column) {
		return Clause{}, fmt.Errorf("%w: %q", ErrInvalidColumn, column)
	}

	return filter.Aggregate(n,
		func(parts []Clause, op filter.Operator) Clause {
			if len(parts) == 0 {
				if op == filter.OpAll {
					return Clause{SQL: "1=1"}
				}
				return Clause{SQL: "1=0"}
			}

			sep := " AND "
			if op == filter.OpAny {
				sep = " OR "
			}
			var (
				b    strings.Builder
				args []any
			)
			for i, p := range parts {
				if i > 0 {
					b.WriteString(sep)
				}
				b.WriteString("(" + p.SQL + ")")
				args = append(args, p.Args...)
			}
			return Clause{SQL: b.String(), Args: args}
		},
		func(c Clause) Clause {
			return Clause{SQL: "NOT (" + c.SQL + ")", Args: c.Args}
		},
		func(r Range) Clause {
			return Clause{
				SQL:  column + " BETWEEN ? AND ?",
				Args: []any{int64(r.Lower), int64(r.Upper)},
			}
		},
	), nil
}
