// Package document reads and writes YAML filter documents over integer
// ranges.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gnolang/combfilter/filter"
	"github.com/gnolang/combfilter/numrange"
	"gopkg.in/yaml.v3"
)

// ErrInvalidExpr is returned for expressions that do not set exactly one
// key, or whose key holds an invalid value.
var ErrInvalidExpr = errors.New("invalid filter expression")

// Document is a named filter over integer ranges.
type Document struct {
	Name   string `yaml:"name"`
	Filter Expr   `yaml:"filter"`
}

// Expr is one node of a filter document. Exactly one field is set.
type Expr struct {
	All   []Expr `yaml:"all,omitempty"`
	Any   []Expr `yaml:"any,omitempty"`
	Not   *Expr  `yaml:"not,omitempty"`
	Range string `yaml:"range,omitempty"`
	Const *bool  `yaml:"const,omitempty"`

	// set by UnmarshalYAML so that an explicitly empty list is still a key
	hasAll, hasAny bool
}

func (e *Expr) UnmarshalYAML(value *yaml.Node) error {
	type plain Expr
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*e = Expr(p)

	if value.Kind == yaml.MappingNode {
		for i := 0; i < len(value.Content); i += 2 {
			switch value.Content[i].Value {
			case "all":
				e.hasAll = true
			case "any":
				e.hasAny = true
			}
		}
	}
	return nil
}

// Decode reads a document from r.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return doc, fmt.Errorf("decoding filter document: %w", err)
	}
	return doc, nil
}

// Load reads the document at path.
func Load(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return doc, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadNode reads the document at path and builds its filter.
func LoadNode(path string) (filter.Node[numrange.Range], error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	n, err := doc.Node()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Node builds the filter described by the document.
func (d Document) Node() (filter.Node[numrange.Range], error) {
	return d.Filter.Node()
}

// Node builds the filter described by e.
func (e Expr) Node() (filter.Node[numrange.Range], error) {
	if n := e.keys(); n != 1 {
		return nil, fmt.Errorf("%w: expected exactly one key, got %d", ErrInvalidExpr, n)
	}

	switch {
	case e.isAll():
		return e.combination(filter.OpAll, e.All)
	case e.isAny():
		return e.combination(filter.OpAny, e.Any)
	case e.Not != nil:
		child, err := e.Not.Node()
		if err != nil {
			return nil, fmt.Errorf("not: %w", err)
		}
		return filter.Not(child), nil
	case e.Const != nil:
		if *e.Const {
			return filter.True[numrange.Range](), nil
		}
		return filter.False[numrange.Range](), nil
	default:
		r, err := numrange.Parse(e.Range)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidExpr, err)
		}
		return filter.NewLeaf(r), nil
	}
}

func (e Expr) combination(op filter.Operator, exprs []Expr) (filter.Node[numrange.Range], error) {
	nodes := make([]filter.Node[numrange.Range], len(exprs))
	for i, x := range exprs {
		n, err := x.Node()
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", op, i, err)
		}
		nodes[i] = n
	}
	return filter.NewCombination(op, nodes...), nil
}

func (e Expr) isAll() bool { return e.hasAll || e.All != nil }
func (e Expr) isAny() bool { return e.hasAny || e.Any != nil }

func (e Expr) keys() int {
	n := 0
	for _, set := range []bool{e.isAll(), e.isAny(), e.Not != nil, e.Range != "", e.Const != nil} {
		if set {
			n++
		}
	}
	return n
}

// FromNode converts n back into a document expression. Empty combinations
// become constants.
func FromNode(n filter.Node[numrange.Range]) Expr {
	return filter.Aggregate(n,
		func(children []Expr, op filter.Operator) Expr {
			if len(children) == 0 {
				v := op == filter.OpAll
				return Expr{Const: &v}
			}
			if op == filter.OpAll {
				return Expr{All: children, hasAll: true}
			}
			return Expr{Any: children, hasAny: true}
		},
		func(child Expr) Expr {
			return Expr{Not: &child}
		},
		func(r numrange.Range) Expr {
			return Expr{Range: r.String()}
		},
	)
}

// Encoder writes documents as a YAML stream.
type Encoder struct {
	enc *yaml.Encoder
}

func NewEncoder(w io.Writer) *Encoder {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &Encoder{enc: enc}
}

// Encode writes d. Documents after the first are preceded by "---".
func (e *Encoder) Encode(d Document) error {
	if err := e.enc.Encode(d); err != nil {
		return fmt.Errorf("encoding filter document: %w", err)
	}
	return nil
}

// Close flushes the stream.
func (e *Encoder) Close() error {
	return e.enc.Close()
}
