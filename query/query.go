// Package query selects parts of a JSON value by path.
//
// A path is a sequence of steps separated by periods, for example:
//
//	list.0."first.name"
//
// Applied to an object, a step selects the member with that key. Applied to
// an array, a step is a decimal offset, and a negative offset counts back from
// the end of the array. A step in double quotes is always a key, and may
// contain periods. The empty path selects the root.
//
// Paths are parsed with the combinators of package jcomb.
package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jcomb"
	"github.com/creachadair/jcomb/ast"
)

var (
	// ErrSyntax is reported by ParsePath for a malformed path.
	ErrSyntax = errors.New("invalid path")

	// ErrNotFound is reported by Eval when a key or offset named by a path is
	// not present in the value.
	ErrNotFound = errors.New("not found")
)

// A Step is a single element of a Path.
type Step struct {
	Name   string // the text of the step, without quotation marks
	Quoted bool   // whether the step was quoted, making it a key
}

// String renders s as it would be written in a path. Steps that could not be
// read back bare are quoted.
func (s Step) String() string {
	if s.Quoted || s.Name == "" || strings.ContainsAny(s.Name, `."`) {
		return `"` + s.Name + `"`
	}
	return s.Name
}

// A Path is a sequence of steps from the root of a JSON value.
type Path []Step

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

var pathParser = func() jcomb.Parser[Path] {
	quoted := jcomb.Map(
		jcomb.Between(
			jcomb.Char('"'),
			jcomb.TakeWhile(func(r rune) bool { return r != '"' }),
			jcomb.Char('"'),
		),
		func(s string) Step { return Step{Name: s, Quoted: true} },
	)
	bare := jcomb.Map(
		jcomb.NotEmpty(jcomb.TakeWhile(func(r rune) bool { return r != '.' && r != '"' })),
		func(s string) Step { return Step{Name: s} },
	)
	return jcomb.Map(
		jcomb.SepBy(jcomb.Char('.'), jcomb.Alt(quoted, bare)),
		func(ss []Step) Path { return Path(ss) },
	)
}()

// ParsePath parses a path from s. The empty string is the empty path. A
// malformed path is reported with an error wrapping ErrSyntax.
func ParsePath(s string) (Path, error) {
	r, ok := pathParser.Parse(s).Get()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	} else if !r.Rest.Empty() {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, r.Rest.Rest(), r.Rest.Offset())
	}
	return r.Value, nil
}

// Eval applies p to root and returns the value it selects. If a step cannot
// be applied, the error reports the path up to and including that step.
func (p Path) Eval(root ast.Value) (ast.Value, error) {
	cur := root
	for i, step := range p {
		next, err := step.eval(cur)
		if err != nil {
			return nil, fmt.Errorf("at %s: %w", p[:i+1], err)
		}
		cur = next
	}
	return cur, nil
}

func (s Step) eval(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case ast.Object:
		elt, ok := t[s.Name]
		if !ok {
			return nil, fmt.Errorf("key %q %w", s.Name, ErrNotFound)
		}
		return elt, nil

	case ast.Array:
		if s.Quoted {
			return nil, fmt.Errorf("cannot select key %q from an array", s.Name)
		}
		idx, err := strconv.Atoi(s.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid array index %q", s.Name)
		}
		pos := idx
		if pos < 0 {
			pos += len(t)
		}
		if pos < 0 || pos >= len(t) {
			return nil, fmt.Errorf("index %d %w (length %d)", idx, ErrNotFound, len(t))
		}
		return t[pos], nil

	default:
		return nil, fmt.Errorf("cannot select %s from %T", s, v)
	}
}

// Eval parses path and applies it to root.
func Eval(root ast.Value, path string) (ast.Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return p.Eval(root)
}
