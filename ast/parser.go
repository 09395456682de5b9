// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/creachadair/jcomb"
)

var (
	// ErrNoValue is reported when no JSON value could be parsed from the
	// input. It carries no information about where or why parsing failed.
	ErrNoValue = errors.New("no JSON value could be parsed")

	// ErrTrailing is reported by ParseSingle when input remains after the
	// value.
	ErrTrailing = errors.New("unexpected input after value")
)

// Parse parses a JSON value from the front of s. It returns the value and the
// unconsumed remainder of s, or reports ErrNoValue.
//
// Parse builds a new grammar on each call; to parse many inputs, construct a
// parser once with Grammar and apply it to each.
func Parse(s string) (Value, string, error) {
	r, ok := Grammar().Parse(s).Get()
	if !ok {
		return nil, s, ErrNoValue
	}
	return r.Value, r.Rest.Rest(), nil
}

// ParseSingle parses s as a single JSON value, and reports an error wrapping
// ErrTrailing if any input remains after the value.
func ParseSingle(s string) (Value, error) {
	v, rest, err := Parse(s)
	if err != nil {
		return nil, err
	} else if rest != "" {
		return nil, fmt.Errorf("%w: %q", ErrTrailing, clip(rest, 16))
	}
	return v, nil
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Grammar returns a parser for a single JSON value.
//
// The grammar accepts a subset of JSON: numbers are unsigned integers, strings
// have no escape sequences, and only space characters are permitted as
// whitespace, inside arrays and objects. Alternatives are tried in the order
// null, boolean, number, string, array, object; the first to match wins.
// When an object has repeated keys, the last value for each key is kept.
func Grammar() jcomb.Parser[Value] {
	// Arrays and objects contain values, so the value parser must be referred
	// to before it is defined.
	var value jcomb.Parser[Value]
	anyValue := jcomb.Lazy(func() jcomb.Parser[Value] { return value })

	ws := jcomb.TakeWhile(func(r rune) bool { return r == ' ' })
	padded := func(c rune) jcomb.Parser[string] {
		return jcomb.Between(ws, jcomb.Char(c), ws)
	}
	comma := padded(',')

	null := jcomb.As[string, Value](jcomb.String("null"), Null{})

	boolean := jcomb.Map(
		jcomb.Alt(jcomb.String("true"), jcomb.String("false")),
		func(s string) Value { return Bool(s == "true") },
	)

	number := jcomb.Map(
		jcomb.NotEmpty(jcomb.TakeWhile(jcomb.IsDigit)),
		func(s string) Value {
			// The text is all digits, so the only possible error is a range
			// error, for which ParseFloat returns an infinity.
			f, _ := strconv.ParseFloat(s, 64)
			return Number(f)
		},
	)

	quoted := jcomb.Between(
		jcomb.Char('"'),
		jcomb.TakeWhile(func(r rune) bool { return r != '"' }),
		jcomb.Char('"'),
	)
	str := jcomb.Map(quoted, func(s string) Value { return String(s) })

	array := jcomb.Map(
		jcomb.Between(jcomb.Char('['), jcomb.Between(ws, jcomb.SepBy(comma, anyValue), ws), jcomb.Char(']')),
		func(vs []Value) Value {
			if vs == nil {
				return Array{}
			}
			return Array(vs)
		},
	)

	type member struct {
		key   string
		value Value
	}
	pair := jcomb.LiftA3(
		func(key, _ string, v Value) member { return member{key, v} },
		quoted, padded(':'), anyValue,
	)
	object := jcomb.Map(
		jcomb.Between(jcomb.Char('{'), jcomb.Between(ws, jcomb.SepBy(comma, pair), ws), jcomb.Char('}')),
		func(ms []member) Value {
			obj := make(Object, len(ms))
			for _, m := range ms {
				obj[m.key] = m.value
			}
			return obj
		},
	)

	value = jcomb.Choice(null, boolean, number, str, array, object)
	return value
}
