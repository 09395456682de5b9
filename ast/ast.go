// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a representation of JSON values, and a parser built
// from combinators that constructs values from JSON source.
package ast

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jcomb/internal/escape"
)

// A Value is an arbitrary JSON value. The concrete type of a Value is one of
// Null, Bool, Number, String, Array, or Object.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string

	// String returns a human-readable rendering of the value.
	String() string

	// MarshalJSON encodes the value as JSON, so that a Value can be rendered
	// by any JSON encoder.
	MarshalJSON() ([]byte, error)
}

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

func (Null) String() string { return "null" }

// MarshalJSON satisfies the Value interface.
func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

func (b Bool) String() string { return b.JSON() }

// MarshalJSON satisfies the Value interface.
func (b Bool) MarshalJSON() ([]byte, error) { return []byte(b.JSON()), nil }

// A Number is a numeric value.
type Number float64

// JSON satisfies the Value interface. Integer values are rendered without an
// exponent, regardless of magnitude.
func (n Number) JSON() string { return strconv.FormatFloat(float64(n), 'f', -1, 64) }

func (n Number) String() string { return n.JSON() }

// MarshalJSON satisfies the Value interface. It reports an error if n is not
// finite, as JSON has no encoding for such values.
func (n Number) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(n), 0) || math.IsNaN(float64(n)) {
		return nil, fmt.Errorf("unsupported number %v", float64(n))
	}
	return []byte(n.JSON()), nil
}

// A String is a string value.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return escape.Quote(string(s)) }

// String returns the contents of s without quotation.
func (s String) String() string { return string(s) }

// MarshalJSON satisfies the Value interface.
func (s String) MarshalJSON() ([]byte, error) { return []byte(s.JSON()), nil }

// Len reports the length of s in bytes.
func (s String) Len() int { return len(s) }

// An Array is an ordered sequence of values.
type Array []Value

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return a.JSON() }

// MarshalJSON satisfies the Value interface.
func (a Array) MarshalJSON() ([]byte, error) { return marshal(a) }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// An Object is a collection of values indexed by unique string keys.
type Object map[string]Value

// Keys returns the keys of o in lexicographic order.
func (o Object) Keys() []string { return slices.Sorted(maps.Keys(o)) }

// JSON satisfies the Value interface. Members are rendered in order of their
// keys.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range o.Keys() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(escape.Quote(key))
		sb.WriteByte(':')
		sb.WriteString(o[key].JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return o.JSON() }

// MarshalJSON satisfies the Value interface.
func (o Object) MarshalJSON() ([]byte, error) { return marshal(o) }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// marshal encodes a composite value, checking that all the numbers it contains
// are representable.
func marshal(v Value) ([]byte, error) {
	if err := checkFinite(v); err != nil {
		return nil, err
	}
	return []byte(v.JSON()), nil
}

func checkFinite(v Value) error {
	switch t := v.(type) {
	case Number:
		_, err := t.MarshalJSON()
		return err
	case Array:
		for _, elt := range t {
			if err := checkFinite(elt); err != nil {
				return err
			}
		}
	case Object:
		for _, elt := range t {
			if err := checkFinite(elt); err != nil {
				return err
			}
		}
	}
	return nil
}
