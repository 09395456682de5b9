// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package opt defines an optional value type, representing either a present
// value or its absence.
//
// Absence is an ordinary value, not an error: a function returning an Option
// reports failure by returning None, and callers combine options with Map,
// Chain, Or, and Fold rather than checking errors at each step.
package opt

import (
	"fmt"

	"github.com/creachadair/mds/value"
)

// An Option is either a present value of type T, or absent.
// The zero value is absent.
type Option[T any] struct{ m value.Maybe[T] }

// Some returns a present Option wrapping v.
func Some[T any](v T) Option[T] { return Option[T]{m: value.Just(v)} }

// None returns an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// Present reports whether o holds a value.
func (o Option[T]) Present() bool { return o.m.Present() }

// Get returns the value of o and true if o is present, or else a zero value
// and false.
func (o Option[T]) Get() (T, bool) { return o.m.GetOK() }

// String returns a human-readable rendering of o.
func (o Option[T]) String() string {
	if v, ok := o.Get(); ok {
		return fmt.Sprintf("Some(%v)", v)
	}
	return "None"
}

// Map returns Some(f(v)) if o is Some(v), otherwise None.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[B]()
}

// Chain returns f(v) if o is Some(v), otherwise None. Unlike Map, the result
// of f is not wrapped again, so a None from f ends the chain.
func Chain[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return None[B]()
}

// Fold returns onSome(v) if o is Some(v), otherwise onNone().
func Fold[A, B any](o Option[A], onNone func() B, onSome func(A) B) B {
	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

// Or returns o if it is present. Otherwise it calls fallback and returns its
// result. The fallback is not called when o is present.
func Or[T any](o Option[T], fallback func() Option[T]) Option[T] {
	if o.Present() {
		return o
	}
	return fallback()
}
