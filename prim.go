// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jcomb

import "github.com/creachadair/jcomb/opt"

// Char returns a parser that consumes a single character equal to c.
func Char(c rune) Parser[string] {
	return func(in Input) opt.Option[Result[string]] {
		r, rest, ok := in.Next()
		if !ok || r != c {
			return fail[string]()
		}
		return succeed(rest, string(r))
	}
}

// String returns a parser that matches the literal s, one character at a
// time. String panics if s == "".
func String(s string) Parser[string] {
	var ps []Parser[string]
	for _, c := range s {
		ps = append(ps, Char(c))
	}
	return Sequence(ps...)
}

// TakeWhile returns a parser that consumes the longest prefix of its input
// whose characters all satisfy pred. The prefix may be empty, so TakeWhile
// never fails.
func TakeWhile(pred func(rune) bool) Parser[string] {
	return func(in Input) opt.Option[Result[string]] {
		end := in
		for {
			r, next, ok := end.Next()
			if !ok || !pred(r) {
				break
			}
			end = next
		}
		return succeed(end, in.upTo(end))
	}
}

// NotEmpty returns a parser that behaves as p, but fails if the value of p is
// the zero value of T.
func NotEmpty[T comparable](p Parser[T]) Parser[T] {
	return func(in Input) opt.Option[Result[T]] {
		return opt.Chain(p(in), func(r Result[T]) opt.Option[Result[T]] {
			var zero T
			if r.Value == zero {
				return fail[T]()
			}
			return opt.Some(r)
		})
	}
}

// IsDigit reports whether r is a decimal digit, 0 to 9.
func IsDigit(r rune) bool { return '0' <= r && r <= '9' }
