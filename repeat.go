// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jcomb

import "github.com/creachadair/jcomb/opt"

// Many returns a parser that applies p repeatedly until it fails, and whose
// value is the values of p in the order they were parsed. Many never fails: if
// p does not match at all, the value is empty.
//
// Each successful application of p must consume input, or Many will not
// terminate.
func Many[A any](p Parser[A]) Parser[[]A] {
	return func(in Input) opt.Option[Result[[]A]] {
		var out []A
		for {
			r, ok := p(in).Get()
			if !ok {
				return succeed(in, out)
			}
			out = append(out, r.Value)
			in = r.Rest
		}
	}
}

// Some returns a parser that applies p once, then zero or more further times
// as Many. It fails if the first application of p fails.
func Some[A any](p Parser[A]) Parser[[]A] {
	return LiftA2(cons[A], p, Many(p))
}

// SepBy returns a parser for zero or more elem values separated by sep. The
// values of sep are discarded. A separator after the last element is not
// consumed.
func SepBy[S, A any](sep Parser[S], elem Parser[A]) Parser[[]A] {
	return Alt(
		LiftA2(cons[A], elem, Many(ApRight(sep, elem))),
		Pure[[]A](nil),
	)
}

func cons[A any](x A, xs []A) []A {
	out := make([]A, 0, len(xs)+1)
	return append(append(out, x), xs...)
}
