// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jcomb

import "github.com/creachadair/jcomb/opt"

// A Result is the outcome of a successful parse: the value produced, and the
// input remaining after the text consumed to produce it.
type Result[T any] struct {
	Rest  Input
	Value T
}

// A Parser consumes a prefix of its input to produce a value of type T.
// It returns an absent result if it cannot parse its input.
type Parser[T any] func(Input) opt.Option[Result[T]]

// Parse applies p to the start of s.
func (p Parser[T]) Parse(s string) opt.Option[Result[T]] { return p(NewInput(s)) }

func succeed[T any](rest Input, v T) opt.Option[Result[T]] {
	return opt.Some(Result[T]{Rest: rest, Value: v})
}

func fail[T any]() opt.Option[Result[T]] { return opt.None[Result[T]]() }

// Map returns a parser that behaves as p, but whose value is f applied to the
// value of p.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in Input) opt.Option[Result[B]] {
		return opt.Map(p(in), func(r Result[A]) Result[B] {
			return Result[B]{Rest: r.Rest, Value: f(r.Value)}
		})
	}
}

// As returns a parser that behaves as p, but whose value is v.
func As[A, B any](p Parser[A], v B) Parser[B] {
	return Map(p, func(A) B { return v })
}

// Pure returns a parser that consumes no input and always succeeds with v.
func Pure[A any](v A) Parser[A] {
	return func(in Input) opt.Option[Result[A]] { return succeed(in, v) }
}

// Empty returns a parser that consumes no input and always fails.
func Empty[A any]() Parser[A] {
	return func(Input) opt.Option[Result[A]] { return fail[A]() }
}

// Ap returns a parser that runs pf and then pa on the input remaining after
// pf. Its value is the function produced by pf applied to the value of pa. The
// parser fails if either step fails, and pa is not run if pf fails.
func Ap[A, B any](pf Parser[func(A) B], pa Parser[A]) Parser[B] {
	return func(in Input) opt.Option[Result[B]] {
		return opt.Chain(pf(in), func(rf Result[func(A) B]) opt.Option[Result[B]] {
			return opt.Map(pa(rf.Rest), func(ra Result[A]) Result[B] {
				return Result[B]{Rest: ra.Rest, Value: rf.Value(ra.Value)}
			})
		})
	}
}

// LiftA2 returns a parser that runs pa and pb in sequence, and combines their
// values with f.
func LiftA2[A, B, C any](f func(A, B) C, pa Parser[A], pb Parser[B]) Parser[C] {
	return Ap(Map(pa, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}), pb)
}

// LiftA3 returns a parser that runs pa, pb, and pc in sequence, and combines
// their values with f.
func LiftA3[A, B, C, D any](f func(A, B, C) D, pa Parser[A], pb Parser[B], pc Parser[C]) Parser[D] {
	pf := Map(pa, func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D { return f(a, b, c) }
		}
	})
	return Ap(Ap(pf, pb), pc)
}

// ApLeft returns a parser that runs pa and pb in sequence, and keeps only the
// value of pa.
func ApLeft[A, B any](pa Parser[A], pb Parser[B]) Parser[A] {
	return LiftA2(func(a A, _ B) A { return a }, pa, pb)
}

// ApRight returns a parser that runs pa and pb in sequence, and keeps only the
// value of pb.
func ApRight[A, B any](pa Parser[A], pb Parser[B]) Parser[B] {
	return LiftA2(func(_ A, b B) B { return b }, pa, pb)
}

// Between returns a parser that runs open, p, and close in sequence, and keeps
// only the value of p.
func Between[A, B, C any](open Parser[A], p Parser[B], close Parser[C]) Parser[B] {
	return ApRight(open, ApLeft(p, close))
}

// Sequence returns a parser that runs each of ps in order, and whose value is
// the concatenation of their values. Sequence panics if len(ps) == 0.
func Sequence(ps ...Parser[string]) Parser[string] {
	switch len(ps) {
	case 0:
		panic("jcomb: empty sequence")
	case 1:
		return ps[0]
	}
	return LiftA2(func(a, b string) string { return a + b }, ps[0], Sequence(ps[1:]...))
}

// Alt returns a parser that tries p, and if p fails, tries p2 from the same
// input. Any input consumed by p before it failed is discarded. If p
// succeeds, p2 is not run.
func Alt[A any](p, p2 Parser[A]) Parser[A] {
	return func(in Input) opt.Option[Result[A]] {
		return opt.Or(p(in), func() opt.Option[Result[A]] { return p2(in) })
	}
}

// Choice returns a parser that tries each of ps in order, and returns the
// result of the first to succeed. With no alternatives, Choice fails on all
// inputs.
func Choice[A any](ps ...Parser[A]) Parser[A] {
	if len(ps) == 0 {
		return Empty[A]()
	}
	out := ps[0]
	for _, p := range ps[1:] {
		out = Alt(out, p)
	}
	return out
}

// Lazy returns a parser that calls f to obtain the parser to run each time it
// is applied. This allows a parser to refer to another that has not yet been
// constructed, as in a recursive grammar.
func Lazy[A any](f func() Parser[A]) Parser[A] {
	return func(in Input) opt.Option[Result[A]] { return f()(in) }
}
