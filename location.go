// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jcomb

import "github.com/creachadair/jcomb/opt"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the length of the span in bytes.
func (s Span) Len() int { return s.End - s.Pos }

// A Spanned value is the value of a parse, together with the span of source
// text the parser consumed to produce it.
type Spanned[T any] struct {
	Span
	Value T
}

// WithSpan returns a parser that behaves as p, and records the span of the
// input consumed by p along with its value.
func WithSpan[T any](p Parser[T]) Parser[Spanned[T]] {
	return func(in Input) opt.Option[Result[Spanned[T]]] {
		return opt.Map(p(in), func(r Result[T]) Result[Spanned[T]] {
			return Result[Spanned[T]]{
				Rest: r.Rest,
				Value: Spanned[T]{
					Span:  Span{Pos: in.Offset(), End: r.Rest.Offset()},
					Value: r.Value,
				},
			}
		})
	}
}
