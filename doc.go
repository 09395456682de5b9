// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package jcomb implements a small algebra of parser combinators.
//
// # Parsers
//
// A Parser is a function from an Input to an optional Result. On success the
// result holds the parsed value and the Input remaining after the text the
// parser consumed; on failure the result is absent, and carries no detail:
//
//	p := jcomb.String("null")
//	if r, ok := p.Parse("null, etc.").Get(); ok {
//	   log.Printf("Got %q, remaining %q", r.Value, r.Rest.Rest())
//	}
//
// Parsers hold no state, and may be shared freely among other parsers and
// goroutines.
//
// # Combinators
//
// Larger parsers are composed from smaller ones:
//
//	Combinator      | Meaning
//	--------------- | ---------------------------------------------------------
//	Map, As         | transform the value of a successful parse
//	Pure, Empty     | always succeed (consuming nothing), always fail
//	Ap, LiftA2/3    | run parsers in sequence, combining their values
//	ApLeft, ApRight | run parsers in sequence, keeping one value
//	Between         | run three parsers in sequence, keeping the middle value
//	Sequence        | run string parsers in sequence, concatenating values
//	Alt, Choice     | ordered choice among alternatives
//	Many, Some      | zero-or-more, one-or-more repetitions
//	SepBy           | zero-or-more repetitions with separators
//	Lazy            | defer construction, for recursive grammars
//
// Sequencing stops at the first parser that fails. An alternative is tried
// from the original input position of the choice, so text consumed by a
// failed alternative is never lost.
//
// # Primitives
//
// The primitive parsers Char, String, and TakeWhile match literal characters
// and runs of characters satisfying a predicate. A character is a single
// UTF-8 encoded rune.
package jcomb
