// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jcomb

import "go4.org/mem"

// An Input is a read-only view of the unconsumed suffix of a source text.
//
// Advancing an Input returns a new Input and leaves the original unchanged,
// so any number of parsers may begin from the same Input. The remaining text
// of an Input never grows as it is advanced.
type Input struct {
	src mem.RO // the unconsumed text
	pos int    // offset of src in the complete source, 0-based
}

// NewInput returns an Input positioned at the start of s.
func NewInput(s string) Input { return Input{src: mem.S(s)} }

// Len reports the length in bytes of the remaining text.
func (in Input) Len() int { return in.src.Len() }

// Empty reports whether all the text of in has been consumed.
func (in Input) Empty() bool { return in.src.Len() == 0 }

// Offset reports the byte offset of in relative to the start of the source.
func (in Input) Offset() int { return in.pos }

// Rest returns a copy of the remaining text.
func (in Input) Rest() string { return in.src.StringCopy() }

func (in Input) String() string { return in.Rest() }

// Advance returns an Input with the first n bytes of in consumed.
// It panics if n < 0 or n > in.Len().
func (in Input) Advance(n int) Input {
	return Input{src: in.src.SliceFrom(n), pos: in.pos + n}
}

// Next decodes the first character of in and returns it along with an Input
// positioned after it. If in is empty, Next returns 0, in, false.
func (in Input) Next() (rune, Input, bool) {
	if in.Empty() {
		return 0, in, false
	}
	r, n := mem.DecodeRune(in.src)
	return r, in.Advance(n), true
}

// upTo returns a copy of the text consumed between in and end, which must have
// been obtained by advancing in.
func (in Input) upTo(end Input) string {
	return in.src.SliceTo(end.pos - in.pos).StringCopy()
}
