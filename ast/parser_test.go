// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/creachadair/jcomb/ast"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ast.Value
		rest  string
	}{
		{"Null", `null`, ast.Null{}, ""},
		{"True", `true`, ast.Bool(true), ""},
		{"False", `false`, ast.Bool(false), ""},
		{"Number", `123`, ast.Number(123), ""},
		{"Zero", `0`, ast.Number(0), ""},
		{"LeadingZeroes", `007`, ast.Number(7), ""},
		{"String", `"hi"`, ast.String("hi"), ""},
		{"EmptyString", `""`, ast.String(""), ""},
		{"StringPunct", `"a, b: [c] {d}"`, ast.String("a, b: [c] {d}"), ""},
		{"Backslash", `"a\b"`, ast.String(`a\b`), ""},

		{"EmptyArray", `[]`, ast.Array{}, ""},
		{"SpaceArray", `[   ]`, ast.Array{}, ""},
		{"Array", `[1, 2, 3]`, ast.Array{ast.Number(1), ast.Number(2), ast.Number(3)}, ""},
		{"Mixed", `[null,true,"x",[false]]`, ast.Array{
			ast.Null{}, ast.Bool(true), ast.String("x"), ast.Array{ast.Bool(false)},
		}, ""},

		{"EmptyObject", `{}`, ast.Object{}, ""},
		{"Object", `{"a": 12, "c": [1, 2, 3], "b": "hello"}`, ast.Object{
			"a": ast.Number(12),
			"c": ast.Array{ast.Number(1), ast.Number(2), ast.Number(3)},
			"b": ast.String("hello"),
		}, ""},
		{"Nested", `{"x":{"y":{"z":[{}]}}}`, ast.Object{
			"x": ast.Object{"y": ast.Object{"z": ast.Array{ast.Object{}}}},
		}, ""},
		{"DuplicateKey", `{"a": 1, "a": 2}`, ast.Object{"a": ast.Number(2)}, ""},

		// Trailing input is returned, not rejected.
		{"TrailingSpace", `null `, ast.Null{}, " "},
		{"TrailingText", `truex`, ast.Bool(true), "x"},
		{"TwoValues", `[1] [2]`, ast.Array{ast.Number(1)}, " [2]"},
		{"NumberStop", `12.5`, ast.Number(12), ".5"},
		{"LongNull", `nullify`, ast.Null{}, "ify"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, rest, err := ast.Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse %q: unexpected error: %v", tc.input, err)
			}
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("Parse %q value (-got, +want):\n%s", tc.input, diff)
			}
			if rest != tc.rest {
				t.Errorf("Parse %q rest: got %q, want %q", tc.input, rest, tc.rest)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"abc",
		" null",     // no leading whitespace at top level
		"nul",       // truncated literal
		"True",      // wrong case
		"-1",        // no signs
		".5",        // no leading fraction
		`"open`,     // unterminated string
		"[1, 2",     // unterminated array
		"[1, 2,]",   // trailing separator
		"[,]",       // missing element
		"[1\t]",     // tabs are not whitespace
		"[\n1]",     // nor are newlines
		`{"a" 1}`,   // missing colon
		`{a: 1}`,    // unquoted key
		`{"a": 1,}`, // trailing separator
		`{1: 2}`,    // non-string key
		`{"a": }`,   // missing value
	}
	for _, input := range tests {
		v, rest, err := ast.Parse(input)
		if !errors.Is(err, ast.ErrNoValue) {
			t.Errorf("Parse %q: got (%v, %q, %v), want %v", input, v, rest, err, ast.ErrNoValue)
		}
		if rest != input {
			t.Errorf("Parse %q: rest %q should be the whole input", input, rest)
		}
	}
}

func TestParseSingle(t *testing.T) {
	if v, err := ast.ParseSingle(`[true]`); err != nil {
		t.Errorf("ParseSingle: unexpected error: %v", err)
	} else if got := v.JSON(); got != "[true]" {
		t.Errorf("ParseSingle: got %s, want [true]", got)
	}

	if v, err := ast.ParseSingle(`[true] `); !errors.Is(err, ast.ErrTrailing) {
		t.Errorf("ParseSingle: got (%v, %v), want %v", v, err, ast.ErrTrailing)
	} else {
		t.Logf("Got expected error: %v", err)
	}

	if v, err := ast.ParseSingle(`[true`); !errors.Is(err, ast.ErrNoValue) {
		t.Errorf("ParseSingle: got (%v, %v), want %v", v, err, ast.ErrNoValue)
	}
}

func TestWhitespace(t *testing.T) {
	want := ast.Array{ast.Number(1), ast.Number(2)}
	for _, input := range []string{
		`[1,2]`,
		`[ 1 , 2 ]`,
		`[1 ,2]`,
		`[    1,    2    ]`,
	} {
		got, rest, err := ast.Parse(input)
		if err != nil {
			t.Errorf("Parse %q: unexpected error: %v", input, err)
			continue
		}
		if diff := cmp.Diff(got, want); diff != "" {
			t.Errorf("Parse %q (-got, +want):\n%s", input, diff)
		}
		if rest != "" {
			t.Errorf("Parse %q: unexpected trailing input %q", input, rest)
		}
	}

	obj := ast.Object{"k": ast.Array{}}
	for _, input := range []string{`{"k":[]}`, `{ "k" : [ ] }`, `{"k"  :[]  }`} {
		got, _, err := ast.Parse(input)
		if err != nil {
			t.Errorf("Parse %q: unexpected error: %v", input, err)
		} else if diff := cmp.Diff(got, obj); diff != "" {
			t.Errorf("Parse %q (-got, +want):\n%s", input, diff)
		}
	}
}

func TestGrammarReuse(t *testing.T) {
	g := ast.Grammar()
	for _, input := range []string{`1`, `[2]`, `{"x":[3]}`} {
		r, ok := g.Parse(input).Get()
		if !ok {
			t.Fatalf("Parse %q failed", input)
		}
		if got := r.Value.JSON(); got != input {
			t.Errorf("Parse %q: got %s", input, got)
		}
	}
}

// Any document built from the supported subset of JSON must parse completely,
// to the value it was generated from.
func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(20240101, 1))
	g := ast.Grammar()
	for i := 0; i < 300; i++ {
		want := randomValue(rng, 4)
		for _, text := range []string{want.JSON(), spaced(rng, want)} {
			r, ok := g.Parse(text).Get()
			if !ok {
				t.Fatalf("Parse %q failed", text)
			}
			if rest := r.Rest.Rest(); rest != "" {
				t.Errorf("Parse %q: unconsumed input %q", text, rest)
			}
			if diff := cmp.Diff(r.Value, want); diff != "" {
				t.Errorf("Parse %q (-got, +want):\n%s", text, diff)
			}
		}
	}
}

const stringChars = "abcxyz019 _-:,[]{}/"

func randomString(rng *rand.Rand) string {
	buf := make([]byte, rng.IntN(8))
	for i := range buf {
		buf[i] = stringChars[rng.IntN(len(stringChars))]
	}
	return string(buf)
}

func randomValue(rng *rand.Rand, depth int) ast.Value {
	kind := rng.IntN(6)
	if depth == 0 {
		kind %= 4
	}
	switch kind {
	case 0:
		return ast.Null{}
	case 1:
		return ast.Bool(rng.IntN(2) == 0)
	case 2:
		return ast.Number(rng.Uint32())
	case 3:
		return ast.String(randomString(rng))
	case 4:
		arr := ast.Array{}
		for range rng.IntN(5) {
			arr = append(arr, randomValue(rng, depth-1))
		}
		return arr
	default:
		obj := ast.Object{}
		for range rng.IntN(5) {
			obj[randomString(rng)] = randomValue(rng, depth-1)
		}
		return obj
	}
}

// spaced renders v as JSON with random runs of spaces wherever the grammar
// permits them.
func spaced(rng *rand.Rand, v ast.Value) string {
	var sb strings.Builder
	pad := func() { sb.WriteString(strings.Repeat(" ", rng.IntN(3))) }

	var render func(ast.Value)
	render = func(v ast.Value) {
		switch t := v.(type) {
		case ast.Array:
			sb.WriteString("[")
			pad()
			for i, elt := range t {
				if i > 0 {
					pad()
					sb.WriteString(",")
					pad()
				}
				render(elt)
			}
			pad()
			sb.WriteString("]")
		case ast.Object:
			sb.WriteString("{")
			pad()
			for i, key := range t.Keys() {
				if i > 0 {
					pad()
					sb.WriteString(",")
					pad()
				}
				sb.WriteString(strconv.Quote(key))
				pad()
				sb.WriteString(":")
				pad()
				render(t[key])
			}
			pad()
			sb.WriteString("}")
		default:
			sb.WriteString(v.JSON())
		}
	}
	render(v)
	return sb.String()
}
