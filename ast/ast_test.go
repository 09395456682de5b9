// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/creachadair/jcomb/ast"
	"github.com/google/go-cmp/cmp"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null{}, "null"},

		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a \t b"), `"a \t b"`},
		{ast.String(`say "hi"`), `"say \"hi\""`},

		{ast.Number(0), `0`},
		{ast.Number(15), `15`},
		{ast.Number(1e21), `1000000000000000000000`},

		{ast.Array{}, `[]`},
		{ast.Array{
			ast.Bool(false),
		}, `[false]`},
		{ast.Array{
			ast.Bool(true),
			ast.Number(199),
		}, `[true,199]`},
		{ast.Array{
			ast.String("free"),
			ast.String("your"),
			ast.String("mind"),
		}, `["free","your","mind"]`},

		{ast.Object{}, `{}`},
		{ast.Object{"xs": ast.Null{}}, `{"xs":null}`},
		{ast.Object{
			"name":  ast.String("Dennis"),
			"age":   ast.Number(37),
			"isOld": ast.Bool(false),
		}, `{"age":37,"isOld":false,"name":"Dennis"}`},

		{ast.Object{
			"values": ast.Array{
				ast.Number(5),
				ast.Number(10),
				ast.Bool(true),
			},
			"page": ast.Object{
				"token": ast.String("xyz-pdq-zvm"),
				"count": ast.Number(100),
			},
		}, `{"page":{"count":100,"token":"xyz-pdq-zvm"},"values":[5,10,true]}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}

		// The standard encoder must agree with the JSON method.
		enc, err := json.Marshal(test.input)
		if err != nil {
			t.Errorf("Marshal %s: unexpected error: %v", test.want, err)
		} else if string(enc) != test.want {
			t.Errorf("Marshal: got %s, want %s", enc, test.want)
		}
	}
}

func TestString(t *testing.T) {
	if got := ast.String("Inigo Montoya").String(); got != "Inigo Montoya" {
		t.Errorf("String: got %q, want unquoted text", got)
	}
	if got := (ast.Array{ast.String("x")}).String(); got != `["x"]` {
		t.Errorf("String: got %q, want %q", got, `["x"]`)
	}
}

func TestMarshalNonFinite(t *testing.T) {
	inf := ast.Number(math.Inf(1))
	for _, v := range []ast.Value{
		inf,
		ast.Array{ast.Number(1), inf},
		ast.Object{"deep": ast.Array{ast.Object{"x": inf}}},
	} {
		if enc, err := json.Marshal(v); err == nil {
			t.Errorf("Marshal %v: got %s, want error", v, enc)
		}
	}
}

func TestKeysAndLen(t *testing.T) {
	obj := ast.Object{"b": ast.Null{}, "a": ast.Null{}, "c": ast.Null{}}
	if diff := cmp.Diff(obj.Keys(), []string{"a", "b", "c"}); diff != "" {
		t.Errorf("Keys (-got, +want):\n%s", diff)
	}
	if n := obj.Len(); n != 3 {
		t.Errorf("Object length: got %d, want 3", n)
	}
	if n := (ast.Array{ast.Null{}}).Len(); n != 1 {
		t.Errorf("Array length: got %d, want 1", n)
	}
	if n := ast.String("four").Len(); n != 4 {
		t.Errorf("String length: got %d, want 4", n)
	}
}
