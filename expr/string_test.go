// Copyright 2024 Basalt, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package expr

import (
	"testing"
)

func TestString(t *testing.T) {
	testcases := []struct {
		in   Node
		want string
	}{
		{
			Ident("x"),
			"x",
		},
		{
			Float(0.5),
			"0.5",
		},
		{
			// integral floats render without a fraction
			Float(2.0),
			"2",
		},
		{
			Integer(-3),
			"-3",
		},
		{
			Call(Sin, Ident("theta")),
			"SIN(theta)",
		},
		{
			Call(RoundEven, Ident("price")),
			"ROUND_EVEN(price)",
		},
		{
			Call(Pow, Ident("base"), Float(2)),
			"POW(base, 2)",
		},
		{
			Call(Atan2, Ident("y"), Ident("x")),
			"ATAN2(y, x)",
		},
		{
			Call(Hypot, Call(Degrees, Ident("dx")), Float(3.5)),
			"HYPOT(DEGREES(dx), 3.5)",
		},
	}

	for i := range testcases {
		got := ToString(testcases[i].in)
		if got != testcases[i].want {
			t.Errorf("case %d: got %q; want %q", i, got, testcases[i].want)
		}
	}
}

type renamer struct {
	from, to string
}

func (r *renamer) Rewrite(n Node) Node {
	if id, ok := n.(Ident); ok && string(id) == r.from {
		return Ident(r.to)
	}
	return n
}

func (r *renamer) Walk(n Node) Rewriter { return r }

func TestRewrite(t *testing.T) {
	in := Call(Pow, Call(Sin, Ident("x")), Ident("y"))
	got := Rewrite(&renamer{from: "x", to: "z"}, in)
	want := Call(Pow, Call(Sin, Ident("z")), Ident("y"))
	if !Equal(got, want) {
		t.Errorf("got %s; want %s", ToString(got), ToString(want))
	}
}

func TestWalkOrder(t *testing.T) {
	in := Call(Atan2, Ident("y"), Call(Ln, Ident("x")))
	var order []string
	Walk(walkfn(func(n Node) bool {
		if n != nil {
			order = append(order, ToString(n))
		}
		return true
	}), in)
	want := []string{
		"ATAN2(y, LN(x))",
		"y",
		"LN(x)",
		"x",
	}
	if len(order) != len(want) {
		t.Fatalf("visited %d nodes; want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("visit %d: got %q; want %q", i, order[i], want[i])
		}
	}
}

type walkfn func(Node) bool

func (w walkfn) Visit(n Node) Visitor {
	if w(n) {
		return w
	}
	return nil
}
