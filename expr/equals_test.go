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

func TestEquals(t *testing.T) {
	tests := []struct {
		in, out Node
	}{
		{Integer(1), Float(1.0)},
		{Float(2), Integer(2)},
		{Ident("x"), Identifier("x")},
		{Call(Sin, Ident("x")), Call(Sin, Ident("x"))},
		{Call(Pow, Ident("x"), Float(2)), Call(Pow, Ident("x"), Integer(2))},
		{Call(Atan2, Ident("y"), Ident("x")), Call(Atan2, Ident("y"), Ident("x"))},
		{CallByName("ln1p", Ident("x")), Call(Ln1p, Ident("x"))},
		{Call(Exp, Call(Ln, Ident("x"))), Call(Exp, Call(Ln, Ident("x")))},
	}

	for i := range tests {
		if !tests[i].in.Equals(tests[i].out) {
			t.Errorf("case %d: %s != %s", i, ToString(tests[i].in), ToString(tests[i].out))
		}
		// test symmetry
		if !tests[i].out.Equals(tests[i].in) {
			t.Errorf("case %d: %s != %s", i, ToString(tests[i].out), ToString(tests[i].in))
		}
		// test reflexivity
		if !tests[i].in.Equals(tests[i].in) {
			t.Errorf("case %d: %s not equal to itself", i, ToString(tests[i].in))
		}
	}
}

func TestNotEquals(t *testing.T) {
	tests := []struct {
		in, out Node
	}{
		{Ident("x"), Ident("y")},
		{Float(1.5), Integer(1)},
		{Ident("x"), Call(Sin, Ident("x"))},
		// the sign ops are distinct function identities
		{Call(Sign, Ident("x")), Call(SignInt, Ident("x"))},
		{Call(SignInt, Ident("x")), Call(SignFloat, Ident("x"))},
		{Call(SignFloat, Ident("x")), Call(SignLong, Ident("x"))},
		// argument order matters
		{Call(Pow, Ident("a"), Ident("b")), Call(Pow, Ident("b"), Ident("a"))},
		{Call(Pow, Ident("x"), Float(2)), Call(Pow, Ident("x"), Float(3))},
		{Call(Pow, Ident("x")), Call(Pow, Ident("x"), Float(2))},
	}

	for i := range tests {
		if tests[i].in.Equals(tests[i].out) {
			t.Errorf("case %d: %s == %s", i, ToString(tests[i].in), ToString(tests[i].out))
		}
		if tests[i].out.Equals(tests[i].in) {
			t.Errorf("case %d: %s == %s", i, ToString(tests[i].out), ToString(tests[i].in))
		}
	}
}
