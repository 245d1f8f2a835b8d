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
	"strings"
)

// ScalarOp identifies one of the scalar math functions
// understood by the engine.
//
// Each op is a distinct function identity: in particular
// the four sign ops are separate functions selected by the
// caller's intended numeric domain, not overloads of one
// polymorphic SIGN. This layer does not verify that the
// chosen domain matches the column's actual values; a
// mismatch surfaces during evaluation.
type ScalarOp int

const (
	// Unspecified is the zero ScalarOp;
	// it identifies no function and fails Check
	Unspecified ScalarOp = iota

	Abs
	Sign      // sign of a generic (double) operand
	SignInt   // sign of an integer operand
	SignFloat // sign of a float operand
	SignLong  // sign of a long operand

	Round
	RoundEven // round half to even, aka rint
	Trunc
	Floor
	Ceil

	Sqrt
	Cbrt
	Exp
	ExpM1
	Exp2
	Exp10
	Ln
	Ln1p
	Log2
	Log10
	Pow
	Hypot

	Degrees
	Radians
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Atan2
	Sinh
	Cosh
	Tanh

	maxScalarOp
)

// opinfo is the per-op entry in the scalar function LUT
type opinfo struct {
	// name is the engine-facing spelling of the function
	name string
	// arity is the number of arguments the function accepts
	arity int
}

var scalarInfo = [maxScalarOp]opinfo{
	Abs:       {"ABS", 1},
	Sign:      {"SIGN", 1},
	SignInt:   {"SIGN_INT", 1},
	SignFloat: {"SIGN_FLOAT", 1},
	SignLong:  {"SIGN_LONG", 1},
	Round:     {"ROUND", 1},
	RoundEven: {"ROUND_EVEN", 1},
	Trunc:     {"TRUNC", 1},
	Floor:     {"FLOOR", 1},
	Ceil:      {"CEIL", 1},
	Sqrt:      {"SQRT", 1},
	Cbrt:      {"CBRT", 1},
	Exp:       {"EXP", 1},
	ExpM1:     {"EXPM1", 1},
	Exp2:      {"EXP2", 1},
	Exp10:     {"EXP10", 1},
	Ln:        {"LN", 1},
	Ln1p:      {"LN1P", 1},
	Log2:      {"LOG2", 1},
	Log10:     {"LOG10", 1},
	Pow:       {"POW", 2},
	Hypot:     {"HYPOT", 2},
	Degrees:   {"DEGREES", 1},
	Radians:   {"RADIANS", 1},
	Sin:       {"SIN", 1},
	Cos:       {"COS", 1},
	Tan:       {"TAN", 1},
	Asin:      {"ASIN", 1},
	Acos:      {"ACOS", 1},
	Atan:      {"ATAN", 1},
	Atan2:     {"ATAN2", 2},
	Sinh:      {"SINH", 1},
	Cosh:      {"COSH", 1},
	Tanh:      {"TANH", 1},
}

func (o ScalarOp) info() *opinfo {
	if o > Unspecified && o < maxScalarOp {
		return &scalarInfo[o]
	}
	return nil
}

// String returns the name of the function
// as the engine spells it.
func (o ScalarOp) String() string {
	if info := o.info(); info != nil {
		return info.name
	}
	return "UNSPECIFIED"
}

// Arity returns the number of arguments the
// function accepts, or -1 if o does not identify
// a known function.
func (o ScalarOp) Arity() int {
	if info := o.info(); info != nil {
		return info.arity
	}
	return -1
}

var name2op map[string]ScalarOp

func init() {
	name2op = make(map[string]ScalarOp, maxScalarOp)
	for op := Unspecified + 1; op < maxScalarOp; op++ {
		name2op[scalarInfo[op].name] = op
	}
}

// Name2Op returns the ScalarOp whose engine-facing
// name is fn (case-insensitively), or Unspecified
// if fn does not name a known function.
func Name2Op(fn string) ScalarOp {
	return name2op[strings.ToUpper(fn)]
}
