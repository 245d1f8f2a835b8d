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

package colmath

import (
	"github.com/basaltdb/basalt/expr"
)

// Sin yields 'SIN(arg)'
func Sin[A ColumnArg](arg A) Column { return unary(expr.Sin, arg) }

// Asin yields 'ASIN(arg)'
func Asin[A ColumnArg](arg A) Column { return unary(expr.Asin, arg) }

// Sinh yields 'SINH(arg)'
func Sinh[A ColumnArg](arg A) Column { return unary(expr.Sinh, arg) }

// Cos yields 'COS(arg)'
func Cos[A ColumnArg](arg A) Column { return unary(expr.Cos, arg) }

// Acos yields 'ACOS(arg)'
func Acos[A ColumnArg](arg A) Column { return unary(expr.Acos, arg) }

// Cosh yields 'COSH(arg)'
func Cosh[A ColumnArg](arg A) Column { return unary(expr.Cosh, arg) }

// Tan yields 'TAN(arg)'
func Tan[A ColumnArg](arg A) Column { return unary(expr.Tan, arg) }

// Atan yields 'ATAN(arg)'
func Atan[A ColumnArg](arg A) Column { return unary(expr.Atan, arg) }

// Tanh yields 'TANH(arg)'
func Tanh[A ColumnArg](arg A) Column { return unary(expr.Tanh, arg) }

// ToDeg yields 'DEGREES(arg)',
// the radians-to-degrees conversion
func ToDeg[A ColumnArg](arg A) Column { return unary(expr.Degrees, arg) }

// ToRad yields 'RADIANS(arg)',
// the degrees-to-radians conversion
func ToRad[A ColumnArg](arg A) Column { return unary(expr.Radians, arg) }

// Ceil yields 'CEIL(arg)'
func Ceil[A ColumnArg](arg A) Column { return unary(expr.Ceil, arg) }

// Floor yields 'FLOOR(arg)'
func Floor[A ColumnArg](arg A) Column { return unary(expr.Floor, arg) }

// Round yields 'ROUND(arg)'
func Round[A ColumnArg](arg A) Column { return unary(expr.Round, arg) }

// Rint yields 'ROUND_EVEN(arg)',
// rounding half to the nearest even value
func Rint[A ColumnArg](arg A) Column { return unary(expr.RoundEven, arg) }

// Trunc yields 'TRUNC(arg)'
func Trunc[A ColumnArg](arg A) Column { return unary(expr.Trunc, arg) }

// Abs yields 'ABS(arg)'
func Abs[A ColumnArg](arg A) Column { return unary(expr.Abs, arg) }

// Sqrt yields 'SQRT(arg)'
func Sqrt[A ColumnArg](arg A) Column { return unary(expr.Sqrt, arg) }

// Cbrt yields 'CBRT(arg)'
func Cbrt[A ColumnArg](arg A) Column { return unary(expr.Cbrt, arg) }

// The sign family is four distinct functions, not one
// polymorphic SIGN: each variant names the numeric domain
// the caller intends for the operand. Selecting a variant
// that does not match the column's actual domain is not
// detected here; the engine reports it during evaluation.

// Signum yields 'SIGN(arg)' for a generic (double) operand
func Signum[A ColumnArg](arg A) Column { return unary(expr.Sign, arg) }

// Isignum yields 'SIGN_INT(arg)' for an integer operand
func Isignum[A ColumnArg](arg A) Column { return unary(expr.SignInt, arg) }

// Fsignum yields 'SIGN_FLOAT(arg)' for a float operand
func Fsignum[A ColumnArg](arg A) Column { return unary(expr.SignFloat, arg) }

// Lsignum yields 'SIGN_LONG(arg)' for a long operand
func Lsignum[A ColumnArg](arg A) Column { return unary(expr.SignLong, arg) }

// Log yields 'LN(arg)', the natural logarithm
func Log[A ColumnArg](arg A) Column { return unary(expr.Ln, arg) }

// Log1p yields 'LN1P(arg)', i.e. ln(1+arg)
func Log1p[A ColumnArg](arg A) Column { return unary(expr.Ln1p, arg) }

// Log2 yields 'LOG2(arg)'
func Log2[A ColumnArg](arg A) Column { return unary(expr.Log2, arg) }

// Log10 yields 'LOG10(arg)'
func Log10[A ColumnArg](arg A) Column { return unary(expr.Log10, arg) }

// Exp yields 'EXP(arg)'
func Exp[A ColumnArg](arg A) Column { return unary(expr.Exp, arg) }

// Expm1 yields 'EXPM1(arg)', i.e. exp(arg)-1
func Expm1[A ColumnArg](arg A) Column { return unary(expr.ExpM1, arg) }

// Exp2 yields 'EXP2(arg)'
func Exp2[A ColumnArg](arg A) Column { return unary(expr.Exp2, arg) }

// Exp10 yields 'EXP10(arg)'
func Exp10[A ColumnArg](arg A) Column { return unary(expr.Exp10, arg) }

// Pow yields 'POW(left, right)'.
// The operands keep their call order; at most one
// of them may be a numeric constant.
func Pow[L, R Operand](left L, right R) Column { return binary(expr.Pow, left, right) }

// Hypot yields 'HYPOT(left, right)'.
// The operands keep their call order even though
// the function is mathematically commutative.
func Hypot[L, R Operand](left L, right R) Column { return binary(expr.Hypot, left, right) }

// Atan2 yields 'ATAN2(left, right)' where left is
// the y coordinate and right is the x coordinate.
func Atan2[L, R Operand](left L, right R) Column { return binary(expr.Atan2, left, right) }
