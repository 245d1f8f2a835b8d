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
	"fmt"

	"github.com/basaltdb/basalt/expr"
)

// ColumnArg is an operand accepted by the unary
// functions: an already-built Column, or a bare
// column name resolved later by the engine.
type ColumnArg interface {
	Column | string
}

// Operand is an operand accepted on either side of
// the binary functions: a Column, a bare column
// name, or a numeric constant.
type Operand interface {
	Column | string | float64 | int
}

// asNode normalizes an operand to its expression node.
// Names become identifiers, numbers become constant
// nodes, and a Column contributes its node unchanged;
// no operand reaches a constructor unconverted.
func asNode[T Operand](arg T) expr.Node {
	switch v := any(arg).(type) {
	case Column:
		return v.node
	case string:
		return expr.Identifier(v)
	case float64:
		return expr.Float(v)
	case int:
		return expr.Integer(v)
	}
	// the Operand type set is closed
	panic("colmath: operand outside the Operand type set")
}

func isConstant[T Operand](arg T) bool {
	switch any(arg).(type) {
	case float64, int:
		return true
	}
	return false
}

func unary[A ColumnArg](op expr.ScalarOp, arg A) Column {
	return Column{node: expr.Call(op, asNode(arg))}
}

// binary constructs op(left, right) with the operands
// in call order, never swapped. Two constant operands
// are rejected: the result would itself be a constant,
// which callers build directly with Lit.
func binary[L, R Operand](op expr.ScalarOp, left L, right R) Column {
	if isConstant(left) && isConstant(right) {
		panic(fmt.Sprintf("colmath: %s of two constants; use Lit for constant expressions", op))
	}
	return Column{node: expr.Call(op, asNode(left), asNode(right))}
}
