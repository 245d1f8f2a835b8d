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

// Column is a handle to one scalar expression.
// Every function in this package returns a Column,
// and a Column may in turn be passed as an operand
// to further calls. The wrapped expression is
// immutable; handles may be copied and shared
// freely.
type Column struct {
	node expr.Node
}

// Col returns a handle for the column called name.
// The name is not resolved here: binding against a
// schema happens when the engine evaluates the
// surrounding expression.
func Col(name string) Column {
	return Column{node: expr.Identifier(name)}
}

// Lit returns a handle wrapping the constant v.
func Lit(v float64) Column {
	return Column{node: expr.Float(v)}
}

// FromExpr returns a handle wrapping an
// already-built expression node.
func FromExpr(node expr.Node) Column {
	return Column{node: node}
}

// Expr returns the expression node the handle wraps.
func (c Column) Expr() expr.Node {
	return c.node
}

// Equals returns whether two handles wrap
// structurally equal expressions.
func (c Column) Equals(other Column) bool {
	return expr.Equal(c.node, other.node)
}

func (c Column) String() string {
	return expr.ToString(c.node)
}
