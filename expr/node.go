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
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Visitor is an interface that must
// be satisfied by the argument to Walk.
//
// A Visitor's Visit method is invoked for each node encountered by Walk. If
// the result visitor w is not nil, Walk visits each of the children of node
// with the visitor w, followed by a call of w.Visit(nil).
//
// (see also: ast.Visitor)
type Visitor interface {
	Visit(Node) Visitor
}

// Walk traverses an AST in depth-first order: It starts by calling
// v.Visit(node); node must not be nil. If the visitor w returned by
// v.Visit(node) is not nil, Walk is invoked recursively with visitor w for
// each of the non-nil children of node, followed by a call of w.Visit(nil).
//
// (see also: ast.Walk)
func Walk(v Visitor, n Node) {
	w := v.Visit(n)
	if w != nil {
		n.walk(w)
		w.Visit(nil)
	}
}

// Rewriter accepts a Node and returns
// a new node (or just its argument)
type Rewriter interface {
	// Rewrite is applied to nodes
	// in depth-first order, and each
	// node is re-written to use the
	// returned value.
	Rewrite(Node) Node

	// Walk is called during node traversal
	// and the returned Rewriter is used for
	// all the children of Node.
	// If the returned rewriter is nil,
	// then traversal does not proceed past Node.
	Walk(Node) Rewriter
}

type nonleaf interface {
	rewrite(r Rewriter) Node
}

// Rewrite recursively applies a Rewriter in depth-first order
func Rewrite(r Rewriter, n Node) Node {
	if n == nil {
		return nil
	}
	nl, ok := n.(nonleaf)
	if ok {
		rc := r.Walk(n)
		if rc != nil {
			n = nl.rewrite(rc)
		}
	}
	n = r.Rewrite(n)
	return n
}

// Node is an expression AST node
type Node interface {
	// text writes the textual representation
	// of this node to dst
	text(dst *strings.Builder)

	// Equals returns whether this node
	// is equivalent to another node.
	// Nodes are Equal if they are
	// syntactically equivalent or correspond
	// to equal numeric values.
	Equals(Node) bool

	walk(Visitor)
}

// Equal returns whether a and b are equivalent.
// a or b may be nil.
func Equal(a, b Node) bool {
	if a == nil {
		return b == nil
	}
	return b != nil && a.Equals(b)
}

// ToString returns the textual representation of a node.
func ToString(n Node) string {
	if n == nil {
		return "<nil>"
	}
	var dst strings.Builder
	n.text(&dst)
	return dst.String()
}

// Ident is a bare column reference.
//
// An Ident carries no binding: the engine resolves
// the name against a schema only when it evaluates
// the surrounding expression. Constructing an Ident
// for a column that does not exist is not an error
// at this layer.
type Ident string

// Identifier constructs an Ident from a column name.
func Identifier(x string) Ident { return Ident(x) }

func (i Ident) text(dst *strings.Builder) {
	dst.WriteString(string(i))
}

func (i Ident) walk(v Visitor) {}

func (i Ident) Equals(x Node) bool {
	xi, ok := x.(Ident)
	return ok && xi == i
}

// Float is a literal float AST node
type Float float64

func (f Float) text(dst *strings.Builder) {
	var buf [32]byte
	dst.Write(strconv.AppendFloat(buf[:0], float64(f), 'g', -1, 64))
}

func (f Float) walk(v Visitor) {}

func (f Float) Equals(e Node) bool {
	ef, ok := e.(Float)
	if ok {
		return f == ef
	}
	ei, ok := e.(Integer)
	if ok {
		return float64(f) == float64(int64(ei))
	}
	return false
}

// Integer is a literal integer AST node
type Integer int64

func (i Integer) text(dst *strings.Builder) {
	var buf [32]byte
	dst.Write(strconv.AppendInt(buf[:0], int64(i), 10))
}

func (i Integer) walk(v Visitor) {}

func (i Integer) Equals(e Node) bool {
	ei, ok := e.(Integer)
	if ok {
		return ei == i
	}
	ef, ok := e.(Float)
	if ok {
		trunc := int64(ef)
		return float64(trunc) == float64(ef) && trunc == int64(i)
	}
	return false
}

// Call yields op(args...).
func Call(op ScalarOp, args ...Node) *Func {
	return &Func{Op: op, Args: args}
}

// CallByName yields 'fn(args...)'.
// Use Call when you know the ScalarOp associated with fn.
// If fn does not name a known function, the result carries
// the Unspecified op and is rejected by Check.
func CallByName(fn string, args ...Node) *Func {
	return &Func{Op: Name2Op(fn), Args: args}
}

// Func is a Node that represents
// the application of a scalar function
type Func struct {
	Op   ScalarOp // function identity
	Args []Node   // function arguments, in call order
}

// Name returns the name of the function
// as the engine spells it.
func (f *Func) Name() string {
	return f.Op.String()
}

func (f *Func) text(dst *strings.Builder) {
	dst.WriteString(f.Op.String())
	dst.WriteByte('(')
	for i := range f.Args {
		if i > 0 {
			dst.WriteString(", ")
		}
		f.Args[i].text(dst)
	}
	dst.WriteByte(')')
}

func (f *Func) walk(v Visitor) {
	for i := range f.Args {
		Walk(v, f.Args[i])
	}
}

func (f *Func) rewrite(r Rewriter) Node {
	for i := range f.Args {
		f.Args[i] = Rewrite(r, f.Args[i])
	}
	return f
}

func (f *Func) Equals(x Node) bool {
	xf, ok := x.(*Func)
	if !ok || f.Op != xf.Op {
		return false
	}
	return slices.EqualFunc(f.Args, xf.Args, Equal)
}
