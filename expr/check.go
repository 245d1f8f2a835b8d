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
	"errors"
	"fmt"
)

// SyntaxError is the error type returned
// from Check when an expression has
// illegal structure.
type SyntaxError struct {
	Msg string
}

// Error implements error
func (s *SyntaxError) Error() string {
	return s.Msg
}

func errsyntaxf(f string, args ...interface{}) error {
	return &SyntaxError{Msg: fmt.Sprintf(f, args...)}
}

type checker interface {
	check() error
}

type checkwalk struct {
	errors []error
}

func (c *checkwalk) Visit(n Node) Visitor {
	if n == nil {
		return nil
	}
	if ck, ok := n.(checker); ok {
		if err := ck.check(); err != nil {
			c.errors = append(c.errors, err)
		}
	}
	return c
}

// Check verifies that every function application
// in n names a known function and is applied to
// the right number of arguments.
//
// Check does not resolve column references or
// examine argument types; both belong to the
// engine that binds the expression.
func Check(n Node) error {
	cw := &checkwalk{}
	Walk(cw, n)
	return errors.Join(cw.errors...)
}

func (f *Func) check() error {
	if f.Op.info() == nil {
		return errsyntaxf("unrecognized scalar function")
	}
	if want := f.Op.Arity(); len(f.Args) != want {
		return errsyntaxf("%s: got %d args; need %d", f.Op, len(f.Args), want)
	}
	return nil
}
