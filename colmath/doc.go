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

// Package colmath builds scalar math expressions
// over columns.
//
// Each function in this package constructs one node
// of the expression tree that the engine later binds
// and evaluates; nothing is computed here. Operands
// may be Column handles, bare column names, or (for
// the binary functions) numeric constants, in any
// combination:
//
//	colmath.Sin("theta")
//	colmath.Pow(colmath.Col("base"), 2.0)
//	colmath.Atan2("y", "x")
//
// A bare name is not checked against any schema;
// an unknown column surfaces only when the engine
// resolves the finished expression. Every function
// is a pure constructor and is safe for concurrent
// use.
package colmath
