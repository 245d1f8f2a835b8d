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

// Package expr implements the AST representation
// of scalar query expressions.
//
// Each of the AST node types satisfies the Node
// interface. Nodes are immutable once constructed
// and carry no schema information: an Ident names
// a column that the engine resolves only when the
// surrounding expression is bound.
//
// The entry points for this package are Call, Walk,
// and Check. Those routines allow a caller to build
// a function application, examine a finished tree,
// and validate its shape before handing it to the
// engine.
package expr
