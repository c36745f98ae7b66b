// Copyright Verilite Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package syntax defines the syntax-tree surface consumed by semantic
// analysis.  Nodes are produced by the parser, are immutable once built, and
// are identified by pointer rather than by structure: two structurally
// identical subtrees in different hierarchical instances are distinct nodes
// which elaborate to distinct symbols.
package syntax

import (
	"github.com/verilite/go-verilite/pkg/util/source"
)

// Kind identifies the different kinds of syntax node which can declare a
// symbol during elaboration.
type Kind uint8

const (
	// UNKNOWN is a node kind with no declared-symbol concept.
	UNKNOWN Kind = iota
	// COMPILATION_UNIT is the root node of a single source file.
	COMPILATION_UNIT
	// HIERARCHY_INSTANTIATION instantiates a module within the design
	// hierarchy.
	HIERARCHY_INSTANTIATION
	// BLOCK_STATEMENT is a named sequential or parallel statement block.
	BLOCK_STATEMENT
	// PROCEDURAL_BLOCK is an always/initial/final construct.
	PROCEDURAL_BLOCK
	// IF_GENERATE is a conditional generate construct.
	IF_GENERATE
	// LOOP_GENERATE is a looping generate construct.
	LOOP_GENERATE
	// FUNCTION_DECLARATION declares a function or task.
	FUNCTION_DECLARATION
	// ENUM_TYPE declares an enumerated type.
	ENUM_TYPE
	// TYPEDEF_DECLARATION declares a type alias.
	TYPEDEF_DECLARATION
)

// Node is an identity-addressable node of the parse tree.  Semantic analysis
// only ever uses nodes as lookup anchors and cache keys; it never inspects or
// mutates their contents.
type Node interface {
	// Kind returns the kind of this node.
	Kind() Kind
	// Location returns the span of this node in its originating source file.
	Location() source.Span
}

// node provides the common payload embedded by every concrete syntax node.
type node struct {
	span source.Span
}

// Location returns the span of this node in its originating source file.
func (p *node) Location() source.Span {
	return p.span
}

// CompilationUnit is the root node of a single source file.
type CompilationUnit struct {
	node
	Name string
}

// HierarchyInstantiation instantiates a module within the design hierarchy.
type HierarchyInstantiation struct {
	node
	// Name of the module being instantiated.
	ModuleName string
	// Instance name.
	Name string
}

// BlockStatement is a named sequential or parallel statement block.
type BlockStatement struct {
	node
	Name string
}

// ProceduralBlock is an always/initial/final construct.
type ProceduralBlock struct {
	node
}

// IfGenerate is a conditional generate construct.
type IfGenerate struct {
	node
}

// LoopGenerate is a looping generate construct.
type LoopGenerate struct {
	node
	// Name of the loop induction variable.
	Name string
}

// FunctionDeclaration declares a function or task.
type FunctionDeclaration struct {
	node
	Name string
}

// EnumType declares an enumerated type.
type EnumType struct {
	node
	Name string
}

// TypedefDeclaration declares a type alias.
type TypedefDeclaration struct {
	node
	Name string
}

// Unknown is a node with no declared-symbol concept, such as an expression
// or a bare statement.
type Unknown struct {
	node
}

// Kind returns the kind of this node.
func (p *CompilationUnit) Kind() Kind { return COMPILATION_UNIT }

// Kind returns the kind of this node.
func (p *HierarchyInstantiation) Kind() Kind { return HIERARCHY_INSTANTIATION }

// Kind returns the kind of this node.
func (p *BlockStatement) Kind() Kind { return BLOCK_STATEMENT }

// Kind returns the kind of this node.
func (p *ProceduralBlock) Kind() Kind { return PROCEDURAL_BLOCK }

// Kind returns the kind of this node.
func (p *IfGenerate) Kind() Kind { return IF_GENERATE }

// Kind returns the kind of this node.
func (p *LoopGenerate) Kind() Kind { return LOOP_GENERATE }

// Kind returns the kind of this node.
func (p *FunctionDeclaration) Kind() Kind { return FUNCTION_DECLARATION }

// Kind returns the kind of this node.
func (p *EnumType) Kind() Kind { return ENUM_TYPE }

// Kind returns the kind of this node.
func (p *TypedefDeclaration) Kind() Kind { return TYPEDEF_DECLARATION }

// Kind returns the kind of this node.
func (p *Unknown) Kind() Kind { return UNKNOWN }

// NewCompilationUnit constructs a compilation unit node.
func NewCompilationUnit(span source.Span, name string) *CompilationUnit {
	return &CompilationUnit{node{span}, name}
}

// NewHierarchyInstantiation constructs a hierarchy instantiation node.
func NewHierarchyInstantiation(span source.Span, module string, name string) *HierarchyInstantiation {
	return &HierarchyInstantiation{node{span}, module, name}
}

// NewBlockStatement constructs a named block statement node.
func NewBlockStatement(span source.Span, name string) *BlockStatement {
	return &BlockStatement{node{span}, name}
}

// NewProceduralBlock constructs a procedural block node.
func NewProceduralBlock(span source.Span) *ProceduralBlock {
	return &ProceduralBlock{node{span}}
}

// NewIfGenerate constructs a conditional generate node.
func NewIfGenerate(span source.Span) *IfGenerate {
	return &IfGenerate{node{span}}
}

// NewLoopGenerate constructs a looping generate node.
func NewLoopGenerate(span source.Span, name string) *LoopGenerate {
	return &LoopGenerate{node{span}, name}
}

// NewFunctionDeclaration constructs a function declaration node.
func NewFunctionDeclaration(span source.Span, name string) *FunctionDeclaration {
	return &FunctionDeclaration{node{span}, name}
}

// NewEnumType constructs an enum type declaration node.
func NewEnumType(span source.Span, name string) *EnumType {
	return &EnumType{node{span}, name}
}

// NewTypedefDeclaration constructs a type alias declaration node.
func NewTypedefDeclaration(span source.Span, name string) *TypedefDeclaration {
	return &TypedefDeclaration{node{span}, name}
}

// NewUnknown constructs a node with no declared-symbol concept.
func NewUnknown(span source.Span) *Unknown {
	return &Unknown{node{span}}
}
