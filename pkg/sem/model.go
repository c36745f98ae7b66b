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
package sem

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/verilite/go-verilite/pkg/syntax"
	"github.com/verilite/go-verilite/pkg/util"
)

// SemanticModel maps syntax nodes to the symbols they elaborated to.  The
// mapping is a write-once memoisation: elaboration records each mapping as it
// produces the symbol, and subsequent queries for the same node return the
// recorded symbol for the remainder of the compilation.  Nodes are keyed by
// identity rather than structure, since two structurally identical subtrees
// in different hierarchical instances elaborate to distinct symbols.
//
// Negative results are never stored.  A lookup before the defining
// elaboration pass has run simply returns nothing, which callers may treat as
// a deferred-resolution signal rather than an error.
//
// The model carries no intrinsic thread-safety contract: concurrent
// population from multiple elaboration threads requires either a single
// legitimate writer per entry, or external synchronisation.
type SemanticModel struct {
	// Mapping from syntax nodes to their elaborated symbols.
	cache map[syntax.Node]Symbol
	// Ambient binding contexts, innermost last.  Contexts scope name lookup
	// and diagnostic attribution whilst elaboration descends; they are never
	// stored in the cache.
	contexts []BindingContext
}

// NewSemanticModel constructs an empty semantic model.
func NewSemanticModel() *SemanticModel {
	return &SemanticModel{make(map[syntax.Node]Symbol), nil}
}

// WithContext records that the given syntax node elaborated to the given
// symbol.  Recording the same (node, symbol) pair again is a no-op, so
// idempotent re-elaboration of an unchanged pass is legal.  Recording a
// *different* symbol against an already-mapped node panics: symbols are
// write-once for the lifetime of the compilation, so a conflicting
// registration can only arise from an elaboration bug, and first-write-wins
// would silently mask it.
func (p *SemanticModel) WithContext(node syntax.Node, symbol Symbol) {
	if existing, ok := p.cache[node]; ok {
		if existing == symbol {
			return
		}
		//
		panic(fmt.Sprintf("syntax node already mapped to %s symbol %q",
			existing.Kind(), existing.Name()))
	}
	//
	log.Debugf("declared %s symbol %q", symbol.Kind(), symbol.Name())
	//
	p.cache[node] = symbol
}

// GetDeclaredSymbol returns the symbol a given syntax node elaborated to, if
// that has been recorded yet.  An empty option is a normal outcome: either
// the defining elaboration pass has not run, or the node kind has no
// declared-symbol concept at all.
func (p *SemanticModel) GetDeclaredSymbol(node syntax.Node) util.Option[Symbol] {
	if symbol, ok := p.cache[node]; ok {
		return util.Some(symbol)
	}
	//
	return util.None[Symbol]()
}

// DeclaredSymbol is the typed projection over GetDeclaredSymbol: it narrows
// the cached symbol to the variant the node kind is known to elaborate to.
// An empty option means no mapping exists (as for the untyped lookup);
// however, a cached symbol of the wrong variant panics, since the only way
// that arises is an elaboration bug.
func DeclaredSymbol[T Symbol](model *SemanticModel, node syntax.Node) util.Option[T] {
	symbol := model.GetDeclaredSymbol(node)
	//
	if symbol.IsEmpty() {
		return util.None[T]()
	}
	//
	if narrowed, ok := symbol.Unwrap().(T); ok {
		return util.Some(narrowed)
	}
	//
	panic(fmt.Sprintf("syntax node mapped to %s symbol, not the requested variant",
		symbol.Unwrap().Kind()))
}

// DeclaredCompilationUnit narrows the declared symbol of a compilation unit
// node.
func (p *SemanticModel) DeclaredCompilationUnit(node *syntax.CompilationUnit) util.Option[*CompilationUnitSymbol] {
	return DeclaredSymbol[*CompilationUnitSymbol](p, node)
}

// DeclaredInstance narrows the declared symbol of a hierarchy instantiation
// node.
func (p *SemanticModel) DeclaredInstance(node *syntax.HierarchyInstantiation) util.Option[*InstanceSymbol] {
	return DeclaredSymbol[*InstanceSymbol](p, node)
}

// DeclaredStatementBlock narrows the declared symbol of a block statement
// node.
func (p *SemanticModel) DeclaredStatementBlock(node *syntax.BlockStatement) util.Option[*StatementBlockSymbol] {
	return DeclaredSymbol[*StatementBlockSymbol](p, node)
}

// DeclaredProceduralBlock narrows the declared symbol of a procedural block
// node.
func (p *SemanticModel) DeclaredProceduralBlock(node *syntax.ProceduralBlock) util.Option[*ProceduralBlockSymbol] {
	return DeclaredSymbol[*ProceduralBlockSymbol](p, node)
}

// DeclaredGenerateBlock narrows the declared symbol of a conditional generate
// node.
func (p *SemanticModel) DeclaredGenerateBlock(node *syntax.IfGenerate) util.Option[*GenerateBlockSymbol] {
	return DeclaredSymbol[*GenerateBlockSymbol](p, node)
}

// DeclaredGenerateBlockArray narrows the declared symbol of a looping
// generate node.
func (p *SemanticModel) DeclaredGenerateBlockArray(node *syntax.LoopGenerate) util.Option[*GenerateBlockArraySymbol] {
	return DeclaredSymbol[*GenerateBlockArraySymbol](p, node)
}

// DeclaredSubroutine narrows the declared symbol of a function declaration
// node.
func (p *SemanticModel) DeclaredSubroutine(node *syntax.FunctionDeclaration) util.Option[*SubroutineSymbol] {
	return DeclaredSymbol[*SubroutineSymbol](p, node)
}

// DeclaredEnumType narrows the declared symbol of an enum type node.
func (p *SemanticModel) DeclaredEnumType(node *syntax.EnumType) util.Option[*EnumTypeSymbol] {
	return DeclaredSymbol[*EnumTypeSymbol](p, node)
}

// DeclaredTypeAlias narrows the declared symbol of a typedef declaration
// node.
func (p *SemanticModel) DeclaredTypeAlias(node *syntax.TypedefDeclaration) util.Option[*TypeAliasSymbol] {
	return DeclaredSymbol[*TypeAliasSymbol](p, node)
}
