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
	"testing"

	"github.com/verilite/go-verilite/pkg/syntax"
	"github.com/verilite/go-verilite/pkg/util/source"
)

func TestModel_LookupUnregistered(t *testing.T) {
	var (
		model = NewSemanticModel()
		node  = syntax.NewFunctionDeclaration(source.NewSpan(0, 1), "f")
	)
	//
	if model.GetDeclaredSymbol(node).HasValue() {
		t.Errorf("lookup of unregistered node yielded a symbol")
	}
}

func TestModel_LookupIsIdempotent(t *testing.T) {
	var (
		model  = NewSemanticModel()
		node   = syntax.NewHierarchyInstantiation(source.NewSpan(0, 1), "adder", "a0")
		symbol = NewInstanceSymbol("a0", "adder", NewRootScope("a0"))
	)
	//
	model.WithContext(node, symbol)
	// Repeated lookups return exactly the registered symbol.
	for i := 0; i < 3; i++ {
		got := model.GetDeclaredSymbol(node)
		//
		if got.IsEmpty() || got.Unwrap() != Symbol(symbol) {
			t.Fatalf("lookup %d did not return the registered symbol", i)
		}
	}
}

func TestModel_IdentityKeys(t *testing.T) {
	// Two structurally identical nodes are distinct keys.
	var (
		model = NewSemanticModel()
		node1 = syntax.NewHierarchyInstantiation(source.NewSpan(0, 1), "adder", "a0")
		node2 = syntax.NewHierarchyInstantiation(source.NewSpan(0, 1), "adder", "a0")
	)
	//
	model.WithContext(node1, NewInstanceSymbol("a0", "adder", NewRootScope("a0")))
	//
	if model.GetDeclaredSymbol(node2).HasValue() {
		t.Errorf("structurally identical node aliased a cache entry")
	}
}

func TestModel_ReRegisterSameIsNoop(t *testing.T) {
	var (
		model  = NewSemanticModel()
		node   = syntax.NewFunctionDeclaration(source.NewSpan(0, 1), "f")
		symbol = NewSubroutineSymbol("f", nil, INT, nil, true)
	)
	//
	model.WithContext(node, symbol)
	model.WithContext(node, symbol)
	//
	if got := model.GetDeclaredSymbol(node).Unwrap(); got != Symbol(symbol) {
		t.Errorf("re-registration disturbed the cache")
	}
}

func TestModel_ReRegisterConflictPanics(t *testing.T) {
	var (
		model = NewSemanticModel()
		node  = syntax.NewFunctionDeclaration(source.NewSpan(0, 1), "f")
	)
	//
	defer func() {
		if recover() == nil {
			t.Errorf("conflicting registration did not panic")
		}
	}()
	//
	model.WithContext(node, NewSubroutineSymbol("f", nil, INT, nil, true))
	model.WithContext(node, NewSubroutineSymbol("f", nil, INT, nil, true))
}

func TestModel_TypedProjection(t *testing.T) {
	var (
		model  = NewSemanticModel()
		node   = syntax.NewHierarchyInstantiation(source.NewSpan(0, 1), "adder", "a0")
		symbol = NewInstanceSymbol("a0", "adder", NewRootScope("a0"))
	)
	//
	model.WithContext(node, symbol)
	//
	if got := model.DeclaredInstance(node); got.IsEmpty() || got.Unwrap() != symbol {
		t.Errorf("typed projection did not return the registered instance")
	}
}

func TestModel_TypedProjectionAbsent(t *testing.T) {
	var (
		model = NewSemanticModel()
		node  = syntax.NewEnumType(source.NewSpan(0, 1), "state_t")
	)
	//
	if model.DeclaredEnumType(node).HasValue() {
		t.Errorf("typed projection of an unregistered node yielded a symbol")
	}
}

func TestModel_TypedProjectionMismatchPanics(t *testing.T) {
	var (
		model = NewSemanticModel()
		node  = syntax.NewFunctionDeclaration(source.NewSpan(0, 1), "f")
	)
	//
	model.WithContext(node, NewInstanceSymbol("a0", "adder", NewRootScope("a0")))
	//
	defer func() {
		if recover() == nil {
			t.Errorf("variant mismatch did not panic")
		}
	}()
	//
	model.DeclaredSubroutine(node)
}

func TestModel_BindingContextRestores(t *testing.T) {
	var (
		model = NewSemanticModel()
		node  = syntax.NewBlockStatement(source.NewSpan(0, 1), "blk")
		owner = NewStatementBlockSymbol("blk", NewRootScope("blk"))
	)
	//
	if model.BindingContext().HasValue() {
		t.Fatalf("fresh model has an ambient context")
	}
	//
	restore := model.WithBindingContext(BindingContext{node, owner})
	//
	if got := model.BindingContext(); got.IsEmpty() || got.Unwrap().Owner != Symbol(owner) {
		t.Errorf("ambient context not visible whilst pushed")
	}
	//
	restore()
	//
	if model.BindingContext().HasValue() {
		t.Errorf("ambient context survived its restore")
	}
}

func TestModel_BindingContextNests(t *testing.T) {
	var (
		model  = NewSemanticModel()
		outer  = NewStatementBlockSymbol("outer", NewRootScope("outer"))
		inner  = NewStatementBlockSymbol("inner", NewRootScope("inner"))
		node   = syntax.NewBlockStatement(source.NewSpan(0, 1), "blk")
		popOut = model.WithBindingContext(BindingContext{node, outer})
		popIn  = model.WithBindingContext(BindingContext{node, inner})
	)
	//
	if got := model.BindingContext().Unwrap().Owner; got != Symbol(inner) {
		t.Errorf("expected inner context, got %v", got)
	}
	//
	popIn()
	//
	if got := model.BindingContext().Unwrap().Owner; got != Symbol(outer) {
		t.Errorf("expected outer context restored, got %v", got)
	}
	//
	popOut()
}
