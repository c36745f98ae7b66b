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
)

func TestScope_DefineAndLookup(t *testing.T) {
	var (
		scope  = NewRootScope("top")
		symbol = NewParameterSymbol("WIDTH", INT)
	)
	//
	if !scope.Define(symbol) {
		t.Fatalf("fresh definition rejected")
	}
	//
	if got := scope.Lookup("WIDTH"); got.IsEmpty() || got.Unwrap() != Symbol(symbol) {
		t.Errorf("lookup did not find defined symbol")
	}
}

func TestScope_DuplicateRejected(t *testing.T) {
	scope := NewRootScope("top")
	//
	if !scope.Define(NewParameterSymbol("WIDTH", INT)) {
		t.Fatalf("fresh definition rejected")
	}
	//
	if scope.Define(NewParameterSymbol("WIDTH", INT)) {
		t.Errorf("duplicate definition accepted")
	}
}

func TestScope_LookupWalksOutward(t *testing.T) {
	var (
		outer  = NewRootScope("top")
		inner  = outer.Enter("blk")
		symbol = NewParameterSymbol("WIDTH", INT)
	)
	//
	outer.Define(symbol)
	//
	if got := inner.Lookup("WIDTH"); got.IsEmpty() || got.Unwrap() != Symbol(symbol) {
		t.Errorf("lookup did not walk to the enclosing scope")
	}
	//
	if inner.LookupLocal("WIDTH").HasValue() {
		t.Errorf("local lookup escaped its scope")
	}
}

func TestScope_InnerShadowsOuter(t *testing.T) {
	var (
		outer  = NewRootScope("top")
		inner  = outer.Enter("blk")
		shadow = NewParameterSymbol("WIDTH", BIT)
		shaded = NewParameterSymbol("WIDTH", INT)
	)
	//
	outer.Define(shaded)
	inner.Define(shadow)
	//
	if got := inner.Lookup("WIDTH"); got.Unwrap() != Symbol(shadow) {
		t.Errorf("inner definition did not shadow the outer one")
	}
}

func TestScope_QualifiedName(t *testing.T) {
	var (
		top = NewRootScope("top")
		gen = top.Enter("gen_adders")
		blk = gen.Enter("u0")
	)
	//
	if got := blk.QualifiedName(); got != "top.gen_adders.u0" {
		t.Errorf("qualified name %q, expected top.gen_adders.u0", got)
	}
}

func TestScope_QualifiedNameSkipsAnonymous(t *testing.T) {
	var (
		top = NewRootScope("top")
		seq = top.Enter("")
		blk = seq.Enter("blk")
	)
	//
	if got := blk.QualifiedName(); got != "top.blk" {
		t.Errorf("qualified name %q, expected top.blk", got)
	}
}
