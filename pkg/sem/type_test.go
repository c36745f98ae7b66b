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

	"github.com/verilite/go-verilite/pkg/logic"
)

func TestType_IntegralPredicates(t *testing.T) {
	if !INT.IsIntegral() || INT.IsString() || INT.IsReal() {
		t.Errorf("int misclassified")
	}
	//
	if !STRING.IsString() || STRING.IsIntegral() {
		t.Errorf("string misclassified")
	}
	//
	if !REAL.IsReal() || REAL.IsIntegral() {
		t.Errorf("real misclassified")
	}
}

func TestType_AliasChainResolves(t *testing.T) {
	// typedef int word_t; typedef word_t addr_t;
	word := NewAliasType("word_t")
	word.SetTarget(INT)
	addr := NewAliasType("addr_t")
	addr.SetTarget(word)
	//
	resolved, err := addr.Resolve()
	//
	if err != nil {
		t.Fatalf("unexpected resolution failure: %v", err)
	} else if resolved != Type(INT) {
		t.Errorf("alias chain resolved to %s, expected int", resolved.Name())
	} else if !addr.IsIntegral() {
		t.Errorf("alias predicates did not delegate to target")
	}
}

func TestType_AliasCycleFails(t *testing.T) {
	// typedef b_t a_t; typedef a_t b_t;
	a := NewAliasType("a_t")
	b := NewAliasType("b_t")
	a.SetTarget(b)
	b.SetTarget(a)
	//
	if _, err := a.Resolve(); err == nil {
		t.Errorf("cyclic alias resolved without error")
	}
}

func TestType_AliasUnresolvedFails(t *testing.T) {
	a := NewAliasType("a_t")
	//
	if _, err := a.Resolve(); err == nil {
		t.Errorf("unresolved alias resolved without error")
	}
}

func TestType_EnumMembers(t *testing.T) {
	typ := NewEnumType("state_t", INT)
	idle := NewEnumValueSymbol("IDLE", typ, logic.FromUint64(0, 32, true))
	busy := NewEnumValueSymbol("BUSY", typ, logic.FromUint64(1, 32, true))
	typ.AddMember(idle)
	typ.AddMember(busy)
	//
	if !typ.IsIntegral() {
		t.Errorf("enum over int is not integral")
	}
	//
	if members := typ.Members(); len(members) != 2 || members[1] != busy {
		t.Errorf("enum members not kept in declaration order")
	}
}

func TestType_ArrayBounds(t *testing.T) {
	typ := NewArrayType(BIT, 7, 0)
	//
	if typ.IsIntegral() || typ.Element() != Type(BIT) {
		t.Errorf("packed array misclassified")
	}
}
