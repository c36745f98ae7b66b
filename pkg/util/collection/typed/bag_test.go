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
package typed

import (
	"testing"
)

func TestBag_GetAbsent(t *testing.T) {
	var (
		bag = NewBag()
		key = NewKey[uint]("limit")
	)
	//
	if Get(bag, key).HasValue() {
		t.Errorf("lookup of absent key yielded a value")
	}
}

func TestBag_SetGet(t *testing.T) {
	var (
		bag = NewBag()
		key = NewKey[uint]("limit")
	)
	//
	Set(bag, key, 1024)
	//
	if got := Get(bag, key); got.IsEmpty() || got.Unwrap() != 1024 {
		t.Errorf("expected 1024, got %v", got)
	}
}

func TestBag_SetReplaces(t *testing.T) {
	var (
		bag = NewBag()
		key = NewKey[string]("mode")
	)
	//
	Set(bag, key, "lenient")
	Set(bag, key, "strict")
	//
	if got := Get(bag, key).Unwrap(); got != "strict" {
		t.Errorf("expected strict, got %s", got)
	}
	//
	if bag.Len() != 1 {
		t.Errorf("expected one entry, got %d", bag.Len())
	}
}

func TestBag_KeysAreDistinct(t *testing.T) {
	// Two keys of the same type and name are still different keys.
	var (
		bag  = NewBag()
		key1 = NewKey[int]("limit")
		key2 = NewKey[int]("limit")
	)
	//
	Set(bag, key1, 1)
	Set(bag, key2, 2)
	//
	if got := Get(bag, key1).Unwrap(); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	//
	if got := Get(bag, key2).Unwrap(); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestBag_GetOrDefault(t *testing.T) {
	var (
		bag = NewBag()
		key = NewKey[int]("limit")
	)
	//
	if got := GetOrDefault(bag, key, 42); got != 42 {
		t.Errorf("expected default 42, got %d", got)
	}
	//
	Set(bag, key, 7)
	//
	if got := GetOrDefault(bag, key, 42); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}

func TestBag_InsertOrGet(t *testing.T) {
	var (
		bag = NewBag()
		key = NewKey[int]("limit")
	)
	// First access inserts the zero value.
	if got := InsertOrGet(bag, key); got != 0 {
		t.Errorf("expected zero value, got %d", got)
	}
	// Subsequent sets are observed.
	Set(bag, key, 9)
	//
	if got := InsertOrGet(bag, key); got != 9 {
		t.Errorf("expected 9, got %d", got)
	}
}
