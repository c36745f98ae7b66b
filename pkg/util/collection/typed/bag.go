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
	"github.com/verilite/go-verilite/pkg/util"
)

// Bag is a general container of arbitrary option values looked up by typed
// keys.  Its purpose is to pass collections of optional settings between
// otherwise unrelated subsystems without introducing cross dependencies
// between them.  Each subsystem declares the keys it consumes; nothing else
// needs to know they exist.
//
// Keys are compared by identity rather than by runtime type inspection.  Two
// keys constructed separately are always distinct, even when they carry the
// same value type and name.
type Bag struct {
	items map[*keyTag]any
}

// keyTag provides the unique identity behind a key.  The name is retained
// purely for diagnostics.
type keyTag struct {
	name string
}

// Key is a typed tag under which a value of type T can be stored in a bag.
// Keys are intended to be constructed once, as package-level variables, by
// the subsystem which consumes them.
type Key[T any] struct {
	tag *keyTag
}

// NewKey constructs a fresh key for values of type T.  The given name is used
// only when reporting a key (e.g. in log output).
func NewKey[T any](name string) Key[T] {
	return Key[T]{&keyTag{name}}
}

// Name returns the diagnostic name of this key.
func (k Key[T]) Name() string {
	return k.tag.name
}

// NewBag constructs an initially empty bag.
func NewBag() *Bag {
	return &Bag{make(map[*keyTag]any)}
}

// Len returns the number of entries held in this bag.
func (p *Bag) Len() uint {
	return uint(len(p.items))
}

// Set stores a value in the bag under the given key, replacing any previous
// entry for that key.  The bag owns its copy of the value.
func Set[T any](bag *Bag, key Key[T], value T) {
	bag.items[key.tag] = value
}

// Get attempts to retrieve the value stored under the given key.  The
// resulting option is empty if no entry exists.
func Get[T any](bag *Bag, key Key[T]) util.Option[T] {
	if item, ok := bag.items[key.tag]; ok {
		return util.Some(item.(T))
	}
	// Failure
	return util.None[T]()
}

// GetOrDefault retrieves the value stored under the given key or, if no entry
// exists, returns the given default.
func GetOrDefault[T any](bag *Bag, key Key[T], dflt T) T {
	return Get(bag, key).UnwrapOr(dflt)
}

// InsertOrGet retrieves the value stored under the given key, first inserting
// the zero value for T if no entry exists yet.
func InsertOrGet[T any](bag *Bag, key Key[T]) T {
	if item, ok := bag.items[key.tag]; ok {
		return item.(T)
	}
	//
	var empty T
	//
	bag.items[key.tag] = empty
	//
	return empty
}
