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
	"strings"

	"github.com/verilite/go-verilite/pkg/util"
)

// Scope is a region of the elaborated design in which names can be defined
// and looked up.  Scopes form the containment tree of the symbol graph: each
// symbol with a body owns a child scope, and lookups walk outward towards the
// root.  Members are retained in declaration order, since iteration order
// matters for determinism.
type Scope struct {
	// Name of this scope within its parent, which can be empty for anonymous
	// scopes (e.g. procedural blocks).
	name string
	// Enclosing scope, or nil for the root.
	parent *Scope
	// Map names to members (for efficient lookup).
	names map[string]Symbol
	// Members in the order of declaration (for determinism).
	members []Symbol
}

// NewRootScope constructs a top-level scope with the given name.
func NewRootScope(name string) *Scope {
	return &Scope{name, nil, make(map[string]Symbol), nil}
}

// Enter constructs a child scope of this scope with the given name.
func (p *Scope) Enter(name string) *Scope {
	return &Scope{name, p, make(map[string]Symbol), nil}
}

// Name returns the name of this scope within its parent.
func (p *Scope) Name() string {
	return p.name
}

// Parent returns the enclosing scope, or nil for the root.
func (p *Scope) Parent() *Scope {
	return p.parent
}

// IsRoot checks whether or not this is the root of the scope tree.
func (p *Scope) IsRoot() bool {
	return p.parent == nil
}

// QualifiedName returns the hierarchical name of this scope, with path
// segments separated by dots.  Anonymous scopes contribute no segment.
func (p *Scope) QualifiedName() string {
	var segments []string
	//
	for s := p; s != nil; s = s.parent {
		if s.name != "" {
			segments = append(segments, s.name)
		}
	}
	// Reverse into root-first order.
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	//
	return strings.Join(segments, ".")
}

// Define adds a member to this scope.  This fails (returning false) when a
// member of the same name is already defined, which is user error to be
// diagnosed by the caller.  Anonymous members are recorded but not named.
func (p *Scope) Define(symbol Symbol) bool {
	name := symbol.Name()
	//
	if name != "" {
		if _, ok := p.names[name]; ok {
			return false
		}
		//
		p.names[name] = symbol
	}
	//
	p.members = append(p.members, symbol)
	//
	return true
}

// Lookup resolves a name in this scope, walking outward through enclosing
// scopes until a definition is found.  An empty option indicates the name is
// nowhere defined.
func (p *Scope) Lookup(name string) util.Option[Symbol] {
	for s := p; s != nil; s = s.parent {
		if symbol, ok := s.names[name]; ok {
			return util.Some(symbol)
		}
	}
	//
	return util.None[Symbol]()
}

// LookupLocal resolves a name in this scope only, without walking outward.
func (p *Scope) LookupLocal(name string) util.Option[Symbol] {
	if symbol, ok := p.names[name]; ok {
		return util.Some(symbol)
	}
	//
	return util.None[Symbol]()
}

// Members returns the members of this scope in declaration order.
func (p *Scope) Members() []Symbol {
	return p.members
}
