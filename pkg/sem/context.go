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
	"github.com/verilite/go-verilite/pkg/syntax"
	"github.com/verilite/go-verilite/pkg/util"
)

// BindingContext is the ambient pair scoping name lookup and diagnostic
// attribution whilst elaboration descends a syntax subtree: the subtree root
// being elaborated, and the symbol which owns it.  Contexts are pushed and
// popped around each descent and never persist beyond the call that set
// them; in particular, they are never stored in the semantic model's cache.
type BindingContext struct {
	// Root of the syntax subtree being elaborated.
	Root syntax.Node
	// Symbol owning the subtree.
	Owner Symbol
}

// WithBindingContext pushes an ambient binding context and returns the
// function which restores the previous context.  The restore function must
// run on every exit path of the elaboration step which pushed the context,
// including early returns from diagnosed errors; the intended usage is:
//
//	defer model.WithBindingContext(ctx)()
func (p *SemanticModel) WithBindingContext(ctx BindingContext) func() {
	p.contexts = append(p.contexts, ctx)
	//
	return func() {
		p.contexts = p.contexts[:len(p.contexts)-1]
	}
}

// BindingContext returns the innermost ambient binding context, if any is
// currently set.
func (p *SemanticModel) BindingContext() util.Option[BindingContext] {
	if n := len(p.contexts); n > 0 {
		return util.Some(p.contexts[n-1])
	}
	//
	return util.None[BindingContext]()
}
