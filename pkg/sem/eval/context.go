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
package eval

import (
	log "github.com/sirupsen/logrus"
	"github.com/verilite/go-verilite/pkg/logic"
	"github.com/verilite/go-verilite/pkg/sem"
	"github.com/verilite/go-verilite/pkg/util"
	"github.com/verilite/go-verilite/pkg/util/collection/stack"
	"github.com/verilite/go-verilite/pkg/util/collection/typed"
	"github.com/verilite/go-verilite/pkg/util/source"
)

// Options consumed from the compilation's options bag.
var (
	// StepLimitKey overrides the number of expression nodes a single
	// evaluation request may visit before tripping the budget.
	StepLimitKey = typed.NewKey[uint64]("eval-steps")
	// MaxDepthKey overrides the number of call frames a single evaluation
	// request may stack before tripping the budget.
	MaxDepthKey = typed.NewKey[uint]("eval-depth")
)

const (
	// DEFAULT_STEP_LIMIT bounds evaluation when no explicit limit is
	// configured.
	DEFAULT_STEP_LIMIT = uint64(1) << 20
	// DEFAULT_MAX_DEPTH bounds call recursion when no explicit limit is
	// configured.
	DEFAULT_MAX_DEPTH = uint(128)
)

// Frame is a single subroutine activation record, binding values against the
// formal parameters of the callee.
type Frame struct {
	// Subroutine this frame activates.
	subroutine *sem.SubroutineSymbol
	// Bound parameter values.
	locals map[*sem.ParameterSymbol]logic.Value
}

// Subroutine returns the subroutine this frame activates.
func (p *Frame) Subroutine() *sem.SubroutineSymbol {
	return p.subroutine
}

// Context holds the mutable state of one constant-evaluation request: the
// call frame stack, the step and recursion budgets, and the diagnostic sink.
// A context is created per evaluation request and must never be shared across
// concurrent evaluations.  Nested (reentrant) evaluation on the same context
// is fine, and shares the budget, which is exactly what bounds runaway
// recursive constant expressions.
type Context struct {
	// Call frames, innermost on top.
	frames *stack.Stack[*Frame]
	// Expression nodes visited so far by this request.
	steps uint64
	// Budget on visited nodes.
	stepLimit uint64
	// Budget on stacked call frames.
	maxDepth uint
	// Set once the budget has tripped, so it is only diagnosed once.
	exhausted bool
	// Sink for diagnostics raised during evaluation.
	diags *source.Diagnostics
	// Options bag this context was configured from, which may be nil.
	options *typed.Bag
}

// NewContext constructs a fresh evaluation context reporting into the given
// sink, with budgets taken from the given options bag (which may be nil).
func NewContext(diags *source.Diagnostics, options *typed.Bag) *Context {
	var (
		stepLimit = DEFAULT_STEP_LIMIT
		maxDepth  = DEFAULT_MAX_DEPTH
	)
	//
	if options != nil {
		stepLimit = typed.GetOrDefault(options, StepLimitKey, stepLimit)
		maxDepth = typed.GetOrDefault(options, MaxDepthKey, maxDepth)
	}
	//
	return &Context{stack.NewStack[*Frame](), 0, stepLimit, maxDepth, false, diags, options}
}

// Diagnostics returns the sink this context reports into.
func (p *Context) Diagnostics() *source.Diagnostics {
	return p.diags
}

// Options returns the options bag this context was configured from, which
// may be nil.
func (p *Context) Options() *typed.Bag {
	return p.options
}

// Depth returns the number of call frames currently stacked.
func (p *Context) Depth() uint {
	return p.frames.Len()
}

// PushFrame activates a new frame for the given subroutine, failing when the
// recursion budget is exhausted.
func (p *Context) PushFrame(subroutine *sem.SubroutineSymbol) bool {
	if p.frames.Len() >= p.maxDepth {
		return false
	}
	//
	log.Debugf("evaluating call of %q at depth %d", subroutine.Name(), p.frames.Len())
	//
	p.frames.Push(&Frame{subroutine, make(map[*sem.ParameterSymbol]logic.Value)})
	//
	return true
}

// PopFrame deactivates the innermost frame.
func (p *Context) PopFrame() {
	p.frames.Pop()
}

// Bind records a parameter value in the innermost frame.
func (p *Context) Bind(param *sem.ParameterSymbol, value logic.Value) {
	p.frames.Top().locals[param] = value
}

// Lookup resolves a parameter in the innermost frame.  An empty option means
// the parameter is not bound in the current activation, i.e. the expression
// is not constant in this context.
func (p *Context) Lookup(param *sem.ParameterSymbol) util.Option[logic.Value] {
	if !p.frames.IsEmpty() {
		if value, ok := p.frames.Top().locals[param]; ok {
			return util.Some(value)
		}
	}
	//
	return util.None[logic.Value]()
}

// step consumes one unit of the evaluation budget, returning false once the
// budget is exhausted.
func (p *Context) step() bool {
	if p.steps >= p.stepLimit {
		return false
	}
	//
	p.steps++
	//
	return true
}
