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
	"github.com/verilite/go-verilite/pkg/logic"
	"github.com/verilite/go-verilite/pkg/sem"
)

// Result classifies the outcome of a constant evaluation.
type Result uint8

const (
	// OK indicates the expression folded to a definite value.
	OK Result = iota
	// NOT_CONSTANT indicates the expression is well-formed but cannot be
	// resolved to a compile-time constant.  This is a normal, recoverable
	// outcome.
	NOT_CONSTANT
	// FATAL indicates the expression is malformed, or evaluation diverged
	// (budget exhausted).  Callers must treat the bind as failed.
	FATAL
)

// worst combines two results, keeping the more severe.
func (r Result) worst(o Result) Result {
	return max(r, o)
}

// Evaluate attempts to fold the given expression to a compile-time constant
// within the given context.  Three outcomes are possible: a definite value;
// a definite "not constant" (e.g. the expression references a runtime
// quantity), which is normal and recoverable; or a hard failure (malformed
// expression, or a step/recursion budget trip, which is diagnosed at the
// originating expression's location).  Evaluation is deterministic and
// reentrant-safe: folding a call evaluates the callee's body recursively
// within the same context's frame stack.
func Evaluate(e sem.Expr, ctx *Context) (logic.Value, Result) {
	// Consume budget per visited node, so malicious or erroneous recursive
	// constants terminate with a diagnostic rather than exhausting the
	// process.
	if !ctx.step() {
		if !ctx.exhausted {
			ctx.exhausted = true
			ctx.diags.Errorf(nil, e.Location(), "constant expression exceeded evaluation budget")
		}
		//
		return logic.Value{}, FATAL
	}
	//
	switch e := e.(type) {
	case *sem.IntegerLiteral:
		return e.Value, OK
	case *sem.StringLiteral:
		return logic.FromString(e.Value), OK
	case *sem.RealLiteral:
		// Reals live outside the logic-vector model; format binding handles
		// literal reals directly.
		return logic.Value{}, NOT_CONSTANT
	case *sem.NamedValue:
		return evaluateNamedValue(e, ctx)
	case *sem.UnaryExpr:
		return evaluateUnary(e, ctx)
	case *sem.BinaryExpr:
		return evaluateBinary(e, ctx)
	case *sem.ConditionalExpr:
		return evaluateConditional(e, ctx)
	case *sem.CallExpr:
		return evaluateCall(e, ctx)
	case *sem.ConversionExpr:
		return evaluateConversion(e, ctx)
	case *sem.InvalidExpr:
		// Already diagnosed when binding produced the poison node.
		return logic.Value{}, FATAL
	}
	//
	return logic.Value{}, NOT_CONSTANT
}

// evaluateNamedValue resolves a reference to a parameter or enum member.  A
// parameter without a binding in the current activation is simply not a
// constant.
func evaluateNamedValue(e *sem.NamedValue, ctx *Context) (logic.Value, Result) {
	switch s := e.Symbol.(type) {
	case *sem.ParameterSymbol:
		if value := ctx.Lookup(s); value.HasValue() {
			return value.Unwrap(), OK
		}
	case *sem.EnumValueSymbol:
		return s.Value(), OK
	}
	//
	return logic.Value{}, NOT_CONSTANT
}

func evaluateUnary(e *sem.UnaryExpr, ctx *Context) (logic.Value, Result) {
	operand, result := Evaluate(e.Operand, ctx)
	//
	if result != OK {
		return logic.Value{}, result
	}
	//
	if e.Op == sem.MINUS {
		return operand.Neg(), OK
	}
	//
	return operand, OK
}

func evaluateBinary(e *sem.BinaryExpr, ctx *Context) (logic.Value, Result) {
	lhs, lres := Evaluate(e.Lhs, ctx)
	rhs, rres := Evaluate(e.Rhs, ctx)
	//
	if result := lres.worst(rres); result != OK {
		return logic.Value{}, result
	}
	//
	switch e.Op {
	case sem.ADD:
		return lhs.Add(rhs), OK
	case sem.SUB:
		return lhs.Sub(rhs), OK
	case sem.MUL:
		return lhs.Mul(rhs), OK
	case sem.DIV:
		return lhs.Div(rhs), OK
	}
	// Comparison operators yield a single bit, which is unknown when either
	// operand has unknown bits.
	ordering := lhs.Cmp(rhs)
	//
	if ordering.IsEmpty() {
		return logic.AllX(1, false), OK
	}
	//
	return logic.FromUint64(compare(e.Op, ordering.Unwrap()), 1, false), OK
}

// compare maps an ordering onto the truth value of a comparison operator.
func compare(op sem.BinaryOp, ordering int) uint64 {
	var truth bool
	//
	switch op {
	case sem.EQ:
		truth = ordering == 0
	case sem.NEQ:
		truth = ordering != 0
	case sem.LT:
		truth = ordering < 0
	case sem.LTEQ:
		truth = ordering <= 0
	case sem.GT:
		truth = ordering > 0
	case sem.GTEQ:
		truth = ordering >= 0
	}
	//
	if truth {
		return 1
	}
	//
	return 0
}

// evaluateConditional selects a branch when the condition is known; an
// unknown condition yields an all-unknown result of the selected type's
// width, as four-state selection semantics dictate.
func evaluateConditional(e *sem.ConditionalExpr, ctx *Context) (logic.Value, Result) {
	cond, result := Evaluate(e.Condition, ctx)
	//
	if result != OK {
		return logic.Value{}, result
	}
	//
	if cond.HasUnknown() {
		trueValue, tres := Evaluate(e.TrueExpr, ctx)
		falseValue, fres := Evaluate(e.FalseExpr, ctx)
		//
		if result := tres.worst(fres); result != OK {
			return logic.Value{}, result
		}
		//
		return logic.AllX(max(trueValue.Width(), falseValue.Width()), false), OK
	}
	//
	if cond.IsZero() {
		return Evaluate(e.FalseExpr, ctx)
	}
	//
	return Evaluate(e.TrueExpr, ctx)
}

// evaluateCall folds a call of a pure subroutine by activating a frame,
// binding the evaluated arguments against the formal parameters, and
// evaluating the body within the same context.
func evaluateCall(e *sem.CallExpr, ctx *Context) (logic.Value, Result) {
	callee := e.Callee
	// Impure or bodiless subroutines are runtime-only.
	if !callee.IsPure() || callee.Body() == nil {
		return logic.Value{}, NOT_CONSTANT
	}
	//
	params := callee.Parameters()
	//
	if len(params) != len(e.Args) {
		// Argument binding should have rejected this call already.
		ctx.diags.Errorf(nil, e.Location(), "call of %q has %d arguments, expected %d",
			callee.Name(), len(e.Args), len(params))
		//
		return logic.Value{}, FATAL
	}
	// Arguments evaluate in the caller's frame.
	values := make([]logic.Value, len(e.Args))
	//
	for i, arg := range e.Args {
		var result Result
		//
		if values[i], result = Evaluate(arg, ctx); result != OK {
			return logic.Value{}, result
		}
	}
	//
	if !ctx.PushFrame(callee) {
		if !ctx.exhausted {
			ctx.exhausted = true
			ctx.diags.Errorf(nil, e.Location(),
				"constant expression exceeded maximum call depth")
		}
		//
		return logic.Value{}, FATAL
	}
	// Restore the caller's frame on every exit path.
	defer ctx.PopFrame()
	//
	for i, param := range params {
		ctx.Bind(param, values[i])
	}
	//
	return Evaluate(callee.Body(), ctx)
}

// evaluateConversion folds a conversion by resizing the operand to the
// target type, where the target is integral; other conversions pass the
// operand through unchanged.
func evaluateConversion(e *sem.ConversionExpr, ctx *Context) (logic.Value, Result) {
	operand, result := Evaluate(e.Operand, ctx)
	//
	if result != OK {
		return logic.Value{}, result
	}
	//
	if target, ok := e.Target.(*sem.IntegralType); ok {
		if operand.HasUnknown() {
			return logic.AllX(target.Width(), target.IsSigned()), OK
		}
		//
		return logic.FromBigInt(operand.BigInt().Unwrap(), target.Width(), target.IsSigned()), OK
	}
	//
	return operand, OK
}
