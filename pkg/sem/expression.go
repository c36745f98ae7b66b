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
	"github.com/verilite/go-verilite/pkg/logic"
	"github.com/verilite/go-verilite/pkg/util/source"
)

// Expr is a resolved, typed expression node.  Expressions are built during
// binding, are immutable thereafter, and are owned by the compilation-wide
// arena.  Constant evaluation of expressions is handled separately (see
// sem/eval), keeping the expression graph itself free of evaluation state.
type Expr interface {
	// Type returns the type of this expression.
	Type() Type
	// Location returns the span of this expression in its originating source
	// file.
	Location() source.Span
}

// expr provides the common payload embedded by every concrete expression.
type expr struct {
	span source.Span
}

// Location returns the span of this expression in its originating source
// file.
func (p *expr) Location() source.Span {
	return p.span
}

// ============================================================================
// Literals
// ============================================================================

// IntegerLiteral is a literal logic vector, e.g. an integer or based literal.
type IntegerLiteral struct {
	expr
	Value logic.Value
}

// NewIntegerLiteral constructs an integer literal holding the given vector.
func NewIntegerLiteral(span source.Span, value logic.Value) *IntegerLiteral {
	return &IntegerLiteral{expr{span}, value}
}

// Type returns the type of this expression: an anonymous integral type
// matching the vector's width and signedness.
func (p *IntegerLiteral) Type() Type {
	return NewIntegralType("", p.Value.Width(), p.Value.IsSigned(), false, logic.DECIMAL)
}

// StringLiteral is a literal text value.
type StringLiteral struct {
	expr
	Value string
}

// NewStringLiteral constructs a string literal.
func NewStringLiteral(span source.Span, value string) *StringLiteral {
	return &StringLiteral{expr{span}, value}
}

// Type returns the type of this expression.
func (p *StringLiteral) Type() Type {
	return STRING
}

// RealLiteral is a literal floating-point value.
type RealLiteral struct {
	expr
	Value float64
}

// NewRealLiteral constructs a real literal.
func NewRealLiteral(span source.Span, value float64) *RealLiteral {
	return &RealLiteral{expr{span}, value}
}

// Type returns the type of this expression.
func (p *RealLiteral) Type() Type {
	return REAL
}

// ============================================================================
// Named values
// ============================================================================

// NamedValue is a resolved reference to a value-yielding symbol: either a
// subroutine parameter or an enum member.
type NamedValue struct {
	expr
	Symbol Symbol
}

// NewNamedValue constructs a reference to the given symbol.
func NewNamedValue(span source.Span, symbol Symbol) *NamedValue {
	return &NamedValue{expr{span}, symbol}
}

// Type returns the type of this expression, as determined by the referenced
// symbol.
func (p *NamedValue) Type() Type {
	switch s := p.Symbol.(type) {
	case *ParameterSymbol:
		return s.Type()
	case *EnumValueSymbol:
		return s.Type()
	}
	//
	return VOID
}

// ============================================================================
// Operators
// ============================================================================

// UnaryOp identifies a unary operator.
type UnaryOp uint8

const (
	// PLUS is the identity operator.
	PLUS UnaryOp = iota
	// MINUS is two's complement negation.
	MINUS
)

// UnaryExpr applies a unary operator to an operand.
type UnaryExpr struct {
	expr
	Op      UnaryOp
	Operand Expr
}

// NewUnaryExpr constructs a unary expression.
func NewUnaryExpr(span source.Span, op UnaryOp, operand Expr) *UnaryExpr {
	return &UnaryExpr{expr{span}, op, operand}
}

// Type returns the type of this expression.
func (p *UnaryExpr) Type() Type {
	return p.Operand.Type()
}

// BinaryOp identifies a binary operator.
type BinaryOp uint8

const (
	// ADD is addition.
	ADD BinaryOp = iota
	// SUB is subtraction.
	SUB
	// MUL is multiplication.
	MUL
	// DIV is division, truncating towards zero.
	DIV
	// EQ is the equality comparison.
	EQ
	// NEQ is the inequality comparison.
	NEQ
	// LT is the less-than comparison.
	LT
	// LTEQ is the less-than-or-equal comparison.
	LTEQ
	// GT is the greater-than comparison.
	GT
	// GTEQ is the greater-than-or-equal comparison.
	GTEQ
)

// IsComparison checks whether this operator yields a single-bit truth value.
func (op BinaryOp) IsComparison() bool {
	return op >= EQ
}

// BinaryExpr applies a binary operator to two operands.
type BinaryExpr struct {
	expr
	Op  BinaryOp
	Lhs Expr
	Rhs Expr
}

// NewBinaryExpr constructs a binary expression.
func NewBinaryExpr(span source.Span, op BinaryOp, lhs Expr, rhs Expr) *BinaryExpr {
	return &BinaryExpr{expr{span}, op, lhs, rhs}
}

// Type returns the type of this expression.  Comparisons yield a single bit;
// arithmetic yields the wider of the two operand types.
func (p *BinaryExpr) Type() Type {
	if p.Op.IsComparison() {
		return BIT
	}
	// Prefer the wider integral operand.
	lhs, lok := p.Lhs.Type().(*IntegralType)
	rhs, rok := p.Rhs.Type().(*IntegralType)
	//
	if lok && rok && rhs.Width() > lhs.Width() {
		return rhs
	}
	//
	return p.Lhs.Type()
}

// ============================================================================
// Conditionals, calls, conversions
// ============================================================================

// ConditionalExpr is a ternary selection between two alternatives.
type ConditionalExpr struct {
	expr
	Condition Expr
	TrueExpr  Expr
	FalseExpr Expr
}

// NewConditionalExpr constructs a conditional expression.
func NewConditionalExpr(span source.Span, cond Expr, trueExpr Expr, falseExpr Expr) *ConditionalExpr {
	return &ConditionalExpr{expr{span}, cond, trueExpr, falseExpr}
}

// Type returns the type of this expression.
func (p *ConditionalExpr) Type() Type {
	return p.TrueExpr.Type()
}

// CallExpr is a resolved call of a subroutine with bound arguments.
type CallExpr struct {
	expr
	Callee *SubroutineSymbol
	Args   []Expr
}

// NewCallExpr constructs a call expression.
func NewCallExpr(span source.Span, callee *SubroutineSymbol, args []Expr) *CallExpr {
	return &CallExpr{expr{span}, callee, args}
}

// Type returns the declared return type of the callee.
func (p *CallExpr) Type() Type {
	return p.Callee.Return()
}

// ConversionExpr converts an operand to another type.
type ConversionExpr struct {
	expr
	Operand Expr
	Target  Type
}

// NewConversionExpr constructs a conversion expression.
func NewConversionExpr(span source.Span, operand Expr, target Type) *ConversionExpr {
	return &ConversionExpr{expr{span}, operand, target}
}

// Type returns the target type of the conversion.
func (p *ConversionExpr) Type() Type {
	return p.Target
}

// ============================================================================
// Invalid
// ============================================================================

// InvalidExpr is the poison node produced when binding fails.  It allows
// binding to continue (maximising diagnostics per pass) whilst guaranteeing
// that any attempt to evaluate the malformed construct is a hard failure
// rather than a silent wrong answer.
type InvalidExpr struct {
	expr
}

// NewInvalidExpr constructs an invalid expression covering the given span.
func NewInvalidExpr(span source.Span) *InvalidExpr {
	return &InvalidExpr{expr{span}}
}

// Type returns the type of this expression.
func (p *InvalidExpr) Type() Type {
	return VOID
}
