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
	"fmt"

	"github.com/verilite/go-verilite/pkg/logic"
)

// Type describes the type of an expression or declaration.  Types are built
// once during elaboration and are immutable thereafter, with the single
// exception of alias targets which resolve lazily (see AliasType).
type Type interface {
	// Name returns the declared name of this type.
	Name() string
	// IsIntegral checks whether this type is a packed integral type (which
	// includes enumerations via their base type).
	IsIntegral() bool
	// IsString checks whether this type is the string type.
	IsString() bool
	// IsReal checks whether this type is a floating-point type.
	IsReal() bool
}

// ============================================================================
// Integral types
// ============================================================================

// IntegralType is a packed integer type of a fixed width and signedness,
// along with the radix in which its values render by default.
type IntegralType struct {
	name string
	// Number of bits.
	width uint
	// Two's complement interpretation, or not.
	signed bool
	// Whether bits of this type can hold X / Z.
	fourState bool
	// Radix used when values of this type are rendered without an explicit
	// conversion.
	radix logic.Radix
}

// NewIntegralType constructs a packed integral type.
func NewIntegralType(name string, width uint, signed bool, fourState bool, radix logic.Radix) *IntegralType {
	return &IntegralType{name, width, signed, fourState, radix}
}

// Predefined integral types.
var (
	// BIT is the predefined two-state single bit type.
	BIT = NewIntegralType("bit", 1, false, false, logic.BINARY)
	// INT is the predefined two-state 32-bit signed type.
	INT = NewIntegralType("int", 32, true, false, logic.DECIMAL)
	// INTEGER is the predefined four-state 32-bit signed type.
	INTEGER = NewIntegralType("integer", 32, true, true, logic.DECIMAL)
)

// Name returns the declared name of this type.
func (p *IntegralType) Name() string { return p.name }

// IsIntegral checks whether this type is a packed integral type.
func (p *IntegralType) IsIntegral() bool { return true }

// IsString checks whether this type is the string type.
func (p *IntegralType) IsString() bool { return false }

// IsReal checks whether this type is a floating-point type.
func (p *IntegralType) IsReal() bool { return false }

// Width returns the number of bits in this type.
func (p *IntegralType) Width() uint { return p.width }

// IsSigned checks whether values of this type use a two's complement
// interpretation.
func (p *IntegralType) IsSigned() bool { return p.signed }

// IsFourState checks whether bits of this type can hold X / Z.
func (p *IntegralType) IsFourState() bool { return p.fourState }

// DefaultRadix returns the radix in which values of this type render when no
// explicit conversion is given.
func (p *IntegralType) DefaultRadix() logic.Radix { return p.radix }

// ============================================================================
// String / real / void
// ============================================================================

// StringType is the dynamic text type.
type StringType struct{}

// RealType is the double-precision floating point type.
type RealType struct{}

// VoidType is the type of constructs which yield no value.
type VoidType struct{}

// Predefined singleton types.
var (
	// STRING is the predefined dynamic text type.
	STRING = &StringType{}
	// REAL is the predefined floating point type.
	REAL = &RealType{}
	// VOID is the predefined empty type.
	VOID = &VoidType{}
)

// Name returns the declared name of this type.
func (p *StringType) Name() string { return "string" }

// IsIntegral checks whether this type is a packed integral type.
func (p *StringType) IsIntegral() bool { return false }

// IsString checks whether this type is the string type.
func (p *StringType) IsString() bool { return true }

// IsReal checks whether this type is a floating-point type.
func (p *StringType) IsReal() bool { return false }

// Name returns the declared name of this type.
func (p *RealType) Name() string { return "real" }

// IsIntegral checks whether this type is a packed integral type.
func (p *RealType) IsIntegral() bool { return false }

// IsString checks whether this type is the string type.
func (p *RealType) IsString() bool { return false }

// IsReal checks whether this type is a floating-point type.
func (p *RealType) IsReal() bool { return true }

// Name returns the declared name of this type.
func (p *VoidType) Name() string { return "void" }

// IsIntegral checks whether this type is a packed integral type.
func (p *VoidType) IsIntegral() bool { return false }

// IsString checks whether this type is the string type.
func (p *VoidType) IsString() bool { return false }

// IsReal checks whether this type is a floating-point type.
func (p *VoidType) IsReal() bool { return false }

// ============================================================================
// Enumerations
// ============================================================================

// EnumType is an enumerated type over an integral base type.
type EnumType struct {
	name string
	// Base type determining width, signedness and rendering.
	base *IntegralType
	// Members in declaration order.
	members []*EnumValueSymbol
}

// NewEnumType constructs an enumerated type with the given base.  Members are
// attached as they are elaborated.
func NewEnumType(name string, base *IntegralType) *EnumType {
	return &EnumType{name, base, nil}
}

// Name returns the declared name of this type.
func (p *EnumType) Name() string { return p.name }

// IsIntegral checks whether this type is a packed integral type.  An
// enumeration is integral via its base type.
func (p *EnumType) IsIntegral() bool { return true }

// IsString checks whether this type is the string type.
func (p *EnumType) IsString() bool { return false }

// IsReal checks whether this type is a floating-point type.
func (p *EnumType) IsReal() bool { return false }

// Base returns the integral base type of this enumeration.
func (p *EnumType) Base() *IntegralType { return p.base }

// DefaultRadix returns the radix of the base type.
func (p *EnumType) DefaultRadix() logic.Radix { return p.base.DefaultRadix() }

// Members returns the members of this enumeration in declaration order.
func (p *EnumType) Members() []*EnumValueSymbol { return p.members }

// AddMember attaches a member to this enumeration.
func (p *EnumType) AddMember(member *EnumValueSymbol) {
	p.members = append(p.members, member)
}

// ============================================================================
// Arrays
// ============================================================================

// ArrayType is a fixed-bound array over some element type.
type ArrayType struct {
	element Type
	// Inclusive bounds.
	lo int64
	hi int64
}

// NewArrayType constructs an array type over the given element type and
// inclusive bounds.
func NewArrayType(element Type, lo int64, hi int64) *ArrayType {
	return &ArrayType{element, lo, hi}
}

// Name returns the declared name of this type.
func (p *ArrayType) Name() string {
	return fmt.Sprintf("%s[%d:%d]", p.element.Name(), p.lo, p.hi)
}

// IsIntegral checks whether this type is a packed integral type.
func (p *ArrayType) IsIntegral() bool { return false }

// IsString checks whether this type is the string type.
func (p *ArrayType) IsString() bool { return false }

// IsReal checks whether this type is a floating-point type.
func (p *ArrayType) IsReal() bool { return false }

// Element returns the element type of this array.
func (p *ArrayType) Element() Type { return p.element }

// Bounds returns the inclusive bounds of this array.
func (p *ArrayType) Bounds() (int64, int64) { return p.lo, p.hi }

// ============================================================================
// Aliases
// ============================================================================

// resolution tracks the lazy resolution state of an alias target.
type resolution uint8

const (
	// UNRESOLVED indicates alias resolution has not been attempted yet.
	UNRESOLVED resolution = iota
	// RESOLVING indicates alias resolution is currently in progress.
	// Re-entering an alias in this state is a definite cycle.
	RESOLVING
	// RESOLVED indicates the canonical target has been determined.
	RESOLVED
)

// AliasType is a named handle onto another type.  Since typedef declarations
// may refer forwards, the target is attached after construction and chains of
// aliases resolve lazily.  Resolution detects genuine cycles (a typedef chain
// which loops back on itself) and reports them, rather than looping forever.
type AliasType struct {
	name string
	// Declared target, possibly itself an alias.
	target Type
	// Resolution state of this alias.
	state resolution
	// Canonical (non-alias) target, once resolved.
	canonical Type
}

// NewAliasType constructs an alias with no target yet.
func NewAliasType(name string) *AliasType {
	return &AliasType{name, nil, UNRESOLVED, nil}
}

// SetTarget attaches the declared target of this alias, resetting any
// previous resolution.
func (p *AliasType) SetTarget(target Type) {
	p.target = target
	p.state = UNRESOLVED
	p.canonical = nil
}

// Target returns the declared target of this alias, which may itself be an
// alias (or nil for a forward declaration not yet completed).
func (p *AliasType) Target() Type { return p.target }

// Resolve determines the canonical (non-alias) type this alias denotes.  This
// fails either when the alias chain loops back on itself, or when a forward
// declaration was never completed.
func (p *AliasType) Resolve() (Type, error) {
	switch p.state {
	case RESOLVED:
		return p.canonical, nil
	case RESOLVING:
		return nil, fmt.Errorf("typedef %s is part of a resolution cycle", p.name)
	}
	//
	if p.target == nil {
		return nil, fmt.Errorf("typedef %s has no target", p.name)
	}
	// Mark in progress so a cyclic chain trips the check above.
	p.state = RESOLVING
	//
	canonical := p.target
	//
	if alias, ok := canonical.(*AliasType); ok {
		var err error
		//
		if canonical, err = alias.Resolve(); err != nil {
			p.state = UNRESOLVED
			return nil, err
		}
	}
	//
	p.state = RESOLVED
	p.canonical = canonical
	//
	return canonical, nil
}

// Name returns the declared name of this type.
func (p *AliasType) Name() string { return p.name }

// IsIntegral checks whether the canonical target is a packed integral type.
// An unresolvable alias is not integral.
func (p *AliasType) IsIntegral() bool {
	if t, err := p.Resolve(); err == nil {
		return t.IsIntegral()
	}
	//
	return false
}

// IsString checks whether the canonical target is the string type.
func (p *AliasType) IsString() bool {
	if t, err := p.Resolve(); err == nil {
		return t.IsString()
	}
	//
	return false
}

// IsReal checks whether the canonical target is a floating-point type.
func (p *AliasType) IsReal() bool {
	if t, err := p.Resolve(); err == nil {
		return t.IsReal()
	}
	//
	return false
}
