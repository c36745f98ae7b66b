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
package logic

import (
	"math/big"

	"github.com/verilite/go-verilite/pkg/util"
)

// Value is an arbitrary-width, four-state logic vector with a declared
// signedness.  Each bit of the vector is either 0, 1, unknown (X) or
// high-impedance (Z).  The vector is represented using three bit planes: the
// value plane holds known bits; the unknown plane marks bits which are X or
// Z; and the impedance plane marks the subset of unknown bits which are Z.
//
// Values are immutable.  All operations return fresh values and leave their
// operands untouched, hence values can be freely shared (e.g. between call
// frames during evaluation).
type Value struct {
	// Number of bits in this vector.
	width uint
	// Whether the vector is interpreted as a two's complement quantity.
	signed bool
	// Value plane, held as a non-negative integer masked to the width.
	bits *big.Int
	// Unknown plane marking bits which are X or Z.
	xplane *big.Int
	// Impedance plane marking bits which are Z.  Always a subset of the
	// unknown plane.
	zplane *big.Int
}

// New constructs a zero vector of the given width and signedness.
func New(width uint, signed bool) Value {
	return Value{width, signed, big.NewInt(0), big.NewInt(0), big.NewInt(0)}
}

// FromUint64 constructs a fully-known vector of the given width holding the
// given (truncated) value.
func FromUint64(value uint64, width uint, signed bool) Value {
	return FromBigInt(new(big.Int).SetUint64(value), width, signed)
}

// FromInt64 constructs a fully-known vector of the given width holding the
// given (truncated) value, with negative values wrapped as two's complement.
func FromInt64(value int64, width uint, signed bool) Value {
	return FromBigInt(big.NewInt(value), width, signed)
}

// FromBigInt constructs a fully-known vector of the given width holding the
// given value.  Negative values are wrapped as two's complement, and values
// wider than the vector are truncated.
func FromBigInt(value *big.Int, width uint, signed bool) Value {
	bits := new(big.Int).And(value, mask(width))
	//
	if value.Sign() < 0 {
		// Wrap around as two's complement.
		bits.Add(value, modulus(width))
		bits.And(bits, mask(width))
	}
	//
	return Value{width, signed, bits, big.NewInt(0), big.NewInt(0)}
}

// FromString constructs an unsigned vector holding the bytes of the given
// text, most significant byte first, as string literals behave in hardware
// description languages.  The empty string is represented as a single zero
// byte.
func FromString(text string) Value {
	var (
		bytes = []byte(text)
		width = uint(8 * max(1, len(bytes)))
	)
	//
	return Value{width, false, new(big.Int).SetBytes(bytes), big.NewInt(0), big.NewInt(0)}
}

// AllX constructs a vector of the given width in which every bit is unknown.
func AllX(width uint, signed bool) Value {
	return Value{width, signed, big.NewInt(0), mask(width), big.NewInt(0)}
}

// AllZ constructs a vector of the given width in which every bit is high
// impedance.
func AllZ(width uint, signed bool) Value {
	return Value{width, signed, big.NewInt(0), mask(width), mask(width)}
}

// Width returns the number of bits in this vector.
func (p Value) Width() uint {
	return p.width
}

// IsSigned indicates whether this vector is interpreted as a two's complement
// quantity.
func (p Value) IsSigned() bool {
	return p.signed
}

// HasUnknown checks whether any bit of this vector is X or Z.
func (p Value) HasUnknown() bool {
	return p.xplane.Sign() != 0
}

// IsZero checks whether this vector is fully known and zero.
func (p Value) IsZero() bool {
	return !p.HasUnknown() && p.bits.Sign() == 0
}

// BigInt returns the numeric interpretation of this vector, or an empty
// option when any bit is unknown.  Signed vectors with the top bit set yield
// negative values.
func (p Value) BigInt() util.Option[*big.Int] {
	if p.HasUnknown() {
		return util.None[*big.Int]()
	}
	//
	val := new(big.Int).Set(p.bits)
	// Apply two's complement interpretation.
	if p.signed && p.width > 0 && p.bits.Bit(int(p.width-1)) == 1 {
		val.Sub(val, modulus(p.width))
	}
	//
	return util.Some(val)
}

// Uint64 returns the numeric interpretation of this vector as an unsigned
// machine word, or an empty option when any bit is unknown or the value does
// not fit.
func (p Value) Uint64() util.Option[uint64] {
	if val := p.BigInt(); val.HasValue() && val.Unwrap().IsUint64() {
		return util.Some(val.Unwrap().Uint64())
	}
	//
	return util.None[uint64]()
}

// AsString interprets this vector as packed text, most significant byte
// first, skipping leading zero bytes.  Unknown bits decode as zero bytes.
func (p Value) AsString() string {
	bytes := p.bits.Bytes()
	// Strip leading NULs (big.Int.Bytes already omits leading zero bytes,
	// but an all-zero vector yields no bytes at all).
	return string(bytes)
}

// Add returns the sum of this vector and another.  The result width is the
// larger of the two operand widths, and the result is signed only when both
// operands are signed.  Any unknown operand bit makes the entire result
// unknown.
func (p Value) Add(o Value) Value {
	return p.arith(o, func(l, r *big.Int) *big.Int { return new(big.Int).Add(l, r) })
}

// Sub returns the difference of this vector and another, under the same
// width, signedness and unknown-propagation rules as Add.
func (p Value) Sub(o Value) Value {
	return p.arith(o, func(l, r *big.Int) *big.Int { return new(big.Int).Sub(l, r) })
}

// Mul returns the product of this vector and another, under the same width,
// signedness and unknown-propagation rules as Add.
func (p Value) Mul(o Value) Value {
	return p.arith(o, func(l, r *big.Int) *big.Int { return new(big.Int).Mul(l, r) })
}

// Div returns the quotient of this vector and another, truncating towards
// zero.  Division by zero yields an all-unknown result, as do unknown
// operand bits.
func (p Value) Div(o Value) Value {
	if o.IsZero() {
		return AllX(max(p.width, o.width), p.signed && o.signed)
	}
	//
	return p.arith(o, func(l, r *big.Int) *big.Int { return new(big.Int).Quo(l, r) })
}

// Neg returns the two's complement negation of this vector.  Any unknown bit
// makes the entire result unknown.
func (p Value) Neg() Value {
	if p.HasUnknown() {
		return AllX(p.width, p.signed)
	}
	//
	return FromBigInt(new(big.Int).Neg(p.BigInt().Unwrap()), p.width, p.signed)
}

// Cmp compares the numeric interpretations of this vector and another,
// returning a negative, zero or positive ordering.  The result is empty when
// either operand has unknown bits, since no ordering is then defined.
func (p Value) Cmp(o Value) util.Option[int] {
	var (
		lhs = p.BigInt()
		rhs = o.BigInt()
	)
	//
	if lhs.IsEmpty() || rhs.IsEmpty() {
		return util.None[int]()
	}
	//
	return util.Some(lhs.Unwrap().Cmp(rhs.Unwrap()))
}

// String returns the default (decimal) rendering of this vector.
func (p Value) String() string {
	return p.Format(DECIMAL, 0, false)
}

// arith implements the shared shape of the binary arithmetic operations.
func (p Value) arith(o Value, fn func(*big.Int, *big.Int) *big.Int) Value {
	var (
		width  = max(p.width, o.width)
		signed = p.signed && o.signed
	)
	//
	if p.HasUnknown() || o.HasUnknown() {
		return AllX(width, signed)
	}
	//
	return FromBigInt(fn(p.BigInt().Unwrap(), o.BigInt().Unwrap()), width, signed)
}

// mask returns 2^width - 1.
func mask(width uint) *big.Int {
	m := modulus(width)
	return m.Sub(m, big.NewInt(1))
}

// modulus returns 2^width.
func modulus(width uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), width)
}
