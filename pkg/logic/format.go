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
	"strings"
)

// Radix identifies the base in which a vector is rendered as text.
type Radix uint8

const (
	// BINARY base, one digit per bit.
	BINARY Radix = 2
	// OCTAL base, one digit per three bits.
	OCTAL Radix = 8
	// DECIMAL base.
	DECIMAL Radix = 10
	// HEX base, one digit per four bits.
	HEX Radix = 16
)

// String returns the conventional name for this radix.
func (r Radix) String() string {
	switch r {
	case BINARY:
		return "binary"
	case OCTAL:
		return "octal"
	case DECIMAL:
		return "decimal"
	case HEX:
		return "hexadecimal"
	}
	//
	panic("unknown radix")
}

const digits = "0123456789abcdef"

// Format renders this vector as text in the given radix.  Decimal rendering
// is numeric: signed vectors print a leading minus, and no implicit padding
// is applied.  The power-of-two radixes render the full digit width of the
// vector, one digit per bit group, with unknown groups rendered as x/z (or
// X/Z when the group is only partially unknown).  A non-zero minWidth pads
// the result on the left, using zeroes when padZero is set and spaces
// otherwise.
func (p Value) Format(radix Radix, minWidth int, padZero bool) string {
	var text string
	//
	if radix == DECIMAL {
		text = p.formatDecimal()
	} else {
		text = p.formatGrouped(radix)
	}
	// Apply any explicit field width.
	if pad := minWidth - len(text); pad > 0 {
		if padZero {
			text = strings.Repeat("0", pad) + text
		} else {
			text = strings.Repeat(" ", pad) + text
		}
	}
	//
	return text
}

// formatDecimal renders the numeric interpretation of the vector.  A vector
// with unknown bits has no numeric interpretation, and instead renders as a
// single x or z digit (uppercase when only some bits are unknown).
func (p Value) formatDecimal() string {
	if !p.HasUnknown() {
		return p.BigInt().Unwrap().String()
	}
	//
	return string(unknownDigit(p.xplane, p.zplane, mask(p.width)))
}

// formatGrouped renders the vector one digit per group of bits, most
// significant group first, for the power-of-two radixes.
func (p Value) formatGrouped(radix Radix) string {
	var (
		builder strings.Builder
		shift   uint
	)
	//
	switch radix {
	case BINARY:
		shift = 1
	case OCTAL:
		shift = 3
	case HEX:
		shift = 4
	default:
		panic("unknown radix")
	}
	// Number of digits needed to cover the vector.
	n := (p.width + shift - 1) / shift
	//
	for i := int(n) - 1; i >= 0; i-- {
		var (
			lo     = uint(i) * shift
			hi     = min(lo+shift, p.width)
			group  = extract(mask(hi-lo), lo, p.bits)
			xgroup = extract(mask(hi-lo), lo, p.xplane)
			zgroup = extract(mask(hi-lo), lo, p.zplane)
		)
		//
		if xgroup.Sign() == 0 {
			builder.WriteByte(digits[group.Uint64()])
		} else {
			builder.WriteByte(unknownDigit(xgroup, zgroup, mask(hi-lo)))
		}
	}
	//
	return builder.String()
}

// unknownDigit determines the placeholder digit for a bit group containing
// unknown bits: x when every bit is X, z when every bit is Z, and the
// corresponding uppercase form when the group is mixed.
func unknownDigit(xgroup *big.Int, zgroup *big.Int, groupMask *big.Int) byte {
	switch {
	case zgroup.Cmp(groupMask) == 0:
		return 'z'
	case xgroup.Cmp(groupMask) == 0 && zgroup.Sign() == 0:
		return 'x'
	case zgroup.Sign() == 0:
		return 'X'
	}
	//
	return 'Z'
}

// extract pulls out the bits of a plane selected by the given mask, starting
// at the given offset.
func extract(groupMask *big.Int, offset uint, plane *big.Int) *big.Int {
	group := new(big.Int).Rsh(plane, offset)
	return group.And(group, groupMask)
}
