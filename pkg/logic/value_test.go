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
	"testing"
)

func TestValue_FormatDecimal(t *testing.T) {
	if got := FromUint64(7, 32, true).Format(DECIMAL, 0, false); got != "7" {
		t.Errorf("expected 7, got %s", got)
	}
}

func TestValue_FormatDecimalNegative(t *testing.T) {
	// All ones, signed, is minus one.
	if got := FromInt64(-1, 8, true).Format(DECIMAL, 0, false); got != "-1" {
		t.Errorf("expected -1, got %s", got)
	}
	// All ones, unsigned, is 255.
	if got := FromInt64(-1, 8, false).Format(DECIMAL, 0, false); got != "255" {
		t.Errorf("expected 255, got %s", got)
	}
}

func TestValue_FormatGrouped(t *testing.T) {
	tests := []struct {
		value    uint64
		width    uint
		radix    Radix
		expected string
	}{
		{255, 8, HEX, "ff"},
		{255, 8, BINARY, "11111111"},
		{255, 8, OCTAL, "377"},
		{7, 32, HEX, "00000007"},
		{5, 3, BINARY, "101"},
		{10, 4, HEX, "a"},
	}
	//
	for _, test := range tests {
		got := FromUint64(test.value, test.width, false).Format(test.radix, 0, false)
		//
		if got != test.expected {
			t.Errorf("formatting %d (width %d, %s): expected %s, got %s",
				test.value, test.width, test.radix, test.expected, got)
		}
	}
}

func TestValue_FormatPadding(t *testing.T) {
	if got := FromUint64(7, 8, false).Format(DECIMAL, 3, false); got != "  7" {
		t.Errorf("expected \"  7\", got %q", got)
	}
	//
	if got := FromUint64(7, 8, false).Format(DECIMAL, 3, true); got != "007" {
		t.Errorf("expected 007, got %q", got)
	}
}

func TestValue_FormatUnknown(t *testing.T) {
	if got := AllX(8, false).Format(HEX, 0, false); got != "xx" {
		t.Errorf("expected xx, got %s", got)
	}
	//
	if got := AllX(8, false).Format(DECIMAL, 0, false); got != "x" {
		t.Errorf("expected x, got %s", got)
	}
	//
	if got := AllZ(8, false).Format(BINARY, 0, false); got != "zzzzzzzz" {
		t.Errorf("expected zzzzzzzz, got %s", got)
	}
}

func TestValue_Add(t *testing.T) {
	sum := FromUint64(3, 8, false).Add(FromUint64(4, 8, false))
	//
	if got := sum.Uint64(); got.IsEmpty() || got.Unwrap() != 7 {
		t.Errorf("expected 7, got %v", got)
	}
}

func TestValue_AddWraps(t *testing.T) {
	sum := FromUint64(255, 8, false).Add(FromUint64(1, 8, false))
	//
	if !sum.IsZero() {
		t.Errorf("expected wrap to zero, got %s", sum)
	}
}

func TestValue_AddPropagatesUnknown(t *testing.T) {
	sum := FromUint64(3, 8, false).Add(AllX(8, false))
	//
	if !sum.HasUnknown() {
		t.Errorf("expected unknown result")
	}
}

func TestValue_DivByZero(t *testing.T) {
	quotient := FromUint64(10, 8, false).Div(FromUint64(0, 8, false))
	//
	if !quotient.HasUnknown() {
		t.Errorf("expected unknown result")
	}
}

func TestValue_CmpSigned(t *testing.T) {
	var (
		minusOne = FromInt64(-1, 8, true)
		one      = FromInt64(1, 8, true)
	)
	//
	if got := minusOne.Cmp(one); got.IsEmpty() || got.Unwrap() >= 0 {
		t.Errorf("expected -1 < 1, got %v", got)
	}
	// Unsigned interpretation reverses the ordering.
	if got := FromInt64(-1, 8, false).Cmp(FromInt64(1, 8, false)); got.Unwrap() <= 0 {
		t.Errorf("expected 255 > 1, got %v", got)
	}
}

func TestValue_CmpUnknown(t *testing.T) {
	if got := AllX(8, false).Cmp(FromUint64(1, 8, false)); got.HasValue() {
		t.Errorf("expected no ordering against unknowns")
	}
}

func TestValue_StringRoundTrip(t *testing.T) {
	value := FromString("hi")
	//
	if value.Width() != 16 {
		t.Errorf("expected width 16, got %d", value.Width())
	}
	//
	if got := value.AsString(); got != "hi" {
		t.Errorf("expected hi, got %s", got)
	}
}

func TestValue_Neg(t *testing.T) {
	if got := FromInt64(5, 8, true).Neg().Format(DECIMAL, 0, false); got != "-5" {
		t.Errorf("expected -5, got %s", got)
	}
}

func TestValue_UnknownHasNoNumber(t *testing.T) {
	if AllX(8, false).BigInt().HasValue() {
		t.Errorf("expected no numeric interpretation")
	}
	//
	if AllX(8, false).Uint64().HasValue() {
		t.Errorf("expected no machine word")
	}
}
