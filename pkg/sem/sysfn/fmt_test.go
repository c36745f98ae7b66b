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
package sysfn

import (
	"testing"

	"github.com/verilite/go-verilite/pkg/logic"
	"github.com/verilite/go-verilite/pkg/sem"
	"github.com/verilite/go-verilite/pkg/sem/eval"
	"github.com/verilite/go-verilite/pkg/util/collection/typed"
	"github.com/verilite/go-verilite/pkg/util/source"
)

var span = source.NewSpan(0, 1)

func intArg(value int64) sem.Expr {
	return sem.NewIntegerLiteral(span, logic.FromInt64(value, 32, true))
}

func strArg(value string) sem.Expr {
	return sem.NewStringLiteral(span, value)
}

func newEvalContext() *eval.Context {
	return eval.NewContext(source.NewDiagnostics(false), typed.NewBag())
}

// checkFormat binds a verbatim format string against arguments which must
// all fold, and compares the folded text.
func checkFormat(t *testing.T, format string, args []sem.Expr, expected string) {
	t.Helper()
	//
	ec := newEvalContext()
	folded, ok := FormatArgs(format, span, nil, ec, args, false)
	//
	if !ok {
		t.Fatalf("bind of %q failed: %v", format, ec.Diagnostics().Items())
	} else if folded.IsEmpty() {
		t.Fatalf("bind of %q did not fold", format)
	} else if got := folded.Unwrap(); got != expected {
		t.Errorf("%q folded to %q, expected %q", format, got, expected)
	}
}

// checkFormatFails binds a format string which must be rejected with at
// least one diagnostic.
func checkFormatFails(t *testing.T, format string, args []sem.Expr) {
	t.Helper()
	//
	ec := newEvalContext()
	folded, ok := FormatArgs(format, span, nil, ec, args, false)
	//
	if ok || folded.HasValue() {
		t.Fatalf("bind of %q unexpectedly succeeded", format)
	} else if !ec.Diagnostics().HasErrors() {
		t.Errorf("failed bind of %q was not diagnosed", format)
	}
}

func TestFormat_Decimal(t *testing.T) {
	checkFormat(t, "%d", []sem.Expr{intArg(7)}, "7")
}

func TestFormat_MixedLiterals(t *testing.T) {
	checkFormat(t, "%d %s", []sem.Expr{intArg(3), strArg("x")}, "3 x")
}

func TestFormat_Radixes(t *testing.T) {
	checkFormat(t, "%h:%o:%b", []sem.Expr{intArg(255), intArg(8), intArg(5)},
		"000000ff:00000000010:00000000000000000000000000000101")
}

func TestFormat_ZeroPadWidth(t *testing.T) {
	checkFormat(t, "%05d", []sem.Expr{intArg(42)}, "00042")
}

func TestFormat_SpacePadWidth(t *testing.T) {
	checkFormat(t, "%5d", []sem.Expr{intArg(42)}, "   42")
}

func TestFormat_PercentEscape(t *testing.T) {
	checkFormat(t, "100%%", nil, "100%")
}

func TestFormat_Char(t *testing.T) {
	checkFormat(t, "%c", []sem.Expr{intArg(65)}, "A")
}

func TestFormat_StringDirective(t *testing.T) {
	checkFormat(t, "[%s]", []sem.Expr{strArg("ok")}, "[ok]")
}

func TestFormat_RealLiteral(t *testing.T) {
	ec := newEvalContext()
	args := []sem.Expr{sem.NewRealLiteral(span, 2.5)}
	folded, ok := FormatArgs("%g", span, nil, ec, args, false)
	//
	if !ok || folded.IsEmpty() {
		t.Fatalf("real literal did not fold")
	} else if got := folded.Unwrap(); got != "2.5" {
		t.Errorf("real literal folded to %q", got)
	}
}

func TestFormat_ModuleDirective(t *testing.T) {
	var (
		ec    = newEvalContext()
		scope = sem.NewRootScope("top").Enter("u0")
	)
	//
	folded, ok := FormatArgs("%m", span, scope, ec, nil, false)
	//
	if !ok || folded.IsEmpty() {
		t.Fatalf("%%m did not fold")
	} else if got := folded.Unwrap(); got != "top.u0" {
		t.Errorf("%%m folded to %q, expected top.u0", got)
	}
}

func TestFormat_TooFewArguments(t *testing.T) {
	checkFormatFails(t, "%d %d", []sem.Expr{intArg(1)})
}

func TestFormat_TooManyArguments(t *testing.T) {
	checkFormatFails(t, "%d", []sem.Expr{intArg(1), intArg(2)})
}

func TestFormat_TypeMismatch(t *testing.T) {
	// A string cannot be rendered in a numeric radix.
	checkFormatFails(t, "%d", []sem.Expr{strArg("nope")})
}

func TestFormat_ParseErrorDiagnosed(t *testing.T) {
	checkFormatFails(t, "%q", nil)
}

func TestFormat_NonConstantIsWellFormed(t *testing.T) {
	var (
		ec    = newEvalContext()
		param = sem.NewParameterSymbol("WIDTH", sem.INT)
		args  = []sem.Expr{sem.NewNamedValue(span, param)}
	)
	// An unbound parameter is legal to format, just not foldable.
	folded, ok := FormatArgs("%d", span, nil, ec, args, false)
	//
	if !ok {
		t.Fatalf("well-formed bind reported as failed")
	} else if folded.HasValue() {
		t.Errorf("non-constant argument folded to %q", folded.Unwrap())
	}
	//
	if ec.Diagnostics().HasErrors() {
		t.Errorf("well-formed bind was diagnosed")
	}
}

func TestFormat_LengthCapRejected(t *testing.T) {
	options := typed.NewBag()
	typed.Set(options, MaxFormatLengthKey, 4)
	//
	ec := eval.NewContext(source.NewDiagnostics(false), options)
	folded, ok := FormatArgs("abcdefgh", span, nil, ec, nil, false)
	//
	if ok || folded.HasValue() {
		t.Errorf("over-length result was not rejected")
	}
}

func TestFormat_WidthOverCapRejectedBeforeRendering(t *testing.T) {
	options := typed.NewBag()
	typed.Set(options, MaxFormatLengthKey, 16)
	//
	ec := eval.NewContext(source.NewDiagnostics(false), options)
	// The field width alone exceeds the cap, so the bind must fail on the
	// width itself rather than render and then measure.
	folded, ok := FormatArgs("%1000d", span, nil, ec, []sem.Expr{intArg(7)}, false)
	//
	if ok || folded.HasValue() {
		t.Fatalf("over-cap field width was not rejected")
	} else if !ec.Diagnostics().HasErrors() {
		t.Errorf("over-cap field width was not diagnosed")
	}
}

func TestFormat_CapAccumulatesAcrossDirectives(t *testing.T) {
	options := typed.NewBag()
	typed.Set(options, MaxFormatLengthKey, 8)
	//
	ec := eval.NewContext(source.NewDiagnostics(false), options)
	// Each directive fits the cap alone; together they exceed it.
	args := []sem.Expr{intArg(1), intArg(2)}
	folded, ok := FormatArgs("%6d%6d", span, nil, ec, args, false)
	//
	if ok || folded.HasValue() {
		t.Errorf("accumulated over-cap result was not rejected")
	}
}

func TestFormatDisplay_Concatenates(t *testing.T) {
	ec := newEvalContext()
	folded, ok := FormatDisplay(nil, ec, []sem.Expr{intArg(5), strArg("hi")})
	//
	if !ok || folded.IsEmpty() {
		t.Fatalf("display bind failed")
	} else if got := folded.Unwrap(); got != "5hi" {
		t.Errorf("display folded to %q, expected 5hi", got)
	}
}

func TestFormatDisplay_EmptyList(t *testing.T) {
	ec := newEvalContext()
	folded, ok := FormatDisplay(nil, ec, nil)
	//
	if !ok || folded.IsEmpty() || folded.Unwrap() != "" {
		t.Errorf("empty display list did not fold to the empty string")
	}
}

func TestFormatDisplay_DefaultRadix(t *testing.T) {
	// A hex-defaulting type renders grouped rather than decimal.
	var (
		ec  = newEvalContext()
		typ = sem.NewIntegralType("byte_t", 8, false, false, logic.HEX)
		arg = sem.NewConversionExpr(span, intArg(255), typ)
	)
	//
	folded, ok := FormatDisplay(nil, ec, []sem.Expr{arg})
	//
	if !ok || folded.IsEmpty() {
		t.Fatalf("display bind failed")
	} else if got := folded.Unwrap(); got != "ff" {
		t.Errorf("display folded to %q, expected ff", got)
	}
}

func TestCheckDisplayArgs_Legal(t *testing.T) {
	ctx := NewBindContext(nil, source.NewDiagnostics(false), nil)
	//
	if !CheckDisplayArgs(ctx, []sem.Expr{intArg(1), strArg("s"), sem.NewRealLiteral(span, 1.5)}) {
		t.Errorf("legal display arguments rejected")
	}
}

func TestCheckDisplayArgs_IllTyped(t *testing.T) {
	var (
		ctx = NewBindContext(nil, source.NewDiagnostics(false), nil)
		typ = sem.NewArrayType(sem.BIT, 7, 0)
		sub = sem.NewSubroutineSymbol("f", nil, typ, nil, true)
		arg = sem.NewCallExpr(span, sub, nil)
	)
	//
	if CheckDisplayArgs(ctx, []sem.Expr{arg}) {
		t.Errorf("unformattable argument accepted")
	} else if !ctx.Diags.HasErrors() {
		t.Errorf("unformattable argument was not diagnosed")
	}
}

func TestCheckSFormat_LiteralFormat(t *testing.T) {
	ctx := NewBindContext(nil, source.NewDiagnostics(false), nil)
	//
	if !CheckSFormatArgs(ctx, []sem.Expr{strArg("%d %s"), intArg(1), strArg("x")}) {
		t.Errorf("legal sformat call rejected")
	}
}

func TestCheckSFormat_LiteralMismatch(t *testing.T) {
	ctx := NewBindContext(nil, source.NewDiagnostics(false), nil)
	//
	if CheckSFormatArgs(ctx, []sem.Expr{strArg("%d"), strArg("x")}) {
		t.Errorf("mismatched sformat call accepted")
	}
}

func TestCheckSFormat_DynamicFormat(t *testing.T) {
	var (
		ctx   = NewBindContext(nil, source.NewDiagnostics(false), nil)
		param = sem.NewParameterSymbol("fmt", sem.STRING)
	)
	// A dynamic format string cannot be paired, so a well-typed argument
	// list is accepted.
	if !CheckSFormatArgs(ctx, []sem.Expr{sem.NewNamedValue(span, param), intArg(1)}) {
		t.Errorf("dynamic sformat call rejected")
	}
}

func TestCheckSFormat_MissingFormat(t *testing.T) {
	ctx := NewBindContext(nil, source.NewDiagnostics(false), nil)
	//
	if CheckSFormatArgs(ctx, nil) {
		t.Errorf("empty sformat call accepted")
	}
}

func TestCheckSFormat_NonStringFormat(t *testing.T) {
	ctx := NewBindContext(nil, source.NewDiagnostics(false), nil)
	//
	if CheckSFormatArgs(ctx, []sem.Expr{intArg(1)}) {
		t.Errorf("integral format string accepted")
	}
}

func TestCheckFinishNum_Legal(t *testing.T) {
	ctx := NewBindContext(nil, source.NewDiagnostics(false), nil)
	//
	for code := int64(0); code <= 2; code++ {
		if !CheckFinishNum(ctx, intArg(code)) {
			t.Errorf("finish code %d rejected", code)
		}
	}
}

func TestCheckFinishNum_OutOfRange(t *testing.T) {
	ctx := NewBindContext(nil, source.NewDiagnostics(false), nil)
	//
	if CheckFinishNum(ctx, intArg(3)) {
		t.Errorf("finish code 3 accepted")
	}
}

func TestCheckFinishNum_NotConstant(t *testing.T) {
	var (
		ctx   = NewBindContext(nil, source.NewDiagnostics(false), nil)
		param = sem.NewParameterSymbol("n", sem.INT)
	)
	//
	if CheckFinishNum(ctx, sem.NewNamedValue(span, param)) {
		t.Errorf("non-constant finish code accepted")
	}
}

func TestCheckFinishNum_NotIntegral(t *testing.T) {
	ctx := NewBindContext(nil, source.NewDiagnostics(false), nil)
	//
	if CheckFinishNum(ctx, strArg("no")) {
		t.Errorf("string finish code accepted")
	}
}
