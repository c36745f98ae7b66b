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

// Package sysfn implements binding-time validation and constant folding for
// the formatted-output system functions (display, sformat and friends), as
// well as the simulation-control calls.  Validation keeps going after the
// first ill-typed argument, maximising the diagnostics yielded per pass;
// folding is all-or-nothing, producing a complete formatted string exactly
// when every consumed argument is a compile-time constant.
package sysfn

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/verilite/go-verilite/pkg/logic"
	"github.com/verilite/go-verilite/pkg/sem"
	"github.com/verilite/go-verilite/pkg/sem/eval"
	"github.com/verilite/go-verilite/pkg/util"
	"github.com/verilite/go-verilite/pkg/util/collection/typed"
	"github.com/verilite/go-verilite/pkg/util/source"
)

// MaxFormatLengthKey overrides the cap on the length of a folded format
// result.  The cap exists so a pathological constant format (huge field
// widths, say) trips a diagnostic rather than exhausting memory.
var MaxFormatLengthKey = typed.NewKey[int]("max-format-length")

// DEFAULT_MAX_FORMAT_LENGTH caps folded format results when no explicit
// limit is configured.
const DEFAULT_MAX_FORMAT_LENGTH = 1 << 20

// BindContext packages up the ambient state needed whilst binding a system
// call: the enclosing scope, the diagnostic sink, the compilation's options
// bag, and an evaluation context for opportunistic constant folding.
type BindContext struct {
	Scope   *sem.Scope
	Diags   *source.Diagnostics
	Options *typed.Bag
	Eval    *eval.Context
}

// NewBindContext constructs a binding context reporting into the given sink,
// with a fresh evaluation context configured from the given options bag
// (which may be nil).
func NewBindContext(scope *sem.Scope, diags *source.Diagnostics, options *typed.Bag) *BindContext {
	return &BindContext{scope, diags, options, eval.NewContext(diags, options)}
}

// CheckDisplayArgs validates the argument list of a display-style call.
// Each argument must be of a type with a defined default textual
// representation: integral (including enums), string, or real.  One
// diagnostic is emitted per ill-typed argument, and the verdict covers the
// whole list.
func CheckDisplayArgs(ctx *BindContext, args []sem.Expr) bool {
	ok := true
	//
	for _, arg := range args {
		if _, invalid := arg.(*sem.InvalidExpr); invalid {
			// Already diagnosed when the poison node was produced.
			ok = false
		} else if !hasDefaultFormat(arg.Type()) {
			ctx.Diags.Errorf(nil, arg.Location(),
				"argument of type %s has no default text representation", arg.Type().Name())
			//
			ok = false
		}
	}
	//
	return ok
}

// CheckSFormatArgs validates the stricter contract of a call whose first
// argument is the format string.  When that argument is a compile-time
// literal, the remaining arguments are validated directive by directive.
// When it is dynamic, no pairing against directives is possible at bind
// time, so only per-argument type legality is checked; a well-typed list is
// never rejected merely because the directives are unknown.
func CheckSFormatArgs(ctx *BindContext, args []sem.Expr) bool {
	if len(args) == 0 {
		ctx.Diags.Errorf(nil, source.Span{}, "expected a format string argument")
		return false
	}
	//
	format := args[0]
	//
	if !format.Type().IsString() {
		ctx.Diags.Errorf(nil, format.Location(),
			"format string must be of string type, not %s", format.Type().Name())
		//
		return false
	}
	// Full validation is only possible against a literal format string.
	if literal, ok := format.(*sem.StringLiteral); ok {
		// The literal's escapes were decoded when the literal was parsed.
		directives, err := ParseDirectives(literal.Value, false)
		//
		if err != nil {
			ctx.Diags.Errorf(nil, format.Location(), "%s", err.Message)
			return false
		}
		//
		return checkPairing(ctx, format.Location(), directives, args[1:])
	}
	// Dynamic format string: check argument legality only.
	return CheckDisplayArgs(ctx, args[1:])
}

// FormatArgs parses the format string into directives, walks directives and
// arguments in lockstep validating each pairing, and folds the result into
// the final text when every consumed argument is a compile-time constant.
// The two outcomes are orthogonal: the flag reports whether the bind is
// well-formed, whilst the option is empty whenever any argument was not
// constant (or the bind failed).  Folding is all-or-nothing; no partial
// strings are produced.
func FormatArgs(format string, loc source.Span, scope *sem.Scope, ec *eval.Context,
	args []sem.Expr, isStringLiteral bool) (util.Option[string], bool) {
	//
	directives, perr := ParseDirectives(format, isStringLiteral)
	//
	if perr != nil {
		ec.Diagnostics().Errorf(nil, loc, "%s", perr.Message)
		return util.None[string](), false
	}
	//
	var (
		builder    strings.Builder
		limit      = formatLimit(ec)
		wellFormed = true
		foldable   = true
		argIndex   = 0
	)
	//
	for _, directive := range directives {
		switch directive.Kind {
		case LITERAL:
			builder.WriteString(directive.Text)
			//
			if overCap(&builder, limit, ec, loc) {
				return util.None[string](), false
			}
			//
			continue
		case PERCENT:
			builder.WriteByte('%')
			continue
		case MODULE:
			if scope != nil {
				builder.WriteString(scope.QualifiedName())
			}
			//
			if overCap(&builder, limit, ec, loc) {
				return util.None[string](), false
			}
			//
			continue
		}
		// Consume the next argument.
		if argIndex >= len(args) {
			ec.Diagnostics().Errorf(nil, loc, "too few arguments for format string")
			wellFormed = false
			//
			break
		}
		//
		arg := args[argIndex]
		argIndex++
		//
		if !directiveAccepts(directive.Kind, arg.Type()) {
			ec.Diagnostics().Errorf(nil, arg.Location(), "cannot format %s argument with %s",
				arg.Type().Name(), directive.Kind)
			//
			wellFormed = false
			//
			continue
		}
		// Attempt to fold, provided the bind has not already failed and an
		// earlier argument has not already ruled folding out.
		if !wellFormed || !foldable {
			continue
		}
		// Check the requested field width against the cap before rendering,
		// so a pathological width trips a diagnostic rather than an
		// allocation.
		if builder.Len()+max(directive.Width, 0) > limit {
			ec.Diagnostics().Errorf(nil, loc, "formatted text exceeds maximum length (%d)", limit)
			return util.None[string](), false
		}
		//
		switch rendered, result := renderDirective(directive, arg, scope, ec); result {
		case eval.OK:
			builder.WriteString(rendered)
			//
			if overCap(&builder, limit, ec, loc) {
				return util.None[string](), false
			}
		case eval.NOT_CONSTANT:
			foldable = false
		case eval.FATAL:
			wellFormed = false
		}
	}
	// Surplus arguments are an error for the strict format form.
	if wellFormed && argIndex < len(args) {
		ec.Diagnostics().Errorf(nil, loc, "too many arguments for format string")
		wellFormed = false
	}
	//
	if !wellFormed {
		return util.None[string](), false
	}
	//
	if !foldable {
		return util.None[string](), true
	}
	//
	return util.Some(builder.String()), true
}

// FormatDisplay synthesises the default concatenated textual form of each
// argument, with no directive parsing step: integrals render in their
// declared default radix, strings as their text, reals in shortest float
// form.  The same constant-evaluation-or-bail policy as FormatArgs applies.
func FormatDisplay(scope *sem.Scope, ec *eval.Context, args []sem.Expr) (util.Option[string], bool) {
	var (
		builder    strings.Builder
		wellFormed = true
		foldable   = true
	)
	//
	for _, arg := range args {
		if _, invalid := arg.(*sem.InvalidExpr); invalid {
			wellFormed = false
			continue
		}
		//
		if !hasDefaultFormat(arg.Type()) {
			ec.Diagnostics().Errorf(nil, arg.Location(),
				"argument of type %s has no default text representation", arg.Type().Name())
			//
			wellFormed = false
			//
			continue
		}
		//
		if !wellFormed || !foldable {
			continue
		}
		//
		switch rendered, result := renderDefault(arg, ec); result {
		case eval.OK:
			builder.WriteString(rendered)
		case eval.NOT_CONSTANT:
			foldable = false
		case eval.FATAL:
			wellFormed = false
		}
	}
	//
	if !wellFormed {
		return util.None[string](), false
	}
	//
	if !foldable {
		return util.None[string](), true
	}
	//
	return util.Some(builder.String()), true
}

// CheckFinishNum validates the single optional numeric argument of a
// finish/stop-style simulation-control call, which must be an integral
// constant in the closed set of legal control codes.
func CheckFinishNum(ctx *BindContext, arg sem.Expr) bool {
	if !arg.Type().IsIntegral() {
		ctx.Diags.Errorf(nil, arg.Location(),
			"finish code must be an integral constant, not %s", arg.Type().Name())
		//
		return false
	}
	//
	value, result := eval.Evaluate(arg, ctx.Eval)
	//
	if result != eval.OK {
		ctx.Diags.Errorf(nil, arg.Location(), "finish code must be a compile-time constant")
		return false
	}
	//
	if code := value.Uint64(); code.IsEmpty() || code.Unwrap() > 2 {
		ctx.Diags.Errorf(nil, arg.Location(), "finish code must be 0, 1 or 2")
		return false
	}
	//
	return true
}

// ============================================================================
// Helpers
// ============================================================================

// hasDefaultFormat checks whether a type has a defined default textual
// representation.
func hasDefaultFormat(t sem.Type) bool {
	return t.IsIntegral() || t.IsString() || t.IsReal()
}

// directiveAccepts determines the legal argument-type categories for each
// conversion directive.
func directiveAccepts(kind DirectiveKind, t sem.Type) bool {
	switch kind {
	case BINARY, OCTAL, DECIMAL, HEX, TIME:
		return t.IsIntegral()
	case CHAR, STR:
		// Integrals render via their bit pattern, as packed text.
		return t.IsIntegral() || t.IsString()
	case REAL:
		// Integrals convert implicitly.
		return t.IsReal() || t.IsIntegral()
	}
	//
	return false
}

// checkPairing validates a directive list against the consumable arguments,
// diagnosing count mismatches and category mismatches without folding
// anything.  All arguments are checked before a verdict is returned.
func checkPairing(ctx *BindContext, loc source.Span, directives []Directive, args []sem.Expr) bool {
	var (
		ok       = true
		argIndex = 0
	)
	//
	for _, directive := range directives {
		if !directive.Kind.NeedsArgument() {
			continue
		}
		//
		if argIndex >= len(args) {
			ctx.Diags.Errorf(nil, loc, "too few arguments for format string")
			return false
		}
		//
		arg := args[argIndex]
		argIndex++
		//
		if !directiveAccepts(directive.Kind, arg.Type()) {
			ctx.Diags.Errorf(nil, arg.Location(), "cannot format %s argument with %s",
				arg.Type().Name(), directive.Kind)
			//
			ok = false
		}
	}
	//
	if argIndex < len(args) {
		ctx.Diags.Errorf(nil, loc, "too many arguments for format string")
		ok = false
	}
	//
	return ok
}

// renderDirective folds one consumed argument against its directive.
func renderDirective(directive Directive, arg sem.Expr, scope *sem.Scope,
	ec *eval.Context) (string, eval.Result) {
	// Reals live outside the logic-vector model, so literal reals are
	// rendered directly; any other real-typed expression is runtime-only.
	if directive.Kind == REAL {
		return renderReal(directive, arg, ec)
	}
	//
	value, result := eval.Evaluate(arg, ec)
	//
	if result != eval.OK {
		return "", result
	}
	//
	switch directive.Kind {
	case STR:
		return pad(value.AsString(), directive.Width), eval.OK
	case CHAR:
		return renderChar(value), eval.OK
	}
	//
	width := max(directive.Width, 0)
	//
	return value.Format(directive.Kind.Radix(), width, directive.ZeroPad), eval.OK
}

// renderReal folds a real-valued argument.
func renderReal(directive Directive, arg sem.Expr, ec *eval.Context) (string, eval.Result) {
	if literal, ok := arg.(*sem.RealLiteral); ok {
		return pad(strconv.FormatFloat(literal.Value, 'g', -1, 64), directive.Width), eval.OK
	}
	// Integral arguments convert implicitly.
	if arg.Type().IsIntegral() {
		value, result := eval.Evaluate(arg, ec)
		//
		if result != eval.OK {
			return "", result
		}
		//
		if num := value.BigInt(); num.HasValue() {
			flt, _ := new(big.Float).SetInt(num.Unwrap()).Float64()
			return pad(strconv.FormatFloat(flt, 'g', -1, 64), directive.Width), eval.OK
		}
		// No numeric interpretation exists for unknown bits.
		return pad("x", directive.Width), eval.OK
	}
	//
	return "", eval.NOT_CONSTANT
}

// renderChar folds a single-character directive from the low byte of the
// argument.
func renderChar(value logic.Value) string {
	if value.HasUnknown() {
		return "x"
	}
	//
	low := new(big.Int).And(value.BigInt().Unwrap(), big.NewInt(0xff))
	//
	return string(rune(low.Uint64()))
}

// renderDefault folds one argument of the plain display form using its
// type's default rendering.
func renderDefault(arg sem.Expr, ec *eval.Context) (string, eval.Result) {
	if literal, ok := arg.(*sem.RealLiteral); ok {
		return strconv.FormatFloat(literal.Value, 'g', -1, 64), eval.OK
	}
	//
	value, result := eval.Evaluate(arg, ec)
	//
	if result != eval.OK {
		return "", result
	}
	//
	if arg.Type().IsString() {
		return value.AsString(), eval.OK
	}
	//
	return value.Format(defaultRadix(arg.Type()), 0, false), eval.OK
}

// defaultRadix determines the radix in which values of a type render by
// default.
func defaultRadix(t sem.Type) logic.Radix {
	switch t := t.(type) {
	case *sem.IntegralType:
		return t.DefaultRadix()
	case *sem.EnumType:
		return t.DefaultRadix()
	case *sem.AliasType:
		if canonical, err := t.Resolve(); err == nil {
			return defaultRadix(canonical)
		}
	}
	//
	return logic.DECIMAL
}

// pad left-pads text with spaces to a minimum field width.
func pad(text string, width int) string {
	if n := width - len(text); n > 0 {
		return strings.Repeat(" ", n) + text
	}
	//
	return text
}

// formatLimit determines the configured cap on folded format results.
func formatLimit(ec *eval.Context) int {
	limit := DEFAULT_MAX_FORMAT_LENGTH
	//
	if ec.Options() != nil {
		limit = typed.GetOrDefault(ec.Options(), MaxFormatLengthKey, limit)
	}
	//
	return limit
}

// overCap checks the text accumulated so far against the length cap,
// diagnosing when it trips.  Folding checks after every append, so the
// accumulated text never grows materially beyond the cap.
func overCap(builder *strings.Builder, limit int, ec *eval.Context, loc source.Span) bool {
	if builder.Len() > limit {
		ec.Diagnostics().Errorf(nil, loc, "formatted text exceeds maximum length (%d)", limit)
		return true
	}
	//
	return false
}
