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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/verilite/go-verilite/pkg/util/source"
	"golang.org/x/term"
)

// ANSI escapes used when highlighting diagnostics on a terminal.
const (
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiReset  = "\033[0m"
)

// printDiagnostics renders every accumulated diagnostic to stderr.
func printDiagnostics(diags *source.Diagnostics) {
	for _, d := range diags.Items() {
		printDiagnostic(d)
	}
}

// printDiagnostic renders a single diagnostic, with an enclosing-line
// highlight when the originating source file is known.
func printDiagnostic(d *source.Diagnostic) {
	severity := d.Severity().String()
	// Colour the severity tag only when writing to a terminal.
	if term.IsTerminal(int(os.Stderr.Fd())) {
		if d.Severity() >= source.ERROR {
			severity = ansiRed + severity + ansiReset
		} else {
			severity = ansiYellow + severity + ansiReset
		}
	}
	//
	if d.SourceFile() == nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", severity, d.Message())
		return
	}
	//
	var (
		line  = d.FirstEnclosingLine()
		span  = d.Span()
		start = span.Start() - line.Start()
		// Highlight within this line only, as spans can cross lines.
		width = min(span.Length(), line.Length()-start)
	)
	//
	fmt.Fprintf(os.Stderr, "%s:%d: %s: %s\n", d.SourceFile().Filename(),
		line.Number(), severity, d.Message())
	fmt.Fprintln(os.Stderr, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(os.Stderr, strings.Repeat(" ", start))
	// Print highlight
	fmt.Fprintln(os.Stderr, strings.Repeat("^", max(width, 1)))
}
