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
package source

import (
	"fmt"
)

// Severity distinguishes the different classes of diagnostic which can be
// reported against a source location.
type Severity uint8

const (
	// NOTE is an informational remark attached to some other diagnostic.
	NOTE Severity = iota
	// WARNING indicates something suspicious which does not prevent the
	// compilation from proceeding.
	WARNING
	// ERROR indicates malformed input which renders (part of) the compilation
	// meaningless.
	ERROR
	// FATAL indicates an error after which no further progress is possible.
	FATAL
)

// String returns the conventional lowercase name of this severity.
func (s Severity) String() string {
	switch s {
	case NOTE:
		return "note"
	case WARNING:
		return "warning"
	case ERROR:
		return "error"
	case FATAL:
		return "fatal"
	}
	//
	panic("unknown severity")
}

// Diagnostic is a structured message reported against a span of an original
// source string, along with a severity.  Diagnostics retain the source file
// (where known) so they can subsequently be rendered with an enclosing-line
// highlight.
type Diagnostic struct {
	// Source file against which this diagnostic is reported, or nil if the
	// location is synthetic.
	srcfile *File
	// Span of the original text on which this diagnostic is reported.
	span Span
	// Severity of this diagnostic.
	severity Severity
	// Message being reported.
	message string
}

// SourceFile returns the underlying source file that this diagnostic covers,
// or nil if the location is synthetic.
func (p *Diagnostic) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this diagnostic is
// reported.
func (p *Diagnostic) Span() Span {
	return p.span
}

// Severity returns the severity of this diagnostic.
func (p *Diagnostic) Severity() Severity {
	return p.severity
}

// Message returns the message to be reported.
func (p *Diagnostic) Message() string {
	return p.message
}

// Error implements the error interface.
func (p *Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d:%s: %s", p.span.Start(), p.span.End(), p.severity, p.message)
}

// FirstEnclosingLine determines the first line in the underlying source file
// to which this diagnostic is associated.  This will panic if the location is
// synthetic.
func (p *Diagnostic) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}

// Diagnostics is an append-only sink of diagnostics accumulated during a
// compilation.  Binding and evaluation keep going after reporting an error,
// so a single pass can accumulate many diagnostics.
type Diagnostics struct {
	// All diagnostics reported so far, in reporting order.
	items []*Diagnostic
	// When set, warnings are promoted to errors as they are reported.
	werror bool
}

// NewDiagnostics constructs an empty diagnostic sink.  When werror is set,
// reported warnings are promoted to errors.
func NewDiagnostics(werror bool) *Diagnostics {
	return &Diagnostics{nil, werror}
}

// Report appends a prebuilt diagnostic to this sink, applying warning
// promotion as necessary.
func (p *Diagnostics) Report(d *Diagnostic) {
	if p.werror && d.severity == WARNING {
		d = &Diagnostic{d.srcfile, d.span, ERROR, d.message}
	}
	//
	p.items = append(p.items, d)
}

// Errorf reports an error at the given location.  The file may be nil for
// synthetic locations.
func (p *Diagnostics) Errorf(file *File, span Span, format string, args ...any) {
	p.Report(&Diagnostic{file, span, ERROR, fmt.Sprintf(format, args...)})
}

// Warningf reports a warning at the given location.  The file may be nil for
// synthetic locations.
func (p *Diagnostics) Warningf(file *File, span Span, format string, args ...any) {
	p.Report(&Diagnostic{file, span, WARNING, fmt.Sprintf(format, args...)})
}

// Count returns the number of diagnostics reported so far, of any severity.
func (p *Diagnostics) Count() uint {
	return uint(len(p.items))
}

// HasErrors checks whether any diagnostic of severity ERROR (or above) has
// been reported.
func (p *Diagnostics) HasErrors() bool {
	for _, d := range p.items {
		if d.severity >= ERROR {
			return true
		}
	}
	//
	return false
}

// Items returns all diagnostics reported so far, in reporting order.
func (p *Diagnostics) Items() []*Diagnostic {
	return p.items
}
