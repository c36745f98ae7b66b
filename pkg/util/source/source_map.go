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

// Map maps terms of some kind (e.g. nodes of a syntax tree) to spans within a
// single source file.  Terms are keyed by identity, since two structurally
// identical terms can originate from different places in the file.
type Map[T comparable] struct {
	// Source file to which this map refers.
	srcfile *File
	// Mapping from terms to spans in the source file.
	mapping map[T]Span
}

// NewSourceMap constructs an initially empty source map for a given file.
func NewSourceMap[T comparable](srcfile *File) *Map[T] {
	return &Map[T]{srcfile, make(map[T]Span)}
}

// SourceFile returns the source file to which this map refers.
func (p *Map[T]) SourceFile() *File {
	return p.srcfile
}

// Has checks whether a given term is recorded in this map.
func (p *Map[T]) Has(term T) bool {
	_, ok := p.mapping[term]
	return ok
}

// Get returns the span associated with a given term, which will panic if the
// term is not recorded in this map.
func (p *Map[T]) Get(term T) Span {
	if span, ok := p.mapping[term]; ok {
		return span
	}
	//
	panic("missing mapping for source term")
}

// Put records the span associated with a given term.
func (p *Map[T]) Put(term T, span Span) {
	p.mapping[term] = span
}

// Maps combines the source maps of several files, such that a term can be
// located without knowing which file it originated from.  The intention is
// that this is populated as each file is parsed.
type Maps[T comparable] struct {
	// Array of known source maps.
	maps []*Map[T]
}

// NewSourceMaps constructs an (initially empty) set of source maps.
func NewSourceMaps[T comparable]() *Maps[T] {
	return &Maps[T]{}
}

// Join a given source map into this set of source maps.  The effect of this
// is that terms recorded in the given source map can be located from this
// set.
func (p *Maps[T]) Join(srcmap *Map[T]) {
	p.maps = append(p.maps, srcmap)
}

// Has checks whether a given term has a mapping in one of the source maps
// embodied within.
func (p *Maps[T]) Has(term T) bool {
	for _, m := range p.maps {
		if m.Has(term) {
			return true
		}
	}
	//
	return false
}

// Diagnostic constructs a diagnostic for a given term contained within one of
// the source files managed by this set of source maps.  Terms with no
// recorded mapping are reported against a synthetic location, rather than
// panicking, since diagnostics frequently arise on constructs synthesised
// during elaboration.
func (p *Maps[T]) Diagnostic(severity Severity, term T, msg string) *Diagnostic {
	for _, m := range p.maps {
		if m.Has(term) {
			span := m.Get(term)
			return m.srcfile.Diagnostic(severity, span, msg)
		}
	}
	//
	return &Diagnostic{nil, Span{}, severity, msg}
}

// Copy copies the source mapping for one term to the source mapping for
// another.  The main use of this is when an existing term is expanded into
// some other terms during elaboration.
func (p *Maps[T]) Copy(from T, to T) {
	for _, m := range p.maps {
		if m.Has(from) {
			m.Put(to, m.Get(from))
			// Done
			return
		}
	}
}
