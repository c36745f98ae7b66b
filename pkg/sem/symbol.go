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
)

// SymbolKind identifies the different variants of elaborated symbol.
type SymbolKind uint8

const (
	// COMPILATION_UNIT is the symbol elaborated for a whole source file.
	COMPILATION_UNIT SymbolKind = iota
	// INSTANCE is a concrete module instance within the design hierarchy.
	INSTANCE
	// STATEMENT_BLOCK is a named sequential or parallel block.
	STATEMENT_BLOCK
	// PROCEDURAL_BLOCK is an always/initial/final construct.
	PROCEDURAL_BLOCK
	// GENERATE_BLOCK is one arm of an elaborated generate construct.
	GENERATE_BLOCK
	// GENERATE_BLOCK_ARRAY is the expansion of a looping generate construct.
	GENERATE_BLOCK_ARRAY
	// SUBROUTINE is an elaborated function or task.
	SUBROUTINE
	// ENUM_TYPE is an elaborated enumerated type declaration.
	ENUM_TYPE
	// TYPE_ALIAS is an elaborated typedef declaration.
	TYPE_ALIAS
	// PARAMETER is a formal parameter of a subroutine.
	PARAMETER
	// ENUM_VALUE is a single member of an enumerated type.
	ENUM_VALUE
)

// String returns the conventional name of this symbol kind.
func (k SymbolKind) String() string {
	names := [...]string{
		"compilation unit", "instance", "statement block", "procedural block",
		"generate block", "generate block array", "subroutine", "enum type",
		"type alias", "parameter", "enum value",
	}
	//
	return names[k]
}

// Symbol is the elaborated semantic entity a syntax construct denotes.
// Symbols form a tree via scope containment, plus non-owning named references
// (e.g. a type alias referencing its target) which tolerate forward
// references.  All symbols live in the compilation's arena for the lifetime
// of the compilation, hence plain pointers between them are safe.
type Symbol interface {
	// Name returns the declared name of this symbol, which can be empty for
	// anonymous constructs (e.g. unnamed procedural blocks).
	Name() string
	// Kind returns the variant of this symbol.
	Kind() SymbolKind
}

// CompilationUnitSymbol is the symbol elaborated for a whole source file.
type CompilationUnitSymbol struct {
	name string
	// Scope holding the unit's top-level declarations.
	body *Scope
}

// NewCompilationUnitSymbol constructs a compilation unit symbol rooted at the
// given scope.
func NewCompilationUnitSymbol(name string, body *Scope) *CompilationUnitSymbol {
	return &CompilationUnitSymbol{name, body}
}

// Name returns the declared name of this symbol.
func (p *CompilationUnitSymbol) Name() string { return p.name }

// Kind returns the variant of this symbol.
func (p *CompilationUnitSymbol) Kind() SymbolKind { return COMPILATION_UNIT }

// Body returns the scope holding the unit's top-level declarations.
func (p *CompilationUnitSymbol) Body() *Scope { return p.body }

// InstanceSymbol is a concrete module instance within the design hierarchy.
// Two structurally identical instantiations elaborate to distinct instance
// symbols.
type InstanceSymbol struct {
	name string
	// Name of the module this symbol instantiates.
	module string
	// Scope holding the instance's elaborated members.
	body *Scope
}

// NewInstanceSymbol constructs an instance symbol.
func NewInstanceSymbol(name string, module string, body *Scope) *InstanceSymbol {
	return &InstanceSymbol{name, module, body}
}

// Name returns the declared name of this symbol.
func (p *InstanceSymbol) Name() string { return p.name }

// Kind returns the variant of this symbol.
func (p *InstanceSymbol) Kind() SymbolKind { return INSTANCE }

// Module returns the name of the module this symbol instantiates.
func (p *InstanceSymbol) Module() string { return p.module }

// Body returns the scope holding the instance's elaborated members.
func (p *InstanceSymbol) Body() *Scope { return p.body }

// StatementBlockSymbol is a named sequential or parallel block.
type StatementBlockSymbol struct {
	name string
	body *Scope
}

// NewStatementBlockSymbol constructs a statement block symbol.
func NewStatementBlockSymbol(name string, body *Scope) *StatementBlockSymbol {
	return &StatementBlockSymbol{name, body}
}

// Name returns the declared name of this symbol.
func (p *StatementBlockSymbol) Name() string { return p.name }

// Kind returns the variant of this symbol.
func (p *StatementBlockSymbol) Kind() SymbolKind { return STATEMENT_BLOCK }

// Body returns the scope holding the block's declarations.
func (p *StatementBlockSymbol) Body() *Scope { return p.body }

// ProceduralBlockSymbol is an always/initial/final construct.  Such blocks
// are anonymous.
type ProceduralBlockSymbol struct {
	// Procedural kind, e.g. "initial" or "always".
	procKind string
}

// NewProceduralBlockSymbol constructs a procedural block symbol of the given
// procedural kind.
func NewProceduralBlockSymbol(procKind string) *ProceduralBlockSymbol {
	return &ProceduralBlockSymbol{procKind}
}

// Name returns the declared name of this symbol, which is always empty.
func (p *ProceduralBlockSymbol) Name() string { return "" }

// Kind returns the variant of this symbol.
func (p *ProceduralBlockSymbol) Kind() SymbolKind { return PROCEDURAL_BLOCK }

// ProcKind returns the procedural kind, e.g. "initial" or "always".
func (p *ProceduralBlockSymbol) ProcKind() string { return p.procKind }

// GenerateBlockSymbol is one arm of an elaborated generate construct.
type GenerateBlockSymbol struct {
	name string
	body *Scope
	// Whether this arm was actually instantiated (a false generate condition
	// still elaborates its block, marked uninstantiated).
	instantiated bool
}

// NewGenerateBlockSymbol constructs a generate block symbol.
func NewGenerateBlockSymbol(name string, body *Scope, instantiated bool) *GenerateBlockSymbol {
	return &GenerateBlockSymbol{name, body, instantiated}
}

// Name returns the declared name of this symbol.
func (p *GenerateBlockSymbol) Name() string { return p.name }

// Kind returns the variant of this symbol.
func (p *GenerateBlockSymbol) Kind() SymbolKind { return GENERATE_BLOCK }

// Body returns the scope holding the block's elaborated members.
func (p *GenerateBlockSymbol) Body() *Scope { return p.body }

// IsInstantiated checks whether this arm was actually instantiated.
func (p *GenerateBlockSymbol) IsInstantiated() bool { return p.instantiated }

// GenerateBlockArraySymbol is the expansion of a looping generate construct:
// one generate block per loop iteration, with the bounds the loop was
// resolved to.
type GenerateBlockArraySymbol struct {
	name string
	// Elaborated entries, one per loop iteration.
	entries []*GenerateBlockSymbol
	// Inclusive loop bounds the construct resolved to.
	lo int64
	hi int64
}

// NewGenerateBlockArraySymbol constructs a generate block array symbol.
func NewGenerateBlockArraySymbol(name string, entries []*GenerateBlockSymbol,
	lo int64, hi int64) *GenerateBlockArraySymbol {
	return &GenerateBlockArraySymbol{name, entries, lo, hi}
}

// Name returns the declared name of this symbol.
func (p *GenerateBlockArraySymbol) Name() string { return p.name }

// Kind returns the variant of this symbol.
func (p *GenerateBlockArraySymbol) Kind() SymbolKind { return GENERATE_BLOCK_ARRAY }

// Entries returns the elaborated entries, one per loop iteration.
func (p *GenerateBlockArraySymbol) Entries() []*GenerateBlockSymbol { return p.entries }

// Bounds returns the inclusive loop bounds the construct resolved to.
func (p *GenerateBlockArraySymbol) Bounds() (int64, int64) { return p.lo, p.hi }

// SubroutineSymbol is an elaborated function or task.
type SubroutineSymbol struct {
	name string
	// Formal parameters in declaration order.
	params []*ParameterSymbol
	// Declared return type.
	ret Type
	// Body expression, or nil for subroutines whose body is not expressible
	// as a constant function.
	body Expr
	// Whether this subroutine is free of side effects.  Only pure
	// subroutines participate in constant evaluation.
	pure bool
}

// NewSubroutineSymbol constructs a subroutine symbol.
func NewSubroutineSymbol(name string, params []*ParameterSymbol, ret Type,
	body Expr, pure bool) *SubroutineSymbol {
	return &SubroutineSymbol{name, params, ret, body, pure}
}

// Name returns the declared name of this symbol.
func (p *SubroutineSymbol) Name() string { return p.name }

// Kind returns the variant of this symbol.
func (p *SubroutineSymbol) Kind() SymbolKind { return SUBROUTINE }

// Parameters returns the formal parameters in declaration order.
func (p *SubroutineSymbol) Parameters() []*ParameterSymbol { return p.params }

// Return returns the declared return type.
func (p *SubroutineSymbol) Return() Type { return p.ret }

// Body returns the body expression, or nil when the subroutine cannot be
// evaluated at compile time.
func (p *SubroutineSymbol) Body() Expr { return p.body }

// SetBody attaches the body expression.  Bodies attach after the symbol
// exists since they can reference the subroutine itself (directly or through
// a forward reference).
func (p *SubroutineSymbol) SetBody(body Expr) { p.body = body }

// IsPure checks whether this subroutine is free of side effects.
func (p *SubroutineSymbol) IsPure() bool { return p.pure }

// ParameterSymbol is a formal parameter of a subroutine.  Call frames bind
// values against parameter symbols during constant evaluation.
type ParameterSymbol struct {
	name string
	typ  Type
}

// NewParameterSymbol constructs a parameter symbol of the given type.
func NewParameterSymbol(name string, typ Type) *ParameterSymbol {
	return &ParameterSymbol{name, typ}
}

// Name returns the declared name of this symbol.
func (p *ParameterSymbol) Name() string { return p.name }

// Kind returns the variant of this symbol.
func (p *ParameterSymbol) Kind() SymbolKind { return PARAMETER }

// Type returns the declared type of this parameter.
func (p *ParameterSymbol) Type() Type { return p.typ }

// EnumTypeSymbol is an elaborated enumerated type declaration.
type EnumTypeSymbol struct {
	name string
	typ  *EnumType
}

// NewEnumTypeSymbol constructs an enum type symbol.
func NewEnumTypeSymbol(name string, typ *EnumType) *EnumTypeSymbol {
	return &EnumTypeSymbol{name, typ}
}

// Name returns the declared name of this symbol.
func (p *EnumTypeSymbol) Name() string { return p.name }

// Kind returns the variant of this symbol.
func (p *EnumTypeSymbol) Kind() SymbolKind { return ENUM_TYPE }

// Type returns the elaborated enumeration.
func (p *EnumTypeSymbol) Type() *EnumType { return p.typ }

// TypeAliasSymbol is an elaborated typedef declaration.
type TypeAliasSymbol struct {
	name string
	typ  *AliasType
}

// NewTypeAliasSymbol constructs a type alias symbol.
func NewTypeAliasSymbol(name string, typ *AliasType) *TypeAliasSymbol {
	return &TypeAliasSymbol{name, typ}
}

// Name returns the declared name of this symbol.
func (p *TypeAliasSymbol) Name() string { return p.name }

// Kind returns the variant of this symbol.
func (p *TypeAliasSymbol) Kind() SymbolKind { return TYPE_ALIAS }

// Type returns the alias handle this typedef declares.
func (p *TypeAliasSymbol) Type() *AliasType { return p.typ }

// EnumValueSymbol is a single member of an enumerated type, with the constant
// value it elaborated to.
type EnumValueSymbol struct {
	name string
	typ  *EnumType
	// Elaborated constant value of this member.
	value logic.Value
}

// NewEnumValueSymbol constructs an enum value symbol.
func NewEnumValueSymbol(name string, typ *EnumType, value logic.Value) *EnumValueSymbol {
	return &EnumValueSymbol{name, typ, value}
}

// Name returns the declared name of this symbol.
func (p *EnumValueSymbol) Name() string { return p.name }

// Kind returns the variant of this symbol.
func (p *EnumValueSymbol) Kind() SymbolKind { return ENUM_VALUE }

// Type returns the enumeration this member belongs to.
func (p *EnumValueSymbol) Type() *EnumType { return p.typ }

// Value returns the elaborated constant value of this member.
func (p *EnumValueSymbol) Value() logic.Value { return p.value }
