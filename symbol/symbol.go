// Package symbol describes the static metadata the code generator emits for
// translated WebAssembly functions. Trap frames reference these descriptors
// for display; the runtime only reads them, it never allocates or mutates
// them.
package symbol

import (
	"fmt"
	"strings"
)

// ValType is the type of a function parameter or result.
type ValType uint8

const (
	I32 ValType = iota
	I64
	F32
	F64
	V128
	FuncRef
	ExternRef
)

func (t ValType) String() string {
	switch t {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case V128:
		return "v128"
	case FuncRef:
		return "funcref"
	case ExternRef:
		return "externref"
	default:
		return fmt.Sprintf("valtype(%d)", uint8(t))
	}
}

// Signature describes the parameter and result types of a function.
type Signature struct {
	Params  []ValType
	Results []ValType
}

func (s *Signature) String() string {
	var b strings.Builder
	b.WriteString("(param")
	for _, t := range s.Params {
		b.WriteByte(' ')
		b.WriteString(t.String())
	}
	b.WriteString(") (result")
	for _, t := range s.Results {
		b.WriteByte(' ')
		b.WriteString(t.String())
	}
	b.WriteByte(')')
	return b.String()
}

// ImportName names the module and field a function was imported from.
//
// See https://webassembly.github.io/spec/core/syntax/modules.html#imports
type ImportName struct {
	Module string
	Name   string
}

func (n *ImportName) String() string {
	return fmt.Sprintf("(import %q %q)", n.Module, n.Name)
}

// Symbol describes a translated WebAssembly function.
type Symbol struct {
	// Index is the index of the function in the WebAssembly module.
	//
	// See https://webassembly.github.io/spec/core/syntax/modules.html#indices
	Index uint32
	// ExportNames lists the names the function was exported with. Empty if
	// the function is not exported.
	ExportNames []string
	// CustomName is the name-section name of the function, empty if none.
	//
	// See https://webassembly.github.io/spec/core/appendix/custom.html#function-names
	CustomName string
	// Signature specifies the parameter and result types.
	Signature *Signature
	// Import is set when the function is imported rather than defined.
	Import *ImportName
	// Offset is the byte offset from the start of the WebAssembly module to
	// the function's code section entry. Zero for imported functions.
	//
	// See https://webassembly.github.io/spec/core/binary/modules.html#code-section
	Offset uint64
}

// String renders the symbol in a WAT-flavored form, for example
// (func (;5;) $run (export "run") (param i32 i32) (result i32)).
func (s *Symbol) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(func (;%d;)", s.Index)
	if s.CustomName != "" {
		b.WriteString(" $")
		b.WriteString(s.CustomName)
	}
	for _, name := range s.ExportNames {
		fmt.Fprintf(&b, " (export %q)", name)
	}
	if s.Import != nil {
		b.WriteByte(' ')
		b.WriteString(s.Import.String())
	}
	if s.Signature != nil {
		b.WriteByte(' ')
		b.WriteString(s.Signature.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Frame locates a point inside a translated function. Traps accumulate
// frames as they unwind through generated calls.
type Frame struct {
	Symbol *Symbol
	// Offset is the byte offset of the trapping instruction from the start
	// of the function's code section entry.
	Offset uint32
}

func (f *Frame) String() string {
	if f.Symbol == nil {
		return fmt.Sprintf("(func ?) @ %#x", f.Offset)
	}
	return fmt.Sprintf("%s @ %#x", f.Symbol, f.Offset)
}
