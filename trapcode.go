package rt

// TrapCode classifies why a trap occurred.
type TrapCode uint8

const (
	CodeUnknown TrapCode = iota
	CodeUnreachable
	CodeConversionToInteger
	CodeIntegerDivisionByZero
	CodeIntegerOverflow
	CodeMemoryBoundsCheck
	CodeMemoryAllocationFailure
	CodeMemoryLimitsMismatch
	CodeTableBoundsCheck
	CodeTableAllocationFailure
	CodeTableLimitsMismatch
	CodeIndirectCallSignatureMismatch
	CodeNullFunctionReference
	CodeCallStackExhausted
)

func (c TrapCode) String() string {
	switch c {
	case CodeUnreachable:
		return "unreachable"
	case CodeConversionToInteger:
		return "conversion to integer"
	case CodeIntegerDivisionByZero:
		return "integer division by zero"
	case CodeIntegerOverflow:
		return "integer overflow"
	case CodeMemoryBoundsCheck:
		return "memory bounds check"
	case CodeMemoryAllocationFailure:
		return "memory allocation failure"
	case CodeMemoryLimitsMismatch:
		return "memory limits mismatch"
	case CodeTableBoundsCheck:
		return "table bounds check"
	case CodeTableAllocationFailure:
		return "table allocation failure"
	case CodeTableLimitsMismatch:
		return "table limits mismatch"
	case CodeIndirectCallSignatureMismatch:
		return "indirect call signature mismatch"
	case CodeNullFunctionReference:
		return "null function reference"
	case CodeCallStackExhausted:
		return "call stack exhausted"
	default:
		return "unknown"
	}
}

// specFailure returns the failure string the WebAssembly test suite uses for
// the code, or "" when the suite has none.
//
// See https://github.com/WebAssembly/testsuite
func (c TrapCode) specFailure() string {
	switch c {
	case CodeUnreachable:
		return "unreachable"
	case CodeIntegerDivisionByZero:
		return "integer divide by zero"
	case CodeIntegerOverflow:
		return "integer overflow"
	case CodeConversionToInteger:
		return "invalid conversion to integer"
	case CodeMemoryBoundsCheck:
		return "out of bounds memory access"
	case CodeTableBoundsCheck:
		return "out of bounds table access"
	case CodeIndirectCallSignatureMismatch:
		return "indirect call type mismatch"
	case CodeNullFunctionReference:
		return "uninitialized element"
	case CodeCallStackExhausted:
		return "call stack exhausted"
	default:
		return ""
	}
}
