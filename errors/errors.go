package errors

import (
	"fmt"
	"strings"
)

// Stage indicates which runtime operation produced the error
type Stage string

const (
	StageInstantiate Stage = "instantiate" // memory/table creation
	StageGrow        Stage = "grow"        // memory.grow / table.grow
	StageLoad        Stage = "load"        // linear memory and table reads
	StageStore       Stage = "store"       // linear memory and table writes
	StageCall        Stage = "call"        // direct and indirect calls
	StageConvert     Stage = "convert"     // numeric conversions
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds       Kind = "out_of_bounds"
	KindAllocationFailed  Kind = "allocation_failed"
	KindLimitsMismatch    Kind = "limits_mismatch"
	KindSignatureMismatch Kind = "signature_mismatch"
	KindNullReference     Kind = "null_reference"
	KindDivisionByZero    Kind = "division_by_zero"
	KindOverflow          Kind = "overflow"
	KindConversion        Kind = "conversion"
	KindUnreachable       Kind = "unreachable"
	KindStackExhausted    Kind = "stack_exhausted"
)

// Error is the structured error type handed to embeddings
type Error struct {
	Value  any
	Cause  error
	Stage  Stage
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Stage))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Stage == t.Stage && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(stage Stage, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Stage: stage,
			Kind:  kind,
		},
	}
}

// Path sets the object path, e.g. ("memory", "0")
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value (an address, index, or delta)
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfBounds creates an out of bounds access error
func OutOfBounds(stage Stage, path []string, value any) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("%v is out of bounds", value),
		Value:  value,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(stage Stage, path []string, requested uint64) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindAllocationFailed,
		Path:   path,
		Detail: fmt.Sprintf("failed to allocate %d", requested),
		Value:  requested,
	}
}

// LimitsMismatch creates a declared vs expected limits error
func LimitsMismatch(path []string, cause error) *Error {
	return &Error{
		Stage: StageInstantiate,
		Kind:  KindLimitsMismatch,
		Path:  path,
		Cause: cause,
	}
}

// SignatureMismatch creates an indirect call type error
func SignatureMismatch(expected, actual string) *Error {
	return &Error{
		Stage:  StageCall,
		Kind:   KindSignatureMismatch,
		Detail: fmt.Sprintf("expected %s, got %s", expected, actual),
	}
}

// NullReference creates a null indirect call error
func NullReference(expected string) *Error {
	return &Error{
		Stage:  StageCall,
		Kind:   KindNullReference,
		Detail: fmt.Sprintf("null function reference, expected %s", expected),
	}
}

// DivisionByZero creates an integer division error
func DivisionByZero() *Error {
	return &Error{
		Stage:  StageCall,
		Kind:   KindDivisionByZero,
		Detail: "integer division by zero",
	}
}

// Overflow creates an arithmetic overflow error
func Overflow(stage Stage, value any, target string) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("value %v overflows %s", value, target),
		Value:  value,
	}
}

// Conversion creates an invalid numeric conversion error
func Conversion(value any, target string) *Error {
	return &Error{
		Stage:  StageConvert,
		Kind:   KindConversion,
		Detail: fmt.Sprintf("cannot convert %v to %s", value, target),
		Value:  value,
	}
}

// Unreachable creates an unreachable instruction error
func Unreachable() *Error {
	return &Error{
		Stage:  StageCall,
		Kind:   KindUnreachable,
		Detail: "unreachable instruction executed",
	}
}

// StackExhausted creates a call depth error
func StackExhausted(limit uint32) *Error {
	return &Error{
		Stage:  StageCall,
		Kind:   KindStackExhausted,
		Detail: fmt.Sprintf("call depth exceeded %d", limit),
		Value:  limit,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(stage Stage, kind Kind, cause error, detail string) *Error {
	return &Error{
		Stage:  stage,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
