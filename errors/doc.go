// Package errors provides structured error types for embeddings of the
// runtime support layer.
//
// Errors are categorized by Stage (which runtime operation failed) and Kind
// (failure category). The Error type includes the offending value, an object
// path, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.StageLoad, errors.KindOutOfBounds).
//		Path("memory", "0").
//		Value(uint64(0x10000)).
//		Detail("read past the end of the heap").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.StageLoad, path, addr)
//	err := errors.SignatureMismatch("func(int32) int32", "func(int64) int64")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
