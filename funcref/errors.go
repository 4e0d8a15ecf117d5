package funcref

import "fmt"

// SignatureMismatchError reports an indirect call whose expected signature
// token differs from the one the reference was constructed with.
type SignatureMismatchError struct {
	Expected Signature
	Actual   Signature
}

func (e *SignatureMismatchError) Error() string {
	return fmt.Sprintf("signature mismatch: expected %v, but got %v", e.Expected, e.Actual)
}

// CastError reports a failed attempt to reinterpret a reference for a call.
// Null is set when the reference was the null reference; otherwise Err holds
// the signature mismatch. In both cases the callable was not invoked.
type CastError struct {
	Null     bool
	Expected Signature
	Err      *SignatureMismatchError
}

func (e *CastError) Error() string {
	if e.Null {
		return fmt.Sprintf("expected signature %v for null function reference", e.Expected)
	}
	return e.Err.Error()
}

func (e *CastError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}
