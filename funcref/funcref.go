package funcref

// VTable is the dispatch table behind a FuncRef. Invoke holds the erased
// call entry untyped; it must be a function of the shape SignatureOf was
// given, taking the payload as its leading argument. Clone shares or
// duplicates the payload without invoking it, Drop releases whatever the
// payload owns, and Format renders the reference for diagnostics.
type VTable struct {
	Signature Signature
	Invoke    any
	Clone     func(data any) any
	Drop      func(data any)
	Format    func(data any) string
}

// FuncRef is an erased callable: an opaque payload plus a pointer to its
// dispatch table. The substrate never interprets the payload itself; every
// interaction goes through the table. The zero value is the null reference.
type FuncRef struct {
	data any
	vt   *VTable
}

// Null is the null function reference. Every call through it traps.
var Null FuncRef

// FromWithVTable builds a reference from a payload and a caller supplied
// dispatch table. The table's Invoke must be the exact function shape its
// Signature was derived from; a call through a table that lies about its
// signature panics. The payload must be comparable (a pointer in practice),
// Same reports payload identity.
func FromWithVTable(data any, vt *VTable) FuncRef {
	return FuncRef{data: data, vt: vt}
}

// IsNull reports whether f is the null reference.
func (f FuncRef) IsNull() bool {
	return f.vt == nil
}

// Clone duplicates the reference through its clone entry. The payload is
// shared, not copied, and the callable is not invoked.
func (f FuncRef) Clone() FuncRef {
	if f.vt == nil {
		return Null
	}
	return FuncRef{data: f.vt.Clone(f.data), vt: f.vt}
}

// Drop releases the payload through its drop entry. The reference must not
// be used afterwards. Dropping the null reference does nothing.
func (f FuncRef) Drop() {
	if f.vt != nil {
		f.vt.Drop(f.data)
	}
}

func (f FuncRef) String() string {
	if f.vt == nil {
		return "funcref.null"
	}
	return f.vt.Format(f.data)
}

// Same reports whether two references share one payload. A clone compares
// equal to its original; references built from separate closures do not,
// even when the closures behave identically.
func Same(f, g FuncRef) bool {
	if f.vt == nil || g.vt == nil {
		return f.vt == nil && g.vt == nil
	}
	return f.data == g.data
}

// cast gates a call: null first, then the signature token, and only then is
// the invoke entry handed back for reinterpretation.
func (f FuncRef) cast(expected Signature) (any, error) {
	if f.vt == nil {
		return nil, &CastError{Null: true, Expected: expected}
	}
	if f.vt.Signature != expected {
		return nil, &CastError{
			Expected: expected,
			Err:      &SignatureMismatchError{Expected: expected, Actual: f.vt.Signature},
		}
	}
	return f.vt.Invoke, nil
}
