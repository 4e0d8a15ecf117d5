package funcref

import "reflect"

// Signature is an opaque, comparable token identifying the parameter and
// result combination of an erased callable. Two references may be combined
// only if their tokens compare equal; that equality is the sole soundness
// gate in front of the reinterpreted invoke entry.
type Signature struct {
	typ reflect.Type
}

// SignatureOf derives the token for an invoke function shape. The argument
// must be a function of the form
//
//	func(data any, a0 A0, …) (R, error)
//
// and a typed nil value of that shape is sufficient:
//
//	sig := funcref.SignatureOf((func(any, int32) (int32, error))(nil))
func SignatureOf(invoke any) Signature {
	return Signature{typ: reflect.TypeOf(invoke)}
}

func (s Signature) String() string {
	if s.typ == nil {
		return "<no signature>"
	}
	return s.typ.String()
}
