package funcref

import "reflect"

// fromClosure wires a boxed closure behind a fresh dispatch table. Clone
// shares the box and drop is a no-op; the garbage collector owns closures.
func fromClosure(data, invoke any, format func(any) string) FuncRef {
	return FuncRef{
		data: data,
		vt: &VTable{
			Signature: SignatureOf(invoke),
			Invoke:    invoke,
			Clone:     func(data any) any { return data },
			Drop:      func(any) {},
			Format:    format,
		},
	}
}

func formatFunc[F any](any) string {
	return "funcref(" + reflect.TypeOf((*F)(nil)).Elem().String() + ")"
}

// From0 erases a zero argument callable behind a fresh dispatch table
// specialized to its concrete type. The reference shares the closure's
// captured state with every clone.
func From0[R any](fn func() (R, error)) FuncRef {
	invoke := func(data any) (R, error) {
		return (*data.(*func() (R, error)))()
	}
	return fromClosure(&fn, invoke, formatFunc[func() (R, error)])
}

// From1 erases a one argument callable.
func From1[A0, R any](fn func(A0) (R, error)) FuncRef {
	invoke := func(data any, a0 A0) (R, error) {
		return (*data.(*func(A0) (R, error)))(a0)
	}
	return fromClosure(&fn, invoke, formatFunc[func(A0) (R, error)])
}

// From2 erases a two argument callable.
func From2[A0, A1, R any](fn func(A0, A1) (R, error)) FuncRef {
	invoke := func(data any, a0 A0, a1 A1) (R, error) {
		return (*data.(*func(A0, A1) (R, error)))(a0, a1)
	}
	return fromClosure(&fn, invoke, formatFunc[func(A0, A1) (R, error)])
}

// From3 erases a three argument callable.
func From3[A0, A1, A2, R any](fn func(A0, A1, A2) (R, error)) FuncRef {
	invoke := func(data any, a0 A0, a1 A1, a2 A2) (R, error) {
		return (*data.(*func(A0, A1, A2) (R, error)))(a0, a1, a2)
	}
	return fromClosure(&fn, invoke, formatFunc[func(A0, A1, A2) (R, error)])
}

// From4 erases a four argument callable.
func From4[A0, A1, A2, A3, R any](fn func(A0, A1, A2, A3) (R, error)) FuncRef {
	invoke := func(data any, a0 A0, a1 A1, a2 A2, a3 A3) (R, error) {
		return (*data.(*func(A0, A1, A2, A3) (R, error)))(a0, a1, a2, a3)
	}
	return fromClosure(&fn, invoke, formatFunc[func(A0, A1, A2, A3) (R, error)])
}

// From5 erases a five argument callable.
func From5[A0, A1, A2, A3, A4, R any](fn func(A0, A1, A2, A3, A4) (R, error)) FuncRef {
	invoke := func(data any, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4) (R, error) {
		return (*data.(*func(A0, A1, A2, A3, A4) (R, error)))(a0, a1, a2, a3, a4)
	}
	return fromClosure(&fn, invoke, formatFunc[func(A0, A1, A2, A3, A4) (R, error)])
}

// From6 erases a six argument callable.
func From6[A0, A1, A2, A3, A4, A5, R any](fn func(A0, A1, A2, A3, A4, A5) (R, error)) FuncRef {
	invoke := func(data any, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) (R, error) {
		return (*data.(*func(A0, A1, A2, A3, A4, A5) (R, error)))(a0, a1, a2, a3, a4, a5)
	}
	return fromClosure(&fn, invoke, formatFunc[func(A0, A1, A2, A3, A4, A5) (R, error)])
}

// From7 erases a seven argument callable.
func From7[A0, A1, A2, A3, A4, A5, A6, R any](fn func(A0, A1, A2, A3, A4, A5, A6) (R, error)) FuncRef {
	invoke := func(data any, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) (R, error) {
		return (*data.(*func(A0, A1, A2, A3, A4, A5, A6) (R, error)))(a0, a1, a2, a3, a4, a5, a6)
	}
	return fromClosure(&fn, invoke, formatFunc[func(A0, A1, A2, A3, A4, A5, A6) (R, error)])
}

// From8 erases an eight argument callable.
func From8[A0, A1, A2, A3, A4, A5, A6, A7, R any](fn func(A0, A1, A2, A3, A4, A5, A6, A7) (R, error)) FuncRef {
	invoke := func(data any, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7) (R, error) {
		return (*data.(*func(A0, A1, A2, A3, A4, A5, A6, A7) (R, error)))(a0, a1, a2, a3, a4, a5, a6, a7)
	}
	return fromClosure(&fn, invoke, formatFunc[func(A0, A1, A2, A3, A4, A5, A6, A7) (R, error)])
}

// From9 erases a nine argument callable.
func From9[A0, A1, A2, A3, A4, A5, A6, A7, A8, R any](fn func(A0, A1, A2, A3, A4, A5, A6, A7, A8) (R, error)) FuncRef {
	invoke := func(data any, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8) (R, error) {
		return (*data.(*func(A0, A1, A2, A3, A4, A5, A6, A7, A8) (R, error)))(a0, a1, a2, a3, a4, a5, a6, a7, a8)
	}
	return fromClosure(&fn, invoke, formatFunc[func(A0, A1, A2, A3, A4, A5, A6, A7, A8) (R, error)])
}
