// Package funcref implements first class function references.
//
// A FuncRef erases a concrete Go callable behind a small dispatch table so
// translated code can store references of different types in one table and
// invoke them through a uniform calling sequence. The signature token is the
// only thing standing between an indirect call and a miscast function, so
// every call checks it before the invoke entry is reinterpreted:
//
//	f := funcref.From2(func(a, b int32) (int32, error) {
//		return a + b, nil
//	})
//	sum, err := funcref.Call2[int32](f, a, b, tr, frame)
//
// The zero value is the null reference, also available as Null. Calling it
// fails with a *CastError whose Null field is set; embeddings report that as
// a call through an uninitialized table element.
//
// Clone shares the payload without invoking it, and Drop releases payloads
// that own resources. References built with From hold plain closures, so
// their clone and drop entries are trivial; FromWithVTable is the escape
// hatch for payloads that need real ones.
package funcref
