// Package value classifies host runtime values and converts them to and from
// native values.
//
// The package is written once against the Ops interface; each host runtime
// supplies one Ops implementation and the Classifier and Converter never
// branch on which runtime they are talking to.
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ Runtime value ←→ [Classifier / Converter] ←→ Native value   │
//	│                        │                                     │
//	│                     Ops[V] (one per host runtime)            │
//	└──────────────────────────────────────────────────────────────┘
//
// # Classification
//
// Classifier predicates are pure and total. They never return an error and
// never panic, and every predicate except IsValid is false for the empty
// handle. IsBinary checks the three binary sub-kinds in a fixed order:
// raw buffer, typed view, runtime-native buffer.
//
// # Conversion
//
// From* conversions build runtime values and cannot fail, except FromBinary
// which may fail reading a borrowed source. To* conversions check the handle
// first and fail with an invalid_handle error for the empty handle.
//
//	Operation       Native type     Failure
//	──────────────────────────────────────────────────────────────
//	ToBoolean       bool            never (truthiness)
//	ToNumber        f64             type_mismatch when coercion yields NaN
//	ToString        string          only if the runtime throws
//	ToBinary        list<u8>        type_mismatch for non-binary values
//	ToObject        object handle   empty handle, no error
//	ToFunction      function        empty handle, no error
//
// # Binary Ownership
//
// ToBinary always returns a fresh allocation that outlives the source value.
// Typed views are materialized through the adapter's copy-contents accessor,
// so a view's byte offset and length are honoured. FromBinary always
// allocates a new runtime buffer and copies only when the source is
// non-empty.
//
// # Errors
//
// Errors use the structured types from the errors package:
//
//	[to_native] type_mismatch in ToNumber: runtime kind string, native type f64 - value not convertible to a number
//	[to_native] invalid_handle in ToBinary: empty value handle
//
// The package never logs; callers decide how to surface errors.
package value
