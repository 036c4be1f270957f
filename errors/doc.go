// Package errors provides structured error types for the valuebridge library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes the conversion operation, the runtime kind of the
// offending value, the requested native type, and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseToNative, errors.KindTypeMismatch).
//		Op("ToNumber").
//		RuntimeKind("string").
//		NativeType("f64").
//		Detail("value not convertible to a number").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseToNative, "ToBinary", "object", "list<u8>")
//	err := errors.InvalidHandle(errors.PhaseToNative, "ToString")
//
// All errors implement the standard error interface and support errors.Is/As.
// The ErrTypeMismatch and ErrInvalidHandle sentinels match by Kind in any phase:
//
//	if errors.Is(err, errors.ErrTypeMismatch) { ... }
package errors
