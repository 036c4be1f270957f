package value

// Ops is the set of runtime-native primitives a host runtime adapter supplies.
//
// Kind tests are only called with non-empty values. Implementations are bound
// to their execution context and are not safe for concurrent use unless the
// runtime itself is.
type Ops[V any] interface {
	// Name identifies the host runtime in errors and reports.
	Name() string

	IsEmpty(v V) bool
	IsArray(v V) bool
	IsArrayBuffer(v V) bool
	IsArrayBufferView(v V) bool
	IsNativeBuffer(v V) bool
	IsDate(v V) bool
	IsBoolean(v V) bool
	IsConstructor(v V) bool
	IsFunction(v V) bool
	IsNull(v V) bool
	IsNumber(v V) bool
	IsObject(v V) bool
	IsString(v V) bool
	IsUndefined(v V) bool

	Empty() V
	NewBoolean(b bool) V
	NewNumber(f float64) V
	NewString(s string) V
	Null() V
	Undefined() V
	// NewArrayBuffer allocates a runtime-owned raw buffer of exactly size
	// bytes and returns it together with its writable backing store.
	NewArrayBuffer(size int) (V, []byte)

	// Truthy applies the runtime's boolean coercion.
	Truthy(v V) bool
	// Number applies the runtime's numeric coercion. An error is returned
	// only when coercion throws; NaN is a valid result at this level.
	Number(v V) (float64, error)
	// String applies the runtime's default stringification.
	String(v V) (string, error)
	// Object applies the runtime's coerce-to-object operation.
	Object(v V) (V, bool)

	// ArrayBufferContents returns the live backing store of a raw buffer.
	ArrayBufferContents(v V) []byte
	// ViewByteLength returns the number of bytes a typed view addresses.
	ViewByteLength(v V) int
	// CopyViewContents copies the view's own bytes into dst and returns the
	// number of bytes copied.
	CopyViewContents(v V, dst []byte) int
	// NativeBufferContents returns the bytes of a runtime-native buffer.
	NativeBufferContents(v V) []byte
}
