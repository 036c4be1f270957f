package valuebridge

// placeholder backs every zero-length OwnedBinary so Bytes never returns nil.
var placeholder = make([]byte, 0)

// BinaryData is a read-only view of native bytes that may be borrowed from
// engine storage. Read returns memory the caller must not retain past the
// current call; converters copy out of it.
type BinaryData interface {
	Len() int
	Read() ([]byte, error)
}

// OwnedBinary is a byte sequence exclusively owned by the native side.
// The zero value is not valid; use NewOwnedBinary or CopyBinary.
type OwnedBinary struct {
	data []byte
}

// NewOwnedBinary takes ownership of data. The caller must not modify data
// afterwards. A nil or empty slice yields a zero-length buffer whose
// Bytes is non-nil.
func NewOwnedBinary(data []byte) OwnedBinary {
	if len(data) == 0 {
		return OwnedBinary{data: placeholder}
	}
	return OwnedBinary{data: data}
}

// CopyBinary returns an OwnedBinary holding a fresh copy of src.
func CopyBinary(src []byte) OwnedBinary {
	if len(src) == 0 {
		return OwnedBinary{data: placeholder}
	}
	data := make([]byte, len(src))
	copy(data, src)
	return OwnedBinary{data: data}
}

// Bytes returns the owned storage. Never nil for a constructed buffer.
func (b OwnedBinary) Bytes() []byte {
	return b.data
}

// Len returns the logical length in bytes.
func (b OwnedBinary) Len() int {
	return len(b.data)
}

// Read implements BinaryData.
func (b OwnedBinary) Read() ([]byte, error) {
	return b.data, nil
}

// IsNull reports whether b was never constructed.
func (b OwnedBinary) IsNull() bool {
	return b.data == nil
}
