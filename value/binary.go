package value

import (
	"github.com/wippyai/valuebridge"
	"github.com/wippyai/valuebridge/errors"
)

const binarySources = "ArrayBuffer, ArrayBufferView, and native Buffer"

// ToBinary copies the bytes of a binary runtime value into a fresh
// OwnedBinary. The result never aliases runtime memory and its Bytes is
// non-nil even when empty. An adapter panic while reading the value is
// reported as a type mismatch.
func (c *Converter[V]) ToBinary(v V) (bin valuebridge.OwnedBinary, err error) {
	if !c.IsValid(v) {
		return valuebridge.OwnedBinary{}, errors.InvalidHandle(errors.PhaseToNative, "ToBinary")
	}

	defer func() {
		if r := recover(); r != nil {
			bin = valuebridge.OwnedBinary{}
			err = c.mismatch("ToBinary", v, NativeBinary).
				Detail("reading binary contents failed: %v", r).
				Build()
		}
	}()

	switch c.binaryKind(v) {
	case KindArrayBuffer:
		return valuebridge.CopyBinary(c.ops.ArrayBufferContents(v)), nil

	case KindArrayBufferView:
		// Only the view's own window is materialized, never the backing buffer.
		n := c.ops.ViewByteLength(v)
		if n <= 0 {
			return valuebridge.NewOwnedBinary(nil), nil
		}
		data := make([]byte, n)
		copied := c.ops.CopyViewContents(v, data)
		return valuebridge.NewOwnedBinary(data[:copied]), nil

	case KindNativeBuffer:
		return valuebridge.CopyBinary(c.ops.NativeBufferContents(v)), nil
	}

	return valuebridge.OwnedBinary{}, c.mismatch("ToBinary", v, NativeBinary).
		Detail("can only convert %s objects to binary", binarySources).
		Build()
}

// FromBinary allocates a new runtime raw buffer of exactly data.Len() bytes
// and copies data into it. The runtime buffer never shares storage with data.
func (c *Converter[V]) FromBinary(data valuebridge.BinaryData) (V, error) {
	if data == nil {
		return c.ops.Empty(), errors.InvalidInput(errors.PhaseFromNative, "nil binary data")
	}

	n := data.Len()
	if n == 0 {
		v, _ := c.ops.NewArrayBuffer(0)
		return v, nil
	}

	src, err := data.Read()
	if err != nil {
		return c.ops.Empty(), errors.New(errors.PhaseFromNative, errors.KindInvalidData).
			Op("FromBinary").
			NativeType(NativeBinary.String()).
			Detail("read %d source bytes", n).
			Cause(err).
			Build()
	}
	if len(src) != n {
		return c.ops.Empty(), errors.New(errors.PhaseFromNative, errors.KindInvalidData).
			Op("FromBinary").
			Detail("source returned %d bytes, expected %d", len(src), n).
			Build()
	}

	v, store := c.ops.NewArrayBuffer(n)
	if len(store) != n {
		return c.ops.Empty(), errors.New(errors.PhaseFromNative, errors.KindAllocation).
			Op("FromBinary").
			Detail("runtime allocated %d bytes, expected %d", len(store), n).
			Build()
	}
	copy(store, src)
	return v, nil
}
