package jsvalue

import (
	"github.com/dop251/goja"
	"go.uber.org/zap"
)

// NewArrayBuffer allocates a fresh ArrayBuffer backed by a new Go slice.
func (o *Ops) NewArrayBuffer(size int) (goja.Value, []byte) {
	store := make([]byte, size)
	return o.rt.ToValue(o.rt.NewArrayBuffer(store)), store
}

// ArrayBufferContents returns the live backing store of an ArrayBuffer.
// A detached buffer has no contents.
func (o *Ops) ArrayBufferContents(v goja.Value) []byte {
	ab, ok := arrayBuffer(v)
	if !ok || ab.Detached() {
		return nil
	}
	return ab.Bytes()
}

// ViewByteLength implements value.Ops.
func (o *Ops) ViewByteLength(v goja.Value) int {
	_, length, _ := o.viewWindow(v)
	return length
}

// CopyViewContents copies the view's window, starting at its byteOffset,
// into dst.
func (o *Ops) CopyViewContents(v goja.Value, dst []byte) int {
	data, length, ok := o.viewWindow(v)
	if !ok {
		return 0
	}
	return copy(dst, data[:length])
}

// NativeBufferContents returns the bytes a Buffer addresses. Buffers are
// Uint8Array views, so this is the view window.
func (o *Ops) NativeBufferContents(v goja.Value) []byte {
	data, length, ok := o.viewWindow(v)
	if !ok {
		return nil
	}
	return data[:length]
}

// viewWindow resolves an ArrayBufferView to the slice of its backing store
// starting at byteOffset, and the view's byteLength. The window comes from
// the intrinsic getters, so instance properties named buffer, byteOffset or
// byteLength are never consulted.
func (o *Ops) viewWindow(v goja.Value) ([]byte, int, bool) {
	if !isObject(v) {
		return nil, 0, false
	}
	for _, acc := range o.views {
		if data, length, ok := o.window(acc, v); ok {
			return data, length, true
		}
	}
	return nil, 0, false
}

func (o *Ops) window(acc viewAccessors, v goja.Value) ([]byte, int, bool) {
	// A receiver of the wrong view type makes the getter throw.
	buf, err := acc.buffer(v)
	if err != nil {
		return nil, 0, false
	}
	ab, ok := arrayBuffer(buf)
	if !ok || ab.Detached() {
		return nil, 0, false
	}
	off, err := acc.byteOffset(v)
	if err != nil {
		return nil, 0, false
	}
	n, err := acc.byteLength(v)
	if err != nil {
		return nil, 0, false
	}

	store := ab.Bytes()
	offset, length := off.ToInteger(), n.ToInteger()
	if offset < 0 || length < 0 || offset+length > int64(len(store)) {
		o.log.Debug("view window outside backing buffer",
			zap.Int64("byteOffset", offset),
			zap.Int64("byteLength", length),
			zap.Int("bufferLength", len(store)))
		return nil, 0, false
	}
	return store[offset:], int(length), true
}
