// Package jsvalue implements value.Ops for the goja JavaScript runtime.
//
// The adapter is bound to a single *goja.Runtime, which serves as the
// execution context for every conversion:
//
//	rt := goja.New()
//	conv, err := jsvalue.NewConverter(rt, jsvalue.Options{NodeBuffer: true})
//	if err != nil {
//	    return err
//	}
//	n, err := conv.ToNumber(rt.ToValue("3.5")) // 3.5
//
// # Binary Kinds
//
//	ArrayBuffer         raw byte buffer
//	ArrayBufferView     typed arrays and DataView, excluding Buffer
//	Buffer              Node-style buffer from goja_nodejs (NodeBuffer option)
//
// Buffer extends Uint8Array, so it is also an ArrayBufferView to the
// runtime. The adapter reports it only as a native buffer so the three
// binary sub-kinds never overlap.
//
// # Coercion
//
// Numeric and string coercion go through the runtime's own Number and
// String functions captured when the adapter is created. Exceptions thrown
// by user valueOf or toString methods are returned as errors and logged at
// debug level.
//
// # Thread Safety
//
// goja runtimes are not goroutine-safe; neither is Ops.
package jsvalue
