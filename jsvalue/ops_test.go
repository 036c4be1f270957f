package jsvalue

import (
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/valuebridge/errors"
)

func eval(t *testing.T, rt *goja.Runtime, src string) goja.Value {
	t.Helper()
	v, err := rt.RunString(src)
	require.NoError(t, err)
	return v
}

func TestNew_NilRuntime(t *testing.T) {
	_, err := New(nil, Options{})
	require.Error(t, err)
}

func TestNew_WithoutNodeBuffer(t *testing.T) {
	rt := goja.New()
	ops, err := New(rt, Options{})
	require.NoError(t, err)
	require.Nil(t, ops.bufferCtor)
	require.Equal(t, "goja", ops.Name())
	require.Same(t, rt, ops.Runtime())

	// Buffer is not defined, so a Uint8Array stays a plain view.
	v := eval(t, rt, "new Uint8Array(2)")
	require.True(t, ops.IsArrayBufferView(v))
	require.False(t, ops.IsNativeBuffer(v))
}

func TestNew_NodeBuffer(t *testing.T) {
	rt := goja.New()
	ops, err := New(rt, Options{NodeBuffer: true})
	require.NoError(t, err)
	require.NotNil(t, ops.bufferCtor)

	buf := eval(t, rt, "Buffer.from('hi')")
	require.True(t, ops.IsNativeBuffer(buf))
	require.False(t, ops.IsArrayBufferView(buf))
	require.Equal(t, []byte("hi"), ops.NativeBufferContents(buf))
}

func TestNew_MissingGlobal(t *testing.T) {
	rt := goja.New()
	_, err := rt.RunString("delete globalThis.Number")
	require.NoError(t, err)

	_, err = New(rt, Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Number")
}

func TestViewWindow(t *testing.T) {
	rt := goja.New()
	ops, err := New(rt, Options{})
	require.NoError(t, err)

	v := eval(t, rt, "new Uint8Array(new Uint8Array([0, 1, 2, 3, 4, 5]).buffer, 1, 3)")
	require.Equal(t, 3, ops.ViewByteLength(v))

	dst := make([]byte, 3)
	require.Equal(t, 3, ops.CopyViewContents(v, dst))
	require.Equal(t, []byte{1, 2, 3}, dst)

	require.Equal(t, 0, ops.ViewByteLength(eval(t, rt, "({})")))
	require.Equal(t, 0, ops.CopyViewContents(eval(t, rt, "'x'"), dst))
}

func TestViewWindow_MultiByteElements(t *testing.T) {
	rt := goja.New()
	conv, err := NewConverter(rt, Options{})
	require.NoError(t, err)

	_, err = rt.RunString(`var backing = new Uint8Array(24).map((_, i) => i).buffer`)
	require.NoError(t, err)

	tests := []struct {
		expr string
		want []byte
	}{
		{"new Int16Array(backing, 2, 2)", []byte{2, 3, 4, 5}},
		{"new Uint32Array(backing, 4, 1)", []byte{4, 5, 6, 7}},
		{"new Float64Array(backing, 8, 1)", []byte{8, 9, 10, 11, 12, 13, 14, 15}},
		{"new Int16Array(backing, 2, 4).subarray(1, 3)", []byte{4, 5, 6, 7}},
		{"new DataView(backing, 3, 2)", []byte{3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			v := eval(t, rt, tt.expr)
			require.True(t, conv.IsArrayBufferView(v))

			bin, err := conv.ToBinary(v)
			require.NoError(t, err)
			require.Equal(t, tt.want, bin.Bytes())
		})
	}
}

func TestViewWindow_IgnoresInstanceOverrides(t *testing.T) {
	rt := goja.New()
	conv, err := NewConverter(rt, Options{NodeBuffer: true})
	require.NoError(t, err)

	tests := []struct {
		name string
		expr string
		want []byte
	}{
		{"throwing getter", `(() => {
			const u = new Uint8Array([1, 2, 3, 4]);
			Object.defineProperty(u, 'byteLength', { get() { throw new Error('x') } });
			return u;
		})()`, []byte{1, 2, 3, 4}},
		{"shadowed window", `(() => {
			const u = new Uint8Array([1, 2, 3, 4]);
			Object.defineProperty(u, 'byteLength', { value: 1 });
			Object.defineProperty(u, 'byteOffset', { value: 3 });
			return u;
		})()`, []byte{1, 2, 3, 4}},
		{"shadowed buffer", `(() => {
			const u = new Uint8Array([1, 2, 3, 4]);
			Object.defineProperty(u, 'buffer', { value: new ArrayBuffer(64) });
			return u;
		})()`, []byte{1, 2, 3, 4}},
		{"patched prototype", `(() => {
			const u = Buffer.from('abcd');
			Object.defineProperty(Object.getPrototypeOf(u), 'byteOffset', { get() { return 2 } });
			return u;
		})()`, []byte("abcd")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bin, err := conv.ToBinary(eval(t, rt, tt.expr))
			require.NoError(t, err)
			require.Equal(t, tt.want, bin.Bytes())
		})
	}
}

func TestIsNativeBuffer_RequiresView(t *testing.T) {
	rt := goja.New()
	conv, err := NewConverter(rt, Options{NodeBuffer: true})
	require.NoError(t, err)

	fake := eval(t, rt, "Object.create(Buffer.prototype)")
	require.False(t, conv.IsNativeBuffer(fake))
	require.False(t, conv.IsArrayBufferView(fake))
	require.False(t, conv.IsBinary(fake))

	_, err = conv.ToBinary(fake)
	require.True(t, errors.Is(err, errors.ErrTypeMismatch), "got %v", err)

	// A Uint8Array reparented onto Buffer.prototype is still a real view.
	reparented := eval(t, rt, "Object.setPrototypeOf(new Uint8Array([7, 8]), Buffer.prototype)")
	require.True(t, conv.IsNativeBuffer(reparented))
	bin, err := conv.ToBinary(reparented)
	require.NoError(t, err)
	require.Equal(t, []byte{7, 8}, bin.Bytes())
}

func TestNew_CapturesViewAccessors(t *testing.T) {
	rt := goja.New()
	ops, err := New(rt, Options{})
	require.NoError(t, err)
	require.Len(t, ops.views, 2)
}

func TestArrayBufferContents_Live(t *testing.T) {
	rt := goja.New()
	ops, err := New(rt, Options{})
	require.NoError(t, err)

	v, store := ops.NewArrayBuffer(4)
	require.Len(t, store, 4)
	copy(store, []byte{4, 3, 2, 1})

	require.NoError(t, rt.Set("ab", v))
	require.Equal(t, "4,3,2,1", eval(t, rt, "new Uint8Array(ab).join(',')").String())
	require.Equal(t, []byte{4, 3, 2, 1}, ops.ArrayBufferContents(v))
	require.Nil(t, ops.ArrayBufferContents(eval(t, rt, "new Uint8Array(1)")))
}

func TestObjectCoercion(t *testing.T) {
	rt := goja.New()
	ops, err := New(rt, Options{})
	require.NoError(t, err)

	_, ok := ops.Object(goja.Null())
	require.False(t, ok)
	_, ok = ops.Object(goja.Undefined())
	require.False(t, ok)

	boxed, ok := ops.Object(rt.ToValue("s"))
	require.True(t, ok)
	require.True(t, ops.IsObject(boxed))
	require.False(t, ops.IsString(boxed))
}

func TestCoercionThrowIsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	rt := goja.New()
	ops, err := New(rt, Options{Logger: zap.New(core)})
	require.NoError(t, err)

	_, err = ops.Number(eval(t, rt, "({ valueOf() { throw new Error('bad') } })"))
	require.Error(t, err)

	_, err = ops.String(eval(t, rt, "({ toString() { throw new Error('worse') } })"))
	require.Error(t, err)

	require.Equal(t, 1, logs.FilterMessage("numeric coercion threw").Len())
	require.Equal(t, 1, logs.FilterMessage("string coercion threw").Len())
}

func TestPrimitiveKinds(t *testing.T) {
	rt := goja.New()
	ops, err := New(rt, Options{})
	require.NoError(t, err)

	require.True(t, ops.IsNumber(rt.ToValue(int64(3))))
	require.True(t, ops.IsNumber(rt.ToValue(2.5)))
	require.False(t, ops.IsNumber(eval(t, rt, "new Number(2)")))
	require.True(t, ops.IsString(rt.ToValue("x")))
	require.False(t, ops.IsString(eval(t, rt, "new String('x')")))
	require.True(t, ops.IsBoolean(rt.ToValue(false)))
	require.False(t, ops.IsBoolean(eval(t, rt, "new Boolean(false)")))
}

func TestConstructorVsFunction(t *testing.T) {
	rt := goja.New()
	ops, err := New(rt, Options{})
	require.NoError(t, err)

	arrow := eval(t, rt, "(() => 1)")
	require.True(t, ops.IsFunction(arrow))
	require.False(t, ops.IsConstructor(arrow))

	plain := eval(t, rt, "(function F() {})")
	require.True(t, ops.IsFunction(plain))
	require.True(t, ops.IsConstructor(plain))
}
