package conformance

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wippyai/valuebridge"
	"github.com/wippyai/valuebridge/errors"
)

// Builtin returns the scenarios every adapter must pass.
func Builtin[V any]() []Scenario[V] {
	return []Scenario[V]{
		{Name: "zero-length/array-buffer", Run: zeroLength[V](func(f Fixtures[V]) (V, error) { return f.ArrayBuffer(nil) })},
		{Name: "zero-length/view", Run: zeroLength[V](func(f Fixtures[V]) (V, error) { return f.View(make([]byte, 4), 2, 0) })},
		{Name: "zero-length/native-buffer", Run: zeroLength[V](func(f Fixtures[V]) (V, error) { return f.NativeBuffer(nil) })},
		{Name: "round-trip", Run: roundTrip[V]},
		{Name: "round-trip/native-buffer", Run: nativeRoundTrip[V]},
		{Name: "view-window", Run: viewWindow[V]},
		{Name: "number-coercion", Run: numberCoercion[V]},
		{Name: "number-nan-rejected", Run: nanRejected[V]},
		{Name: "boolean-total", Run: booleanTotal[V]},
		{Name: "binary-exclusive", Run: binaryExclusive[V]},
		{Name: "binary-type-mismatch", Run: binaryMismatch[V]},
		{Name: "invalid-handle", Run: invalidHandle[V]},
	}
}

func zeroLength[V any](build func(Fixtures[V]) (V, error)) func(*Target[V]) error {
	return func(t *Target[V]) error {
		v, err := build(t.Fixtures)
		if err != nil {
			return err
		}
		bin, err := t.Conv.ToBinary(v)
		if err != nil {
			return fmt.Errorf("ToBinary: %w", err)
		}
		if bin.Len() != 0 {
			return fmt.Errorf("length %d, want 0", bin.Len())
		}
		if bin.IsNull() {
			return fmt.Errorf("zero-length buffer has null storage")
		}
		return nil
	}
}

var roundTripInputs = [][]byte{
	{},
	{0x00},
	{0x01, 0x02, 0x03},
	[]byte("binary\x00data\xff"),
	bytes.Repeat([]byte{0xab}, 4096),
}

func roundTrip[V any](t *Target[V]) error {
	for _, in := range roundTripInputs {
		src := valuebridge.CopyBinary(in)

		v, err := t.Conv.FromBinary(src)
		if err != nil {
			return fmt.Errorf("FromBinary(%d bytes): %w", len(in), err)
		}

		// The runtime buffer must not alias the source.
		if len(in) > 0 {
			src.Bytes()[0] ^= 0xff
		}

		out, err := t.Conv.ToBinary(v)
		if err != nil {
			return fmt.Errorf("ToBinary(%d bytes): %w", len(in), err)
		}
		if !bytes.Equal(out.Bytes(), in) {
			return fmt.Errorf("round trip of %d bytes: %s, want %s", len(in), Digest(out.Bytes()), Digest(in))
		}

		// Nor may the result alias the runtime buffer.
		if len(in) > 0 {
			out.Bytes()[0] ^= 0xff
			again, err := t.Conv.ToBinary(v)
			if err != nil {
				return err
			}
			if !bytes.Equal(again.Bytes(), in) {
				return fmt.Errorf("ToBinary result aliases runtime storage")
			}
		}
	}
	return nil
}

func nativeRoundTrip[V any](t *Target[V]) error {
	want := []byte{0x01, 0x02, 0x03}
	v, err := t.Fixtures.NativeBuffer(want)
	if err != nil {
		return err
	}
	if !t.Conv.IsNativeBuffer(v) {
		return fmt.Errorf("fixture not classified as native buffer: %v", t.Conv.Kinds(v))
	}

	bin, err := t.Conv.ToBinary(v)
	if err != nil {
		return fmt.Errorf("ToBinary: %w", err)
	}

	back, err := t.Conv.FromBinary(bin)
	if err != nil {
		return fmt.Errorf("FromBinary: %w", err)
	}
	out, err := t.Conv.ToBinary(back)
	if err != nil {
		return fmt.Errorf("ToBinary: %w", err)
	}
	if out.Len() != 3 || !bytes.Equal(out.Bytes(), want) {
		return fmt.Errorf("got %x, want %x", out.Bytes(), want)
	}
	return nil
}

func viewWindow[V any](t *Target[V]) error {
	backing := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	v, err := t.Fixtures.View(backing, 2, 4)
	if err != nil {
		return err
	}
	if !t.Conv.IsArrayBufferView(v) {
		return fmt.Errorf("fixture not classified as view: %v", t.Conv.Kinds(v))
	}

	bin, err := t.Conv.ToBinary(v)
	if err != nil {
		return fmt.Errorf("ToBinary: %w", err)
	}
	if want := backing[2:6]; !bytes.Equal(bin.Bytes(), want) {
		return fmt.Errorf("got %x, want %x", bin.Bytes(), want)
	}
	return nil
}

func numberCoercion[V any](t *Target[V]) error {
	got, err := t.Conv.ToNumber(t.Conv.FromString("3.5"))
	if err != nil {
		return fmt.Errorf(`ToNumber("3.5"): %w`, err)
	}
	if got != 3.5 {
		return fmt.Errorf(`ToNumber("3.5") = %v`, got)
	}

	if _, err := t.Conv.ToNumber(t.Conv.FromString("abc")); !errors.Is(err, errors.ErrTypeMismatch) {
		return fmt.Errorf(`ToNumber("abc"): want type mismatch, got %v`, err)
	}

	inf, err := t.Conv.ToNumber(t.Conv.FromNumber(math.Inf(-1)))
	if err != nil || !math.IsInf(inf, -1) {
		return fmt.Errorf("ToNumber(-Inf) = %v, %v", inf, err)
	}
	return nil
}

func nanRejected[V any](t *Target[V]) error {
	if _, err := t.Conv.ToNumber(t.Conv.FromNumber(math.NaN())); !errors.Is(err, errors.ErrTypeMismatch) {
		return fmt.Errorf("ToNumber(NaN): want type mismatch, got %v", err)
	}
	return nil
}

func booleanTotal[V any](t *Target[V]) error {
	obj, err := t.Fixtures.Object()
	if err != nil {
		return err
	}
	ab, err := t.Fixtures.ArrayBuffer([]byte{1})
	if err != nil {
		return err
	}

	inputs := map[string]V{
		"null":         t.Conv.FromNull(),
		"undefined":    t.Conv.FromUndefined(),
		"empty object": obj,
		"empty string": t.Conv.FromString(""),
		"zero":         t.Conv.FromNumber(0),
		"NaN":          t.Conv.FromNumber(math.NaN()),
		"array buffer": ab,
	}
	for name, v := range inputs {
		if _, err := t.Conv.ToBoolean(v); err != nil {
			return fmt.Errorf("ToBoolean(%s): %w", name, err)
		}
	}
	return nil
}

func binaryExclusive[V any](t *Target[V]) error {
	inputs, err := sampleValues(t)
	if err != nil {
		return err
	}
	for name, v := range inputs {
		n := 0
		for _, ok := range []bool{t.Conv.IsArrayBuffer(v), t.Conv.IsArrayBufferView(v), t.Conv.IsNativeBuffer(v)} {
			if ok {
				n++
			}
		}
		if t.Conv.IsBinary(v) != (n == 1) {
			return fmt.Errorf("%s: IsBinary=%v with %d binary sub-kinds", name, t.Conv.IsBinary(v), n)
		}
	}
	return nil
}

func binaryMismatch[V any](t *Target[V]) error {
	obj, err := t.Fixtures.Object()
	if err != nil {
		return err
	}
	for _, v := range []V{t.Conv.FromString("x"), t.Conv.FromNumber(1), obj} {
		if _, err := t.Conv.ToBinary(v); !errors.Is(err, errors.ErrTypeMismatch) {
			return fmt.Errorf("ToBinary(%s): want type mismatch, got %v", t.Conv.KindOf(v), err)
		}
	}
	return nil
}

func invalidHandle[V any](t *Target[V]) error {
	empty := t.Conv.Ops().Empty()
	checks := map[string]func() error{
		"ToBoolean":     func() error { _, err := t.Conv.ToBoolean(empty); return err },
		"ToNumber":      func() error { _, err := t.Conv.ToNumber(empty); return err },
		"ToString":      func() error { _, err := t.Conv.ToString(empty); return err },
		"ToBinary":      func() error { _, err := t.Conv.ToBinary(empty); return err },
		"ToObject":      func() error { _, err := t.Conv.ToObject(empty); return err },
		"ToArray":       func() error { _, err := t.Conv.ToArray(empty); return err },
		"ToDate":        func() error { _, err := t.Conv.ToDate(empty); return err },
		"ToFunction":    func() error { _, err := t.Conv.ToFunction(empty); return err },
		"ToConstructor": func() error { _, err := t.Conv.ToConstructor(empty); return err },
	}
	for name, check := range checks {
		if err := check(); !errors.Is(err, errors.ErrInvalidHandle) {
			return fmt.Errorf("%s(empty): want invalid handle, got %v", name, err)
		}
	}
	return nil
}

// sampleValues covers every kind the fixtures can build. A missing native
// buffer is not an error here.
func sampleValues[V any](t *Target[V]) (map[string]V, error) {
	out := map[string]V{
		"null":      t.Conv.FromNull(),
		"undefined": t.Conv.FromUndefined(),
		"boolean":   t.Conv.FromBoolean(true),
		"number":    t.Conv.FromNumber(42),
		"string":    t.Conv.FromString("s"),
	}

	var err error
	if out["object"], err = t.Fixtures.Object(); err != nil {
		return nil, err
	}
	if out["array-buffer"], err = t.Fixtures.ArrayBuffer([]byte{1, 2}); err != nil {
		return nil, err
	}
	if out["view"], err = t.Fixtures.View([]byte{1, 2, 3}, 1, 2); err != nil {
		return nil, err
	}
	nb, err := t.Fixtures.NativeBuffer([]byte{1})
	switch {
	case err == nil:
		out["native-buffer"] = nb
	case !errors.Is(err, errors.ErrUnsupported):
		return nil, err
	}
	return out, nil
}
