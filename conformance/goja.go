package conformance

import (
	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/buffer"

	"github.com/wippyai/valuebridge/errors"
	"github.com/wippyai/valuebridge/jsvalue"
)

// Goja returns a Factory producing goja targets configured by opts.
func Goja(opts jsvalue.Options) Factory[goja.Value] {
	return func() (*Target[goja.Value], error) {
		rt := goja.New()
		conv, err := jsvalue.NewConverter(rt, opts)
		if err != nil {
			return nil, err
		}
		name := "goja"
		if opts.NodeBuffer {
			name = "goja+buffer"
		}
		return &Target[goja.Value]{
			Name:     name,
			Conv:     conv,
			Fixtures: &gojaFixtures{rt: rt, nodeBuffer: opts.NodeBuffer},
		}, nil
	}
}

type gojaFixtures struct {
	rt         *goja.Runtime
	nodeBuffer bool
}

func (f *gojaFixtures) ArrayBuffer(data []byte) (goja.Value, error) {
	return f.rt.ToValue(f.rt.NewArrayBuffer(clone(data))), nil
}

func (f *gojaFixtures) View(backing []byte, offset, length int) (goja.Value, error) {
	ab := f.rt.NewArrayBuffer(clone(backing))
	obj, err := f.rt.New(f.rt.Get("Uint8Array"), f.rt.ToValue(ab), f.rt.ToValue(offset), f.rt.ToValue(length))
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (f *gojaFixtures) NativeBuffer(data []byte) (goja.Value, error) {
	if !f.nodeBuffer {
		return nil, errors.Unsupported(errors.PhaseCheck, "runtime has no native buffer")
	}
	return buffer.WrapBytes(f.rt, clone(data)), nil
}

func (f *gojaFixtures) Object() (goja.Value, error) {
	return f.rt.NewObject(), nil
}

func (f *gojaFixtures) Eval(expr string) (goja.Value, error) {
	return f.rt.RunString(expr)
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
