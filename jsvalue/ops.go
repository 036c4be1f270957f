package jsvalue

import (
	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/buffer"
	"github.com/dop251/goja_nodejs/require"
	"go.uber.org/zap"

	"github.com/wippyai/valuebridge/errors"
	"github.com/wippyai/valuebridge/value"
)

// Options configures the goja adapter.
type Options struct {
	// Logger overrides the package logger for this adapter.
	Logger *zap.Logger
	// NodeBuffer enables the Node-style Buffer global and classifies its
	// instances as runtime-native buffers.
	NodeBuffer bool
}

// Ops implements value.Ops[goja.Value] for one goja runtime.
type Ops struct {
	rt         *goja.Runtime
	log        *zap.Logger
	isView     goja.Callable
	toNumber   goja.Callable
	toString   goja.Callable
	bufferCtor *goja.Object
	// views holds the intrinsic accessors of %TypedArray%.prototype and
	// DataView.prototype, tried in that order.
	views      []viewAccessors
}

// viewAccessors are the built-in getters of one view prototype. Calling
// them with the view as receiver ignores instance-level overrides.
type viewAccessors struct {
	buffer     goja.Callable
	byteOffset goja.Callable
	byteLength goja.Callable
}

var _ value.Ops[goja.Value] = (*Ops)(nil)

// New creates an adapter bound to rt.
func New(rt *goja.Runtime, opts Options) (*Ops, error) {
	if rt == nil {
		return nil, errors.InvalidInput(errors.PhaseAdapter, "nil goja runtime")
	}

	o := &Ops{rt: rt, log: opts.Logger}
	if o.log == nil {
		o.log = Logger()
	}

	var err error
	if o.isView, err = o.global("ArrayBuffer", "isView"); err != nil {
		return nil, err
	}
	if o.toNumber, err = o.global("Number", ""); err != nil {
		return nil, err
	}
	if o.toString, err = o.global("String", ""); err != nil {
		return nil, err
	}
	if err := o.captureViewAccessors(); err != nil {
		return nil, err
	}

	if opts.NodeBuffer {
		if err := o.enableBuffer(); err != nil {
			return nil, err
		}
	}

	o.log.Debug("goja adapter created", zap.Bool("nodeBuffer", o.bufferCtor != nil))
	return o, nil
}

// NewConverter creates an adapter bound to rt and wraps it in a Converter.
func NewConverter(rt *goja.Runtime, opts Options) (*value.Converter[goja.Value], error) {
	o, err := New(rt, opts)
	if err != nil {
		return nil, err
	}
	return value.NewConverter[goja.Value](o), nil
}

// Runtime returns the bound goja runtime.
func (o *Ops) Runtime() *goja.Runtime {
	return o.rt
}

func (o *Ops) global(name, method string) (goja.Callable, error) {
	v := o.rt.Get(name)
	if v == nil || goja.IsUndefined(v) {
		return nil, errors.NotFound(errors.PhaseAdapter, "global", name)
	}
	if method != "" {
		obj, ok := v.(*goja.Object)
		if !ok {
			return nil, errors.NotFound(errors.PhaseAdapter, "global", name)
		}
		v = obj.Get(method)
		name += "." + method
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, errors.NotFound(errors.PhaseAdapter, "function", name)
	}
	return fn, nil
}

func (o *Ops) captureViewAccessors() error {
	describe, err := o.global("Object", "getOwnPropertyDescriptor")
	if err != nil {
		return err
	}

	u8, ok := o.rt.Get("Uint8Array").(*goja.Object)
	if !ok || u8.Prototype() == nil {
		return errors.NotFound(errors.PhaseAdapter, "global", "Uint8Array")
	}
	dv, ok := o.rt.Get("DataView").(*goja.Object)
	if !ok {
		return errors.NotFound(errors.PhaseAdapter, "global", "DataView")
	}

	protos := []struct {
		name  string
		proto goja.Value
	}{
		{"TypedArray.prototype", u8.Prototype().Get("prototype")},
		{"DataView.prototype", dv.Get("prototype")},
	}
	for _, p := range protos {
		var acc viewAccessors
		if acc.buffer, err = o.getter(describe, p.proto, p.name, "buffer"); err != nil {
			return err
		}
		if acc.byteOffset, err = o.getter(describe, p.proto, p.name, "byteOffset"); err != nil {
			return err
		}
		if acc.byteLength, err = o.getter(describe, p.proto, p.name, "byteLength"); err != nil {
			return err
		}
		o.views = append(o.views, acc)
	}
	return nil
}

func (o *Ops) getter(describe goja.Callable, proto goja.Value, owner, name string) (goja.Callable, error) {
	desc, err := describe(goja.Undefined(), proto, o.rt.ToValue(name))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseAdapter, errors.KindNotFound, err, owner+"."+name)
	}
	obj, ok := desc.(*goja.Object)
	if !ok {
		return nil, errors.NotFound(errors.PhaseAdapter, "accessor", owner+"."+name)
	}
	fn, ok := goja.AssertFunction(obj.Get("get"))
	if !ok {
		return nil, errors.NotFound(errors.PhaseAdapter, "getter", owner+"."+name)
	}
	return fn, nil
}

func (o *Ops) enableBuffer() error {
	if req := o.rt.Get("require"); req == nil || goja.IsUndefined(req) {
		require.NewRegistry().Enable(o.rt)
	}
	buffer.Enable(o.rt)

	ctor, ok := o.rt.Get("Buffer").(*goja.Object)
	if !ok {
		return errors.NotFound(errors.PhaseAdapter, "global", "Buffer")
	}
	o.bufferCtor = ctor
	return nil
}

// Name implements value.Ops.
func (o *Ops) Name() string {
	return "goja"
}
