package jsvalue

import (
	"fmt"

	"github.com/dop251/goja"
	"go.uber.org/zap"
)

func (o *Ops) Empty() goja.Value              { return nil }
func (o *Ops) NewBoolean(b bool) goja.Value   { return o.rt.ToValue(b) }
func (o *Ops) NewNumber(f float64) goja.Value { return o.rt.ToValue(f) }
func (o *Ops) NewString(s string) goja.Value  { return o.rt.ToValue(s) }
func (o *Ops) Null() goja.Value               { return goja.Null() }
func (o *Ops) Undefined() goja.Value          { return goja.Undefined() }
func (o *Ops) Truthy(v goja.Value) bool       { return v.ToBoolean() }

// Number coerces v with the runtime's Number function.
func (o *Ops) Number(v goja.Value) (float64, error) {
	res, err := o.toNumber(goja.Undefined(), v)
	if err != nil {
		o.log.Debug("numeric coercion threw", zap.Error(err))
		return 0, err
	}
	return res.ToFloat(), nil
}

// String coerces v with the runtime's String function, which also accepts
// symbols.
func (o *Ops) String(v goja.Value) (string, error) {
	res, err := o.toString(goja.Undefined(), v)
	if err != nil {
		o.log.Debug("string coercion threw", zap.Error(err))
		return "", err
	}
	return res.String(), nil
}

// Object coerces v to an object. Primitives are boxed; null and undefined
// have no object form.
func (o *Ops) Object(v goja.Value) (result goja.Value, ok bool) {
	if goja.IsNull(v) || goja.IsUndefined(v) {
		return nil, false
	}
	if obj, isObj := v.(*goja.Object); isObj {
		return obj, true
	}
	defer func() {
		if r := recover(); r != nil {
			o.log.Debug("object coercion threw", zap.String("panic", fmt.Sprint(r)))
			result, ok = nil, false
		}
	}()
	return v.ToObject(o.rt), true
}
