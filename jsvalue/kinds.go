package jsvalue

import "github.com/dop251/goja"

const (
	classArray = "Array"
	classDate  = "Date"
)

// IsEmpty implements value.Ops.
func (o *Ops) IsEmpty(v goja.Value) bool {
	return v == nil
}

func (o *Ops) IsUndefined(v goja.Value) bool {
	return goja.IsUndefined(v)
}

func (o *Ops) IsNull(v goja.Value) bool {
	return goja.IsNull(v)
}

func (o *Ops) IsBoolean(v goja.Value) bool {
	if isObject(v) {
		return false
	}
	_, ok := v.Export().(bool)
	return ok
}

func (o *Ops) IsNumber(v goja.Value) bool {
	if isObject(v) {
		return false
	}
	switch v.Export().(type) {
	case int64, float64:
		return true
	}
	return false
}

func (o *Ops) IsString(v goja.Value) bool {
	if isObject(v) {
		return false
	}
	_, ok := v.Export().(string)
	return ok
}

func (o *Ops) IsObject(v goja.Value) bool {
	return isObject(v)
}

func (o *Ops) IsArray(v goja.Value) bool {
	obj, ok := v.(*goja.Object)
	return ok && obj.ClassName() == classArray
}

func (o *Ops) IsDate(v goja.Value) bool {
	obj, ok := v.(*goja.Object)
	return ok && obj.ClassName() == classDate
}

func (o *Ops) IsFunction(v goja.Value) bool {
	_, ok := goja.AssertFunction(v)
	return ok
}

// IsConstructor reports whether v can be called with new. Arrow functions
// and methods are functions but not constructors.
func (o *Ops) IsConstructor(v goja.Value) bool {
	_, ok := goja.AssertConstructor(v)
	return ok
}

func (o *Ops) IsArrayBuffer(v goja.Value) bool {
	_, ok := arrayBuffer(v)
	return ok
}

// IsArrayBufferView reports typed arrays and DataViews. Buffer instances are
// excluded when Node buffers are enabled.
func (o *Ops) IsArrayBufferView(v goja.Value) bool {
	return o.isRealView(v) && !o.IsNativeBuffer(v)
}

// IsNativeBuffer reports Buffer instances. Objects that merely inherit from
// Buffer.prototype have no view slots and are not buffers.
func (o *Ops) IsNativeBuffer(v goja.Value) bool {
	if o.bufferCtor == nil || !o.isRealView(v) {
		return false
	}
	return o.rt.InstanceOf(v, o.bufferCtor)
}

// isRealView asks ArrayBuffer.isView, which checks internal slots rather
// than the prototype chain.
func (o *Ops) isRealView(v goja.Value) bool {
	if !isObject(v) {
		return false
	}
	res, err := o.isView(goja.Undefined(), v)
	return err == nil && res.ToBoolean()
}

func isObject(v goja.Value) bool {
	_, ok := v.(*goja.Object)
	return ok
}

func arrayBuffer(v goja.Value) (goja.ArrayBuffer, bool) {
	obj, ok := v.(*goja.Object)
	if !ok {
		return goja.ArrayBuffer{}, false
	}
	ab, ok := obj.Export().(goja.ArrayBuffer)
	return ab, ok
}
