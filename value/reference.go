package value

import "github.com/wippyai/valuebridge/errors"

// ToObject applies the runtime's coerce-to-object operation. When coercion
// fails the empty handle is returned with a nil error.
func (c *Converter[V]) ToObject(v V) (V, error) {
	return c.toObject("ToObject", v)
}

// ToArray coerces v to an object handle. It does not check that the result
// is array-shaped; callers classify first with IsArray.
func (c *Converter[V]) ToArray(v V) (V, error) {
	return c.toObject("ToArray", v)
}

// ToDate coerces v to an object handle. It does not check that the result
// is a date; callers classify first with IsDate.
func (c *Converter[V]) ToDate(v V) (V, error) {
	return c.toObject("ToDate", v)
}

func (c *Converter[V]) toObject(op string, v V) (V, error) {
	if !c.IsValid(v) {
		return c.ops.Empty(), errors.InvalidHandle(errors.PhaseToNative, op)
	}
	obj, ok := c.ops.Object(v)
	if !ok {
		return c.ops.Empty(), nil
	}
	return obj, nil
}

// ToFunction returns v when it is callable and the empty handle otherwise.
func (c *Converter[V]) ToFunction(v V) (V, error) {
	if !c.IsValid(v) {
		return c.ops.Empty(), errors.InvalidHandle(errors.PhaseToNative, "ToFunction")
	}
	if !c.IsFunction(v) {
		return c.ops.Empty(), nil
	}
	return v, nil
}

// ToConstructor returns v as a callable handle when it is a function and the
// empty handle otherwise. Use IsConstructor to check constructibility.
func (c *Converter[V]) ToConstructor(v V) (V, error) {
	if !c.IsValid(v) {
		return c.ops.Empty(), errors.InvalidHandle(errors.PhaseToNative, "ToConstructor")
	}
	if !c.IsFunction(v) {
		return c.ops.Empty(), nil
	}
	return v, nil
}
