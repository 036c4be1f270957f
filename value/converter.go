package value

import (
	"math"

	"github.com/wippyai/valuebridge/errors"
)

// Converter moves values across the runtime/native boundary.
type Converter[V any] struct {
	*Classifier[V]
	ops Ops[V]
}

// NewConverter returns a Converter backed by ops.
func NewConverter[V any](ops Ops[V]) *Converter[V] {
	return &Converter[V]{
		Classifier: NewClassifier(ops),
		ops:        ops,
	}
}

// Ops returns the runtime adapter.
func (c *Converter[V]) Ops() Ops[V] {
	return c.ops
}

func (c *Converter[V]) FromBoolean(b bool) V   { return c.ops.NewBoolean(b) }
func (c *Converter[V]) FromNumber(f float64) V { return c.ops.NewNumber(f) }
func (c *Converter[V]) FromString(s string) V  { return c.ops.NewString(s) }
func (c *Converter[V]) FromNull() V            { return c.ops.Null() }
func (c *Converter[V]) FromUndefined() V       { return c.ops.Undefined() }

// ToBoolean applies the runtime's truthiness coercion. It fails only for the
// empty handle.
func (c *Converter[V]) ToBoolean(v V) (bool, error) {
	if !c.IsValid(v) {
		return false, errors.InvalidHandle(errors.PhaseToNative, "ToBoolean")
	}
	return c.ops.Truthy(v), nil
}

// ToNumber applies the runtime's numeric coercion. A NaN result, including
// a value that is literally NaN, is a type mismatch. Infinities pass through.
func (c *Converter[V]) ToNumber(v V) (float64, error) {
	if !c.IsValid(v) {
		return 0, errors.InvalidHandle(errors.PhaseToNative, "ToNumber")
	}
	f, err := c.ops.Number(v)
	if err != nil {
		return 0, c.mismatch("ToNumber", v, NativeF64).
			Detail("numeric coercion threw").
			Cause(err).
			Build()
	}
	if math.IsNaN(f) {
		return 0, c.mismatch("ToNumber", v, NativeF64).
			Detail("value not convertible to a number").
			Build()
	}
	return f, nil
}

// ToString applies the runtime's default stringification.
func (c *Converter[V]) ToString(v V) (string, error) {
	if !c.IsValid(v) {
		return "", errors.InvalidHandle(errors.PhaseToNative, "ToString")
	}
	s, err := c.ops.String(v)
	if err != nil {
		return "", c.mismatch("ToString", v, NativeString).
			Detail("string coercion threw").
			Cause(err).
			Build()
	}
	return s, nil
}

func (c *Converter[V]) mismatch(op string, v V, want NativeType) *errors.Builder {
	return errors.New(errors.PhaseToNative, errors.KindTypeMismatch).
		Op(op).
		RuntimeKind(c.KindOf(v).String()).
		NativeType(want.String())
}
