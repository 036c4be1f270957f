package value

// Classifier answers kind questions about runtime values.
type Classifier[V any] struct {
	ops Ops[V]
}

// NewClassifier returns a Classifier backed by ops.
func NewClassifier[V any](ops Ops[V]) *Classifier[V] {
	return &Classifier[V]{ops: ops}
}

// test runs a kind test, treating the empty handle and adapter panics as false.
func (c *Classifier[V]) test(pred func(V) bool, v V) (ok bool) {
	if c.ops.IsEmpty(v) {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return pred(v)
}

func (c *Classifier[V]) IsArray(v V) bool           { return c.test(c.ops.IsArray, v) }
func (c *Classifier[V]) IsArrayBuffer(v V) bool     { return c.test(c.ops.IsArrayBuffer, v) }
func (c *Classifier[V]) IsArrayBufferView(v V) bool { return c.test(c.ops.IsArrayBufferView, v) }
func (c *Classifier[V]) IsNativeBuffer(v V) bool    { return c.test(c.ops.IsNativeBuffer, v) }
func (c *Classifier[V]) IsDate(v V) bool            { return c.test(c.ops.IsDate, v) }
func (c *Classifier[V]) IsBoolean(v V) bool         { return c.test(c.ops.IsBoolean, v) }
func (c *Classifier[V]) IsConstructor(v V) bool     { return c.test(c.ops.IsConstructor, v) }
func (c *Classifier[V]) IsFunction(v V) bool        { return c.test(c.ops.IsFunction, v) }
func (c *Classifier[V]) IsNull(v V) bool            { return c.test(c.ops.IsNull, v) }
func (c *Classifier[V]) IsNumber(v V) bool          { return c.test(c.ops.IsNumber, v) }
func (c *Classifier[V]) IsObject(v V) bool          { return c.test(c.ops.IsObject, v) }
func (c *Classifier[V]) IsString(v V) bool          { return c.test(c.ops.IsString, v) }
func (c *Classifier[V]) IsUndefined(v V) bool       { return c.test(c.ops.IsUndefined, v) }

// IsValid reports whether v is a non-empty handle.
func (c *Classifier[V]) IsValid(v V) bool {
	return !c.ops.IsEmpty(v)
}

// IsBinary reports whether v is a raw buffer, a typed view, or a
// runtime-native buffer, checked in that order.
func (c *Classifier[V]) IsBinary(v V) bool {
	return c.binaryKind(v) != KindInvalid
}

func (c *Classifier[V]) binaryKind(v V) Kind {
	switch {
	case c.IsArrayBuffer(v):
		return KindArrayBuffer
	case c.IsArrayBufferView(v):
		return KindArrayBufferView
	case c.IsNativeBuffer(v):
		return KindNativeBuffer
	default:
		return KindInvalid
	}
}

// KindOf returns the most specific kind of v.
func (c *Classifier[V]) KindOf(v V) Kind {
	if !c.IsValid(v) {
		return KindInvalid
	}
	if k := c.binaryKind(v); k != KindInvalid {
		return k
	}
	switch {
	case c.IsUndefined(v):
		return KindUndefined
	case c.IsNull(v):
		return KindNull
	case c.IsBoolean(v):
		return KindBoolean
	case c.IsNumber(v):
		return KindNumber
	case c.IsString(v):
		return KindString
	case c.IsArray(v):
		return KindArray
	case c.IsDate(v):
		return KindDate
	case c.IsFunction(v):
		return KindFunction
	case c.IsObject(v):
		return KindObject
	default:
		return KindOther
	}
}

// Kinds returns every kind whose predicate holds for v, in Kind order.
func (c *Classifier[V]) Kinds(v V) []Kind {
	if !c.IsValid(v) {
		return nil
	}
	checks := [...]struct {
		kind Kind
		pred func(V) bool
	}{
		{KindUndefined, c.IsUndefined},
		{KindNull, c.IsNull},
		{KindBoolean, c.IsBoolean},
		{KindNumber, c.IsNumber},
		{KindString, c.IsString},
		{KindArrayBuffer, c.IsArrayBuffer},
		{KindArrayBufferView, c.IsArrayBufferView},
		{KindNativeBuffer, c.IsNativeBuffer},
		{KindArray, c.IsArray},
		{KindDate, c.IsDate},
		{KindConstructor, c.IsConstructor},
		{KindFunction, c.IsFunction},
		{KindObject, c.IsObject},
	}
	kinds := make([]Kind, 0, 4)
	for _, chk := range checks {
		if chk.pred(v) {
			kinds = append(kinds, chk.kind)
		}
	}
	return kinds
}
