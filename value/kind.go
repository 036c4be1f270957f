package value

import "go.bytecodealliance.org/wit"

// Kind is the classification of a runtime value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindUndefined
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindArrayBuffer
	KindArrayBufferView
	KindNativeBuffer
	KindArray
	KindDate
	KindConstructor
	KindFunction
	KindObject
	KindOther
)

var kindNames = [...]string{
	KindInvalid:         "invalid",
	KindUndefined:       "undefined",
	KindNull:            "null",
	KindBoolean:         "boolean",
	KindNumber:          "number",
	KindString:          "string",
	KindArrayBuffer:     "array-buffer",
	KindArrayBufferView: "array-buffer-view",
	KindNativeBuffer:    "native-buffer",
	KindArray:           "array",
	KindDate:            "date",
	KindConstructor:     "constructor",
	KindFunction:        "function",
	KindObject:          "object",
	KindOther:           "other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsBinary reports whether k is one of the three binary sub-kinds.
func (k Kind) IsBinary() bool {
	return k == KindArrayBuffer || k == KindArrayBufferView || k == KindNativeBuffer
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return KindInvalid, false
}

// NativeType is a native-side type a runtime value converts to.
type NativeType uint8

const (
	NativeBool NativeType = iota
	NativeF64
	NativeString
	NativeBinary
	NativeObject
	NativeFunction
)

// BinaryType is the WIT type of an owned binary buffer.
var BinaryType wit.Type = &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}

// WIT returns the WIT type of t, or nil for reference types that have no
// value representation.
func (t NativeType) WIT() wit.Type {
	switch t {
	case NativeBool:
		return wit.Bool{}
	case NativeF64:
		return wit.F64{}
	case NativeString:
		return wit.String{}
	case NativeBinary:
		return BinaryType
	default:
		return nil
	}
}

func (t NativeType) String() string {
	switch t {
	case NativeObject:
		return "object"
	case NativeFunction:
		return "function"
	}
	return witTypeStr(t.WIT())
}

func witTypeStr(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.F64:
		return "f64"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if l, ok := v.Kind.(*wit.List); ok {
			return "list<" + witTypeStr(l.Type) + ">"
		}
		if v.Name != nil {
			return *v.Name
		}
		return "typedef"
	default:
		return "unknown"
	}
}
