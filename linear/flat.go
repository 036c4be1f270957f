package linear

import (
	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/valuebridge/errors"
	"github.com/wippyai/valuebridge/value"
)

// CoreTypes returns the core wasm value types a WIT type flattens to under
// the canonical ABI. Only the types native values convert to, and their
// integer relatives, are supported.
func CoreTypes(t wit.Type) ([]api.ValueType, error) {
	switch v := t.(type) {
	case wit.Bool, wit.U8, wit.S8, wit.U16, wit.S16, wit.U32, wit.S32, wit.Char:
		return []api.ValueType{api.ValueTypeI32}, nil
	case wit.U64, wit.S64:
		return []api.ValueType{api.ValueTypeI64}, nil
	case wit.F32:
		return []api.ValueType{api.ValueTypeF32}, nil
	case wit.F64:
		return []api.ValueType{api.ValueTypeF64}, nil
	case wit.String:
		return []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}, nil
	case *wit.TypeDef:
		if _, ok := v.Kind.(*wit.List); ok {
			return []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}, nil
		}
	}
	return nil, errors.Unsupported(errors.PhaseMemory, "canonical flattening of this WIT type")
}

// NativeCoreTypes returns the flattened core types of a native type.
func NativeCoreTypes(t value.NativeType) ([]api.ValueType, error) {
	wt := t.WIT()
	if wt == nil {
		return nil, errors.Unsupported(errors.PhaseMemory, t.String()+" has no flat representation")
	}
	return CoreTypes(wt)
}

// binaryFlat is the flattening of value.BinaryType.
var binaryFlat, _ = CoreTypes(value.BinaryType)
