package conformance

import (
	"github.com/wippyai/valuebridge/value"
)

// Fixtures builds runtime values that the scalar constructors of
// value.Ops cannot express.
type Fixtures[V any] interface {
	// ArrayBuffer returns a raw buffer holding a copy of data.
	ArrayBuffer(data []byte) (V, error)
	// View returns a byte view of length bytes at offset over a raw buffer
	// holding a copy of backing.
	View(backing []byte, offset, length int) (V, error)
	// NativeBuffer returns a runtime-native buffer holding a copy of data.
	// Runtimes without one return an error matching errors.ErrUnsupported.
	NativeBuffer(data []byte) (V, error)
	// Object returns an empty plain object.
	Object() (V, error)
	// Eval evaluates a source expression in the runtime's own language.
	Eval(expr string) (V, error)
}

// Target is one runtime under test.
type Target[V any] struct {
	Name     string
	Conv     *value.Converter[V]
	Fixtures Fixtures[V]
	Close    func()
}

// Factory creates a fresh Target. Each scenario gets its own.
type Factory[V any] func() (*Target[V], error)

// Scenario is a named check against a Target.
type Scenario[V any] struct {
	Name string
	Run  func(t *Target[V]) error
}
