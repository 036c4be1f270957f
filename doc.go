// Package valuebridge converts values between a host scripting runtime and a
// native, statically-typed engine object model.
//
// The library classifies opaque runtime values into a fixed set of kinds,
// converts scalars with strict coercion rules, and moves binary data across
// the boundary with copy semantics so native buffers never alias runtime
// memory.
//
// # Architecture Overview
//
//	valuebridge/         Root package with OwnedBinary, BinaryData, Memory and Allocator
//	├── value/           Classifier and Converter written once against value.Ops
//	├── jsvalue/         value.Ops for the goja JavaScript runtime (with Node Buffer)
//	├── linear/          Engine storage in WebAssembly linear memory (wazero)
//	├── conformance/     Conformance scenarios, YAML case files, JUnit XML report
//	├── errors/          Structured error types
//	├── cmd/inspect/     Command line inspector and interactive REPL
//	└── examples/basic/  Round trip from goja through linear memory
//
// # Quick Start
//
//	rt := goja.New()
//	conv, err := jsvalue.NewConverter(rt, jsvalue.Options{NodeBuffer: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v, _ := rt.RunString("new Uint8Array([1, 2, 3]).subarray(1)")
//	bin, err := conv.ToBinary(v)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(bin.Bytes()) // [2 3]
//
// # Ownership
//
// OwnedBinary values returned by ToBinary are fresh allocations and stay
// valid after the source runtime value is collected. FromBinary always
// allocates a new runtime buffer and copies into it.
//
// # Thread Safety
//
// Host scripting runtimes are single-threaded with respect to value access.
// Converters and adapters perform no locking and must be used from the
// goroutine that owns the runtime.
package valuebridge
