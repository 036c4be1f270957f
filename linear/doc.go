// Package linear stores native binary data in WebAssembly linear memory.
//
// Engines compiled to WebAssembly keep their blobs inside the guest's linear
// memory. This package bridges wazero's memory API with the valuebridge
// Memory and Allocator interfaces so converted binaries can be moved into
// engine storage and read back out as borrowed views.
//
// # Memory Wrapper
//
//	mem := linear.Wrap(module.ExportedMemory("memory"))
//	// mem implements valuebridge.Memory
//
// # Allocators
//
// Guest allocation goes through cabi_realloc:
//
//	alloc := linear.WrapAllocator(ctx, module.ExportedFunction("cabi_realloc"))
//
// Modules without an allocator export can use a host-side bump allocator
// that grows memory a page at a time:
//
//	alloc := linear.NewBumpAllocator(module.ExportedMemory("memory"), 1024)
//
// An Arena bundles a memory-only module, its runtime and a bump allocator
// for hosts that need engine storage without a guest:
//
//	arena, err := linear.NewArena(ctx)
//	defer arena.Close(ctx)
//
// # Views
//
// A View is a (ptr, len) window in linear memory. It implements
// valuebridge.BinaryData, so it can be passed straight to FromBinary; the
// converter copies out of guest memory into a fresh runtime buffer.
//
//	view, err := linear.Store(mem, alloc, allocs, bin)
//	flat := linear.Lower(view) // canonical ABI list<u8>: [ptr, len]
//
// Views are borrowed: they are invalid once the allocation is freed or the
// module is closed.
package linear
