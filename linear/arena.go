package linear

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/valuebridge/errors"
)

// memoryModule is a minimal WASM module with 1 page of memory exported as "memory"
var memoryModule = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 page, no max
	0x07, 0x0a, 0x01, // export section: 10 bytes, 1 export
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, // name: "memory" (6 bytes + string)
	0x02, 0x00, // kind: memory, index 0
}

// arenaBase keeps address 0 unused so a zero pointer always means "none".
const arenaBase = 16

// Arena is standalone engine storage: a memory-only module in its own
// wazero runtime with a bump allocator.
type Arena struct {
	rt     wazero.Runtime
	mod    api.Module
	Memory *Memory
	Alloc  *BumpAllocator
}

// NewArena instantiates a fresh arena.
func NewArena(ctx context.Context) (*Arena, error) {
	rt := wazero.NewRuntime(ctx)

	mod, err := rt.Instantiate(ctx, memoryModule)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseMemory, errors.KindAllocation, err, "instantiate memory module")
	}

	mem := mod.ExportedMemory("memory")
	if mem == nil {
		_ = rt.Close(ctx)
		return nil, errors.NotFound(errors.PhaseMemory, "export", "memory")
	}

	Logger().Debug("arena created", zap.Uint32("size", mem.Size()))
	return &Arena{
		rt:     rt,
		mod:    mod,
		Memory: Wrap(mem),
		Alloc:  NewBumpAllocator(mem, arenaBase),
	}, nil
}

// Close releases the arena's runtime. Views into the arena become invalid.
func (a *Arena) Close(ctx context.Context) error {
	return a.rt.Close(ctx)
}
