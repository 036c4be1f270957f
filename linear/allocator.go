package linear

import (
	"context"
	"math"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/valuebridge"
	"github.com/wippyai/valuebridge/errors"
)

const pageSize = 65536

var (
	_ valuebridge.Allocator = (*ReallocAllocator)(nil)
	_ valuebridge.Allocator = (*BumpAllocator)(nil)
)

// ReallocAllocator adapts a guest cabi_realloc export to valuebridge.Allocator.
type ReallocAllocator struct {
	Ctx context.Context
	Fn  api.Function
}

// WrapAllocator wraps a cabi_realloc function. It returns nil for a nil function.
func WrapAllocator(ctx context.Context, fn api.Function) *ReallocAllocator {
	if fn == nil {
		return nil
	}
	return &ReallocAllocator{Ctx: ctx, Fn: fn}
}

// Alloc allocates memory using cabi_realloc.
func (a *ReallocAllocator) Alloc(size, align uint32) (uint32, error) {
	results, err := a.Fn.Call(a.Ctx, 0, 0, uint64(align), uint64(size))
	if err != nil {
		return 0, errors.Wrap(errors.PhaseMemory, errors.KindAllocation, err, "cabi_realloc")
	}
	if len(results) == 0 {
		return 0, errors.AllocationFailed(errors.PhaseMemory, size, align)
	}
	return uint32(results[0]), nil
}

// Free deallocates memory using cabi_realloc.
func (a *ReallocAllocator) Free(ptr, size, align uint32) {
	if _, err := a.Fn.Call(a.Ctx, uint64(ptr), uint64(size), uint64(align), 0); err != nil {
		Logger().Warn("cabi_realloc free failed",
			zap.Uint32("ptr", ptr),
			zap.Uint32("size", size),
			zap.Error(err))
	}
}

// BumpAllocator hands out memory from a moving watermark and grows the
// memory when the watermark passes its end. Only the most recent allocation
// can be freed.
type BumpAllocator struct {
	mem  api.Memory
	next uint32
}

// NewBumpAllocator starts allocating at base.
func NewBumpAllocator(mem api.Memory, base uint32) *BumpAllocator {
	return &BumpAllocator{mem: mem, next: base}
}

// Alloc reserves size bytes aligned to align, which must be a power of two.
func (a *BumpAllocator) Alloc(size, align uint32) (uint32, error) {
	if align == 0 {
		align = 1
	}
	if align&(align-1) != 0 {
		return 0, errors.InvalidInput(errors.PhaseMemory, "alignment must be a power of two")
	}

	ptr := (uint64(a.next) + uint64(align) - 1) &^ (uint64(align) - 1)
	end := ptr + uint64(size)
	if end > math.MaxUint32 {
		return 0, errors.AllocationFailed(errors.PhaseMemory, size, align)
	}

	if cur := uint64(a.mem.Size()); end > cur {
		pages := (end - cur + pageSize - 1) / pageSize
		prev, ok := a.mem.Grow(uint32(pages))
		if !ok {
			return 0, errors.AllocationFailed(errors.PhaseMemory, size, align)
		}
		Logger().Debug("grew linear memory",
			zap.Uint32("fromPages", prev),
			zap.Uint64("addedPages", pages))
	}

	a.next = uint32(end)
	return uint32(ptr), nil
}

// Free reclaims the allocation if it is the most recent one.
func (a *BumpAllocator) Free(ptr, size, align uint32) {
	if uint64(ptr)+uint64(size) == uint64(a.next) {
		a.next = ptr
	}
}

// Watermark returns the next free address.
func (a *BumpAllocator) Watermark() uint32 {
	return a.next
}
