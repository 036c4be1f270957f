package linear

import (
	"fmt"
	"math"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/valuebridge"
	"github.com/wippyai/valuebridge/errors"
	"github.com/wippyai/valuebridge/value"
)

var _ valuebridge.BinaryData = View{}

// View is a borrowed (ptr, len) window of bytes in linear memory.
type View struct {
	Mem  valuebridge.Memory
	Ptr  uint32
	Size uint32
}

// Len implements valuebridge.BinaryData.
func (v View) Len() int {
	return int(v.Size)
}

// Read returns the bytes of the view. The slice aliases linear memory and
// is only valid until the memory is written, grown, or closed.
func (v View) Read() ([]byte, error) {
	if v.Size == 0 {
		return []byte{}, nil
	}
	if v.Mem == nil {
		return nil, errors.InvalidInput(errors.PhaseMemory, "view has no memory")
	}
	return v.Mem.Read(v.Ptr, v.Size)
}

// Store copies bin into freshly allocated linear memory and returns a view
// of it. The allocation is recorded in allocs when allocs is non-nil;
// otherwise a failed write frees it before returning.
// Zero-length binaries are not allocated.
func Store(mem valuebridge.Memory, alloc valuebridge.Allocator, allocs *AllocationList, bin valuebridge.OwnedBinary) (View, error) {
	if mem == nil || alloc == nil {
		return View{}, errors.InvalidInput(errors.PhaseMemory, "store requires memory and allocator")
	}

	n := bin.Len()
	if n == 0 {
		return View{Mem: mem}, nil
	}
	if uint64(n) > math.MaxUint32 {
		return View{}, errors.AllocationFailed(errors.PhaseMemory, math.MaxUint32, 1)
	}

	ptr, err := alloc.Alloc(uint32(n), 1)
	if err != nil {
		return View{}, err
	}
	if allocs != nil {
		allocs.Add(ptr, uint32(n), 1)
	}

	if err := mem.Write(ptr, bin.Bytes()); err != nil {
		if allocs == nil {
			alloc.Free(ptr, uint32(n), 1)
		}
		return View{}, err
	}
	return View{Mem: mem, Ptr: ptr, Size: uint32(n)}, nil
}

// Lower flattens v to the canonical ABI core values of value.BinaryType,
// in the order given by CoreTypes.
func Lower(v View) []uint64 {
	return []uint64{api.EncodeI32(int32(v.Ptr)), api.EncodeI32(int32(v.Size))}
}

// Lift rebuilds a view from flattened value.BinaryType core values.
func Lift(mem valuebridge.Memory, flat []uint64) (View, error) {
	if len(flat) != len(binaryFlat) {
		return View{}, errors.InvalidInput(errors.PhaseMemory,
			fmt.Sprintf("%s flattens to %d core values, got %d", value.NativeBinary, len(binaryFlat), len(flat)))
	}
	if flat[0] > math.MaxUint32 || flat[1] > math.MaxUint32 {
		return View{}, errors.InvalidData(errors.PhaseMemory, "pointer or length exceeds 32 bits")
	}
	return View{Mem: mem, Ptr: uint32(flat[0]), Size: uint32(flat[1])}, nil
}

// ReadPair reads a (ptr, len) pair stored at addr, as written for a
// list<u8> result through a return pointer.
func ReadPair(mem valuebridge.Memory, addr uint32) (View, error) {
	ptr, err := mem.ReadU32(addr)
	if err != nil {
		return View{}, err
	}
	size, err := mem.ReadU32(addr + 4)
	if err != nil {
		return View{}, err
	}
	return View{Mem: mem, Ptr: ptr, Size: size}, nil
}

// WritePair writes v's (ptr, len) pair at addr.
func WritePair(mem valuebridge.Memory, addr uint32, v View) error {
	if err := mem.WriteU32(addr, v.Ptr); err != nil {
		return err
	}
	return mem.WriteU32(addr+4, v.Size)
}
