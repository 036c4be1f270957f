package linear_test

import (
	"context"
	"testing"

	"github.com/dop251/goja"

	"github.com/wippyai/valuebridge/jsvalue"
	"github.com/wippyai/valuebridge/linear"
)

func TestRoundTrip_GojaThroughLinearMemory(t *testing.T) {
	ctx := context.Background()
	arena, err := linear.NewArena(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer arena.Close(ctx)

	rt := goja.New()
	conv, err := jsvalue.NewConverter(rt, jsvalue.Options{NodeBuffer: true})
	if err != nil {
		t.Fatal(err)
	}

	src, err := rt.RunString(`new Uint8Array([0, 1, 2, 3, 4, 5, 6, 7]).subarray(2, 6)`)
	if err != nil {
		t.Fatal(err)
	}

	bin, err := conv.ToBinary(src)
	if err != nil {
		t.Fatalf("ToBinary failed: %v", err)
	}

	allocs := linear.NewAllocationList()
	defer allocs.FreeAndRelease(arena.Alloc)

	view, err := linear.Store(arena.Memory, arena.Alloc, allocs, bin)
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	out, err := conv.FromBinary(view)
	if err != nil {
		t.Fatalf("FromBinary failed: %v", err)
	}
	if !conv.IsArrayBuffer(out) {
		t.Fatal("expected a fresh ArrayBuffer")
	}

	rt.Set("out", out)
	got, err := rt.RunString(`Array.from(new Uint8Array(out)).join(",")`)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "2,3,4,5" {
		t.Errorf("round trip = %s, want 2,3,4,5", got.String())
	}

	// The runtime buffer does not alias linear memory.
	if err := arena.Memory.Write(view.Ptr, []byte{0xff}); err != nil {
		t.Fatal(err)
	}
	got, _ = rt.RunString(`new Uint8Array(out)[0]`)
	if got.ToInteger() != 2 {
		t.Errorf("runtime buffer aliased engine memory: %v", got)
	}
}
