package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dop251/goja"

	"github.com/wippyai/valuebridge/conformance"
	"github.com/wippyai/valuebridge/jsvalue"
	"github.com/wippyai/valuebridge/linear"
	"github.com/wippyai/valuebridge/value"
)

// session is one goja runtime with its converter and an arena that binary
// results are stored into.
type session struct {
	rt    *goja.Runtime
	conv  *value.Converter[goja.Value]
	arena *linear.Arena
}

type conversion struct {
	name   string
	result string
	err    error
}

type inspection struct {
	expr        string
	kind        value.Kind
	kinds       []value.Kind
	conversions []conversion
}

func newSession(ctx context.Context, nodeBuffer bool) (*session, error) {
	rt := goja.New()
	conv, err := jsvalue.NewConverter(rt, jsvalue.Options{NodeBuffer: nodeBuffer})
	if err != nil {
		return nil, err
	}
	arena, err := linear.NewArena(ctx)
	if err != nil {
		return nil, err
	}
	return &session{rt: rt, conv: conv, arena: arena}, nil
}

func (s *session) Close(ctx context.Context) error {
	return s.arena.Close(ctx)
}

// inspect evaluates expr and runs every conversion on the result.
func (s *session) inspect(expr string) (*inspection, error) {
	v, err := s.rt.RunString(expr)
	if err != nil {
		return nil, err
	}

	in := &inspection{expr: expr, kind: s.conv.KindOf(v), kinds: s.conv.Kinds(v)}

	n, err := s.conv.ToNumber(v)
	in.add(value.NativeF64, strconv.FormatFloat(n, 'g', -1, 64), err)

	b, err := s.conv.ToBoolean(v)
	in.add(value.NativeBool, strconv.FormatBool(b), err)

	str, err := s.conv.ToString(v)
	in.add(value.NativeString, strconv.Quote(str), err)

	bin, err := s.conv.ToBinary(v)
	if err != nil {
		in.add(value.NativeBinary, "", err)
		return in, nil
	}
	in.add(value.NativeBinary, fmt.Sprintf("%d bytes %s", bin.Len(), conformance.Digest(bin.Bytes())), nil)

	allocs := linear.NewAllocationList()
	defer allocs.FreeAndRelease(s.arena.Alloc)

	view, err := linear.Store(s.arena.Memory, s.arena.Alloc, allocs, bin)
	if err != nil {
		in.conversions = append(in.conversions, conversion{name: "engine", err: err})
		return in, nil
	}
	flat := linear.Lower(view)
	in.conversions = append(in.conversions, conversion{
		name:   "engine",
		result: fmt.Sprintf("%s (ptr=%d, len=%d)", value.NativeBinary, flat[0], flat[1]),
	})
	return in, nil
}

func (in *inspection) add(t value.NativeType, result string, err error) {
	in.conversions = append(in.conversions, conversion{name: t.String(), result: result, err: err})
}
