package test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/floatproc/floatproc/fpgo/fast"
	"github.com/floatproc/floatproc/fpgo/slow"
	"github.com/floatproc/floatproc/fpgo/wire"
)

// edge values as binary32 bit patterns
var edgeBits = []uint32{
	0x00000000, 0x80000000, // +-0
	0x00000001, 0x80000001, // smallest subnormal
	0x00000002, 0x00000003,
	0x007fffff, 0x807fffff, // largest subnormal
	0x00800000, 0x80800000, // smallest normal
	0x00800001, 0x00ffffff,
	0x3f800000, 0xbf800000, // +-1
	0x3f800001, 0x3f7fffff,
	0x40000000, 0x40400000, 0x3f000000, // 2, 3, 0.5
	0x4048f5c3, 0x40370a3d, // 3.14, 2.86
	0x3dcccccd, // 0.1
	0x0d800000, 0x1f800000, 0x20000000, // tiny normals for underflow
	0x5f800000, 0x60000000, // large for overflow
	0x7f7fffff, 0xff7fffff, // +-max
	0x7f000000, 0x7effffff,
	0x7f800000, 0xff800000, // +-inf
	0x7fc00000, 0xffc00000, 0x7f800001, 0x7fc12345, // NaNs
	0x4b000000, 0x4b7fffff, 0x4affffff, // around 2^23
	0x33800000, 0x34000000, // around half ulp of 1
	0x40490fdb, 0xc0490fdb, // pi
}

func fastBits(v float32) uint32 {
	return math.Float32bits(v)
}

func f32(bits uint32) float32 {
	return math.Float32frombits(bits)
}

func TestKernelEdgeGrid(t *testing.T) {
	for _, a := range edgeBits {
		require.Equal(t, fastBits(fast.Sqrt32(f32(a))), slow.Sqrt(a), "sqrt %08x", a)
		for _, b := range edgeBits {
			require.Equal(t, fastBits(fast.Add32(f32(a), f32(b))), slow.Add(a, b), "add %08x %08x", a, b)
			require.Equal(t, fastBits(fast.Mul32(f32(a), f32(b))), slow.Mul(a, b), "mul %08x %08x", a, b)
			if q, err := fast.Div32(f32(a), f32(b)); err == nil {
				require.Equal(t, fastBits(q), slow.Div(a, b), "div %08x %08x", a, b)
			}
		}
	}
}

func TestKernelSweep(t *testing.T) {
	// a deterministic walk over the exponent range, with a few odd significands
	var values []uint32
	for exp := uint32(0); exp < 0xff; exp += 7 {
		for _, frac := range []uint32{0, 1, 0x2aaaaa, 0x555555, 0x7fffff} {
			values = append(values, exp<<23|frac, 1<<31|exp<<23|frac)
		}
	}
	for _, a := range values {
		require.Equal(t, fastBits(fast.Sqrt32(f32(a))), slow.Sqrt(a), "sqrt %08x", a)
		for _, b := range values {
			require.Equal(t, fastBits(fast.Add32(f32(a), f32(b))), slow.Add(a, b), "add %08x %08x", a, b)
			require.Equal(t, fastBits(fast.Mul32(f32(a), f32(b))), slow.Mul(a, b), "mul %08x %08x", a, b)
			if q, err := fast.Div32(f32(a), f32(b)); err == nil {
				require.Equal(t, fastBits(q), slow.Div(a, b), "div %08x %08x", a, b)
			}
		}
	}
}

func FuzzAdd(f *testing.F) {
	f.Add(uint32(0x4048f5c3), uint32(0x40370a3d))
	f.Add(uint32(0x7f7fffff), uint32(0x7f7fffff))
	f.Add(uint32(0x00000001), uint32(0x80000002))
	f.Fuzz(func(t *testing.T, a uint32, b uint32) {
		require.Equal(t, fastBits(fast.Add32(f32(a), f32(b))), slow.Add(a, b))
	})
}

func FuzzMul(f *testing.F) {
	f.Add(uint32(0x7f7fffff), uint32(0x40000000))
	f.Add(uint32(0x00000001), uint32(0x3f000000))
	f.Fuzz(func(t *testing.T, a uint32, b uint32) {
		require.Equal(t, fastBits(fast.Mul32(f32(a), f32(b))), slow.Mul(a, b))
	})
}

func FuzzDiv(f *testing.F) {
	f.Add(uint32(0x3f800000), uint32(0x40400000))
	f.Add(uint32(0x3f800000), uint32(0x00000001))
	f.Fuzz(func(t *testing.T, a uint32, b uint32) {
		q, err := fast.Div32(f32(a), f32(b))
		if err != nil {
			require.Equal(t, uint32(0), b&0x7fffffff)
			return
		}
		require.Equal(t, fastBits(q), slow.Div(a, b))
	})
}

func FuzzSqrt(f *testing.F) {
	f.Add(uint32(0x40000000))
	f.Add(uint32(0xbf800000))
	f.Add(uint32(0x00000001))
	f.Fuzz(func(t *testing.T, a uint32) {
		require.Equal(t, fastBits(fast.Sqrt32(f32(a))), slow.Sqrt(a))
	})
}

func FuzzProcess(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x02, 0, 0, 0x20, 0x41, 0, 0, 0, 0})
	f.Add([]byte{0x05, 0, 0, 0x80, 0x3f, 0, 0, 0x80, 0x3f})
	f.Add([]byte{0x01, 0xff, 0xff, 0x7f, 0x7f, 0, 0, 0, 0x40, 0xaa})
	f.Add([]byte{0x03, 0, 0, 0x80, 0xbf, 0, 0, 0, 0})
	f.Fuzz(func(t *testing.T, data []byte) {
		out := fast.Process(data, nil)
		status, result := slow.Process(data)
		require.Equal(t, uint8(out.Status()), status)
		require.Equal(t, out.ResultBits(), result)
	})
}

func TestProcessProperties(t *testing.T) {
	data := make([]byte, wire.InstructionSize)
	for _, a := range edgeBits {
		for _, zero := range []uint32{0, 0x80000000} {
			data[0] = wire.OpDiv
			binary.LittleEndian.PutUint32(data[1:], a)
			binary.LittleEndian.PutUint32(data[5:], zero)
			require.Equal(t, fast.StatusInvalidArgument, fast.Process(data, nil).Status(), "dividend %08x", a)
			status, _ := slow.Process(data)
			require.Equal(t, uint8(wire.StatusInvalidArgument), status)
		}
	}
}
