package fast

import (
	"math"

	"github.com/floatproc/floatproc/fpgo/wire"
)

// Binary32 arithmetic. Each operation is a single IEEE-754 operation with
// round-to-nearest-even. The explicit float32 conversions keep the compiler
// from fusing operations across calls.

func Add32(a, b float32) float32 {
	return canon32(float32(a + b))
}

func Mul32(a, b float32) float32 {
	return canon32(float32(a * b))
}

// Div32 only rejects a divisor that compares equal to zero, so both +0 and -0.
// Any other divisor, including subnormals and NaN, yields the IEEE-754 quotient.
func Div32(a, b float32) (float32, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return canon32(float32(a / b)), nil
}

// Sqrt32 returns NaN for negative input, no error is signaled.
func Sqrt32(a float32) float32 {
	return canon32(float32(math.Sqrt(float64(a))))
}

// canon32 replaces any NaN with the canonical quiet NaN, hosts disagree on NaN sign and payload.
func canon32(v float32) float32 {
	if v != v {
		return math.Float32frombits(wire.CanonicalNaN32)
	}
	return v
}
