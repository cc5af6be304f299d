package fast

import (
	"math"

	"github.com/floatproc/floatproc/fpgo/wire"
)

// Binary64 variants, semantically identical to the binary32 set.

func Add64(a, b float64) float64 {
	return canon64(float64(a + b))
}

func Mul64(a, b float64) float64 {
	return canon64(float64(a * b))
}

func Div64(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return canon64(float64(a / b)), nil
}

func Sqrt64(a float64) float64 {
	return canon64(math.Sqrt(a))
}

func canon64(v float64) float64 {
	if v != v {
		return math.Float64frombits(wire.CanonicalNaN64)
	}
	return v
}
