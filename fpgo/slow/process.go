package slow

import "github.com/floatproc/floatproc/fpgo/wire"

// Process is the reference pipeline: decode, dispatch and compute on raw bits.
// It returns the outward status and the result bits, zero on failure.
func Process(data []byte) (status uint8, result U32) {
	if len(data) < wire.InstructionSize {
		// covers the empty payload too
		return wire.StatusInvalidInstructionData, 0
	}
	a := ParseOperandA(data)
	b := ParseOperandB(data)
	switch ParseOpcode(data) {
	case wire.OpAdd:
		return wire.StatusSuccess, Add(a, b)
	case wire.OpMul:
		return wire.StatusSuccess, Mul(a, b)
	case wire.OpDiv:
		if isZero32(b) {
			return wire.StatusInvalidArgument, 0
		}
		return wire.StatusSuccess, Div(a, b)
	case wire.OpSqrt:
		return wire.StatusSuccess, Sqrt(a)
	default:
		return wire.StatusInvalidInstructionData, 0
	}
}
