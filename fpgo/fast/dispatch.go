package fast

import "errors"

// Dispatch runs the operation selected by insn.Opcode.
// Sqrt applies to operand A only. A nil Reporter is allowed.
func Dispatch(insn Instruction, rep Reporter) (float32, error) {
	a, b := insn.A, insn.B
	var out float32
	switch insn.Opcode {
	case OpAdd:
		out = Add32(a, b)
	case OpMul:
		out = Mul32(a, b)
	case OpDiv:
		v, err := Div32(a, b)
		if errors.Is(err, ErrDivisionByZero) {
			return 0, ErrInvalidDivisor
		}
		out = v
	case OpSqrt:
		out = Sqrt32(a)
	default:
		return 0, ErrOpcode(insn.Opcode)
	}
	if rep != nil {
		rep.Report(insn.Opcode, a, b, out)
	}
	return out, nil
}
