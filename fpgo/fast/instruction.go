package fast

import (
	"fmt"

	"github.com/floatproc/floatproc/fpgo/wire"
)

type Opcode uint8

const (
	OpAdd  = Opcode(wire.OpAdd)
	OpMul  = Opcode(wire.OpMul)
	OpDiv  = Opcode(wire.OpDiv)
	OpSqrt = Opcode(wire.OpSqrt)
)

var opcodeNames = [...]string{
	OpAdd:  "add",
	OpMul:  "mul",
	OpDiv:  "div",
	OpSqrt: "sqrt",
}

// Valid reports whether the opcode selects an operation.
func (op Opcode) Valid() bool {
	return int(op) < len(opcodeNames)
}

func (op Opcode) String() string {
	if op.Valid() {
		return opcodeNames[op]
	}
	return fmt.Sprintf("op(0x%02x)", uint8(op))
}

// ParseOpcode maps an operation name, as printed by String, back to its opcode.
func ParseOpcode(name string) (Opcode, error) {
	for i, n := range opcodeNames {
		if n == name {
			return Opcode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", name)
}

// Instruction is one decoded payload. The opcode is carried unchecked.
type Instruction struct {
	Opcode Opcode
	A      float32
	B      float32
}

func (insn Instruction) String() string {
	return fmt.Sprintf("%s(%g, %g)", insn.Opcode, insn.A, insn.B)
}
