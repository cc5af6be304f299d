package fast

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/floatproc/floatproc/fpgo/wire"
)

// Decode parses the first wire.InstructionSize bytes of data.
// Operand bit patterns are not validated, and trailing bytes are ignored.
func Decode(data []byte) (Instruction, error) {
	if len(data) == 0 {
		return Instruction{}, ErrEmptyPayload
	}
	if len(data) < wire.InstructionSize {
		return Instruction{}, fmt.Errorf("%w: got %d bytes, need %d", ErrTruncated, len(data), wire.InstructionSize)
	}
	return Instruction{
		Opcode: Opcode(data[wire.OpcodeOffset]),
		A:      math.Float32frombits(binary.LittleEndian.Uint32(data[wire.OperandAOffset:])),
		B:      math.Float32frombits(binary.LittleEndian.Uint32(data[wire.OperandBOffset:])),
	}, nil
}

// Encode produces the wire form of insn.
func Encode(insn Instruction) []byte {
	out := make([]byte, 0, wire.InstructionSize)
	out = append(out, byte(insn.Opcode))
	out = binary.LittleEndian.AppendUint32(out, math.Float32bits(insn.A))
	out = binary.LittleEndian.AppendUint32(out, math.Float32bits(insn.B))
	return out
}
