package slow

import "github.com/floatproc/floatproc/fpgo/wire"

// Payload field parsing. These should 1:1 match the decoding in the fast package.

func parseOpcode(data []byte) uint8 {
	return data[wire.OpcodeOffset]
}

// little-endian binary32 at offset
func parseOperand(data []byte, offset int) U32 {
	return U32(data[offset]) |
		U32(data[offset+1])<<8 |
		U32(data[offset+2])<<16 |
		U32(data[offset+3])<<24
}

func ParseOpcode(data []byte) uint8 {
	return parseOpcode(data)
}

func ParseOperandA(data []byte) U32 {
	return parseOperand(data, wire.OperandAOffset)
}

func ParseOperandB(data []byte) U32 {
	return parseOperand(data, wire.OperandBOffset)
}
