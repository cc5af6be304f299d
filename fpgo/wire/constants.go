package wire

// Payload layout. All multi-byte operands are little-endian IEEE-754 binary32.
const (
	OpcodeOffset   = 0
	OperandAOffset = 1
	OperandBOffset = 5

	// InstructionSize is the number of significant payload bytes, trailing bytes are ignored.
	InstructionSize = 9
)

const (
	OpAdd  = 0
	OpMul  = 1
	OpDiv  = 2
	OpSqrt = 3
)

// Outward status codes. Every internal error collapses into one of these.
const (
	StatusSuccess                = 0
	StatusInvalidInstructionData = 1
	StatusInvalidArgument        = 2
)

// Canonical quiet NaNs. Every NaN result is replaced by these exact bit patterns.
const (
	CanonicalNaN32 = uint32(0x7fc00000)
	CanonicalNaN64 = uint64(0x7ff8000000000000)
)

// WitnessSize is payload, status byte and big-endian result bits.
const WitnessSize = InstructionSize + 1 + 4
