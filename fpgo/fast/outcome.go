package fast

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/floatproc/floatproc/fpgo/wire"
)

// Status is the outward result category of one processed payload.
type Status uint8

const (
	StatusSuccess                = Status(wire.StatusSuccess)
	StatusInvalidInstructionData = Status(wire.StatusInvalidInstructionData)
	StatusInvalidArgument        = Status(wire.StatusInvalidArgument)
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusInvalidInstructionData:
		return "InvalidInstructionData"
	case StatusInvalidArgument:
		return "InvalidArgument"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// StatusOf collapses an error from Decode or Dispatch into its outward status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrDivisionByZero):
		return StatusInvalidArgument
	default:
		// empty, truncated, unknown opcode
		return StatusInvalidInstructionData
	}
}

// Outcome is the result of one Process call.
type Outcome struct {
	// Payload holds the significant payload bytes, zero padded when the payload was short.
	Payload     [wire.InstructionSize]byte
	Instruction Instruction
	Result      float32
	Err         error
}

// Process decodes data and dispatches the instruction.
func Process(data []byte, rep Reporter) *Outcome {
	out := &Outcome{}
	copy(out.Payload[:], data)
	insn, err := Decode(data)
	if err != nil {
		out.Err = err
		return out
	}
	out.Instruction = insn
	out.Result, out.Err = Dispatch(insn, rep)
	return out
}

func (o *Outcome) Status() Status {
	return StatusOf(o.Err)
}

// ResultBits is the raw binary32 result, zero on failure.
func (o *Outcome) ResultBits() uint32 {
	if o.Err != nil {
		return 0
	}
	return math.Float32bits(o.Result)
}

func (o *Outcome) EncodeWitness() Witness {
	out := make([]byte, 0, wire.WitnessSize)
	out = append(out, o.Payload[:]...)
	out = append(out, byte(o.Status()))
	out = binary.BigEndian.AppendUint32(out, o.ResultBits())
	return out
}
