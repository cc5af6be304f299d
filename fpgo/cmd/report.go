package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/floatproc/floatproc/fpgo/fast"
)

// Report is the JSON form of one processed payload.
// Results are rendered as text and raw bits, since JSON has no NaN or Inf.
type Report struct {
	Payload    hexutil.Bytes `json:"payload"`
	Opcode     string        `json:"opcode,omitempty"`
	Status     string        `json:"status"`
	Error      string        `json:"error,omitempty"`
	Result     string        `json:"result,omitempty"`
	ResultBits HexU32        `json:"resultBits"`
	StateHash  common.Hash   `json:"stateHash"`
}

func NewReport(data []byte, out *fast.Outcome) (*Report, error) {
	hash, err := out.EncodeWitness().StateHash()
	if err != nil {
		return nil, fmt.Errorf("failed to hash witness: %w", err)
	}
	r := &Report{
		Payload:    data,
		Status:     out.Status().String(),
		ResultBits: HexU32(out.ResultBits()),
		StateHash:  hash,
	}
	if len(data) > 0 {
		r.Opcode = fast.Opcode(data[0]).String()
	}
	if out.Err != nil {
		r.Error = out.Err.Error()
	} else {
		r.Result = fmt.Sprintf("%v", out.Result)
	}
	return r, nil
}
