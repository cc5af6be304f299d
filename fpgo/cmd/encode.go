package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	"github.com/floatproc/floatproc/fpgo/fast"
)

func Encode(ctx *cli.Context) error {
	op, err := parseOp(ctx.String(OpFlag.Name))
	if err != nil {
		return err
	}
	a, err := parseOperand32(ctx.String(OperandAFlag.Name))
	if err != nil {
		return err
	}
	b, err := parseOperand32(ctx.String(OperandBFlag.Name))
	if err != nil {
		return err
	}
	fmt.Println(hexutil.Encode(fast.Encode(fast.Instruction{Opcode: op, A: a, B: b})))
	return nil
}

var EncodeCommand = &cli.Command{
	Name:        "encode",
	Usage:       "Encode an instruction payload",
	Description: "Encode an operation and two binary32 operands into the hex payload accepted by exec and run.",
	Action:      Encode,
	Flags: []cli.Flag{
		OpFlag,
		OperandAFlag,
		OperandBFlag,
	},
}
