package cmd

import (
	"fmt"
	"math"

	"github.com/urfave/cli/v2"

	"github.com/floatproc/floatproc/fpgo/fast"
)

func eval64(op fast.Opcode, a, b float64) (float64, error) {
	switch op {
	case fast.OpAdd:
		return fast.Add64(a, b), nil
	case fast.OpMul:
		return fast.Mul64(a, b), nil
	case fast.OpDiv:
		return fast.Div64(a, b)
	case fast.OpSqrt:
		return fast.Sqrt64(a), nil
	default:
		return 0, fast.ErrOpcode(op)
	}
}

func Eval(ctx *cli.Context) error {
	op, err := parseOp(ctx.String(OpFlag.Name))
	if err != nil {
		return err
	}
	if ctx.Bool(DoubleFlag.Name) {
		a, err := parseOperand64(ctx.String(OperandAFlag.Name))
		if err != nil {
			return err
		}
		b, err := parseOperand64(ctx.String(OperandBFlag.Name))
		if err != nil {
			return err
		}
		v, err := eval64(op, a, b)
		if err != nil {
			return fmt.Errorf("%s failed: %w", op, err)
		}
		fmt.Printf("%v 0x%016x\n", v, math.Float64bits(v))
		return nil
	}
	a, err := parseOperand32(ctx.String(OperandAFlag.Name))
	if err != nil {
		return err
	}
	b, err := parseOperand32(ctx.String(OperandBFlag.Name))
	if err != nil {
		return err
	}
	v, err := fast.Dispatch(fast.Instruction{Opcode: op, A: a, B: b}, nil)
	if err != nil {
		return fmt.Errorf("%s failed: %w", op, err)
	}
	fmt.Printf("%v 0x%08x\n", v, math.Float32bits(v))
	return nil
}

var EvalCommand = &cli.Command{
	Name:        "eval",
	Usage:       "Call the arithmetic kernel directly",
	Description: "Call the binary32 kernel, or the binary64 kernel with --double, and print the result with its bits.",
	Action:      Eval,
	Flags: []cli.Flag{
		OpFlag,
		OperandAFlag,
		OperandBFlag,
		DoubleFlag,
	},
}
