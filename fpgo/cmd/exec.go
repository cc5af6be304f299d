package cmd

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/optimism/op-service/jsonutil"

	"github.com/floatproc/floatproc/fpgo/fast"
)

var OutFilePerm = os.FileMode(0o644)

func Exec(ctx *cli.Context) error {
	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return err
	}
	l, err := FormattedLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	data, err := hexutil.Decode(ctx.String(PayloadFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	out := fast.Process(data, &LogReporter{Log: l})
	if cfg.Verify {
		if err := Verify(data, out, cfg.Repeat); err != nil {
			return err
		}
	}
	report, err := NewReport(data, out)
	if err != nil {
		return err
	}
	if err := jsonutil.WriteJSON("-", report, OutFilePerm); err != nil {
		return fmt.Errorf("failed to write outcome: %w", err)
	}
	if out.Err != nil {
		l.Debug("payload rejected", "status", out.Status(), "err", out.Err)
		return &StatusError{Status: out.Status(), Err: out.Err}
	}
	return nil
}

var ExecCommand = &cli.Command{
	Name:        "exec",
	Usage:       "Process one instruction payload",
	Description: "Decode, dispatch and compute one payload. The trace line goes to the log, the outcome JSON to stdout.",
	Action:      Exec,
	Flags: []cli.Flag{
		PayloadFlag,
		RunVerifyFlag,
		RunRepeatFlag,
	},
}
