package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/pkg/profile"

	"github.com/ethereum-optimism/optimism/op-service/jsonutil"

	"github.com/floatproc/floatproc/fpgo/fast"
)

// Batch is the JSON input of the run command.
type Batch struct {
	Payloads []hexutil.Bytes `json:"payloads"`
}

type BatchOptions struct {
	Verify bool
	Repeat uint64
	// InfoAt logs progress every InfoAt payloads, 0 disables it.
	InfoAt uint64
}

// ProcessBatch processes payloads in order. Rejected payloads are reported, not returned as errors;
// only a verification failure or cancellation stops the batch.
func ProcessBatch(ctx context.Context, l log.Logger, payloads []hexutil.Bytes, opts BatchOptions) ([]*Report, error) {
	rep := &LogReporter{Log: l, Debug: true}
	reports := make([]*Report, 0, len(payloads))
	failures := 0
	start := time.Now()

	for i, data := range payloads {
		if i%100 == 0 { // don't do the ctx err check too often
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if opts.InfoAt != 0 && uint64(i)%opts.InfoAt == 0 {
			delta := time.Since(start)
			l.Info("processing",
				"index", i,
				"failures", failures,
				"pps", float64(i)/(float64(delta)/float64(time.Second)),
			)
		}

		out := fast.Process(data, rep)
		if out.Err != nil {
			failures++
		}
		if opts.Verify {
			if err := Verify(data, out, opts.Repeat); err != nil {
				return nil, fmt.Errorf("payload %d (%s): %w", i, data, err)
			}
		}
		r, err := NewReport(data, out)
		if err != nil {
			return nil, fmt.Errorf("payload %d: %w", i, err)
		}
		reports = append(reports, r)
	}

	l.Info("processed batch", "payloads", len(payloads), "failures", failures, "elapsed", time.Since(start))
	return reports, nil
}

func Run(ctx *cli.Context) error {
	if ctx.Bool(RunPProfCPU.Name) {
		defer profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop()
	}

	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return err
	}
	l, err := FormattedLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	batch, err := jsonutil.LoadJSON[Batch](ctx.Path(RunInputFlag.Name))
	if err != nil {
		return fmt.Errorf("failed to load batch: %w", err)
	}

	reports, err := ProcessBatch(ctx.Context, l, batch.Payloads, BatchOptions{
		Verify: cfg.Verify,
		Repeat: cfg.Repeat,
		InfoAt: ctx.Uint64(RunInfoAtFlag.Name),
	})
	if err != nil {
		return err
	}

	if err := jsonutil.WriteJSON(ctx.Path(RunOutputFlag.Name), reports, OutFilePerm); err != nil {
		return fmt.Errorf("failed to write outcomes: %w", err)
	}
	return nil
}

var RunCommand = &cli.Command{
	Name:        "run",
	Usage:       "Process a batch of payloads",
	Description: "Process a JSON batch of payloads and write one outcome per payload. With --verify every payload is cross-checked against the reference kernel.",
	Action:      Run,
	Flags: []cli.Flag{
		RunInputFlag,
		RunOutputFlag,
		RunVerifyFlag,
		RunRepeatFlag,
		RunInfoAtFlag,
		RunPProfCPU,
	},
}
