package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/floatproc/floatproc/fpgo/cmd"
)

func main() {
	app := cli.NewApp()
	app.Name = "fpgo"
	app.Usage = "Deterministic floating-point command processor"
	app.Description = "Decode binary instruction payloads and compute bit-exact binary32 results"
	app.Flags = []cli.Flag{
		cmd.ConfigFlag,
		cmd.LogLevelFlag,
		cmd.LogFormatFlag,
	}
	app.Commands = []*cli.Command{
		cmd.ExecCommand,
		cmd.EncodeCommand,
		cmd.EvalCommand,
		cmd.RunCommand,
		cmd.WitnessCommand,
	}
	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for {
			<-c
			cancel()
			fmt.Println("\r\nExiting...")
		}
	}()

	err := app.RunContext(ctx, os.Args)
	if err != nil {
		var statusErr *cmd.StatusError
		switch {
		case errors.Is(err, ctx.Err()):
			_, _ = fmt.Fprintf(os.Stderr, "command interrupted\n")
			os.Exit(130)
		case errors.As(err, &statusErr):
			_, _ = fmt.Fprintf(os.Stderr, "rejected: %v\n", statusErr)
			os.Exit(statusErr.ExitStatus())
		default:
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}
