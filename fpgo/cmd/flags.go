package cmd

import "github.com/urfave/cli/v2"

var (
	ConfigFlag = &cli.PathFlag{
		Name:  "config",
		Usage: "TOML config file, flags take precedence over its values",
	}
	LogLevelFlag = &cli.StringFlag{
		Name:  "log.level",
		Usage: "Log level: trace, debug, info, warn, error, crit",
		Value: "info",
	}
	LogFormatFlag = &cli.StringFlag{
		Name:  "log.format",
		Usage: "Log format: logfmt, json, terminal",
		Value: LogFormatLogfmt,
	}

	PayloadFlag = &cli.StringFlag{
		Name:     "payload",
		Usage:    "Hex encoded instruction payload, 0x prefixed",
		Required: true,
	}
	OpFlag = &cli.StringFlag{
		Name:     "op",
		Usage:    "Operation name (add, mul, div, sqrt) or raw opcode number",
		Required: true,
	}
	OperandAFlag = &cli.StringFlag{
		Name:  "a",
		Usage: "Operand A, decimal or 0x prefixed bit pattern",
		Value: "0",
	}
	OperandBFlag = &cli.StringFlag{
		Name:  "b",
		Usage: "Operand B, decimal or 0x prefixed bit pattern",
		Value: "0",
	}
	DoubleFlag = &cli.BoolFlag{
		Name:  "double",
		Usage: "Compute in binary64 instead of binary32",
	}

	RunInputFlag = &cli.PathFlag{
		Name:      "input",
		Usage:     "Path of the JSON batch of payloads",
		TakesFile: true,
		Required:  true,
	}
	RunOutputFlag = &cli.PathFlag{
		Name:      "output",
		Usage:     "Path of the JSON outcomes output, - for stdout",
		TakesFile: true,
		Value:     "-",
	}
	RunVerifyFlag = &cli.BoolFlag{
		Name:  "verify",
		Usage: "Cross-check every payload against the reference kernel",
	}
	RunRepeatFlag = &cli.Uint64Flag{
		Name:  "repeat",
		Usage: "With --verify, process every payload this many times and require identical witnesses",
		Value: 1,
	}
	RunInfoAtFlag = &cli.Uint64Flag{
		Name:  "info-at",
		Usage: "Log progress every N payloads, 0 to disable",
		Value: 0,
	}
	RunPProfCPU = &cli.BoolFlag{
		Name:  "pprof.cpu",
		Usage: "Enable pprof cpu profiling",
	}

	WitnessOutputFlag = &cli.PathFlag{
		Name:      "output",
		Usage:     "Path to write the witness JSON to, - for stdout",
		TakesFile: true,
	}
)
