package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"log/slog"

	"github.com/ethereum/go-ethereum/log"

	"github.com/floatproc/floatproc/fpgo/fast"
)

const (
	LogFormatLogfmt   = "logfmt"
	LogFormatJSON     = "json"
	LogFormatTerminal = "terminal"
)

func Logger(w io.Writer, lvl slog.Level) log.Logger {
	return log.NewLogger(log.LogfmtHandlerWithLevel(w, lvl))
}

// FormattedLogger builds a logger for one of the LogFormat* names.
func FormattedLogger(w io.Writer, lvl slog.Level, format string) (log.Logger, error) {
	switch format {
	case LogFormatLogfmt, "":
		return Logger(w, lvl), nil
	case LogFormatJSON:
		h := log.NewGlogHandler(log.JSONHandler(w))
		h.Verbosity(lvl)
		return log.NewLogger(h), nil
	case LogFormatTerminal:
		h := log.NewGlogHandler(log.NewTerminalHandler(w, false))
		h.Verbosity(lvl)
		return log.NewLogger(h), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// LogReporter writes the trace line of every dispatched operation to a logger,
// with the raw operand and result bits attached.
type LogReporter struct {
	Log log.Logger
	// Debug lowers trace lines to debug level, for batch runs.
	Debug bool
}

var _ fast.Reporter = (*LogReporter)(nil)

func (lr *LogReporter) Report(op fast.Opcode, a, b, result float32) {
	msg := fast.TraceLine(op, a, b, result)
	ctx := []any{
		"op", op.String(),
		"a", HexU32(math.Float32bits(a)),
		"b", HexU32(math.Float32bits(b)),
		"result", HexU32(math.Float32bits(result)),
	}
	if lr.Debug {
		lr.Log.Debug(msg, ctx...)
	} else {
		lr.Log.Info(msg, ctx...)
	}
}

// HexU32 to lazy-format integer attributes for logging
type HexU32 uint32

func (v HexU32) String() string {
	return fmt.Sprintf("%08x", uint32(v))
}

func (v HexU32) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *HexU32) UnmarshalText(text []byte) error {
	x, err := strconv.ParseUint(string(text), 16, 32)
	if err != nil {
		return fmt.Errorf("invalid hex u32 %q: %w", text, err)
	}
	*v = HexU32(x)
	return nil
}
