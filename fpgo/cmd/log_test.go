package cmd

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	"github.com/floatproc/floatproc/fpgo/fast"
)

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := &LogReporter{Log: Logger(&buf, log.LevelInfo)}
	_, err := fast.Dispatch(fast.Instruction{Opcode: fast.OpAdd, A: 1, B: 2}, rep)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Add: 1 + 2 = 3")
	require.Contains(t, buf.String(), "op=add")
	require.Contains(t, buf.String(), "result=40400000")

	buf.Reset()
	rep.Debug = true
	_, err = fast.Dispatch(fast.Instruction{Opcode: fast.OpMul, A: 1, B: 2}, rep)
	require.NoError(t, err)
	require.Empty(t, buf.String(), "debug trace lines are filtered at info level")
}

func TestFormattedLogger(t *testing.T) {
	for _, format := range []string{LogFormatLogfmt, LogFormatJSON, LogFormatTerminal} {
		var buf bytes.Buffer
		l, err := FormattedLogger(&buf, log.LevelInfo, format)
		require.NoError(t, err, format)
		l.Info("hello", "k", HexU32(0xdead))
		l.Debug("hidden")
		require.Contains(t, buf.String(), "hello", format)
		require.Contains(t, buf.String(), "0000dead", format)
		require.NotContains(t, buf.String(), "hidden", format)
	}
	_, err := FormattedLogger(&bytes.Buffer{}, log.LevelInfo, "xml")
	require.Error(t, err)
}

func TestHexU32Text(t *testing.T) {
	txt, err := HexU32(0x7fc00000).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "7fc00000", string(txt))

	var v HexU32
	require.NoError(t, v.UnmarshalText(txt))
	require.Equal(t, HexU32(0x7fc00000), v)
	require.Error(t, v.UnmarshalText([]byte("xyz")))
}
