package cmd

import (
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/optimism/op-service/jsonutil"

	"github.com/floatproc/floatproc/fpgo/fast"
	"github.com/floatproc/floatproc/fpgo/wire"
)

func testApp() *cli.App {
	return &cli.App{
		Name:  "fpgo",
		Flags: []cli.Flag{ConfigFlag, LogLevelFlag, LogFormatFlag},
		Commands: []*cli.Command{
			ExecCommand,
			EncodeCommand,
			EvalCommand,
			RunCommand,
			WitnessCommand,
		},
	}
}

func TestWitnessCommand(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		data := fast.Encode(fast.Instruction{Opcode: fast.OpAdd, A: 3.14, B: 2.86})
		path := filepath.Join(t.TempDir(), "witness.json")
		err := testApp().Run([]string{"fpgo", "witness", "--payload", hexutil.Encode(data), "--output", path})
		require.NoError(t, err)

		out, err := jsonutil.LoadJSON[WitnessOutput](path)
		require.NoError(t, err)
		require.Len(t, out.Witness, wire.WitnessSize)
		require.Equal(t, "Success", out.Status)

		expected, err := fast.Process(data, nil).EncodeWitness().StateHash()
		require.NoError(t, err)
		require.Equal(t, expected, out.StateHash)
	})

	t.Run("Rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "witness.json")
		err := testApp().Run([]string{"fpgo", "witness", "--payload", "0x02", "--output", path})
		require.NoError(t, err, "rejected payloads still have a witness")

		out, err := jsonutil.LoadJSON[WitnessOutput](path)
		require.NoError(t, err)
		require.Equal(t, "InvalidInstructionData", out.Status)
		require.Equal(t, byte(wire.StatusInvalidInstructionData), out.StateHash[0])
	})

	t.Run("InvalidHex", func(t *testing.T) {
		err := testApp().Run([]string{"fpgo", "witness", "--payload", "02"})
		require.ErrorContains(t, err, "invalid payload")
	})
}

func TestExecCommand(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		data := fast.Encode(fast.Instruction{Opcode: fast.OpMul, A: 2, B: 3})
		err := testApp().Run([]string{"fpgo", "--log.level", "error", "exec", "--payload", hexutil.Encode(data), "--verify", "--repeat", "3"})
		require.NoError(t, err)
	})

	t.Run("DivisionByZero", func(t *testing.T) {
		data := fast.Encode(fast.Instruction{Opcode: fast.OpDiv, A: 10, B: 0})
		err := testApp().Run([]string{"fpgo", "--log.level", "error", "exec", "--payload", hexutil.Encode(data)})
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		require.Equal(t, fast.StatusInvalidArgument, statusErr.Status)
		require.Equal(t, 4, statusErr.ExitStatus())
		require.ErrorIs(t, err, fast.ErrDivisionByZero)
	})

	t.Run("Empty", func(t *testing.T) {
		err := testApp().Run([]string{"fpgo", "--log.level", "error", "exec", "--payload", "0x"})
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		require.Equal(t, fast.StatusInvalidInstructionData, statusErr.Status)
		require.ErrorIs(t, err, fast.ErrEmptyPayload)
	})
}
