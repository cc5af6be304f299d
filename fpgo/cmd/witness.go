package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/optimism/op-service/jsonutil"

	"github.com/floatproc/floatproc/fpgo/fast"
)

type WitnessOutput struct {
	Witness   hexutil.Bytes `json:"witness"`
	Status    string        `json:"status"`
	StateHash common.Hash   `json:"stateHash"`
}

// Witness processes a payload and prints the state hash of its outcome.
// Rejected payloads still have a witness, so this never fails on the outcome itself.
func Witness(ctx *cli.Context) error {
	data, err := hexutil.Decode(ctx.String(PayloadFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	witness := fast.Process(data, nil).EncodeWitness()
	stateHash, err := witness.StateHash()
	if err != nil {
		return fmt.Errorf("failed to compute witness hash: %w", err)
	}
	if output := ctx.Path(WitnessOutputFlag.Name); output != "" {
		status, err := witness.Status()
		if err != nil {
			return err
		}
		witnessOutput := &WitnessOutput{
			Witness:   hexutil.Bytes(witness),
			Status:    status.String(),
			StateHash: stateHash,
		}
		if err := jsonutil.WriteJSON(output, witnessOutput, OutFilePerm); err != nil {
			return fmt.Errorf("failed to write witness output: %w", err)
		}
	}
	fmt.Println(stateHash.Hex())
	return nil
}

var WitnessCommand = &cli.Command{
	Name:        "witness",
	Usage:       "Compute the witness of one payload",
	Description: "Process one payload and print the state hash of its witness. Replicas that agree print the same hash.",
	Action:      Witness,
	Flags: []cli.Flag{
		PayloadFlag,
		WitnessOutputFlag,
	},
}
