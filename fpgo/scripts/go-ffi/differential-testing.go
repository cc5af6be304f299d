package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/floatproc/floatproc/fpgo/fast"
)

// ABI types
var (
	uint8Type, _   = abi.NewType("uint8", "", nil)
	uint32Type, _  = abi.NewType("uint32", "", nil)
	bytes32Type, _ = abi.NewType("bytes32", "", nil)
	bytesType, _   = abi.NewType("bytes", "", nil)

	outcomeArgs = abi.Arguments{
		{Name: "status", Type: uint8Type},
		{Name: "result", Type: uint32Type},
		{Name: "stateHash", Type: bytes32Type},
		{Name: "witness", Type: bytesType},
	}
)

func DiffTestUtils() {
	args := os.Args[2:]

	// This command requires arguments
	if len(args) == 0 {
		panic("Error: No arguments provided")
	}
	variant := args[0]

	switch variant {
	case "processPayload":
		// <payload>
		if len(args) != 2 {
			panic("Error: processPayload requires 1 argument")
		}
		data, err := hexutil.Decode(args[1])
		checkErr(err, "Error decoding payload")

		out := fast.Process(data, nil)
		witness := out.EncodeWitness()
		stateHash, err := witness.StateHash()
		checkErr(err, "Error hashing witness")

		packed, err := outcomeArgs.Pack(
			uint8(out.Status()),
			out.ResultBits(),
			[32]byte(stateHash),
			[]byte(witness),
		)
		checkErr(err, "Error encoding output")
		fmt.Print(hexutil.Encode(packed))
	case "encodePayload":
		// <opcode, aBits, bBits>
		if len(args) != 4 {
			panic("Error: encodePayload requires 3 arguments")
		}
		var vals [3]uint64
		for i := range vals {
			v, ok := new(big.Int).SetString(args[i+1], 0)
			if !ok || !v.IsUint64() {
				panic(fmt.Errorf("Error decoding argument %q", args[i+1]))
			}
			vals[i] = v.Uint64()
		}
		payload := fast.Encode(fast.Instruction{
			Opcode: fast.Opcode(vals[0]),
			A:      float32frombits(vals[1]),
			B:      float32frombits(vals[2]),
		})
		fmt.Print(hexutil.Encode(common.LeftPadBytes(payload, 32)))
	default:
		panic(fmt.Errorf("unknown command: %s", args[0]))
	}
}
