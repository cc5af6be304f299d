package fast

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/floatproc/floatproc/fpgo/wire"
)

// Witness is the canonical encoding of one processed payload:
// payload (9 bytes) || status (1 byte) || result bits (4 bytes, big-endian).
type Witness []byte

func (wit Witness) Status() (Status, error) {
	if len(wit) != wire.WitnessSize {
		return 0, fmt.Errorf("invalid witness length: got %d, expected %d", len(wit), wire.WitnessSize)
	}
	return Status(wit[wire.InstructionSize]), nil
}

// StateHash is the keccak256 of the witness with the first byte replaced by the status,
// so replicas can compare outcomes and read the status straight from the hash.
func (wit Witness) StateHash() (common.Hash, error) {
	status, err := wit.Status()
	if err != nil {
		return common.Hash{}, err
	}
	hash := crypto.Keccak256Hash(wit)
	hash[0] = byte(status)
	return hash, nil
}
