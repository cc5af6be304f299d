package cmd

import (
	"errors"
	"fmt"

	"github.com/floatproc/floatproc/fpgo/fast"
	"github.com/floatproc/floatproc/fpgo/slow"
)

var (
	ErrMismatch         = errors.New("fast and reference kernels disagree")
	ErrNondeterministic = errors.New("repeated processing diverged")
)

// Verify cross-checks out against the reference kernel, then reprocesses data
// until repeat runs in total have produced the same state hash.
func Verify(data []byte, out *fast.Outcome, repeat uint64) error {
	status, bits := slow.Process(data)
	if fast.Status(status) != out.Status() || bits != out.ResultBits() {
		return fmt.Errorf("%w: fast %s %08x, reference %s %08x",
			ErrMismatch, out.Status(), out.ResultBits(), fast.Status(status), bits)
	}
	want, err := out.EncodeWitness().StateHash()
	if err != nil {
		return err
	}
	for i := uint64(1); i < repeat; i++ {
		got, err := fast.Process(data, nil).EncodeWitness().StateHash()
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("%w: run %d hashed %s, first run %s", ErrNondeterministic, i, got, want)
		}
	}
	return nil
}
