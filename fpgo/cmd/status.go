package cmd

import (
	"fmt"

	"github.com/floatproc/floatproc/fpgo/fast"
)

// StatusError carries a failed outcome up to main, which exits with ExitStatus.
type StatusError struct {
	Status fast.Status
	Err    error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %v", e.Status, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// ExitStatus keeps 0, 1 and 130 free for success, generic errors and interrupts.
func (e *StatusError) ExitStatus() int {
	return 2 + int(e.Status)
}
