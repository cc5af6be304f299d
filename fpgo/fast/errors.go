package fast

import (
	"errors"
	"fmt"
)

var (
	// Kernel errors
	ErrDivisionByZero = errors.New("division by zero")

	// Decode errors
	ErrEmptyPayload = errors.New("empty payload")
	ErrTruncated    = errors.New("truncated payload")

	// Dispatch errors
	ErrInvalidDivisor = fmt.Errorf("invalid divisor: %w", ErrDivisionByZero)
)

// ErrOpcode is returned by Dispatch for an opcode without an operation.
type ErrOpcode uint8

func (eo ErrOpcode) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02x", uint8(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
