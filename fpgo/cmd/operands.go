package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/floatproc/floatproc/fpgo/fast"
)

// parseOp accepts an operation name or a raw opcode number, so unknown opcodes can be encoded too.
func parseOp(s string) (fast.Opcode, error) {
	if op, err := fast.ParseOpcode(strings.ToLower(s)); err == nil {
		return op, nil
	}
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid operation %q", s)
	}
	return fast.Opcode(n), nil
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// parseOperand32 reads a decimal value, or a raw bit pattern when 0x prefixed.
func parseOperand32(s string) (float32, error) {
	if hasHexPrefix(s) {
		bits, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid binary32 bits %q: %w", s, err)
		}
		return math.Float32frombits(uint32(bits)), nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid binary32 operand %q: %w", s, err)
	}
	return float32(v), nil
}

func parseOperand64(s string) (float64, error) {
	if hasHexPrefix(s) {
		bits, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid binary64 bits %q: %w", s, err)
		}
		return math.Float64frombits(bits), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid binary64 operand %q: %w", s, err)
	}
	return v, nil
}
