package fast

import "fmt"

// Reporter receives one trace line per successful dispatch.
// It is purely observational and must not influence the outcome.
type Reporter interface {
	Report(op Opcode, a, b, result float32)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(op Opcode, a, b, result float32)

func (fn ReporterFunc) Report(op Opcode, a, b, result float32) {
	fn(op, a, b, result)
}

type noopReporter struct{}

func (noopReporter) Report(Opcode, float32, float32, float32) {}

// NoopReporter discards every trace line.
var NoopReporter Reporter = noopReporter{}

// TraceLine renders the human-readable form of one dispatched operation.
func TraceLine(op Opcode, a, b, result float32) string {
	switch op {
	case OpAdd:
		return fmt.Sprintf("Add: %v + %v = %v", a, b, result)
	case OpMul:
		return fmt.Sprintf("Multiply: %v * %v = %v", a, b, result)
	case OpDiv:
		return fmt.Sprintf("Divide: %v / %v = %v", a, b, result)
	case OpSqrt:
		return fmt.Sprintf("Sqrt: sqrt(%v) = %v", a, result)
	default:
		return fmt.Sprintf("%s: %v, %v = %v", op, a, b, result)
	}
}
