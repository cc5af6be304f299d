package main

import (
	"log"
	"math"

	"github.com/floatproc/floatproc/fpgo/fast"
	"github.com/floatproc/floatproc/fpgo/slow"
)

// Walks one payload through both kernels and prints what a replica would publish.
func main() {
	payload := fast.Encode(fast.Instruction{Opcode: fast.OpDiv, A: 1, B: 3})
	log.Printf("payload: %x", payload)

	// the fast way, with the trace line going to the log
	out := fast.Process(payload, fast.ReporterFunc(func(op fast.Opcode, a, b, result float32) {
		log.Print(fast.TraceLine(op, a, b, result))
	}))
	if out.Err != nil {
		log.Fatalf("payload rejected: %v", out.Err)
	}

	// Now the integer-only reference. Every replica must land on the same bits.
	status, bits := slow.Process(payload)
	if fast.Status(status) != out.Status() || bits != math.Float32bits(out.Result) {
		log.Fatalf("kernels disagree: fast %08x, reference %08x", math.Float32bits(out.Result), bits)
	}

	hash, err := out.EncodeWitness().StateHash()
	if err != nil {
		log.Fatalf("failed to hash witness: %v", err)
	}
	log.Printf("state hash: %s", hash)
}
