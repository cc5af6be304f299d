package main

import (
	"flag"
	"fmt"

	"github.com/floatproc/floatproc/fpgo/slow"
)

// Prints the reference kernel result for external differential fuzzers,
// as a 32-byte word in hex.
func main() {
	function := flag.String("fuzz", "Add", "fuzz function")
	a := flag.Uint64("a", 0, "operand A bits")
	b := flag.Uint64("b", 0, "operand B bits")
	flag.Parse()

	x, y := slow.U32(*a), slow.U32(*b)

	var result slow.U32
	switch *function {
	case "Add":
		result = slow.Add(x, y)
	case "Mul":
		result = slow.Mul(x, y)
	case "Div":
		result = slow.Div(x, y)
	case "Sqrt":
		result = slow.Sqrt(x)
	default:
		panic(fmt.Errorf("unknown fuzz function: %s", *function))
	}
	fmt.Printf("%064x", result)
}
