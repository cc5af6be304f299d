package main

import (
	"log"
	"os"
)

// go-ffi diff <processPayload|encodePayload> args...
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Must pass a subcommand: diff")
	}
	switch os.Args[1] {
	case "diff":
		DiffTestUtils()
	default:
		log.Fatalf("Unrecognized subcommand: %s", os.Args[1])
	}
}
