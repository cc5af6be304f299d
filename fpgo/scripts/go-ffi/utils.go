package main

import (
	"fmt"
	"math"
)

// checkErr checks if err is not nil, and throws if so.
func checkErr(err error, failReason string) {
	if err != nil {
		panic(fmt.Errorf("%s: %w", failReason, err))
	}
}

func float32frombits(v uint64) float32 {
	return math.Float32frombits(uint32(v))
}
