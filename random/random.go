// Package random generates non-negative pseudo-random integers.
// It is not suitable for cryptographic use.
package random

import (
	"math"
	"math/rand"
)

var float64Source = rand.Float64

// Int returns an integer in [0, n).
func Int(n int) int {
	return int(math.Floor(float64Source() * float64(n)))
}

// Ints returns count integers in [0, n).
func Ints(n, count int) []int {
	ret := make([]int, count)
	for i := range ret {
		ret[i] = Int(n)
	}
	return ret
}

// Uint8s returns count integers in [0, n) truncated to uint8.
func Uint8s(n, count int) []uint8 {
	ret := make([]uint8, count)
	for i := range ret {
		ret[i] = uint8(Int(n))
	}
	return ret
}
