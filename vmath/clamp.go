package vmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp returns v limited to [low, high]
func Clamp[T constraints.Ordered](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// RoundAway rounds to the nearest integer, except that any non-zero value in
// (-1, 1) becomes -1 or 1
func RoundAway(v float64) int {
	switch {
	case v == 0:
		return 0
	case v > 0 && v < 1:
		return 1
	case v < 0 && v > -1:
		return -1
	}
	return int(math.Round(v))
}

// Floor converts to the integer at or below v
func Floor(v float64) int {
	return int(math.Floor(v))
}
