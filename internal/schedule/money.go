package schedule

import "math"

// Round2 rounds a monetary amount to cents, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Cents returns the amount as an integer number of cents. Comparisons on
// schedule rows go through Cents so float representation noise never
// affects equality.
func Cents(v float64) int64 {
	return int64(math.Round(v * 100))
}
