package utils

import "math"

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// Truncate descarta a parte decimal, como na exibição dos totais em milhares de won
func Truncate(f float64) int64 {
	return int64(math.Trunc(f))
}
