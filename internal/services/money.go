package services

import "math"

// round2 rounds a money amount to cents, half away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
