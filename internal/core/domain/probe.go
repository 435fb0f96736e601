package domain

import "math"

// ProbeTolerance is the per-channel tolerance when comparing probe results.
// Transforms agreeing to within this on all test colors are considered the
// same conversion.
const ProbeTolerance = 1.0e-3

// TestColors returns the color values used to interrogate transformations:
// the three primaries, white, and mid gray.
func TestColors() [][3]float32 {
	return [][3]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
		{0.5, 0.5, 0.5},
	}
}

// CloseColors reports whether two colors match within tol on every channel.
func CloseColors(a, b [3]float32, tol float32) bool {
	for i := range a {
		if float32(math.Abs(float64(a[i]-b[i]))) > tol {
			return false
		}
	}
	return true
}
