package classify

import (
	"github.com/zachlewis/colorconfig/internal/core/domain"
	"github.com/zachlewis/colorconfig/internal/core/ports"
)

// Yields reports whether applying proc to the input colors produces the
// expected colors within the probe tolerance. It is a pure function over
// (processor, test vectors, tolerance); probe failures are expressed as a
// false result, never an error.
func Yields(proc ports.Processor, in, want [][3]float32) bool {
	if proc == nil || len(in) != len(want) {
		return false
	}
	for i := range in {
		got := in[i]
		proc.Apply(got[:], 1, 1, 3)
		if !domain.CloseColors(got, want[i], domain.ProbeTolerance) {
			return false
		}
	}
	return true
}

// YieldsIdentity reports whether proc maps the standard test colors to
// themselves.
func YieldsIdentity(proc ports.Processor) bool {
	colors := domain.TestColors()
	return Yields(proc, colors, colors)
}
