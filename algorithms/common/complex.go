package common

import (
	"math"

	"gonum.org/v1/gonum/cmplxs"
)

// Helpers for complex sequences. The transform engine never normalizes its
// output, so callers that want x back from Inverse(Forward(x)) divide by the
// length with Normalize.

// Scale returns c*x as a new slice.
func Scale(x []complex128, c complex128) []complex128 {
	out := make([]complex128, len(x))
	copy(out, x)
	cmplxs.Scale(c, out)
	return out
}

// Normalize returns x divided by len(x) as a new slice.
func Normalize(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}
	return Scale(x, complex(1/float64(len(x)), 0))
}

// MaxAbsDiff returns max_i |a[i] - b[i]|, or +Inf when the lengths differ.
func MaxAbsDiff(a, b []complex128) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	if len(a) == 0 {
		return 0
	}
	return cmplxs.Distance(a, b, math.Inf(1))
}

// AbsDiffs returns |a[i] - b[i]| for every index. It returns nil when the
// lengths differ.
func AbsDiffs(a, b []complex128) []float64 {
	if len(a) != len(b) {
		return nil
	}

	diff := make([]complex128, len(a))
	cmplxs.SubTo(diff, a, b)

	out := make([]float64, len(diff))
	for i, d := range diff {
		out[i] = math.Hypot(real(d), imag(d))
	}
	return out
}

// EqualApprox reports whether every pair of elements is within tol of each
// other.
func EqualApprox(a, b []complex128, tol float64) bool {
	return MaxAbsDiff(a, b) <= tol
}
