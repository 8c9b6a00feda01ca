package fft

import (
	"math"
	"math/cmplx"
)

// NaiveForward evaluates the DFT by direct O(N²) summation:
//
//	out[n] = (1/N) · Σ_k x[k] · exp(-2πi·n·k/N)
//
// Unlike Forward, the result is divided by N. Compare the two only after
// scaling one side by N. It exists to validate the fast transform.
func NaiveForward(x []complex128) []complex128 {
	return naive(x, -1)
}

// NaiveInverse is NaiveForward with a positive exponent, also divided by N.
// Applied to the unnormalized output of Forward it reproduces the original
// signal, because the two normalization conventions cancel.
func NaiveInverse(x []complex128) []complex128 {
	return naive(x, 1)
}

func naive(x []complex128, sign float64) []complex128 {
	size := len(x)
	out := make([]complex128, size)
	if size == 0 {
		return out
	}

	scale := complex(1/float64(size), 0)
	for n := range size {
		var sum complex128
		for k := range size {
			// n*k mod N keeps the angle small for large N.
			phase := sign * 2 * math.Pi * float64((n*k)%size) / float64(size)
			sum += x[k] * cmplx.Rect(1, phase)
		}
		out[n] = sum * scale
	}

	return out
}
