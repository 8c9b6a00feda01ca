package signal

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sine synthesizes frames samples of amplitude*sin(i*π/10), truncated toward
// zero to whole numbers.
func Sine(frames int, amplitude float64) []float64 {
	out := unitSine(frames)
	floats.Scale(amplitude, out)
	for i, v := range out {
		out[i] = math.Trunc(v)
	}
	return out
}

// SineRounded is Sine with round-half-away-from-zero quantization.
func SineRounded(frames int, amplitude float64) []float64 {
	out := unitSine(frames)
	floats.Scale(amplitude, out)
	for i, v := range out {
		out[i] = math.Round(v)
	}
	return out
}

func unitSine(frames int) []float64 {
	if frames <= 0 {
		return []float64{}
	}

	out := make([]float64, frames)
	for i := range out {
		out[i] = math.Sin(float64(i) * math.Pi / 10)
	}
	return out
}

// ToComplex lifts a real sequence to complex values with zero imaginary parts.
func ToComplex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}

// RealParts returns the real component of every element.
func RealParts(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = real(v)
	}
	return out
}
