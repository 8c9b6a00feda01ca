package fft

import "fmt"

// BitReverse reverses the lower p bits of i.
// Example: BitReverse(6, 3) = BitReverse(0b110, 3) = 0b011 = 3.
func BitReverse(i, p int) int {
	result := 0
	for range p {
		result = (result << 1) | (i & 1)
		i >>= 1
	}

	return result
}

// BitReversalIndices returns the bit-reversal permutation for a length-2^p
// sequence. It returns nil when p is outside [0, MaxOrder].
func BitReversalIndices(p int) []int {
	if p < 0 || p > MaxOrder {
		return nil
	}

	n := 1 << p
	indices := make([]int, n)
	for i := range n {
		indices[i] = BitReverse(i, p)
	}

	return indices
}

// Permute returns a new sequence where position i holds signal[BitReverse(i, p)].
// The input is left untouched.
func Permute(signal []complex128, p int) ([]complex128, error) {
	if err := CheckLength(len(signal), p); err != nil {
		return nil, err
	}

	out := make([]complex128, len(signal))
	for i := range out {
		out[i] = signal[BitReverse(i, p)]
	}

	return out, nil
}

// MaxOrder is the largest supported order. A 2^30 element signal already
// occupies 16 GiB, and every twiddle table of that order needs as much again.
const MaxOrder = 30

// CheckLength returns ErrInvalidLength unless n == 2^order and order lies in
// [0, MaxOrder]. It allocates nothing, so callers can run it before building
// a Plan.
func CheckLength(n, order int) error {
	if order < 0 || order > MaxOrder {
		return fmt.Errorf("%w: order %d out of range [0, %d]", ErrInvalidLength, order, MaxOrder)
	}

	if uint64(n) != uint64(1)<<uint(order) {
		return fmt.Errorf("%w: got %d elements, want 2^%d", ErrInvalidLength, n, order)
	}

	return nil
}
