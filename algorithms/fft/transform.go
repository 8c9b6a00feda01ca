package fft

// Forward computes the discrete Fourier transform of a length-2^order signal
// with the iterative radix-2 decimation-in-time algorithm.
//
// The result is unnormalized: no division by the length is applied. The input
// slice is not modified.
func Forward(signal []complex128, order int) ([]complex128, error) {
	return oneShot(signal, order, DirectionForward)
}

// Inverse computes the inverse transform of a length-2^order spectrum.
//
// Like Forward, the result is unnormalized, so
// Inverse(Forward(x, p), p) == x * 2^p elementwise. Dividing by 2^p is the
// caller's responsibility (see common.Normalize).
func Inverse(signal []complex128, order int) ([]complex128, error) {
	return oneShot(signal, order, DirectionInverse)
}

func oneShot(signal []complex128, order int, dir Direction) ([]complex128, error) {
	if err := CheckLength(len(signal), order); err != nil {
		return nil, err
	}

	table, err := NewTwiddleTable(order, dir)
	if err != nil {
		return nil, err
	}

	return transform(signal, table)
}

// transform permutes signal into bit-reversed order and runs order butterfly
// stages against table. The caller guarantees table.order matches signal.
func transform(signal []complex128, table *TwiddleTable) ([]complex128, error) {
	out, err := Permute(signal, table.order)
	if err != nil {
		return nil, err
	}

	n := len(out)
	for stage := range table.order {
		blockSize := 1 << (stage + 1)
		half := blockSize >> 1
		for base := 0; base < n; base += blockSize {
			for idx := range half {
				a := out[base+idx]
				t := table.At(idx, blockSize) * out[base+idx+half]
				out[base+idx] = a + t
				out[base+idx+half] = a - t
			}
		}
	}

	return out, nil
}
