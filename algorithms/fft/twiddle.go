package fft

import (
	"fmt"
	"math"
)

// Direction selects the sign of the twiddle exponent.
type Direction int

const (
	// DirectionForward uses exp(-2πi·k/n).
	DirectionForward Direction = iota
	// DirectionInverse uses exp(+2πi·k/n).
	DirectionInverse
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionInverse:
		return "inverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// TwiddleKey identifies the root of unity exp(±2πi·K/N), where N is the
// butterfly block size and K the index within the half block.
type TwiddleKey struct {
	K int
	N int
}

// ForwardTwiddle returns exp(-2πi·k/n). Multiples of a quarter turn are exact,
// so ForwardTwiddle(0, n) is 1 and ForwardTwiddle(n/2, n) is -1.
// There is no root of unity for n <= 0; ForwardTwiddle returns 1 in that case.
func ForwardTwiddle(k, n int) complex128 {
	if n <= 0 {
		return 1
	}

	k %= n
	if k < 0 {
		k += n
	}

	if (4*k)%n == 0 {
		switch 4 * k / n {
		case 0:
			return complex(1, 0)
		case 1:
			return complex(0, -1)
		case 2:
			return complex(-1, 0)
		case 3:
			return complex(0, 1)
		}
	}

	sin, cos := math.Sincos(2 * math.Pi * float64(k) / float64(n))
	return complex(cos, -sin)
}

// InverseTwiddle returns exp(+2πi·k/n), the exact conjugate of ForwardTwiddle.
// Like ForwardTwiddle it returns 1 for n <= 0.
func InverseTwiddle(k, n int) complex128 {
	w := ForwardTwiddle(k, n)
	return complex(real(w), -imag(w))
}

// TwiddleTable holds every twiddle factor a transform of a given order needs,
// for a single direction. It is filled once by NewTwiddleTable and read-only
// afterwards, so a table may be shared between goroutines.
//
// Factors for block size n = 2^(s+1) live at factors[n/2-1 : n-1].
type TwiddleTable struct {
	order     int
	direction Direction
	factors   []complex128
}

// NewTwiddleTable precomputes the twiddle factors for all butterfly stages of
// a length-2^order transform. Orders outside [0, MaxOrder] are rejected with
// ErrInvalidLength before anything is allocated.
func NewTwiddleTable(order int, dir Direction) (*TwiddleTable, error) {
	if order < 0 || order > MaxOrder {
		return nil, fmt.Errorf("%w: order %d out of range [0, %d]", ErrInvalidLength, order, MaxOrder)
	}

	if dir != DirectionForward && dir != DirectionInverse {
		return nil, fmt.Errorf("fft: unknown direction %v", dir)
	}

	twiddle := ForwardTwiddle
	if dir == DirectionInverse {
		twiddle = InverseTwiddle
	}

	factors := make([]complex128, (1<<order)-1)
	for stage := range order {
		blockSize := 1 << (stage + 1)
		half := blockSize >> 1
		for k := range half {
			factors[half-1+k] = twiddle(k, blockSize)
		}
	}

	return &TwiddleTable{
		order:     order,
		direction: dir,
		factors:   factors,
	}, nil
}

// At returns the factor for index k of block size n. It panics if (k, n) is
// not a key produced by the stages of this table's order.
func (t *TwiddleTable) At(k, n int) complex128 {
	return t.factors[n/2-1+k]
}

// Lookup reports the factor for key and whether the table holds it.
func (t *TwiddleTable) Lookup(key TwiddleKey) (complex128, bool) {
	if key.N < 2 || key.N > 1<<t.order || key.N&(key.N-1) != 0 {
		return 0, false
	}

	if key.K < 0 || key.K >= key.N/2 {
		return 0, false
	}

	return t.At(key.K, key.N), true
}

// Order returns the order the table was built for.
func (t *TwiddleTable) Order() int { return t.order }

// Direction returns the exponent sign of the stored factors.
func (t *TwiddleTable) Direction() Direction { return t.direction }

// Len returns the number of stored factors, 2^order - 1.
func (t *TwiddleTable) Len() int { return len(t.factors) }
