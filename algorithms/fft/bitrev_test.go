package fft

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitReverse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		i      int
		p      int
		expect int
	}{
		{"zero order", 0, 0, 0},
		{"1 bit: 1", 1, 1, 1},
		{"2 bits: 0b01", 0b01, 2, 0b10},
		{"2 bits: 0b10", 0b10, 2, 0b01},
		{"3 bits: 0b001", 0b001, 3, 0b100},
		{"3 bits: 0b110", 0b110, 3, 0b011},
		{"3 bits: 0b101", 0b101, 3, 0b101},
		{"4 bits: 0b0011", 0b0011, 4, 0b1100},
		{"4 bits: 0b1111", 0b1111, 4, 0b1111},
		{"8 bits: 0x12", 0x12, 8, 0x48},
		{"10 bits: 0x123", 0x123, 10, 0x312},
		{"16 bits: 0x1234", 0x1234, 16, 0x2C48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expect, BitReverse(tt.i, tt.p),
				"BitReverse(%#b, %d)", tt.i, tt.p)
		})
	}
}

func TestBitReverseIsInvolution(t *testing.T) {
	t.Parallel()

	for p := 0; p <= 12; p++ {
		for i := range 1 << p {
			require.Equal(t, i, BitReverse(BitReverse(i, p), p), "i=%d p=%d", i, p)
		}
	}
}

func TestBitReversalIndices(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{0}, BitReversalIndices(0))
	assert.Equal(t, []int{0, 1}, BitReversalIndices(1))
	assert.Equal(t, []int{0, 2, 1, 3}, BitReversalIndices(2))
	assert.Equal(t, []int{0, 4, 2, 6, 1, 5, 3, 7}, BitReversalIndices(3))
	assert.Equal(t, []int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}, BitReversalIndices(4))
	assert.Nil(t, BitReversalIndices(-1))
}

func TestPermuteIsSelfInverse(t *testing.T) {
	t.Parallel()

	for p := 0; p <= 10; p++ {
		t.Run(fmt.Sprintf("p=%d", p), func(t *testing.T) {
			t.Parallel()

			x := randomSignal(1<<p, uint64(p)+1)

			once, err := Permute(x, p)
			require.NoError(t, err)

			twice, err := Permute(once, p)
			require.NoError(t, err)

			assert.Equal(t, x, twice)
		})
	}
}

func TestPermuteOrder(t *testing.T) {
	t.Parallel()

	x := []complex128{0, 1, 2, 3, 4, 5, 6, 7}
	got, err := Permute(x, 3)
	require.NoError(t, err)

	assert.Equal(t, []complex128{0, 4, 2, 6, 1, 5, 3, 7}, got)
	assert.Equal(t, []complex128{0, 1, 2, 3, 4, 5, 6, 7}, x, "input must not be modified")
}

func TestPermuteSingleElement(t *testing.T) {
	t.Parallel()

	got, err := Permute([]complex128{3 + 4i}, 0)
	require.NoError(t, err)
	assert.Equal(t, []complex128{3 + 4i}, got)
}

func TestPermuteInvalidLength(t *testing.T) {
	t.Parallel()

	_, err := Permute(make([]complex128, 15), 4)
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = Permute(make([]complex128, 1), -1)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func BenchmarkPermute(b *testing.B) {
	for _, p := range []int{4, 8, 12} {
		x := randomSignal(1<<p, 7)
		b.Run(fmt.Sprintf("p=%d", p), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				_, _ = Permute(x, p)
			}
		})
	}
}
