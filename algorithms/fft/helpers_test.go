package fft

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-fft/algorithms/common"
)

// randomSignal returns n deterministic complex values in [-1, 1) x [-1, 1).
func randomSignal(n int, seed uint64) []complex128 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
	}

	return x
}

func requireClose(t *testing.T, want, got []complex128, tol float64, msgAndArgs ...any) {
	t.Helper()

	require.Len(t, got, len(want), msgAndArgs...)
	require.LessOrEqual(t, common.MaxAbsDiff(want, got), tol, msgAndArgs...)
}
