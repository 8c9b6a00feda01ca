package spectral

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/sonido-fft/algorithms/common"
	radix2 "github.com/RyanBlaney/sonido-fft/algorithms/fft"
	"github.com/RyanBlaney/sonido-fft/logging"
)

// CrossCheck validates the radix-2 engine against independent transforms:
// the O(N²) naive DFT, mjibson/go-dsp and gonum's dsp/fourier.
type CrossCheck struct {
	logger logging.Logger
}

// CrossCheckResult holds L∞ distances between the engine's unnormalized
// forward output and each reference, plus the round-trip error.
type CrossCheckResult struct {
	Order int `json:"order"`
	Size  int `json:"size"`

	NaiveError float64 `json:"naive_error"` // vs NaiveForward scaled by N
	GoDSPError float64 `json:"godsp_error"` // vs go-dsp fft.FFT
	GonumError float64 `json:"gonum_error"` // vs fourier.CmplxFFT

	// ‖Inverse(Forward(x))/N − x‖∞
	RoundTripError float64 `json:"round_trip_error"`

	// Per-bin error statistics against the naive reference
	MeanBinError float64 `json:"mean_bin_error"`
	StdBinError  float64 `json:"std_bin_error"`
}

// NewCrossCheck creates a new cross-checker
func NewCrossCheck() *CrossCheck {
	return &CrossCheck{
		logger: logging.WithFields(logging.Fields{
			"component": "fft_cross_check",
		}),
	}
}

// Compare transforms signal with the radix-2 engine and every reference.
// The signal must have length 2^order; otherwise the engine's
// ErrInvalidLength is returned.
func (c *CrossCheck) Compare(signal []complex128, order int) (*CrossCheckResult, error) {
	if err := radix2.CheckLength(len(signal), order); err != nil {
		return nil, err
	}

	plan, err := radix2.NewPlan(order)
	if err != nil {
		return nil, err
	}

	spectrum, err := plan.Forward(signal)
	if err != nil {
		return nil, err
	}

	n := plan.Size()

	// The naive DFT divides by N; the engine does not.
	naive := common.Scale(radix2.NaiveForward(signal), complex(float64(n), 0))
	goDSP := fft.FFT(signal)
	gonum := fourier.NewCmplxFFT(n).Coefficients(nil, signal)

	restored, err := plan.Inverse(spectrum)
	if err != nil {
		return nil, fmt.Errorf("inverse transform: %w", err)
	}

	binErrors := common.AbsDiffs(spectrum, naive)
	result := &CrossCheckResult{
		Order:          order,
		Size:           n,
		NaiveError:     common.MaxAbsDiff(spectrum, naive),
		GoDSPError:     common.MaxAbsDiff(spectrum, goDSP),
		GonumError:     common.MaxAbsDiff(spectrum, gonum),
		RoundTripError: common.MaxAbsDiff(common.Normalize(restored), signal),
		MeanBinError:   stat.Mean(binErrors, nil),
	}
	if len(binErrors) > 1 {
		result.StdBinError = stat.StdDev(binErrors, nil)
	}

	c.logger.Debug("Cross-check completed", logging.Fields{
		"size":       n,
		"naive":      result.NaiveError,
		"godsp":      result.GoDSPError,
		"gonum":      result.GonumError,
		"round_trip": result.RoundTripError,
	})

	return result, nil
}

// MaxError returns the largest of the reference and round-trip errors.
func (r *CrossCheckResult) MaxError() float64 {
	return math.Max(
		math.Max(r.NaiveError, r.GoDSPError),
		math.Max(r.GonumError, r.RoundTripError),
	)
}

// Passed reports whether every error is within tol.
func (r *CrossCheckResult) Passed(tol float64) bool {
	return r.MaxError() <= tol
}
