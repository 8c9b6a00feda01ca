package fft

import "github.com/RyanBlaney/sonido-fft/logging"

// Plan holds precomputed forward and inverse twiddle tables for one order.
// A Plan is immutable once built and may be used from many goroutines.
type Plan struct {
	order   int
	forward *TwiddleTable
	inverse *TwiddleTable
	logger  logging.Logger
}

// NewPlan builds the twiddle tables for length-2^order transforms.
func NewPlan(order int) (*Plan, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "fft_plan",
		"order":     order,
	})

	forward, err := NewTwiddleTable(order, DirectionForward)
	if err != nil {
		return nil, err
	}

	inverse, err := NewTwiddleTable(order, DirectionInverse)
	if err != nil {
		return nil, err
	}

	logger.Debug("Twiddle tables built", logging.Fields{
		"size":    1 << order,
		"factors": forward.Len(),
	})

	return &Plan{
		order:   order,
		forward: forward,
		inverse: inverse,
		logger:  logger,
	}, nil
}

// Order returns log2 of the transform length.
func (p *Plan) Order() int { return p.order }

// Size returns the transform length, 2^order.
func (p *Plan) Size() int { return 1 << p.order }

// Forward is the unnormalized forward transform; see the package-level Forward.
func (p *Plan) Forward(signal []complex128) ([]complex128, error) {
	return p.run(signal, p.forward)
}

// Inverse is the unnormalized inverse transform; see the package-level Inverse.
func (p *Plan) Inverse(signal []complex128) ([]complex128, error) {
	return p.run(signal, p.inverse)
}

func (p *Plan) run(signal []complex128, table *TwiddleTable) ([]complex128, error) {
	if err := CheckLength(len(signal), p.order); err != nil {
		p.logger.Debug("Rejected signal", logging.Fields{
			"direction": table.Direction().String(),
			"length":    len(signal),
		})
		return nil, err
	}

	return transform(signal, table)
}
