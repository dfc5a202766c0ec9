package eta

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// EWMA estimates throughput from an exponentially weighted moving
// average of per-iteration time, seeded with a prior throughput.
//
// Alpha is the weight on the most recent iteration; older iterations
// and the prior decay geometrically by (1-alpha) per step. Batched
// updates are expanded into equal-weight per-iteration times first, so
// a single Update(5) taking five seconds weighs exactly like five
// Update(1) calls taking one second each.
type EWMA struct {
	alpha      float64
	startValue float64
}

// NewEWMA creates the strategy. Alpha must lie in [0, 1]; startValue
// is the prior, expressed in iterations per second, and must be
// positive.
func NewEWMA(alpha, startValue float64) (*EWMA, error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: alpha must be in [0, 1], got %v", ErrInvalidArgument, alpha)
	}
	if math.IsNaN(startValue) || startValue <= 0 {
		return nil, fmt.Errorf("%w: start value must be positive, got %v", ErrInvalidArgument, startValue)
	}
	return &EWMA{alpha: alpha, startValue: startValue}, nil
}

// IterationsPerSecond recomputes the weighted average over the entire
// expanded history on every call, costing O(iterations so far). With
// alpha = 0 every weight is zero and the 0/0 average makes the result
// NaN.
func (w *EWMA) IterationsPerSecond(log *Log, _ Snapshot) float64 {
	perIter := log.PerIteration()

	// The prior sits at index 0 as seconds per iteration; it is the
	// oldest entry and carries the smallest weight.
	values := make([]float64, 0, len(perIter)+1)
	values = append(values, 1/w.startValue)
	values = append(values, perIter...)

	last := len(values) - 1
	weights := make([]float64, len(values))
	for i := range weights {
		weights[i] = w.alpha * math.Pow(1-w.alpha, float64(last-i))
	}

	secondsPerIter := floats.Dot(values, weights) / floats.Sum(weights)
	return 1 / secondsPerIter
}
