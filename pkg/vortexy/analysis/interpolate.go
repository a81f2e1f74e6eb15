package analysis

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
	"gonum.org/v1/gonum/interp"
)

// DefaultTargetNoise is the noise level in dBA fans are compared at.
const DefaultTargetNoise = 41.0

// SortByNoise returns a copy of samples in ascending noise order.
// Samples with equal noise keep their relative order.
func SortByNoise(samples []models.Sample) []models.Sample {
	sorted := slices.Clone(samples)
	slices.SortStableFunc(sorted, func(a, b models.Sample) int {
		return cmp.Compare(a.Noise, b.Noise)
	})
	return sorted
}

// MetricAt estimates the metric of a fan at the target noise level.
//
// Inside the measured noise range the result is interpolated linearly
// between the bracketing samples. Below the range it is extrapolated along
// the line through the two quietest samples, above it along the line
// through the two loudest. When several samples share a noise value, a
// target below it interpolates towards the first of them in sheet order and
// a target above it interpolates from the last.
//
// The returned error wraps ErrUnavailable when fewer than two samples exist
// or the extrapolation line is vertical.
func MetricAt(samples []models.Sample, target float64) (float64, error) {
	if len(samples) < 2 {
		return 0, fmt.Errorf("%w: %w (have %d)", ErrUnavailable, ErrTooFewSamples, len(samples))
	}

	sorted := SortByNoise(samples)
	n := len(sorted)

	var (
		v   float64
		err error
	)
	switch {
	case target < sorted[0].Noise:
		v, err = extrapolate(sorted[0], sorted[1], sorted[0], target)
	case target > sorted[n-1].Noise:
		v, err = extrapolate(sorted[n-2], sorted[n-1], sorted[n-1], target)
	default:
		v = interpolate(sorted, target)
	}
	if err != nil {
		return 0, err
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: non-finite estimate at %v dBA", ErrUnavailable, target)
	}
	return v, nil
}

// extrapolate follows the line through a and b, starting from anchor.
func extrapolate(a, b, anchor models.Sample, target float64) (float64, error) {
	dn := b.Noise - a.Noise
	if dn == 0 {
		return 0, fmt.Errorf("%w: %w at %v dBA", ErrUnavailable, ErrDegenerateSlope, a.Noise)
	}
	slope := (b.Metric - a.Metric) / dn
	return anchor.Metric + slope*(target-anchor.Noise), nil
}

// interpolate evaluates the line between the samples bracketing target,
// which must lie within the noise range. The upper sample is the first one
// at or above target and the lower is the one just before it, so a run of
// equal noise values ends a segment at its first sample and starts the next
// at its last.
func interpolate(sorted []models.Sample, target float64) float64 {
	i, _ := slices.BinarySearchFunc(sorted, target, func(s models.Sample, t float64) int {
		return cmp.Compare(s.Noise, t)
	})
	i = max(1, min(i, len(sorted)-1))
	lo, hi := sorted[i-1], sorted[i]
	if hi.Noise == lo.Noise {
		return hi.Metric
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit([]float64{lo.Noise, hi.Noise}, []float64{lo.Metric, hi.Metric}); err != nil {
		return math.NaN()
	}
	return pl.Predict(target)
}
