// Package output serializes fan data to JSON, xlsx and chart images.
package output

import "fmt"

// PointOrder selects the element order of two-column curve points.
type PointOrder string

const (
	// NoiseFirst writes points as [noise, metric].
	NoiseFirst PointOrder = "noise-first"
	// MetricFirst writes points as [metric, noise], matching charts that
	// plot the metric on the X axis.
	MetricFirst PointOrder = "metric-first"
)

// ParsePointOrder validates a point order name. An empty name selects
// NoiseFirst.
func ParsePointOrder(s string) (PointOrder, error) {
	switch PointOrder(s) {
	case "", NoiseFirst:
		return NoiseFirst, nil
	case MetricFirst:
		return MetricFirst, nil
	default:
		return "", fmt.Errorf("invalid point order: %s (must be %s or %s)", s, NoiseFirst, MetricFirst)
	}
}

// CurveOptions configures curve JSON encoding.
type CurveOptions struct {
	// PointOrder is the element order of two-column points.
	PointOrder PointOrder
	// SortByNoise writes each fan's samples in ascending noise order
	// instead of sheet order.
	SortByNoise bool
	// Precision rounds every written value to this many decimal places.
	// If nil, values are written as stored.
	Precision *int
	// Pretty indents the JSON output.
	Pretty bool
}
