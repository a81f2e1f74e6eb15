// Package models defines data structures for fan measurement processing.
package models

// Sample is one measured operating point of a fan.
type Sample struct {
	// Noise is the measured noise level in dBA.
	Noise float64
	// Metric is the secondary measurement (temperature or airflow).
	Metric float64
	// Tertiary is the optional third measurement (fan speed in rpm).
	// Only meaningful for fans of width 3.
	Tertiary float64
}

// Values returns the first width fields of the sample in column order.
func (s Sample) Values(width int) []float64 {
	if width >= 3 {
		return []float64{s.Noise, s.Metric, s.Tertiary}
	}
	return []float64{s.Noise, s.Metric}
}
