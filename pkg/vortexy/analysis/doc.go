// Package analysis estimates fan metrics at a fixed noise level, ranks fans
// by that estimate and corrects decibel readings for ambient noise drift.
//
// Available operations:
//
//   - [MetricAt]:  metric at a target noise, interpolated or extrapolated
//   - [Rank]:      fans ordered by ascending [MetricAt]
//   - [Normalize]: readings moved from one ambient condition to another
package analysis
