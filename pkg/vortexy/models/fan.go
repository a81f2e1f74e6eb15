package models

// Fan is one named measured unit with its samples in sheet order.
type Fan struct {
	// Name is the fan name, unique within a FanSet.
	Name string
	// Width is the arity of every sample (2 or 3).
	Width int
	// Samples holds the valid rows read for this fan.
	Samples []Sample
}

// RankedFan is a fan with its estimated metric at the target noise level.
type RankedFan struct {
	Fan
	// MetricAt is the interpolated metric at the target noise.
	MetricAt float64
	// Index is the position of the fan in its source FanSet.
	Index int
}

// SkippedFan records a fan excluded from ranking.
type SkippedFan struct {
	Name   string
	Reason error
}
