package analysis

import "errors"

// ErrUnavailable indicates no metric can be estimated for a fan.
var ErrUnavailable = errors.New("metric unavailable")

// ErrTooFewSamples indicates a fan has fewer than two samples.
var ErrTooFewSamples = errors.New("fewer than two samples")

// ErrDegenerateSlope indicates the two samples used for extrapolation share
// the same noise value.
var ErrDegenerateSlope = errors.New("samples share the same noise value")
