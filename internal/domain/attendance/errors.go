package attendance

import "errors"

var (
	// Data-quality errors are reported, not fatal: aggregation continues for
	// every other punch and surfaces the anomaly alongside the result.
	ErrInvalidPunchOrder = errors.New("clock-out is earlier than clock-in")

	ErrShiftNotStarted = errors.New("no shift has started for this punch")
	ErrInvalidPeriod   = errors.New("period must be in YYYY-MM format")
	ErrPunchNotFound   = errors.New("attendance punch not found")
)
