package attendance

import (
	"context"
	"time"
)

// AttendanceService exposes aggregation over stored punches. All derivation
// is delegated to the pure functions in this package.
type AttendanceService interface {
	RecordPunch(ctx context.Context, req RecordPunchRequest) (Punch, error)
	Summary(ctx context.Context, employeeID string, period Period) (Summary, error)
	MonthlyRollup(ctx context.Context, period Period) (map[string]Summary, error)
	LiveShift(ctx context.Context, employeeID string, at time.Time) (Punch, ShiftDuration, error)
}
