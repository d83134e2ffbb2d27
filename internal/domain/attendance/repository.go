package attendance

import (
	"context"
	"time"
)

// PunchRepository - interface for the attendance_punches table.
type PunchRepository interface {
	Create(ctx context.Context, punch Punch) (Punch, error)
	ListByEmployeeAndPeriod(ctx context.Context, employeeID string, period Period) ([]Punch, error)
	ListByPeriod(ctx context.Context, period Period) ([]Punch, error)
	// GetLatestByEmployeeAndDate returns the most recently recorded punch for
	// the employee on the given date; duplicates are kept, not merged.
	GetLatestByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Punch, error)
}
