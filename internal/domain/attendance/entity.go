package attendance

import (
	"fmt"
	"time"
)

// Punch is one day's raw clock-in/clock-out record for one employee, as
// delivered by the time-tracking source. The aggregator only reads punches;
// duplicates for the same employee and date are tolerated and never merged.
type Punch struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time

	// Status is the raw source label. It is classified into a DayStatus at
	// the aggregation boundary and never propagated through domain logic.
	Status string

	CreatedAt time.Time
}

// DayStatus is the closed classification of a punch.
type DayStatus string

const (
	DayStatusPresent DayStatus = "present"
	DayStatusAbsent  DayStatus = "absent"
	DayStatusOnLeave DayStatus = "on_leave"
	DayStatusUnknown DayStatus = "unknown"
)

// ShiftState tells whether a punch describes a finished shift.
type ShiftState string

const (
	ShiftNotStarted ShiftState = "not_started"
	ShiftInProgress ShiftState = "in_progress"
	ShiftComplete   ShiftState = "complete"
)

// ShiftDuration is the derived duration of a single punch. Duration is zero
// unless State is ShiftComplete, except on the live path where an in-progress
// shift is measured against a caller-supplied instant.
type ShiftDuration struct {
	State    ShiftState
	Duration time.Duration
}

func (d ShiftDuration) Seconds() int64 {
	return int64(d.Duration.Seconds())
}

// Period is a calendar month.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a period key in YYYY-MM format.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Start returns the first instant of the period in UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant of the following period (exclusive bound).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start()) && t.Before(p.End())
}

// Summary is the derived per-employee, per-period attendance rollup. It is
// never persisted by this package.
//
// Classified counts plus UnclassifiedCount always add up to TotalDays;
// unknown source labels are reported, never silently merged into present.
type Summary struct {
	EmployeeID string
	PeriodKey  string

	TotalDays         int
	PresentCount      int
	AbsentCount       int
	OnLeaveCount      int
	UnclassifiedCount int

	// InvalidPunchCount reports punches whose clock-out precedes clock-in.
	// They still count toward TotalDays but never toward WorkedDuration.
	InvalidPunchCount int

	PresentPercent float64
	AbsentPercent  float64
	OnLeavePercent float64

	// WorkedDuration sums completed shifts only; in-progress and invalid
	// punches are excluded.
	WorkedDuration time.Duration
}
