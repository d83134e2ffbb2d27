package attendance

import (
	"math"
	"strings"
	"time"
)

// Classify maps the raw source status label onto the closed day status.
// Matching is case-insensitive. Anything unrecognized becomes
// DayStatusUnknown so callers can report it instead of defaulting to present.
func Classify(p Punch) DayStatus {
	switch strings.ToLower(strings.TrimSpace(p.Status)) {
	case "working", "present":
		return DayStatusPresent
	case "absent":
		return DayStatusAbsent
	case "on_leave":
		return DayStatusOnLeave
	}
	return DayStatusUnknown
}

// Duration derives the shift duration of a single punch. A clock-out earlier
// than clock-in is a data-quality error and is reported, never clamped to
// zero. An open shift is in progress; its duration is only measured on the
// live path (see LiveDuration), never during aggregation.
func Duration(p Punch) (ShiftDuration, error) {
	if p.ClockIn == nil {
		return ShiftDuration{State: ShiftNotStarted}, nil
	}
	if p.ClockOut == nil {
		return ShiftDuration{State: ShiftInProgress}, nil
	}
	if p.ClockOut.Before(*p.ClockIn) {
		return ShiftDuration{}, ErrInvalidPunchOrder
	}
	return ShiftDuration{
		State:    ShiftComplete,
		Duration: p.ClockOut.Sub(*p.ClockIn),
	}, nil
}

// LiveDuration measures an in-progress shift against the supplied instant.
// Completed shifts return their recorded duration.
func LiveDuration(p Punch, now time.Time) (ShiftDuration, error) {
	d, err := Duration(p)
	if err != nil {
		return ShiftDuration{}, err
	}
	if d.State != ShiftInProgress {
		return d, nil
	}
	if now.Before(*p.ClockIn) {
		return ShiftDuration{}, ErrInvalidPunchOrder
	}
	return ShiftDuration{State: ShiftInProgress, Duration: now.Sub(*p.ClockIn)}, nil
}

// Summarize folds punches into a per-employee summary for the period.
// Punches for other employees or outside the period are ignored. Duplicate
// punches for the same date are counted as independent days.
func Summarize(punches []Punch, employeeID string, period Period) Summary {
	s := Summary{EmployeeID: employeeID, PeriodKey: period.Key()}

	for _, p := range punches {
		if p.EmployeeID != employeeID || !period.Contains(p.Date) {
			continue
		}
		s.TotalDays++

		switch Classify(p) {
		case DayStatusPresent:
			s.PresentCount++
		case DayStatusAbsent:
			s.AbsentCount++
		case DayStatusOnLeave:
			s.OnLeaveCount++
		default:
			s.UnclassifiedCount++
		}

		d, err := Duration(p)
		if err != nil {
			s.InvalidPunchCount++
			continue
		}
		if d.State == ShiftComplete {
			s.WorkedDuration += d.Duration
		}
	}

	s.PresentPercent = percentOf(s.PresentCount, s.TotalDays)
	s.AbsentPercent = percentOf(s.AbsentCount, s.TotalDays)
	s.OnLeavePercent = percentOf(s.OnLeaveCount, s.TotalDays)

	return s
}

// MonthlyRollup groups all punches in the period by employee and builds one
// summary per group. The result is keyed by employee id; ordering is left to
// the presentation layer.
func MonthlyRollup(punches []Punch, period Period) map[string]Summary {
	grouped := make(map[string][]Punch)
	for _, p := range punches {
		if !period.Contains(p.Date) {
			continue
		}
		grouped[p.EmployeeID] = append(grouped[p.EmployeeID], p)
	}

	summaries := make(map[string]Summary, len(grouped))
	for employeeID, group := range grouped {
		summaries[employeeID] = Summarize(group, employeeID, period)
	}
	return summaries
}

// percentOf returns count/total as a percentage rounded to one decimal,
// guarding against an empty period.
func percentOf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}
