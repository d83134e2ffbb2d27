package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wealthzoneai/hrm-core-go/internal/domain/attendance"
)

// Service exposes attendance aggregation over stored punches. All derivation
// lives in the pure functions of the attendance domain package; this layer
// only loads punches and feeds them in.
type Service struct {
	repo attendance.PunchRepository
	now  func() time.Time
}

func NewService(repo attendance.PunchRepository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) RecordPunch(ctx context.Context, req attendance.RecordPunchRequest) (attendance.Punch, error) {
	if err := req.Validate(); err != nil {
		return attendance.Punch{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	punch := attendance.Punch{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     req.Status,
	}
	if req.ClockIn != nil {
		t, _ := time.Parse(time.RFC3339, *req.ClockIn)
		utc := t.UTC()
		punch.ClockIn = &utc
	}
	if req.ClockOut != nil {
		t, _ := time.Parse(time.RFC3339, *req.ClockOut)
		utc := t.UTC()
		punch.ClockOut = &utc
	}

	// Unknown labels are stored as-is and surface later as unclassified.
	if attendance.Classify(punch) == attendance.DayStatusUnknown {
		slog.Warn("Punch has unrecognized status label",
			"employee_id", punch.EmployeeID,
			"date", req.Date,
			"status", punch.Status)
	}

	created, err := s.repo.Create(ctx, punch)
	if err != nil {
		return attendance.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return created, nil
}

func (s *Service) Summary(ctx context.Context, employeeID string, period attendance.Period) (attendance.Summary, error) {
	punches, err := s.repo.ListByEmployeeAndPeriod(ctx, employeeID, period)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to list punches: %w", err)
	}

	summary := attendance.Summarize(punches, employeeID, period)

	if summary.UnclassifiedCount > 0 || summary.InvalidPunchCount > 0 {
		slog.Warn("Attendance summary contains data-quality issues",
			"employee_id", employeeID,
			"period", period.Key(),
			"unclassified", summary.UnclassifiedCount,
			"invalid_punches", summary.InvalidPunchCount)
	}

	return summary, nil
}

func (s *Service) MonthlyRollup(ctx context.Context, period attendance.Period) (map[string]attendance.Summary, error) {
	punches, err := s.repo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches for period: %w", err)
	}

	return attendance.MonthlyRollup(punches, period), nil
}

// LiveShift measures the employee's latest punch of the day against the
// supplied instant.
func (s *Service) LiveShift(ctx context.Context, employeeID string, at time.Time) (attendance.Punch, attendance.ShiftDuration, error) {
	date := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)

	punch, err := s.repo.GetLatestByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.Punch{}, attendance.ShiftDuration{}, fmt.Errorf("failed to get latest punch: %w", err)
	}

	duration, err := attendance.LiveDuration(punch, at)
	if err != nil {
		return attendance.Punch{}, attendance.ShiftDuration{}, err
	}

	return punch, duration, nil
}
