package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthzoneai/hrm-core-go/internal/domain/attendance"
)

type fakePunchRepo struct {
	punches []attendance.Punch
}

func (f *fakePunchRepo) Create(_ context.Context, punch attendance.Punch) (attendance.Punch, error) {
	punch.CreatedAt = time.Now()
	f.punches = append(f.punches, punch)
	return punch, nil
}

func (f *fakePunchRepo) ListByEmployeeAndPeriod(_ context.Context, employeeID string, period attendance.Period) ([]attendance.Punch, error) {
	var out []attendance.Punch
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && period.Contains(p.Date) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) ListByPeriod(_ context.Context, period attendance.Period) ([]attendance.Punch, error) {
	var out []attendance.Punch
	for _, p := range f.punches {
		if period.Contains(p.Date) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) GetLatestByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (attendance.Punch, error) {
	var latest *attendance.Punch
	for i := range f.punches {
		p := f.punches[i]
		if p.EmployeeID != employeeID || !p.Date.Equal(date) {
			continue
		}
		if latest == nil || p.CreatedAt.After(latest.CreatedAt) {
			latest = &f.punches[i]
		}
	}
	if latest == nil {
		return attendance.Punch{}, attendance.ErrPunchNotFound
	}
	return *latest, nil
}

func strPtr(s string) *string { return &s }

func TestRecordPunchStoresParsedTimestamps(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewService(repo)

	created, err := svc.RecordPunch(context.Background(), attendance.RecordPunchRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		ClockIn:    strPtr("2026-03-02T09:00:00Z"),
		ClockOut:   strPtr("2026-03-02T17:30:00Z"),
		Status:     "working",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	require.NotNil(t, created.ClockIn)
	require.NotNil(t, created.ClockOut)
	assert.Equal(t, 8*time.Hour+30*time.Minute, created.ClockOut.Sub(*created.ClockIn))
}

func TestRecordPunchRejectsClockOutWithoutClockIn(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewService(repo)

	_, err := svc.RecordPunch(context.Background(), attendance.RecordPunchRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		ClockOut:   strPtr("2026-03-02T17:30:00Z"),
		Status:     "working",
	})
	assert.Error(t, err)
}

func TestSummaryCountsByClassification(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewService(repo)

	period := attendance.Period{Year: 2026, Month: time.March}
	in := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	out := in.Add(8 * time.Hour)

	repo.punches = []attendance.Punch{
		{EmployeeID: "emp-1", Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), ClockIn: &in, ClockOut: &out, Status: "Working"},
		{EmployeeID: "emp-1", Date: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), Status: "absent"},
		{EmployeeID: "emp-1", Date: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), Status: "on_leave"},
		{EmployeeID: "emp-1", Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), Status: "mystery"},
		// Other employee: must be excluded
		{EmployeeID: "emp-2", Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Status: "working"},
	}

	summary, err := svc.Summary(context.Background(), "emp-1", period)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalDays)
	assert.Equal(t, 1, summary.PresentCount)
	assert.Equal(t, 1, summary.AbsentCount)
	assert.Equal(t, 1, summary.OnLeaveCount)
	assert.Equal(t, 1, summary.UnclassifiedCount)
	assert.Equal(t, 8*time.Hour, summary.WorkedDuration)
	assert.InDelta(t, 25.0, summary.PresentPercent, 0.01)
}

func TestMonthlyRollupGroupsByEmployee(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewService(repo)

	period := attendance.Period{Year: 2026, Month: time.March}
	repo.punches = []attendance.Punch{
		{EmployeeID: "emp-1", Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Status: "working"},
		{EmployeeID: "emp-1", Date: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), Status: "absent"},
		{EmployeeID: "emp-2", Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Status: "on_leave"},
		// Outside the period: must be excluded entirely
		{EmployeeID: "emp-3", Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), Status: "working"},
	}

	rollup, err := svc.MonthlyRollup(context.Background(), period)
	require.NoError(t, err)

	require.Len(t, rollup, 2)
	assert.Equal(t, 2, rollup["emp-1"].TotalDays)
	assert.Equal(t, 1, rollup["emp-2"].OnLeaveCount)
}

func TestLiveShiftMeasuresOpenShift(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewService(repo)

	in := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo.punches = []attendance.Punch{
		{
			EmployeeID: "emp-1",
			Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			ClockIn:    &in,
			Status:     "working",
			CreatedAt:  in,
		},
	}

	at := in.Add(3 * time.Hour)
	punch, duration, err := svc.LiveShift(context.Background(), "emp-1", at)
	require.NoError(t, err)

	assert.Equal(t, "emp-1", punch.EmployeeID)
	assert.Equal(t, attendance.ShiftInProgress, duration.State)
	assert.Equal(t, 3*time.Hour, duration.Duration)
}

func TestLiveShiftNoPunch(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewService(repo)

	_, _, err := svc.LiveShift(context.Background(), "emp-1", time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, attendance.ErrPunchNotFound)
}
