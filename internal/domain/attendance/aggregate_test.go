package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		status string
		want   DayStatus
	}{
		{"working", DayStatusPresent},
		{"present", DayStatusPresent},
		{"Working", DayStatusPresent},
		{"  ABSENT ", DayStatusAbsent},
		{"on_leave", DayStatusOnLeave},
		{"On_Leave", DayStatusOnLeave},
		{"holiday", DayStatusUnknown},
		{"", DayStatusUnknown},
	}
	for _, c := range cases {
		t.Run(c.status, func(t *testing.T) {
			assert.Equal(t, c.want, Classify(Punch{Status: c.status}))
		})
	}
}

func TestDuration(t *testing.T) {
	in := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	out := in.Add(8 * time.Hour)

	t.Run("not started", func(t *testing.T) {
		d, err := Duration(Punch{})
		require.NoError(t, err)
		assert.Equal(t, ShiftNotStarted, d.State)
		assert.Zero(t, d.Duration)
	})

	t.Run("in progress", func(t *testing.T) {
		d, err := Duration(Punch{ClockIn: timePtr(in)})
		require.NoError(t, err)
		assert.Equal(t, ShiftInProgress, d.State)
		assert.Zero(t, d.Duration)
	})

	t.Run("complete", func(t *testing.T) {
		d, err := Duration(Punch{ClockIn: timePtr(in), ClockOut: timePtr(out)})
		require.NoError(t, err)
		assert.Equal(t, ShiftComplete, d.State)
		assert.Equal(t, 8*time.Hour, d.Duration)
	})

	t.Run("clock-out before clock-in", func(t *testing.T) {
		_, err := Duration(Punch{ClockIn: timePtr(out), ClockOut: timePtr(in)})
		assert.ErrorIs(t, err, ErrInvalidPunchOrder)
	})

	t.Run("zero-length shift is valid", func(t *testing.T) {
		d, err := Duration(Punch{ClockIn: timePtr(in), ClockOut: timePtr(in)})
		require.NoError(t, err)
		assert.Equal(t, ShiftComplete, d.State)
		assert.Zero(t, d.Duration)
	})
}

func TestLiveDuration(t *testing.T) {
	in := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("measures open shift against now", func(t *testing.T) {
		d, err := LiveDuration(Punch{ClockIn: timePtr(in)}, in.Add(3*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, ShiftInProgress, d.State)
		assert.Equal(t, 3*time.Hour, d.Duration)
	})

	t.Run("now before clock-in", func(t *testing.T) {
		_, err := LiveDuration(Punch{ClockIn: timePtr(in)}, in.Add(-time.Minute))
		assert.ErrorIs(t, err, ErrInvalidPunchOrder)
	})

	t.Run("completed shift keeps recorded duration", func(t *testing.T) {
		out := in.Add(8 * time.Hour)
		d, err := LiveDuration(Punch{ClockIn: timePtr(in), ClockOut: timePtr(out)}, out.Add(5*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, ShiftComplete, d.State)
		assert.Equal(t, 8*time.Hour, d.Duration)
	})
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2026-03")
	require.NoError(t, err)
	assert.Equal(t, 2026, p.Year)
	assert.Equal(t, time.March, p.Month)
	assert.Equal(t, "2026-03", p.Key())

	for _, bad := range []string{"2026-3", "2026/03", "March 2026", "2026-13", ""} {
		_, err := ParsePeriod(bad)
		assert.ErrorIs(t, err, ErrInvalidPeriod, "input %q", bad)
	}
}

func TestPeriodBounds(t *testing.T) {
	p := Period{Year: 2026, Month: time.February}

	assert.True(t, p.Contains(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)))
}

func TestSummarizeCountsAddUp(t *testing.T) {
	period := Period{Year: 2026, Month: time.March}
	in := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	out := in.Add(8 * time.Hour)

	punches := []Punch{
		{EmployeeID: "emp-1", Date: day(2), ClockIn: timePtr(in), ClockOut: timePtr(out), Status: "working"},
		{EmployeeID: "emp-1", Date: day(3), Status: "absent"},
		{EmployeeID: "emp-1", Date: day(4), Status: "on_leave"},
		{EmployeeID: "emp-1", Date: day(5), Status: "???"},
		// Invalid punch order: counted as a day, excluded from worked time
		{EmployeeID: "emp-1", Date: day(6), ClockIn: timePtr(out), ClockOut: timePtr(in), Status: "working"},
		// Other employee and other period: ignored
		{EmployeeID: "emp-2", Date: day(2), Status: "working"},
		{EmployeeID: "emp-1", Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), Status: "working"},
	}

	s := Summarize(punches, "emp-1", period)

	assert.Equal(t, 5, s.TotalDays)
	assert.Equal(t, 2, s.PresentCount)
	assert.Equal(t, 1, s.AbsentCount)
	assert.Equal(t, 1, s.OnLeaveCount)
	assert.Equal(t, 1, s.UnclassifiedCount)
	assert.Equal(t, 1, s.InvalidPunchCount)
	assert.Equal(t, s.TotalDays, s.PresentCount+s.AbsentCount+s.OnLeaveCount+s.UnclassifiedCount)
	assert.Equal(t, 8*time.Hour, s.WorkedDuration)
	assert.InDelta(t, 40.0, s.PresentPercent, 0.01)
	assert.InDelta(t, 20.0, s.AbsentPercent, 0.01)
	assert.InDelta(t, 20.0, s.OnLeavePercent, 0.01)
}

func TestSummarizeEmptyPeriod(t *testing.T) {
	s := Summarize(nil, "emp-1", Period{Year: 2026, Month: time.March})

	assert.Zero(t, s.TotalDays)
	assert.Zero(t, s.PresentPercent)
	assert.Zero(t, s.AbsentPercent)
	assert.Zero(t, s.OnLeavePercent)
	assert.Zero(t, s.WorkedDuration)
}

func TestSummarizePercentRounding(t *testing.T) {
	period := Period{Year: 2026, Month: time.March}
	punches := []Punch{
		{EmployeeID: "emp-1", Date: day(2), Status: "working"},
		{EmployeeID: "emp-1", Date: day(3), Status: "working"},
		{EmployeeID: "emp-1", Date: day(4), Status: "absent"},
	}

	s := Summarize(punches, "emp-1", period)

	// 2/3 rounds to one decimal
	assert.Equal(t, 66.7, s.PresentPercent)
	assert.Equal(t, 33.3, s.AbsentPercent)
}

func TestSummarizeDuplicateDates(t *testing.T) {
	period := Period{Year: 2026, Month: time.March}
	punches := []Punch{
		{EmployeeID: "emp-1", Date: day(2), Status: "working"},
		{EmployeeID: "emp-1", Date: day(2), Status: "absent"},
	}

	s := Summarize(punches, "emp-1", period)

	// Duplicates are independent records, never merged
	assert.Equal(t, 2, s.TotalDays)
	assert.Equal(t, 1, s.PresentCount)
	assert.Equal(t, 1, s.AbsentCount)
}

func TestMonthlyRollup(t *testing.T) {
	period := Period{Year: 2026, Month: time.March}
	punches := []Punch{
		{EmployeeID: "emp-1", Date: day(2), Status: "working"},
		{EmployeeID: "emp-1", Date: day(3), Status: "absent"},
		{EmployeeID: "emp-2", Date: day(2), Status: "on_leave"},
		{EmployeeID: "emp-3", Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), Status: "working"},
	}

	rollup := MonthlyRollup(punches, period)

	require.Len(t, rollup, 2)
	assert.Equal(t, 2, rollup["emp-1"].TotalDays)
	assert.Equal(t, 1, rollup["emp-2"].OnLeaveCount)
	assert.Equal(t, "2026-03", rollup["emp-1"].PeriodKey)
}
