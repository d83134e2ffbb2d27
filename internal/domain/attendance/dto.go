package attendance

import (
	"time"

	"github.com/wealthzoneai/hrm-core-go/internal/pkg/validator"
)

// RecordPunchRequest is the wire shape of a punch delivered by the
// time-tracking source. Timestamps are ISO-8601; the date is YYYY-MM-DD.
type RecordPunchRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	ClockIn    *string `json:"clock_in,omitempty"`
	ClockOut   *string `json:"clock_out,omitempty"`
	Status     string  `json:"status"`
}

func (r *RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date in YYYY-MM-DD format",
		})
	}

	if r.ClockIn != nil {
		if _, ok := validator.IsValidDateTime(*r.ClockIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_in",
				Message: "clock_in must be a valid ISO-8601 timestamp",
			})
		}
	}

	if r.ClockOut != nil {
		if _, ok := validator.IsValidDateTime(*r.ClockOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be a valid ISO-8601 timestamp",
			})
		}
		if r.ClockIn == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out requires a clock_in",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SummaryResponse is the presentation shape of a Summary.
type SummaryResponse struct {
	EmployeeID        string  `json:"employee_id"`
	Period            string  `json:"period"`
	TotalDays         int     `json:"total_days"`
	PresentCount      int     `json:"present_count"`
	AbsentCount       int     `json:"absent_count"`
	OnLeaveCount      int     `json:"on_leave_count"`
	UnclassifiedCount int     `json:"unclassified_count"`
	InvalidPunchCount int     `json:"invalid_punch_count"`
	PresentPercent    float64 `json:"present_percent"`
	AbsentPercent     float64 `json:"absent_percent"`
	OnLeavePercent    float64 `json:"on_leave_percent"`
	WorkedSeconds     int64   `json:"worked_seconds"`
}

func ToSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		EmployeeID:        s.EmployeeID,
		Period:            s.PeriodKey,
		TotalDays:         s.TotalDays,
		PresentCount:      s.PresentCount,
		AbsentCount:       s.AbsentCount,
		OnLeaveCount:      s.OnLeaveCount,
		UnclassifiedCount: s.UnclassifiedCount,
		InvalidPunchCount: s.InvalidPunchCount,
		PresentPercent:    s.PresentPercent,
		AbsentPercent:     s.AbsentPercent,
		OnLeavePercent:    s.OnLeavePercent,
		WorkedSeconds:     int64(s.WorkedDuration.Seconds()),
	}
}

// ShiftDurationResponse is the presentation shape of a live shift lookup.
type ShiftDurationResponse struct {
	EmployeeID      string `json:"employee_id"`
	Date            string `json:"date"`
	State           string `json:"state"`
	DurationSeconds int64  `json:"duration_seconds"`
}

func ToShiftDurationResponse(p Punch, d ShiftDuration) ShiftDurationResponse {
	return ShiftDurationResponse{
		EmployeeID:      p.EmployeeID,
		Date:            p.Date.Format("2006-01-02"),
		State:           string(d.State),
		DurationSeconds: d.Seconds(),
	}
}

// PunchResponse is the presentation shape of a stored punch.
type PunchResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	ClockIn    *string `json:"clock_in,omitempty"`
	ClockOut   *string `json:"clock_out,omitempty"`
	Status     string  `json:"status"`
}

func ToPunchResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Date:       p.Date.Format("2006-01-02"),
		ClockIn:    timePtrToString(p.ClockIn),
		ClockOut:   timePtrToString(p.ClockOut),
		Status:     p.Status,
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
