package leave

import (
	"time"

	"github.com/wealthzoneai/hrm-core-go/internal/pkg/validator"
)

// SubmitLeaveRequest is the wire shape of a leave submission. Dates arrive as
// YYYY-MM-DD strings. EmployeeID is only honored when HR submits on an
// employee's behalf; otherwise the authenticated employee is used.
type SubmitLeaveRequest struct {
	EmployeeID  string  `json:"employee_id,omitempty"`
	LeaveType   string  `json:"leave_type"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Reason      string  `json:"reason"`
	DocumentURL *string `json:"document_url,omitempty"`
}

// Validate checks wire-format concerns only. Semantic rules (date ordering,
// reason, evidence, overlap) belong to the workflow so their error ordering
// stays deterministic.
func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequest struct {
	RequestID string `json:"request_id"`
	Decision  string `json:"decision"`
	Remarks   string `json:"remarks,omitempty"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if !validator.IsInSlice(r.Decision, []string{string(DecisionApprove), string(DecisionReject)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be either approve or reject",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveRequestResponse is the presentation shape of a request.
type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	RequesterRole   string  `json:"requester_role"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	DurationDays    int     `json:"duration_days"`
	Reason          string  `json:"reason"`
	DocumentURL     *string `json:"document_url,omitempty"`
	Status          string  `json:"status"`
	DecisionRemarks *string `json:"decision_remarks,omitempty"`
	DecidedBy       *string `json:"decided_by,omitempty"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	SubmittedAt     string  `json:"submitted_at"`
}

// ToResponse maps a request entity onto its wire shape.
func ToResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		RequesterRole:   string(r.RequesterRole),
		LeaveType:       string(r.Type),
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		DurationDays:    r.DurationDays,
		Reason:          r.Reason,
		DocumentURL:     r.DocumentURL,
		Status:          string(r.Status),
		DecisionRemarks: r.DecisionRemarks,
		DecidedBy:       r.DecidedBy,
		DecidedAt:       timePtrToString(r.DecidedAt),
		SubmittedAt:     r.SubmittedAt.Format(time.RFC3339),
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
