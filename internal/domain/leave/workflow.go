package leave

import (
	"strings"
	"time"
)

// Workflow evaluates leave request transitions. It holds no mutable state;
// every operation is a pure function of its inputs, so concurrent use is safe.
// TeamLeadGate controls whether newly submitted requests pass through a
// team-lead approval before HR's final decision.
type Workflow struct {
	TeamLeadGate bool
}

// DurationDays returns the inclusive calendar-day count between start and end.
// Weekends and holidays are not excluded; the authoritative duration is
// calendar-day-inclusive.
func DurationDays(start, end time.Time) int {
	return int(truncateToDay(end).Sub(truncateToDay(start)).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RequiresDocument reports whether a request of the given type and duration
// must carry a supporting document.
func RequiresDocument(t LeaveType, durationDays int) bool {
	p, ok := typePolicies[t]
	if !ok {
		return false
	}
	if p.RequiresDocument {
		return true
	}
	return p.DocumentRequiredAfterDays > 0 && durationDays > p.DocumentRequiredAfterDays
}

// Overlaps reports whether two inclusive date ranges intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// SubmitParams carries everything Submit needs. Existing holds the employee's
// current requests so the overlap rule stays a pure function of its inputs.
type SubmitParams struct {
	ID            string
	EmployeeID    string
	RequesterRole Role
	Type          LeaveType
	StartDate     time.Time
	EndDate       time.Time
	Reason        string
	DocumentURL   *string
	SubmittedAt   time.Time
	Existing      []LeaveRequest
}

// Submit validates params and returns a new request in pending state.
// Validation order is fixed: leave type, date range, reason, document,
// overlap. The first failure wins.
func (w Workflow) Submit(p SubmitParams) (LeaveRequest, error) {
	if !p.Type.Valid() {
		return LeaveRequest{}, ErrInvalidLeaveType
	}
	if p.EndDate.Before(p.StartDate) {
		return LeaveRequest{}, ErrInvalidDateRange
	}
	if strings.TrimSpace(p.Reason) == "" {
		return LeaveRequest{}, ErrMissingReason
	}

	days := DurationDays(p.StartDate, p.EndDate)
	if RequiresDocument(p.Type, days) && (p.DocumentURL == nil || strings.TrimSpace(*p.DocumentURL) == "") {
		return LeaveRequest{}, ErrMissingRequiredDocument
	}

	for _, existing := range p.Existing {
		if existing.EmployeeID != p.EmployeeID || !existing.Status.OccupiesRange() {
			continue
		}
		if Overlaps(p.StartDate, p.EndDate, existing.StartDate, existing.EndDate) {
			return LeaveRequest{}, ErrOverlappingLeaveRequest
		}
	}

	return LeaveRequest{
		ID:                 p.ID,
		EmployeeID:         p.EmployeeID,
		RequesterRole:      p.RequesterRole,
		Type:               p.Type,
		StartDate:          truncateToDay(p.StartDate),
		EndDate:            truncateToDay(p.EndDate),
		DurationDays:       days,
		Reason:             p.Reason,
		DocumentURL:        p.DocumentURL,
		RequiresTLApproval: w.TeamLeadGate,
		Status:             StatusPending,
		SubmittedAt:        p.SubmittedAt,
	}, nil
}

// deciderFor returns the role authorized to decide a request in its current
// state, or false when no decision is possible from that state.
func deciderFor(r LeaveRequest) (Role, bool) {
	switch r.Status {
	case StatusPending:
		if r.RequiresTLApproval {
			return RoleTeamLead, true
		}
		return RoleHR, true
	case StatusTLApproved:
		return RoleHR, true
	}
	return "", false
}

// Decide applies an approve/reject decision by the given actor role and
// returns the updated request. Requests in terminal states are never touched.
func (w Workflow) Decide(r LeaveRequest, actorRole Role, decision Decision, remarks string, decidedAt time.Time) (LeaveRequest, error) {
	authorized, ok := deciderFor(r)
	if !ok {
		return LeaveRequest{}, ErrInvalidStateTransition
	}
	if actorRole != authorized {
		return LeaveRequest{}, ErrUnauthorizedTransition
	}

	switch decision {
	case DecisionApprove:
		if actorRole == RoleTeamLead {
			r.Status = StatusTLApproved
		} else {
			r.Status = StatusHRApproved
		}
	case DecisionReject:
		if strings.TrimSpace(remarks) == "" {
			return LeaveRequest{}, ErrMissingRemarks
		}
		if actorRole == RoleTeamLead {
			r.Status = StatusTLRejected
		} else {
			r.Status = StatusHRRejected
		}
		r.DecisionRemarks = &remarks
	default:
		return LeaveRequest{}, ErrInvalidDecision
	}

	r.DecidedAt = &decidedAt
	return r, nil
}

// Cancel moves a non-terminal request to cancelled. Only the original
// requester may cancel.
func (w Workflow) Cancel(r LeaveRequest, actorID string, cancelledAt time.Time) (LeaveRequest, error) {
	if actorID != r.EmployeeID {
		return LeaveRequest{}, ErrUnauthorizedCancellation
	}
	if r.Status.Terminal() {
		return LeaveRequest{}, ErrInvalidStateTransition
	}
	r.Status = StatusCancelled
	r.CancelledAt = &cancelledAt
	return r, nil
}

// Complete promotes an approved request to completed once its leave period
// has fully elapsed.
func (w Workflow) Complete(r LeaveRequest, today time.Time) (LeaveRequest, error) {
	if r.Status != StatusHRApproved {
		return LeaveRequest{}, ErrInvalidStateTransition
	}
	if !truncateToDay(today).After(truncateToDay(r.EndDate)) {
		return LeaveRequest{}, ErrLeavePeriodNotElapsed
	}
	r.Status = StatusCompleted
	return r, nil
}
