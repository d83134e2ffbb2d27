package leave

import "time"

// Role identifies the actor performing a workflow operation. Roles are always
// passed explicitly; domain logic never reads them from ambient session state.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleTeamLead Role = "team_lead"
	RoleHR       Role = "hr"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleTeamLead, RoleHR:
		return true
	}
	return false
}

// LeaveType is the closed set of leave categories.
type LeaveType string

const (
	LeaveTypeCasual    LeaveType = "casual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypePaternity LeaveType = "paternity"
	LeaveTypeUnpaid    LeaveType = "unpaid"
	LeaveTypeAnnual    LeaveType = "annual"
)

// typePolicy captures the evidence rules of a leave type: some types always
// require a supporting document, others only past a duration threshold.
type typePolicy struct {
	RequiresDocument          bool
	DocumentRequiredAfterDays int // 0 means no threshold applies
}

var typePolicies = map[LeaveType]typePolicy{
	LeaveTypeCasual:    {},
	LeaveTypeSick:      {DocumentRequiredAfterDays: 4},
	LeaveTypeMaternity: {RequiresDocument: true},
	LeaveTypePaternity: {RequiresDocument: true},
	LeaveTypeUnpaid:    {},
	LeaveTypeAnnual:    {},
}

func (t LeaveType) Valid() bool {
	_, ok := typePolicies[t]
	return ok
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusTLApproved Status = "tl_approved"
	StatusTLRejected Status = "tl_rejected"
	StatusHRApproved Status = "hr_approved"
	StatusHRRejected Status = "hr_rejected"
	StatusCancelled  Status = "cancelled"
	StatusCompleted  Status = "completed"
)

// Terminal reports whether no decision or cancellation may leave s.
func (s Status) Terminal() bool {
	switch s {
	case StatusTLRejected, StatusHRApproved, StatusHRRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// OccupiesRange reports whether a request in s still blocks overlapping
// submissions for the same employee. Approved leave keeps occupying its dates
// until it is completed.
func (s Status) OccupiesRange() bool {
	switch s {
	case StatusPending, StatusTLApproved, StatusHRApproved:
		return true
	}
	return false
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID            string
	EmployeeID    string
	RequesterRole Role
	Type          LeaveType

	StartDate time.Time
	EndDate   time.Time

	// DurationDays is derived from the dates, calendar-inclusive. It is never
	// accepted from callers.
	DurationDays int

	Reason      string
	DocumentURL *string

	// RequiresTLApproval records whether the team-lead gate applied when the
	// request was submitted, so later policy changes do not reroute it.
	RequiresTLApproval bool

	Status          Status
	DecisionRemarks *string
	DecidedBy       *string
	DecidedAt       *time.Time
	CancelledAt     *time.Time

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
