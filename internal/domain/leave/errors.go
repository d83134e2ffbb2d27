package leave

import "errors"

var (
	// Validation errors. Recoverable locally; nothing is mutated.
	ErrInvalidDateRange        = errors.New("end date must not be before start date")
	ErrInvalidLeaveType        = errors.New("unknown leave type")
	ErrMissingReason           = errors.New("reason is required")
	ErrMissingRequiredDocument = errors.New("supporting document is required for this leave")
	ErrOverlappingLeaveRequest = errors.New("leave request overlaps an existing active request")
	ErrMissingRemarks          = errors.New("remarks are required when rejecting a leave request")
	ErrInvalidDecision         = errors.New("decision must be approve or reject")

	// Authorization errors. Surfaced to the caller; no state change.
	ErrUnauthorizedTransition   = errors.New("actor role is not authorized for this transition")
	ErrUnauthorizedCancellation = errors.New("only the requester may cancel a leave request")
	ErrUnauthorizedSubmission   = errors.New("only hr may submit leave on behalf of another employee")

	// State errors. The caller holds stale state and should refetch.
	ErrInvalidStateTransition = errors.New("leave request state does not allow this transition")
	ErrLeavePeriodNotElapsed  = errors.New("leave period has not fully elapsed")

	ErrLeaveRequestNotFound = errors.New("leave request not found")
)
