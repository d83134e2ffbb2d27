package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for the leave_requests table.
//
// UpdateStatus is a compare-and-set: the row is only updated when it is still
// in the expected from status. Implementations must return
// ErrInvalidStateTransition when no row matches, so two concurrent decisions
// on the same request resolve to exactly one winner.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListActiveByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListElapsedApproved(ctx context.Context, before time.Time) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, from, to Status, remarks *string, decidedBy string) error
}
