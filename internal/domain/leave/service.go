package leave

import (
	"context"
	"time"
)

// LeaveService drives the request lifecycle. Actor identity and role are
// explicit parameters on every operation.
type LeaveService interface {
	Submit(ctx context.Context, actorID string, actorRole Role, req SubmitLeaveRequest) (LeaveRequest, error)
	Decide(ctx context.Context, actorID string, actorRole Role, req DecideLeaveRequest) (LeaveRequest, error)
	Cancel(ctx context.Context, actorID string, requestID string) (LeaveRequest, error)
	Get(ctx context.Context, requestID string) (LeaveRequest, error)
	ListMine(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	CompleteElapsed(ctx context.Context, today time.Time) (int, error)
}
