package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wealthzoneai/hrm-core-go/internal/domain/leave"
)

// WorkflowService drives the leave request lifecycle against the repository.
// All transition rules live in the pure workflow; this layer loads state,
// applies the rule, and persists the outcome with a compare-and-set so
// concurrent decisions resolve to one winner.
type WorkflowService struct {
	repo     leave.LeaveRequestRepository
	workflow leave.Workflow
	now      func() time.Time
}

func NewWorkflowService(repo leave.LeaveRequestRepository, workflow leave.Workflow) *WorkflowService {
	return &WorkflowService{
		repo:     repo,
		workflow: workflow,
		now:      time.Now,
	}
}

func (s *WorkflowService) Submit(ctx context.Context, actorID string, actorRole leave.Role, req leave.SubmitLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	employeeID := actorID
	if req.EmployeeID != "" && req.EmployeeID != actorID {
		if actorRole != leave.RoleHR {
			return leave.LeaveRequest{}, leave.ErrUnauthorizedSubmission
		}
		employeeID = req.EmployeeID
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	existing, err := s.repo.ListActiveByEmployeeID(ctx, employeeID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to list active leave requests: %w", err)
	}

	request, err := s.workflow.Submit(leave.SubmitParams{
		ID:            uuid.NewString(),
		EmployeeID:    employeeID,
		RequesterRole: actorRole,
		Type:          leave.LeaveType(req.LeaveType),
		StartDate:     startDate,
		EndDate:       endDate,
		Reason:        req.Reason,
		DocumentURL:   req.DocumentURL,
		SubmittedAt:   s.now().UTC(),
		Existing:      existing,
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	created, err := s.repo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave request submitted",
		"request_id", created.ID,
		"employee_id", created.EmployeeID,
		"leave_type", created.Type,
		"duration_days", created.DurationDays)

	return created, nil
}

func (s *WorkflowService) Decide(ctx context.Context, actorID string, actorRole leave.Role, req leave.DecideLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	request, err := s.repo.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	from := request.Status

	decided, err := s.workflow.Decide(request, actorRole, leave.Decision(req.Decision), req.Remarks, s.now().UTC())
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	decided.DecidedBy = &actorID
	if err := s.repo.UpdateStatus(ctx, decided.ID, from, decided.Status, decided.DecisionRemarks, actorID); err != nil {
		return leave.LeaveRequest{}, err
	}

	slog.Info("Leave request decided",
		"request_id", decided.ID,
		"decided_by", actorID,
		"from", from,
		"to", decided.Status)

	return decided, nil
}

func (s *WorkflowService) Cancel(ctx context.Context, actorID string, requestID string) (leave.LeaveRequest, error) {
	request, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	from := request.Status

	cancelled, err := s.workflow.Cancel(request, actorID, s.now().UTC())
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if err := s.repo.UpdateStatus(ctx, cancelled.ID, from, leave.StatusCancelled, nil, ""); err != nil {
		return leave.LeaveRequest{}, err
	}

	slog.Info("Leave request cancelled", "request_id", cancelled.ID, "employee_id", cancelled.EmployeeID)

	return cancelled, nil
}

func (s *WorkflowService) Get(ctx context.Context, requestID string) (leave.LeaveRequest, error) {
	request, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return request, nil
}

func (s *WorkflowService) ListMine(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	requests, err := s.repo.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// CompleteElapsed promotes hr_approved requests whose end date has passed to
// completed. A request that loses the compare-and-set race is skipped, not
// treated as a failure.
func (s *WorkflowService) CompleteElapsed(ctx context.Context, today time.Time) (int, error) {
	elapsed, err := s.repo.ListElapsedApproved(ctx, truncateToDay(today))
	if err != nil {
		return 0, fmt.Errorf("failed to list elapsed approved requests: %w", err)
	}

	completed := 0
	for _, request := range elapsed {
		promoted, err := s.workflow.Complete(request, today)
		if err != nil {
			continue
		}
		if err := s.repo.UpdateStatus(ctx, promoted.ID, leave.StatusHRApproved, leave.StatusCompleted, nil, ""); err != nil {
			slog.Warn("Failed to complete elapsed leave request", "request_id", promoted.ID, "error", err)
			continue
		}
		completed++
	}

	return completed, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
