package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wealthzoneai/hrm-core-go/internal/domain/leave"
	"github.com/wealthzoneai/hrm-core-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.requester_role, lr.leave_type,
	lr.start_date, lr.end_date, lr.duration_days,
	lr.reason, lr.document_url, lr.requires_tl_approval,
	lr.status, lr.decision_remarks, lr.decided_by, lr.decided_at,
	lr.cancelled_at, lr.submitted_at, lr.created_at, lr.updated_at
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.RequesterRole, &lr.Type,
		&lr.StartDate, &lr.EndDate, &lr.DurationDays,
		&lr.Reason, &lr.DocumentURL, &lr.RequiresTLApproval,
		&lr.Status, &lr.DecisionRemarks, &lr.DecidedBy, &lr.DecidedAt,
		&lr.CancelledAt, &lr.SubmittedAt, &lr.CreatedAt, &lr.UpdatedAt,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, requester_role, leave_type,
			start_date, end_date, duration_days,
			reason, document_url, requires_tl_approval,
			status, submitted_at,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10,
			$11, $12,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.RequesterRole, request.Type,
		request.StartDate, request.EndDate, request.DurationDays,
		request.Reason, request.DocumentURL, request.RequiresTLApproval,
		request.Status, request.SubmittedAt,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.id = $1
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return lr, nil
}

func (r *leaveRequestRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		ORDER BY lr.submitted_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

// ListActiveByEmployeeID returns requests in a range-occupying status, used
// for overlap checks on submission.
func (r *leaveRequestRepositoryImpl) ListActiveByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		  AND lr.status IN ('pending', 'tl_approved', 'hr_approved')
		ORDER BY lr.start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListElapsedApproved(ctx context.Context, before time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.status = 'hr_approved'
		  AND lr.end_date < $1
		ORDER BY lr.end_date ASC
	`

	rows, err := q.Query(ctx, query, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

// UpdateStatus moves a request from one status to another with a
// compare-and-set on the current status. Concurrent deciders race on the
// same row; the loser matches zero rows and gets ErrInvalidStateTransition.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, from, to leave.Status, remarks *string, decidedBy string) error {
	q := GetQuerier(ctx, r.db)

	var query string
	var args []interface{}

	switch {
	case to == leave.StatusCancelled:
		query = `
			UPDATE leave_requests
			SET status = $1, cancelled_at = NOW(), updated_at = NOW()
			WHERE id = $2 AND status = $3
			RETURNING id
		`
		args = []interface{}{to, id, from}
	case decidedBy != "":
		query = `
			UPDATE leave_requests
			SET status = $1, decision_remarks = $2, decided_by = $3, decided_at = NOW(), updated_at = NOW()
			WHERE id = $4 AND status = $5
			RETURNING id
		`
		args = []interface{}{to, remarks, decidedBy, id, from}
	default:
		query = `
			UPDATE leave_requests
			SET status = $1, updated_at = NOW()
			WHERE id = $2 AND status = $3
			RETURNING id
		`
		args = []interface{}{to, id, from}
	}

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrInvalidStateTransition
		}
		return err
	}

	return nil
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}
