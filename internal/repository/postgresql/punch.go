package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wealthzoneai/hrm-core-go/internal/domain/attendance"
	"github.com/wealthzoneai/hrm-core-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

func (r *punchRepositoryImpl) Create(ctx context.Context, punch attendance.Punch) (attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_punches (
			id, employee_id, date, clock_in, clock_out, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW()
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		punch.ID, punch.EmployeeID, punch.Date,
		punch.ClockIn, punch.ClockOut, punch.Status,
	).Scan(&punch.CreatedAt)

	if err != nil {
		return attendance.Punch{}, err
	}

	return punch, nil
}

func (r *punchRepositoryImpl) ListByEmployeeAndPeriod(ctx context.Context, employeeID string, period attendance.Period) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, status, created_at
		FROM attendance_punches
		WHERE employee_id = $1
		  AND date >= $2 AND date < $3
		ORDER BY date ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, period.Start(), period.End())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPunches(rows)
}

func (r *punchRepositoryImpl) ListByPeriod(ctx context.Context, period attendance.Period) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, status, created_at
		FROM attendance_punches
		WHERE date >= $1 AND date < $2
		ORDER BY employee_id ASC, date ASC
	`

	rows, err := q.Query(ctx, query, period.Start(), period.End())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPunches(rows)
}

func (r *punchRepositoryImpl) GetLatestByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, status, created_at
		FROM attendance_punches
		WHERE employee_id = $1 AND date = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var p attendance.Punch
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&p.ID, &p.EmployeeID, &p.Date,
		&p.ClockIn, &p.ClockOut, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Punch{}, attendance.ErrPunchNotFound
		}
		return attendance.Punch{}, err
	}

	return p, nil
}

func collectPunches(rows pgx.Rows) ([]attendance.Punch, error) {
	var punches []attendance.Punch
	for rows.Next() {
		var p attendance.Punch
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Date,
			&p.ClockIn, &p.ClockOut, &p.Status, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return punches, nil
}
