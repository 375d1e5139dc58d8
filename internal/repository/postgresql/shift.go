package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/rosterly/payrun-backend-go/internal/domain/shift"
	"github.com/rosterly/payrun-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) ListForPeriod(ctx context.Context, tenantID string, start, end time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, employee_id, start_at, end_at, break_minutes, status, created_at, updated_at
		FROM shifts
		WHERE tenant_id = $1 AND start_at >= $2 AND start_at < $3 AND status != $4
		ORDER BY employee_id, start_at
	`

	rows, err := q.Query(ctx, query, tenantID, start, end, shift.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts for period: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(
			&s.ID, &s.TenantID, &s.EmployeeID, &s.StartAt, &s.EndAt,
			&s.BreakMinutes, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, nil
}
