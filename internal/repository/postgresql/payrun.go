package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/rosterly/payrun-backend-go/internal/domain/payrun"
	"github.com/rosterly/payrun-backend-go/internal/pkg/database"
)

type payRunRepository struct {
	db *database.DB
}

func NewPayRunRepository(db *database.DB) payrun.PayRunRepository {
	return &payRunRepository{db: db}
}

// ========== RUNS ==========

func (r *payRunRepository) CreateRun(ctx context.Context, run payrun.PayRun) (payrun.PayRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_runs (
			id, tenant_id, period_start, period_end, status,
			total_hours, total_gross_pay, staff_count, skipped_employee_ids, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, tenant_id, period_start, period_end, status,
			total_hours, total_gross_pay, staff_count, skipped_employee_ids,
			created_by, approved_by, finalised_by, created_at, updated_at
	`

	var created payrun.PayRun
	err := q.QueryRow(ctx, query,
		run.ID, run.TenantID, run.PeriodStart, run.PeriodEnd, run.Status,
		run.TotalHours, run.TotalGrossPay, run.StaffCount, run.SkippedEmployeeIDs, run.CreatedBy,
	).Scan(
		&created.ID, &created.TenantID, &created.PeriodStart, &created.PeriodEnd, &created.Status,
		&created.TotalHours, &created.TotalGrossPay, &created.StaffCount, &created.SkippedEmployeeIDs,
		&created.CreatedBy, &created.ApprovedBy, &created.FinalisedBy, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		// The partial unique index on (tenant_id, period_start, period_end) is
		// the real duplicate guard; the service pre-check only improves the
		// error message.
		if strings.Contains(err.Error(), "uk_pay_run_tenant_period") {
			return payrun.PayRun{}, payrun.ErrPayRunPeriodTaken
		}
		return payrun.PayRun{}, fmt.Errorf("failed to create pay run: %w", err)
	}

	return created, nil
}

func (r *payRunRepository) CreateLines(ctx context.Context, lines []payrun.PayRunLine) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_run_lines (
			id, pay_run_id, employee_id,
			regular_hours, overtime_hours, total_hours, hourly_rate, overtime_rate,
			regular_pay, overtime_pay, adjustments, adjustment_reason, gross_pay,
			status, source_shift_ids
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	for _, line := range lines {
		_, err := q.Exec(ctx, query,
			line.ID, line.PayRunID, line.EmployeeID,
			line.RegularHours, line.OvertimeHours, line.TotalHours, line.HourlyRate, line.OvertimeRate,
			line.RegularPay, line.OvertimePay, line.Adjustments, line.AdjustmentReason, line.GrossPay,
			line.Status, line.SourceShiftIDs,
		)
		if err != nil {
			return fmt.Errorf("failed to create pay run line for employee %s: %w", line.EmployeeID, err)
		}
	}

	return nil
}

const payRunColumns = `id, tenant_id, period_start, period_end, status,
		total_hours, total_gross_pay, staff_count, skipped_employee_ids,
		created_by, approved_by, finalised_by, created_at, updated_at`

func scanPayRun(row pgx.Row) (payrun.PayRun, error) {
	var run payrun.PayRun
	err := row.Scan(
		&run.ID, &run.TenantID, &run.PeriodStart, &run.PeriodEnd, &run.Status,
		&run.TotalHours, &run.TotalGrossPay, &run.StaffCount, &run.SkippedEmployeeIDs,
		&run.CreatedBy, &run.ApprovedBy, &run.FinalisedBy, &run.CreatedAt, &run.UpdatedAt,
	)
	return run, err
}

func (r *payRunRepository) GetRunByID(ctx context.Context, id string, tenantID string) (payrun.PayRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payRunColumns + ` FROM pay_runs WHERE id = $1 AND tenant_id = $2`

	run, err := scanPayRun(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrun.PayRun{}, payrun.ErrPayRunNotFound
		}
		return payrun.PayRun{}, fmt.Errorf("failed to get pay run: %w", err)
	}

	return run, nil
}

func (r *payRunRepository) GetRunByPeriod(ctx context.Context, tenantID string, periodStart, periodEnd time.Time) (payrun.PayRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payRunColumns + ` FROM pay_runs
		WHERE tenant_id = $1 AND period_start = $2 AND period_end = $3`

	run, err := scanPayRun(q.QueryRow(ctx, query, tenantID, periodStart, periodEnd))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrun.PayRun{}, payrun.ErrPayRunNotFound
		}
		return payrun.PayRun{}, fmt.Errorf("failed to get pay run by period: %w", err)
	}

	return run, nil
}

func (r *payRunRepository) ListRuns(ctx context.Context, tenantID string, filter payrun.PayRunFilter) ([]payrun.PayRun, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	if filter.Status != "" {
		where += " AND status = $2"
		args = append(args, filter.Status)
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM pay_runs "+where, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count pay runs: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`SELECT %s FROM pay_runs %s ORDER BY period_start DESC LIMIT $%d OFFSET $%d`,
		payRunColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pay runs: %w", err)
	}
	defer rows.Close()

	var runs []payrun.PayRun
	for rows.Next() {
		run, err := scanPayRun(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan pay run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, totalCount, nil
}

func (r *payRunRepository) UpdateRunStatus(ctx context.Context, id string, tenantID string, status payrun.Status, actorID string) (payrun.PayRun, error) {
	q := GetQuerier(ctx, r.db)

	actorColumn := ""
	switch status {
	case payrun.StatusApproved:
		actorColumn = ", approved_by = $4"
	case payrun.StatusFinalised:
		actorColumn = ", finalised_by = $4"
	}

	query := `UPDATE pay_runs SET status = $3, updated_at = NOW()` + actorColumn + `
		WHERE id = $1 AND tenant_id = $2
		RETURNING ` + payRunColumns

	args := []interface{}{id, tenantID, status}
	if actorColumn != "" {
		args = append(args, actorID)
	}

	run, err := scanPayRun(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrun.PayRun{}, payrun.ErrPayRunNotFound
		}
		return payrun.PayRun{}, fmt.Errorf("failed to update pay run status: %w", err)
	}

	return run, nil
}

// UpdateRunTotals re-derives the header totals from included lines, keeping
// them honest after line-level edits.
func (r *payRunRepository) UpdateRunTotals(ctx context.Context, runID string, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pay_runs pr SET
			total_hours = agg.hours,
			total_gross_pay = agg.gross,
			staff_count = agg.staff,
			updated_at = NOW()
		FROM (
			SELECT COALESCE(SUM(total_hours), 0) AS hours,
				   COALESCE(SUM(gross_pay), 0) AS gross,
				   COUNT(*) AS staff
			FROM pay_run_lines
			WHERE pay_run_id = $1 AND status = 'included'
		) agg
		WHERE pr.id = $1 AND pr.tenant_id = $2
	`

	if _, err := q.Exec(ctx, query, runID, tenantID); err != nil {
		return fmt.Errorf("failed to update pay run totals: %w", err)
	}

	return nil
}

func (r *payRunRepository) DeleteRun(ctx context.Context, id string, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	// Lines and audit rows cascade via foreign keys.
	tag, err := q.Exec(ctx, `DELETE FROM pay_runs WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete pay run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payrun.ErrPayRunNotFound
	}

	return nil
}

// ========== LINES ==========

const payRunLineColumns = `l.id, l.pay_run_id, l.employee_id,
		l.regular_hours, l.overtime_hours, l.total_hours, l.hourly_rate, l.overtime_rate,
		l.regular_pay, l.overtime_pay, l.adjustments, l.adjustment_reason, l.gross_pay,
		l.status, l.source_shift_ids, l.created_at, l.updated_at, e.full_name`

func scanPayRunLine(row pgx.Row) (payrun.PayRunLine, error) {
	var line payrun.PayRunLine
	err := row.Scan(
		&line.ID, &line.PayRunID, &line.EmployeeID,
		&line.RegularHours, &line.OvertimeHours, &line.TotalHours, &line.HourlyRate, &line.OvertimeRate,
		&line.RegularPay, &line.OvertimePay, &line.Adjustments, &line.AdjustmentReason, &line.GrossPay,
		&line.Status, &line.SourceShiftIDs, &line.CreatedAt, &line.UpdatedAt, &line.EmployeeName,
	)
	return line, err
}

func (r *payRunRepository) GetLineByID(ctx context.Context, id string, tenantID string) (payrun.PayRunLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payRunLineColumns + `
		FROM pay_run_lines l
		JOIN pay_runs pr ON pr.id = l.pay_run_id
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1 AND pr.tenant_id = $2
	`

	line, err := scanPayRunLine(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrun.PayRunLine{}, payrun.ErrPayRunLineNotFound
		}
		return payrun.PayRunLine{}, fmt.Errorf("failed to get pay run line: %w", err)
	}

	return line, nil
}

func (r *payRunRepository) ListLinesByRun(ctx context.Context, runID string, tenantID string) ([]payrun.PayRunLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payRunLineColumns + `
		FROM pay_run_lines l
		JOIN pay_runs pr ON pr.id = l.pay_run_id
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.pay_run_id = $1 AND pr.tenant_id = $2
		ORDER BY e.full_name NULLS LAST, l.employee_id
	`

	rows, err := q.Query(ctx, query, runID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay run lines: %w", err)
	}
	defer rows.Close()

	var lines []payrun.PayRunLine
	for rows.Next() {
		line, err := scanPayRunLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay run line: %w", err)
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func (r *payRunRepository) UpdateLine(ctx context.Context, line payrun.PayRunLine, tenantID string) (payrun.PayRunLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pay_run_lines l SET
			adjustments = $3,
			adjustment_reason = $4,
			gross_pay = $5,
			status = $6,
			updated_at = NOW()
		FROM pay_runs pr
		WHERE l.id = $1 AND pr.id = l.pay_run_id AND pr.tenant_id = $2
	`

	tag, err := q.Exec(ctx, query,
		line.ID, tenantID, line.Adjustments, line.AdjustmentReason, line.GrossPay, line.Status,
	)
	if err != nil {
		return payrun.PayRunLine{}, fmt.Errorf("failed to update pay run line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payrun.PayRunLine{}, payrun.ErrPayRunLineNotFound
	}

	return r.GetLineByID(ctx, line.ID, tenantID)
}

// ========== AUDIT TRAIL ==========

func (r *payRunRepository) CreateChange(ctx context.Context, change payrun.Change) (payrun.Change, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_run_changes (id, pay_run_line_id, field_changed, old_value, new_value, reason, changed_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, pay_run_line_id, field_changed, old_value, new_value, reason, changed_by, created_at
	`

	var created payrun.Change
	err := q.QueryRow(ctx, query,
		change.ID, change.PayRunLineID, change.FieldChanged, change.OldValue, change.NewValue, change.Reason, change.ChangedBy,
	).Scan(
		&created.ID, &created.PayRunLineID, &created.FieldChanged, &created.OldValue,
		&created.NewValue, &created.Reason, &created.ChangedBy, &created.CreatedAt,
	)
	if err != nil {
		return payrun.Change{}, fmt.Errorf("failed to create pay run change: %w", err)
	}

	return created, nil
}

func (r *payRunRepository) ListChangesByLine(ctx context.Context, lineID string, tenantID string) ([]payrun.Change, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.pay_run_line_id, c.field_changed, c.old_value, c.new_value, c.reason, c.changed_by, c.created_at
		FROM pay_run_changes c
		JOIN pay_run_lines l ON l.id = c.pay_run_line_id
		JOIN pay_runs pr ON pr.id = l.pay_run_id
		WHERE c.pay_run_line_id = $1 AND pr.tenant_id = $2
		ORDER BY c.created_at
	`

	rows, err := q.Query(ctx, query, lineID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay run changes: %w", err)
	}
	defer rows.Close()

	var changes []payrun.Change
	for rows.Next() {
		var c payrun.Change
		if err := rows.Scan(
			&c.ID, &c.PayRunLineID, &c.FieldChanged, &c.OldValue,
			&c.NewValue, &c.Reason, &c.ChangedBy, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pay run change: %w", err)
		}
		changes = append(changes, c)
	}

	return changes, nil
}
