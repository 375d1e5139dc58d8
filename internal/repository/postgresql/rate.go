package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/rosterly/payrun-backend-go/internal/domain/rate"
	"github.com/rosterly/payrun-backend-go/internal/pkg/database"
)

type rateRepository struct {
	db *database.DB
}

func NewRateRepository(db *database.DB) rate.RateRepository {
	return &rateRepository{db: db}
}

// ResolveBatch selects, per employee, the entry with the greatest effective
// date not after asOf's calendar date. One query for the whole id set; the
// builder never loops over employees here.
func (r *rateRepository) ResolveBatch(ctx context.Context, tenantID string, employeeIDs []string, asOf time.Time) (map[string]decimal.Decimal, error) {
	result := make(map[string]decimal.Decimal, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return result, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ON (employee_id) employee_id, hourly_rate
		FROM rate_history
		WHERE tenant_id = $1 AND employee_id = ANY($2) AND effective_date <= $3
		ORDER BY employee_id, effective_date DESC
	`

	rows, err := q.Query(ctx, query, tenantID, employeeIDs, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve rates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID string
		var hourlyRate decimal.Decimal
		if err := rows.Scan(&employeeID, &hourlyRate); err != nil {
			return nil, fmt.Errorf("failed to scan resolved rate: %w", err)
		}
		result[employeeID] = hourlyRate
	}

	return result, nil
}

func (r *rateRepository) Create(ctx context.Context, entry rate.HistoryEntry) (rate.HistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rate_history (id, tenant_id, employee_id, hourly_rate, effective_date, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, tenant_id, employee_id, hourly_rate, effective_date, notes, created_by, created_at
	`

	var created rate.HistoryEntry
	err := q.QueryRow(ctx, query,
		entry.ID, entry.TenantID, entry.EmployeeID, entry.HourlyRate, entry.EffectiveDate, entry.Notes, entry.CreatedBy,
	).Scan(
		&created.ID, &created.TenantID, &created.EmployeeID, &created.HourlyRate,
		&created.EffectiveDate, &created.Notes, &created.CreatedBy, &created.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_rate_history_employee_effective") {
			return rate.HistoryEntry{}, rate.ErrRateEffectiveDateExists
		}
		return rate.HistoryEntry{}, fmt.Errorf("failed to create rate history entry: %w", err)
	}

	return created, nil
}

func (r *rateRepository) GetByID(ctx context.Context, id string, tenantID string) (rate.HistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, employee_id, hourly_rate, effective_date, notes, created_by, created_at
		FROM rate_history
		WHERE id = $1 AND tenant_id = $2
	`

	var entry rate.HistoryEntry
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&entry.ID, &entry.TenantID, &entry.EmployeeID, &entry.HourlyRate,
		&entry.EffectiveDate, &entry.Notes, &entry.CreatedBy, &entry.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return rate.HistoryEntry{}, rate.ErrRateEntryNotFound
		}
		return rate.HistoryEntry{}, fmt.Errorf("failed to get rate history entry: %w", err)
	}

	return entry, nil
}

func (r *rateRepository) ListByEmployee(ctx context.Context, employeeID string, tenantID string) ([]rate.HistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, employee_id, hourly_rate, effective_date, notes, created_by, created_at
		FROM rate_history
		WHERE employee_id = $1 AND tenant_id = $2
		ORDER BY effective_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate history: %w", err)
	}
	defer rows.Close()

	var entries []rate.HistoryEntry
	for rows.Next() {
		var entry rate.HistoryEntry
		if err := rows.Scan(
			&entry.ID, &entry.TenantID, &entry.EmployeeID, &entry.HourlyRate,
			&entry.EffectiveDate, &entry.Notes, &entry.CreatedBy, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rate history entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *rateRepository) Delete(ctx context.Context, id string, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM rate_history WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete rate history entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return rate.ErrRateEntryNotFound
	}

	return nil
}
