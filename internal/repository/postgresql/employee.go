package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/rosterly/payrun-backend-go/internal/domain/employee"
	"github.com/rosterly/payrun-backend-go/internal/domain/overtime"
	"github.com/rosterly/payrun-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string, tenantID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, full_name,
			   overtime_enabled, contracted_weekly_hours, overtime_rule_type,
			   overtime_multiplier, overtime_flat_extra,
			   is_active, created_at, updated_at
		FROM employees
		WHERE id = $1 AND tenant_id = $2
	`

	var emp employee.Employee
	var policy overtime.Policy
	var ruleType *string

	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&emp.ID, &emp.TenantID, &emp.FullName,
		&policy.Enabled, &policy.ContractedWeeklyHours, &ruleType,
		&policy.Multiplier, &policy.FlatExtra,
		&emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if ruleType != nil {
		policy.RuleType = overtime.RuleType(*ruleType)
	}
	emp.Overtime = policy

	return emp, nil
}

// GetOvertimePolicies loads every employee's policy in one query. Employees
// the query does not return are absent from the map.
func (r *employeeRepository) GetOvertimePolicies(ctx context.Context, tenantID string, employeeIDs []string) (map[string]overtime.Policy, error) {
	policies := make(map[string]overtime.Policy, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return policies, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, overtime_enabled, contracted_weekly_hours, overtime_rule_type,
			   overtime_multiplier, overtime_flat_extra
		FROM employees
		WHERE tenant_id = $1 AND id = ANY($2)
	`

	rows, err := q.Query(ctx, query, tenantID, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get overtime policies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var policy overtime.Policy
		var ruleType *string
		var contracted, multiplier, flatExtra *decimal.Decimal
		if err := rows.Scan(&id, &policy.Enabled, &contracted, &ruleType, &multiplier, &flatExtra); err != nil {
			return nil, fmt.Errorf("failed to scan overtime policy: %w", err)
		}
		policy.ContractedWeeklyHours = contracted
		policy.Multiplier = multiplier
		policy.FlatExtra = flatExtra
		if ruleType != nil {
			policy.RuleType = overtime.RuleType(*ruleType)
		}
		policies[id] = policy
	}

	return policies, nil
}
