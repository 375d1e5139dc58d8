package employee

import (
	"context"

	"github.com/rosterly/payrun-backend-go/internal/domain/overtime"
)

// EmployeeRepository defines data access for employees.
// All methods include tenantID to prevent cross-tenant data access.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, tenantID string) (Employee, error)

	// GetOvertimePolicies returns each employee's overtime policy in one
	// batched query. Employees without an explicit policy are absent; the
	// caller falls back to the tenant default.
	GetOvertimePolicies(ctx context.Context, tenantID string, employeeIDs []string) (map[string]overtime.Policy, error)
}
