package rate

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RateRepository defines data access for the rate history.
// All methods include tenantID to prevent cross-tenant data access.
type RateRepository interface {
	// ResolveBatch returns the hourly rate in effect for each employee as of
	// the given instant, in one query keyed by the full id set. Employees with
	// no entry effective on or before asOf are absent from the result; callers
	// must treat absence as "cannot run payroll", never as a zero rate.
	//
	// This is deliberately the only resolution method: a per-employee variant
	// would invite N+1 lookups from a pay run.
	ResolveBatch(ctx context.Context, tenantID string, employeeIDs []string, asOf time.Time) (map[string]decimal.Decimal, error)

	Create(ctx context.Context, entry HistoryEntry) (HistoryEntry, error)
	GetByID(ctx context.Context, id string, tenantID string) (HistoryEntry, error)
	ListByEmployee(ctx context.Context, employeeID string, tenantID string) ([]HistoryEntry, error)
	Delete(ctx context.Context, id string, tenantID string) error
}
