package shift

import (
	"context"
	"time"
)

// ShiftRepository is the payrun engine's read-only view of the schedule.
// All methods are tenant-scoped to prevent cross-tenant data access.
type ShiftRepository interface {
	// ListForPeriod returns non-cancelled shifts whose start falls inside the
	// half-open window [start, end), both absolute instants.
	ListForPeriod(ctx context.Context, tenantID string, start, end time.Time) ([]Shift, error)
}
