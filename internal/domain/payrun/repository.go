package payrun

import (
	"context"
	"time"
)

// PayRunRepository defines data access for pay runs, lines and the audit
// trail. All methods include tenantID to prevent cross-tenant data access.
// Writes that must be atomic (header plus lines, audit row plus line update)
// run inside a caller-managed transaction.
type PayRunRepository interface {
	// CreateRun inserts the header. The storage layer carries a uniqueness
	// constraint on (tenant_id, period_start, period_end); a violation maps to
	// ErrPayRunPeriodTaken so two concurrent builds can never both commit.
	CreateRun(ctx context.Context, run PayRun) (PayRun, error)
	CreateLines(ctx context.Context, lines []PayRunLine) error

	GetRunByID(ctx context.Context, id string, tenantID string) (PayRun, error)
	GetRunByPeriod(ctx context.Context, tenantID string, periodStart, periodEnd time.Time) (PayRun, error)
	ListRuns(ctx context.Context, tenantID string, filter PayRunFilter) ([]PayRun, int64, error)

	UpdateRunStatus(ctx context.Context, id string, tenantID string, status Status, actorID string) (PayRun, error)
	UpdateRunTotals(ctx context.Context, runID string, tenantID string) error
	DeleteRun(ctx context.Context, id string, tenantID string) error

	GetLineByID(ctx context.Context, id string, tenantID string) (PayRunLine, error)
	ListLinesByRun(ctx context.Context, runID string, tenantID string) ([]PayRunLine, error)
	UpdateLine(ctx context.Context, line PayRunLine, tenantID string) (PayRunLine, error)

	CreateChange(ctx context.Context, change Change) (Change, error)
	ListChangesByLine(ctx context.Context, lineID string, tenantID string) ([]Change, error)
}
