package tenant

import (
	"time"

	"github.com/rosterly/payrun-backend-go/internal/domain/overtime"
	"github.com/rosterly/payrun-backend-go/internal/domain/payperiod"
)

// Settings is the per-tenant configuration the payrun engine consumes:
// the employer timezone every period boundary and shift day is resolved in,
// the configured pay period scheme, and the overtime defaults applied to
// employees without their own policy.
type Settings struct {
	TenantID        string
	Name            string
	Timezone        string
	PeriodScheme    payperiod.Scheme
	DefaultOvertime overtime.Policy
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
