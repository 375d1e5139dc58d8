package rate

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryEntry is one effective-dated hourly rate for an employee. The history
// is append-only: an entry may be deleted only while its effective date is
// still in the future. The rate in effect at an instant is the entry with the
// latest effective date not after that instant's calendar date.
type HistoryEntry struct {
	ID            string
	TenantID      string
	EmployeeID    string
	HourlyRate    decimal.Decimal
	EffectiveDate time.Time // date part only
	Notes         *string
	CreatedBy     string
	CreatedAt     time.Time
}
