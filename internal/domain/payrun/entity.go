package payrun

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum. Transitions are one-directional:
// draft -> reviewing -> approved -> finalised. There is no un-finalising.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusReviewing Status = "reviewing"
	StatusApproved  Status = "approved"
	StatusFinalised Status = "finalised"
)

var StatusValues = []string{
	string(StatusDraft),
	string(StatusReviewing),
	string(StatusApproved),
	string(StatusFinalised),
}

var statusRank = map[Status]int{
	StatusDraft:     0,
	StatusReviewing: 1,
	StatusApproved:  2,
	StatusFinalised: 3,
}

// IsValid reports whether s names a known status.
func (s Status) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo permits exactly one step forward in the lifecycle.
func (s Status) CanTransitionTo(next Status) bool {
	cur, ok := statusRank[s]
	if !ok {
		return false
	}
	nxt, ok := statusRank[next]
	if !ok {
		return false
	}
	return nxt == cur+1
}

// LineStatus enum
type LineStatus string

const (
	LineIncluded LineStatus = "included"
	LineExcluded LineStatus = "excluded"
)

// PayRun is one generated batch of payroll lines for a tenant and pay period.
// The period boundary dates are stored denormalized for display and for the
// per-period uniqueness constraint.
type PayRun struct {
	ID          string
	TenantID    string
	PeriodStart time.Time // date part only, tenant timezone
	PeriodEnd   time.Time // exclusive date
	Status      Status

	TotalHours    decimal.Decimal
	TotalGrossPay decimal.Decimal
	StaffCount    int

	// Employees with shifts in the period but no resolvable rate; kept on the
	// run so an operator can be alerted after the fact.
	SkippedEmployeeIDs []string

	CreatedBy   string
	ApprovedBy  *string
	FinalisedBy *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Loaded on demand
	Lines []PayRunLine
}

// PayRunLine is one employee's pay for the run. Hours and the base pay amounts
// are computed only by the builder from shifts; post-creation edits touch
// adjustments, the reason, and the line status, and re-derive gross pay.
type PayRunLine struct {
	ID         string
	PayRunID   string
	EmployeeID string

	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	TotalHours    decimal.Decimal
	HourlyRate    decimal.Decimal
	OvertimeRate  decimal.Decimal
	RegularPay    decimal.Decimal
	OvertimePay   decimal.Decimal

	Adjustments      decimal.Decimal
	AdjustmentReason *string
	GrossPay         decimal.Decimal

	Status         LineStatus
	SourceShiftIDs []string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

// Gross returns round2(regularPay + overtimePay + adjustments), the invariant
// every persisted line must satisfy.
func (l PayRunLine) Gross() decimal.Decimal {
	return l.RegularPay.Add(l.OvertimePay).Add(l.Adjustments).Round(2)
}

// Change is one immutable audit entry recording a single field edit on a line.
// Rows are only ever appended.
type Change struct {
	ID           string
	PayRunLineID string
	FieldChanged string
	OldValue     string
	NewValue     string
	Reason       *string
	ChangedBy    string
	CreatedAt    time.Time
}
