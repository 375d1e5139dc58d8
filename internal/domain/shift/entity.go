package shift

import "time"

// Status enum
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Shift is a scheduled block of work. Read-only to the payrun engine; the
// scheduling side owns creation and edits.
type Shift struct {
	ID           string
	TenantID     string
	EmployeeID   string
	StartAt      time.Time
	EndAt        time.Time
	BreakMinutes int
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Overlaps reports whether two shifts for the same employee are double-booked.
// Scheduling surfaces conflicts with this predicate; payroll aggregation still
// counts both shifts and leaves the conflict to be resolved upstream.
func Overlaps(a, b Shift) bool {
	if a.EmployeeID != b.EmployeeID {
		return false
	}
	return a.StartAt.Before(b.EndAt) && b.StartAt.Before(a.EndAt)
}
