package employee

import (
	"time"

	"github.com/rosterly/payrun-backend-go/internal/domain/overtime"
)

// Employee is the slimmed-down view the payrun engine needs: identity plus the
// overtime policy. Profile data, onboarding and invitations live elsewhere.
type Employee struct {
	ID        string
	TenantID  string
	FullName  string
	Overtime  overtime.Policy
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
