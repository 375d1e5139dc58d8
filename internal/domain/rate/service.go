package rate

import "context"

type RateService interface {
	CreateEntry(ctx context.Context, tenantID, actorID string, req CreateRateRequest) (RateResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, tenantID string) ([]RateResponse, error)

	// DeleteEntry removes a future-dated entry. Entries whose effective date
	// has passed are part of the payroll record and cannot be deleted.
	DeleteEntry(ctx context.Context, id string, tenantID string) error
}
