package payrun

import "context"

// PayRunService is the engine's inbound API. Tenant and actor come from the
// authenticated request; handlers resolve them from claims and pass them down.
type PayRunService interface {
	// Create builds a pay run for the period: aggregates shifts, resolves
	// rates in one batch, splits overtime per employee and persists header
	// plus lines atomically. Employees with shifts but no resolvable rate are
	// skipped and reported, not fatal.
	Create(ctx context.Context, tenantID, actorID string, req CreatePayRunRequest) (PayRunResponse, error)

	Get(ctx context.Context, id string, tenantID string) (PayRunResponse, error)
	List(ctx context.Context, tenantID string, filter PayRunFilter) (ListPayRunResponse, error)

	// Transition moves the run one step forward; backward moves are rejected.
	Transition(ctx context.Context, id string, tenantID, actorID string, req TransitionRequest) (PayRunResponse, error)

	// Delete removes a draft run and its lines. Non-draft runs cannot be
	// deleted.
	Delete(ctx context.Context, id string, tenantID string) error

	// EditLine applies an audited adjustment/status edit under the owning
	// run's state machine.
	EditLine(ctx context.Context, lineID string, tenantID, actorID string, req EditLineRequest) (PayRunLineResponse, error)

	ListLineChanges(ctx context.Context, lineID string, tenantID string) ([]ChangeResponse, error)
}
