package rate

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rosterly/payrun-backend-go/internal/domain/employee"
	"github.com/rosterly/payrun-backend-go/internal/domain/rate"
	"github.com/rosterly/payrun-backend-go/internal/pkg/validator"
)

type RateServiceImpl struct {
	rateRepo     rate.RateRepository
	employeeRepo employee.EmployeeRepository
	logger       *slog.Logger

	// Overridable in tests so deletion-eligibility cases are deterministic.
	now func() time.Time
}

func NewRateService(
	rateRepo rate.RateRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) rate.RateService {
	return &RateServiceImpl{
		rateRepo:     rateRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *RateServiceImpl) CreateEntry(ctx context.Context, tenantID, actorID string, req rate.CreateRateRequest) (rate.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return rate.RateResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, tenantID); err != nil {
		return rate.RateResponse{}, err
	}

	effectiveDate, _ := validator.IsValidDate(req.EffectiveDate)

	entry := rate.HistoryEntry{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		EmployeeID:    req.EmployeeID,
		HourlyRate:    req.HourlyRate,
		EffectiveDate: effectiveDate,
		Notes:         req.Notes,
		CreatedBy:     actorID,
	}

	created, err := s.rateRepo.Create(ctx, entry)
	if err != nil {
		return rate.RateResponse{}, err
	}

	s.logger.Info("rate history entry created",
		slog.String("tenant_id", tenantID),
		slog.String("employee_id", req.EmployeeID),
		slog.String("effective_date", req.EffectiveDate),
	)

	return rate.NewRateResponse(created), nil
}

func (s *RateServiceImpl) ListByEmployee(ctx context.Context, employeeID string, tenantID string) ([]rate.RateResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID, tenantID); err != nil {
		return nil, err
	}

	entries, err := s.rateRepo.ListByEmployee(ctx, employeeID, tenantID)
	if err != nil {
		return nil, err
	}

	result := make([]rate.RateResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, rate.NewRateResponse(e))
	}
	return result, nil
}

func (s *RateServiceImpl) DeleteEntry(ctx context.Context, id string, tenantID string) error {
	entry, err := s.rateRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		return err
	}

	// An entry that has taken effect may already back a pay run; the history
	// behind processed payroll is append-only.
	today := s.now().UTC().Truncate(24 * time.Hour)
	if !entry.EffectiveDate.After(today) {
		return rate.ErrRateAlreadyEffective
	}

	return s.rateRepo.Delete(ctx, id, tenantID)
}
