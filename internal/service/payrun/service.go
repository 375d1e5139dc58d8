package payrun

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rosterly/payrun-backend-go/internal/domain/employee"
	"github.com/rosterly/payrun-backend-go/internal/domain/overtime"
	"github.com/rosterly/payrun-backend-go/internal/domain/payrun"
	"github.com/rosterly/payrun-backend-go/internal/domain/rate"
	"github.com/rosterly/payrun-backend-go/internal/domain/shift"
	"github.com/rosterly/payrun-backend-go/internal/domain/tenant"
	"github.com/rosterly/payrun-backend-go/internal/pkg/database"
	"github.com/rosterly/payrun-backend-go/internal/pkg/validator"
	"github.com/rosterly/payrun-backend-go/internal/repository/postgresql"
)

type PayRunServiceImpl struct {
	db           *database.DB
	runRepo      payrun.PayRunRepository
	shiftRepo    shift.ShiftRepository
	rateRepo     rate.RateRepository
	employeeRepo employee.EmployeeRepository
	tenantRepo   tenant.TenantRepository
	logger       *slog.Logger

	// Overridable in tests; production wiring uses postgresql.WithTransaction.
	inTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewPayRunService(
	db *database.DB,
	runRepo payrun.PayRunRepository,
	shiftRepo shift.ShiftRepository,
	rateRepo rate.RateRepository,
	employeeRepo employee.EmployeeRepository,
	tenantRepo tenant.TenantRepository,
	logger *slog.Logger,
) payrun.PayRunService {
	return &PayRunServiceImpl{
		db:           db,
		runRepo:      runRepo,
		shiftRepo:    shiftRepo,
		rateRepo:     rateRepo,
		employeeRepo: employeeRepo,
		tenantRepo:   tenantRepo,
		logger:       logger,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// ========== BUILDER ==========

func (s *PayRunServiceImpl) Create(ctx context.Context, tenantID, actorID string, req payrun.CreatePayRunRequest) (payrun.PayRunResponse, error) {
	if err := req.Validate(); err != nil {
		return payrun.PayRunResponse{}, err
	}

	periodStart, _ := validator.IsValidDate(req.PeriodStart)
	periodEnd, _ := validator.IsValidDate(req.PeriodEnd)

	settings, err := s.tenantRepo.GetSettings(ctx, tenantID)
	if err != nil {
		return payrun.PayRunResponse{}, err
	}
	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		return payrun.PayRunResponse{}, validator.ValidationErrors{{Field: "timezone", Message: "tenant timezone is not a valid IANA timezone"}}
	}

	// Friendly duplicate pre-check; the unique index on the pay_runs table is
	// what actually wins a concurrent race.
	if existing, err := s.runRepo.GetRunByPeriod(ctx, tenantID, periodStart, periodEnd); err == nil {
		if existing.Status == payrun.StatusDraft {
			return payrun.PayRunResponse{}, payrun.ErrDraftRunExists
		}
		return payrun.PayRunResponse{}, payrun.ErrPayRunExists
	} else if !errors.Is(err, payrun.ErrPayRunNotFound) {
		return payrun.PayRunResponse{}, err
	}

	// The caller supplies calendar dates; they become absolute instants here,
	// once, at local midnight in the tenant timezone.
	windowStart := atMidnight(periodStart, loc)
	windowEnd := atMidnight(periodEnd, loc)

	shifts, err := s.shiftRepo.ListForPeriod(ctx, tenantID, windowStart, windowEnd)
	if err != nil {
		return payrun.PayRunResponse{}, fmt.Errorf("failed to load shifts: %w", err)
	}

	hoursByEmployee := shift.Aggregate(shifts)

	employeeIDs := make([]string, 0, len(hoursByEmployee))
	for id := range hoursByEmployee {
		employeeIDs = append(employeeIDs, id)
	}
	sort.Strings(employeeIDs)

	// One batched lookup for the whole employee set. The rate in effect on
	// the period's last day applies to the whole period.
	rates, err := s.rateRepo.ResolveBatch(ctx, tenantID, employeeIDs, periodEnd.AddDate(0, 0, -1))
	if err != nil {
		return payrun.PayRunResponse{}, fmt.Errorf("failed to resolve rates: %w", err)
	}

	policies, err := s.employeeRepo.GetOvertimePolicies(ctx, tenantID, employeeIDs)
	if err != nil {
		return payrun.PayRunResponse{}, fmt.Errorf("failed to load overtime policies: %w", err)
	}

	run := payrun.PayRun{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
		Status:        payrun.StatusDraft,
		TotalHours:    decimal.Zero,
		TotalGrossPay: decimal.Zero,
		CreatedBy:     actorID,
	}

	var lines []payrun.PayRunLine
	for _, employeeID := range employeeIDs {
		baseRate, ok := rates[employeeID]
		if !ok {
			// One misconfigured employee must not block payroll for the rest.
			s.logger.Warn("skipping employee with shifts but no resolvable rate",
				slog.String("tenant_id", tenantID),
				slog.String("employee_id", employeeID),
				slog.String("period_start", req.PeriodStart),
			)
			run.SkippedEmployeeIDs = append(run.SkippedEmployeeIDs, employeeID)
			continue
		}

		policy, ok := policies[employeeID]
		if !ok {
			policy = settings.DefaultOvertime
		}

		agg := hoursByEmployee[employeeID]
		totalHours := agg.TotalHours.Round(2)
		split := overtime.SplitHours(totalHours, policy, baseRate)

		regularPay := split.RegularHours.Mul(baseRate).Round(2)
		overtimePay := split.OvertimeHours.Mul(split.OvertimeRate).Round(2)

		line := payrun.PayRunLine{
			ID:             uuid.NewString(),
			PayRunID:       run.ID,
			EmployeeID:     employeeID,
			RegularHours:   split.RegularHours,
			OvertimeHours:  split.OvertimeHours,
			TotalHours:     totalHours,
			HourlyRate:     baseRate,
			OvertimeRate:   split.OvertimeRate,
			RegularPay:     regularPay,
			OvertimePay:    overtimePay,
			Adjustments:    decimal.Zero,
			Status:         payrun.LineIncluded,
			SourceShiftIDs: agg.ShiftIDs,
		}
		line.GrossPay = line.Gross()
		lines = append(lines, line)

		run.TotalHours = run.TotalHours.Add(totalHours)
		run.TotalGrossPay = run.TotalGrossPay.Add(line.GrossPay)
		run.StaffCount++
	}
	run.TotalHours = run.TotalHours.Round(2)
	run.TotalGrossPay = run.TotalGrossPay.Round(2)

	// Header and lines commit together; a failed line insert rolls the header
	// back rather than leaving an orphan.
	var created payrun.PayRun
	err = s.inTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.runRepo.CreateRun(txCtx, run)
		if txErr != nil {
			return txErr
		}
		return s.runRepo.CreateLines(txCtx, lines)
	})
	if err != nil {
		return payrun.PayRunResponse{}, err
	}

	created.Lines = lines
	return payrun.NewPayRunResponse(created), nil
}

// ========== READS ==========

func (s *PayRunServiceImpl) Get(ctx context.Context, id string, tenantID string) (payrun.PayRunResponse, error) {
	run, err := s.runRepo.GetRunByID(ctx, id, tenantID)
	if err != nil {
		return payrun.PayRunResponse{}, err
	}

	lines, err := s.runRepo.ListLinesByRun(ctx, id, tenantID)
	if err != nil {
		return payrun.PayRunResponse{}, err
	}
	run.Lines = lines

	return payrun.NewPayRunResponse(run), nil
}

func (s *PayRunServiceImpl) List(ctx context.Context, tenantID string, filter payrun.PayRunFilter) (payrun.ListPayRunResponse, error) {
	runs, totalCount, err := s.runRepo.ListRuns(ctx, tenantID, filter)
	if err != nil {
		return payrun.ListPayRunResponse{}, err
	}

	data := make([]payrun.PayRunResponse, 0, len(runs))
	for _, run := range runs {
		data = append(data, payrun.NewPayRunResponse(run))
	}

	return payrun.ListPayRunResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// ========== LIFECYCLE ==========

func (s *PayRunServiceImpl) Transition(ctx context.Context, id string, tenantID, actorID string, req payrun.TransitionRequest) (payrun.PayRunResponse, error) {
	if err := req.Validate(); err != nil {
		return payrun.PayRunResponse{}, err
	}

	run, err := s.runRepo.GetRunByID(ctx, id, tenantID)
	if err != nil {
		return payrun.PayRunResponse{}, err
	}

	next := payrun.Status(req.Status)
	if !run.Status.CanTransitionTo(next) {
		if run.Status == payrun.StatusFinalised {
			return payrun.PayRunResponse{}, payrun.ErrPayRunFinalised
		}
		return payrun.PayRunResponse{}, payrun.ErrInvalidTransition
	}

	updated, err := s.runRepo.UpdateRunStatus(ctx, id, tenantID, next, actorID)
	if err != nil {
		return payrun.PayRunResponse{}, err
	}

	return payrun.NewPayRunResponse(updated), nil
}

func (s *PayRunServiceImpl) Delete(ctx context.Context, id string, tenantID string) error {
	run, err := s.runRepo.GetRunByID(ctx, id, tenantID)
	if err != nil {
		return err
	}
	if run.Status != payrun.StatusDraft {
		return payrun.ErrPayRunNotDraft
	}

	return s.runRepo.DeleteRun(ctx, id, tenantID)
}

// ========== LEDGER ==========

func (s *PayRunServiceImpl) EditLine(ctx context.Context, lineID string, tenantID, actorID string, req payrun.EditLineRequest) (payrun.PayRunLineResponse, error) {
	if err := req.Validate(); err != nil {
		return payrun.PayRunLineResponse{}, err
	}

	line, err := s.runRepo.GetLineByID(ctx, lineID, tenantID)
	if err != nil {
		return payrun.PayRunLineResponse{}, err
	}
	run, err := s.runRepo.GetRunByID(ctx, line.PayRunID, tenantID)
	if err != nil {
		return payrun.PayRunLineResponse{}, err
	}

	// Finalised runs reject edits outright; no audit row is written.
	if run.Status == payrun.StatusFinalised {
		return payrun.PayRunLineResponse{}, payrun.ErrPayRunFinalised
	}

	adjustmentsChanged := req.Adjustments != nil && !req.Adjustments.Equal(line.Adjustments)
	statusChanged := req.Status != nil && payrun.LineStatus(*req.Status) != line.Status

	reason := req.AdjustmentReason
	if run.Status == payrun.StatusApproved && adjustmentsChanged && !req.Adjustments.IsZero() {
		if reason == nil || validator.IsEmpty(*reason) {
			return payrun.PayRunLineResponse{}, payrun.ErrAdjustmentNeedsReason
		}
	}

	updated := line
	var changes []payrun.Change
	if adjustmentsChanged {
		changes = append(changes, payrun.Change{
			ID:           uuid.NewString(),
			PayRunLineID: line.ID,
			FieldChanged: "adjustments",
			OldValue:     line.Adjustments.String(),
			NewValue:     req.Adjustments.String(),
			Reason:       reason,
			ChangedBy:    actorID,
		})
		updated.Adjustments = *req.Adjustments
	}
	if statusChanged {
		changes = append(changes, payrun.Change{
			ID:           uuid.NewString(),
			PayRunLineID: line.ID,
			FieldChanged: "status",
			OldValue:     string(line.Status),
			NewValue:     *req.Status,
			Reason:       reason,
			ChangedBy:    actorID,
		})
		updated.Status = payrun.LineStatus(*req.Status)
	}
	if reason != nil {
		updated.AdjustmentReason = reason
	}

	// Gross pay tracks adjustments; hours and base pay amounts are only ever
	// derived from shifts by the builder, never re-derived here.
	updated.GrossPay = updated.Gross()

	// Audit rows and the line update are one atomic write; the audit rows go
	// in first so intent is recorded ahead of the mutation.
	err = s.inTx(ctx, func(txCtx context.Context) error {
		for _, change := range changes {
			if _, txErr := s.runRepo.CreateChange(txCtx, change); txErr != nil {
				return txErr
			}
		}
		var txErr error
		updated, txErr = s.runRepo.UpdateLine(txCtx, updated, tenantID)
		if txErr != nil {
			return txErr
		}
		return s.runRepo.UpdateRunTotals(txCtx, run.ID, tenantID)
	})
	if err != nil {
		return payrun.PayRunLineResponse{}, err
	}

	return payrun.NewPayRunLineResponse(updated), nil
}

func (s *PayRunServiceImpl) ListLineChanges(ctx context.Context, lineID string, tenantID string) ([]payrun.ChangeResponse, error) {
	if _, err := s.runRepo.GetLineByID(ctx, lineID, tenantID); err != nil {
		return nil, err
	}

	changes, err := s.runRepo.ListChangesByLine(ctx, lineID, tenantID)
	if err != nil {
		return nil, err
	}

	result := make([]payrun.ChangeResponse, 0, len(changes))
	for _, c := range changes {
		result = append(result, payrun.NewChangeResponse(c))
	}
	return result, nil
}

// ========== HELPERS ==========

func atMidnight(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
