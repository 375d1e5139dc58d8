package response

import (
	"errors"
	"net/http"

	"github.com/rosterly/payrun-backend-go/internal/domain/employee"
	"github.com/rosterly/payrun-backend-go/internal/domain/payrun"
	"github.com/rosterly/payrun-backend-go/internal/domain/rate"
	"github.com/rosterly/payrun-backend-go/internal/domain/tenant"
	"github.com/rosterly/payrun-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Pay run domain errors
	case errors.Is(err, payrun.ErrPayRunNotFound):
		NotFound(w, "Pay run not found")
	case errors.Is(err, payrun.ErrPayRunLineNotFound):
		NotFound(w, "Pay run line not found")
	case errors.Is(err, payrun.ErrDraftRunExists):
		Conflict(w, "A draft pay run already exists for this period")
	case errors.Is(err, payrun.ErrPayRunExists):
		Conflict(w, "A pay run has already been processed for this period")
	case errors.Is(err, payrun.ErrPayRunPeriodTaken):
		Conflict(w, "A pay run already exists for this period")
	case errors.Is(err, payrun.ErrPayRunFinalised):
		Conflict(w, "Pay run is finalised and can no longer be modified")
	case errors.Is(err, payrun.ErrInvalidTransition):
		UnprocessableEntity(w, "INVALID_TRANSITION", "Pay run status can only move forward one step at a time")
	case errors.Is(err, payrun.ErrPayRunNotDraft):
		UnprocessableEntity(w, "NOT_DRAFT", "Only draft pay runs can be deleted")
	case errors.Is(err, payrun.ErrAdjustmentNeedsReason):
		UnprocessableEntity(w, "REASON_REQUIRED", "Adjustments on an approved pay run require a reason")

	// Rate domain errors
	case errors.Is(err, rate.ErrRateEntryNotFound):
		NotFound(w, "Rate history entry not found")
	case errors.Is(err, rate.ErrRateEffectiveDateExists):
		Conflict(w, "A rate already exists for this employee and effective date")
	case errors.Is(err, rate.ErrRateAlreadyEffective):
		UnprocessableEntity(w, "RATE_ALREADY_EFFECTIVE", "Rate history entry has already taken effect and cannot be deleted")

	// Employee and tenant domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, tenant.ErrTenantNotFound):
		NotFound(w, "Tenant not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
