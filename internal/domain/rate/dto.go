package rate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rosterly/payrun-backend-go/internal/pkg/validator"
)

type CreateRateRequest struct {
	EmployeeID    string          `json:"-"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	EffectiveDate string          `json:"effective_date"`
	Notes         *string         `json:"notes,omitempty"`
}

func (r *CreateRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if validator.IsEmpty(r.EffectiveDate) {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be a YYYY-MM-DD date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RateResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	EffectiveDate string          `json:"effective_date"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     string          `json:"created_at"`
}

func NewRateResponse(e HistoryEntry) RateResponse {
	return RateResponse{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		HourlyRate:    e.HourlyRate,
		EffectiveDate: e.EffectiveDate.Format("2006-01-02"),
		Notes:         e.Notes,
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}
