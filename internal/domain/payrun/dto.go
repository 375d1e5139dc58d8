package payrun

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rosterly/payrun-backend-go/internal/pkg/validator"
)

type CreatePayRunRequest struct {
	PeriodStart string `json:"period_start"` // YYYY-MM-DD, tenant timezone
	PeriodEnd   string `json:"period_end"`   // YYYY-MM-DD, exclusive
}

func (r *CreatePayRunRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.PeriodStart)
	if validator.IsEmpty(r.PeriodStart) {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "is required"})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a YYYY-MM-DD date"})
	}

	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if validator.IsEmpty(r.PeriodEnd) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "is required"})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a YYYY-MM-DD date"})
	}

	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be after period_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EditLineRequest carries the only fields the ledger may touch after a run is
// created. Hours and base pay amounts are never editable.
type EditLineRequest struct {
	Adjustments      *decimal.Decimal `json:"adjustments,omitempty"`
	AdjustmentReason *string          `json:"adjustment_reason,omitempty"`
	Status           *string          `json:"status,omitempty"`
}

func (r *EditLineRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Adjustments == nil && r.AdjustmentReason == nil && r.Status == nil {
		errs = append(errs, validator.ValidationError{Field: "changes", Message: "at least one editable field is required"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(LineIncluded), string(LineExcluded)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'included' or 'excluded'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransitionRequest struct {
	Status string `json:"status"`
}

func (r *TransitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of draft, reviewing, approved, finalised"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayRunFilter struct {
	Status string
	Page   int
	Limit  int
}

type PayRunResponse struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenant_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Status      string `json:"status"`

	TotalHours    decimal.Decimal `json:"total_hours"`
	TotalGrossPay decimal.Decimal `json:"total_gross_pay"`
	StaffCount    int             `json:"staff_count"`

	SkippedEmployeeIDs []string `json:"skipped_employee_ids,omitempty"`

	CreatedBy   string  `json:"created_by"`
	ApprovedBy  *string `json:"approved_by,omitempty"`
	FinalisedBy *string `json:"finalised_by,omitempty"`
	CreatedAt   string  `json:"created_at"`

	Lines []PayRunLineResponse `json:"lines,omitempty"`
}

type PayRunLineResponse struct {
	ID         string `json:"id"`
	PayRunID   string `json:"pay_run_id"`
	EmployeeID string `json:"employee_id"`

	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
	RegularPay    decimal.Decimal `json:"regular_pay"`
	OvertimePay   decimal.Decimal `json:"overtime_pay"`

	Adjustments      decimal.Decimal `json:"adjustments"`
	AdjustmentReason *string         `json:"adjustment_reason,omitempty"`
	GrossPay         decimal.Decimal `json:"gross_pay"`

	Status         string   `json:"status"`
	SourceShiftIDs []string `json:"source_shift_ids"`
	EmployeeName   *string  `json:"employee_name,omitempty"`
}

type ListPayRunResponse struct {
	Data       []PayRunResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

type ChangeResponse struct {
	ID           string  `json:"id"`
	PayRunLineID string  `json:"pay_run_line_id"`
	FieldChanged string  `json:"field_changed"`
	OldValue     string  `json:"old_value"`
	NewValue     string  `json:"new_value"`
	Reason       *string `json:"reason,omitempty"`
	ChangedBy    string  `json:"changed_by"`
	ChangedAt    string  `json:"changed_at"`
}

func NewPayRunResponse(run PayRun) PayRunResponse {
	resp := PayRunResponse{
		ID:                 run.ID,
		TenantID:           run.TenantID,
		PeriodStart:        run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:          run.PeriodEnd.Format("2006-01-02"),
		Status:             string(run.Status),
		TotalHours:         run.TotalHours,
		TotalGrossPay:      run.TotalGrossPay,
		StaffCount:         run.StaffCount,
		SkippedEmployeeIDs: run.SkippedEmployeeIDs,
		CreatedBy:          run.CreatedBy,
		ApprovedBy:         run.ApprovedBy,
		FinalisedBy:        run.FinalisedBy,
		CreatedAt:          run.CreatedAt.Format(time.RFC3339),
	}
	for _, line := range run.Lines {
		resp.Lines = append(resp.Lines, NewPayRunLineResponse(line))
	}
	return resp
}

func NewPayRunLineResponse(line PayRunLine) PayRunLineResponse {
	return PayRunLineResponse{
		ID:               line.ID,
		PayRunID:         line.PayRunID,
		EmployeeID:       line.EmployeeID,
		RegularHours:     line.RegularHours,
		OvertimeHours:    line.OvertimeHours,
		TotalHours:       line.TotalHours,
		HourlyRate:       line.HourlyRate,
		OvertimeRate:     line.OvertimeRate,
		RegularPay:       line.RegularPay,
		OvertimePay:      line.OvertimePay,
		Adjustments:      line.Adjustments,
		AdjustmentReason: line.AdjustmentReason,
		GrossPay:         line.GrossPay,
		Status:           string(line.Status),
		SourceShiftIDs:   line.SourceShiftIDs,
		EmployeeName:     line.EmployeeName,
	}
}

func NewChangeResponse(c Change) ChangeResponse {
	return ChangeResponse{
		ID:           c.ID,
		PayRunLineID: c.PayRunLineID,
		FieldChanged: c.FieldChanged,
		OldValue:     c.OldValue,
		NewValue:     c.NewValue,
		Reason:       c.Reason,
		ChangedBy:    c.ChangedBy,
		ChangedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}
