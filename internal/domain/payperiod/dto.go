package payperiod

import (
	"time"

	"github.com/rosterly/payrun-backend-go/internal/pkg/validator"
)

type ComputeRequest struct {
	ReferenceDate string `json:"reference_date"` // RFC3339 instant or YYYY-MM-DD
	Timezone      string `json:"timezone"`

	SchemeKind         string  `json:"scheme_kind"`
	StartDayOfWeek     *int    `json:"start_day_of_week,omitempty"`
	ReferenceStartDate *string `json:"reference_start_date,omitempty"`
	FirstHalfEndDay    *int    `json:"first_half_end_day,omitempty"`
	StartDayOfMonth    *int    `json:"start_day_of_month,omitempty"`
}

// Parse validates the request and materializes the reference instant and
// scheme. Field-level problems come back as validator.ValidationErrors; the
// scheme itself is validated again inside Compute.
func (r *ComputeRequest) Parse() (time.Time, Scheme, error) {
	var errs validator.ValidationErrors

	var reference time.Time
	if validator.IsEmpty(r.ReferenceDate) {
		errs = append(errs, validator.ValidationError{Field: "reference_date", Message: "is required"})
	} else if t, ok := validator.IsValidDateTime(r.ReferenceDate); ok {
		reference = t
	} else if t, ok := validator.IsValidDate(r.ReferenceDate); ok {
		reference = t
	} else {
		errs = append(errs, validator.ValidationError{Field: "reference_date", Message: "must be an RFC3339 timestamp or YYYY-MM-DD date"})
	}

	if validator.IsEmpty(r.Timezone) {
		errs = append(errs, validator.ValidationError{Field: "timezone", Message: "is required"})
	} else if !validator.IsValidTimezone(r.Timezone) {
		errs = append(errs, validator.ValidationError{Field: "timezone", Message: "must be a valid IANA timezone name"})
	}

	var scheme Scheme
	switch SchemeKind(r.SchemeKind) {
	case SchemeWeekly:
		if r.StartDayOfWeek == nil {
			errs = append(errs, validator.ValidationError{Field: "start_day_of_week", Message: "is required for weekly schemes"})
		} else {
			scheme = NewWeekly(time.Weekday(*r.StartDayOfWeek))
		}
	case SchemeFortnightly:
		if r.ReferenceStartDate == nil {
			errs = append(errs, validator.ValidationError{Field: "reference_start_date", Message: "is required for fortnightly schemes"})
		} else if d, ok := validator.IsValidDate(*r.ReferenceStartDate); ok {
			scheme = NewFortnightly(d)
		} else {
			errs = append(errs, validator.ValidationError{Field: "reference_start_date", Message: "must be a YYYY-MM-DD date"})
		}
	case SchemeSemiMonthly:
		if r.FirstHalfEndDay == nil {
			errs = append(errs, validator.ValidationError{Field: "first_half_end_day", Message: "is required for semi_monthly schemes"})
		} else {
			scheme = NewSemiMonthly(*r.FirstHalfEndDay)
		}
	case SchemeMonthly:
		if r.StartDayOfMonth == nil {
			errs = append(errs, validator.ValidationError{Field: "start_day_of_month", Message: "is required for monthly schemes"})
		} else {
			scheme = NewMonthly(*r.StartDayOfMonth)
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "scheme_kind", Message: "must be one of weekly, fortnightly, semi_monthly, monthly"})
	}

	if len(errs) > 0 {
		return time.Time{}, Scheme{}, errs
	}
	return reference, scheme, nil
}

type PeriodResponse struct {
	Start      string `json:"start"`      // RFC3339 UTC instant
	End        string `json:"end"`        // RFC3339 UTC instant
	StartDate  string `json:"start_date"` // wall-clock date in the tenant timezone
	EndDate    string `json:"end_date"`   // exclusive wall-clock end date
	Timezone   string `json:"timezone"`
	SchemeKind string `json:"scheme_kind"`
}

func NewPeriodResponse(p Period, tz string, kind SchemeKind) PeriodResponse {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return PeriodResponse{
		Start:      p.Start.UTC().Format(time.RFC3339),
		End:        p.End.UTC().Format(time.RFC3339),
		StartDate:  p.Start.In(loc).Format("2006-01-02"),
		EndDate:    p.End.In(loc).Format("2006-01-02"),
		Timezone:   tz,
		SchemeKind: string(kind),
	}
}
