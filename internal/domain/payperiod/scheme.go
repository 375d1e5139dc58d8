package payperiod

import (
	"time"

	"github.com/rosterly/payrun-backend-go/internal/pkg/validator"
)

// SchemeKind enum
type SchemeKind string

const (
	SchemeWeekly      SchemeKind = "weekly"
	SchemeFortnightly SchemeKind = "fortnightly"
	SchemeSemiMonthly SchemeKind = "semi_monthly"
	SchemeMonthly     SchemeKind = "monthly"
)

var SchemeKindValues = []string{
	string(SchemeWeekly),
	string(SchemeFortnightly),
	string(SchemeSemiMonthly),
	string(SchemeMonthly),
}

// Scheme is the closed set of recurring pay period configurations. Only the
// fields belonging to Kind are meaningful; Validate enforces that the required
// ones are present and in range. Changing a tenant's scheme never rewrites
// periods that were already generated from the old one.
type Scheme struct {
	Kind SchemeKind

	// Weekly
	StartDayOfWeek time.Weekday

	// Fortnightly: anchor date the 14-day cycle counts from (date part only).
	ReferenceStartDate *time.Time

	// Semi-monthly: last day of the first half, 1..28.
	FirstHalfEndDay int

	// Monthly: nominal start day, clamped per month, 1..31.
	StartDayOfMonth int
}

func NewWeekly(startDay time.Weekday) Scheme {
	return Scheme{Kind: SchemeWeekly, StartDayOfWeek: startDay}
}

func NewFortnightly(referenceStart time.Time) Scheme {
	return Scheme{Kind: SchemeFortnightly, ReferenceStartDate: &referenceStart}
}

func NewSemiMonthly(firstHalfEndDay int) Scheme {
	return Scheme{Kind: SchemeSemiMonthly, FirstHalfEndDay: firstHalfEndDay}
}

func NewMonthly(startDayOfMonth int) Scheme {
	return Scheme{Kind: SchemeMonthly, StartDayOfMonth: startDayOfMonth}
}

func (s Scheme) Validate() error {
	var errs validator.ValidationErrors

	switch s.Kind {
	case SchemeWeekly:
		if s.StartDayOfWeek < time.Sunday || s.StartDayOfWeek > time.Saturday {
			errs = append(errs, validator.ValidationError{Field: "start_day_of_week", Message: "must be between 0 (Sunday) and 6 (Saturday)"})
		}
	case SchemeFortnightly:
		if s.ReferenceStartDate == nil {
			errs = append(errs, validator.ValidationError{Field: "reference_start_date", Message: "is required for fortnightly schemes"})
		}
	case SchemeSemiMonthly:
		if s.FirstHalfEndDay < 1 || s.FirstHalfEndDay > 28 {
			errs = append(errs, validator.ValidationError{Field: "first_half_end_day", Message: "must be between 1 and 28"})
		}
	case SchemeMonthly:
		if s.StartDayOfMonth < 1 || s.StartDayOfMonth > 31 {
			errs = append(errs, validator.ValidationError{Field: "start_day_of_month", Message: "must be between 1 and 31"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be one of weekly, fortnightly, semi_monthly, monthly"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
