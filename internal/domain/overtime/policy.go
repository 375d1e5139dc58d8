package overtime

import (
	"github.com/shopspring/decimal"

	"github.com/rosterly/payrun-backend-go/internal/pkg/validator"
)

// RuleType enum
type RuleType string

const (
	RuleMultiplier RuleType = "multiplier"
	RuleFlatExtra  RuleType = "flat_extra"
)

// Policy is the per-employee overtime configuration. A disabled policy, or one
// without positive contracted hours, pays every hour at the base rate.
type Policy struct {
	Enabled               bool
	ContractedWeeklyHours *decimal.Decimal
	RuleType              RuleType
	Multiplier            *decimal.Decimal
	FlatExtra             *decimal.Decimal
}

func (p Policy) Validate() error {
	var errs validator.ValidationErrors

	if p.ContractedWeeklyHours != nil && p.ContractedWeeklyHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "contracted_weekly_hours", Message: "must be non-negative"})
	}
	if p.Enabled {
		switch p.RuleType {
		case RuleMultiplier:
			if p.Multiplier == nil || p.Multiplier.IsNegative() {
				errs = append(errs, validator.ValidationError{Field: "multiplier", Message: "must be a non-negative number"})
			}
		case RuleFlatExtra:
			if p.FlatExtra == nil || p.FlatExtra.IsNegative() {
				errs = append(errs, validator.ValidationError{Field: "flat_extra", Message: "must be a non-negative number"})
			}
		default:
			errs = append(errs, validator.ValidationError{Field: "rule_type", Message: "must be 'multiplier' or 'flat_extra'"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// hasThreshold reports whether the policy carries a usable contracted-hours
// cutoff.
func (p Policy) hasThreshold() bool {
	return p.Enabled && p.ContractedWeeklyHours != nil && p.ContractedWeeklyHours.IsPositive()
}
