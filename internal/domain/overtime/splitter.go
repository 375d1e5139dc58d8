package overtime

import "github.com/shopspring/decimal"

// Split is the regular/overtime division of a period's aggregated hours.
type Split struct {
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	OvertimeRate  decimal.Decimal
}

// SplitHours divides totalHours at the policy's contracted-hours threshold and
// derives the overtime rate from baseRate. A single cutoff per period; tiered
// daily-plus-weekly overtime laws are out of scope.
//
// Pure function, safe for concurrent use.
func SplitHours(totalHours decimal.Decimal, policy Policy, baseRate decimal.Decimal) Split {
	if !policy.hasThreshold() {
		return Split{
			RegularHours:  totalHours,
			OvertimeHours: decimal.Zero,
			OvertimeRate:  decimal.Zero,
		}
	}

	contracted := *policy.ContractedWeeklyHours
	regular := decimal.Min(totalHours, contracted)
	over := decimal.Max(totalHours.Sub(contracted), decimal.Zero)

	var rate decimal.Decimal
	switch policy.RuleType {
	case RuleFlatExtra:
		if policy.FlatExtra != nil {
			rate = baseRate.Add(*policy.FlatExtra)
		}
	case RuleMultiplier:
		if policy.Multiplier != nil {
			rate = baseRate.Mul(*policy.Multiplier)
		}
	}

	return Split{RegularHours: regular, OvertimeHours: over, OvertimeRate: rate}
}
