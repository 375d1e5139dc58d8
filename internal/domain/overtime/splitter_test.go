package overtime

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestSplitHours_MultiplierRule(t *testing.T) {
	t.Parallel()

	policy := Policy{
		Enabled:               true,
		ContractedWeeklyHours: decPtr("40"),
		RuleType:              RuleMultiplier,
		Multiplier:            decPtr("1.5"),
	}

	split := SplitHours(dec("45"), policy, dec("20"))

	assert.True(t, split.RegularHours.Equal(dec("40")), "regular hours: %s", split.RegularHours)
	assert.True(t, split.OvertimeHours.Equal(dec("5")), "overtime hours: %s", split.OvertimeHours)
	assert.True(t, split.OvertimeRate.Equal(dec("30")), "overtime rate: %s", split.OvertimeRate)
}

func TestSplitHours_FlatExtraRule(t *testing.T) {
	t.Parallel()

	policy := Policy{
		Enabled:               true,
		ContractedWeeklyHours: decPtr("38"),
		RuleType:              RuleFlatExtra,
		FlatExtra:             decPtr("7.50"),
	}

	split := SplitHours(dec("40"), policy, dec("25"))

	assert.True(t, split.RegularHours.Equal(dec("38")))
	assert.True(t, split.OvertimeHours.Equal(dec("2")))
	assert.True(t, split.OvertimeRate.Equal(dec("32.50")))
}

func TestSplitHours_UnderThreshold(t *testing.T) {
	t.Parallel()

	policy := Policy{
		Enabled:               true,
		ContractedWeeklyHours: decPtr("40"),
		RuleType:              RuleMultiplier,
		Multiplier:            decPtr("2"),
	}

	split := SplitHours(dec("35.25"), policy, dec("20"))

	assert.True(t, split.RegularHours.Equal(dec("35.25")))
	assert.True(t, split.OvertimeHours.IsZero())
}

func TestSplitHours_ExactlyAtThreshold(t *testing.T) {
	t.Parallel()

	policy := Policy{
		Enabled:               true,
		ContractedWeeklyHours: decPtr("40"),
		RuleType:              RuleMultiplier,
		Multiplier:            decPtr("1.5"),
	}

	split := SplitHours(dec("40"), policy, dec("20"))

	assert.True(t, split.RegularHours.Equal(dec("40")))
	assert.True(t, split.OvertimeHours.IsZero())
}

func TestSplitHours_NoThreshold(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		policy Policy
	}{
		{"disabled policy", Policy{Enabled: false, ContractedWeeklyHours: decPtr("40"), RuleType: RuleMultiplier, Multiplier: decPtr("1.5")}},
		{"no contracted hours", Policy{Enabled: true, RuleType: RuleMultiplier, Multiplier: decPtr("1.5")}},
		{"zero contracted hours", Policy{Enabled: true, ContractedWeeklyHours: decPtr("0"), RuleType: RuleMultiplier, Multiplier: decPtr("1.5")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			split := SplitHours(dec("50"), tc.policy, dec("20"))
			assert.True(t, split.RegularHours.Equal(dec("50")))
			assert.True(t, split.OvertimeHours.IsZero())
			assert.True(t, split.OvertimeRate.IsZero())
		})
	}
}

func TestSplitHours_ZeroHours(t *testing.T) {
	t.Parallel()

	policy := Policy{
		Enabled:               true,
		ContractedWeeklyHours: decPtr("40"),
		RuleType:              RuleMultiplier,
		Multiplier:            decPtr("1.5"),
	}

	split := SplitHours(decimal.Zero, policy, dec("20"))

	assert.True(t, split.RegularHours.IsZero())
	assert.True(t, split.OvertimeHours.IsZero())
}

func TestPolicy_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		policy  Policy
		wantErr bool
	}{
		{"valid multiplier", Policy{Enabled: true, ContractedWeeklyHours: decPtr("40"), RuleType: RuleMultiplier, Multiplier: decPtr("1.5")}, false},
		{"valid flat extra", Policy{Enabled: true, ContractedWeeklyHours: decPtr("40"), RuleType: RuleFlatExtra, FlatExtra: decPtr("5")}, false},
		{"disabled needs nothing", Policy{Enabled: false}, false},
		{"multiplier missing", Policy{Enabled: true, ContractedWeeklyHours: decPtr("40"), RuleType: RuleMultiplier}, true},
		{"negative multiplier", Policy{Enabled: true, ContractedWeeklyHours: decPtr("40"), RuleType: RuleMultiplier, Multiplier: decPtr("-1")}, true},
		{"flat extra missing", Policy{Enabled: true, ContractedWeeklyHours: decPtr("40"), RuleType: RuleFlatExtra}, true},
		{"unknown rule type", Policy{Enabled: true, ContractedWeeklyHours: decPtr("40"), RuleType: "double"}, true},
		{"negative contracted hours", Policy{Enabled: false, ContractedWeeklyHours: decPtr("-40")}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.policy.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
