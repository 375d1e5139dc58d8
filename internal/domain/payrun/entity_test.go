package payrun

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusDraft, StatusReviewing, true},
		{StatusReviewing, StatusApproved, true},
		{StatusApproved, StatusFinalised, true},

		// no skipping
		{StatusDraft, StatusApproved, false},
		{StatusDraft, StatusFinalised, false},
		{StatusReviewing, StatusFinalised, false},

		// no going back
		{StatusReviewing, StatusDraft, false},
		{StatusApproved, StatusReviewing, false},
		{StatusFinalised, StatusApproved, false},

		// no self-loops or dead ends
		{StatusDraft, StatusDraft, false},
		{StatusFinalised, StatusFinalised, false},
		{StatusDraft, Status("archived"), false},
		{Status("archived"), StatusDraft, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range StatusValues {
		assert.True(t, Status(s).IsValid())
	}
	assert.False(t, Status("archived").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestPayRunLine_Gross(t *testing.T) {
	t.Parallel()

	line := PayRunLine{
		RegularPay:  decimal.RequireFromString("800"),
		OvertimePay: decimal.RequireFromString("150"),
		Adjustments: decimal.RequireFromString("-25.555"),
	}

	assert.True(t, line.Gross().Equal(decimal.RequireFromString("924.45")), "got %s", line.Gross())
}
