package shift

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m int) time.Time {
	return time.Date(2024, 3, 11, h, m, 0, 0, time.UTC)
}

func TestWorkedHours(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		shift Shift
		want  string
	}{
		{"plain eight hour day", Shift{StartAt: at(9, 0), EndAt: at(17, 0)}, "8"},
		{"unpaid break deducted", Shift{StartAt: at(9, 0), EndAt: at(17, 30), BreakMinutes: 30}, "8"},
		{"quarter hours survive", Shift{StartAt: at(9, 0), EndAt: at(13, 45), BreakMinutes: 15}, "4.5"},
		{"break longer than shift clamps to zero", Shift{StartAt: at(9, 0), EndAt: at(10, 0), BreakMinutes: 90}, "0"},
		{"zero length shift", Shift{StartAt: at(9, 0), EndAt: at(9, 0)}, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WorkedHours(tc.shift)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestWorkedHours_NotPrematurelyRounded(t *testing.T) {
	t.Parallel()

	// 50 minutes is 0.8333... hours; the exact value must survive aggregation
	// so that rounding happens once, on the reported total.
	s := Shift{StartAt: at(9, 0), EndAt: at(9, 50)}
	got := WorkedHours(s)

	want := decimal.NewFromInt(50).Div(decimal.NewFromInt(60))
	assert.True(t, got.Equal(want), "got %s", got)
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	shifts := []Shift{
		{ID: "s1", EmployeeID: "alice", StartAt: at(9, 0), EndAt: at(17, 0), Status: StatusCompleted},
		{ID: "s2", EmployeeID: "alice", StartAt: at(18, 0), EndAt: at(22, 0), Status: StatusPublished},
		{ID: "s3", EmployeeID: "bob", StartAt: at(10, 0), EndAt: at(14, 30), BreakMinutes: 30, Status: StatusCompleted},
		{ID: "s4", EmployeeID: "bob", StartAt: at(15, 0), EndAt: at(23, 0), Status: StatusCancelled},
	}

	totals := Aggregate(shifts)
	require.Len(t, totals, 2)

	assert.True(t, totals["alice"].TotalHours.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, []string{"s1", "s2"}, totals["alice"].ShiftIDs)

	assert.True(t, totals["bob"].TotalHours.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, []string{"s3"}, totals["bob"].ShiftIDs)
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	totals := Aggregate(nil)
	assert.Empty(t, totals)
}

func TestAggregate_OverlappingShiftsBothCount(t *testing.T) {
	t.Parallel()

	// Double-booked shifts are a scheduling problem; payroll pays what was
	// recorded and leaves the conflict to be fixed upstream.
	shifts := []Shift{
		{ID: "s1", EmployeeID: "alice", StartAt: at(9, 0), EndAt: at(13, 0), Status: StatusCompleted},
		{ID: "s2", EmployeeID: "alice", StartAt: at(12, 0), EndAt: at(16, 0), Status: StatusCompleted},
	}

	totals := Aggregate(shifts)
	assert.True(t, totals["alice"].TotalHours.Equal(decimal.NewFromInt(8)))
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	a := Shift{EmployeeID: "alice", StartAt: at(9, 0), EndAt: at(13, 0)}

	cases := []struct {
		name string
		b    Shift
		want bool
	}{
		{"overlapping window", Shift{EmployeeID: "alice", StartAt: at(12, 0), EndAt: at(16, 0)}, true},
		{"contained window", Shift{EmployeeID: "alice", StartAt: at(10, 0), EndAt: at(11, 0)}, true},
		{"back to back is not a conflict", Shift{EmployeeID: "alice", StartAt: at(13, 0), EndAt: at(17, 0)}, false},
		{"different employee", Shift{EmployeeID: "bob", StartAt: at(12, 0), EndAt: at(16, 0)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(a, tc.b))
			assert.Equal(t, tc.want, Overlaps(tc.b, a))
		})
	}
}

func TestFindConflicts(t *testing.T) {
	t.Parallel()

	shifts := []Shift{
		{ID: "s1", EmployeeID: "alice", StartAt: at(9, 0), EndAt: at(13, 0)},
		{ID: "s2", EmployeeID: "alice", StartAt: at(12, 0), EndAt: at(16, 0)},
		{ID: "s3", EmployeeID: "alice", StartAt: at(16, 0), EndAt: at(20, 0)},
		{ID: "s4", EmployeeID: "bob", StartAt: at(9, 0), EndAt: at(17, 0)},
		{ID: "s5", EmployeeID: "carol", StartAt: at(9, 0), EndAt: at(12, 0), Status: StatusCancelled},
		{ID: "s6", EmployeeID: "carol", StartAt: at(11, 0), EndAt: at(14, 0)},
	}

	conflicts := FindConflicts(shifts)

	require.Len(t, conflicts, 1)
	assert.Equal(t, [][2]string{{"s1", "s2"}}, conflicts["alice"])
}
