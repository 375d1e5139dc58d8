package shift

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var secondsPerHour = decimal.NewFromInt(3600)

// WorkedHours returns the shift's paid duration in hours: end minus start
// minus the unpaid break. A break longer than the shift clamps to zero instead
// of producing negative pay. The result is not rounded; rounding happens once
// at the point totals are reported.
func WorkedHours(s Shift) decimal.Decimal {
	worked := s.EndAt.Sub(s.StartAt) - time.Duration(s.BreakMinutes)*time.Minute
	if worked <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(worked / time.Second)).Div(secondsPerHour)
}

// EmployeeHours is one employee's summed hours for a period together with the
// shifts the sum came from.
type EmployeeHours struct {
	TotalHours decimal.Decimal
	ShiftIDs   []string
}

// Aggregate sums worked hours per employee. Cancelled shifts are skipped even
// if the caller's query let one through. Hours accumulate unrounded; callers
// round to 2dp when reporting.
//
// Pure function, safe for concurrent use.
func Aggregate(shifts []Shift) map[string]EmployeeHours {
	totals := make(map[string]EmployeeHours)
	for _, s := range shifts {
		if s.Status == StatusCancelled {
			continue
		}
		agg := totals[s.EmployeeID]
		agg.TotalHours = agg.TotalHours.Add(WorkedHours(s))
		agg.ShiftIDs = append(agg.ShiftIDs, s.ID)
		totals[s.EmployeeID] = agg
	}
	return totals
}

// FindConflicts returns every double-booked pair among the given shifts,
// keyed by employee. Used by the scheduling screens, not by payroll.
func FindConflicts(shifts []Shift) map[string][][2]string {
	byEmployee := make(map[string][]Shift)
	for _, s := range shifts {
		if s.Status == StatusCancelled {
			continue
		}
		byEmployee[s.EmployeeID] = append(byEmployee[s.EmployeeID], s)
	}

	conflicts := make(map[string][][2]string)
	for employeeID, group := range byEmployee {
		sort.Slice(group, func(i, j int) bool { return group[i].StartAt.Before(group[j].StartAt) })
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group) && group[j].StartAt.Before(group[i].EndAt); j++ {
				conflicts[employeeID] = append(conflicts[employeeID], [2]string{group[i].ID, group[j].ID})
			}
		}
	}
	return conflicts
}
