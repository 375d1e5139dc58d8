package payperiod

import (
	"time"

	"github.com/rosterly/payrun-backend-go/internal/pkg/validator"
)

// Period is a half-open [Start, End) interval in absolute time. End is always
// strictly after Start. Periods are recomputed on demand from a scheme; the
// boundary dates are stored denormalized on each pay run.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the instant falls inside [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Compute returns the pay period containing reference under the given scheme,
// evaluated in the tenant's timezone.
//
// The reference instant is first converted to a wall-clock date in tz, the
// boundary dates are derived with pure calendar arithmetic, and each boundary
// is then mapped back to an absolute instant at local midnight. DST
// transitions are therefore resolved independently for start and end; the
// implementation never adds a fixed absolute duration across a boundary.
func Compute(reference time.Time, scheme Scheme, tz string) (Period, error) {
	if validator.IsEmpty(tz) {
		return Period{}, validator.ValidationErrors{{Field: "timezone", Message: "is required"}}
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Period{}, validator.ValidationErrors{{Field: "timezone", Message: "is not a valid IANA timezone"}}
	}
	if err := scheme.Validate(); err != nil {
		return Period{}, err
	}

	year, month, day := reference.In(loc).Date()

	var startY, endY int
	var startM, endM time.Month
	var startD, endD int

	switch scheme.Kind {
	case SchemeWeekly:
		// Most recent occurrence of the configured weekday on or before the
		// reference date. time.Date normalizes out-of-range days.
		weekday := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
		offset := (int(weekday) - int(scheme.StartDayOfWeek) + 7) % 7
		startY, startM, startD = year, month, day-offset
		endY, endM, endD = year, month, day-offset+7

	case SchemeFortnightly:
		refY, refM, refD := scheme.ReferenceStartDate.Date()
		elapsed := calendarDays(refY, refM, refD, year, month, day)
		periods := floorDiv(elapsed, 14)
		startY, startM, startD = refY, refM, refD+periods*14
		endY, endM, endD = refY, refM, refD+periods*14+14

	case SchemeSemiMonthly:
		if day <= scheme.FirstHalfEndDay {
			startY, startM, startD = year, month, 1
			endY, endM, endD = year, month, scheme.FirstHalfEndDay+1
		} else {
			startY, startM, startD = year, month, scheme.FirstHalfEndDay+1
			endY, endM, endD = year, month+1, 1
		}

	case SchemeMonthly:
		// The nominal start day is clamped to each month's length separately
		// so a "starts on the 31st" scheme degrades in short months without
		// drifting.
		startD = clampDay(scheme.StartDayOfMonth, year, month)
		startY, startM = year, month
		if day < startD {
			startY, startM = prevMonth(year, month)
			startD = clampDay(scheme.StartDayOfMonth, startY, startM)
		}
		endY, endM = nextMonth(startY, startM)
		endD = clampDay(scheme.StartDayOfMonth, endY, endM)
	}

	start := time.Date(startY, startM, startD, 0, 0, 0, 0, loc)
	end := time.Date(endY, endM, endD, 0, 0, 0, 0, loc)

	return Period{Start: start.UTC(), End: end.UTC()}, nil
}

// calendarDays counts whole calendar days from date a to date b. Both dates
// are re-anchored at UTC midnight so the count is never skewed by DST.
func calendarDays(ay int, am time.Month, ad, by int, bm time.Month, bd int) int {
	a := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	b := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// floorDiv rounds toward negative infinity, unlike Go's integer division.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func clampDay(day, year int, month time.Month) int {
	if last := daysInMonth(year, month); day > last {
		return last
	}
	return day
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month-1, 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}
