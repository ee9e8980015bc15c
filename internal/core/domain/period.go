package domain

import (
	"fmt"
	"strings"
	"time"
)

// Period is a named calendar window used to scope aggregation.
type Period int

const (
	PeriodToday Period = iota
	PeriodWeekly
	PeriodMonthly
	PeriodQuarterly
	PeriodYearly
)

func (p Period) String() string {
	switch p {
	case PeriodToday:
		return "today"
	case PeriodWeekly:
		return "weekly"
	case PeriodMonthly:
		return "monthly"
	case PeriodQuarterly:
		return "quarterly"
	case PeriodYearly:
		return "yearly"
	default:
		return fmt.Sprintf("period(%d)", int(p))
	}
}

// ParsePeriod parses a period keyword. "daily" is an alias of "today".
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "today", "daily", "day":
		return PeriodToday, nil
	case "weekly", "week":
		return PeriodWeekly, nil
	case "monthly", "month":
		return PeriodMonthly, nil
	case "quarterly", "quarter":
		return PeriodQuarterly, nil
	case "yearly", "year":
		return PeriodYearly, nil
	default:
		return PeriodToday, fmt.Errorf("unknown period %q", s)
	}
}

// DateRange is an inclusive [Start, End] window of calendar days.
type DateRange struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// Contains reports whether d falls inside the range, inclusive on both ends.
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Range maps the period to its calendar window containing ref.
// Weeks start on Monday: a Sunday reference maps back to the Monday six days
// prior, per ISO week semantics, not a rolling seven days.
func (p Period) Range(ref Date) DateRange {
	switch p {
	case PeriodWeekly:
		offset := int(ref.Weekday()) - int(time.Monday)
		if offset < 0 {
			offset += 7 // Sunday
		}
		start := ref.AddDays(-offset)
		return DateRange{Start: start, End: start.AddDays(6)}
	case PeriodMonthly:
		start := NewDate(ref.Year(), ref.Month(), 1)
		return DateRange{Start: start, End: NewDate(ref.Year(), ref.Month()+1, 0)}
	case PeriodQuarterly:
		qStart := time.Month((int(ref.Month())-1)/3*3 + 1)
		return DateRange{
			Start: NewDate(ref.Year(), qStart, 1),
			End:   NewDate(ref.Year(), qStart+3, 0),
		}
	case PeriodYearly:
		return DateRange{
			Start: NewDate(ref.Year(), time.January, 1),
			End:   NewDate(ref.Year(), time.December, 31),
		}
	default: // PeriodToday
		return DateRange{Start: ref, End: ref}
	}
}

// FilterEntries returns the entries whose date falls inside the range.
func FilterEntries(entries []Entry, r DateRange) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if r.Contains(e.Date) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
