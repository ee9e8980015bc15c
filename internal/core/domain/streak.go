package domain

// Streak tracks consecutive calendar days with at least one recorded entry.
// LastEntryDate is the zero Date until the first activity is registered.
type Streak struct {
	CurrentStreak int  `json:"currentStreak"`
	LongestStreak int  `json:"longestStreak"`
	LastEntryDate Date `json:"lastEntryDate"`
}

// RegisterActivity transitions the streak for an entry recorded today and
// reports whether the record changed. Repeated same-day calls are no-ops, so
// the update is idempotent within a day; LongestStreak never decreases.
func (s *Streak) RegisterActivity(today Date) bool {
	if s.LastEntryDate.IsZero() {
		s.CurrentStreak = 1
		s.LongestStreak = 1
		s.LastEntryDate = today
		return true
	}

	switch days := today.DaysSince(s.LastEntryDate); {
	case days == 0:
		return false // already counted today
	case days == 1:
		s.CurrentStreak++
		if s.CurrentStreak > s.LongestStreak {
			s.LongestStreak = s.CurrentStreak
		}
	default:
		s.CurrentStreak = 1
	}
	s.LastEntryDate = today
	return true
}
