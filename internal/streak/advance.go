package streak

import (
	"time"

	util "github.com/vmfarias/readrush/internal/utils"
)

// Advance computes the next streak state for one activity at `now`.
// Pure by design so the gap logic is testable without a database: the
// caller loads the previous row (or nil) and persists the result.
func Advance(now time.Time, prev *Streak) Streak {
	if prev == nil {
		return Streak{
			CurrentStreak:    1,
			LongestStreak:    1,
			LastActivityDate: now,
		}
	}

	next := *prev

	switch days := util.DaysBetween(prev.LastActivityDate, now); {
	case days <= 0:
		// Second activity on the same calendar day: no double counting.
		return next
	case days == 1:
		next.CurrentStreak = prev.CurrentStreak + 1
		if next.CurrentStreak > next.LongestStreak {
			next.LongestStreak = next.CurrentStreak
		}
	default:
		next.CurrentStreak = 1
		if next.LongestStreak < 1 {
			next.LongestStreak = 1
		}
	}

	next.LastActivityDate = now
	return next
}
