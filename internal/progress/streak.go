package progress

import (
	"time"

	"github.com/codepace/codepace/internal/profile"
)

// touchStreak records activity on the given day: consecutive-day activity
// extends the streak, a gap restarts it, repeat activity on the same day is
// a no-op.
func touchStreak(snap *profile.Snapshot, now time.Time) {
	today := profile.DateKey(now)
	if snap.LastActiveDate == today {
		return
	}

	if snap.LastActiveDate == profile.PreviousDateKey(today) {
		snap.CurrentStreak++
	} else {
		snap.CurrentStreak = 1
	}
	snap.TotalActiveDays++
	snap.LastActiveDate = today
}
