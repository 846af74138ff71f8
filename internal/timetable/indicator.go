package timetable

import (
	"context"
	"time"
)

// CurrentTimeOffset computes the fractional-hour position of now inside the
// visible grid window. ok is false when now falls before startHour or at or
// after startHour+visibleHours; otherwise the offset is in [0, visibleHours).
// The indicator is only meaningful while the displayed week is the current
// one, callers suppress it for any other week offset.
func CurrentTimeOffset(now time.Time, startHour, visibleHours int) (offset float64, ok bool) {
	hour := now.Hour()
	if hour < startHour || hour >= startHour+visibleHours {
		return 0, false
	}
	return float64(hour-startHour) + float64(now.Minute())/60, true
}

// WatchIndicator recomputes the current-time offset on a fixed cadence and
// hands each result to fn, starting with an immediate computation. It blocks
// until ctx is cancelled and always stops its ticker on the way out, so a
// torn-down grid view leaves no orphaned timers behind.
func WatchIndicator(ctx context.Context, interval time.Duration, startHour, visibleHours int, now func() time.Time, fn func(offset float64, ok bool)) {
	if now == nil {
		now = time.Now
	}

	fn(CurrentTimeOffset(now(), startHour, visibleHours))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(CurrentTimeOffset(now(), startHour, visibleHours))
		}
	}
}
