// Package timetable converts the flat timetable slot collection into
// positioned, time-proportional weekly grid geometry: day bucketing,
// vertical placement by wall-clock offset, stable per-class colors,
// week-window navigation and the current-time indicator.
package timetable

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToOffset converts a wall-clock string "HH:MM" or "HH:MM:SS" into a
// fractional-hour offset from startHour. Seconds are ignored. The result is
// negative when the time precedes startHour; no clamping is applied, callers
// decide whether out-of-grid offsets are clipped or dropped.
func TimeToOffset(value string, startHour int) (float64, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("malformed time %q", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q: %w", value, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q: %w", value, err)
	}

	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("malformed time %q: hour out of range", value)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("malformed time %q: minute out of range", value)
	}

	return float64(hour-startHour) + float64(minute)/60, nil
}
