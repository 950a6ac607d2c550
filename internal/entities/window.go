// Package entities contains core business entities.
package entities

import "time"

// WallClockLayout is the timezone-naive timestamp format used across the service.
const WallClockLayout = "2006-01-02T15:04:05"

// TimeWindow is a half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether the window is strictly chronological.
func (w TimeWindow) Valid() bool {
	return w.Start.Before(w.End)
}

// Overlaps reports whether two windows share any instant.
// Windows that only touch at an endpoint do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

func (w TimeWindow) String() string {
	return "[" + w.Start.Format(WallClockLayout) + ", " + w.End.Format(WallClockLayout) + ")"
}

// DayWindow returns the calendar day containing t, from 00:00:00 to 23:59:59.
// The wall clock of t is kept and the location is dropped.
func DayWindow(t time.Time) TimeWindow {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return TimeWindow{
		Start: start,
		End:   start.Add(24*time.Hour - time.Second),
	}
}

// WallClock strips the location from t while keeping its wall clock reading.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
