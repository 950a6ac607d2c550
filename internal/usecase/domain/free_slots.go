package domain

import (
	"sort"
	"time"

	"calendar-assistant/internal/entities"
)

// SlotIncrement is the fixed granularity between candidate start times.
const SlotIncrement = 30 * time.Minute

// FreeSlots lists start times t inside day such that [t, t+duration) avoids every busy window.
// Candidates inside a gap start at the gap start and advance by SlotIncrement regardless of duration.
// A slot ending exactly at the end of its gap is accepted.
// Busy windows may overlap each other and may extend beyond day.
func FreeSlots(busy []entities.TimeWindow, day entities.TimeWindow, duration time.Duration) []time.Time {
	sorted := make([]entities.TimeWindow, len(busy))
	copy(sorted, busy)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	slots := make([]time.Time, 0)
	lastEnd := day.Start
	for _, w := range sorted {
		if w.Start.After(lastEnd) {
			gapEnd := w.Start
			if day.End.Before(gapEnd) {
				gapEnd = day.End
			}
			slots = appendSlots(slots, lastEnd, gapEnd, duration)
		}
		if w.End.After(lastEnd) {
			lastEnd = w.End
		}
	}
	if lastEnd.Before(day.End) {
		slots = appendSlots(slots, lastEnd, day.End, duration)
	}
	return slots
}

func appendSlots(slots []time.Time, gapStart, gapEnd time.Time, duration time.Duration) []time.Time {
	for t := gapStart; t.Before(gapEnd) && !t.Add(duration).After(gapEnd); t = t.Add(SlotIncrement) {
		slots = append(slots, t)
	}
	return slots
}
