package domain

import (
	"testing"
	"time"

	"calendar-assistant/internal/entities"

	"github.com/stretchr/testify/require"
)

func span(sh, sm, eh, em int) entities.TimeWindow {
	return entities.TimeWindow{Start: at(sh, sm), End: at(eh, em)}
}

func TestFreeSlots(t *testing.T) {
	day := span(8, 0, 12, 0)

	tests := []struct {
		name     string
		busy     []entities.TimeWindow
		duration time.Duration
		want     []time.Time
	}{
		{
			name:     "empty calendar",
			duration: time.Hour,
			want:     []time.Time{at(8, 0), at(8, 30), at(9, 0), at(9, 30), at(10, 0), at(10, 30), at(11, 0)},
		},
		{
			name:     "exact fit in gap",
			busy:     []entities.TimeWindow{span(8, 0, 10, 0), span(10, 30, 12, 0)},
			duration: 30 * time.Minute,
			want:     []time.Time{at(10, 0)},
		},
		{
			name:     "gap too short",
			busy:     []entities.TimeWindow{span(8, 0, 10, 0), span(10, 20, 12, 0)},
			duration: 30 * time.Minute,
			want:     []time.Time{},
		},
		{
			name:     "step does not follow duration",
			busy:     []entities.TimeWindow{span(8, 0, 9, 15), span(10, 45, 12, 0)},
			duration: 45 * time.Minute,
			want:     []time.Time{at(9, 15), at(9, 45)},
		},
		{
			name:     "unsorted and overlapping busy windows",
			busy:     []entities.TimeWindow{span(10, 0, 11, 0), span(8, 0, 9, 0), span(8, 30, 10, 30)},
			duration: time.Hour,
			want:     []time.Time{at(11, 0)},
		},
		{
			name:     "contained window does not pull sweep back",
			busy:     []entities.TimeWindow{span(8, 0, 11, 0), span(9, 0, 9, 30)},
			duration: 30 * time.Minute,
			want:     []time.Time{at(11, 0), at(11, 30)},
		},
		{
			name:     "busy window beyond day end",
			busy:     []entities.TimeWindow{span(11, 30, 13, 0)},
			duration: 2 * time.Hour,
			want:     []time.Time{at(8, 0), at(8, 30), at(9, 0), at(9, 30)},
		},
		{
			name:     "non-positive duration emits every increment",
			busy:     []entities.TimeWindow{span(8, 0, 11, 0)},
			duration: 0,
			want:     []time.Time{at(11, 0), at(11, 30)},
		},
		{
			name:     "negative duration",
			busy:     []entities.TimeWindow{span(8, 0, 11, 15)},
			duration: -time.Hour,
			want:     []time.Time{at(11, 15), at(11, 45)},
		},
		{
			name:     "fully booked",
			busy:     []entities.TimeWindow{span(7, 0, 13, 0)},
			duration: 30 * time.Minute,
			want:     []time.Time{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := FreeSlots(tt.busy, day, tt.duration)
			require.Equal(t, tt.want, got)

			for _, s := range got {
				slot := entities.TimeWindow{Start: s, End: s.Add(tt.duration)}
				if tt.duration > 0 {
					for _, b := range tt.busy {
						require.False(t, slot.Overlaps(b), "slot %s overlaps %s", slot, b)
					}
				}
				require.False(t, s.Before(day.Start))
				require.True(t, s.Before(day.End))
			}
		})
	}
}

func TestFreeSlotsDoesNotReorderInput(t *testing.T) {
	busy := []entities.TimeWindow{span(10, 0, 11, 0), span(8, 0, 9, 0)}
	_ = FreeSlots(busy, span(8, 0, 12, 0), time.Hour)
	require.Equal(t, at(10, 0), busy[0].Start)
}
