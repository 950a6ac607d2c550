package mapper

import (
	"testing"
	"time"

	"calendar-assistant/internal/api"
	"calendar-assistant/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestToAPIMeeting(t *testing.T) {
	m := entities.Meeting{
		ID:         5,
		EmployeeID: 2,
		Title:      "Retro",
		StartTime:  time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 10, 16, 16, 30, 0, 0, time.UTC),
	}

	require.Equal(t, api.Meeting{
		Id:         5,
		EmployeeId: 2,
		Title:      "Retro",
		StartTime:  "2026-10-16T15:00:00",
		EndTime:    "2026-10-16T16:30:00",
	}, ToAPIMeeting(m))
}

func TestEmptyListsStayNonNil(t *testing.T) {
	require.NotNil(t, ToAPIMeetings(nil))
	require.NotNil(t, ToAPIEmployees(nil))
	require.NotNil(t, ToAPISlots(nil))
}
