package api

import (
	"strings"
	"testing"
	"time"

	"calendar-assistant/internal/entities"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func fields(t *testing.T, err error) []string {
	t.Helper()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	out := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		out = append(out, v.Field)
	}
	return out
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	for _, raw := range []string{"2026-10-16T09:30:00", "2026-10-16T09:30", "2026-10-16T09:30:00+03:00", "2026-10-16T09:30:00Z"} {
		got, err := ParseTimestamp(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got, raw)
	}

	_, err := ParseTimestamp("16/10/2026 09:30")
	require.Error(t, err)
	require.Equal(t, "2026-10-16T09:30:00", FormatTimestamp(want))
}

func TestBookMeetingRequestValidate(t *testing.T) {
	p, err := BookMeetingRequest{
		EmployeeId: ptr(int64(3)),
		StartTime:  ptr("2026-10-16T10:00:00"),
		EndTime:    ptr("2026-10-16T11:00:00"),
		Title:      ptr("Planning"),
	}.Validate()
	require.NoError(t, err)
	require.Equal(t, int64(3), p.EmployeeID)
	require.Equal(t, time.Hour, p.End.Sub(p.Start))

	_, err = BookMeetingRequest{}.Validate()
	require.ElementsMatch(t, []string{"employeeId", "startTime", "endTime", "title"}, fields(t, err))

	_, err = BookMeetingRequest{
		EmployeeId: ptr(int64(-1)),
		StartTime:  ptr("2026-10-16T11:00:00"),
		EndTime:    ptr("2026-10-16T11:00:00"),
		Title:      ptr("  "),
	}.Validate()
	require.ElementsMatch(t, []string{"employeeId", "startTime", "title"}, fields(t, err))
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	name, err := CreateEmployeeRequest{Name: ptr("  Ann Lee ")}.Validate()
	require.NoError(t, err)
	require.Equal(t, "Ann Lee", name)

	_, err = CreateEmployeeRequest{}.Validate()
	require.Equal(t, []string{"name"}, fields(t, err))

	_, err = CreateEmployeeRequest{Name: ptr(strings.Repeat("a", 101))}.Validate()
	require.Equal(t, []string{"name"}, fields(t, err))
}

func TestValidateFreeSlotsQuery(t *testing.T) {
	p, err := ValidateFreeSlotsQuery("1", "2", "45", "2026-10-16")
	require.NoError(t, err)
	require.Equal(t, FreeSlotsParams{
		Employee1ID:     1,
		Employee2ID:     2,
		DurationMinutes: 45,
		Day:             time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
	}, p)

	p, err = ValidateFreeSlotsQuery("1", "2", "30", "")
	require.NoError(t, err)
	require.True(t, p.Day.IsZero())

	_, err = ValidateFreeSlotsQuery("", "x", "0", "tomorrow")
	require.ElementsMatch(t, []string{"employee1Id", "employee2Id", "duration", "date"}, fields(t, err))
}

func TestValidateConflictsQuery(t *testing.T) {
	w, err := ValidateConflictsQuery("2026-10-16T10:00:00", "2026-10-16T11:00:00", []int64{1, 2})
	require.NoError(t, err)
	require.True(t, w.Valid())

	_, err = ValidateConflictsQuery("2026-10-16T12:00:00", "2026-10-16T11:00:00", []int64{1, 0})
	require.ElementsMatch(t, []string{"startTime", "employeeIds[1]"}, fields(t, err))
}

func TestValidateRangeQuery(t *testing.T) {
	now := time.Date(2026, 10, 16, 13, 0, 0, 0, time.UTC)

	from, to, err := ValidateRangeQuery("", "", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2026, 10, 16, 23, 59, 59, 0, time.UTC), to)

	from, to, err = ValidateRangeQuery("2026-10-20T08:00:00", "", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 10, 20, 8, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2026, 10, 20, 23, 59, 59, 0, time.UTC), to)

	_, _, err = ValidateRangeQuery("2026-10-20T08:00:00", "2026-10-19T08:00:00", now)
	require.Equal(t, []string{"from"}, fields(t, err))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("id", "12")
	require.NoError(t, err)
	require.Equal(t, int64(12), id)

	_, err = ParseID("id", "-3")
	require.Equal(t, []string{"id"}, fields(t, err))
}
