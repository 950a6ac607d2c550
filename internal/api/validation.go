package api

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"calendar-assistant/internal/entities"
)

const (
	dateLayout       = "2006-01-02"
	minuteLayout     = "2006-01-02T15:04"
	maxEmployeeName  = 100
	msgRequired      = "must not be null"
	msgBlank         = "must not be blank"
	msgPositive      = "must be positive"
	msgBadTimestamp  = "must be a timestamp like 2006-01-02T15:04:05"
	msgBadDate       = "must be a date like 2006-01-02"
	msgWindowOrdered = "must be before endTime"
)

// Violation names one field that failed validation.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation of a request. It matches entities.ErrInvalidArgument.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return entities.ErrInvalidArgument.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return entities.ErrInvalidArgument
}

type violations []Violation

func (v *violations) add(field, message string) {
	*v = append(*v, Violation{Field: field, Message: message})
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Violations: v}
}

// ParseTimestamp reads a timezone-naive timestamp. Offsets are accepted and dropped.
func ParseTimestamp(raw string) (time.Time, error) {
	for _, layout := range []string{entities.WallClockLayout, minuteLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return entities.WallClock(t), nil
}

// FormatTimestamp renders t the way ParseTimestamp reads it.
func FormatTimestamp(t time.Time) string {
	return t.Format(entities.WallClockLayout)
}

func (v *violations) timestamp(field, raw string) time.Time {
	if strings.TrimSpace(raw) == "" {
		v.add(field, msgRequired)
		return time.Time{}
	}
	t, err := ParseTimestamp(raw)
	if err != nil {
		v.add(field, msgBadTimestamp)
	}
	return t
}

func (v *violations) id(field, raw string) int64 {
	if raw == "" {
		v.add(field, msgRequired)
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		v.add(field, msgPositive)
	}
	return id
}

func (v *violations) window(startField string, start, end time.Time) {
	if !start.IsZero() && !end.IsZero() && !start.Before(end) {
		v.add(startField, msgWindowOrdered)
	}
}

// BookMeetingParams is a validated booking request.
type BookMeetingParams struct {
	EmployeeID int64
	Start      time.Time
	End        time.Time
	Title      string
}

// Validate checks presence and shape of every field.
func (r BookMeetingRequest) Validate() (BookMeetingParams, error) {
	var (
		v violations
		p BookMeetingParams
	)

	switch {
	case r.EmployeeId == nil:
		v.add("employeeId", msgRequired)
	case *r.EmployeeId <= 0:
		v.add("employeeId", msgPositive)
	default:
		p.EmployeeID = *r.EmployeeId
	}

	if r.StartTime == nil {
		v.add("startTime", msgRequired)
	} else {
		p.Start = v.timestamp("startTime", *r.StartTime)
	}
	if r.EndTime == nil {
		v.add("endTime", msgRequired)
	} else {
		p.End = v.timestamp("endTime", *r.EndTime)
	}
	v.window("startTime", p.Start, p.End)

	switch {
	case r.Title == nil:
		v.add("title", msgRequired)
	case strings.TrimSpace(*r.Title) == "":
		v.add("title", msgBlank)
	default:
		p.Title = *r.Title
	}

	return p, v.err()
}

// Validate returns the trimmed employee name.
func (r CreateEmployeeRequest) Validate() (string, error) {
	var v violations

	name := ""
	switch {
	case r.Name == nil:
		v.add("name", msgRequired)
	case strings.TrimSpace(*r.Name) == "":
		v.add("name", msgBlank)
	default:
		name = strings.TrimSpace(*r.Name)
		if utf8.RuneCountInString(name) > maxEmployeeName {
			v.add("name", "size must be between 1 and 100")
		}
	}

	return name, v.err()
}

// FreeSlotsParams is a validated free slot query.
type FreeSlotsParams struct {
	Employee1ID     int64
	Employee2ID     int64
	DurationMinutes int
	// Day is zero when the caller did not pick one.
	Day time.Time
}

// ValidateFreeSlotsQuery reads the raw query values of GET /api/meetings/free-slots.
func ValidateFreeSlotsQuery(employee1ID, employee2ID, duration, date string) (FreeSlotsParams, error) {
	var v violations

	p := FreeSlotsParams{
		Employee1ID: v.id("employee1Id", employee1ID),
		Employee2ID: v.id("employee2Id", employee2ID),
	}

	if duration == "" {
		v.add("duration", msgRequired)
	} else if d, err := strconv.Atoi(duration); err != nil || d <= 0 {
		v.add("duration", msgPositive)
	} else {
		p.DurationMinutes = d
	}

	if date != "" {
		day, err := time.Parse(dateLayout, date)
		if err != nil {
			v.add("date", msgBadDate)
		}
		p.Day = day
	}

	return p, v.err()
}

// ValidateConflictsQuery checks the window and participant ids of POST /api/meetings/conflicts.
func ValidateConflictsQuery(startTime, endTime string, employeeIDs []int64) (entities.TimeWindow, error) {
	var v violations

	w := entities.TimeWindow{
		Start: v.timestamp("startTime", startTime),
		End:   v.timestamp("endTime", endTime),
	}
	v.window("startTime", w.Start, w.End)

	for i, id := range employeeIDs {
		if id <= 0 {
			v.add("employeeIds["+strconv.Itoa(i)+"]", msgPositive)
		}
	}

	return w, v.err()
}

// ValidateRangeQuery checks the optional from/to bounds of a meeting listing.
// Missing bounds default to the whole day of the other bound, or of now.
func ValidateRangeQuery(from, to string, now time.Time) (time.Time, time.Time, error) {
	var v violations

	var start, end time.Time
	if from != "" {
		start = v.timestamp("from", from)
	}
	if to != "" {
		end = v.timestamp("to", to)
	}
	if err := v.err(); err != nil {
		return time.Time{}, time.Time{}, err
	}

	switch {
	case start.IsZero() && end.IsZero():
		day := entities.DayWindow(now)
		start, end = day.Start, day.End
	case start.IsZero():
		start = entities.DayWindow(end).Start
	case end.IsZero():
		end = entities.DayWindow(start).End
	}

	if end.Before(start) {
		v.add("from", "must not be after to")
	}
	return start, end, v.err()
}

// ParseID reads a positive path identifier.
func ParseID(field, raw string) (int64, error) {
	var v violations
	id := v.id(field, raw)
	return id, v.err()
}
