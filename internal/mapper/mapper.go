// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"time"

	"calendar-assistant/internal/api"
	"calendar-assistant/internal/entities"
)

// ToAPIMeeting maps entities.Meeting to transport model.
func ToAPIMeeting(m entities.Meeting) api.Meeting {
	return api.Meeting{
		Id:         m.ID,
		EmployeeId: m.EmployeeID,
		Title:      m.Title,
		StartTime:  api.FormatTimestamp(m.StartTime),
		EndTime:    api.FormatTimestamp(m.EndTime),
	}
}

// ToAPIMeetings maps a slice of entities.Meeting to transport slice.
func ToAPIMeetings(list []entities.Meeting) []api.Meeting {
	res := make([]api.Meeting, 0, len(list))
	for _, m := range list {
		res = append(res, ToAPIMeeting(m))
	}
	return res
}

// ToAPIEmployee maps entities.Employee to transport model.
func ToAPIEmployee(e entities.Employee) api.Employee {
	return api.Employee{
		Id:   e.ID,
		Name: e.Name,
	}
}

func ToAPIEmployees(list []entities.Employee) []api.Employee {
	res := make([]api.Employee, 0, len(list))
	for _, e := range list {
		res = append(res, ToAPIEmployee(e))
	}
	return res
}

// ToAPISlots renders slot start times.
func ToAPISlots(slots []time.Time) []string {
	res := make([]string, 0, len(slots))
	for _, s := range slots {
		res = append(res, api.FormatTimestamp(s))
	}
	return res
}
