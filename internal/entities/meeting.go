// Package entities contains core business entities.
package entities

import (
	"fmt"
	"time"
)

// Meeting is a booked block of time owned by a single employee.
type Meeting struct {
	ID         int64
	EmployeeID int64
	Title      string
	StartTime  time.Time
	EndTime    time.Time
}

// Window returns the half-open interval occupied by the meeting.
func (m Meeting) Window() TimeWindow {
	return TimeWindow{Start: m.StartTime, End: m.EndTime}
}

func (m Meeting) String() string {
	return fmt.Sprintf("Meeting{id=%d, employee=%d, %s}", m.ID, m.EmployeeID, m.Window())
}
