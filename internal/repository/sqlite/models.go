package sqlite

import (
	"time"

	"calendar-assistant/internal/entities"
)

type employeeModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:100;not null"`
	CreatedAt time.Time
}

func (employeeModel) TableName() string { return "employees" }

func (m employeeModel) toEntity() entities.Employee {
	return entities.Employee{ID: m.ID, Name: m.Name}
}

type meetingModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID int64     `gorm:"not null;index:idx_meetings_employee_start,priority:1"`
	Title      string    `gorm:"not null"`
	StartTime  time.Time `gorm:"not null;index:idx_meetings_employee_start,priority:2"`
	EndTime    time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

func (meetingModel) TableName() string { return "meetings" }

func (m meetingModel) toEntity() entities.Meeting {
	return entities.Meeting{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		Title:      m.Title,
		StartTime:  m.StartTime.UTC(),
		EndTime:    m.EndTime.UTC(),
	}
}

func toMeetingEntities(models []meetingModel) []entities.Meeting {
	meetings := make([]entities.Meeting, 0, len(models))
	for _, m := range models {
		meetings = append(meetings, m.toEntity())
	}
	return meetings
}
