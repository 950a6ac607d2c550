package usecase

import (
	"context"
	"time"

	"calendar-assistant/internal/entities"
)

// MeetingUsecaseInterface abstracts scheduling operations for delivery layer.
type MeetingUsecaseInterface interface {
	BookMeeting(ctx context.Context, employeeID int64, start, end time.Time, title string) (*entities.Meeting, error)
	FindFreeSlots(ctx context.Context, employee1ID, employee2ID int64, durationMinutes int, day time.Time) ([]time.Time, error)
	FindConflictedParticipants(ctx context.Context, employeeIDs []int64, window entities.TimeWindow) ([]int64, error)
	EmployeeMeetings(ctx context.Context, employeeID int64, from, to time.Time) ([]entities.Meeting, error)
}

// EmployeeUsecaseInterface abstracts employee maintenance.
type EmployeeUsecaseInterface interface {
	CreateEmployee(ctx context.Context, name string) (*entities.Employee, error)
	Employee(ctx context.Context, id int64) (*entities.Employee, error)
	SearchEmployees(ctx context.Context, nameFragment string) ([]entities.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}
