// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"
	"time"

	"calendar-assistant/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// EmployeeInterface exposes employee lookup and maintenance.
type EmployeeInterface interface {
	GetEmployee(ctx context.Context, id int64) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error)
	SearchEmployees(ctx context.Context, nameFragment string) ([]entities.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

// MeetingInterface exposes meeting storage. No overlap constraint is assumed here;
// callers enforce the per-employee invariant.
type MeetingInterface interface {
	MeetingsByEmployee(ctx context.Context, employeeID int64) ([]entities.Meeting, error)
	MeetingsByEmployeeBetween(ctx context.Context, employeeID int64, from, to time.Time) ([]entities.Meeting, error)
	CreateMeeting(ctx context.Context, meeting entities.Meeting) (*entities.Meeting, error)
	DeleteMeetingsByEmployee(ctx context.Context, employeeID int64) (int64, error)
}
