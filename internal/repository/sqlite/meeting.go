package sqlite

import (
	"context"
	"fmt"
	"time"

	"calendar-assistant/internal/entities"
)

// MeetingsByEmployee returns all meetings owned by the employee.
func (s *SQLite) MeetingsByEmployee(ctx context.Context, employeeID int64) ([]entities.Meeting, error) {
	var models []meetingModel
	err := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_time, id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("get meetings: %w", err)
	}
	return toMeetingEntities(models), nil
}

// MeetingsByEmployeeBetween returns meetings of the employee starting within [from, to].
func (s *SQLite) MeetingsByEmployeeBetween(ctx context.Context, employeeID int64, from, to time.Time) ([]entities.Meeting, error) {
	var models []meetingModel
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND start_time BETWEEN ? AND ?", employeeID, from.UTC(), to.UTC()).
		Order("start_time, id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("get meetings between: %w", err)
	}
	return toMeetingEntities(models), nil
}

// CreateMeeting inserts a meeting and returns it with the assigned id.
func (s *SQLite) CreateMeeting(ctx context.Context, meeting entities.Meeting) (*entities.Meeting, error) {
	m := meetingModel{
		EmployeeID: meeting.EmployeeID,
		Title:      meeting.Title,
		StartTime:  meeting.StartTime.UTC(),
		EndTime:    meeting.EndTime.UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		s.log.Errorw("failed to insert meeting", "error", err, "employee_id", meeting.EmployeeID)
		return nil, fmt.Errorf("insert meeting: %w", err)
	}

	s.log.Debugw("meeting created", "meeting_id", m.ID, "employee_id", m.EmployeeID)
	created := m.toEntity()
	return &created, nil
}

// DeleteMeetingsByEmployee removes every meeting owned by the employee.
func (s *SQLite) DeleteMeetingsByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&meetingModel{}, "employee_id = ?", employeeID)
	if res.Error != nil {
		s.log.Errorw("failed to delete meetings", "error", res.Error, "employee_id", employeeID)
		return 0, fmt.Errorf("delete meetings: %w", res.Error)
	}
	return res.RowsAffected, nil
}
