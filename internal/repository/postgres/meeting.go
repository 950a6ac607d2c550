package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calendar-assistant/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	selectMeetingsByEmployeeQuery = `SELECT id, employee_id, title, start_time, end_time
FROM meetings
WHERE employee_id = $1
ORDER BY start_time, id`
	selectMeetingsBetweenQuery = `SELECT id, employee_id, title, start_time, end_time
FROM meetings
WHERE employee_id = $1 AND start_time BETWEEN $2 AND $3
ORDER BY start_time, id`
	insertMeetingQuery = `INSERT INTO meetings(employee_id, title, start_time, end_time)
VALUES ($1, $2, $3, $4)
RETURNING id`
	deleteMeetingsByEmployeeQuery = `DELETE FROM meetings WHERE employee_id = $1`
)

const (
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
)

// MeetingsByEmployee returns all meetings owned by the employee.
func (p *Postgres) MeetingsByEmployee(ctx context.Context, employeeID int64) ([]entities.Meeting, error) {
	rows, err := p.db.Query(ctx, selectMeetingsByEmployeeQuery, employeeID)
	if err != nil {
		return nil, fmt.Errorf("get meetings: %w", err)
	}
	return collectMeetings(rows)
}

// MeetingsByEmployeeBetween returns meetings of the employee starting within [from, to].
func (p *Postgres) MeetingsByEmployeeBetween(ctx context.Context, employeeID int64, from, to time.Time) ([]entities.Meeting, error) {
	rows, err := p.db.Query(ctx, selectMeetingsBetweenQuery, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("get meetings between: %w", err)
	}
	return collectMeetings(rows)
}

// CreateMeeting inserts a meeting and returns it with the assigned id.
func (p *Postgres) CreateMeeting(ctx context.Context, meeting entities.Meeting) (*entities.Meeting, error) {
	err := p.db.QueryRow(ctx, insertMeetingQuery,
		meeting.EmployeeID, meeting.Title, meeting.StartTime, meeting.EndTime,
	).Scan(&meeting.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgExclusionViolation:
				p.log.Warnw("meeting rejected by overlap constraint", "employee_id", meeting.EmployeeID)
				return nil, fmt.Errorf("%w: overlaps an existing meeting", entities.ErrMeetingConflict)
			case pgForeignKeyViolation:
				return nil, entities.ErrEmployeeNotFound
			}
		}
		p.log.Errorw("failed to insert meeting", "error", err, "employee_id", meeting.EmployeeID)
		return nil, fmt.Errorf("insert meeting: %w", err)
	}

	p.log.Debugw("meeting created", "meeting_id", meeting.ID, "employee_id", meeting.EmployeeID)
	return &meeting, nil
}

// DeleteMeetingsByEmployee removes every meeting owned by the employee.
func (p *Postgres) DeleteMeetingsByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	tag, err := p.db.Exec(ctx, deleteMeetingsByEmployeeQuery, employeeID)
	if err != nil {
		p.log.Errorw("failed to delete meetings", "error", err, "employee_id", employeeID)
		return 0, fmt.Errorf("delete meetings: %w", err)
	}
	return tag.RowsAffected(), nil
}

func collectMeetings(rows pgx.Rows) ([]entities.Meeting, error) {
	defer rows.Close()

	meetings := make([]entities.Meeting, 0)
	for rows.Next() {
		var m entities.Meeting
		if err := rows.Scan(&m.ID, &m.EmployeeID, &m.Title, &m.StartTime, &m.EndTime); err != nil {
			return nil, fmt.Errorf("scan meetings: %w", err)
		}
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meetings: %w", err)
	}
	return meetings, nil
}
