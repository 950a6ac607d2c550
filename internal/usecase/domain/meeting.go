// Package domain contains application Usecases orchestrating scheduling logic.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"calendar-assistant/internal/entities"
	"calendar-assistant/internal/metrics"

	"golang.org/x/sync/errgroup"
)

func bookingLockKey(employeeID int64) string {
	return fmt.Sprintf("employee:%d", employeeID)
}

// BookMeeting stores a meeting for the employee unless it overlaps one the employee already has.
// The conflict check and the insert run under the employee's booking lock.
func (u *Usecase) BookMeeting(
	ctx context.Context,
	employeeID int64,
	start, end time.Time,
	title string,
) (meeting *entities.Meeting, err error) {
	defer u.metrics.ObserveSince("book_meeting", time.Now())
	defer func() { u.metrics.Booking(bookingOutcome(err)) }()

	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	window := entities.TimeWindow{Start: entities.WallClock(start), End: entities.WallClock(end)}
	if !window.Valid() {
		return nil, fmt.Errorf("%w: start time %s must be before end time %s",
			entities.ErrInvalidArgument, window.Start.Format(entities.WallClockLayout), window.End.Format(entities.WallClockLayout))
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}

	unlock, err := u.locker.Lock(ctx, bookingLockKey(employeeID))
	if err != nil {
		return nil, fmt.Errorf("lock employee %d: %w", employeeID, err)
	}
	defer unlock()

	if _, err := u.repo.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	conflict, err := u.hasConflict(ctx, employeeID, window)
	if err != nil {
		return nil, err
	}
	if conflict {
		u.log.Infow("booking rejected", "employee_id", employeeID, "window", window.String())
		return nil, fmt.Errorf("%w: employee %d is busy during %s", entities.ErrMeetingConflict, employeeID, window)
	}

	meeting, err = u.repo.CreateMeeting(ctx, entities.Meeting{
		EmployeeID: employeeID,
		Title:      title,
		StartTime:  window.Start,
		EndTime:    window.End,
	})
	if err != nil {
		return nil, err
	}

	u.log.Infow("meeting booked", "meeting_id", meeting.ID, "employee_id", employeeID, "window", window.String())
	return meeting, nil
}

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeBooked
	case errors.Is(err, entities.ErrInvalidArgument):
		return metrics.OutcomeInvalid
	case errors.Is(err, entities.ErrEmployeeNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, entities.ErrMeetingConflict):
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeError
	}
}

// FindFreeSlots lists start times on day when both employees are free for durationMinutes.
// A zero day means today according to the usecase clock.
func (u *Usecase) FindFreeSlots(
	ctx context.Context,
	employee1ID, employee2ID int64,
	durationMinutes int,
	day time.Time,
) ([]time.Time, error) {
	defer u.metrics.ObserveSince("find_free_slots", time.Now())
	u.metrics.FreeSlotQuery()

	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	if day.IsZero() {
		day = u.now()
	}
	dayWindow := entities.DayWindow(day)

	busy := make([]entities.TimeWindow, 0)
	for _, id := range []int64{employee1ID, employee2ID} {
		meetings, err := u.repo.MeetingsByEmployee(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get meetings of employee %d: %w", id, err)
		}
		for _, m := range meetings {
			if w := m.Window(); w.Overlaps(dayWindow) {
				busy = append(busy, w)
			}
		}
	}

	return FreeSlots(busy, dayWindow, time.Duration(durationMinutes)*time.Minute), nil
}

// FindConflictedParticipants returns, in input order, the ids whose calendars overlap window.
// Ids are not checked for existence; an unknown id owns no meetings and never conflicts.
func (u *Usecase) FindConflictedParticipants(
	ctx context.Context,
	employeeIDs []int64,
	window entities.TimeWindow,
) ([]int64, error) {
	defer u.metrics.ObserveSince("find_conflicted_participants", time.Now())
	u.metrics.ConflictQuery()

	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	window = entities.TimeWindow{Start: entities.WallClock(window.Start), End: entities.WallClock(window.End)}
	conflicted := make([]bool, len(employeeIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.conflictConcurrency)
	for i, id := range employeeIDs {
		i, id := i, id
		g.Go(func() error {
			busy, err := u.hasConflict(gctx, id, window)
			if err != nil {
				return err
			}
			conflicted[i] = busy
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]int64, 0)
	for i, id := range employeeIDs {
		if conflicted[i] {
			result = append(result, id)
		}
	}
	return result, nil
}

// EmployeeMeetings returns the employee's meetings starting within [from, to].
func (u *Usecase) EmployeeMeetings(ctx context.Context, employeeID int64, from, to time.Time) ([]entities.Meeting, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	from, to = entities.WallClock(from), entities.WallClock(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: from must not be after to", entities.ErrInvalidArgument)
	}

	if _, err := u.repo.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	return u.repo.MeetingsByEmployeeBetween(ctx, employeeID, from, to)
}
