package domain

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"calendar-assistant/internal/entities"
)

const maxEmployeeNameLength = 100

// CreateEmployee registers a new calendar owner.
func (u *Usecase) CreateEmployee(ctx context.Context, name string) (*entities.Employee, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(name) > maxEmployeeNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", entities.ErrInvalidArgument, maxEmployeeNameLength)
	}

	employee, err := u.repo.CreateEmployee(ctx, entities.Employee{Name: name})
	if err != nil {
		return nil, err
	}
	u.log.Infow("employee created", "employee_id", employee.ID)
	return employee, nil
}

func (u *Usecase) Employee(ctx context.Context, id int64) (*entities.Employee, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	return u.repo.GetEmployee(ctx, id)
}

// SearchEmployees matches names case-insensitively by substring.
func (u *Usecase) SearchEmployees(ctx context.Context, nameFragment string) ([]entities.Employee, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	return u.repo.SearchEmployees(ctx, strings.TrimSpace(nameFragment))
}

// DeleteEmployee removes the employee together with their meetings.
// The booking lock is held so no meeting can be booked in between.
func (u *Usecase) DeleteEmployee(ctx context.Context, id int64) error {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	unlock, err := u.locker.Lock(ctx, bookingLockKey(id))
	if err != nil {
		return fmt.Errorf("lock employee %d: %w", id, err)
	}
	defer unlock()

	removed, err := u.repo.DeleteMeetingsByEmployee(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.DeleteEmployee(ctx, id); err != nil {
		return err
	}

	u.log.Infow("employee deleted", "employee_id", id, "meetings_removed", removed)
	return nil
}
