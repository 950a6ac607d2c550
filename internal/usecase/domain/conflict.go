package domain

import (
	"context"
	"fmt"

	"calendar-assistant/internal/entities"
)

// hasConflict reports whether any meeting of the employee overlaps window.
func (u *Usecase) hasConflict(ctx context.Context, employeeID int64, window entities.TimeWindow) (bool, error) {
	meetings, err := u.repo.MeetingsByEmployee(ctx, employeeID)
	if err != nil {
		return false, fmt.Errorf("get meetings of employee %d: %w", employeeID, err)
	}

	for _, m := range meetings {
		if m.Window().Overlaps(window) {
			return true, nil
		}
	}
	return false, nil
}
