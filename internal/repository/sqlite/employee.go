package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"calendar-assistant/internal/entities"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GetEmployee fetches an employee by id.
func (s *SQLite) GetEmployee(ctx context.Context, id int64) (*entities.Employee, error) {
	var m employeeModel
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrEmployeeNotFound
		}
		s.log.Errorw("failed to get employee", "error", err, "employee_id", id)
		return nil, fmt.Errorf("get employee: %w", err)
	}
	e := m.toEntity()
	return &e, nil
}

// CreateEmployee inserts an employee and returns it with the assigned id.
func (s *SQLite) CreateEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error) {
	m := employeeModel{Name: employee.Name}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		s.log.Errorw("failed to insert employee", "error", err)
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	s.log.Debugw("employee created", "employee_id", m.ID)
	e := m.toEntity()
	return &e, nil
}

// SearchEmployees returns employees whose name contains the fragment, ignoring case.
func (s *SQLite) SearchEmployees(ctx context.Context, nameFragment string) ([]entities.Employee, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(nameFragment)) + "%"

	var models []employeeModel
	err := s.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}

	employees := make([]entities.Employee, 0, len(models))
	for _, m := range models {
		employees = append(employees, m.toEntity())
	}
	return employees, nil
}

// DeleteEmployee removes the employee row. Meetings must be removed beforehand.
func (s *SQLite) DeleteEmployee(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&employeeModel{}, "id = ?", id)
	if res.Error != nil {
		s.log.Errorw("failed to delete employee", "error", res.Error, "employee_id", id)
		return fmt.Errorf("delete employee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.ErrEmployeeNotFound
	}

	s.log.Debugw("employee deleted", "employee_id", id)
	return nil
}
