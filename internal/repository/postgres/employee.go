package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"calendar-assistant/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectEmployeeQuery  = `SELECT id, name FROM employees WHERE id = $1`
	insertEmployeeQuery  = `INSERT INTO employees(name) VALUES ($1) RETURNING id`
	searchEmployeesQuery = `SELECT id, name FROM employees WHERE name ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY id`
	deleteEmployeeQuery  = `DELETE FROM employees WHERE id = $1`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GetEmployee fetches an employee by id.
func (p *Postgres) GetEmployee(ctx context.Context, id int64) (*entities.Employee, error) {
	var e entities.Employee
	if err := p.db.QueryRow(ctx, selectEmployeeQuery, id).Scan(&e.ID, &e.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrEmployeeNotFound
		}
		p.log.Errorw("failed to get employee", "error", err, "employee_id", id)
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// CreateEmployee inserts an employee and returns it with the assigned id.
func (p *Postgres) CreateEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error) {
	if err := p.db.QueryRow(ctx, insertEmployeeQuery, employee.Name).Scan(&employee.ID); err != nil {
		p.log.Errorw("failed to insert employee", "error", err)
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	p.log.Debugw("employee created", "employee_id", employee.ID)
	return &employee, nil
}

// SearchEmployees returns employees whose name contains the fragment, ignoring case.
func (p *Postgres) SearchEmployees(ctx context.Context, nameFragment string) ([]entities.Employee, error) {
	rows, err := p.db.Query(ctx, searchEmployeesQuery, likeEscaper.Replace(nameFragment))
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0)
	for rows.Next() {
		var e entities.Employee
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("scan employees: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return employees, nil
}

// DeleteEmployee removes the employee row. Meetings must be removed beforehand.
func (p *Postgres) DeleteEmployee(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteEmployeeQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete employee", "error", err, "employee_id", id)
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrEmployeeNotFound
	}

	p.log.Debugw("employee deleted", "employee_id", id)
	return nil
}
