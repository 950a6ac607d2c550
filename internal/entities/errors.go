// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmployeeNotFound is returned when an employee does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrMeetingConflict signals that the requested window overlaps an existing meeting of the employee.
	ErrMeetingConflict = errors.New("meeting conflict")
)
