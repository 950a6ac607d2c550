// Package entities contains core business entities.
package entities

import "fmt"

// Employee is a domain representation of a calendar owner.
type Employee struct {
	ID   int64
	Name string
}

func (e Employee) String() string {
	return fmt.Sprintf("Employee{id=%d, name=%q}", e.ID, e.Name)
}
