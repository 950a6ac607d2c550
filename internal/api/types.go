// Package api holds the HTTP contract: DTOs, error payloads and request validation.
package api

// ErrorResponseErrorCode is a machine readable error class.
type ErrorResponseErrorCode string

// Defines values for ErrorResponseErrorCode.
const (
	INVALIDARGUMENT ErrorResponseErrorCode = "INVALID_ARGUMENT"
	NOTFOUND        ErrorResponseErrorCode = "NOT_FOUND"
	MEETINGCONFLICT ErrorResponseErrorCode = "MEETING_CONFLICT"
	RATELIMITED     ErrorResponseErrorCode = "RATE_LIMITED"
	INTERNAL        ErrorResponseErrorCode = "INTERNAL"
)

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code       ErrorResponseErrorCode `json:"code"`
	Message    string                 `json:"message"`
	Violations []Violation            `json:"violations,omitempty"`
}

// ErrorResponse is the envelope of every non 2xx response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// BookMeetingRequest is the body of POST /api/meetings.
type BookMeetingRequest struct {
	EmployeeId *int64  `json:"employeeId"`
	StartTime  *string `json:"startTime"`
	EndTime    *string `json:"endTime"`
	Title      *string `json:"title"`
}

// Meeting defines model for Meeting.
type Meeting struct {
	Id         int64  `json:"id"`
	EmployeeId int64  `json:"employeeId"`
	Title      string `json:"title"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// CreateEmployeeRequest is the body of POST /api/employees.
type CreateEmployeeRequest struct {
	Name *string `json:"name"`
}

// Employee defines model for Employee.
type Employee struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// HealthMessage is returned by the meetings health probe.
const HealthMessage = "Service is up and running!"
