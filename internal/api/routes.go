package api

import "github.com/gofiber/fiber/v2"

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /api/meetings)
	PostMeetings(c *fiber.Ctx) error
	// (GET /api/meetings/free-slots)
	GetMeetingsFreeSlots(c *fiber.Ctx) error
	// (POST /api/meetings/conflicts)
	PostMeetingsConflicts(c *fiber.Ctx) error
	// (GET /api/meetings/health)
	GetMeetingsHealth(c *fiber.Ctx) error
	// (POST /api/employees)
	PostEmployees(c *fiber.Ctx) error
	// (GET /api/employees)
	GetEmployees(c *fiber.Ctx) error
	// (GET /api/employees/:id)
	GetEmployeesId(c *fiber.Ctx) error
	// (DELETE /api/employees/:id)
	DeleteEmployeesId(c *fiber.Ctx) error
	// (GET /api/employees/:id/meetings)
	GetEmployeesIdMeetings(c *fiber.Ctx) error
}

// RegisterHandlers mounts every handler of si on router.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	meetings := router.Group("/api/meetings")
	meetings.Post("", si.PostMeetings)
	meetings.Get("/free-slots", si.GetMeetingsFreeSlots)
	meetings.Post("/conflicts", si.PostMeetingsConflicts)
	meetings.Get("/health", si.GetMeetingsHealth)

	employees := router.Group("/api/employees")
	employees.Post("", si.PostEmployees)
	employees.Get("", si.GetEmployees)
	employees.Get("/:id", si.GetEmployeesId)
	employees.Delete("/:id", si.DeleteEmployeesId)
	employees.Get("/:id/meetings", si.GetEmployeesIdMeetings)
}
