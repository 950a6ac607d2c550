package handlers_fiber

import (
	"net/http"

	"calendar-assistant/internal/api"
	"calendar-assistant/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostEmployees registers an employee.
func (h *Handler) PostEmployees(c *fiber.Ctx) error {
	var body api.CreateEmployeeRequest
	if err := c.BodyParser(&body); err != nil {
		return h.badBody(c, err)
	}
	name, err := body.Validate()
	if err != nil {
		return h.writeError(c, err)
	}

	employee, err := h.uc.CreateEmployee(c.Context(), name)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIEmployee(*employee))
}

// GetEmployees searches employees by a name fragment. An empty fragment lists everyone.
func (h *Handler) GetEmployees(c *fiber.Ctx) error {
	employees, err := h.uc.SearchEmployees(c.Context(), c.Query("name"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIEmployees(employees))
}

func (h *Handler) GetEmployeesId(c *fiber.Ctx) error {
	id, err := api.ParseID("id", c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}

	employee, err := h.uc.Employee(c.Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIEmployee(*employee))
}

// DeleteEmployeesId removes an employee together with their meetings.
func (h *Handler) DeleteEmployeesId(c *fiber.Ctx) error {
	id, err := api.ParseID("id", c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}

	if err := h.uc.DeleteEmployee(c.Context(), id); err != nil {
		return h.writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetEmployeesIdMeetings lists meetings of an employee starting within [from, to].
func (h *Handler) GetEmployeesIdMeetings(c *fiber.Ctx) error {
	id, err := api.ParseID("id", c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	from, to, err := api.ValidateRangeQuery(c.Query("from"), c.Query("to"), h.now())
	if err != nil {
		return h.writeError(c, err)
	}

	meetings, err := h.uc.EmployeeMeetings(c.Context(), id, from, to)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIMeetings(meetings))
}
