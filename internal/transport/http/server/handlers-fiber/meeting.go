package handlers_fiber

import (
	"net/http"

	"calendar-assistant/internal/api"
	"calendar-assistant/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostMeetings books a meeting for one employee.
func (h *Handler) PostMeetings(c *fiber.Ctx) error {
	var body api.BookMeetingRequest
	if err := c.BodyParser(&body); err != nil {
		return h.badBody(c, err)
	}
	params, err := body.Validate()
	if err != nil {
		return h.writeError(c, err)
	}

	meeting, err := h.uc.BookMeeting(c.Context(), params.EmployeeID, params.Start, params.End, params.Title)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIMeeting(*meeting))
}

// GetMeetingsFreeSlots lists start times when both employees are free.
func (h *Handler) GetMeetingsFreeSlots(c *fiber.Ctx) error {
	params, err := api.ValidateFreeSlotsQuery(
		c.Query("employee1Id"),
		c.Query("employee2Id"),
		c.Query("duration"),
		c.Query("date"),
	)
	if err != nil {
		return h.writeError(c, err)
	}

	slots, err := h.uc.FindFreeSlots(c.Context(), params.Employee1ID, params.Employee2ID, params.DurationMinutes, params.Day)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISlots(slots))
}

// PostMeetingsConflicts returns the participants already busy in the window.
func (h *Handler) PostMeetingsConflicts(c *fiber.Ctx) error {
	var ids []int64
	if err := c.BodyParser(&ids); err != nil {
		return h.badBody(c, err)
	}
	window, err := api.ValidateConflictsQuery(c.Query("startTime"), c.Query("endTime"), ids)
	if err != nil {
		return h.writeError(c, err)
	}

	conflicted, err := h.uc.FindConflictedParticipants(c.Context(), ids, window)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(conflicted)
}

func (h *Handler) GetMeetingsHealth(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).SendString(api.HealthMessage)
}
