package handlers_fiber

import (
	"errors"
	"net/http"

	"calendar-assistant/internal/api"
	"calendar-assistant/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	body := api.ErrorBody{Code: api.INTERNAL, Message: "internal error"}

	var verr *api.ValidationError
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		body = api.ErrorBody{Code: api.INVALIDARGUMENT, Message: "validation failed", Violations: verr.Violations}
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		body = api.ErrorBody{Code: api.INVALIDARGUMENT, Message: err.Error()}
	case errors.Is(err, entities.ErrEmployeeNotFound):
		status = http.StatusNotFound
		body = api.ErrorBody{Code: api.NOTFOUND, Message: "employee not found"}
	case errors.Is(err, entities.ErrMeetingConflict):
		status = http.StatusConflict
		body = api.ErrorBody{Code: api.MEETINGCONFLICT, Message: "employee already has a meeting in this time window"}
	default:
		h.log.Errorw("request failed", "path", c.Path(), "error", err)
	}

	return c.Status(status).JSON(api.ErrorResponse{Error: body})
}

func (h *Handler) badBody(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: api.ErrorBody{
		Code:    api.INVALIDARGUMENT,
		Message: "invalid body: " + err.Error(),
	}})
}
