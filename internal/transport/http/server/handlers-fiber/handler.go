// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"time"

	"calendar-assistant/internal/api"
	"calendar-assistant/internal/usecase"

	"go.uber.org/zap"
)

var _ api.ServerInterface = (*Handler)(nil)

// Handler implements api.ServerInterface using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
	now func() time.Time
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
		now: time.Now,
	}
}
