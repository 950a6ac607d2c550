// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"calendar-assistant/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs every request with its status and duration and counts it in m.
// Client errors are logged at warn level and server errors at error level.
func RequestLogger(log *zap.SugaredLogger, m *metrics.Metrics) fiber.Handler {
	log = log.Named("http")

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}
		route := c.Route().Path

		m.HTTPRequest(c.Method(), route, status, dur)

		fields := []interface{}{
			"method", c.Method(),
			"path", c.OriginalURL(),
			"route", route,
			"status", status,
			"duration_ms", float64(dur.Microseconds()) / 1000.0,
			"request_id", reqID,
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			log.Errorw("request", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warnw("request", fields...)
		default:
			log.Infow("request", fields...)
		}
		return err
	}
}
