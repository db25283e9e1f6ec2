// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// RequestLogger writes one access log entry per request. Client errors log
// at warn and server errors at error; paths in skip are not logged.
func RequestLogger(log *zap.SugaredLogger, skip ...string) fiber.Handler {
	log = log.Named("access")
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		if _, ok := skipped[c.Path()]; ok {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()
		if err != nil {
			// let the app error handler set the final status before logging
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
			err = nil
		}
		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = utils.CopyString(c.Get(fiber.HeaderXRequestID))
		}

		status := c.Response().StatusCode()
		fields := []any{
			"method", utils.CopyString(c.Method()),
			"path", utils.CopyString(c.OriginalURL()),
			"status", status,
			"duration_ms", float64(time.Since(start).Microseconds()) / 1000.0,
			"request_id", reqID,
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			log.Errorw("http", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warnw("http", fields...)
		default:
			log.Infow("http", fields...)
		}
		return err
	}
}
