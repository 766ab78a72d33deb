package apperror

import (
	"errors"

	"dropbuddy/core/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler returns the top-level Fiber error handler. Every error that
// escapes a handler or middleware is converted into a response envelope with
// an appropriate transport status; nothing propagates as a crash.
func ErrorHandler(logg *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *Error
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logg.Error("request failed",
					zap.Int("code", appErr.Code),
					zap.String("path", c.Path()),
					zap.Error(appErr.Err),
				)
			}
			return c.Status(appErr.Status).JSON(response.Error(appErr.Code, appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			// Framework errors (bad request parsing, method not allowed, ...)
			// reuse the HTTP status as the business code.
			return c.Status(fiberErr.Code).JSON(response.Error(fiberErr.Code, fiberErr.Message))
		}

		logg.Error("unhandled error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).
			JSON(response.Error(CodeSystem, "Internal server error"))
	}
}
