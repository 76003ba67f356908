package serverutils

import (
	"errors"

	"notes-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns returned errors into JSON error envelopes.
// fiber.Error carries its own status code; anything else is an opaque
// failure and surfaces as 500 after being logged.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"error":      err.Error(),
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"request_id": ctx.Locals("requestid"),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
