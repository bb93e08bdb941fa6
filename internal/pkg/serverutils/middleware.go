package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"classroom-portal-fe/internal/pkg/logger"
)

// RequestIdMiddleware tags every request with a correlation id carried in
// locals and echoed in the response headers.
func RequestIdMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := uuid.New().String()
		ctx.Locals("request_id", id)
		ctx.Set("X-Request-Id", id)
		return ctx.Next()
	}
}

// ErrorHandlerMiddleware is the last resort for errors no controller turned
// into a page. It logs the failure with the request id and sends a plain
// status response.
func ErrorHandlerMiddleware(sysLogger logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		sysLogger.Error("http", "unhandled error", map[string]interface{}{
			"request_id": ctx.Locals("request_id"),
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"error":      err.Error(),
		})

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).SendString(fiberErr.Message)
		}
		return ctx.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
}
