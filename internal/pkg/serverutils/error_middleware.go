package serverutils

import (
	"errors"

	"chattyg-be/internal/pkg/logger"
	"chattyg-be/pkg/aierr"

	"github.com/gofiber/fiber/v2"
)

// statusForKind maps pipeline failure kinds to HTTP status codes. The client
// never sees provider error bodies, only a generic message per kind.
func statusForKind(kind aierr.Kind) (int, string) {
	switch kind {
	case aierr.KindModelUnavailable:
		return fiber.StatusServiceUnavailable, "The model provider is unavailable. Please try again later."
	case aierr.KindRateLimited:
		return fiber.StatusTooManyRequests, "Too many requests. Please slow down and try again."
	case aierr.KindStoreUnavailable:
		return fiber.StatusServiceUnavailable, "The message store is unavailable. Please try again later."
	case aierr.KindGenerationFailed:
		return fiber.StatusBadGateway, "The assistant could not generate a response."
	case aierr.KindPersistenceFailed:
		return fiber.StatusInternalServerError, "The conversation could not be saved."
	default:
		return fiber.StatusInternalServerError, "Internal server error."
	}
}

// NewErrorHandler builds the fiber error handler: aierr kinds get their
// mapped status, fiber errors pass through, anything else is a 500.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		if kind, ok := aierr.KindOf(err); ok {
			status, message := statusForKind(kind)
			log.Error("Http", "Pipeline error", map[string]interface{}{
				"kind":  string(kind),
				"path":  ctx.Path(),
				"error": err.Error(),
			})
			return ctx.Status(status).JSON(FailureResponse(message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(FailureResponse(fiberErr.Message))
		}

		log.Error("Http", "Unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(FailureResponse("Internal server error."))
	}
}
