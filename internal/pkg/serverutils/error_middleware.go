package serverutils

import (
	"errors"

	"beauty-advisor-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates the typed error taxonomy into HTTP
// statuses. Anything untyped becomes a 500 with a generic message.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return ctx.Status(statusFor(appErr.Code)).JSON(ErrorResponse(string(appErr.Code), appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse("HTTP_ERROR", fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("INTERNAL", "internal server error"))
	}
}

func statusFor(code apperror.ErrorCode) int {
	switch code {
	case apperror.ErrCodeNotFound, apperror.ErrCodeSessionNotFound:
		return fiber.StatusNotFound
	case apperror.ErrCodeIncompleteSession, apperror.ErrCodeStepOutOfOrder:
		return fiber.StatusConflict
	case apperror.ErrCodeInvalidRequest:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
