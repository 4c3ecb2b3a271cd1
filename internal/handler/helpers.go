package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mentora-labs/mentora-go-api/internal/middleware"
	"github.com/mentora-labs/mentora-go-api/internal/service"
)

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

// statusForError maps service sentinel errors onto HTTP status codes. Unknown
// errors surface as internal failures.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return fiber.StatusNotFound, "user not found"
	case errors.Is(err, service.ErrInvalidUserID):
		return fiber.StatusBadRequest, "invalid user id"
	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, service.ErrEmailTaken):
		return fiber.StatusBadRequest, "email already registered"
	case isValidationError(err):
		return fiber.StatusBadRequest, "invalid request payload"
	default:
		return fiber.StatusInternalServerError, ""
	}
}
