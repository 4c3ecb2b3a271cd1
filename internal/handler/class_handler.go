package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mentora-labs/mentora-go-api/internal/service"
	"github.com/mentora-labs/mentora-go-api/internal/utils"
)

// ClassHandler exposes the class roster endpoint.
type ClassHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewClassHandler constructs the handler.
func NewClassHandler(service service.UserService, logger zerolog.Logger) *ClassHandler {
	return &ClassHandler{
		service: service,
		logger:  logger.With().Str("component", "class_handler").Logger(),
	}
}

// Register attaches the class routes.
func (h *ClassHandler) Register(router fiber.Router) {
	router.Get("/:classId/details", h.details)
}

func (h *ClassHandler) details(c *fiber.Ctx) error {
	response, err := h.service.GetClassDetails(c.Context(), c.Params("classId"))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load class details")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load class details")
	}

	return utils.SendSuccess(c, "class details", response)
}
