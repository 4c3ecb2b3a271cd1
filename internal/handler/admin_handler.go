package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mentora-labs/mentora-go-api/internal/dto"
	"github.com/mentora-labs/mentora-go-api/internal/service"
	"github.com/mentora-labs/mentora-go-api/internal/utils"
)

// AdminHandler exposes department administration endpoints.
type AdminHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(service service.UserService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_handler").Logger(),
	}
}

// Register attaches the admin routes.
func (h *AdminHandler) Register(router fiber.Router) {
	router.Post("/assign-class", h.assignClass)
}

func (h *AdminHandler) assignClass(c *fiber.Ctx) error {
	var req dto.AssignClassRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := h.service.AssignClass(c.Context(), req)
	if err != nil {
		status, message := statusForError(err)
		if status == fiber.StatusInternalServerError {
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to assign class")
			message = "failed to assign class"
		}
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "Class assigned successfully", user)
}
