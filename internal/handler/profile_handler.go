package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mentora-labs/mentora-go-api/internal/dto"
	"github.com/mentora-labs/mentora-go-api/internal/service"
	"github.com/mentora-labs/mentora-go-api/internal/utils"
)

// ProfileHandler exposes profile retrieval and update endpoints.
type ProfileHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(service service.UserService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger.With().Str("component", "profile_handler").Logger(),
	}
}

// Register attaches the profile routes.
func (h *ProfileHandler) Register(router fiber.Router) {
	router.Put("/update", h.update)
	router.Get("/:email", h.get)
}

func (h *ProfileHandler) get(c *fiber.Ctx) error {
	profile, err := h.service.GetProfile(c.Context(), c.Params("email"))
	if err != nil {
		status, message := statusForError(err)
		if status == fiber.StatusInternalServerError {
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to load profile")
			message = "failed to load profile"
		}
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "profile", profile)
}

func (h *ProfileHandler) update(c *fiber.Ctx) error {
	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := h.service.UpdateProfile(c.Context(), req)
	if err != nil {
		status, message := statusForError(err)
		if status == fiber.StatusInternalServerError {
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update profile")
			message = "failed to update profile"
		}
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "profile updated", profile)
}
