package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mentora-labs/mentora-go-api/internal/service"
	"github.com/mentora-labs/mentora-go-api/internal/utils"
)

// AnalyticsHandler exposes the rollup and recommendation endpoints.
type AnalyticsHandler struct {
	service service.AnalyticsService
	logger  zerolog.Logger
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(service service.AnalyticsService, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		logger:  logger.With().Str("component", "analytics_handler").Logger(),
	}
}

// Register attaches the analytics routes. Paths mirror the shapes the web
// app already consumes, so they sit at several prefixes.
func (h *AnalyticsHandler) Register(router fiber.Router) {
	router.Get("/recommendation/:studentId", h.recommendation)
	router.Get("/analytics/class/:classId", h.classAnalytics)
	router.Get("/analytics/:studentId", h.studentAnalytics)
	router.Get("/department/analytics", h.departmentAnalytics)
	router.Get("/api/analytics/user/:email", h.studentSummary)
}

func (h *AnalyticsHandler) recommendation(c *fiber.Ctx) error {
	response, err := h.service.GetRecommendation(c.Context(), c.Params("studentId"), c.Query("score"))
	if err != nil {
		status, message := statusForError(err)
		if status == fiber.StatusInternalServerError {
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to fetch recommendation")
			message = "failed to fetch recommendation"
		}
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "recommendation", response)
}

func (h *AnalyticsHandler) studentAnalytics(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("studentId"), 10, 64)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid student id")
	}

	response, err := h.service.GetStudentAnalytics(c.Context(), uint(id))
	if err != nil {
		status, message := statusForError(err)
		if status == fiber.StatusInternalServerError {
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to build student analytics")
			message = "failed to build student analytics"
		}
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "student analytics", response)
}

func (h *AnalyticsHandler) classAnalytics(c *fiber.Ctx) error {
	response, err := h.service.GetClassAnalytics(c.Context(), c.Params("classId"))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build class analytics")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build class analytics")
	}

	return utils.SendSuccess(c, "class analytics", response)
}

func (h *AnalyticsHandler) departmentAnalytics(c *fiber.Ctx) error {
	response, err := h.service.GetDepartmentAnalytics(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build department analytics")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build department analytics")
	}

	return utils.SendSuccess(c, "department analytics", response)
}

func (h *AnalyticsHandler) studentSummary(c *fiber.Ctx) error {
	response, err := h.service.GetStudentSummary(c.Context(), c.Params("email"))
	if err != nil {
		status, message := statusForError(err)
		if status == fiber.StatusInternalServerError {
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to build student summary")
			message = "failed to build student summary"
		}
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "student summary", response)
}
