package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mentora-labs/mentora-go-api/internal/dto"
	"github.com/mentora-labs/mentora-go-api/internal/service"
	"github.com/mentora-labs/mentora-go-api/internal/utils"
)

// QuizHandler exposes quiz generation and submission endpoints.
type QuizHandler struct {
	service service.QuizService
	logger  zerolog.Logger
}

// NewQuizHandler constructs the handler.
func NewQuizHandler(service service.QuizService, logger zerolog.Logger) *QuizHandler {
	return &QuizHandler{
		service: service,
		logger:  logger.With().Str("component", "quiz_handler").Logger(),
	}
}

// Register attaches the quiz routes.
func (h *QuizHandler) Register(router fiber.Router) {
	router.Get("/generate", h.generate)
	router.Post("/submit", h.submit)
}

func (h *QuizHandler) generate(c *fiber.Ctx) error {
	questions, err := h.service.GenerateQuiz(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to generate quiz")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to generate quiz")
	}

	return utils.SendSuccess(c, "quiz generated", questions)
}

func (h *QuizHandler) submit(c *fiber.Ctx) error {
	var req dto.QuizSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := h.service.SubmitQuiz(c.Context(), req)
	if err != nil {
		status, message := statusForError(err)
		if status == fiber.StatusInternalServerError {
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to record quiz submission")
			message = "failed to record quiz submission"
		}
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, response.Message, response)
}
