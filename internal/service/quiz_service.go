package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/mentora-labs/mentora-go-api/internal/dto"
	"github.com/mentora-labs/mentora-go-api/internal/events"
	"github.com/mentora-labs/mentora-go-api/internal/models"
	"github.com/mentora-labs/mentora-go-api/internal/repository"
	"github.com/mentora-labs/mentora-go-api/pkg/ai"
)

// Submissions arrive without measured accuracy or typing speed from the quiz
// UI; these stand-ins keep the aggregate fields populated until the client
// reports real values.
const (
	defaultAccuracy    = 85
	defaultTypingSpeed = 45
)

// QuizService generates quizzes and grades submitted ones.
type QuizService interface {
	GenerateQuiz(ctx context.Context) ([]ai.Question, error)
	SubmitQuiz(ctx context.Context, req dto.QuizSubmitRequest) (dto.QuizSubmitResponse, error)
}

type quizService struct {
	users         repository.UserRepository
	submissions   repository.SubmissionRepository
	engine        *RecommendationEngine
	generator     ai.Generator
	bank          *ai.FallbackBank
	publisher     *events.Publisher
	validate      *validator.Validate
	sanitizer     *bluemonday.Policy
	questionCount int
	logger        zerolog.Logger
	now           func() time.Time
}

// NewQuizService constructs the quiz service. The generator may be nil, in
// which case every quiz is served from the fallback bank.
func NewQuizService(users repository.UserRepository, submissions repository.SubmissionRepository, engine *RecommendationEngine, generator ai.Generator, publisher *events.Publisher, validate *validator.Validate, questionCount int, logger zerolog.Logger) QuizService {
	if questionCount <= 0 {
		questionCount = 15
	}

	return &quizService{
		users:         users,
		submissions:   submissions,
		engine:        engine,
		generator:     generator,
		bank:          ai.NewFallbackBank(),
		publisher:     publisher,
		validate:      validate,
		sanitizer:     bluemonday.StrictPolicy(),
		questionCount: questionCount,
		logger:        logger.With().Str("component", "quiz_service").Logger(),
		now:           time.Now,
	}
}

func (s *quizService) GenerateQuiz(ctx context.Context) ([]ai.Question, error) {
	if s.generator == nil {
		return s.bank.Sample(s.questionCount), nil
	}

	questions, err := s.generator.GenerateQuestions(ctx, s.questionCount)
	if err != nil {
		s.logger.Warn().Err(err).Msg("question generation failed, serving fallback bank")
		return s.bank.Sample(s.questionCount), nil
	}

	return questions, nil
}

func (s *quizService) SubmitQuiz(ctx context.Context, req dto.QuizSubmitRequest) (dto.QuizSubmitResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.QuizSubmitResponse{}, err
	}

	userID, err := parseUserID(req.StudentID)
	if err != nil {
		return dto.QuizSubmitResponse{}, ErrInvalidUserID
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.QuizSubmitResponse{}, ErrUserNotFound
		}
		return dto.QuizSubmitResponse{}, err
	}

	wrongAnswers := make([]string, 0, len(req.WrongAnswers))
	for _, answer := range req.WrongAnswers {
		wrongAnswers = append(wrongAnswers, s.sanitizer.Sanitize(answer))
	}

	courses := s.engine.Recommend(req.Score, wrongAnswers)

	coursesJSON, err := json.Marshal(courses)
	if err != nil {
		return dto.QuizSubmitResponse{}, err
	}

	submission := models.QuizSubmission{
		UserID:             user.ID,
		Score:              req.Score,
		Accuracy:           defaultAccuracy,
		TypingSpeed:        defaultTypingSpeed,
		RecommendedCourses: coursesJSON,
		SubmittedAt:        s.now(),
	}
	if req.Accuracy != nil {
		submission.Accuracy = *req.Accuracy
	}
	if req.TypingSpeed != nil {
		submission.TypingSpeed = *req.TypingSpeed
	}

	if err := s.submissions.Create(ctx, &submission); err != nil {
		return dto.QuizSubmitResponse{}, err
	}

	s.publisher.QuizSubmitted(events.SubmissionEvent{
		SubmissionID:       submission.ID,
		UserID:             user.ID,
		Score:              submission.Score,
		RecommendedCourses: courses,
		OccurredAt:         submission.SubmittedAt,
	})

	return dto.QuizSubmitResponse{
		Message: "Quiz submitted successfully",
		Result: dto.QuizSubmissionResult{
			StudentID:          req.StudentID,
			Timestamp:          submission.SubmittedAt.Format(time.RFC3339),
			Score:              submission.Score,
			RecommendedCourses: courses,
		},
	}, nil
}
