package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mentora-labs/mentora-go-api/internal/dto"
	"github.com/mentora-labs/mentora-go-api/internal/service"
	"github.com/mentora-labs/mentora-go-api/pkg/ai"
)

type stubQuizService struct {
	questions  []ai.Question
	generate   error
	submitResp dto.QuizSubmitResponse
	submitErr  error
	submitted  []dto.QuizSubmitRequest
}

func (s *stubQuizService) GenerateQuiz(context.Context) ([]ai.Question, error) {
	return s.questions, s.generate
}

func (s *stubQuizService) SubmitQuiz(_ context.Context, req dto.QuizSubmitRequest) (dto.QuizSubmitResponse, error) {
	s.submitted = append(s.submitted, req)
	return s.submitResp, s.submitErr
}

func newQuizApp(stub *stubQuizService) *fiber.App {
	app := fiber.New()
	NewQuizHandler(stub, zerolog.Nop()).Register(app)
	return app
}

func TestGenerateQuizEndpoint(t *testing.T) {
	stub := &stubQuizService{questions: []ai.Question{
		{ID: 1, Question: "What does CPU stand for?", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
	}}
	app := newQuizApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/generate", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	require.True(t, envelope.Success)

	payload, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var questions []ai.Question
	require.NoError(t, json.Unmarshal(payload, &questions))
	require.Len(t, questions, 1)
}

func TestSubmitQuizEndpoint(t *testing.T) {
	stub := &stubQuizService{submitResp: dto.QuizSubmitResponse{
		Message: "Quiz submitted successfully",
		Result:  dto.QuizSubmissionResult{StudentID: "7", Score: 5, RecommendedCourses: []string{"Data Structures"}},
	}}
	app := newQuizApp(stub)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/submit", `{"student_id":"7","score":5,"wrong_answers":["What uses LIFO?"]}`), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, stub.submitted, 1)
	require.Equal(t, "7", stub.submitted[0].StudentID)
	require.Equal(t, 5, stub.submitted[0].Score)
	require.Equal(t, []string{"What uses LIFO?"}, stub.submitted[0].WrongAnswers)
}

func TestSubmitQuizEndpointUnknownStudent(t *testing.T) {
	stub := &stubQuizService{submitErr: service.ErrUserNotFound}
	app := newQuizApp(stub)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/submit", `{"student_id":"99","score":5}`), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSubmitQuizEndpointMalformedBody(t *testing.T) {
	app := newQuizApp(&stubQuizService{})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/submit", `{`), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
