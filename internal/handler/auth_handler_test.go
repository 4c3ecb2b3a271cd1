package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mentora-labs/mentora-go-api/internal/dto"
	"github.com/mentora-labs/mentora-go-api/internal/service"
)

type stubAuthService struct {
	registerResp dto.AuthResponse
	registerErr  error
	loginResp    dto.AuthResponse
	loginErr     error
}

func (s *stubAuthService) Register(context.Context, dto.RegisterRequest) (dto.AuthResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubAuthService) Login(context.Context, dto.LoginRequest) (dto.AuthResponse, error) {
	return s.loginResp, s.loginErr
}

func newAuthApp(stub *stubAuthService) *fiber.App {
	app := fiber.New()
	NewAuthHandler(stub, zerolog.Nop()).Register(app)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLoginEndpoint(t *testing.T) {
	stub := &stubAuthService{loginResp: dto.AuthResponse{
		Message: "Login successful",
		Token:   "token-123",
		User:    dto.UserResponse{ID: 1, Email: "alex@example.com"},
	}}
	app := newAuthApp(stub)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/login", `{"email":"alex@example.com","password":"secret123"}`), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	require.True(t, envelope.Success)
	require.Equal(t, "Login successful", envelope.Message)
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	stub := &stubAuthService{loginErr: service.ErrInvalidCredentials}
	app := newAuthApp(stub)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/login", `{"email":"alex@example.com","password":"wrong"}`), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	require.False(t, envelope.Success)
	require.Equal(t, "invalid credentials", envelope.Message)
}

func TestLoginEndpointMalformedBody(t *testing.T) {
	app := newAuthApp(&stubAuthService{})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/login", `{not json`), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterEndpointCreated(t *testing.T) {
	stub := &stubAuthService{registerResp: dto.AuthResponse{Message: "Registration successful"}}
	app := newAuthApp(stub)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/register", `{"email":"alex@example.com","password":"secret123","name":"Alex","role":"STUDENT"}`), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestRegisterEndpointEmailTaken(t *testing.T) {
	stub := &stubAuthService{registerErr: service.ErrEmailTaken}
	app := newAuthApp(stub)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/register", `{"email":"taken@example.com","password":"secret123","name":"Alex","role":"STUDENT"}`), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
