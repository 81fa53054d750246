package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lyfjs/gomis-go-api/internal/dto"
	"github.com/lyfjs/gomis-go-api/internal/handler"
	"github.com/lyfjs/gomis-go-api/internal/service"
)

type mockUserService struct {
	users     []dto.UserResponse
	user      dto.UserResponse
	auth      dto.AuthenticateResponse
	err       error
	lastEmail string
}

func (m *mockUserService) List(context.Context) ([]dto.UserResponse, error) {
	return m.users, m.err
}

func (m *mockUserService) Get(context.Context, uint) (dto.UserResponse, error) {
	return m.user, m.err
}

func (m *mockUserService) GetByEmail(_ context.Context, email string) (dto.UserResponse, error) {
	m.lastEmail = email
	return m.user, m.err
}

func (m *mockUserService) Create(context.Context, dto.UserCreateRequest) (dto.UserResponse, error) {
	return m.user, m.err
}

func (m *mockUserService) Update(context.Context, uint, dto.UserUpdateRequest) (dto.UserResponse, error) {
	return m.user, m.err
}

func (m *mockUserService) Delete(context.Context, uint) error {
	return m.err
}

func (m *mockUserService) Authenticate(context.Context, dto.AuthenticateRequest) (dto.AuthenticateResponse, error) {
	return m.auth, m.err
}

func newUserApp(svc service.UserService) *fiber.App {
	app := fiber.New()
	handler.NewUserHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/users"))
	return app
}

func TestUserHandlerAuthenticateSuccess(t *testing.T) {
	svc := &mockUserService{auth: dto.AuthenticateResponse{
		User:  dto.UserResponse{ID: 1, Email: "counselor@example.com"},
		Token: "signed-token",
	}}
	app := newUserApp(svc)

	payload := dto.AuthenticateRequest{Email: "counselor@example.com", Password: "correct-horse"}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users/authenticate", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Success bool                     `json:"success"`
		Data    dto.AuthenticateResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Success)
	require.Equal(t, "signed-token", response.Data.Token)
	require.Equal(t, uint(1), response.Data.User.ID)
}

func TestUserHandlerAuthenticateRejected(t *testing.T) {
	svc := &mockUserService{err: service.ErrInvalidCredentials}
	app := newUserApp(svc)

	payload := dto.AuthenticateRequest{Email: "counselor@example.com", Password: "wrong"}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users/authenticate", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUserHandlerCreateConflict(t *testing.T) {
	svc := &mockUserService{err: service.ErrDuplicateEmail}
	app := newUserApp(svc)

	payload := dto.UserCreateRequest{Email: "counselor@example.com", Password: "password-123", FirstName: "Grace", LastName: "Reyes", Gender: "Female"}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestUserHandlerGetByEmail(t *testing.T) {
	svc := &mockUserService{user: dto.UserResponse{ID: 2, Email: "counselor@example.com"}}
	app := newUserApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/email/counselor@example.com", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "counselor@example.com", svc.lastEmail)
}

func TestUserHandlerGetNotFound(t *testing.T) {
	svc := &mockUserService{err: service.ErrUserNotFound}
	app := newUserApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/42", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
