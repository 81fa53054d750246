package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lyfjs/gomis-go-api/internal/dto"
	"github.com/lyfjs/gomis-go-api/internal/handler"
	"github.com/lyfjs/gomis-go-api/internal/models"
	"github.com/lyfjs/gomis-go-api/internal/service"
)

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(body, target))
}

func jsonRequest(t *testing.T, method, path string, payload interface{}) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type mockStudentService struct {
	students  []dto.StudentResponse
	student   dto.StudentResponse
	count     int64
	meta      models.StudentMeta
	err       error
	deletedID uint
}

func (m *mockStudentService) List(context.Context) ([]dto.StudentResponse, error) {
	return m.students, m.err
}

func (m *mockStudentService) Get(context.Context, uint) (dto.StudentResponse, error) {
	return m.student, m.err
}

func (m *mockStudentService) Create(context.Context, dto.StudentCreateRequest) (dto.StudentResponse, error) {
	return m.student, m.err
}

func (m *mockStudentService) Update(context.Context, uint, dto.StudentUpdateRequest) (dto.StudentResponse, error) {
	return m.student, m.err
}

func (m *mockStudentService) Delete(_ context.Context, id uint) error {
	m.deletedID = id
	return m.err
}

func (m *mockStudentService) CountByStatus(context.Context, string) (int64, error) {
	return m.count, m.err
}

func (m *mockStudentService) Meta(context.Context) (models.StudentMeta, error) {
	return m.meta, m.err
}

func newStudentApp(svc service.StudentService) *fiber.App {
	app := fiber.New()
	handler.NewStudentHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/students"))
	return app
}

func TestStudentHandlerList(t *testing.T) {
	svc := &mockStudentService{students: []dto.StudentResponse{{ID: 1, LRN: "123456789012", FirstName: "Alice"}}}
	app := newStudentApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/students", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Success bool                  `json:"success"`
		Data    []dto.StudentResponse `json:"data"`
		Message string                `json:"message"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Success)
	require.Len(t, response.Data, 1)
	require.Equal(t, "123456789012", response.Data[0].LRN)
}

func TestStudentHandlerCreate(t *testing.T) {
	svc := &mockStudentService{student: dto.StudentResponse{ID: 7, LRN: "123456789012", Status: "ACTIVE"}}
	app := newStudentApp(svc)

	payload := dto.StudentCreateRequest{LRN: "123456789012", FirstName: "Alice", LastName: "Johnson"}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/students", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestStudentHandlerCreateConflict(t *testing.T) {
	svc := &mockStudentService{err: service.ErrDuplicateLRN}
	app := newStudentApp(svc)

	payload := dto.StudentCreateRequest{LRN: "123456789012", FirstName: "Alice", LastName: "Johnson"}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/students", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestStudentHandlerGetNotFound(t *testing.T) {
	svc := &mockStudentService{err: service.ErrStudentNotFound}
	app := newStudentApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/students/42", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStudentHandlerInvalidID(t *testing.T) {
	app := newStudentApp(&mockStudentService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/students/abc", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStudentHandlerDeleteNoContent(t *testing.T) {
	svc := &mockStudentService{}
	app := newStudentApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/students/9", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	require.Equal(t, uint(9), svc.deletedID)
}

func TestStudentHandlerMetaAndCountRoutes(t *testing.T) {
	svc := &mockStudentService{
		count: 3,
		meta:  models.StudentMeta{GradeLevels: []string{"11", "12"}},
	}
	app := newStudentApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/students/meta", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, "meta must not be captured by the id wildcard")

	var metaResponse struct {
		Data models.StudentMeta `json:"data"`
	}
	decodeResponse(t, resp, &metaResponse)
	require.Equal(t, []string{"11", "12"}, metaResponse.Data.GradeLevels)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/students/count/status/ACTIVE", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var countResponse struct {
		Data int64 `json:"data"`
	}
	decodeResponse(t, resp, &countResponse)
	require.Equal(t, int64(3), countResponse.Data)
}
