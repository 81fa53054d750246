package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newProtectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTProtected(secret), func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(uint)
		role, _ := c.Locals("user_role").(string)
		return c.JSON(fiber.Map{"userId": userID, "role": role})
	})
	return app
}

func TestJWTProtectedRejectsMissingHeader(t *testing.T) {
	app := newProtectedApp("secret")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsMalformedHeader(t *testing.T) {
	app := newProtectedApp("secret")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsWrongSecret(t *testing.T) {
	app := newProtectedApp("secret")

	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsExpiredToken(t *testing.T) {
	app := newProtectedApp("secret")

	token := signToken(t, "secret", jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedAcceptsValidTokenAndSetsLocals(t *testing.T) {
	app := newProtectedApp("secret")

	token := signToken(t, "secret", jwt.MapClaims{
		"sub":  7,
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		UserID uint   `json:"userId"`
		Role   string `json:"role"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, uint(7), body.UserID)
	require.Equal(t, "ADMIN", body.Role)
}

func TestSubjectFromClaims(t *testing.T) {
	id, ok := subjectFromClaims(jwt.MapClaims{"sub": float64(9)})
	require.True(t, ok)
	require.Equal(t, uint(9), id)

	id, ok = subjectFromClaims(jwt.MapClaims{"sub": "12"})
	require.True(t, ok)
	require.Equal(t, uint(12), id)

	_, ok = subjectFromClaims(jwt.MapClaims{"sub": "abc"})
	require.False(t, ok)

	_, ok = subjectFromClaims(jwt.MapClaims{})
	require.False(t, ok)
}
