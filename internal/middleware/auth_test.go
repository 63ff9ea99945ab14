package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorhub/creator-platform/internal/config"
	"github.com/creatorhub/creator-platform/internal/dto"
)

const testSecret = "unit-test-signing-key"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedApp(extra ...fiber.Handler) *fiber.App {
	cfg := &config.Config{JWTSecret: testSecret, AdminEmails: "root@example.com"}
	app := fiber.New()
	handlers := append([]fiber.Handler{JWTProtected(cfg)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/", handlers...)
	return app
}

func doRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestJWTProtected_AcceptsValidToken(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	resp := doRequest(t, protectedApp(), token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJWTProtected_RejectsMissingToken(t *testing.T) {
	resp := doRequest(t, protectedApp(), "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Not authorized to access this route", body.Error)
}

func TestJWTProtected_RejectsWrongSignature(t *testing.T) {
	token := signedToken(t, "some-other-key", jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	resp := doRequest(t, protectedApp(), token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRequired_ConfigEmailBypassesRoleCheck(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret, AdminEmails: "root@example.com, ops@example.com"}
	app := protectedApp(AdminRequired(nil, cfg))

	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub":   uuid.NewString(),
		"email": "ops@example.com",
		"role":  "user",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	resp := doRequest(t, app, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRequired_RejectsNonAdmin(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	app := protectedApp(AdminRequired(nil, cfg))

	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub":   uuid.NewString(),
		"email": "user@example.com",
		"role":  "user",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	resp := doRequest(t, app, token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Admin access required", body.Error)
}

func TestParseCSV(t *testing.T) {
	assert.Nil(t, parseCSV(""))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, parseCSV(" a@x.com , b@x.com ,"))
}
