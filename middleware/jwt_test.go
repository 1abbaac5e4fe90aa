package middleware_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/lifevault/lifevault-api/config"
	"github.com/lifevault/lifevault-api/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "jwt-test-secret"}

	app := fiber.New()
	app.Get("/whoami", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		userId := c.Locals("userId").(uint)
		role, _ := c.Locals("role").(string)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"userId": userId,
			"role":   role,
		})
	})
	return app
}

func request(t *testing.T, app *fiber.App, authHeader string) (int, string) {
	t.Helper()

	req := httptest.NewRequest("GET", "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestJWTMiddleware_AcceptsIssuedToken(t *testing.T) {
	app := protectedApp(t)

	token, err := middleware.GenerateJWT(7, "Ravi", "OWNER", "ravi@example.com", "9876543210")
	require.NoError(t, err)

	code, body := request(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, `"userId":7`)
	assert.Contains(t, body, `"role":"OWNER"`)
}

func TestJWTMiddleware_RejectsMissingHeader(t *testing.T) {
	app := protectedApp(t)

	code, _ := request(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestJWTMiddleware_RejectsNonBearerHeader(t *testing.T) {
	app := protectedApp(t)

	code, _ := request(t, app, "Token abc123")
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestJWTMiddleware_RejectsTokenSignedWithOtherKey(t *testing.T) {
	app := protectedApp(t)

	config.AppConfig.JWTKey = "another-secret"
	token, err := middleware.GenerateJWT(7, "Ravi", "OWNER", "ravi@example.com", "9876543210")
	require.NoError(t, err)
	config.AppConfig.JWTKey = "jwt-test-secret"

	code, _ := request(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}
