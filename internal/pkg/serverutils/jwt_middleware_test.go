package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", JwtMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.SendString(ctx.Locals("user_id").(string))
	})
	return app
}

func signTestToken(t *testing.T, userId string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userId,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTSecret())
	require.NoError(t, err)
	return signed
}

func TestJwtMiddlewareAcceptsFreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "round_trip_secret")
	app := protectedApp()

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, uuid.New().String()))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJwtMiddlewareUnconfiguredSecretRoundTrip(t *testing.T) {
	// Signing and verification must agree on the fallback when
	// JWT_SECRET is unset, or the server rejects its own tokens.
	t.Setenv("JWT_SECRET", "")
	app := protectedApp()

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, uuid.New().String()))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJwtMiddlewareRejectsMissingToken(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
