package middleware_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/biosecret/todoapp-api/middleware"
	"github.com/biosecret/todoapp-api/models"
	"github.com/biosecret/todoapp-api/store"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID int64) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newGuardedApp(t *testing.T) (*fiber.App, *store.MemoryProfileStore) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	profiles, _ := store.NewMemory()
	app := fiber.New()
	app.Get("/whoami", middleware.JWTMiddleware(profiles), func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return c.SendStatus(500)
		}
		return c.JSON(identity)
	})
	return app, profiles
}

func TestJWTMiddlewareRejectsBadTokens(t *testing.T) {
	app, _ := newGuardedApp(t)

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Token abc",
		"garbage":        "Bearer not-a-token",
	}
	for name, header := range cases {
		req := httptest.NewRequest("GET", "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode, name)
	}
}

func TestJWTMiddlewareResolvesIdentity(t *testing.T) {
	app, profiles := newGuardedApp(t)

	p := &models.Profile{Email: "test@example.com", Name: "n", Surname: "s", Password: "h"}
	require.NoError(t, profiles.Create(context.Background(), p))

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, p.ID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestJWTMiddlewareRejectsDeletedProfile(t *testing.T) {
	app, profiles := newGuardedApp(t)

	p := &models.Profile{Email: "test@example.com", Name: "n", Surname: "s", Password: "h"}
	require.NoError(t, profiles.Create(context.Background(), p))
	require.NoError(t, profiles.Delete(context.Background(), p.ID))

	// token còn hạn nhưng profile đã bị xóa
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, p.ID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestJWTMiddlewareRejectsExpiredToken(t *testing.T) {
	app, profiles := newGuardedApp(t)

	p := &models.Profile{Email: "test@example.com", Name: "n", Surname: "s", Password: "h"}
	require.NoError(t, profiles.Create(context.Background(), p))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": p.ID,
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
