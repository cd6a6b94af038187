package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/biosecret/todoapp-api/handlers"
	"github.com/biosecret/todoapp-api/router"
	"github.com/biosecret/todoapp-api/store"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *handlers.Handler) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	profiles, tasks := store.NewMemory()
	h := handlers.New(profiles, tasks)

	app := fiber.New()
	router.SetupRoutes(app, h)
	return app, h
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, data
}

// registerProfile tạo profile qua endpoint register và trả về id
func registerProfile(t *testing.T, app *fiber.App, email, password string) int64 {
	t.Helper()

	resp, data := doRequest(t, app, "POST", "/auth/register", "", fiber.Map{
		"name":     "testname",
		"surname":  "testsurname",
		"email":    email,
		"password": password,
	})
	require.Equal(t, 201, resp.StatusCode, "register failed: %s", string(data))

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &created))
	return created.ID
}

// login trả về access token và refresh token
func login(t *testing.T, app *fiber.App, email, password string) (string, string) {
	t.Helper()

	resp, data := doRequest(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	require.Equal(t, 200, resp.StatusCode, "login failed: %s", string(data))

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(data, &tokens))
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)
	return tokens.AccessToken, tokens.RefreshToken
}

// signupAndLogin tạo profile và đăng nhập luôn, trả về id và access token
func signupAndLogin(t *testing.T, app *fiber.App, email string) (int64, string) {
	t.Helper()

	id := registerProfile(t, app, email, "password123")
	access, _ := login(t, app, email, "password123")
	return id, access
}

func profileURL(id int64) string {
	return fmt.Sprintf("/api/profiles/%d", id)
}
