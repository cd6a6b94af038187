package handlers_test

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t)
	registerProfile(t, app, "test@example.com", "password123")

	// đúng mật khẩu
	login(t, app, "test@example.com", "password123")

	// sai mật khẩu
	resp, _ := doRequest(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "test@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, 401, resp.StatusCode)

	// email không tồn tại
	resp, _ = doRequest(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRefresh(t *testing.T) {
	app, _ := newTestApp(t)
	id, _ := signupAndLogin(t, app, "test@example.com")
	_, refreshToken := login(t, app, "test@example.com", "password123")

	resp, data := doRequest(t, app, "POST", "/auth/refresh", "", fiber.Map{
		"refresh_token": refreshToken,
	})
	require.Equal(t, 200, resp.StatusCode)

	var tokens struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(data, &tokens))
	require.NotEmpty(t, tokens.AccessToken)

	// access token mới dùng được
	resp, _ = doRequest(t, app, "GET", profileURL(id), tokens.AccessToken, nil)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRefreshInvalidToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doRequest(t, app, "POST", "/auth/refresh", "", fiber.Map{
		"refresh_token": "not-a-token",
	})
	assert.Equal(t, 401, resp.StatusCode)
}
