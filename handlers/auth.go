package handlers

import (
	"errors"
	"os"
	"time"

	"github.com/biosecret/todoapp-api/models"
	"github.com/biosecret/todoapp-api/store"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// HandleRegister đăng ký một profile mới (không cần xác thực)
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if errs := input.ValidateCreate(); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	// Hash mật khẩu
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "could not hash password"})
	}

	profile := &models.Profile{Password: string(hashedPassword)}
	input.Apply(profile)

	if err := h.Profiles.Create(c.Context(), profile); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return c.Status(400).JSON(fiber.Map{"errors": fiber.Map{"email": msgDupEmail}})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(profile)
}

type loginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// HandleLogin kiểm tra thông tin đăng nhập và trả về cặp token
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	input := new(loginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// Kiểm tra thông tin người dùng từ store
	profile, err := h.Profiles.GetByEmail(c.Context(), input.Email)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "invalid credentials"})
	}

	// So khớp mật khẩu
	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(input.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "invalid credentials"})
	}

	return h.sendTokenPair(c, profile.ID)
}

type refreshInput struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

// HandleRefresh cấp lại cặp token từ refresh token còn hiệu lực
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	input := new(refreshInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	token, err := jwt.Parse(input.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return c.Status(401).JSON(fiber.Map{"error": "invalid or expired token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "invalid token claims"})
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "invalid token claims"})
	}

	// Profile đã bị xóa thì refresh token cũng hết giá trị
	profile, err := h.Profiles.Get(c.Context(), int64(userID))
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "unknown user"})
	}

	return h.sendTokenPair(c, profile.ID)
}

// sendTokenPair tạo access token và refresh token
func (h *Handler) sendTokenPair(c *fiber.Ctx, userID int64) error {
	accessToken, err := generateJWT(userID, "15m")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	refreshToken, err := generateJWT(userID, "7d")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(200).JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// Tạo JWT token
func generateJWT(userID int64, duration string) (string, error) {
	// Chuyển đổi duration (ví dụ: "7d" -> 7 * 24 giờ)
	var expirationTime time.Duration
	if duration == "7d" {
		expirationTime = 7 * 24 * time.Hour // 7 ngày
	} else {
		expirationTime, _ = time.ParseDuration(duration) // Các duration hợp lệ khác
	}

	// Tạo claims cho JWT
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(expirationTime).Unix(),
	}

	// Tạo token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
