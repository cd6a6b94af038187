package middleware

import (
	"os"
	"strings"

	"github.com/biosecret/todoapp-api/models"
	"github.com/biosecret/todoapp-api/store"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

// JWTMiddleware xác thực access token và nạp danh tính người gọi từ store.
// Token hợp lệ nhưng profile đã bị xóa vẫn bị từ chối
func JWTMiddleware(profiles store.ProfileStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Lấy token từ header Authorization
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "missing token"})
		}

		// Tách từ "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.Status(401).JSON(fiber.Map{"error": "invalid token format"})
		}

		// Parse và kiểm tra token
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
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

		profile, err := profiles.Get(c.Context(), int64(userID))
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "unknown user"})
		}

		// Lưu danh tính người gọi vào context của request
		c.Locals(identityKey, models.Identity{ID: profile.ID, Email: profile.Email})
		return c.Next()
	}
}

// IdentityFromCtx trả về danh tính đã được JWTMiddleware gắn vào request
func IdentityFromCtx(c *fiber.Ctx) (models.Identity, bool) {
	identity, ok := c.Locals(identityKey).(models.Identity)
	return identity, ok
}
