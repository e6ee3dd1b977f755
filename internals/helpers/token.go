package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Simpan raw JWT di Locals dari middleware
const LocRawToken = "raw_token"

// GetRawAccessToken mengembalikan access token dari:
// 1) Authorization header "Bearer <token>"
// 2) cookie "access_token"
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}
