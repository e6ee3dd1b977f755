package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"schoolhub_backend/internals/configs"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// Public webhook path yang di-skip auth (signature-nya diverifikasi sendiri)
var skipPaths = map[string]struct{}{
	"/api/billing/webhook": {},
}

// AuthMiddleware memverifikasi bearer JWT dan meng-hydrate Locals:
// user_id, user_role, school_name, class_name.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Skip path tertentu (webhook dsb.)
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}

		// 2) Ambil Authorization (atau cookie)
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing token")
		}
		helper.SetRawAccessToken(c, raw)

		// 3) Parse + verifikasi algoritma
		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid token")
		}

		// 4) Validasi exp (dengan sedikit leeway)
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - token expired")
		}

		// 5) Hydrate Locals — SEMUA akses tenant lewat sini
		if v := strClaim(claims, "user_id"); v != "" {
			c.Locals(helperAuth.LocUserID, v)
		} else if v := strClaim(claims, "sub"); v != "" {
			c.Locals(helperAuth.LocUserID, v)
		}
		if v := strClaim(claims, "role"); v != "" {
			c.Locals(helperAuth.LocUserRole, v)
		}
		if v := strClaim(claims, "school_name"); v != "" {
			c.Locals(helperAuth.LocSchoolName, v)
		}
		if v := strClaim(claims, "class_name"); v != "" {
			c.Locals(helperAuth.LocClassName, v)
		}

		return c.Next()
	}
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing exp")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid exp")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return fiber.NewError(fiber.StatusUnauthorized, "expired")
	}
	return nil
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
