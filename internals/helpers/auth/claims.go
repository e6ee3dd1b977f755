package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci Locals yang di-hydrate oleh auth middleware.
const (
	LocUserID     = "user_id"
	LocUserRole   = "user_role"
	LocSchoolName = "school_name"
	LocClassName  = "class_name"
)

// GetUserIDFromToken mengambil user_id (UUID) dari Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals(LocUserID).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user id")
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user id")
	}
	return id, nil
}

// GetRoleFromToken mengambil role dari Locals.
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	v, ok := c.Locals(LocUserRole).(string)
	if !ok || v == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing role")
	}
	return v, nil
}

// GetSchoolNameFromToken mengambil tenant (school_name) dari Locals.
// Semua query per-tenant WAJIB lewat sini — tidak ada fallback global.
func GetSchoolNameFromToken(c *fiber.Ctx) (string, error) {
	v, ok := c.Locals(LocSchoolName).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing school scope")
	}
	return strings.TrimSpace(v), nil
}

// GetClassNameFromToken mengambil className siswa (boleh kosong untuk staff).
func GetClassNameFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocClassName).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func IsAdminRole(role string) bool {
	return role == "admin" || role == "superadmin"
}
