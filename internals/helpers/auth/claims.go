// file: internals/helpers/auth/claims.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"codercamp_backend/internals/constants"
)

// Keys yang dihydrate oleh middleware AuthJWT ke c.Locals.
const (
	LocUserID = "user_id"
	LocRole   = "role"
)

func strLocal(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// GetUserIDFromToken mengambil user_id (UUID) dari locals hasil AuthJWT.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw := strLocal(c, LocUserID)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak valid")
	}
	return id, nil
}

func Role(c *fiber.Ctx) string {
	return strings.ToLower(strLocal(c, LocRole))
}

func IsAdmin(c *fiber.Ctx) bool {
	return Role(c) == constants.RoleAdmin
}

func IsCoach(c *fiber.Ctx) bool {
	return Role(c) == constants.RoleCoach
}

func IsCoder(c *fiber.Ctx) bool {
	return Role(c) == constants.RoleCoder
}
