package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/staffdesk/staffdesk-api/internal/dto"
	"github.com/staffdesk/staffdesk-api/internal/identity"
)

// LoadIdentity resolves the acting (User, Employee) pair from the validated
// JWT and stashes it in locals. A token whose user no longer exists is a
// plain 401, indistinguishable from a bad token.
func LoadIdentity(resolver *identity.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := identity.UserIDFromToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Please authenticate",
			})
		}

		ident, err := resolver.Resolve(userID)
		if errors.Is(err, identity.ErrUnauthenticated) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Please authenticate",
			})
		}
		if err != nil {
			slog.Error("identity resolution failed", "user_id", userID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: "Internal server error",
			})
		}

		identity.Store(c, ident)
		return c.Next()
	}
}
