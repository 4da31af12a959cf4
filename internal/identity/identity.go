// Package identity resolves the acting (User, Employee) pair for a request.
package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-api/internal/models"
)

const localsKey = "identity"

// Identity is the resolved caller. Employee is nil for admins and for
// EMPLOYEE users with no matching Employee record; neither case is an error.
type Identity struct {
	User     *models.User
	Employee *models.Employee
}

func (id *Identity) IsAdmin() bool {
	return id.User.AccountRole == models.RoleAdmin
}

// Linked reports whether the caller has an Employee record of their own.
func (id *Identity) Linked() bool {
	return id.Employee != nil
}

// UserIDFromToken extracts the user UUID from the validated JWT stashed in
// Fiber locals by the JWT middleware.
func UserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// Store stashes the identity in Fiber locals for downstream handlers.
func Store(c *fiber.Ctx, id *Identity) {
	c.Locals(localsKey, id)
}

// FromCtx returns the identity stored by the identity middleware, or nil.
func FromCtx(c *fiber.Ctx) *Identity {
	id, _ := c.Locals(localsKey).(*Identity)
	return id
}
