package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/staffdesk/staffdesk-api/internal/dto"
	"github.com/staffdesk/staffdesk-api/internal/services"
)

// respondError maps service errors onto the HTTP taxonomy: 403 policy
// denial, 404 missing entity, 400 bad input (unique violations included),
// 401 bad credentials, 500 for everything else with a generic body.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrForbidden):
		return respond(c, fiber.StatusForbidden, err)
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrEmployeeNotFound):
		return respond(c, fiber.StatusNotFound, err)
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidRefreshToken):
		return respond(c, fiber.StatusUnauthorized, err)
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrRegistrationInvalid),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidDueDate),
		errors.Is(err, services.ErrInvalidEmployeeRef),
		errors.Is(err, services.ErrEmployeeInvalid),
		errors.Is(err, services.ErrEmployeeEmailTaken):
		return respond(c, fiber.StatusBadRequest, err)
	default:
		slog.Error("unexpected service error", "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal server error",
		})
	}
}

func respond(c *fiber.Ctx, code int, err error) error {
	return c.Status(code).JSON(dto.ErrorResponse{Error: err.Error()})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: message})
}
