package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-api/internal/dto"
	"github.com/staffdesk/staffdesk-api/internal/identity"
	"github.com/staffdesk/staffdesk-api/internal/services"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	employees, err := h.employeeService.List()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(employees)
}

func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid employee id")
	}

	emp, err := h.employeeService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(emp)
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	ident := identity.FromCtx(c)

	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	emp, err := h.employeeService.Create(ident, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(emp)
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	ident := identity.FromCtx(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid employee id")
	}

	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	emp, err := h.employeeService.Update(ident, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(emp)
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	ident := identity.FromCtx(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid employee id")
	}

	if err := h.employeeService.Delete(ident, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
}
