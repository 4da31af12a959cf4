package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-api/internal/dto"
	"github.com/staffdesk/staffdesk-api/internal/identity"
	"github.com/staffdesk/staffdesk-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	ident := identity.FromCtx(c)

	tasks, err := h.taskService.List(ident)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(tasks)
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	ident := identity.FromCtx(c)

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	task, err := h.taskService.Create(ident, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	ident := identity.FromCtx(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	task, err := h.taskService.Update(ident, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(task)
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	ident := identity.FromCtx(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}

	if err := h.taskService.Delete(ident, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}
