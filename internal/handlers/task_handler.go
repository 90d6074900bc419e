package handlers

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"taskflow-api/internal/dto"
	"taskflow-api/internal/middleware"
	"taskflow-api/internal/services"
)

type TaskHandler struct {
	service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg, ok := validTaskFields(req.Title, req.Description); !ok {
		return badRequest(c, msg)
	}

	task, err := h.service.Create(req.Title, req.Description, req.ColumnID, userID)
	if err != nil {
		if errors.Is(err, services.ErrColumnNotOwned) {
			return forbidden(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create task",
		})
	}

	return c.JSON(task)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	taskID, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg, ok := validTaskFields(req.Title, req.Description); !ok {
		return badRequest(c, msg)
	}

	task, err := h.service.Update(taskID, req.Title, req.Description, userID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return notFound(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update task",
		})
	}

	return c.JSON(task)
}

func (h *TaskHandler) Move(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	taskID, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid task ID")
	}

	var req dto.MoveTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.service.Move(taskID, req.NewColumnID, userID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) || errors.Is(err, services.ErrColumnNotFound) {
			return notFound(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to move task",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	taskID, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid task ID")
	}

	if err := h.service.Delete(taskID, userID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return notFound(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete task",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func validTaskFields(title, description string) (string, bool) {
	if strings.TrimSpace(title) == "" {
		return "Title is required", false
	}
	if utf8.RuneCountInString(title) > 100 {
		return "Title must be at most 100 characters", false
	}
	if utf8.RuneCountInString(description) > 500 {
		return "Description must be at most 500 characters", false
	}
	return "", true
}
