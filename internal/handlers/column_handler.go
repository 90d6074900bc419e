package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskflow-api/internal/dto"
	"taskflow-api/internal/middleware"
	"taskflow-api/internal/services"
)

type ColumnHandler struct {
	columns *services.ColumnService
	tasks   *services.TaskService
}

func NewColumnHandler(columns *services.ColumnService, tasks *services.TaskService) *ColumnHandler {
	return &ColumnHandler{columns: columns, tasks: tasks}
}

func (h *ColumnHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateColumnRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg, ok := validName(req.Name); !ok {
		return badRequest(c, msg)
	}

	column, err := h.columns.Create(req.Name, req.BoardID, userID)
	if err != nil {
		if errors.Is(err, services.ErrBoardNotOwned) {
			return forbidden(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create column",
		})
	}

	return c.JSON(column)
}

func (h *ColumnHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	columnID, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid column ID")
	}

	var req dto.UpdateColumnRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg, ok := validName(req.Name); !ok {
		return badRequest(c, msg)
	}

	column, err := h.columns.Rename(columnID, req.Name, userID)
	if err != nil {
		if errors.Is(err, services.ErrColumnNotFound) {
			return notFound(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update column",
		})
	}

	return c.JSON(column)
}

func (h *ColumnHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	columnID, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid column ID")
	}

	if err := h.columns.Delete(columnID, userID); err != nil {
		if errors.Is(err, services.ErrColumnNotFound) {
			return notFound(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete column",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Reorder applies a bulk position assignment to the column's tasks.
// Any task id outside the column fails the whole request.
func (h *ColumnHandler) Reorder(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	columnID, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid column ID")
	}

	var pairs []dto.TaskReorder
	if err := c.BodyParser(&pairs); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.tasks.Reorder(columnID, pairs, userID); err != nil {
		if errors.Is(err, services.ErrColumnNotFound) || errors.Is(err, services.ErrTaskNotFound) {
			return notFound(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to reorder tasks",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
