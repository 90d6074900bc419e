package handlers

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"taskflow-api/internal/dto"
	"taskflow-api/internal/middleware"
	"taskflow-api/internal/services"
)

type BoardHandler struct {
	service *services.BoardService
}

func NewBoardHandler(service *services.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

func (h *BoardHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	boards, err := h.service.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch boards",
		})
	}

	return c.JSON(boards)
}

func (h *BoardHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	boardID, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid board ID")
	}

	board, err := h.service.Get(boardID, userID)
	if err != nil {
		if errors.Is(err, services.ErrBoardNotFound) {
			return notFound(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch board",
		})
	}

	return c.JSON(board)
}

func (h *BoardHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg, ok := validName(req.Name); !ok {
		return badRequest(c, msg)
	}

	board, err := h.service.Create(req.Name, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create board",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(board)
}

func (h *BoardHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	boardID, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid board ID")
	}

	var req dto.UpdateBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg, ok := validName(req.Name); !ok {
		return badRequest(c, msg)
	}

	board, err := h.service.Rename(boardID, req.Name, userID)
	if err != nil {
		if errors.Is(err, services.ErrBoardNotFound) {
			return notFound(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update board",
		})
	}

	return c.JSON(board)
}

func (h *BoardHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	boardID, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid board ID")
	}

	if err := h.service.Delete(boardID, userID); err != nil {
		if errors.Is(err, services.ErrBoardNotFound) {
			return notFound(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete board",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Shared helpers for the resource handlers.

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	return uint(id), err
}

func validName(name string) (string, bool) {
	if strings.TrimSpace(name) == "" {
		return "Name is required", false
	}
	if utf8.RuneCountInString(name) > 50 {
		return "Name must be at most 50 characters", false
	}
	return "", true
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

func forbidden(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}
