package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/todoly/backend/internal/core/ports"
	"github.com/todoly/backend/internal/core/services"
	"github.com/todoly/backend/internal/infrastructure/logger"
	"github.com/todoly/backend/internal/transport/http/dto"
)

type TodoHandler struct {
	service ports.TodoService
	logger  *logger.Logger
}

func NewTodoHandler(service ports.TodoService, logger *logger.Logger) *TodoHandler {
	return &TodoHandler{service: service, logger: logger}
}

func (h *TodoHandler) ListTodos(c *fiber.Ctx) error {
	h.logger.Infow("todo_list_request")
	todos := h.service.List(c.UserContext())

	h.logger.Infow("todo_list_success", "count", len(todos))
	return c.Status(fiber.StatusOK).JSON(todos)
}

func (h *TodoHandler) CreateTodo(c *fiber.Ctx) error {
	h.logger.Infow("todo_create_request")

	if !c.Is("json") {
		h.logger.Warnw("todo_create_unsupported_content_type", "content_type", c.Get(fiber.HeaderContentType))
		return invalidTodoBody(c)
	}

	var req dto.CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("todo_create_body_parse_failed", "error", err)
		return invalidTodoBody(c)
	}

	if err := req.Validate(); err != nil {
		h.logger.Warnw("todo_create_validation_failed", "error", err)
		return invalidTodoBody(c)
	}

	todo, err := h.service.Create(c.UserContext(), *req.Task)
	if err != nil {
		if errors.Is(err, services.ErrTodoInvalidInput) {
			h.logger.Warnw("todo_create_rejected", "error", err)
			return invalidTodoBody(c)
		}
		h.logger.Errorw("todo_create_failed", "error", err)
		return err
	}

	h.logger.Infow("todo_create_success", "id", todo.ID, "task", todo.Task)
	return c.Status(fiber.StatusCreated).JSON(todo)
}

func (h *TodoHandler) MarkTodoDone(c *fiber.Ctx) error {
	rawID := c.Params("id")
	h.logger.Infow("todo_mark_done_request", "id", rawID)

	parsed, ok := dto.ParseTodoID(rawID)
	if !ok {
		h.logger.Warnw("todo_mark_done_invalid_id", "id", rawID)
		return todoNotFound(c, rawID)
	}
	shownID := strconv.FormatInt(parsed, 10)
	if parsed <= 0 {
		h.logger.Warnw("todo_mark_done_not_found", "id", parsed)
		return todoNotFound(c, shownID)
	}

	todo, err := h.service.MarkDone(c.UserContext(), uint(parsed))
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			h.logger.Warnw("todo_mark_done_not_found", "id", parsed)
			return todoNotFound(c, shownID)
		}
		h.logger.Errorw("todo_mark_done_failed", "id", parsed, "error", err)
		return err
	}

	h.logger.Infow("todo_mark_done_success", "id", todo.ID)
	return c.Status(fiber.StatusOK).JSON(dto.TodoUpdatedResponse{
		Message: dto.TodoUpdatedMessage,
		Todo:    *todo,
	})
}

func invalidTodoBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: dto.InvalidTodoBodyMessage,
	})
}

func todoNotFound(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: dto.TodoNotFoundMessage(id),
	})
}
