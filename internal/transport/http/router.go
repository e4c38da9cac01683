package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/todoly/backend/internal/core/ports"
	"github.com/todoly/backend/internal/infrastructure/logger"
	"github.com/todoly/backend/internal/transport/http/handlers"
)

type RouterConfig struct {
	Todos  ports.TodoService
	Events ports.TodoEventBroker
	Logger *logger.Logger
}

// Routes lists the public endpoints, in the order they are announced at startup.
var Routes = []string{
	"GET /todos (List all)",
	"POST /todos (Add new task)",
	"PATCH /todos/:id (Mark task as done)",
	"GET /ws/todos (Live todo events)",
}

func SetupRoutes(app *fiber.App, cfg RouterConfig) {
	todoHandler := handlers.NewTodoHandler(cfg.Todos, cfg.Logger)
	streamHandler := handlers.NewTodoStreamHandler(cfg.Events, cfg.Logger)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	todos := app.Group("/todos")
	todos.Get("/", todoHandler.ListTodos)
	todos.Post("/", todoHandler.CreateTodo)
	todos.Patch("/:id", todoHandler.MarkTodoDone)

	app.Use("/ws", handlers.RequireUpgrade)
	app.Get("/ws/todos", websocket.New(streamHandler.Handle))
}
