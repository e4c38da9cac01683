package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/todoly/backend/internal/core/services"
	"github.com/todoly/backend/internal/domain"
	"github.com/todoly/backend/internal/infrastructure/logger"
)

type fakeTodoService struct {
	todos     []domain.Todo
	createErr error
	doneErr   error
	lastTask  string
	lastID    uint
}

func (f *fakeTodoService) List(ctx context.Context) []domain.Todo {
	return f.todos
}

func (f *fakeTodoService) Create(ctx context.Context, task string) (*domain.Todo, error) {
	f.lastTask = task
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Todo{ID: 10, Task: task}, nil
}

func (f *fakeTodoService) MarkDone(ctx context.Context, id uint) (*domain.Todo, error) {
	f.lastID = id
	if f.doneErr != nil {
		return nil, f.doneErr
	}
	return &domain.Todo{ID: id, Task: "x", Done: true}, nil
}

func newHandlerApp(svc *fakeTodoService) *fiber.App {
	h := NewTodoHandler(svc, logger.NewNop())
	app := fiber.New()
	app.Get("/todos", h.ListTodos)
	app.Post("/todos", h.CreateTodo)
	app.Patch("/todos/:id", h.MarkTodoDone)
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(data)
}

func TestCreateTodoPassesTaskThrough(t *testing.T) {
	svc := &fakeTodoService{}
	app := newHandlerApp(svc)

	status, body := send(t, app, http.MethodPost, "/todos", `{"task":"  spaced  "}`)
	if status != http.StatusCreated {
		t.Fatalf("status=%d body=%s", status, body)
	}
	if svc.lastTask != "  spaced  " {
		t.Fatalf("task=%q should not be trimmed", svc.lastTask)
	}
}

func TestCreateTodoMapsServiceRejection(t *testing.T) {
	app := newHandlerApp(&fakeTodoService{createErr: services.ErrTodoInvalidInput})

	status, body := send(t, app, http.MethodPost, "/todos", `{"task":"x"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status=%d", status)
	}
	if !strings.Contains(body, "'task' (string) is required.") {
		t.Fatalf("body=%s", body)
	}
}

func TestCreateTodoUnexpectedErrorIsInternal(t *testing.T) {
	app := newHandlerApp(&fakeTodoService{createErr: errors.New("boom")})

	status, _ := send(t, app, http.MethodPost, "/todos", `{"task":"x"}`)
	if status != http.StatusInternalServerError {
		t.Fatalf("status=%d", status)
	}
}

func TestMarkTodoDoneMapsWrappedNotFound(t *testing.T) {
	svc := &fakeTodoService{doneErr: errors.Join(services.ErrTodoNotFound, errors.New("id=5"))}
	app := newHandlerApp(svc)

	status, body := send(t, app, http.MethodPatch, "/todos/5", "")
	if status != http.StatusNotFound {
		t.Fatalf("status=%d", status)
	}
	if body != `{"error":"Task with ID 5 not found."}` {
		t.Fatalf("body=%s", body)
	}
	if svc.lastID != 5 {
		t.Fatalf("id=%d", svc.lastID)
	}
}

func TestMarkTodoDoneSkipsServiceOnBadID(t *testing.T) {
	svc := &fakeTodoService{}
	app := newHandlerApp(svc)

	status, _ := send(t, app, http.MethodPatch, "/todos/abc", "")
	if status != http.StatusNotFound {
		t.Fatalf("status=%d", status)
	}
	if svc.lastID != 0 {
		t.Fatalf("service called with id=%d", svc.lastID)
	}
}

func TestListTodosEncodesServiceResult(t *testing.T) {
	app := newHandlerApp(&fakeTodoService{todos: []domain.Todo{{ID: 3, Task: "a", Done: true}}})

	status, body := send(t, app, http.MethodGet, "/todos", "")
	if status != http.StatusOK || body != `[{"id":3,"task":"a","done":true}]` {
		t.Fatalf("status=%d body=%s", status, body)
	}
}
