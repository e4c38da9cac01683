package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/todoly/backend/internal/core/ports"
	"github.com/todoly/backend/internal/domain"
	"github.com/todoly/backend/internal/infrastructure/logger"
)

type TodoRegistryConfig struct {
	Seed   []domain.Todo
	Events ports.TodoEventBroker
	Logger *logger.Logger
}

// TodoRegistry keeps todos in creation order together with the next id to
// hand out. nextID is always greater than every id the registry has held.
type TodoRegistry struct {
	mu     sync.RWMutex
	todos  []domain.Todo
	nextID uint
	events ports.TodoEventBroker
	logger *logger.Logger
	now    func() time.Time
}

func NewTodoRegistry(cfg TodoRegistryConfig) *TodoRegistry {
	todos := make([]domain.Todo, len(cfg.Seed))
	copy(todos, cfg.Seed)

	var maxID uint
	for _, t := range todos {
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}

	return &TodoRegistry{
		todos:  todos,
		nextID: maxID + 1,
		events: cfg.Events,
		logger: log,
		now:    time.Now,
	}
}

var _ ports.TodoService = (*TodoRegistry)(nil)

func (r *TodoRegistry) List(ctx context.Context) []domain.Todo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Todo, len(r.todos))
	copy(out, r.todos)
	return out
}

func (r *TodoRegistry) Create(ctx context.Context, task string) (*domain.Todo, error) {
	if task == "" {
		return nil, ErrTodoInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	todo := domain.Todo{
		ID:   r.nextID,
		Task: task,
		Done: false,
	}
	r.nextID++
	r.todos = append(r.todos, todo)

	r.logger.Infow("todo_registry_created", "id", todo.ID, "task", todo.Task)
	r.publish(domain.TodoEventCreated, todo)
	return &todo, nil
}

func (r *TodoRegistry) MarkDone(ctx context.Context, id uint) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, fmt.Errorf("%w: id=%d", ErrTodoNotFound, id)
	}
	r.todos[idx].Done = true
	todo := r.todos[idx]

	r.logger.Infow("todo_registry_marked_done", "id", todo.ID)
	r.publish(domain.TodoEventUpdated, todo)
	return &todo, nil
}

// indexOf must be called with r.mu held.
func (r *TodoRegistry) indexOf(id uint) int {
	for i := range r.todos {
		if r.todos[i].ID == id {
			return i
		}
	}
	return -1
}

// publish runs under r.mu so subscribers see events in mutation order.
// Broker.Publish never blocks.
func (r *TodoRegistry) publish(typ domain.TodoEventType, todo domain.Todo) {
	if r.events == nil {
		return
	}
	r.events.Publish(domain.TodoEvent{Type: typ, Todo: todo, At: r.now().UTC()})
}
