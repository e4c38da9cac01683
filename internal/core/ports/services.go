package ports

import (
	"context"

	"github.com/todoly/backend/internal/domain"
)

type TodoService interface {
	List(ctx context.Context) []domain.Todo
	Create(ctx context.Context, task string) (*domain.Todo, error)
	MarkDone(ctx context.Context, id uint) (*domain.Todo, error)
}

// TodoEventBroker fans todo changes out to live subscribers.
type TodoEventBroker interface {
	Publish(event domain.TodoEvent)
	Subscribe() (<-chan domain.TodoEvent, func())
}
