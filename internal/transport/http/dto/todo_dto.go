package dto

import (
	"errors"
	"fmt"

	"github.com/todoly/backend/internal/domain"
)

const (
	InvalidTodoBodyMessage = "Invalid request body. 'task' (string) is required."
	TodoUpdatedMessage     = "Task updated"
)

// CreateTodoRequest is the POST /todos body. Task is a pointer so a missing
// field and an explicit null are told apart from a decoded string.
type CreateTodoRequest struct {
	Task *string `json:"task"`
}

func (r *CreateTodoRequest) Validate() error {
	if r.Task == nil || *r.Task == "" {
		return errors.New("task is required")
	}
	return nil
}

type TodoUpdatedResponse struct {
	Message string      `json:"message"`
	Todo    domain.Todo `json:"todo"`
}

func TodoNotFoundMessage(id string) string {
	return fmt.Sprintf("Task with ID %s not found.", id)
}

type ErrorResponse struct {
	Error string `json:"error"`
}
