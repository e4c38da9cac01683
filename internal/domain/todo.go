package domain

import "time"

// Todo is a single task record. ID and Task never change after creation;
// Done only ever moves from false to true.
type Todo struct {
	ID   uint   `json:"id"`
	Task string `json:"task"`
	Done bool   `json:"done"`
}

// SeedTodos returns the records the registry holds at startup.
func SeedTodos() []Todo {
	return []Todo{
		{ID: 1, Task: "Learn Node", Done: false},
	}
}

type TodoEventType string

const (
	TodoEventCreated TodoEventType = "todo.created"
	TodoEventUpdated TodoEventType = "todo.updated"
)

type TodoEvent struct {
	Type TodoEventType `json:"type"`
	Todo Todo          `json:"todo"`
	At   time.Time     `json:"at"`
}
