package services

import "errors"

// Todo errors
var (
	ErrTodoInvalidInput = errors.New("todo: invalid input")
	ErrTodoNotFound     = errors.New("todo: not found")
)

