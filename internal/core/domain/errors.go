package domain

import "errors"

var (
	ErrTodoNotFound    = errors.New("todo not found")
	ErrSubtaskNotFound = errors.New("subtask not found")
)
