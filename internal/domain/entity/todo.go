package entity

import (
	"time"

	"github.com/google/uuid"
)

// TodoItem is a single todo as stored and as rendered on the wire.
// The id marshals as canonical lowercase UUID text and the timestamp as RFC 3339 in UTC.
type TodoItem struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"datetime"`
}

// TodoList renders as a bare JSON array.
type TodoList []TodoItem

func NewTodoItem(id uuid.UUID, description string, done bool, createdAt time.Time) TodoItem {
	return TodoItem{
		ID:          id,
		Description: description,
		Done:        done,
		CreatedAt:   createdAt.UTC(),
	}
}

// FixtureTodoList returns the two-item list served when no database is configured.
func FixtureTodoList(now time.Time) TodoList {
	return TodoList{
		NewTodoItem(uuid.New(), "タスク1", false, now),
		NewTodoItem(uuid.New(), "タスク2", false, now),
	}
}
