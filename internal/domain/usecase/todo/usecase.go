package todo

import (
	"context"

	"todo-api/internal/domain/entity"
)

type UseCase interface {
	ListTodos(ctx context.Context) (entity.TodoList, error)
	CreateTodo(ctx context.Context, description string) (entity.TodoList, error)
}
