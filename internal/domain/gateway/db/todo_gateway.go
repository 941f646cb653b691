package db

import (
	"context"

	"todo-api/internal/domain/entity"
)

type TodoGateway interface {
	List(ctx context.Context) (entity.TodoList, error)
	Create(ctx context.Context, description string) (entity.TodoList, error)
}
