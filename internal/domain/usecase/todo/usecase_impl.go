package todo

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

var (
	todosCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "todo_created_total",
			Help: "Total number of todos created",
		},
	)

	todoStoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todo_store_errors_total",
			Help: "Total number of failed todo store operations by error kind",
		},
		[]string{"operation", "kind"},
	)
)

type todoUseCase struct {
	gateway db.TodoGateway
}

func NewTodoUseCase(gateway db.TodoGateway) UseCase {
	return &todoUseCase{
		gateway: gateway,
	}
}

func (uc *todoUseCase) ListTodos(ctx context.Context) (entity.TodoList, error) {
	todos, err := uc.gateway.List(ctx)
	if err != nil {
		recordFailure("list", err)
		log.Error(msg.GetMessage("todo.error.list"), zap.Error(err))
		return nil, err
	}
	return todos, nil
}

func (uc *todoUseCase) CreateTodo(ctx context.Context, description string) (entity.TodoList, error) {
	todos, err := uc.gateway.Create(ctx, description)
	if err != nil {
		recordFailure("create", err)
		log.Error(msg.GetMessage("todo.error.create"), zap.Error(err))
		return nil, err
	}

	todosCreatedTotal.Inc()
	for _, todo := range todos {
		log.Debug(msg.GetMessage("todo.created", todo.ID), zap.Stringer("id", todo.ID))
	}
	return todos, nil
}

func recordFailure(operation string, err error) {
	todoStoreErrorsTotal.WithLabelValues(operation, ErrorKind(err)).Inc()
}
