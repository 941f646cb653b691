package db

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"todo-api/internal/domain/entity"
)

// MemoryTodoGateway keeps todos in process memory. Used for the fixture mode
// and in tests that do not need a database.
type MemoryTodoGateway struct {
	mu    sync.RWMutex
	todos entity.TodoList
	now   func() time.Time
}

var _ TodoGateway = (*MemoryTodoGateway)(nil)

func NewMemoryTodoGateway(seed entity.TodoList) *MemoryTodoGateway {
	todos := make(entity.TodoList, len(seed))
	copy(todos, seed)
	return &MemoryTodoGateway{todos: todos, now: time.Now}
}

func (gateway *MemoryTodoGateway) List(_ context.Context) (entity.TodoList, error) {
	gateway.mu.RLock()
	defer gateway.mu.RUnlock()

	todos := make(entity.TodoList, len(gateway.todos))
	copy(todos, gateway.todos)
	return todos, nil
}

// Create truncates the timestamp to whole seconds so both gateways answer alike.
func (gateway *MemoryTodoGateway) Create(_ context.Context, description string) (entity.TodoList, error) {
	todo := entity.NewTodoItem(uuid.New(), description, false, gateway.now().Truncate(time.Second))

	gateway.mu.Lock()
	gateway.todos = append(gateway.todos, todo)
	gateway.mu.Unlock()

	return entity.TodoList{todo}, nil
}
