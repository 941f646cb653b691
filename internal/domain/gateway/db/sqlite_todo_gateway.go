package db

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todo-api/internal/domain/entity"
	"todo-api/internal/infra/database"
)

const (
	selectTodos    = `SELECT id, description, done, datetime FROM todo`
	selectTodoByID = `SELECT id, description, done, datetime FROM todo WHERE id = ?1`
	insertTodo     = `INSERT INTO todo (id, description, done, datetime) VALUES (?1, ?2, ?3, ?4)`
)

type SQLiteTodoGateway struct {
	pool  database.Pool
	now   func() time.Time
	newID func() uuid.UUID
}

var _ TodoGateway = (*SQLiteTodoGateway)(nil)

type SQLiteTodoGatewayOption func(*SQLiteTodoGateway)

// WithClock overrides the clock used to stamp new todos.
func WithClock(now func() time.Time) SQLiteTodoGatewayOption {
	return func(gateway *SQLiteTodoGateway) {
		gateway.now = now
	}
}

// WithIDGenerator overrides the id source for new todos.
func WithIDGenerator(newID func() uuid.UUID) SQLiteTodoGatewayOption {
	return func(gateway *SQLiteTodoGateway) {
		gateway.newID = newID
	}
}

func NewSQLiteTodoGateway(pool database.Pool, opts ...SQLiteTodoGatewayOption) *SQLiteTodoGateway {
	gateway := &SQLiteTodoGateway{
		pool:  pool,
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(gateway)
	}
	return gateway
}

// List returns every stored todo in query order.
func (gateway *SQLiteTodoGateway) List(ctx context.Context) (entity.TodoList, error) {
	conn, release, err := gateway.pool.Acquire(ctx)
	if err != nil {
		return nil, &StorageError{Op: "acquire", Err: err}
	}
	defer release()

	return queryTodos(ctx, conn, "list", selectTodos)
}

// Create stores a new pending todo and returns it as read back from the table.
func (gateway *SQLiteTodoGateway) Create(ctx context.Context, description string) (entity.TodoList, error) {
	row := encodeRow(entity.NewTodoItem(gateway.newID(), description, false, gateway.now()))

	conn, release, err := gateway.pool.Acquire(ctx)
	if err != nil {
		return nil, &StorageError{Op: "acquire", Err: err}
	}
	defer release()

	if err := conn.Exec(ctx, insertTodo, row.ID, row.Description, row.Done, row.Datetime); err != nil {
		return nil, &StorageError{Op: "insert", Err: err}
	}

	todos, err := queryTodos(ctx, conn, "select", selectTodoByID, row.ID)
	if err != nil {
		return nil, err
	}
	if len(todos) == 0 {
		return nil, &StorageError{Op: "select", Err: ErrTodoNotFound}
	}
	return todos, nil
}

func queryTodos(ctx context.Context, conn database.Conn, op string, query string, args ...any) (todos entity.TodoList, err error) {
	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, &StorageError{Op: op, Err: err}
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			todos, err = nil, &StorageError{Op: op, Err: closeErr}
		}
	}()

	results := make(entity.TodoList, 0)
	for rows.Next() {
		row, err := scanTodoRow(rows)
		if err != nil {
			return nil, &StorageError{Op: op, Err: err}
		}
		todo, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		results = append(results, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: op, Err: err}
	}
	return results, nil
}
