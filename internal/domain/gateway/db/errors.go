package db

import (
	"errors"
	"fmt"
)

// ErrTodoNotFound is wrapped in a StorageError when a freshly inserted todo cannot be read back.
var ErrTodoNotFound = errors.New("todo not found")

// StorageError reports a failure to acquire a connection or to run a statement.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// DecodeError reports a stored row that cannot be mapped to a TodoItem.
type DecodeError struct {
	Field string
	Value string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
