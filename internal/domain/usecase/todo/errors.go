package todo

import (
	"errors"

	"todo-api/internal/domain/gateway/db"
)

// ErrorKind names the failure class of a store error: "decode", "storage" or "unknown".
func ErrorKind(err error) string {
	var decodeErr *db.DecodeError
	var storageErr *db.StorageError
	switch {
	case errors.As(err, &decodeErr):
		return "decode"
	case errors.As(err, &storageErr):
		return "storage"
	default:
		return "unknown"
	}
}
