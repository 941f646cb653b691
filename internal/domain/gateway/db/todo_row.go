package db

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"todo-api/internal/domain/entity"
)

// todoTimeLayout is the stored datetime format. Stored values carry no offset and are read as UTC.
const todoTimeLayout = "2006-01-02T15:04:05"

var errDatetimeLayout = errors.New("does not match " + todoTimeLayout)

// todoRow mirrors the todo table columns (id, description, done, datetime).
type todoRow struct {
	ID          string
	Description string
	Done        int64
	Datetime    string
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTodoRow(s scanner) (todoRow, error) {
	var row todoRow
	err := s.Scan(&row.ID, &row.Description, &row.Done, &row.Datetime)
	return row, err
}

func decodeRow(row todoRow) (entity.TodoItem, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return entity.TodoItem{}, &DecodeError{Field: "id", Value: row.ID, Err: err}
	}

	// time.Parse accepts a trailing fractional second the layout does not name
	if len(row.Datetime) != len(todoTimeLayout) {
		return entity.TodoItem{}, &DecodeError{Field: "datetime", Value: row.Datetime, Err: errDatetimeLayout}
	}
	createdAt, err := time.ParseInLocation(todoTimeLayout, row.Datetime, time.UTC)
	if err != nil {
		return entity.TodoItem{}, &DecodeError{Field: "datetime", Value: row.Datetime, Err: err}
	}

	return entity.NewTodoItem(id, row.Description, row.Done == 1, createdAt), nil
}

func encodeRow(item entity.TodoItem) todoRow {
	var done int64
	if item.Done {
		done = 1
	}
	return todoRow{
		ID:          item.ID.String(),
		Description: item.Description,
		Done:        done,
		Datetime:    item.CreatedAt.UTC().Format(todoTimeLayout),
	}
}
