package db

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"todo-api/internal/domain/entity"
)

func TestRowRoundTrip(t *testing.T) {
	createdAt := time.Date(2024, 12, 31, 23, 59, 59, 999_000_000, time.UTC)
	items := []entity.TodoItem{
		entity.NewTodoItem(uuid.New(), "buy milk", false, createdAt),
		entity.NewTodoItem(uuid.New(), "", true, createdAt),
	}

	for _, item := range items {
		decoded, err := decodeRow(encodeRow(item))
		if err != nil {
			t.Fatalf("decodeRow() error = %v", err)
		}
		if decoded.ID != item.ID || decoded.Description != item.Description || decoded.Done != item.Done {
			t.Errorf("decodeRow(encodeRow(%+v)) = %+v", item, decoded)
		}
		if want := item.CreatedAt.Truncate(time.Second); !decoded.CreatedAt.Equal(want) {
			t.Errorf("CreatedAt = %v, want %v", decoded.CreatedAt, want)
		}
	}
}

func TestEncodeRow(t *testing.T) {
	item := entity.NewTodoItem(
		uuid.MustParse("1B4E28BA-2FA1-11D2-883F-0016D3CCA427"),
		"x",
		true,
		time.Date(2024, 3, 1, 9, 5, 7, 500, time.FixedZone("JST", 9*60*60)),
	)

	row := encodeRow(item)

	if row.ID != "1b4e28ba-2fa1-11d2-883f-0016d3cca427" {
		t.Errorf("ID = %q", row.ID)
	}
	if row.Done != 1 {
		t.Errorf("Done = %d, want 1", row.Done)
	}
	if row.Datetime != "2024-03-01T00:05:07" {
		t.Errorf("Datetime = %q", row.Datetime)
	}
}

func TestDecodeRowDone(t *testing.T) {
	tests := []struct {
		stored int64
		want   bool
	}{
		{stored: 1, want: true},
		{stored: 0, want: false},
		{stored: 2, want: false},
		{stored: -1, want: false},
	}

	for _, tt := range tests {
		row := todoRow{ID: uuid.NewString(), Done: tt.stored, Datetime: "2024-03-01T12:30:45"}
		item, err := decodeRow(row)
		if err != nil {
			t.Fatalf("decodeRow() error = %v", err)
		}
		if item.Done != tt.want {
			t.Errorf("done %d decoded to %v, want %v", tt.stored, item.Done, tt.want)
		}
	}
}

func TestDecodeRowReadsDatetimeAsUTC(t *testing.T) {
	item, err := decodeRow(todoRow{ID: uuid.NewString(), Datetime: "2024-03-01T12:30:45"})
	if err != nil {
		t.Fatalf("decodeRow() error = %v", err)
	}
	want := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	if !item.CreatedAt.Equal(want) || item.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt = %v, want %v", item.CreatedAt, want)
	}
}

func TestDecodeRowErrors(t *testing.T) {
	tests := []struct {
		name      string
		row       todoRow
		wantField string
	}{
		{name: "empty id", row: todoRow{ID: "", Datetime: "2024-03-01T12:30:45"}, wantField: "id"},
		{name: "truncated id", row: todoRow{ID: "1b4e28ba-2fa1-11d2-883f", Datetime: "2024-03-01T12:30:45"}, wantField: "id"},
		{name: "date only", row: todoRow{ID: uuid.NewString(), Datetime: "2024-03-01"}, wantField: "datetime"},
		{name: "rfc3339", row: todoRow{ID: uuid.NewString(), Datetime: "2024-03-01T12:30:45+09:00"}, wantField: "datetime"},
		{name: "out of range", row: todoRow{ID: uuid.NewString(), Datetime: "2024-13-01T12:30:45"}, wantField: "datetime"},
		{name: "fractional seconds", row: todoRow{ID: uuid.NewString(), Datetime: "2024-03-01T12:30:45.123"}, wantField: "datetime"},
		{name: "comma fraction", row: todoRow{ID: uuid.NewString(), Datetime: "2024-03-01T12:30:45,5"}, wantField: "datetime"},
		{name: "zero fraction", row: todoRow{ID: uuid.NewString(), Datetime: "2024-03-01T12:30:45.000"}, wantField: "datetime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeRow(tt.row)

			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("decodeRow() error = %v, want *DecodeError", err)
			}
			if decodeErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", decodeErr.Field, tt.wantField)
			}
		})
	}
}
