package db

import (
	"context"
	"errors"
	"time"

	"todo-api/internal/domain/model"
)

// Pinger is satisfied by *sqlite.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SQLiteHealthDBGateway struct {
	DB Pinger
}

var _ HealthDBGateway = (*SQLiteHealthDBGateway)(nil)

func NewSQLiteHealthDBGateway(db Pinger) *SQLiteHealthDBGateway {
	return &SQLiteHealthDBGateway{DB: db}
}

func (gateway *SQLiteHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	err := gateway.DB.Ping(ctx)

	// a timed-out ping leaves the database state unknown
	if errors.Is(err, context.DeadlineExceeded) {
		return model.ComponentHealthStatus{
			Status: model.StatusUnknown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	if err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": string(model.StatusUp),
		},
	}
}

// MemoryHealthDBGateway reports the in-memory store, which is always reachable.
type MemoryHealthDBGateway struct{}

var _ HealthDBGateway = MemoryHealthDBGateway{}

func (MemoryHealthDBGateway) Health(_ context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": "in-memory",
		},
	}
}
