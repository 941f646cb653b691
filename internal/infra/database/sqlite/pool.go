package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"todo-api/internal/infra/database"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"

	// SQLite driver
	_ "modernc.org/sqlite"
)

// Config holds SQLite pool configuration
type Config struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	BusyTimeout     time.Duration
}

// ConfigFromProperties reads the app.db.* properties.
func ConfigFromProperties() Config {
	return Config{
		Path:            resource.GetString("app.db.path"),
		MaxOpenConns:    resource.GetInt("app.db.max-open-conns"),
		MaxIdleConns:    resource.GetInt("app.db.max-idle-conns"),
		ConnMaxLifetime: resource.GetDuration("app.db.conn-max-lifetime"),
		BusyTimeout:     time.Duration(resource.GetInt("app.db.busy-timeout")) * time.Millisecond,
	}
}

// Pool is a database.Pool backed by a *sql.DB.
type Pool struct {
	db *sql.DB
}

var _ database.Pool = (*Pool)(nil)

// Open opens the database file and verifies it is reachable. The todo table is
// expected to exist already.
func Open(ctx context.Context, cfg Config) (*Pool, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	if cfg.MaxOpenConns == 0 {
		cfg.MaxOpenConns = 10
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = 5
	}
	if cfg.ConnMaxLifetime == 0 {
		cfg.ConnMaxLifetime = 5 * time.Minute
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	log.Info(msg.GetMessage("db.open", cfg.Path), zap.String("path", cfg.Path))

	db, err := sql.Open("sqlite", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Pool{db: db}, nil
}

func dsn(cfg Config) string {
	params := url.Values{}
	params.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()))
	params.Add("_pragma", "journal_mode(WAL)")
	return cfg.Path + "?" + params.Encode()
}

// Acquire checks out a dedicated connection. Closing a *sql.Conn returns it to the pool.
func (p *Pool) Acquire(ctx context.Context) (database.Conn, func(), error) {
	c, err := p.db.Conn(ctx)
	if err != nil {
		return nil, nil, err
	}
	return &conn{c: c}, func() { _ = c.Close() }, nil
}

// Ping verifies the database is reachable.
func (p *Pool) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes every connection in the pool.
func (p *Pool) Close() error {
	return p.db.Close()
}

type conn struct {
	c *sql.Conn
}

func (c *conn) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	rows, err := c.c.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *conn) Exec(ctx context.Context, query string, args ...any) error {
	_, err := c.c.ExecContext(ctx, query, args...)
	return err
}
