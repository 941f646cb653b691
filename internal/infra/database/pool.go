package database

import "context"

// Rows is the cursor returned by Conn.Query.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Conn is a connection checked out of a Pool.
type Conn interface {
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	Exec(ctx context.Context, query string, args ...any) error
}

// Pool hands out connections. The release func returned by Acquire must be
// called exactly once and gives the connection back to the pool.
type Pool interface {
	Acquire(ctx context.Context) (Conn, func(), error)
}
