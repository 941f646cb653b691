package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// setupTestPool opens a pool on a fresh database file with a single connection slot
func setupTestPool(t *testing.T) *Pool {
	t.Helper()

	pool, err := Open(context.Background(), Config{
		Path:         filepath.Join(t.TempDir(), "todo.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("failed to open pool: %v", err)
	}
	t.Cleanup(func() { _ = pool.Close() })

	return pool
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestPoolPing(t *testing.T) {
	pool := setupTestPool(t)

	if err := pool.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}

func TestAcquireExecQuery(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	conn, release, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("failed to acquire: %v", err)
	}
	defer release()

	if err := conn.Exec(ctx, "CREATE TABLE todo (id TEXT, description TEXT, done INTEGER, datetime TEXT)"); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if err := conn.Exec(ctx, "INSERT INTO todo (id, description, done, datetime) VALUES (?1, ?2, ?3, ?4)",
		"id-1", "write tests", 1, "2024-03-01T12:30:45"); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}

	rows, err := conn.Query(ctx, "SELECT id, description, done, datetime FROM todo")
	if err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id, description, datetime string
		var done int64
		if err := rows.Scan(&id, &description, &done, &datetime); err != nil {
			t.Fatalf("failed to scan: %v", err)
		}
		if id != "id-1" || description != "write tests" || done != 1 || datetime != "2024-03-01T12:30:45" {
			t.Errorf("unexpected row: %s %s %d %s", id, description, done, datetime)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}
}

func TestReleaseReturnsConnection(t *testing.T) {
	pool := setupTestPool(t)

	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		_, release, err := pool.Acquire(ctx)
		cancel()
		if err != nil {
			t.Fatalf("acquire %d failed: %v", i, err)
		}
		release()
	}
}

func TestAcquireBlocksUntilSlotIsFree(t *testing.T) {
	pool := setupTestPool(t)

	_, release, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("failed to acquire: %v", err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, _, err := pool.Acquire(ctx); err == nil {
		t.Fatal("expected second acquire to time out while the only slot is held")
	}
}

func TestQueryError(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	conn, release, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("failed to acquire: %v", err)
	}
	defer release()

	_, err = conn.Query(ctx, "SELECT id FROM missing_table")
	if err == nil || !strings.Contains(err.Error(), "missing_table") {
		t.Fatalf("expected missing table error, got %v", err)
	}
}

func TestDSN(t *testing.T) {
	got := dsn(Config{Path: "/data/todo.db", BusyTimeout: 2 * time.Second})
	if !strings.HasPrefix(got, "/data/todo.db?") {
		t.Errorf("dsn = %q", got)
	}
	if !strings.Contains(got, "busy_timeout%282000%29") {
		t.Errorf("dsn missing busy timeout: %q", got)
	}
}
