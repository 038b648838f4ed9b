package db

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/deepakbishnoi717/atm/internal/config"
)

// ConnectForTest connects to the database described by the environment and
// brings the schema up to date. The test is skipped when no database is
// reachable so that unit-only runs stay green. Logging is discarded.
func ConnectForTest(t testing.TB) *DB {
	t.Helper()

	if testing.Short() || os.Getenv("ATM_SKIP_DB_TESTS") != "" {
		t.Skip("database tests disabled")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	database, err := Connect(ctx, &cfg.Database, logger)
	if err != nil {
		t.Skipf("database unavailable: %v", err)
	}

	if err := database.Migrate(ctx); err != nil {
		_ = database.Close() //nolint:errcheck // test setup already failed
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = database.Close() //nolint:errcheck // nothing to do on close failure in tests
	})

	return database
}

// Truncate empties every table and restarts the ledger sequence.
func (db *DB) Truncate(t testing.TB) {
	t.Helper()

	err := db.Exec("TRUNCATE TABLE transactions, idempotency_keys, bankdata RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}
