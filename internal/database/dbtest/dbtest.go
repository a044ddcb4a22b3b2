// Package dbtest provides database configurations for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"notekeeper/internal/config"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Postgres runs a throwaway postgres container and returns a config
// pointing at it. The test is skipped in short mode or when Docker is
// unavailable.
func Postgres(t testing.TB) config.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container in short mode")
	}

	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)
	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("could not terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	return config.Database{
		Driver:   config.DriverPostgres,
		Host:     host,
		Port:     port.Port(),
		Name:     dbName,
		Username: dbUser,
		Password: dbPwd,
		Schema:   "public",
	}
}

// SQLite returns a config for a fresh database file in a temp dir.
func SQLite(t testing.TB) config.Database {
	t.Helper()
	return config.Database{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "notes.db"),
	}
}
