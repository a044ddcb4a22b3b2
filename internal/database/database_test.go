package database

import (
	"testing"

	"notekeeper/internal/config"
	"notekeeper/internal/database/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnsupportedDriver(t *testing.T) {
	_, err := New(config.Database{Driver: "mysql"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestSQLiteHealth(t *testing.T) {
	srv, err := New(dbtest.SQLite(t))
	require.NoError(t, err)
	t.Cleanup(func() { srv.Close() })

	stats := srv.Health()
	assert.Equal(t, "up", stats["status"])
	assert.Equal(t, config.DriverSQLite, stats["driver"])
	assert.Equal(t, config.DriverSQLite, srv.Driver())
}

func TestSQLiteSeeded(t *testing.T) {
	cfg := dbtest.SQLite(t)
	srv, err := New(cfg)
	require.NoError(t, err)

	var count int
	require.NoError(t, srv.DB().QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&count))
	assert.Equal(t, 3, count)
	require.NoError(t, srv.Close())

	// Reopening must not replay the seed migration.
	srv, err = New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { srv.Close() })
	_, err = srv.DB().Exec(`DELETE FROM notes WHERE id = 2`)
	require.NoError(t, err)
	require.NoError(t, srv.DB().QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestHealthDown(t *testing.T) {
	srv, err := New(dbtest.SQLite(t))
	require.NoError(t, err)
	require.NoError(t, srv.Close())

	stats := srv.Health()
	assert.Equal(t, "down", stats["status"])
	assert.Contains(t, stats["error"], "db down")
}

func TestPostgresHealth(t *testing.T) {
	srv, err := New(dbtest.Postgres(t))
	require.NoError(t, err)
	t.Cleanup(func() { srv.Close() })

	stats := srv.Health()
	assert.Equal(t, "up", stats["status"])
	assert.Equal(t, "It's healthy", stats["message"])

	var count int
	require.NoError(t, srv.DB().QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&count))
	assert.Equal(t, 3, count)
}
