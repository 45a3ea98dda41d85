package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectUnsupportedDriver(t *testing.T) {
	_, err := Connect(Config{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "a.db?_foreign_keys=on", sqliteDSN("a.db"))
	assert.Equal(t, "file:a.db?cache=shared&_foreign_keys=on", sqliteDSN("file:a.db?cache=shared"))
}

func TestConnectAndMigrateSqlite(t *testing.T) {
	gdb, err := Connect(Config{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "m.db")})
	require.NoError(t, err)
	require.NoError(t, Migrate(gdb))
	assert.True(t, gdb.Migrator().HasTable("users"))
	assert.True(t, gdb.Migrator().HasTable("recipes"))
	assert.True(t, gdb.Migrator().HasColumn("users", "password_hash"))
}
