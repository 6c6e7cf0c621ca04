package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railbook/train-booking/internal/config"
)

func testConfig(driver string) config.Config {
	return config.Config{DBDriver: driver, DBPath: "file:cfg?mode=memory&cache=shared"}
}

func TestMigrateCreatesSchemaIdempotently(t *testing.T) {
	db, err := OpenSQLite("file:migrate?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db, "sqlite3"))
	// A second run must be a no-op, not an error.
	require.NoError(t, Migrate(db, "sqlite3"))

	for _, table := range []string{"user", "train", "bookings"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
		assert.Equal(t, table, name)
	}

	// The UNIQUE constraint on usernames must survive the bootstrap.
	_, err = db.Exec("INSERT INTO user (username, password, email) VALUES ('a','x','a@b')")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO user (username, password, email) VALUES ('a','y','a@c')")
	assert.Error(t, err)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(testConfig("postgres"))
	assert.Error(t, err)
}
