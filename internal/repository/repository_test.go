package repository

import (
	"database/sql"
	"testing"

	"github.com/railbook/train-booking/internal/database"
)

// openTestDB opens a named in-memory SQLite database with the schema
// applied.  Each test uses its own name so shared-cache databases do not
// leak state between tests.
func openTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := database.OpenSQLite("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := database.Migrate(db, "sqlite3"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
