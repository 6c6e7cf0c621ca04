package database

import "database/sql"

// Migrate creates the user, train and bookings tables when they do not
// already exist.  The driver name decides the auto-increment dialect.
// Bootstrapping all three tables at startup means the service comes up
// against an empty database file without any external provisioning step.
func Migrate(db *sql.DB, driver string) error {
	autoinc := "INTEGER PRIMARY KEY AUTOINCREMENT"
	text := "TEXT"
	if driver == "mysql" {
		autoinc = "BIGINT PRIMARY KEY AUTO_INCREMENT"
		// MySQL cannot index bare TEXT columns, so use a bounded VARCHAR.
		text = "VARCHAR(255)"
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS user (
			id ` + autoinc + `,
			username ` + text + ` NOT NULL UNIQUE,
			password ` + text + ` NOT NULL,
			email ` + text + ` NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS train (
			id ` + autoinc + `,
			train_name ` + text + ` NOT NULL,
			source ` + text + ` NOT NULL,
			destination ` + text + ` NOT NULL,
			seat_capacity INTEGER NOT NULL,
			arrival_time_at_source ` + text + ` NOT NULL,
			arrival_time_at_destination ` + text + ` NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			booking_id ` + autoinc + `,
			user_id INTEGER NOT NULL,
			train_name ` + text + ` NOT NULL,
			no_of_seats INTEGER NOT NULL,
			seat_numbers ` + text + ` NOT NULL
		)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
