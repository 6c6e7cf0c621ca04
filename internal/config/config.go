package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and costs.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DBDriver     string // database driver: "sqlite3" (default) or "mysql"
	DBPath       string // path of the SQLite database file (sqlite3 driver)
	DBUser       string // database username (mysql driver)
	DBPass       string // database password (mysql driver, optional)
	DBHost       string // database host address (mysql driver)
	DBPort       string // database port number (mysql driver)
	DBName       string // database name (mysql driver)
	JWTSecret    string // secret used to sign JWTs
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns a
// Config.  The JWT secret is mandatory and enforced by must(); everything
// else falls back to defaults that bring the service up against a local
// file database on port 3000.
func Load() Config {
	return Config{
		Env:          getenv("APP_ENV", "dev"),           // environment (dev/test/prod)
		Port:         getenv("APP_PORT", "3000"),         // port to bind the HTTP server
		DBDriver:     getenv("DB_DRIVER", "sqlite3"),     // storage driver selection
		DBPath:       getenv("DB_PATH", "trains.db"),     // SQLite file location
		DBUser:       os.Getenv("DB_USER"),               // database user (mysql only)
		DBPass:       os.Getenv("DB_PASS"),               // database password (empty allowed)
		DBHost:       getenv("DB_HOST", "localhost"),     // database host (mysql only)
		DBPort:       getenv("DB_PORT", "3306"),          // database port (mysql only)
		DBName:       getenv("DB_NAME", "trains"),        // database name (mysql only)
		JWTSecret:    must("JWT_SECRET"),                 // secret used for signing JWTs
		AccessTTLMin: getint("ACCESS_TOKEN_TTL_MIN", 60), // TTL for access tokens in minutes
		BcryptCost:   getint("BCRYPT_COST", 10),          // bcrypt cost factor
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the value of an environment variable or a default when it
// is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getint is like getenv but converts the retrieved string into an integer.
// Unset variables yield the default; malformed values are fatal because a
// silently wrong bcrypt cost or token TTL is worse than refusing to start.
func getint(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
