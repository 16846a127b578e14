// Package config holds the environment-driven configuration. The only
// real switch is the database name: APP_ENV=test targets books-test so
// the test suite never touches production data.
package config

import (
	"fmt"
	"os"
)

const (
	prodDatabase = "books"
	testDatabase = "books-test"
)

type Config struct {
	Addr        string
	DatabaseDSN string
}

// Load builds a Config from the process environment. DB_DSN, when set,
// overrides the derived DSN wholesale.
func Load() Config {
	return Config{
		Addr:        getEnv("APP_ADDR", ":8080"),
		DatabaseDSN: databaseDSN(),
	}
}

func databaseDSN() string {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		return dsn
	}
	host := getEnv("DB_HOST", "localhost:5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	return fmt.Sprintf("postgres://%s:%s@%s/%s", user, password, host, DatabaseName())
}

// DatabaseName returns books-test when APP_ENV is "test", books otherwise.
func DatabaseName() string {
	if os.Getenv("APP_ENV") == "test" {
		return testDatabase
	}
	return prodDatabase
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
