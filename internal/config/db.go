package config

import "time"

// DB holds the database configuration settings.
type DB struct {
	Driver   string // sqlite, mysql or postgres
	Path     string // sqlite file path, ":memory:" for tests
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string

	// SlowQuery is the duration above which a query is logged as a warning.
	SlowQuery time.Duration
}

// Supported values of DB.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)
