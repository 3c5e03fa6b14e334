// Package dsn builds database connection strings and gorm dialectors from the configuration.
package dsn

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
)

// MySQL builds the go-sql-driver DSN.
func MySQL(db config.DB) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
	)

	if db.Extras != "" {
		out += "?" + db.Extras
	}

	return out
}

// Postgres builds a postgres:// URL.
func Postgres(db config.DB) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:     "/" + db.Name,
		RawQuery: db.Extras,
	}

	return u.String()
}

// SQLite returns the database file path with extras appended as query.
func SQLite(db config.DB) string {
	if db.Extras == "" {
		return db.Path
	}

	sep := "?"
	if strings.Contains(db.Path, "?") {
		sep = "&"
	}

	return db.Path + sep + db.Extras
}

// Dialector returns the gorm dialector of the configured driver.
func Dialector(db config.DB) (gorm.Dialector, error) {
	switch db.Driver {
	case "", config.DriverSQLite:
		return sqlite.Open(SQLite(db)), nil
	case config.DriverMySQL:
		return mysql.Open(MySQL(db)), nil
	case config.DriverPostgres:
		return postgres.Open(Postgres(db)), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedDBDriver, db.Driver)
	}
}
