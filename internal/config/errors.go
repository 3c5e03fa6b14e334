package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnsupportedDBDriver error if config db.driver is not sqlite, mysql or postgres.
	ErrUnsupportedDBDriver = errors.New("toml config db.driver must be sqlite, mysql or postgres")

	// ErrEmptyContactEmail error if config contact.email is empty.
	ErrEmptyContactEmail = errors.New("toml config contact.email can not be empty")

	// ErrInvalidStreamTimezone error if config stream.timezone can not be loaded.
	ErrInvalidStreamTimezone = errors.New("toml config stream.timezone is not a valid IANA zone")
)
