package pricefeed

import "errors"

var (
	// ErrUnavailable is returned when no prices could be loaded.
	ErrUnavailable = errors.New("prices unavailable")

	// ErrDisabled is returned when the price feed is switched off in the config.
	ErrDisabled = errors.New("price feed disabled")

	// ErrNilCache is returned by New without a cache storage.
	ErrNilCache = errors.New("price cache storage is nil")
)
