// Package pricefeed loads crypto prices from the CoinGecko simple price API
// and caches them for the price widget.
package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
)

const (
	simplePricePath = "/simple/price"
	cacheKeyPrefix  = "pricefeed:"
	maxBodySize     = 1 << 20
)

// Price is the quote of one coin.
type Price struct {
	Coin      string  `json:"coin"`
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Change24h float64 `json:"change24h"`
}

// Quote is one fetched set of prices.
type Quote struct {
	Currency  string    `json:"currency"`
	Prices    []Price   `json:"prices"`
	FetchedAt time.Time `json:"fetchedAt"`
	Cached    bool      `json:"cached"`
}

// Client fetches and caches prices. It is safe for concurrent use.
type Client struct {
	cfg   config.PriceFeed
	http  *http.Client
	cache fiber.Storage
	now   func() time.Time
	group singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New returns a Client for cfg caching into cache.
func New(cfg config.PriceFeed, cache fiber.Storage, opts ...Option) (*Client, error) {
	if cache == nil {
		return nil, ErrNilCache
	}

	c := &Client{
		cfg:   cfg,
		http:  &http.Client{},
		cache: cache,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Prices returns the configured coins, from the cache while it is fresh.
// Concurrent misses share one upstream request. Failures are not retried.
func (c *Client) Prices(ctx context.Context) (Quote, error) {
	if !c.cfg.Enabled {
		return Quote{}, ErrDisabled
	}

	key := c.cacheKey()

	if q, ok := c.cached(key); ok {
		countFetch(resultCached)
		return q, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		q, err := c.fetch(ctx)
		if err != nil {
			countFetch(resultError)
			return Quote{}, err
		}

		countFetch(resultFetched)
		c.store(key, q)

		return q, nil
	})
	if err != nil {
		return Quote{}, err
	}

	return v.(Quote), nil //nolint:forcetypeassert // only Quote is returned above
}

func (c *Client) cacheKey() string {
	return cacheKeyPrefix + strings.ToLower(c.cfg.Currency) + ":" + strings.Join(c.cfg.Coins, ",")
}

func (c *Client) cached(key string) (Quote, bool) {
	raw, err := c.cache.Get(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("price cache read failed")
		return Quote{}, false
	}

	if len(raw) == 0 {
		return Quote{}, false
	}

	var q Quote
	if err = json.Unmarshal(raw, &q); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("price cache entry broken")
		return Quote{}, false
	}

	q.Cached = true

	return q, true
}

func (c *Client) store(key string, q Quote) {
	raw, err := json.Marshal(q)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode prices")
		return
	}

	if err = c.cache.Set(key, raw, c.cfg.CacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("price cache write failed")
	}
}

func (c *Client) requestURL() (string, error) {
	u, err := url.Parse(strings.TrimRight(c.cfg.BaseURL, "/") + simplePricePath)
	if err != nil {
		return "", errors.Wrap(err, "invalid price feed base url")
	}

	q := url.Values{}
	q.Set("ids", strings.Join(c.cfg.Coins, ","))
	q.Set("vs_currencies", strings.ToLower(c.cfg.Currency))
	q.Set("include_24hr_change", "true")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (c *Client) fetch(ctx context.Context) (Quote, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	target, err := c.requestURL()
	if err != nil {
		return Quote{}, errors.Wrap(ErrUnavailable, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Quote{}, errors.Wrap(ErrUnavailable, err.Error())
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("url", target).Msg("price request failed")
		return Quote{}, errors.Wrap(ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

		log.Warn().Int("status", resp.StatusCode).Str("url", target).Msg("price request rejected")

		return Quote{}, errors.Wrap(ErrUnavailable, fmt.Sprintf("upstream status %d", resp.StatusCode))
	}

	var body map[string]map[string]float64
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return Quote{}, errors.Wrap(ErrUnavailable, "failed to decode prices: "+err.Error())
	}

	return c.quote(body)
}

// quote keeps the configured coin order and skips coins missing upstream.
func (c *Client) quote(body map[string]map[string]float64) (Quote, error) {
	currency := strings.ToLower(c.cfg.Currency)

	q := Quote{
		Currency:  currency,
		Prices:    make([]Price, 0, len(c.cfg.Coins)),
		FetchedAt: c.now().UTC(),
	}

	for _, coin := range c.cfg.Coins {
		values, ok := body[coin]
		if !ok {
			continue
		}

		price, ok := values[currency]
		if !ok {
			continue
		}

		symbol, name := Describe(coin)

		q.Prices = append(q.Prices, Price{
			Coin:      coin,
			Symbol:    symbol,
			Name:      name,
			Price:     price,
			Change24h: values[currency+"_24h_change"],
		})
	}

	if len(q.Prices) == 0 {
		return Quote{}, errors.Wrap(ErrUnavailable, "no configured coin in response")
	}

	return q, nil
}
