package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/catalogsearch/internal/domain/product"
)

// DefaultTTL is how long a loaded catalog is served before it is reloaded.
const DefaultTTL = 5 * time.Minute

// MaxRetryBackoff caps the wait between reload attempts after a failure.
const MaxRetryBackoff = 10 * time.Second

// Cache holds the normalized catalog for a bounded time.
//
// An expired or invalidated entry is reloaded on the next GetOrReload.
// When a reload fails and a previous snapshot exists, the stale snapshot is
// served and the reload is retried once min(ttl, MaxRetryBackoff) has passed.
type Cache struct {
	source     Source
	ttl        time.Duration
	now        func() time.Time
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger

	mu         sync.Mutex
	snap       product.Snapshot
	loaded     bool
	fresh      bool
	generation uint64
	failedAt   time.Time
	failing    bool
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithClock overrides the time source.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

// WithCounter sets a counter vec with label "result"
// ("hit"/"miss"/"reload"/"stale"/"error").
func WithCounter(cv *prometheus.CounterVec) CacheOption {
	return func(c *Cache) { c.cacheTotal = cv }
}

// NewCache creates a TTL cache over source. ttl <= 0 uses DefaultTTL.
func NewCache(source Source, ttl time.Duration, logger *zap.Logger, opts ...CacheOption) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Cache{source: source, ttl: ttl, now: time.Now, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrReload returns the cached snapshot, reloading it when expired or invalidated.
func (c *Cache) GetOrReload(ctx context.Context) (product.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded && c.fresh && c.now().Sub(c.snap.LoadedAt) < c.ttl {
		c.inc("hit")
		return c.snap, nil
	}
	if c.loaded && c.failing && c.now().Sub(c.failedAt) < c.retryBackoff() {
		c.inc("stale")
		return c.snap, nil
	}
	c.inc("miss")

	products, report, err := c.load(ctx)
	if err != nil {
		if c.loaded {
			c.failing = true
			c.failedAt = c.now()
			c.inc("stale")
			c.logger.Warn("Catalog reload failed, serving stale snapshot",
				zap.Uint64("generation", c.snap.Generation),
				zap.Error(err),
			)
			return c.snap, nil
		}
		c.inc("error")
		return product.Snapshot{}, err
	}

	return c.storeLocked(products, report), nil
}

// Reload loads the catalog from the source immediately. Unlike GetOrReload it
// reports a failed load even when a stale snapshot is still being served.
func (c *Cache) Reload(ctx context.Context) (product.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, report, err := c.load(ctx)
	if err != nil {
		c.inc("error")
		return product.Snapshot{}, err
	}
	return c.storeLocked(products, report), nil
}

// Invalidate forces the next GetOrReload to reload from the source,
// skipping any pending retry backoff.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.fresh = false
	c.failing = false
	c.mu.Unlock()
}

func (c *Cache) retryBackoff() time.Duration {
	return min(c.ttl, MaxRetryBackoff)
}

func (c *Cache) load(ctx context.Context) ([]product.Product, Report, error) {
	data, err := c.source.Load(ctx)
	if err != nil {
		return nil, Report{}, err
	}
	products, report, err := Normalize(data)
	if err != nil {
		return nil, report, fmt.Errorf("normalize catalog: %w", err)
	}
	return products, report, nil
}

func (c *Cache) storeLocked(products []product.Product, report Report) product.Snapshot {
	c.generation++
	c.snap = product.Snapshot{
		Products:   products,
		Generation: c.generation,
		LoadedAt:   c.now(),
	}
	c.loaded = true
	c.fresh = true
	c.failing = false
	c.inc("reload")

	c.logger.Info("Catalog loaded",
		zap.Uint64("generation", c.generation),
		zap.Int("records", report.Total),
		zap.Int("kept", report.Kept),
		zap.Int("skipped", report.Skipped),
	)
	return c.snap
}

func (c *Cache) inc(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}
