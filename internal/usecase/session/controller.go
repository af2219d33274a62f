package session

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/catalogsearch/internal/domain/product"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/facet"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/filter"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/request"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/result"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/sortkey"
	"github.com/kailas-cloud/catalogsearch/internal/usecase/search"
)

// DefaultDebounce is the quiet period before a typed query is committed.
const DefaultDebounce = 300 * time.Millisecond

// Controller owns the query/filter/sort/page state of one search session and
// recomputes the result page on every transition.
//
// Changing the query or the filters returns to page 1. Changing the sort key
// or the page keeps everything else. Facets are derived from the record
// universe only and change only through SetRecords.
type Controller struct {
	mu sync.Mutex

	index  *search.Index
	facets facet.Options

	query    string
	draft    string
	filters  filter.Filters
	sortKey  sortkey.Key
	page     int
	pageSize int
	results  result.Page

	// typedSeq identifies the latest typed input; commits carrying an older
	// sequence lost a race with a newer TypeQuery or an explicit SetQuery.
	typedSeq uint64
	debounce *Debouncer[typedQuery]
	delay    time.Duration
	logger   *zap.Logger
}

type typedQuery struct {
	text string
	seq  uint64
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	clock    Clock
	delay    time.Duration
	pageSize int
	logger   *zap.Logger
}

// WithClock sets the clock driving the query debounce.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithDebounce sets the quiet period before a typed query is committed.
func WithDebounce(d time.Duration) Option {
	return func(o *options) { o.delay = d }
}

// WithPageSize sets the fixed page size of the session.
func WithPageSize(n int) Option {
	return func(o *options) { o.pageSize = n }
}

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a session over products with an empty query, no filter
// constraints, the full observed price range, relevance order and page 1.
func New(products []product.Product, opts ...Option) *Controller {
	o := options{
		clock:    SystemClock{},
		delay:    DefaultDebounce,
		pageSize: request.DefaultPageSize,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pageSize <= 0 {
		o.pageSize = request.DefaultPageSize
	}

	c := &Controller{
		sortKey:  sortkey.Relevance,
		page:     1,
		pageSize: o.pageSize,
		delay:    o.delay,
		logger:   o.logger,
	}
	c.debounce = NewDebouncer(o.clock, c.commitTyped)

	c.mu.Lock()
	c.loadLocked(products)
	c.filters = filter.Unconstrained(c.facets.PriceRange)
	c.recomputeLocked()
	c.mu.Unlock()
	return c
}

// SetRecords replaces the record universe. The index and facets are rebuilt,
// the price range is reset to the new observed bounds and the page to 1.
// Categorical filters are kept.
func (c *Controller) SetRecords(products []product.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loadLocked(products)
	f, err := filter.New(
		c.filters.Vendors(), c.filters.Categories(), c.filters.Tags(), c.filters.Statuses(),
		c.facets.PriceRange,
	)
	if err != nil {
		f = filter.Unconstrained(c.facets.PriceRange)
	}
	c.filters = f
	c.page = 1
	c.recomputeLocked()
	c.logger.Debug("session universe replaced", zap.Int("products", len(products)))
}

// TypeQuery records a raw keystroke value. The draft is visible at once;
// the query is committed after the debounce delay unless typing continues.
func (c *Controller) TypeQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft = q
	c.typedSeq++
	c.debounce.Schedule(typedQuery{text: q, seq: c.typedSeq}, c.delay)
}

// FlushQuery commits a pending typed query immediately.
func (c *Controller) FlushQuery() bool {
	return c.debounce.Flush()
}

// SetQuery commits q, cancelling any pending typed query, and returns to page 1.
func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.debounce.Cancel()
	c.typedSeq++
	c.commitLocked(q)
}

func (c *Controller) commitTyped(t typedQuery) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t.seq != c.typedSeq {
		return
	}
	c.commitLocked(t.text)
}

func (c *Controller) commitLocked(q string) {
	c.query = q
	c.draft = q
	c.page = 1
	c.recomputeLocked()
}

// SetFilters replaces the filters wholesale and returns to page 1.
func (c *Controller) SetFilters(f filter.Filters) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filters = f
	c.page = 1
	c.recomputeLocked()
}

// SetCategoricalFilters replaces the categorical filters, constrains price to
// the full observed range and returns to page 1.
func (c *Controller) SetCategoricalFilters(vendors, categories, tags, statuses []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := filter.New(vendors, categories, tags, statuses, c.facets.PriceRange)
	if err != nil {
		return err
	}
	c.filters = f
	c.page = 1
	c.recomputeLocked()
	return nil
}

// ClearFilters drops every categorical constraint, restores the full observed
// price range and returns to page 1.
func (c *Controller) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filters = filter.Unconstrained(c.facets.PriceRange)
	c.page = 1
	c.recomputeLocked()
}

// SetSortKey changes the ordering only. Unknown keys are rejected and leave
// the session unchanged.
func (c *Controller) SetSortKey(k sortkey.Key) error {
	if !k.IsValid() {
		return fmt.Errorf("invalid sort key: %q", k)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sortKey = k
	c.recomputeLocked()
	return nil
}

// SetCurrentPage moves to page p. Out-of-range pages yield an empty slice.
func (c *Controller) SetCurrentPage(p int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.page = p
	c.recomputeLocked()
}

// Results returns the current result page.
func (c *Controller) Results() result.Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results
}

// FilterOptions returns the facets of the record universe.
func (c *Controller) FilterOptions() facet.Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.facets
}

// HasActiveFilters reports whether any categorical filter is set or the
// price range differs from the full observed range.
func (c *Controller) HasActiveFilters() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters.HasCategorical() || c.filters.PriceRange() != c.facets.PriceRange
}

// Filters returns the active filters.
func (c *Controller) Filters() filter.Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// Query returns the committed query.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Draft returns the latest typed query, committed or not.
func (c *Controller) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// SortKey returns the active sort key.
func (c *Controller) SortKey() sortkey.Key {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sortKey
}

// CurrentPage returns the current 1-based page number.
func (c *Controller) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Close cancels any pending typed query.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.debounce.Cancel()
	c.typedSeq++
}

func (c *Controller) loadLocked(products []product.Product) {
	c.index = search.NewIndex(products)
	c.facets = facet.Compute(products)
}

func (c *Controller) recomputeLocked() {
	c.results = search.Run(c.index, search.Query{
		Text:     c.query,
		Filters:  c.filters,
		SortKey:  c.sortKey,
		Page:     c.page,
		PageSize: c.pageSize,
	})
}
