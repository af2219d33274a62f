package catalogsearch

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/catalogsearch/internal/domain/search/sortkey"
	"github.com/kailas-cloud/catalogsearch/internal/usecase/session"
)

// Clock schedules debounce commits. Tests can supply a manual clock.
type Clock = session.Clock

// Timer is a pending commit returned by Clock.
type Timer = session.Timer

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	opts []session.Option
}

// WithDebounce sets the quiet period before typed input is committed.
func WithDebounce(d time.Duration) Option {
	return func(c *sessionConfig) { c.opts = append(c.opts, session.WithDebounce(d)) }
}

// WithPageSize sets the number of hits per page (default 20).
func WithPageSize(n int) Option {
	return func(c *sessionConfig) { c.opts = append(c.opts, session.WithPageSize(n)) }
}

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *sessionConfig) { c.opts = append(c.opts, session.WithLogger(l)) }
}

// WithClock replaces the clock driving the debounce.
func WithClock(clk Clock) Option {
	return func(c *sessionConfig) { c.opts = append(c.opts, session.WithClock(clk)) }
}

// Session is the stateful search controller behind a search page.
// It is safe for concurrent use.
type Session struct {
	ctrl *session.Controller
}

// NewSession creates a session over products with an empty query, the full
// observed price range, relevance order and page 1.
func NewSession(products []Product, opts ...Option) (*Session, error) {
	internal, err := toInternalProducts(products)
	if err != nil {
		return nil, fmt.Errorf("catalogsearch: %w", err)
	}
	var cfg sessionConfig
	for _, o := range opts {
		o(&cfg)
	}
	return &Session{ctrl: session.New(internal, cfg.opts...)}, nil
}

// SetRecords replaces the record universe. Facets are rebuilt and the page returns to 1.
func (s *Session) SetRecords(products []Product) error {
	internal, err := toInternalProducts(products)
	if err != nil {
		return fmt.Errorf("catalogsearch: %w", err)
	}
	s.ctrl.SetRecords(internal)
	return nil
}

// TypeQuery records keystroke input; it is committed after the debounce delay.
func (s *Session) TypeQuery(q string) { s.ctrl.TypeQuery(q) }

// FlushQuery commits pending typed input now. It reports whether any was pending.
func (s *Session) FlushQuery() bool { return s.ctrl.FlushQuery() }

// SetQuery commits q immediately and returns to page 1.
func (s *Session) SetQuery(q string) { s.ctrl.SetQuery(q) }

// SetFilters replaces the filters and returns to page 1.
// A zero PriceRange keeps price at the full observed range.
func (s *Session) SetFilters(f Filters) error {
	if f.PriceRange == (PriceRange{}) {
		if err := s.ctrl.SetCategoricalFilters(f.Vendors, f.Categories, f.Tags, f.Statuses); err != nil {
			return fmt.Errorf("catalogsearch: %w", err)
		}
		return nil
	}
	internal, err := toInternalFilters(f)
	if err != nil {
		return fmt.Errorf("catalogsearch: %w", err)
	}
	s.ctrl.SetFilters(internal)
	return nil
}

// ClearFilters removes every filter constraint and returns to page 1.
func (s *Session) ClearFilters() { s.ctrl.ClearFilters() }

// SetSortKey changes the ordering. The current page is kept.
// Unknown keys return an error and leave the ordering unchanged.
func (s *Session) SetSortKey(k SortKey) error {
	if err := s.ctrl.SetSortKey(sortkey.Key(k)); err != nil {
		return fmt.Errorf("catalogsearch: %w", err)
	}
	return nil
}

// SetCurrentPage moves to page p (1-based).
func (s *Session) SetCurrentPage(p int) { s.ctrl.SetCurrentPage(p) }

// Results returns the current page.
func (s *Session) Results() Page { return fromInternalPage(s.ctrl.Results()) }

// FilterOptions returns the facets of the record universe.
func (s *Session) FilterOptions() FilterOptions { return fromInternalFacets(s.ctrl.FilterOptions()) }

// HasActiveFilters reports whether any filter narrows the universe.
func (s *Session) HasActiveFilters() bool { return s.ctrl.HasActiveFilters() }

// Filters returns the active filters.
func (s *Session) Filters() Filters { return fromInternalFilters(s.ctrl.Filters()) }

// Query returns the committed query.
func (s *Session) Query() string { return s.ctrl.Query() }

// Draft returns the latest typed input.
func (s *Session) Draft() string { return s.ctrl.Draft() }

// SortKey returns the active ordering.
func (s *Session) SortKey() SortKey { return SortKey(s.ctrl.SortKey()) }

// CurrentPage returns the current page number.
func (s *Session) CurrentPage() int { return s.ctrl.CurrentPage() }

// Close cancels pending typed input.
func (s *Session) Close() { s.ctrl.Close() }
