package request

import (
	"fmt"

	"github.com/kailas-cloud/catalogsearch/internal/domain/search/filter"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/sortkey"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength  = 256
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Request is a validated stateless search query.
type Request struct {
	query    string
	filters  filter.Filters
	sortKey  sortkey.Key
	page     int
	pageSize int
}

// New validates and normalizes search parameters.
// Defaults: sort=relevance, page=1, pageSize=20. An empty query lists everything.
func New(query string, filters filter.Filters, key sortkey.Key, page, pageSize int) (Request, error) {
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if key == "" {
		key = sortkey.Relevance
	}
	if !key.IsValid() {
		return Request{}, fmt.Errorf("invalid sort key: %q", key)
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return Request{
		query:    query,
		filters:  filters,
		sortKey:  key,
		page:     page,
		pageSize: pageSize,
	}, nil
}

// Query returns the search query text.
func (r *Request) Query() string { return r.query }

// Filters returns the filters.
func (r *Request) Filters() filter.Filters { return r.filters }

// SortKey returns the requested ordering.
func (r *Request) SortKey() sortkey.Key { return r.sortKey }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// PageSize returns the number of items per page.
func (r *Request) PageSize() int { return r.pageSize }
