package search

import (
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/filter"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/result"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/sortkey"
)

// Query is the full input of one pipeline run.
type Query struct {
	Text     string
	Filters  filter.Filters
	SortKey  sortkey.Key
	Page     int
	PageSize int
}

// Run executes match -> filter -> sort -> paginate over idx.
// It is pure: identical inputs always produce identical pages.
func Run(idx *Index, q Query) result.Page {
	matches := idx.Search(q.Text)
	filtered := ApplyFilters(matches.Hits, q.Filters)
	sorted := SortHits(filtered, q.SortKey)

	page := Paginate(sorted, q.Page, q.PageSize)
	page.Fallback = matches.Fallback
	return page
}
