package search

import (
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/filter"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/result"
)

// ApplyFilters keeps the hits whose product passes f, preserving order.
func ApplyFilters(hits []result.Hit, f filter.Filters) []result.Hit {
	out := make([]result.Hit, 0, len(hits))
	for i := range hits {
		if f.Matches(hits[i].Product()) {
			out = append(out, hits[i])
		}
	}
	return out
}
