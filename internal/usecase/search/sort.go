package search

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kailas-cloud/catalogsearch/internal/domain/search/result"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/sortkey"
)

// SortHits returns a new slice ordered by key. The sort is stable and the
// input is never mutated. Relevance (and any unknown key) keeps input order.
func SortHits(hits []result.Hit, key sortkey.Key) []result.Hit {
	out := slices.Clone(hits)

	switch key {
	case sortkey.PriceLow:
		slices.SortStableFunc(out, func(a, b result.Hit) int {
			return cmp.Compare(a.Product().Price(), b.Product().Price())
		})
	case sortkey.PriceHigh:
		slices.SortStableFunc(out, func(a, b result.Hit) int {
			return cmp.Compare(b.Product().Price(), a.Product().Price())
		})
	case sortkey.Alphabetical:
		// Collators keep internal buffers; one per call.
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b result.Hit) int {
			return col.CompareString(a.Product().Title(), b.Product().Title())
		})
	case sortkey.Rating:
		slices.SortStableFunc(out, func(a, b result.Hit) int {
			return cmp.Compare(b.Product().Rating(), a.Product().Rating())
		})
	}

	return out
}
