package search

import (
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/request"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/result"
)

// Paginate slices hits[(page-1)*pageSize : page*pageSize], clamped to the
// sequence. A page past the end yields no items. page < 1 is treated as 1
// and pageSize <= 0 as request.DefaultPageSize.
func Paginate(hits []result.Hit, page, pageSize int) result.Page {
	if pageSize <= 0 {
		pageSize = request.DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(hits)
	start := total
	if page-1 <= total/pageSize {
		start = min((page-1)*pageSize, total)
	}
	end := min(start+pageSize, total)

	items := make([]result.Hit, end-start)
	copy(items, hits[start:end])

	return result.Page{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  start+pageSize < total,
	}
}
