package result

import "github.com/kailas-cloud/catalogsearch/internal/domain/product"

// NoScore marks a hit produced without fuzzy scoring (empty query or fallback).
const NoScore = 1.0

// Hit is a single matched product with its relevance score.
// Lower scores are stronger matches; 0 is an exact hit.
type Hit struct {
	product product.Product
	score   float64
}

// New creates a search hit.
func New(p product.Product, score float64) Hit {
	return Hit{product: p, score: score}
}

// Product returns the matched product.
func (h *Hit) Product() *product.Product { return &h.product }

// Score returns the relevance distance in [0, 1].
func (h *Hit) Score() float64 { return h.score }

// Page is one slice of an ordered result set plus pagination metadata.
type Page struct {
	Items    []Hit
	Total    int
	Page     int
	PageSize int
	HasMore  bool
	// Fallback reports that the substring fallback produced the matched set.
	Fallback bool
}

// TotalPages returns ceil(Total / PageSize).
func (p Page) TotalPages() int {
	if p.PageSize <= 0 || p.Total == 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}
