package chi

import (
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/facet"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/result"
)

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

// Error codes returned in ErrorResponse.Code.
const (
	ErrorCodeBadRequest         ErrorCode = "bad_request"
	ErrorCodeUnauthorized       ErrorCode = "unauthorized"
	ErrorCodeCatalogUnavailable ErrorCode = "catalog_unavailable"
	ErrorCodeNoRecords          ErrorCode = "no_records"
	ErrorCodeMalformedCatalog   ErrorCode = "malformed_catalog"
	ErrorCodeInternalError      ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ProductResponse is one product in a result page.
type ProductResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Vendor      string   `json:"vendor,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency,omitempty"`
	Image       string   `json:"image,omitempty"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Status      string   `json:"status,omitempty"`
	URL         string   `json:"url,omitempty"`
	Score       float64  `json:"score"`
}

// SearchResponse is the body of GET /search.
type SearchResponse struct {
	Items      []ProductResponse `json:"items"`
	Query      string            `json:"query"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
	HasMore    bool              `json:"has_more"`
	Fallback   bool              `json:"fallback"`
}

// PriceRangeResponse is an inclusive price interval.
type PriceRangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FacetsResponse is the body of GET /facets.
type FacetsResponse struct {
	Vendors    []string           `json:"vendors"`
	Categories []string           `json:"categories"`
	Tags       []string           `json:"tags"`
	Statuses   []string           `json:"statuses"`
	PriceRange PriceRangeResponse `json:"price_range"`
}

// ReloadResponse is the body of POST /catalog/reload.
type ReloadResponse struct {
	Products int `json:"products"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

func pageToResponse(query string, p result.Page) SearchResponse {
	items := make([]ProductResponse, len(p.Items))
	for i := range p.Items {
		items[i] = hitToResponse(&p.Items[i])
	}
	return SearchResponse{
		Items:      items,
		Query:      query,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages(),
		HasMore:    p.HasMore,
		Fallback:   p.Fallback,
	}
}

func hitToResponse(h *result.Hit) ProductResponse {
	p := h.Product()
	tags := p.Tags()
	if tags == nil {
		tags = []string{}
	}
	return ProductResponse{
		ID:          p.ID(),
		Title:       p.Title(),
		Vendor:      p.Vendor(),
		Category:    p.Category(),
		Tags:        tags,
		Description: p.Description(),
		Price:       p.Price(),
		Currency:    p.Currency(),
		Image:       p.Image(),
		Rating:      p.Rating(),
		ReviewCount: p.ReviewCount(),
		Status:      p.Status(),
		URL:         p.URL(),
		Score:       h.Score(),
	}
}

func facetsToResponse(o facet.Options) FacetsResponse {
	return FacetsResponse{
		Vendors:    nonNil(o.Vendors),
		Categories: nonNil(o.Categories),
		Tags:       nonNil(o.Tags),
		Statuses:   nonNil(o.Statuses),
		PriceRange: PriceRangeResponse{Min: o.PriceRange.Min, Max: o.PriceRange.Max},
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
