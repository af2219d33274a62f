package chi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kailas-cloud/catalogsearch/internal/domain"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/filter"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/request"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/sortkey"
)

// Pagination bounds applied to GET /search.
type Pagination struct {
	DefaultPageSize int
	MaxPageSize     int
}

// searchRequestFromQuery builds a validated request from URL parameters.
// Categorical filters are repeated parameters (vendor=a&vendor=b).
// Without min_price/max_price no price constraint applies.
func searchRequestFromQuery(q url.Values, p Pagination) (request.Request, error) {
	priceRange := filter.Unbounded
	if v := q.Get("min_price"); v != "" {
		f, err := parseFloat("min_price", v)
		if err != nil {
			return request.Request{}, err
		}
		priceRange.Min = f
	}
	if v := q.Get("max_price"); v != "" {
		f, err := parseFloat("max_price", v)
		if err != nil {
			return request.Request{}, err
		}
		priceRange.Max = f
	}

	filters, err := filter.New(q["vendor"], q["category"], q["tag"], q["status"], priceRange)
	if err != nil {
		return request.Request{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}

	page, err := parseInt("page", q.Get("page"), 1)
	if err != nil {
		return request.Request{}, err
	}
	pageSize, err := parseInt("page_size", q.Get("page_size"), p.DefaultPageSize)
	if err != nil {
		return request.Request{}, err
	}
	if p.MaxPageSize > 0 && pageSize > p.MaxPageSize {
		pageSize = p.MaxPageSize
	}

	req, err := request.New(q.Get("q"), filters, sortkey.Key(q.Get("sort")), page, pageSize)
	if err != nil {
		return request.Request{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	return req, nil
}

func parseFloat(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidRequest, name)
	}
	return f, nil
}

func parseInt(name, v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidRequest, name)
	}
	return n, nil
}
