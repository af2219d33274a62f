// Package catalogsearch is an in-process fuzzy search engine over a product
// catalog: approximate title/tag/description/vendor matching, conjunctive
// filters, ordering and pagination, driven by a stateful Session.
package catalogsearch

import (
	"github.com/kailas-cloud/catalogsearch/internal/domain/product"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/facet"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/filter"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/result"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/sortkey"
)

// Product is a canonical catalog record.
// Price and Rating of 0 mean "unknown".
type Product struct {
	ID          string
	Title       string
	Vendor      string
	Category    string
	Tags        []string
	Description string
	Price       float64
	Currency    string
	Image       string
	Rating      float64
	ReviewCount int
	Status      string
	URL         string
}

// SortKey orders a result set.
type SortKey string

// Supported sort keys.
const (
	SortRelevance    SortKey = SortKey(sortkey.Relevance)
	SortPriceLow     SortKey = SortKey(sortkey.PriceLow)
	SortPriceHigh    SortKey = SortKey(sortkey.PriceHigh)
	SortAlphabetical SortKey = SortKey(sortkey.Alphabetical)
	SortRating       SortKey = SortKey(sortkey.Rating)
)

// PriceRange is an inclusive price interval.
type PriceRange struct {
	Min float64
	Max float64
}

// Filters restricts a result set. Empty lists impose no constraint;
// non-empty lists are ORed within and ANDed across dimensions.
// A zero PriceRange means the full observed price range of the session.
type Filters struct {
	Vendors    []string
	Categories []string
	Tags       []string
	Statuses   []string
	PriceRange PriceRange
}

// FilterOptions lists the filterable values of the record universe.
type FilterOptions struct {
	Vendors    []string
	Categories []string
	Tags       []string
	Statuses   []string
	PriceRange PriceRange
}

// Hit is a product in a result page. Lower scores are stronger matches.
type Hit struct {
	Product Product
	Score   float64
}

// Page is one slice of an ordered result set.
type Page struct {
	Items      []Hit
	Total      int
	Page       int
	PageSize   int
	TotalPages int
	HasMore    bool
	Fallback   bool
}

func toInternalProducts(in []Product) ([]product.Product, error) {
	out := make([]product.Product, 0, len(in))
	for i := range in {
		p, err := product.New(product.Fields(in[i]))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func fromInternalProduct(p *product.Product) Product {
	return Product{
		ID:          p.ID(),
		Title:       p.Title(),
		Vendor:      p.Vendor(),
		Category:    p.Category(),
		Tags:        append([]string(nil), p.Tags()...),
		Description: p.Description(),
		Price:       p.Price(),
		Currency:    p.Currency(),
		Image:       p.Image(),
		Rating:      p.Rating(),
		ReviewCount: p.ReviewCount(),
		Status:      p.Status(),
		URL:         p.URL(),
	}
}

func fromInternalProducts(in []product.Product) []Product {
	out := make([]Product, len(in))
	for i := range in {
		out[i] = fromInternalProduct(&in[i])
	}
	return out
}

func toInternalFilters(f Filters) (filter.Filters, error) {
	return filter.New(f.Vendors, f.Categories, f.Tags, f.Statuses,
		filter.PriceRange{Min: f.PriceRange.Min, Max: f.PriceRange.Max})
}

func fromInternalFilters(f filter.Filters) Filters {
	return Filters{
		Vendors:    f.Vendors(),
		Categories: f.Categories(),
		Tags:       f.Tags(),
		Statuses:   f.Statuses(),
		PriceRange: PriceRange(f.PriceRange()),
	}
}

func fromInternalFacets(o facet.Options) FilterOptions {
	return FilterOptions{
		Vendors:    o.Vendors,
		Categories: o.Categories,
		Tags:       o.Tags,
		Statuses:   o.Statuses,
		PriceRange: PriceRange(o.PriceRange),
	}
}

func fromInternalPage(p result.Page) Page {
	items := make([]Hit, len(p.Items))
	for i := range p.Items {
		h := &p.Items[i]
		items[i] = Hit{Product: fromInternalProduct(h.Product()), Score: h.Score()}
	}
	return Page{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages(),
		HasMore:    p.HasMore,
		Fallback:   p.Fallback,
	}
}
