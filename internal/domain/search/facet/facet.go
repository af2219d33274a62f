package facet

import (
	"math"
	"slices"

	"github.com/kailas-cloud/catalogsearch/internal/domain/product"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/filter"
)

// DefaultPriceRange is reported when no product carries a positive price.
var DefaultPriceRange = filter.PriceRange{Min: 0, Max: 1000}

// Options lists the filterable values available in a record universe.
type Options struct {
	Vendors    []string
	Categories []string
	Tags       []string
	Statuses   []string
	PriceRange filter.PriceRange
}

// Compute derives facet options from the full record universe.
// Each list is deduplicated, sorted and stripped of empty values.
func Compute(products []product.Product) Options {
	var vendors, categories, tags, statuses []string
	for i := range products {
		p := &products[i]
		vendors = appendNonEmpty(vendors, p.Vendor())
		categories = appendNonEmpty(categories, p.Category())
		statuses = appendNonEmpty(statuses, p.Status())
		for _, t := range p.Tags() {
			tags = appendNonEmpty(tags, t)
		}
	}
	return Options{
		Vendors:    distinct(vendors),
		Categories: distinct(categories),
		Tags:       distinct(tags),
		Statuses:   distinct(statuses),
		PriceRange: PriceBounds(products),
	}
}

// PriceBounds returns [floor(min), ceil(max)] over positive prices.
func PriceBounds(products []product.Product) filter.PriceRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range products {
		price := products[i].Price()
		if price <= 0 {
			continue
		}
		lo = math.Min(lo, price)
		hi = math.Max(hi, price)
	}
	if math.IsInf(lo, 1) {
		return DefaultPriceRange
	}
	return filter.PriceRange{Min: math.Floor(lo), Max: math.Ceil(hi)}
}

func appendNonEmpty(dst []string, v string) []string {
	if v == "" {
		return dst
	}
	return append(dst, v)
}

func distinct(values []string) []string {
	slices.Sort(values)
	return slices.Compact(values)
}
