package filter

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/kailas-cloud/catalogsearch/internal/domain/product"
)

// MaxValuesPerDimension is the maximum number of values per categorical dimension.
const MaxValuesPerDimension = 64

// PriceRange is an inclusive [Min, Max] price interval.
type PriceRange struct {
	Min float64
	Max float64
}

// Unbounded admits every resolvable price.
var Unbounded = PriceRange{Min: 0, Max: math.MaxFloat64}

// NewPriceRange validates and creates a PriceRange.
func NewPriceRange(lo, hi float64) (PriceRange, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return PriceRange{}, fmt.Errorf("price range bounds must be numbers")
	}
	if lo > hi {
		return PriceRange{}, fmt.Errorf("price range min %g exceeds max %g", lo, hi)
	}
	return PriceRange{Min: lo, Max: hi}, nil
}

// Contains reports whether price lies within the range (inclusive).
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// Filters is a conjunctive predicate over products.
// An empty categorical set imposes no constraint.
type Filters struct {
	vendors    []string
	categories []string
	tags       []string
	statuses   []string
	priceRange PriceRange
}

// New validates and creates Filters.
func New(vendors, categories, tags, statuses []string, priceRange PriceRange) (Filters, error) {
	dims := map[string][]string{
		"vendor": vendors, "category": categories, "tag": tags, "status": statuses,
	}
	for name, values := range dims {
		if len(values) > MaxValuesPerDimension {
			return Filters{}, fmt.Errorf("too many %s values (max %d)", name, MaxValuesPerDimension)
		}
	}
	if _, err := NewPriceRange(priceRange.Min, priceRange.Max); err != nil {
		return Filters{}, err
	}
	return Filters{
		vendors:    compact(vendors),
		categories: compact(categories),
		tags:       foldAll(compact(tags)),
		statuses:   compact(statuses),
		priceRange: priceRange,
	}, nil
}

// Unconstrained returns Filters with no categorical constraint and the given price range.
func Unconstrained(priceRange PriceRange) Filters {
	return Filters{priceRange: priceRange}
}

// Vendors returns the accepted vendors.
func (f Filters) Vendors() []string { return f.vendors }

// Categories returns the accepted categories.
func (f Filters) Categories() []string { return f.categories }

// Tags returns the accepted tags, case-folded.
func (f Filters) Tags() []string { return f.tags }

// Statuses returns the accepted statuses.
func (f Filters) Statuses() []string { return f.statuses }

// PriceRange returns the inclusive price range.
func (f Filters) PriceRange() PriceRange { return f.priceRange }

// HasCategorical reports whether any categorical dimension is constrained.
func (f Filters) HasCategorical() bool {
	return len(f.vendors) > 0 || len(f.categories) > 0 || len(f.tags) > 0 || len(f.statuses) > 0
}

// Matches reports whether p passes every active dimension.
func (f Filters) Matches(p *product.Product) bool {
	if len(f.vendors) > 0 && !slices.Contains(f.vendors, p.Vendor()) {
		return false
	}
	if len(f.categories) > 0 && !slices.Contains(f.categories, p.Category()) {
		return false
	}
	if len(f.statuses) > 0 && !slices.Contains(f.statuses, p.Status()) {
		return false
	}
	if len(f.tags) > 0 && !f.matchesTags(p.Tags()) {
		return false
	}
	return f.priceRange.Contains(p.Price())
}

// matchesTags applies the bidirectional substring policy: a filter tag t
// matches a record token k when k contains t or t contains k.
func (f Filters) matchesTags(tokens []string) bool {
	folder := cases.Fold()
	for _, raw := range tokens {
		k := folder.String(raw)
		for _, t := range f.tags {
			if strings.Contains(k, t) || strings.Contains(t, k) {
				return true
			}
		}
	}
	return false
}

func compact(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func foldAll(values []string) []string {
	folder := cases.Fold()
	for i, v := range values {
		values[i] = folder.String(v)
	}
	return values
}
