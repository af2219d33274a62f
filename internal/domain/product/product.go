package product

import (
	"fmt"
	"math"
	"strings"
)

// Product is the canonical catalog record (immutable value object).
type Product struct {
	id          string
	title       string
	vendor      string
	category    string
	tags        []string
	description string
	price       float64
	currency    string
	image       string
	rating      float64
	reviewCount int
	status      string
	url         string
}

// Fields holds the raw attributes used to build a Product.
type Fields struct {
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

// New validates and creates a Product.
// Title must be non-empty after trimming. Numeric fields are sanitized:
// NaN, Inf and negatives become 0.
func New(f Fields) (Product, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return Product{}, fmt.Errorf("product %q: title is required", f.ID)
	}
	if f.ID == "" {
		return Product{}, fmt.Errorf("product %q: id is required", title)
	}
	p := Reconstruct(f)
	p.title = title
	return p, nil
}

// Reconstruct creates a Product without validation (test fixtures, trusted sources).
func Reconstruct(f Fields) Product {
	reviews := f.ReviewCount
	if reviews < 0 {
		reviews = 0
	}
	return Product{
		id:          f.ID,
		title:       f.Title,
		vendor:      f.Vendor,
		category:    f.Category,
		tags:        cloneTags(f.Tags),
		description: f.Description,
		price:       nonNegative(f.Price),
		currency:    f.Currency,
		image:       f.Image,
		rating:      nonNegative(f.Rating),
		reviewCount: reviews,
		status:      f.Status,
		url:         f.URL,
	}
}

// ID returns the record identifier.
func (p *Product) ID() string { return p.id }

// Title returns the product title.
func (p *Product) Title() string { return p.title }

// Vendor returns the vendor name.
func (p *Product) Vendor() string { return p.vendor }

// Category returns the product category.
func (p *Product) Category() string { return p.category }

// Tags returns the tag tokens.
func (p *Product) Tags() []string { return p.tags }

// TagText returns the tags joined with ", ".
func (p *Product) TagText() string { return strings.Join(p.tags, ", ") }

// Description returns the description text (markup is kept as-is).
func (p *Product) Description() string { return p.description }

// Price returns the resolved price, 0 when unknown.
func (p *Product) Price() float64 { return p.price }

// Currency returns the ISO currency code of the price.
func (p *Product) Currency() string { return p.currency }

// Image returns the image URL.
func (p *Product) Image() string { return p.image }

// Rating returns the resolved average rating, 0 when unknown.
func (p *Product) Rating() float64 { return p.rating }

// ReviewCount returns the number of reviews.
func (p *Product) ReviewCount() int { return p.reviewCount }

// Status returns the publication status (e.g. "active", "draft").
func (p *Product) Status() string { return p.status }

// URL returns the storefront URL.
func (p *Product) URL() string { return p.url }

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func cloneTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
