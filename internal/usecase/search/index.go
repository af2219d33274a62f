package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/kailas-cloud/catalogsearch/internal/domain/product"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/result"
)

// field identifies a searchable product attribute.
type field int

const (
	fieldTitle field = iota
	fieldTags
	fieldDescription
	fieldVendor
	fieldCount
)

// fieldWeights sum to 1.
var fieldWeights = [fieldCount]float64{
	fieldTitle:       0.40,
	fieldTags:        0.30,
	fieldDescription: 0.20,
	fieldVendor:      0.10,
}

// indexedDoc holds the case-folded text of one product.
type indexedDoc struct {
	fields   [fieldCount][]rune
	category string

	// Folded strings for the substring fallback.
	title, tags, vendor string
}

// Index is a read-only match index over a record universe.
// It is safe for concurrent readers once built.
type Index struct {
	products []product.Product
	docs     []indexedDoc
}

// NewIndex builds an index over products. The slice is not copied and must
// not be mutated afterwards.
func NewIndex(products []product.Product) *Index {
	folder := cases.Fold()
	docs := make([]indexedDoc, len(products))
	for i := range products {
		p := &products[i]
		d := indexedDoc{
			title:    folder.String(p.Title()),
			tags:     folder.String(p.TagText()),
			vendor:   folder.String(p.Vendor()),
			category: folder.String(p.Category()),
		}
		d.fields[fieldTitle] = []rune(d.title)
		d.fields[fieldTags] = []rune(d.tags)
		d.fields[fieldDescription] = []rune(folder.String(p.Description()))
		d.fields[fieldVendor] = []rune(d.vendor)
		docs[i] = d
	}
	return &Index{products: products, docs: docs}
}

// Len returns the number of indexed products.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.products)
}

// Products returns the indexed record universe in index order.
func (idx *Index) Products() []product.Product {
	if idx == nil {
		return nil
	}
	return idx.products
}

// all returns every product in index order, unscored.
func (idx *Index) all() []result.Hit {
	hits := make([]result.Hit, len(idx.products))
	for i := range idx.products {
		hits[i] = result.New(idx.products[i], result.NoScore)
	}
	return hits
}

// contains returns products whose title, tags, vendor or category contain
// the folded query, in index order.
func (idx *Index) contains(folded string) []result.Hit {
	var hits []result.Hit
	for i := range idx.docs {
		d := &idx.docs[i]
		if strings.Contains(d.title, folded) || strings.Contains(d.tags, folded) ||
			strings.Contains(d.vendor, folded) || strings.Contains(d.category, folded) {
			hits = append(hits, result.New(idx.products[i], result.NoScore))
		}
	}
	return hits
}
