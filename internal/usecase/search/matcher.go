package search

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/kailas-cloud/catalogsearch/internal/domain/search/result"
)

// Matching parameters.
const (
	// Threshold is the largest per-field distance still counted as a match.
	Threshold = 0.35
	// MinMatchLength is the minimum rune length of a query or field for fuzzy matching.
	MinMatchLength = 2
)

// Matches is the output of a single search over the index.
type Matches struct {
	Hits []result.Hit
	// Fallback is set when fuzzy matching found nothing and hits come from
	// plain substring containment.
	Fallback bool
}

// Search matches query against the index.
//
// An empty or whitespace-only query returns every product in index order.
// Otherwise each product is scored per field as distance/len(query) and the
// weighted mean over fields is its relevance (lower is better); fields beyond
// Threshold count as 1. Products with no field within Threshold are dropped.
// When nothing matches, products containing the query in title, tags, vendor
// or category are returned unranked.
func (idx *Index) Search(query string) Matches {
	if idx == nil {
		return Matches{}
	}
	q := strings.TrimSpace(query)
	if q == "" {
		return Matches{Hits: idx.all()}
	}

	folded := cases.Fold().String(q)
	if hits := idx.fuzzy([]rune(folded)); len(hits) > 0 {
		return Matches{Hits: hits}
	}
	return Matches{Hits: idx.contains(folded), Fallback: true}
}

func (idx *Index) fuzzy(pattern []rune) []result.Hit {
	if len(pattern) < MinMatchLength {
		return nil
	}

	type scored struct {
		pos   int
		score float64
	}
	var matched []scored
	for i := range idx.docs {
		if score, ok := scoreDoc(&idx.docs[i], pattern); ok {
			matched = append(matched, scored{pos: i, score: score})
		}
	}

	slices.SortStableFunc(matched, func(a, b scored) int {
		return cmp.Compare(a.score, b.score)
	})

	hits := make([]result.Hit, len(matched))
	for i, m := range matched {
		hits[i] = result.New(idx.products[m.pos], m.score)
	}
	return hits
}

// scoreDoc returns the weighted relevance of d and whether any field matched.
func scoreDoc(d *indexedDoc, pattern []rune) (float64, bool) {
	var total, weights float64
	matched := false
	for f := field(0); f < fieldCount; f++ {
		s := fieldScore(d.fields[f], pattern)
		if s <= Threshold {
			matched = true
		} else {
			s = 1
		}
		total += fieldWeights[f] * s
		weights += fieldWeights[f]
	}
	return total / weights, matched
}

// fieldScore returns the normalized distance of pattern within text, or 1
// when text is too short to be considered.
func fieldScore(text, pattern []rune) float64 {
	if len(text) < MinMatchLength {
		return 1
	}
	return float64(substringDistance(pattern, text)) / float64(len(pattern))
}
