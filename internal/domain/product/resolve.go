package product

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ResolvePrice extracts a price from a semi-structured value.
//
// Accepted shapes: a decoded price-range object carrying
// min_variant_price.amount (string or number), a plain number, or a numeric
// string. Anything else, a parse failure or a value <= 0 resolves to 0.
func ResolvePrice(v any) float64 {
	if m, ok := v.(map[string]any); ok {
		mvp, ok := m["min_variant_price"].(map[string]any)
		if !ok {
			return 0
		}
		v = mvp["amount"]
	}
	price, ok := parseNumber(v)
	if !ok || price <= 0 {
		return 0
	}
	return price
}

// ResolveRating extracts an average rating from a semi-structured value.
//
// Accepted shapes: an object carrying "value" (string or number), a plain
// number, or a numeric string. Failures and negatives resolve to 0.
func ResolveRating(v any) float64 {
	if m, ok := v.(map[string]any); ok {
		v = m["value"]
	}
	rating, ok := parseNumber(v)
	if !ok || rating < 0 {
		return 0
	}
	return rating
}

func parseNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
