package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kailas-cloud/catalogsearch/internal/domain"
	"github.com/kailas-cloud/catalogsearch/internal/domain/product"
)

// DefaultCurrency is assumed when a record carries a price without a currency.
const DefaultCurrency = "GBP"

// Tag prefixes and tokens that carry storefront plumbing rather than meaning.
var noiseTags = []string{"price:", "sub:", "otp:", "rc-member-healf-plus"}

// Report summarizes one normalization pass.
type Report struct {
	Total   int
	Kept    int
	Skipped int
}

// rawRecord is one decoded export object. Both the uppercase storefront
// export and the flattened lowercase schema are accepted.
type rawRecord map[string]any

// Normalize decodes a JSON array of raw export records into canonical
// products. Records without a usable title, export header rows and duplicate
// identifiers are skipped. Malformed numeric fields resolve to 0.
func Normalize(data []byte) ([]product.Product, Report, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, Report{}, fmt.Errorf("decode catalog array: %w: %w", domain.ErrMalformedCatalog, err)
	}

	report := Report{Total: len(items)}
	products := make([]product.Product, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for i, item := range items {
		rec, ok := decodeRecord(item)
		if !ok {
			report.Skipped++
			continue
		}
		p, ok := rec.toProduct(i)
		if !ok {
			report.Skipped++
			continue
		}
		if _, dup := seen[p.ID()]; dup {
			report.Skipped++
			continue
		}
		seen[p.ID()] = struct{}{}
		products = append(products, p)
	}

	report.Kept = len(products)
	if len(products) == 0 {
		return nil, report, fmt.Errorf("normalize %d records: %w", report.Total, domain.ErrNoRecords)
	}
	return products, report, nil
}

func decodeRecord(item json.RawMessage) (rawRecord, bool) {
	dec := json.NewDecoder(bytes.NewReader(item))
	dec.UseNumber()
	var rec rawRecord
	if err := dec.Decode(&rec); err != nil || rec == nil {
		return nil, false
	}
	return rec, true
}

func (r rawRecord) toProduct(pos int) (product.Product, bool) {
	title := strings.TrimSpace(r.str("TITLE", "title"))
	if skipTitle(title) {
		return product.Product{}, false
	}

	id := r.str("productId", "ID", "id", "_AIRBYTE_RAW_ID")
	if id == "" {
		id = "record-" + strconv.Itoa(pos)
	}

	price := r.price()
	currency := r.str("currency")
	if currency == "" {
		currency = r.priceCurrency()
	}
	if currency == "" && price > 0 {
		currency = DefaultCurrency
	}

	p, err := product.New(product.Fields{
		ID:          id,
		Title:       title,
		Vendor:      strings.TrimSpace(r.str("VENDOR", "vendor")),
		Category:    strings.TrimSpace(r.str("PRODUCT_TYPE", "category", "productType")),
		Tags:        r.tags(),
		Description: r.str("BODY_HTML", "DESCRIPTION", "description"),
		Price:       price,
		Currency:    currency,
		Image:       r.image(),
		Rating:      r.rating(),
		ReviewCount: r.reviewCount(),
		Status:      strings.TrimSpace(r.str("STATUS", "status")),
		URL:         r.str("ONLINE_STORE_URL", "url"),
	})
	if err != nil {
		return product.Product{}, false
	}
	return p, true
}

func skipTitle(title string) bool {
	return len([]rune(title)) <= 1 ||
		title == "TITLE" ||
		strings.Contains(title, "_AIRBYTE_")
}

// str returns the first non-empty scalar found under keys.
func (r rawRecord) str(keys ...string) string {
	for _, k := range keys {
		switch v := r[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}

// obj returns the object under key, decoding it when the export stored it as
// a JSON string.
func (r rawRecord) obj(key string) map[string]any {
	return asObject(r[key])
}

func asObject(v any) map[string]any {
	switch o := v.(type) {
	case map[string]any:
		return o
	case string:
		dec := json.NewDecoder(strings.NewReader(o))
		dec.UseNumber()
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			return nil
		}
		return m
	}
	return nil
}

func (r rawRecord) price() float64 {
	if v, ok := r["price"]; ok {
		if p := product.ResolvePrice(v); p > 0 {
			return p
		}
	}
	for _, key := range []string{"PRICE_RANGE_V2", "priceRange"} {
		if m := r.obj(key); m != nil {
			if p := product.ResolvePrice(m); p > 0 {
				return p
			}
		}
	}
	return 0
}

func (r rawRecord) priceCurrency() string {
	for _, key := range []string{"PRICE_RANGE_V2", "priceRange"} {
		m := r.obj(key)
		if m == nil {
			continue
		}
		if mvp, ok := m["min_variant_price"].(map[string]any); ok {
			if c, ok := mvp["currency_code"].(string); ok && c != "" {
				return c
			}
		}
		if c, ok := m["currency"].(string); ok && c != "" {
			return c
		}
	}
	return ""
}

func (r rawRecord) tags() []string {
	var raw []string
	for _, key := range []string{"TAGS", "tags"} {
		switch v := r[key].(type) {
		case string:
			raw = product.ParseTags(v)
		case []any:
			for _, t := range v {
				if s, ok := t.(string); ok {
					raw = append(raw, s)
				}
			}
		}
		if len(raw) > 0 {
			break
		}
	}

	tags := raw[:0]
	for _, t := range raw {
		if !isNoiseTag(t) {
			tags = append(tags, t)
		}
	}
	return tags
}

func isNoiseTag(tag string) bool {
	for _, n := range noiseTags {
		if strings.Contains(tag, n) {
			return true
		}
	}
	return false
}

func (r rawRecord) image() string {
	for _, key := range []string{"FEATURED_IMAGE", "featuredImage"} {
		if m := r.obj(key); m != nil {
			if u, ok := m["url"].(string); ok && u != "" {
				return u
			}
		}
	}
	if s := r.str("image"); s != "" {
		return s
	}
	// A bare URL string under FEATURED_IMAGE.
	if s, ok := r["FEATURED_IMAGE"].(string); ok && !strings.HasPrefix(strings.TrimSpace(s), "{") {
		return s
	}
	return ""
}

func (r rawRecord) rating() float64 {
	if v, ok := r["rating"]; ok {
		return product.ResolveRating(v)
	}
	if meta := r.obj("METAFIELDS"); meta != nil {
		return product.ResolveRating(meta["yotpo_reviews_average"])
	}
	return 0
}

func (r rawRecord) reviewCount() int {
	var v any
	if rc, ok := r["reviewCount"]; ok {
		v = rc
	} else if meta := r.obj("METAFIELDS"); meta != nil {
		v = meta["yotpo_reviews_count"]
		if v == nil {
			v = meta["reviews_count"]
		}
	}
	// Counts share the rating shape: a bare number or an object with "value".
	n := product.ResolveRating(v)
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}
