package session

import (
	"testing"
	"time"

	"github.com/kailas-cloud/catalogsearch/internal/domain/product"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/filter"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/result"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/sortkey"
)

func catalog() []product.Product {
	return []product.Product{
		product.Reconstruct(product.Fields{
			ID: "1", Title: "Premium Wireless Headphones", Vendor: "AudioTech",
			Category: "Electronics", Tags: []string{"audio"}, Price: 199.99, Status: "active",
		}),
		product.Reconstruct(product.Fields{
			ID: "2", Title: "Organic Cotton T-Shirt", Vendor: "EcoWear",
			Category: "Clothing", Tags: []string{"organic"}, Price: 29.99, Status: "active",
		}),
	}
}

func pageIDs(p result.Page) []string {
	out := make([]string, len(p.Items))
	for i := range p.Items {
		out[i] = p.Items[i].Product().ID()
	}
	return out
}

func sameIDs(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func newController(t *testing.T, products []product.Product, opts ...Option) (*Controller, *manualClock) {
	t.Helper()
	clock := &manualClock{}
	c := New(products, append([]Option{WithClock(clock)}, opts...)...)
	t.Cleanup(c.Close)
	return c, clock
}

func TestController_InitialState(t *testing.T) {
	c, _ := newController(t, catalog())

	res := c.Results()
	if res.Total != 2 || !sameIDs(pageIDs(res), "1", "2") {
		t.Errorf("results = %v (total %d), want [1 2]", pageIDs(res), res.Total)
	}
	if c.CurrentPage() != 1 || c.SortKey() != sortkey.Relevance || c.Query() != "" {
		t.Errorf("page=%d sort=%q query=%q", c.CurrentPage(), c.SortKey(), c.Query())
	}
	if c.HasActiveFilters() {
		t.Error("HasActiveFilters() = true on a fresh session")
	}

	opts := c.FilterOptions()
	if opts.PriceRange != (filter.PriceRange{Min: 29, Max: 200}) {
		t.Errorf("PriceRange = %+v, want {29 200}", opts.PriceRange)
	}
	if c.Filters().PriceRange() != opts.PriceRange {
		t.Errorf("initial filter range %+v differs from observed range", c.Filters().PriceRange())
	}
}

func TestController_TypeQueryDebounces(t *testing.T) {
	c, clock := newController(t, catalog(), WithDebounce(300*time.Millisecond))

	c.TypeQuery("head")
	c.TypeQuery("headphones")
	if c.Draft() != "headphones" {
		t.Errorf("Draft() = %q", c.Draft())
	}
	if c.Query() != "" || c.Results().Total != 2 {
		t.Fatalf("query committed early: %q", c.Query())
	}

	clock.Advance(300 * time.Millisecond)
	if c.Query() != "headphones" {
		t.Fatalf("Query() = %q after quiet period", c.Query())
	}
	if got := pageIDs(c.Results()); !sameIDs(got, "1") {
		t.Errorf("results = %v, want [1]", got)
	}
}

func TestController_FlushQuery(t *testing.T) {
	c, _ := newController(t, catalog())

	c.TypeQuery("ecowear")
	if !c.FlushQuery() {
		t.Fatal("FlushQuery() = false")
	}
	if got := pageIDs(c.Results()); !sameIDs(got, "2") {
		t.Errorf("results = %v, want [2]", got)
	}
}

func TestController_SetQueryCancelsTyping(t *testing.T) {
	c, clock := newController(t, catalog())

	c.TypeQuery("headphones")
	c.SetQuery("ecowear")
	clock.Advance(time.Second)

	if c.Query() != "ecowear" || c.Draft() != "ecowear" {
		t.Errorf("query=%q draft=%q, want ecowear", c.Query(), c.Draft())
	}
}

func TestController_StaleTypedCommitDropped(t *testing.T) {
	c, _ := newController(t, catalog())

	// A timer that already fired for "headphones" commits after SetQuery.
	c.TypeQuery("headphones")
	c.mu.Lock()
	stale := typedQuery{text: "headphones", seq: c.typedSeq}
	c.mu.Unlock()

	c.SetQuery("ecowear")
	c.commitTyped(stale)

	if c.Query() != "ecowear" {
		t.Errorf("Query() = %q, want ecowear", c.Query())
	}
	if got := pageIDs(c.Results()); !sameIDs(got, "2") {
		t.Errorf("results = %v, want [2]", got)
	}
}

func TestController_OlderTypedCommitDropped(t *testing.T) {
	c, clock := newController(t, catalog())

	c.TypeQuery("head")
	c.mu.Lock()
	older := typedQuery{text: "head", seq: c.typedSeq}
	c.mu.Unlock()
	c.TypeQuery("ecowear")

	c.commitTyped(older)
	if c.Query() != "" {
		t.Errorf("Query() = %q after superseded commit, want empty", c.Query())
	}
	clock.Advance(time.Second)
	if c.Query() != "ecowear" {
		t.Errorf("Query() = %q, want ecowear", c.Query())
	}
}

func TestController_SetSortKeyRejectsUnknown(t *testing.T) {
	c, _ := newController(t, catalog())

	if err := c.SetSortKey(sortkey.PriceHigh); err != nil {
		t.Fatalf("SetSortKey: %v", err)
	}
	if err := c.SetSortKey("cheapest"); err == nil {
		t.Fatal("expected error for unknown sort key")
	}
	if c.SortKey() != sortkey.PriceHigh {
		t.Errorf("SortKey() = %q, want price-high", c.SortKey())
	}
	if got := pageIDs(c.Results()); !sameIDs(got, "1", "2") {
		t.Errorf("results = %v, want [1 2]", got)
	}
}

func TestController_SetCategoricalFilters(t *testing.T) {
	c, _ := newController(t, catalog())
	c.SetCurrentPage(2)

	if err := c.SetCategoricalFilters([]string{"AudioTech"}, nil, nil, nil); err != nil {
		t.Fatalf("SetCategoricalFilters: %v", err)
	}
	if got := pageIDs(c.Results()); !sameIDs(got, "1") {
		t.Errorf("results = %v, want [1]", got)
	}
	if c.CurrentPage() != 1 {
		t.Errorf("CurrentPage() = %d, want 1", c.CurrentPage())
	}
	if c.Filters().PriceRange() != c.FilterOptions().PriceRange {
		t.Errorf("price range = %+v, want observed range", c.Filters().PriceRange())
	}

	many := make([]string, filter.MaxValuesPerDimension+1)
	if err := c.SetCategoricalFilters(many, nil, nil, nil); err == nil {
		t.Error("expected error for too many vendors")
	}
}

func TestController_PageTransitions(t *testing.T) {
	c, _ := newController(t, catalog(), WithPageSize(1))

	c.SetCurrentPage(2)
	if got := pageIDs(c.Results()); !sameIDs(got, "2") {
		t.Fatalf("page 2 = %v, want [2]", got)
	}

	// Sorting keeps the page.
	if err := c.SetSortKey(sortkey.PriceLow); err != nil {
		t.Fatalf("SetSortKey: %v", err)
	}
	if c.CurrentPage() != 2 {
		t.Errorf("CurrentPage() = %d after sort change, want 2", c.CurrentPage())
	}
	if got := pageIDs(c.Results()); !sameIDs(got, "1") {
		t.Errorf("price-low page 2 = %v, want [1]", got)
	}

	// A new query returns to page 1.
	c.SetQuery("")
	if c.CurrentPage() != 1 {
		t.Errorf("CurrentPage() = %d after query change, want 1", c.CurrentPage())
	}

	c.SetCurrentPage(9)
	res := c.Results()
	if len(res.Items) != 0 || res.HasMore || res.Total != 2 {
		t.Errorf("out-of-range page: items=%v hasMore=%v total=%d", pageIDs(res), res.HasMore, res.Total)
	}
}

func TestController_FiltersResetPage(t *testing.T) {
	c, _ := newController(t, catalog(), WithPageSize(1))
	c.SetCurrentPage(2)

	f, err := filter.New([]string{"EcoWear"}, nil, nil, nil, c.FilterOptions().PriceRange)
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}
	c.SetFilters(f)

	if c.CurrentPage() != 1 {
		t.Errorf("CurrentPage() = %d, want 1", c.CurrentPage())
	}
	if got := pageIDs(c.Results()); !sameIDs(got, "2") {
		t.Errorf("results = %v, want [2]", got)
	}
	if !c.HasActiveFilters() {
		t.Error("HasActiveFilters() = false with a vendor filter")
	}

	c.SetCurrentPage(3)
	c.ClearFilters()
	if c.HasActiveFilters() || c.CurrentPage() != 1 || c.Results().Total != 2 {
		t.Errorf("after clear: active=%v page=%d total=%d", c.HasActiveFilters(), c.CurrentPage(), c.Results().Total)
	}
}

func TestController_PriceOnlyFilterIsActive(t *testing.T) {
	c, _ := newController(t, catalog())

	c.SetFilters(filter.Unconstrained(filter.PriceRange{Min: 0, Max: 50}))
	if !c.HasActiveFilters() {
		t.Error("narrowed price range not reported as active")
	}
	if got := pageIDs(c.Results()); !sameIDs(got, "2") {
		t.Errorf("results = %v, want [2]", got)
	}
}

func TestController_UnpricedHiddenByObservedRange(t *testing.T) {
	products := append(catalog(), product.Reconstruct(product.Fields{ID: "3", Title: "Gift Card"}))
	c, _ := newController(t, products)

	if c.Results().Total != 2 {
		t.Errorf("Total = %d, want 2 (unpriced record outside [29, 200])", c.Results().Total)
	}
	c.SetFilters(filter.Unconstrained(filter.Unbounded))
	if c.Results().Total != 3 {
		t.Errorf("Total = %d with unbounded range, want 3", c.Results().Total)
	}
}

func TestController_SetRecords(t *testing.T) {
	c, _ := newController(t, catalog(), WithPageSize(1))

	f, err := filter.New([]string{"AudioTech"}, nil, nil, nil, filter.PriceRange{Min: 100, Max: 150})
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}
	c.SetFilters(f)
	c.SetCurrentPage(2)

	next := append(catalog(), product.Reconstruct(product.Fields{
		ID: "3", Title: "Studio Monitor Headphones", Vendor: "AudioTech", Price: 349,
	}))
	c.SetRecords(next)

	if c.CurrentPage() != 1 {
		t.Errorf("CurrentPage() = %d, want 1", c.CurrentPage())
	}
	if got := c.Filters().PriceRange(); got != (filter.PriceRange{Min: 29, Max: 349}) {
		t.Errorf("price range = %+v, want {29 349}", got)
	}
	if got := c.Filters().Vendors(); len(got) != 1 || got[0] != "AudioTech" {
		t.Errorf("vendor filter = %v, want [AudioTech]", got)
	}
	res := c.Results()
	if res.Total != 2 || !sameIDs(pageIDs(res), "1") || !res.HasMore {
		t.Errorf("results = %v total=%d hasMore=%v", pageIDs(res), res.Total, res.HasMore)
	}
	if len(c.FilterOptions().Vendors) != 2 {
		t.Errorf("facets not rebuilt: %v", c.FilterOptions().Vendors)
	}
}
