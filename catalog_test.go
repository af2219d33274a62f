package catalogsearch

import (
	"context"
	"errors"
	"testing"
)

func TestParseCatalog(t *testing.T) {
	data := []byte(`[
		{"id": "a", "title": "Linen Throw", "vendor": "Nest", "tags": "home, linen", "price": "45.00"},
		{"id": "b", "title": "x"}
	]`)

	products, err := ParseCatalog(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("len = %d, want 1", len(products))
	}
	p := products[0]
	if p.ID != "a" || p.Price != 45 || p.Currency != "GBP" || len(p.Tags) != 2 {
		t.Errorf("product = %+v", p)
	}
}

func TestParseCatalog_Errors(t *testing.T) {
	if _, err := ParseCatalog([]byte(`{"id": "a"}`)); !errors.Is(err, ErrMalformedCatalog) {
		t.Errorf("object document: got %v, want ErrMalformedCatalog", err)
	}
	if _, err := ParseCatalog([]byte(`[]`)); !errors.Is(err, ErrNoRecords) {
		t.Errorf("empty document: got %v, want ErrNoRecords", err)
	}
}

func TestLoadFile(t *testing.T) {
	products, err := LoadFile(context.Background(), "data/products.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 4 {
		t.Fatalf("len = %d, want 4", len(products))
	}

	s, err := NewSession(products)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer s.Close()
	s.SetQuery("serum")
	if page := s.Results(); len(page.Items) == 0 || page.Items[0].Product.Vendor != "Glow Labs" {
		t.Errorf("serum page = %+v", page)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(context.Background(), "data/missing.json")
	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Errorf("got %v, want ErrCatalogUnavailable", err)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	opts, err := OptionsFromConfig("local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := NewSession(testProducts(), opts...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer s.Close()
	if s.Results().PageSize != 20 {
		t.Errorf("PageSize = %d, want 20", s.Results().PageSize)
	}

	if _, err := OptionsFromConfig("nope"); err == nil {
		t.Error("expected error for unknown env")
	}
}
