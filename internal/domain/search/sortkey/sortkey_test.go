package sortkey

import "testing"

func TestIsValid(t *testing.T) {
	for _, k := range All() {
		if !k.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", k)
		}
	}

	invalid := []Key{"", "price", "RATING", "price-asc"}
	for _, k := range invalid {
		if k.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", k)
		}
	}
}

func TestConstants(t *testing.T) {
	if PriceLow != "price-low" {
		t.Errorf("PriceLow = %q", PriceLow)
	}
	if PriceHigh != "price-high" {
		t.Errorf("PriceHigh = %q", PriceHigh)
	}
	if Alphabetical != "alphabetical" {
		t.Errorf("Alphabetical = %q", Alphabetical)
	}
}
