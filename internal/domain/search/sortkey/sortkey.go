package sortkey

// Key is the ordering applied to a result set.
type Key string

// Sort key constants.
const (
	// Relevance keeps matcher order; without a query it keeps input order.
	Relevance    Key = "relevance"
	PriceLow     Key = "price-low"
	PriceHigh    Key = "price-high"
	Alphabetical Key = "alphabetical"
	// Rating sorts by average rating, highest first.
	Rating Key = "rating"
)

// IsValid checks if the key is one of the supported values.
func (k Key) IsValid() bool {
	return k == Relevance || k == PriceLow || k == PriceHigh || k == Alphabetical || k == Rating
}

// All returns every supported key in presentation order.
func All() []Key {
	return []Key{Relevance, PriceLow, PriceHigh, Alphabetical, Rating}
}
