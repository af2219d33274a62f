package catalogsearch

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/catalogsearch/internal/config"
	"github.com/kailas-cloud/catalogsearch/internal/repository/catalog"
)

// ParseCatalog normalizes a JSON catalog export into products.
// Unusable records are skipped; an export without usable records is an error.
func ParseCatalog(data []byte) ([]Product, error) {
	products, _, err := catalog.Normalize(data)
	if err != nil {
		return nil, fmt.Errorf("catalogsearch: %w", err)
	}
	return fromInternalProducts(products), nil
}

// LoadFile reads and normalizes a JSON catalog export from path.
func LoadFile(ctx context.Context, path string) ([]Product, error) {
	data, err := catalog.NewFileSource(path).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalogsearch: %w", err)
	}
	return ParseCatalog(data)
}

// OptionsFromConfig returns session options from the search section of the
// server configuration for env (local, docker, prod).
func OptionsFromConfig(env string) ([]Option, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("catalogsearch: %w", err)
	}
	return []Option{
		WithDebounce(cfg.Search.Debounce()),
		WithPageSize(cfg.Search.DefaultPageSize),
	}, nil
}
