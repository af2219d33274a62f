package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/kailas-cloud/catalogsearch/internal/db"
	"github.com/kailas-cloud/catalogsearch/internal/domain"
)

// DefaultKey is the store key holding the published catalog document.
const DefaultKey = "catalogsearch:catalog"

// Source reads the raw catalog document.
type Source interface {
	Load(ctx context.Context) ([]byte, error)
}

// kvStore is the consumer interface for the store-backed source (ISP).
type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// FileSource reads the catalog document from a local JSON file.
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads the whole file.
func (s *FileSource) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", s.path, domain.ErrCatalogUnavailable, err)
	}
	return data, nil
}

// StoreSource reads the catalog document from a key-value store.
type StoreSource struct {
	store kvStore
	key   string
}

// NewStoreSource creates a store-backed source. An empty key uses DefaultKey.
func NewStoreSource(s kvStore, key string) *StoreSource {
	if key == "" {
		key = DefaultKey
	}
	return &StoreSource{store: s, key: key}
}

// Load fetches the document stored under the source key.
func (s *StoreSource) Load(ctx context.Context) ([]byte, error) {
	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("catalog key %q not published: %w", s.key, domain.ErrCatalogUnavailable)
		}
		return nil, fmt.Errorf("get catalog %q: %w: %w", s.key, domain.ErrCatalogUnavailable, err)
	}
	return data, nil
}

// Publish validates data and stores it under the source key.
// It returns the number of records that survive normalization.
func (s *StoreSource) Publish(ctx context.Context, data []byte) (int, error) {
	products, _, err := Normalize(data)
	if err != nil {
		return 0, err
	}
	if err := s.store.Set(ctx, s.key, data); err != nil {
		return 0, fmt.Errorf("publish catalog %q: %w", s.key, err)
	}
	return len(products), nil
}
