package catalog

import (
	"context"
	"time"

	"github.com/kailas-cloud/catalogsearch/internal/db"
)

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) Set(ctx context.Context, key string, value []byte) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value)
	}
	return nil
}

// mockSource returns canned documents in order; the last one repeats.
type mockSource struct {
	docs  [][]byte
	errs  []error
	calls int
}

func (m *mockSource) Load(_ context.Context) ([]byte, error) {
	i := m.calls
	m.calls++
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	if len(m.docs) == 0 {
		return nil, nil
	}
	if i >= len(m.docs) {
		i = len(m.docs) - 1
	}
	return m.docs[i], nil
}

// fakeNow is a settable time source.
type fakeNow struct {
	t time.Time
}

func (f *fakeNow) now() time.Time { return f.t }

const lowercaseDoc = `[
	{"id": "1", "title": "Premium Wireless Headphones", "vendor": "AudioTech", "category": "Electronics",
	 "tags": "audio, wireless", "price": 199.99, "currency": "USD", "rating": 4.5, "reviewCount": 12},
	{"id": "2", "title": "Organic Cotton T-Shirt", "vendor": "EcoWear", "tags": ["organic", "cotton"], "price": "29.99"}
]`
