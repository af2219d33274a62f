package search

import (
	"context"
	"time"

	"github.com/kailas-cloud/catalogsearch/internal/domain/product"
)

// Catalog provides the current record universe.
type Catalog interface {
	GetOrReload(ctx context.Context) (product.Snapshot, error)
	Reload(ctx context.Context) (product.Snapshot, error)
}

// Observer records search telemetry.
type Observer interface {
	ObserveSearch(d time.Duration, total int, fallback bool)
	ObserveIndexBuild(d time.Duration, size int)
}
