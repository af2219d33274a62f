package health

import "context"

// DBPinger checks key-value store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker reports whether a catalog can be served.
type CatalogChecker interface {
	Ready(ctx context.Context) error
}
