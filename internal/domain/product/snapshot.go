package product

import "time"

// Snapshot is an immutable record universe tagged with its load generation.
// A new generation means the universe changed and derived structures must be rebuilt.
type Snapshot struct {
	Products   []Product
	Generation uint64
	LoadedAt   time.Time
}
