package domain

import "errors"

var (
	// ErrInvalidRequest signals malformed search parameters.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrCatalogUnavailable signals that the catalog source could not be read.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrNoRecords signals an empty catalog after normalization.
	ErrNoRecords = errors.New("no records available")
	// ErrMalformedCatalog signals a source document that could not be decoded.
	ErrMalformedCatalog = errors.New("malformed catalog document")
)
