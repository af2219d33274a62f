package search

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/catalogsearch/internal/domain/search/facet"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/request"
	"github.com/kailas-cloud/catalogsearch/internal/domain/search/result"
	"github.com/kailas-cloud/catalogsearch/internal/logger"
)

// state is the derived data of one catalog generation.
type state struct {
	generation uint64
	index      *Index
	facets     facet.Options
}

// Service runs stateless searches against the cached catalog.
// The index is rebuilt and swapped atomically whenever the catalog
// generation changes; concurrent searches keep using the previous index
// until the swap.
type Service struct {
	catalog  Catalog
	observer Observer

	current atomic.Pointer[state]
	rebuild sync.Mutex
}

// New creates a search service.
func New(catalog Catalog) *Service {
	return &Service{catalog: catalog, observer: noopObserver{}}
}

// WithObserver sets the telemetry sink.
func (s *Service) WithObserver(o Observer) *Service {
	if o != nil {
		s.observer = o
	}
	return s
}

// Search executes the match/filter/sort/paginate pipeline for req.
func (s *Service) Search(ctx context.Context, req *request.Request) (result.Page, error) {
	st, err := s.state(ctx)
	if err != nil {
		return result.Page{}, err
	}

	start := time.Now()
	page := Run(st.index, Query{
		Text:     req.Query(),
		Filters:  req.Filters(),
		SortKey:  req.SortKey(),
		Page:     req.Page(),
		PageSize: req.PageSize(),
	})
	s.observer.ObserveSearch(time.Since(start), page.Total, page.Fallback)

	if page.Fallback {
		logger.FromContext(ctx).Debug("fuzzy search found nothing, used substring fallback",
			zap.String("query", req.Query()),
			zap.Int("total", page.Total),
		)
	}
	return page, nil
}

// Facets returns the filter options of the current catalog.
func (s *Service) Facets(ctx context.Context) (facet.Options, error) {
	st, err := s.state(ctx)
	if err != nil {
		return facet.Options{}, err
	}
	return st.facets, nil
}

// Reload loads the catalog from its source and rebuilds the index.
func (s *Service) Reload(ctx context.Context) (int, error) {
	if _, err := s.catalog.Reload(ctx); err != nil {
		return 0, fmt.Errorf("reload catalog: %w", err)
	}
	st, err := s.state(ctx)
	if err != nil {
		return 0, err
	}
	return st.index.Len(), nil
}

// Ready reports whether a catalog can be served.
func (s *Service) Ready(ctx context.Context) error {
	_, err := s.state(ctx)
	return err
}

func (s *Service) state(ctx context.Context) (*state, error) {
	snap, err := s.catalog.GetOrReload(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if cur := s.current.Load(); cur != nil && cur.generation == snap.Generation {
		return cur, nil
	}

	s.rebuild.Lock()
	defer s.rebuild.Unlock()
	if cur := s.current.Load(); cur != nil && cur.generation == snap.Generation {
		return cur, nil
	}

	start := time.Now()
	next := &state{
		generation: snap.Generation,
		index:      NewIndex(snap.Products),
		facets:     facet.Compute(snap.Products),
	}
	s.current.Store(next)
	s.observer.ObserveIndexBuild(time.Since(start), len(snap.Products))

	logger.FromContext(ctx).Info("search index rebuilt",
		zap.Uint64("generation", snap.Generation),
		zap.Int("products", len(snap.Products)),
	)
	return next, nil
}

type noopObserver struct{}

func (noopObserver) ObserveSearch(time.Duration, int, bool) {}
func (noopObserver) ObserveIndexBuild(time.Duration, int)  {}
