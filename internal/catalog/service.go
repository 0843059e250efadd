package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"aevonx/internal/adapters"
	"aevonx/internal/domain"

	"github.com/sirupsen/logrus"
)

// Service owns the read-only route snapshot the quoting UI works against.
//
// Fallback policy: the service is built with a static catalogue and serves it
// until the first live refresh succeeds; after that it keeps serving the last
// good live snapshot across later failures. Quoting never blocks on backend
// availability.
//
// Staleness: every refresh is tagged with a monotonically increasing sequence
// number and a completed fetch is applied only while it is still the newest
// issued, so a slow response can never overwrite a fresher snapshot.
type Service struct {
	client   adapters.RouteClient
	fallback []domain.ExchangeRoute

	mu     sync.RWMutex
	routes []domain.ExchangeRoute
	live   bool
	issued uint64
}

func NewService(client adapters.RouteClient, fallback []domain.ExchangeRoute) *Service {
	return &Service{client: client, fallback: fallback}
}

// Refresh fetches a new snapshot. On failure the current snapshot (live or
// fallback) stays in place and the error is returned for the caller to log.
func (s *Service) Refresh(ctx context.Context) error {
	seq := s.beginRefresh()

	fetched, err := s.client.FetchRoutes(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh route catalogue: %w", err)
	}

	routes := make([]domain.ExchangeRoute, 0, len(fetched))
	for _, r := range fetched {
		if structErr := r.CheckStructure(); structErr != nil {
			logrus.WithError(structErr).Warn("Dropping malformed route from catalogue")
			continue
		}
		routes = append(routes, r)
	}

	if !s.apply(seq, routes) {
		logrus.Debugf("Discarding stale route snapshot (seq %d)", seq)
	}
	return nil
}

func (s *Service) beginRefresh() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

func (s *Service) apply(seq uint64, routes []domain.ExchangeRoute) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.issued {
		return false
	}
	s.routes = routes
	s.live = true
	return true
}

// Routes returns the current snapshot. The slice is cloned; routes themselves
// are read-only by contract.
func (s *Service) Routes() []domain.ExchangeRoute {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.live {
		return slices.Clone(s.fallback)
	}
	return slices.Clone(s.routes)
}

// UsingFallback reports whether the static catalogue is being served.
func (s *Service) UsingFallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.live
}

// Currencies lists every currency appearing in the snapshot, first
// occurrence order preserved.
func (s *Service) Currencies() []domain.Currency {
	routes := s.Routes()
	seen := make(map[string]struct{}, 2*len(routes))
	var out []domain.Currency
	add := func(c domain.Currency) {
		if _, ok := seen[c.ID]; ok {
			return
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	for _, r := range routes {
		add(r.From)
		add(r.To)
	}
	return out
}
