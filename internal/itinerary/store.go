package itinerary

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"tripview.kansaitrip.org/internal/metrics"
)

// Store holds the live trip. The trip is read-only reference data for the
// rest of the application, but a remote source may replace it wholesale,
// so reads go through the lock.
type Store struct {
	mu   sync.RWMutex
	trip *Trip
}

// NewStore creates a Store holding the given trip.
func NewStore(trip *Trip) *Store {
	s := &Store{}
	s.Update(trip)
	return s
}

// Trip returns the current trip.
func (s *Store) Trip() *Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trip
}

// Update replaces the trip.
func (s *Store) Update(trip *Trip) {
	s.mu.Lock()
	s.trip = trip
	s.mu.Unlock()
	if trip != nil {
		metrics.TripDaysLoaded.Set(float64(len(trip.Days)))
	}
}

// Service owns trip loading and refresh.
type Service struct {
	Logger *slog.Logger
	Client *http.Client
	Store  *Store
}

// NewService creates a Service around the given store.
func NewService(logger *slog.Logger, client *http.Client, store *Store) *Service {
	return &Service{
		Logger: logger,
		Client: client,
		Store:  store,
	}
}

// Refresh periodically re-fetches the trip from a remote URL and swaps it
// into the store. Fetch errors are reported and the previous trip stays in
// place; the loop stops when the context is canceled.
func (s *Service) Refresh(ctx context.Context, url, authUser, authPass string, interval time.Duration) {
	for {
		select {
		case <-ctx.Done():
			s.Logger.Info("stopping trip refresh routine")
			return
		case <-time.After(interval):
			trip, err := LoadFromURL(ctx, s.Client, url, authUser, authPass, 3)
			if err != nil {
				s.Logger.Error("failed to refresh trip", "error", err)
				continue
			}
			s.Store.Update(trip)
			s.Logger.Info("refreshed trip", "days", len(trip.Days))
		}
	}
}
