package location

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tripview.kansaitrip.org/internal/geomath"
	"tripview.kansaitrip.org/internal/metrics"
)

// Service holds the user-location state machine:
//
//	Idle -> Loading -> {Resolved, Failed}
//
// A new request from a terminal state goes through Loading again. Only the
// service mutates the state, and each transition is atomic: readers never
// observe a partially updated coordinate. A second Request while one is in
// flight is a no-op, so exactly one terminal transition happens per
// accepted request.
type Service struct {
	mu         sync.RWMutex
	positioner Positioner
	logger     *slog.Logger
	opts       Options
	now        func() time.Time

	state      State
	coordinate *geomath.Coordinate
	reason     FailReason
	lastFix    *Fix
	inFlight   bool
	generation uint64
}

// NewService creates a Service around the given positioning capability.
// A nil positioner is valid and means the platform cannot position at all.
func NewService(positioner Positioner, logger *slog.Logger) *Service {
	return &Service{
		positioner: positioner,
		logger:     logger,
		opts:       DefaultOptions,
		now:        time.Now,
		state:      Idle,
	}
}

// Request starts a single location acquisition. It returns immediately;
// progress is observed through Snapshot. While a request is in flight,
// further calls are no-ops.
func (s *Service) Request() {
	s.mu.Lock()

	if s.inFlight {
		s.mu.Unlock()
		return
	}

	if s.positioner == nil {
		// No capability on this platform: fail directly, skipping Loading.
		s.state = Failed
		s.coordinate = nil
		s.reason = ReasonCapabilityUnavailable
		s.mu.Unlock()
		metrics.LocationRequestsTotal.WithLabelValues(ReasonCapabilityUnavailable.String()).Inc()
		return
	}

	if fix := s.freshFix(); fix != nil {
		// Recent enough to reuse without touching the platform.
		s.resolveLocked(fix)
		s.mu.Unlock()
		metrics.LocationRequestsTotal.WithLabelValues("cached").Inc()
		return
	}

	s.state = Loading
	s.coordinate = nil
	s.reason = ReasonNone
	s.inFlight = true
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	go s.acquire(gen)
}

// freshFix returns the last fix if it is within the reuse window.
// Caller must hold the lock.
func (s *Service) freshFix() *Fix {
	if s.lastFix == nil {
		return nil
	}
	if s.now().Sub(s.lastFix.ObtainedAt) > s.opts.MaximumAge {
		return nil
	}
	return s.lastFix
}

// resolveLocked transitions to Resolved with a copy of the fix coordinate.
// Caller must hold the lock.
func (s *Service) resolveLocked(fix *Fix) {
	coord := fix.Coordinate
	s.state = Resolved
	s.coordinate = &coord
	s.reason = ReasonNone
}

func (s *Service) acquire(gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.Timeout)
	defer cancel()

	fix, err := s.positioner.CurrentPosition(ctx, s.opts)

	s.mu.Lock()
	if gen != s.generation {
		// A late callback from a superseded request; the current state
		// belongs to someone else. Discard.
		s.mu.Unlock()
		metrics.LocationRequestsTotal.WithLabelValues("discarded").Inc()
		return
	}
	s.inFlight = false

	if err != nil {
		reason := reasonForError(err)
		s.state = Failed
		s.coordinate = nil
		s.reason = reason
		s.mu.Unlock()
		s.logger.Warn("location request failed", "reason", reason.String(), "error", err)
		metrics.LocationRequestsTotal.WithLabelValues(reason.String()).Inc()
		return
	}

	if fix.ObtainedAt.IsZero() {
		fix.ObtainedAt = s.now()
	}
	s.lastFix = &fix
	s.resolveLocked(&fix)
	s.mu.Unlock()
	metrics.LocationRequestsTotal.WithLabelValues("resolved").Inc()
}

// Snapshot returns an atomic copy of the current state.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{State: s.state, Reason: s.reason}
	if s.coordinate != nil {
		coord := *s.coordinate
		snap.Coordinate = &coord
	}
	return snap
}

// InFlight reports whether a platform query is pending. It is the spinner
// check: equivalent to Snapshot().State == Loading but cheaper for readers
// that only need the flag.
func (s *Service) InFlight() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight
}

// Close invalidates any pending request so its late callback is discarded.
// The timeout is the only way a pending platform query itself is bounded;
// Close just guarantees the result can no longer be applied.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.inFlight = false
}
