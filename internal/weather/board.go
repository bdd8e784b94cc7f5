package weather

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"tripview.kansaitrip.org/internal/geomath"
	"tripview.kansaitrip.org/internal/metrics"
	"tripview.kansaitrip.org/internal/report"
)

// Status is the fetch lifecycle of one day's forecast.
type Status int

const (
	// StatusUnknown means no fetch has been attempted for the day yet.
	StatusUnknown Status = iota
	StatusLoading
	StatusUnavailable
	StatusResolved
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusUnavailable:
		return "unavailable"
	case StatusResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// FetchState is one day's forecast slot. Forecast is non-nil only when
// Status is StatusResolved.
type FetchState struct {
	Status   Status
	Forecast *DailyForecast
}

// Board holds per-day forecast fetch state for the lifetime of the viewer.
// Days are independent slots: a slow response for day 2 can never block or
// overwrite day 4. Each accepted fetch gets a token from a monotonically
// increasing sequence, compared again at resolution time so only the
// latest request for a day ever lands (a stale response is discarded, not
// applied).
type Board struct {
	mu     sync.Mutex
	client *Client
	logger *slog.Logger
	seq    uint64
	states map[int]FetchState
	tokens map[int]uint64
}

// NewBoard creates an empty Board backed by the given client.
func NewBoard(client *Client, logger *slog.Logger) *Board {
	return &Board{
		client: client,
		logger: logger,
		states: make(map[int]FetchState),
		tokens: make(map[int]uint64),
	}
}

// Ensure makes sure a forecast fetch for the day has happened or is under
// way. A day whose slot is already Resolved or Loading is left alone; an
// Unavailable slot is retried, which is what a fresh day-switch does. A
// nil coordinate (a travel day with no fixed reference point) resolves to
// Unavailable immediately with no network access.
func (b *Board) Ensure(ctx context.Context, day int, coord *geomath.Coordinate, date time.Time) {
	b.mu.Lock()

	switch b.states[day].Status {
	case StatusResolved, StatusLoading:
		b.mu.Unlock()
		return
	}

	if coord == nil {
		b.states[day] = FetchState{Status: StatusUnavailable}
		b.mu.Unlock()
		metrics.ForecastFetchTotal.WithLabelValues("skipped").Inc()
		return
	}

	b.seq++
	token := b.seq
	b.tokens[day] = token
	b.states[day] = FetchState{Status: StatusLoading}
	b.mu.Unlock()

	go b.fetch(ctx, token, day, *coord, date)
}

func (b *Board) fetch(ctx context.Context, token uint64, day int, coord geomath.Coordinate, date time.Time) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	start := time.Now()
	forecast, err := b.client.Daily(ctx, coord, date)
	metrics.ForecastFetchDuration.Observe(time.Since(start).Seconds())

	b.mu.Lock()
	if b.tokens[day] != token {
		b.mu.Unlock()
		metrics.ForecastStaleDiscards.Inc()
		return
	}

	if err != nil {
		b.states[day] = FetchState{Status: StatusUnavailable}
		b.mu.Unlock()
		// Degraded display only; diagnostics, never an alarm to the user.
		b.logger.Warn("forecast unavailable", "day", day, "error", err)
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  map[string]string{"day": date.Format("2006-01-02")},
			Level: sentry.LevelWarning,
		})
		metrics.ForecastFetchTotal.WithLabelValues("unavailable").Inc()
		return
	}

	b.states[day] = FetchState{Status: StatusResolved, Forecast: forecast}
	b.mu.Unlock()
	metrics.ForecastFetchTotal.WithLabelValues("resolved").Inc()
}

// State returns the day's current slot. An untouched day reads as
// StatusUnknown.
func (b *Board) State(day int) FetchState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.states[day]
}

// Invalidate drops the day's pending token so an in-flight response for it
// is discarded on arrival, and clears a terminal slot so the next Ensure
// fetches again.
func (b *Board) Invalidate(day int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	b.tokens[day] = b.seq
	delete(b.states, day)
}
