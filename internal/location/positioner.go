package location

import (
	"context"
	"errors"
	"time"
)

// Options configures a single platform position query.
type Options struct {
	// HighAccuracy asks the platform for its best available fix.
	HighAccuracy bool
	// Timeout bounds the whole query.
	Timeout time.Duration
	// MaximumAge is how old a previously obtained fix may be and still be
	// reused without querying the platform again.
	MaximumAge time.Duration
}

// DefaultOptions mirrors the acquisition parameters of the viewer: high
// accuracy, a 10 second cap, and a 60 second reuse window.
var DefaultOptions = Options{
	HighAccuracy: true,
	Timeout:      10 * time.Second,
	MaximumAge:   60 * time.Second,
}

// Positioner is the platform's positioning capability: a single "get
// current position" call. The service treats it as an opaque collaborator.
type Positioner interface {
	CurrentPosition(ctx context.Context, opts Options) (Fix, error)
}

// Sentinel errors a Positioner implementation uses to categorize failure.
var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
)

// reasonForError maps a platform error to a failure reason. Anything not
// recognized is Unknown rather than an escape of the raw error.
func reasonForError(err error) FailReason {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return ReasonPermissionDenied
	case errors.Is(err, ErrPositionUnavailable):
		return ReasonPositionUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	default:
		return ReasonUnknown
	}
}
