// Package location manages the single user-location acquisition lifecycle
// and exposes its current state to any number of readers. Acquisition is
// strictly on explicit request: no polling, no automatic retry, no
// persistence across sessions.
package location

import (
	"time"

	"tripview.kansaitrip.org/internal/geomath"
)

// State is the phase of the location acquisition lifecycle.
type State int

const (
	// Idle means no request has been made yet.
	Idle State = iota
	// Loading means a platform query is in flight.
	Loading
	// Resolved means a fix was obtained and its coordinate is available.
	Resolved
	// Failed means the last request ended in a categorized failure.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// FailReason categorizes why a location request failed.
type FailReason int

const (
	ReasonNone FailReason = iota
	// ReasonCapabilityUnavailable means the platform has no positioning
	// capability at all; such a request fails without entering Loading.
	ReasonCapabilityUnavailable
	ReasonPermissionDenied
	ReasonPositionUnavailable
	ReasonTimeout
	ReasonUnknown
)

func (r FailReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonCapabilityUnavailable:
		return "capability_unavailable"
	case ReasonPermissionDenied:
		return "permission_denied"
	case ReasonPositionUnavailable:
		return "position_unavailable"
	case ReasonTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Snapshot is an atomic copy of the service state. Coordinate is non-nil
// only when State is Resolved; Reason is meaningful only when State is
// Failed.
type Snapshot struct {
	State      State
	Coordinate *geomath.Coordinate
	Reason     FailReason
}

// Fix is a single position obtained from the platform.
type Fix struct {
	Coordinate geomath.Coordinate
	ObtainedAt time.Time
}
