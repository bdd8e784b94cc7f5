// Package app wires the application's services together and exposes the
// HTTP presentation surface: the itinerary, assembled day views with
// distance and weather badges, and the operational endpoints.
package app

import (
	"log/slog"
	"net/http"

	"tripview.kansaitrip.org/internal/itinerary"
	"tripview.kansaitrip.org/internal/location"
	"tripview.kansaitrip.org/internal/weather"
)

// Config holds the server settings.
type Config struct {
	Port int
	Env  string
}

// Application holds the wired services behind the HTTP handlers.
type Application struct {
	Config      Config
	TripStore   *itinerary.Store
	TripService *itinerary.Service
	Location    *location.Service
	Forecasts   *weather.Board
	Logger      *slog.Logger
	Version     string
}

// New creates and wires all dependencies for the Application. The
// positioner may be nil when the platform has no positioning capability;
// the location service then reports CapabilityUnavailable.
func New(cfg Config, trip *itinerary.Trip, positioner location.Positioner, logger *slog.Logger, client *http.Client, version string) *Application {
	store := itinerary.NewStore(trip)

	return &Application{
		Config:      cfg,
		TripStore:   store,
		TripService: itinerary.NewService(logger, client, store),
		Location:    location.NewService(positioner, logger),
		Forecasts:   weather.NewBoard(weather.NewClient(client), logger),
		Logger:      logger,
		Version:     version,
	}
}
