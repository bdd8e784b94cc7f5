package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripview.kansaitrip.org/internal/geomath"
	"tripview.kansaitrip.org/internal/itinerary"
	"tripview.kansaitrip.org/internal/location"
	"tripview.kansaitrip.org/internal/weather"
)

func testTrip() *itinerary.Trip {
	return &itinerary.Trip{
		Title:     "Kansai family trip",
		StartDate: "2025-12-09",
		Days: []itinerary.Day{
			{
				Day:        1,
				Date:       "12/09 (Tue)",
				Location:   "Osaka",
				Hotel:      "Osaka Plaza Hotel",
				Coordinate: &geomath.Coordinate{Latitude: 34.7206, Longitude: 135.4817},
				Spots: []itinerary.Spot{
					{
						Name: "Dotonbori",
						Recs: []itinerary.Rec{
							{
								Type:        "food",
								Name:        "Ichiran Ramen",
								Rating:      4.5,
								ReviewCount: 12000,
								MapQuery:    "Ichiran Ramen Dotonbori",
								Coordinate:  &geomath.Coordinate{Latitude: 34.6687, Longitude: 135.5013},
							},
						},
					},
				},
			},
			{
				Day:      2,
				Date:     "12/10 (Wed)",
				Location: "Heading home",
				Hotel:    "Home sweet home",
				// Travel day: no coordinate, no forecast.
			},
		},
	}
}

// newTestApplication builds an Application around the test trip, a fake
// positioner, and a stubbed forecast endpoint.
func newTestApplication(t *testing.T, positioner location.Positioner) *Application {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// #nosec G104 -- test handler write
		w.Write([]byte(`{"daily":{"time":["2025-12-09"],"weather_code":[61],"temperature_2m_max":[12.0],"temperature_2m_min":[5.0],"precipitation_probability_max":[72]}}`))
	}))
	t.Cleanup(ts.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := itinerary.NewStore(testTrip())

	weatherClient := weather.NewClient(ts.Client())
	weatherClient.BaseURL = ts.URL

	return &Application{
		Config:      Config{Port: 4000, Env: "testing"},
		TripStore:   store,
		TripService: itinerary.NewService(logger, ts.Client(), store),
		Location:    location.NewService(positioner, logger),
		Forecasts:   weather.NewBoard(weatherClient, logger),
		Logger:      logger,
		Version:     "test-version",
	}
}

// fixedPositioner always answers with the same fix.
type fixedPositioner struct {
	fix location.Fix
}

func (p fixedPositioner) CurrentPosition(ctx context.Context, opts location.Options) (location.Fix, error) {
	return p.fix, nil
}

// waitForStatus polls the day's forecast slot until it has the wanted
// status or the budget runs out.
func waitForStatus(t *testing.T, app *Application, day int, want weather.Status) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if app.Forecasts.State(day).Status == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("day %d never reached forecast status %v", day, want)
}
