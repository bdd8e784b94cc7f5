package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/dnaeon/go-vcr.v4/pkg/recorder"

	"tripview.kansaitrip.org/internal/geomath"
)

var osakaHotel = geomath.Coordinate{Latitude: 34.6687, Longitude: 135.5013}

func testDate() time.Time {
	return time.Date(2025, time.December, 9, 0, 0, 0, 0, tripZone)
}

// newStubClient points a Client at an httptest server that answers with
// the given body and status code.
func newStubClient(t *testing.T, response string, statusCode int) *Client {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		// #nosec G104 -- test handler write
		w.Write([]byte(response))
	}))
	t.Cleanup(ts.Close)

	c := NewClient(ts.Client())
	c.BaseURL = ts.URL
	return c
}

func TestDailyWithVCR(t *testing.T) {
	rec, err := recorder.New(filepath.Join("testdata", "vcr", "forecast_daily"))
	if err != nil {
		t.Fatalf("Failed to create recorder: %v", err)
	}
	defer rec.Stop()

	client := NewClient(&http.Client{
		Transport: rec,
		Timeout:   10 * time.Second,
	})

	forecast, err := client.Daily(context.Background(), osakaHotel, testDate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if forecast.WeatherCode != 61 {
		t.Errorf("weather code: got %d want 61", forecast.WeatherCode)
	}
	if forecast.TempMaxC != 12 || forecast.TempMinC != 5 {
		t.Errorf("temps: got %d/%d want 12/5", forecast.TempMaxC, forecast.TempMinC)
	}
	if forecast.PrecipProb == nil || *forecast.PrecipProb != 72 {
		t.Errorf("precipitation probability: got %v want 72", forecast.PrecipProb)
	}
	if forecast.Condition() != Rain {
		t.Errorf("condition: got %v want Rain", forecast.Condition())
	}
}

func TestDailyDegradedResponses(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		statusCode int
	}{
		{"server error", `upstream on fire`, http.StatusBadGateway},
		{"malformed json", `{"daily": [`, http.StatusOK},
		{"missing daily field", `{"latitude": 34.67}`, http.StatusOK},
		{"empty daily arrays", `{"daily":{"time":[],"weather_code":[],"temperature_2m_max":[],"temperature_2m_min":[]}}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newStubClient(t, tt.response, tt.statusCode)
			if _, err := client.Daily(context.Background(), osakaHotel, testDate()); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestDailyUnreachableEndpoint(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	client := NewClient(nil)
	client.BaseURL = url

	if _, err := client.Daily(context.Background(), osakaHotel, testDate()); err == nil {
		t.Error("expected an error for an unreachable endpoint")
	}
}

func TestDailyOmitsMissingPrecipitation(t *testing.T) {
	client := newStubClient(t,
		`{"daily":{"time":["2025-12-09"],"weather_code":[0],"temperature_2m_max":[11.2],"temperature_2m_min":[3.8]}}`,
		http.StatusOK)

	forecast, err := client.Daily(context.Background(), osakaHotel, testDate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if forecast.PrecipProb != nil {
		t.Errorf("precipitation probability: got %v want nil", forecast.PrecipProb)
	}
	if forecast.Condition() != Clear {
		t.Errorf("condition: got %v want Clear", forecast.Condition())
	}
}

func TestDailyRequestShape(t *testing.T) {
	var gotQuery map[string][]string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		// #nosec G104 -- test handler write
		w.Write([]byte(`{"daily":{"time":["2025-12-09"],"weather_code":[2],"temperature_2m_max":[10.0],"temperature_2m_min":[2.0]}}`))
	}))
	t.Cleanup(ts.Close)

	client := NewClient(ts.Client())
	client.BaseURL = ts.URL

	if _, err := client.Daily(context.Background(), osakaHotel, testDate()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"latitude":   "34.6687",
		"longitude":  "135.5013",
		"daily":      "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max",
		"timezone":   "Asia/Tokyo",
		"start_date": "2025-12-09",
		"end_date":   "2025-12-09",
	}
	for key, value := range want {
		if got := gotQuery[key]; len(got) != 1 || got[0] != value {
			t.Errorf("query %s: got %v want %q", key, got, value)
		}
	}
}
