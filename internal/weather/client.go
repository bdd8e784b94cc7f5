// Package weather retrieves and classifies one-day forecast summaries for
// the itinerary's fixed reference points. Forecast unavailability is never
// a fatal error, only a degraded display.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"tripview.kansaitrip.org/internal/geomath"
)

// DefaultBaseURL is the public Open-Meteo forecast endpoint. No API key.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// DailyForecast is the one-day summary the viewer annotates a day with.
type DailyForecast struct {
	WeatherCode int  `json:"weatherCode"`
	TempMaxC    int  `json:"tempMaxC"`
	TempMinC    int  `json:"tempMinC"`
	PrecipProb  *int `json:"precipProbability,omitempty"`
}

// Condition classifies the forecast's condition code.
func (f DailyForecast) Condition() Condition {
	return ClassifyCondition(f.WeatherCode)
}

// Client fetches daily forecast summaries over HTTP.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// NewClient wraps the given HTTP client; a nil client falls back to a
// default with a 10 second timeout.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		BaseURL: DefaultBaseURL,
		Client:  httpClient,
	}
}

// forecastResponse mirrors the endpoint's JSON shape: a daily object of
// parallel arrays indexed by date offset. With start_date == end_date only
// index 0 is populated.
type forecastResponse struct {
	Daily *struct {
		Time          []string  `json:"time"`
		WeatherCode   []int     `json:"weather_code"`
		TempMax       []float64 `json:"temperature_2m_max"`
		TempMin       []float64 `json:"temperature_2m_min"`
		PrecipProbMax []*int    `json:"precipitation_probability_max"`
	} `json:"daily"`
}

// Daily requests the forecast summary for a single calendar date at the
// given coordinate. Any transport, status, or parse problem is returned as
// an error for the caller to degrade on.
func (c *Client) Daily(ctx context.Context, coord geomath.Coordinate, date time.Time) (*DailyForecast, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	day := date.In(tripZone).Format("2006-01-02")

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%.4f", coord.Latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", coord.Longitude))
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max")
	q.Set("timezone", "Asia/Tokyo")
	q.Set("start_date", day)
	q.Set("end_date", day)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("forecast endpoint returned status: %d", resp.StatusCode)
	}

	var parsed forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode forecast response: %w", err)
	}

	daily := parsed.Daily
	if daily == nil || len(daily.WeatherCode) == 0 || len(daily.TempMax) == 0 || len(daily.TempMin) == 0 {
		return nil, fmt.Errorf("forecast response missing daily data for %s", day)
	}

	forecast := &DailyForecast{
		WeatherCode: daily.WeatherCode[0],
		TempMaxC:    int(math.Round(daily.TempMax[0])),
		TempMinC:    int(math.Round(daily.TempMin[0])),
	}
	if len(daily.PrecipProbMax) > 0 && daily.PrecipProbMax[0] != nil {
		p := *daily.PrecipProbMax[0]
		forecast.PrecipProb = &p
	}
	return forecast, nil
}
