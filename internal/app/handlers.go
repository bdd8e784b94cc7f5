package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"tripview.kansaitrip.org/internal/geomath"
	"tripview.kansaitrip.org/internal/itinerary"
	"tripview.kansaitrip.org/internal/location"
	"tripview.kansaitrip.org/internal/view"
	"tripview.kansaitrip.org/internal/weather"
)

var errBadCoordinate = errors.New("lat and lon must both be present, numeric, and in range")

// HealthStatus is the JSON shape of /v1/healthcheck.
type HealthStatus struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	Days        int    `json:"days"`
	Ready       bool   `json:"ready"`
}

func (app *Application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	trip := app.TripStore.Trip()

	days := 0
	if trip != nil {
		days = len(trip.Days)
	}
	ready := days > 0

	status := HealthStatus{
		Status:      "available",
		Environment: app.Config.Env,
		Version:     app.Version,
		Days:        days,
		Ready:       ready,
	}

	code := http.StatusOK
	if !ready {
		code = http.StatusInternalServerError
	}
	app.writeJSON(w, code, status)
}

func (app *Application) itineraryHandler(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, app.TripStore.Trip())
}

// locateHandler is the explicit "locate me" trigger. It starts a single
// acquisition and answers with the state as it stands; callers poll
// /v1/location for the terminal state.
func (app *Application) locateHandler(w http.ResponseWriter, r *http.Request) {
	app.Location.Request()
	app.writeJSON(w, http.StatusAccepted, app.locationPayload())
}

func (app *Application) locationHandler(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, app.locationPayload())
}

type locationPayload struct {
	State      string              `json:"state"`
	InFlight   bool                `json:"inFlight"`
	Coordinate *geomath.Coordinate `json:"coordinate,omitempty"`
	Reason     string              `json:"reason,omitempty"`
}

func (app *Application) locationPayload() locationPayload {
	snap := app.Location.Snapshot()

	payload := locationPayload{
		State:      snap.State.String(),
		InFlight:   app.Location.InFlight(),
		Coordinate: snap.Coordinate,
	}
	if snap.Reason != location.ReasonNone {
		payload.Reason = snap.Reason.String()
	}
	return payload
}

func (app *Application) dayHandler(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	day, ok := app.lookupDay(w, params)
	if !ok {
		return
	}

	user, err := userCoordinate(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if user == nil {
		// Fall back to the location service's last resolved fix.
		user = app.Location.Snapshot().Coordinate
	}

	forecast := app.ensureForecast(day.Day)
	app.writeJSON(w, http.StatusOK, view.BuildDay(day, user, forecast))
}

func (app *Application) dayWeatherHandler(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	day, ok := app.lookupDay(w, params)
	if !ok {
		return
	}

	forecast := app.ensureForecast(day.Day)
	payload := struct {
		Status   string                 `json:"status"`
		Forecast *weather.DailyForecast `json:"forecast,omitempty"`
	}{
		Status:   forecast.Status.String(),
		Forecast: forecast.Forecast,
	}
	app.writeJSON(w, http.StatusOK, payload)
}

// ensureForecast kicks off the day's forecast fetch if needed and returns
// the slot as it stands right now; a Loading answer is normal and the
// client simply asks again.
func (app *Application) ensureForecast(dayNum int) weather.FetchState {
	trip := app.TripStore.Trip()
	day, ok := trip.FindDay(dayNum)
	if !ok {
		return weather.FetchState{}
	}

	start, err := trip.Start()
	if err != nil {
		// The trip was validated at load time; a bad date here is a bug.
		app.Logger.Error("trip start date unparseable", "error", err)
		return weather.FetchState{Status: weather.StatusUnavailable}
	}

	app.Forecasts.Ensure(context.Background(), dayNum, day.Coordinate, weather.TargetDate(start, dayNum))
	return app.Forecasts.State(dayNum)
}

func (app *Application) lookupDay(w http.ResponseWriter, params httprouter.Params) (*itinerary.Day, bool) {
	num, err := strconv.Atoi(params.ByName("day"))
	if err != nil {
		http.Error(w, "day must be a number", http.StatusBadRequest)
		return nil, false
	}

	found, ok := app.TripStore.Trip().FindDay(num)
	if !ok {
		http.Error(w, "no such day", http.StatusNotFound)
		return nil, false
	}
	return found, true
}

// userCoordinate reads an optional device fix from lat/lon query params.
// Absence is normal; a malformed or out-of-range pair is a client error.
func userCoordinate(r *http.Request) (*geomath.Coordinate, error) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr == "" && lonStr == "" {
		return nil, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, errBadCoordinate
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, errBadCoordinate
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, errBadCoordinate
	}

	coord := &geomath.Coordinate{Latitude: lat, Longitude: lon}
	if !coord.Valid() {
		return nil, errBadCoordinate
	}
	return coord, nil
}

func (app *Application) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		app.Logger.Error("failed to encode response", "error", err)
	}
}
