package app

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"tripview.kansaitrip.org/internal/middleware"
)

// Routes registers all endpoints and returns the final handler, wrapped
// with Sentry capture and the security headers.
func (app *Application) Routes(ctx context.Context) http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/v1/itinerary", app.itineraryHandler)
	router.HandlerFunc(http.MethodGet, "/v1/location", app.locationHandler)
	router.HandlerFunc(http.MethodPost, "/v1/locate", app.locateHandler)
	router.Handle(http.MethodGet, "/v1/days/:day", app.dayHandler)
	router.Handle(http.MethodGet, "/v1/days/:day/weather", app.dayWeatherHandler)
	router.Handler(http.MethodGet, "/metrics", middleware.NewCachedPromHandler(ctx, prometheus.DefaultGatherer, 10*time.Second))

	handler := middleware.SentryMiddleware(router)
	return middleware.SecurityHeaders(handler)
}
